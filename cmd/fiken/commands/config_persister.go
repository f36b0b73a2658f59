package commands

import (
	"context"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// ConfigPersister writes refreshed OAuth2 tokens back to the config file.
// It implements fiken.TokenPersister.
type ConfigPersister struct {
	mutex sync.Mutex
	now   func() time.Time
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{now: time.Now}
}

// SaveToken stores the rotated token pair and its expiry.
func (p *ConfigPersister) SaveToken(_ context.Context, accessToken, refreshToken string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	config.AccessToken = accessToken
	if refreshToken != "" {
		config.RefreshToken = refreshToken
	}

	if !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	now := p.now()
	config.LastRefreshed = &now

	err = saveConfig(config)
	if err != nil {
		return err
	}

	// Later loads in this process must see the rotated refresh token.
	viper.Set("access_token", config.AccessToken)
	viper.Set("refresh_token", config.RefreshToken)

	if !expiresAt.IsZero() {
		viper.Set("token_expires_at", expiresAt.Format(time.RFC3339))
	}

	return nil
}
