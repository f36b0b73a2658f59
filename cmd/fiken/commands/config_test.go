//nolint:testpackage // Need access to internal types
package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// useConfigFile points viper at a fresh config file holding contents.
func useConfigFile(t *testing.T, contents string) string {
	t.Helper()
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	return path
}

func readConfigFile(t *testing.T, path string) *Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	config := &Config{}
	require.NoError(t, yaml.Unmarshal(data, config))

	return config
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	expires := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, config *Config)
		wantErr error
	}{
		{
			name:  "string",
			key:   "company",
			value: "fiken-demo",
			check: func(t *testing.T, config *Config) { assert.Equal(t, "fiken-demo", config.Company) },
		},
		{
			name:  "duration",
			key:   "http_timeout",
			value: "45s",
			check: func(t *testing.T, config *Config) { assert.Equal(t, 45*time.Second, config.HTTPTimeout) },
		},
		{
			name:  "integer",
			key:   "retry_max",
			value: "3",
			check: func(t *testing.T, config *Config) { assert.Equal(t, 3, config.RetryMax) },
		},
		{
			name:  "time",
			key:   "token_expires_at",
			value: expires.Format(time.RFC3339),
			check: func(t *testing.T, config *Config) {
				require.NotNil(t, config.TokenExpiresAt)
				assert.True(t, expires.Equal(*config.TokenExpiresAt))
			},
		},
		{
			name:  "empty clears",
			key:   "api_token",
			value: "",
			check: func(t *testing.T, config *Config) { assert.Empty(t, config.APIToken) },
		},
		{
			name:    "unknown key",
			key:     "colour",
			value:   "blue",
			wantErr: ErrUnknownConfigKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &Config{APIToken: "old", Company: "old"}

			err := setConfigValue(config, tt.key, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}

func TestLoadConfig(t *testing.T) { //nolint:paralleltest // mutates global viper state
	useConfigFile(t, `
base_url: https://api.fiken.no/api/v2
company: fiken-demo
http_timeout: 1m
retry_max: 2
token_expires_at: "2025-06-01T12:00:00Z"
api_token: ""
`)

	config, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "fiken-demo", config.Company)
	assert.Equal(t, time.Minute, config.HTTPTimeout)
	assert.Equal(t, 2, config.RetryMax)
	require.NotNil(t, config.TokenExpiresAt)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), config.TokenExpiresAt.UTC())
	assert.Empty(t, config.APIToken)

	clientConfig := config.clientConfig(nil)
	assert.Equal(t, "https://api.fiken.no/api/v2", clientConfig.BaseURL)
	assert.Equal(t, time.Minute, clientConfig.HTTPTimeout)
	assert.True(t, clientConfig.TokenExpiresAt.Equal(*config.TokenExpiresAt))
}

func TestConfigCommands(t *testing.T) { //nolint:paralleltest // mutates global viper state
	path := useConfigFile(t, "company: old\napi_token: secret-token\n")

	out, err := execute(t, NewConfigCommand(), "set", "company", "fiken-demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Set company")
	assert.Equal(t, "fiken-demo", readConfigFile(t, path).Company)

	require.NoError(t, viper.ReadInConfig())

	viper.Set("output", "json")
	out, err = execute(t, NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, Masked)
	assert.NotContains(t, out, "secret-token")

	_, err = execute(t, NewConfigCommand(), "unset", "api_token")
	require.NoError(t, err)
	assert.Empty(t, readConfigFile(t, path).APIToken)

	_, err = execute(t, NewConfigCommand(), "set", "nope", "x")
	require.ErrorIs(t, err, ErrUnknownConfigKey)
}

func TestConfigPersister_SaveToken(t *testing.T) { //nolint:paralleltest // mutates global viper state
	path := useConfigFile(t, "company: fiken-demo\nclient_id: my-app\nrefresh_token: old-refresh\n")

	refreshed := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	expires := refreshed.Add(24 * time.Hour)

	persister := NewConfigPersister()
	persister.now = func() time.Time { return refreshed }

	require.NoError(t, persister.SaveToken(context.Background(), "new-access", "new-refresh", expires))

	saved := readConfigFile(t, path)
	assert.Equal(t, "fiken-demo", saved.Company)
	assert.Equal(t, "my-app", saved.ClientID)
	assert.Equal(t, "new-access", saved.AccessToken)
	assert.Equal(t, "new-refresh", saved.RefreshToken)
	require.NotNil(t, saved.TokenExpiresAt)
	assert.True(t, expires.Equal(*saved.TokenExpiresAt))
	require.NotNil(t, saved.LastRefreshed)
	assert.True(t, refreshed.Equal(*saved.LastRefreshed))

	assert.Equal(t, "new-refresh", viper.GetString("refresh_token"))

	// An empty refresh token keeps the stored one.
	require.NoError(t, persister.SaveToken(context.Background(), "newer-access", "", time.Time{}))

	saved = readConfigFile(t, path)
	assert.Equal(t, "newer-access", saved.AccessToken)
	assert.Equal(t, "new-refresh", saved.RefreshToken)
	assert.True(t, expires.Equal(*saved.TokenExpiresAt))
}
