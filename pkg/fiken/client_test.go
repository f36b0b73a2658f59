package fiken_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  fiken.Config
		wantErr bool
	}{
		{
			name:   "api token",
			config: fiken.Config{APIToken: "token"},
		},
		{
			name: "complete oauth2",
			config: fiken.Config{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ClientID:     "id",
				ClientSecret: "secret",
			},
		},
		{
			name:    "nothing",
			config:  fiken.Config{},
			wantErr: true,
		},
		{
			name:    "blank api token",
			config:  fiken.Config{APIToken: "   "},
			wantErr: true,
		},
		{
			name: "oauth2 missing secret",
			config: fiken.Config{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ClientID:     "id",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, fiken.ErrConfiguration)
				require.ErrorIs(t, err, fiken.ErrInvalidCredentials)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	config := (&fiken.Config{APIToken: "token", RequestsPerSecond: 10}).WithDefaults()

	assert.Equal(t, "https://api.fiken.no/api/v2", config.BaseURL)
	assert.Equal(t, "https://fiken.no/oauth/token", config.TokenURL)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
	assert.Equal(t, 4, config.RequestsPerSecond)
	assert.Equal(t, 0, config.RetryMax)
	assert.NotNil(t, config.Logger)
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                             "https://api.fiken.no/api/v2",
		"api.fiken.no/api/v2/":         "https://api.fiken.no/api/v2",
		"http://localhost:8080/":       "http://localhost:8080",
		"https://api.fiken.no/api/v2":  "https://api.fiken.no/api/v2",
		"  https://example.test/v2//  ": "https://example.test/v2",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, fiken.NormalizeBaseURL(input), input)
	}
}

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	logger := fiken.NewZapLogger(zap.New(core))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "url": "/user"})
	logger.Warn("throttled", nil)
	logger.Error("failed", map[string]interface{}{"error": fiken.Classify(500, nil)})

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "[500] HTTP 500 error", entries[2].ContextMap()["error"])
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	var logger fiken.Logger = fiken.NopLogger{}

	assert.NotPanics(t, func() {
		logger.Debug("x", nil)
		logger.Info("x", nil)
		logger.Warn("x", nil)
		logger.Error("x", map[string]interface{}{"k": 1})
	})

	assert.NotNil(t, fiken.NewZapLogger(nil).Zap())
}
