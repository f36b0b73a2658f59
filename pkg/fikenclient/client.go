package fikenclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/fiken-client/internal/client"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// TokenStore loads and saves OAuth2 tokens shared with other processes.
// fiken.NATSTokenStore is one implementation.
type TokenStore interface {
	fiken.TokenPersister
	LoadToken(ctx context.Context) (*fiken.StoredToken, error)
}

// New creates a Fiken API client. The configuration is checked before
// anything else, so a missing credential is reported without a network call.
func New(ctx context.Context, config *fiken.Config) (fiken.Client, error) {
	if config == nil {
		return nil, fiken.ErrConfigRequired
	}

	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a client authenticated with a personal API token.
func NewWithToken(ctx context.Context, token string) (fiken.Client, error) {
	return New(ctx, &fiken.Config{
		APIToken: token,
	})
}

// NewWithOAuth2 creates a client from an OAuth2 authorization. The access
// token is assumed freshly issued and is refreshed before it expires.
func NewWithOAuth2(ctx context.Context, accessToken, refreshToken, clientID, clientSecret string) (fiken.Client, error) {
	return New(ctx, &fiken.Config{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewWithTokenStore creates an OAuth2 client whose tokens are seeded from
// store and written back to it after every refresh. When the store holds no
// token yet, the tokens in config are used and stored on first refresh.
func NewWithTokenStore(ctx context.Context, config *fiken.Config, store TokenStore) (fiken.Client, error) {
	if config == nil {
		return nil, fiken.ErrConfigRequired
	}

	seeded := *config

	stored, err := store.LoadToken(ctx)

	switch {
	case err == nil:
		seeded.AccessToken = stored.AccessToken
		seeded.RefreshToken = stored.RefreshToken
		seeded.TokenExpiresAt = stored.ExpiresAt
	case errors.Is(err, fiken.ErrTokenNotFound):
	default:
		return nil, fmt.Errorf("loading stored token: %w", err)
	}

	seeded.TokenPersister = store

	return New(ctx, &seeded)
}
