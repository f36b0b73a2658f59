package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// OAuth2Config configures an OAuth2Credential.
type OAuth2Config struct {
	AccessToken  string
	RefreshToken string
	ClientID     string
	ClientSecret string
	TokenURL     string
	// ExpiresAt of AccessToken. Zero assumes a freshly issued token.
	ExpiresAt time.Time

	// HTTPClient used for the token exchange.
	HTTPClient *http.Client
	// Persister receives every refreshed token.
	Persister fiken.TokenPersister
	Logger    fiken.Logger
	// Now overrides the clock.
	Now func() time.Time
}

// OAuth2Credential holds an OAuth2 authorization and refreshes the access
// token five minutes before it expires. Concurrent callers that find the
// token stale wait for a single refresh and then share its result.
type OAuth2Credential struct {
	mu        sync.Mutex
	store     *TokenStore
	config    *oauth2.Config
	client    *http.Client
	persister fiken.TokenPersister
	logger    fiken.Logger
	now       func() time.Time
	refreshes int
}

// NewOAuth2Credential creates an OAuth2 credential. No request is made until
// headers are first needed.
func NewOAuth2Credential(cfg *OAuth2Config) *OAuth2Credential {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = constants.DefaultTokenURL
	}

	credential := &OAuth2Credential{
		store: NewTokenStore(),
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		client:    cfg.HTTPClient,
		persister: cfg.Persister,
		logger:    cfg.Logger,
		now:       cfg.Now,
	}

	if credential.logger == nil {
		credential.logger = fiken.NopLogger{}
	}

	if credential.now == nil {
		credential.now = time.Now
	}

	expiresAt := cfg.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = credential.now().Add(constants.DefaultTokenLifetime)
	}

	credential.store.Set(&Token{
		AccessToken:  cfg.AccessToken,
		RefreshToken: cfg.RefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	})

	return credential
}

// Headers implements Credential, refreshing the access token first when it
// is within five minutes of expiry.
func (c *OAuth2Credential) Headers(ctx context.Context) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := c.store.Get()
	if token.NeedsRefresh(c.now(), constants.TokenRefreshBuffer) {
		refreshed, err := c.refreshLocked(ctx, token)
		if err != nil {
			return nil, err
		}

		token = refreshed
	}

	return bearerHeaders(token.AccessToken), nil
}

// Refresh exchanges the refresh token regardless of expiry.
func (c *OAuth2Credential) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.refreshLocked(ctx, c.store.Get())

	return err
}

// Token returns a snapshot of the current token.
func (c *OAuth2Credential) Token() *Token {
	return c.store.Get()
}

// Refreshes counts successful refreshes.
func (c *OAuth2Credential) Refreshes() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshes
}

// refreshLocked performs the refresh_token grant. On failure the stored
// token is left untouched.
func (c *OAuth2Credential) refreshLocked(ctx context.Context, current *Token) (*Token, error) {
	if c.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	}

	c.logger.Debug("Refreshing OAuth2 access token", map[string]interface{}{
		"token_url":  c.config.Endpoint.TokenURL,
		"expires_at": current.ExpiresAt,
	})

	exchanged, err := c.config.TokenSource(ctx, &oauth2.Token{RefreshToken: current.RefreshToken}).Token()
	if err != nil {
		authErr := refreshError(err)
		c.logger.Error("OAuth2 token refresh failed", map[string]interface{}{
			"status_code": authErr.StatusCode,
			"error":       authErr.Message,
		})

		return nil, authErr
	}

	now := c.now()
	refreshed := &Token{
		AccessToken:  exchanged.AccessToken,
		RefreshToken: exchanged.RefreshToken,
		TokenType:    exchanged.TokenType,
		ExpiresAt:    exchanged.Expiry,
	}

	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = current.RefreshToken
	}

	if refreshed.ExpiresAt.IsZero() {
		refreshed.ExpiresAt = now.Add(constants.DefaultTokenLifetime)
	}

	refreshed.ExpiresIn = int(refreshed.ExpiresAt.Sub(now).Seconds())

	c.store.Set(refreshed)
	c.refreshes++

	c.logger.Info("OAuth2 access token refreshed", map[string]interface{}{
		"expires_at": refreshed.ExpiresAt,
	})

	c.persist(ctx, refreshed)

	return refreshed, nil
}

func (c *OAuth2Credential) persist(ctx context.Context, token *Token) {
	if c.persister == nil {
		return
	}

	err := c.persister.SaveToken(ctx, token.AccessToken, token.RefreshToken, token.ExpiresAt)
	if err != nil {
		c.logger.Warn("Failed to persist refreshed token", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// refreshError maps a token endpoint failure onto an authentication error
// carrying the endpoint's status and parsed body.
func refreshError(err error) *fiken.APIError {
	retrieveErr := &oauth2.RetrieveError{}
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		classified := fiken.Classify(retrieveErr.Response.StatusCode, retrieveErr.Body)

		return fiken.NewAuthenticationError(
			"failed to refresh OAuth2 token: "+classified.Message,
			retrieveErr.Response.StatusCode,
			classified.Body,
			err,
		)
	}

	return fiken.NewAuthenticationError(fmt.Sprintf("failed to refresh OAuth2 token: %v", err), 0, nil, err)
}
