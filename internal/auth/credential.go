// Package auth produces the per-request authentication headers for the
// Fiken API, from a personal API token or a refreshing OAuth2 authorization.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
)

// ErrEmptyToken is returned for a static credential without a token.
var ErrEmptyToken = errors.New("API token is empty")

// Credential yields the headers every API request carries: a bearer
// Authorization header and a fresh X-Request-ID.
type Credential interface {
	Headers(ctx context.Context) (map[string]string, error)
}

// StaticToken authenticates with a personal API token.
type StaticToken struct {
	token string
}

// NewStaticToken creates a credential for a personal API token.
func NewStaticToken(token string) (*StaticToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	return &StaticToken{token: token}, nil
}

// Headers implements Credential.
func (s *StaticToken) Headers(ctx context.Context) (map[string]string, error) {
	return bearerHeaders(s.token), nil
}

func bearerHeaders(accessToken string) map[string]string {
	return map[string]string{
		constants.HeaderAuthorization: "Bearer " + accessToken,
		constants.HeaderRequestID:     uuid.NewString(),
	}
}
