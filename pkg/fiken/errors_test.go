package fiken

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		kind     ErrorKind
		sentinel error
	}{
		{http.StatusBadRequest, KindValidation, ErrValidation},
		{http.StatusUnauthorized, KindAuthentication, ErrAuthentication},
		{http.StatusForbidden, KindAuthentication, ErrAuthentication},
		{http.StatusNotFound, KindNotFound, ErrNotFound},
		{http.StatusMethodNotAllowed, KindMethodNotAllowed, ErrMethodNotAllowed},
		{http.StatusUnsupportedMediaType, KindUnsupportedMediaType, ErrUnsupportedMediaType},
		{http.StatusTooManyRequests, KindRateLimit, ErrRateLimited},
		{http.StatusInternalServerError, KindServer, ErrServer},
		{http.StatusServiceUnavailable, KindServer, ErrServer},
		{599, KindServer, ErrServer},
		{http.StatusConflict, KindAPI, ErrAPI},
		{418, KindAPI, ErrAPI},
		{302, KindAPI, ErrAPI},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			t.Parallel()

			err := Classify(tt.status, []byte(`{"message":"boom"}`))
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
			require.ErrorIs(t, err, tt.sentinel)
			require.ErrorIs(t, err, ErrAPI)
		})
	}
}

func TestClassify_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		message     string
		bodyMap     map[string]interface{}
		errorString string
	}{
		{
			name:        "json message",
			status:      400,
			body:        `{"message":"name is required","code":"X"}`,
			message:     "name is required",
			bodyMap:     map[string]interface{}{"message": "name is required", "code": "X"},
			errorString: "[400] name is required",
		},
		{
			name:        "plain text body",
			status:      500,
			body:        "  upstream exploded \n",
			message:     "upstream exploded",
			bodyMap:     map[string]interface{}{},
			errorString: "[500] upstream exploded",
		},
		{
			name:        "empty body",
			status:      404,
			body:        "",
			message:     "HTTP 404 error",
			bodyMap:     map[string]interface{}{},
			errorString: "[404] HTTP 404 error",
		},
		{
			name:        "json without message",
			status:      409,
			body:        `{"error":"conflict"}`,
			message:     `{"error":"conflict"}`,
			bodyMap:     map[string]interface{}{"error": "conflict"},
			errorString: `[409] {"error":"conflict"}`,
		},
		{
			name:        "json array body",
			status:      400,
			body:        `["a","b"]`,
			message:     `["a","b"]`,
			bodyMap:     map[string]interface{}{},
			errorString: `[400] ["a","b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Classify(tt.status, []byte(tt.body))
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.bodyMap, err.Body)
			assert.Equal(t, tt.errorString, err.Error())
		})
	}
}

func TestAPIError_Helpers(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting contact 7: %w", Classify(404, nil))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsUnauthorized(wrapped))
	assert.True(t, IsUnauthorized(Classify(403, nil)))
	assert.True(t, IsRateLimited(Classify(429, nil)))
	assert.True(t, IsValidation(Classify(400, nil)))
	assert.True(t, IsServerError(Classify(502, nil)))
	assert.False(t, IsNotFound(errors.New("plain")))

	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)

	_, ok = AsAPIError(errors.New("plain"))
	assert.False(t, ok)
}

func TestNewAuthenticationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := NewAuthenticationError("failed to refresh OAuth2 token", 0, nil, cause)

	assert.Equal(t, "failed to refresh OAuth2 token", err.Error())
	assert.Equal(t, map[string]interface{}{}, err.Body)
	require.ErrorIs(t, err, ErrAuthentication)
	require.ErrorIs(t, err, cause)
	assert.True(t, IsUnauthorized(err))
}

func TestAPIError_WithRequest(t *testing.T) {
	t.Parallel()

	header := http.Header{"X-Request-Id": []string{"abc"}}
	err := Classify(404, nil).WithRequest(http.MethodGet, "/companies/x", header)

	assert.Equal(t, http.MethodGet, err.Method)
	assert.Equal(t, "/companies/x", err.URL)
	assert.Equal(t, "abc", err.Header.Get("X-Request-Id"))
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "rate_limit", KindRateLimit.String())
	assert.Equal(t, "kind(99)", ErrorKind(99).String())
}
