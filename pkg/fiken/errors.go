package fiken

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an APIError by the HTTP status that produced it.
type ErrorKind int

// Error kinds.
const (
	KindAPI ErrorKind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindMethodNotAllowed
	KindUnsupportedMediaType
	KindRateLimit
	KindServer
)

// Sentinel errors matched by errors.Is against an *APIError of the same kind.
var (
	ErrAPI                  = errors.New("fiken API error")
	ErrValidation           = errors.New("validation error")
	ErrAuthentication       = errors.New("authentication error")
	ErrNotFound             = errors.New("not found")
	ErrMethodNotAllowed     = errors.New("method not allowed")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrRateLimited          = errors.New("rate limit exceeded")
	ErrServer               = errors.New("server error")
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrConfiguration      = errors.New("invalid client configuration")
	ErrInvalidCredentials = errors.New("either an API token or all OAuth2 credentials " +
		"(access token, refresh token, client ID, client secret) must be provided")
	ErrNoMoreItems     = errors.New("no more items")
	ErrInvalidPageBody = errors.New("page body is not valid JSON")
	ErrFileNotFound    = errors.New("file not found")
	ErrMissingLocation = errors.New("created resource has no usable Location header")
	ErrNotRegularFile  = errors.New("not a regular file")
	ErrTokenNotFound   = errors.New("no token stored")
)

var kindNames = map[ErrorKind]string{
	KindAPI:                  "api",
	KindValidation:           "validation",
	KindAuthentication:       "authentication",
	KindNotFound:             "not_found",
	KindMethodNotAllowed:     "method_not_allowed",
	KindUnsupportedMediaType: "unsupported_media_type",
	KindRateLimit:            "rate_limit",
	KindServer:               "server",
}

var kindSentinels = map[ErrorKind]error{
	KindAPI:                  ErrAPI,
	KindValidation:           ErrValidation,
	KindAuthentication:       ErrAuthentication,
	KindNotFound:             ErrNotFound,
	KindMethodNotAllowed:     ErrMethodNotAllowed,
	KindUnsupportedMediaType: ErrUnsupportedMediaType,
	KindRateLimit:            ErrRateLimited,
	KindServer:               ErrServer,
}

// String returns the snake_case name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// APIError is a classified failure returned by the Fiken API or by the
// OAuth2 token endpoint.
type APIError struct {
	Kind       ErrorKind              `json:"kind"        yaml:"kind"`
	Message    string                 `json:"message"     yaml:"message"`
	StatusCode int                    `json:"status_code" yaml:"status_code"`
	Body       map[string]interface{} `json:"body"        yaml:"body"`
	RawBody    []byte                 `json:"-"           yaml:"-"`

	// Originating request and response, for diagnostics.
	Method string      `json:"method,omitempty" yaml:"method,omitempty"`
	URL    string      `json:"url,omitempty"    yaml:"url,omitempty"`
	Header http.Header `json:"-"                yaml:"-"`

	// Cause is the underlying error when the failure did not come from an
	// HTTP response, e.g. a token endpoint that could not be reached.
	Cause error `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}

	return e.Message
}

// Is reports whether target is the sentinel for this error's kind, or ErrAPI.
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}

	return kindSentinels[e.Kind] == target
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// WithRequest records the originating request and response headers.
func (e *APIError) WithRequest(method, url string, header http.Header) *APIError {
	e.Method = method
	e.URL = url
	e.Header = header

	return e
}

// KindForStatus maps an HTTP status code to an ErrorKind.
func KindForStatus(statusCode int) ErrorKind {
	switch {
	case statusCode == http.StatusBadRequest:
		return KindValidation
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return KindAuthentication
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	case statusCode == http.StatusUnsupportedMediaType:
		return KindUnsupportedMediaType
	case statusCode == http.StatusTooManyRequests:
		return KindRateLimit
	case statusCode >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindAPI
	}
}

// Classify builds the APIError for a failed response. It never fails: an
// unparseable body yields an empty Body map and a message taken from the raw
// text, or "HTTP <status> error" when there is no text at all.
func Classify(statusCode int, body []byte) *APIError {
	parsed, message := parseErrorBody(body)
	if message == "" {
		message = string(bytes.TrimSpace(body))
	}

	if message == "" {
		message = fmt.Sprintf("HTTP %d error", statusCode)
	}

	return &APIError{
		Kind:       KindForStatus(statusCode),
		Message:    message,
		StatusCode: statusCode,
		Body:       parsed,
		RawBody:    body,
	}
}

// NewAuthenticationError builds an authentication error that did not come
// from a regular API response.
func NewAuthenticationError(message string, statusCode int, body map[string]interface{}, cause error) *APIError {
	if body == nil {
		body = map[string]interface{}{}
	}

	return &APIError{
		Kind:       KindAuthentication,
		Message:    message,
		StatusCode: statusCode,
		Body:       body,
		Cause:      cause,
	}
}

// ParseErrorBody decodes a JSON object body, returning an empty map when the
// body is not a JSON object.
func ParseErrorBody(body []byte) map[string]interface{} {
	parsed, _ := parseErrorBody(body)

	return parsed
}

func parseErrorBody(body []byte) (map[string]interface{}, string) {
	parsed := map[string]interface{}{}
	if len(bytes.TrimSpace(body)) == 0 {
		return parsed, ""
	}

	err := json.Unmarshal(body, &parsed)
	if err != nil {
		return map[string]interface{}{}, ""
	}

	message, _ := parsed["message"].(string)

	return parsed, message
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if the error is an authentication error (401/403 or
// a failed token refresh).
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsRateLimited checks if the error is a 429 rate limit error.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsValidation checks if the error is a 400 validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsServerError checks if the error is a 5xx error.
func IsServerError(err error) bool {
	return errors.Is(err, ErrServer)
}

// AsAPIError extracts the *APIError from err, if there is one.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
