package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

const testCompany = "/companies/fiken-demo"

// recordedRequest is what a test server saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
	Header http.Header
}

// testServer wraps httptest.Server and records every request.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func (s *testServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *testServer {
	t.Helper()

	server := &testServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, err := io.ReadAll(request.Body)
		assert.NoError(t, err)
		request.Body = io.NopCloser(bytes.NewReader(body))

		server.mu.Lock()
		server.requests = append(server.requests, recordedRequest{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.RawQuery,
			Body:   body,
			Header: request.Header.Clone(),
		})
		server.mu.Unlock()

		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	return server
}

// NewTestClient creates a client authenticated with a static token against
// baseURL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), &fiken.Config{
		BaseURL:  baseURL,
		APIToken: "test-token",
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func writeJSON(t *testing.T, writer http.ResponseWriter, status int, value interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if value != nil {
		assert.NoError(t, json.NewEncoder(writer).Encode(value))
	}
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      error
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				writeJSON(t, writer, testCase.StatusCode, testCase.Response)
			})

			result, err := getFunc(NewTestClient(t, server.URL))(context.Background())

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
		})
	}
}

// createdAt answers a create with 201 and a Location, and a GET of that
// location with resource.
func createdAt(t *testing.T, location string, resource interface{}) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodGet {
			writeJSON(t, writer, http.StatusOK, resource)

			return
		}

		writer.Header().Set("Location", location)
		writer.WriteHeader(http.StatusCreated)
	}
}
