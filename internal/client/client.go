package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/fiken-client/internal/auth"
	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/internal/ratelimit"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = fiken.ErrConfigRequired
	ErrCompanySlugMissing = errors.New("company slug is required")
)

var _ fiken.Client = (*Client)(nil)

// Client implements the fiken.Client interface.
type Client struct {
	httpClient *http.Client
	credential auth.Credential
	gate       *ratelimit.Gate
	baseURL    string
	logger     fiken.Logger

	user      fiken.UserClient
	companies fiken.CompaniesClient
}

// New creates a Fiken API client. The configuration is validated before
// anything else; no request is sent until a resource method is called.
func New(ctx context.Context, config *fiken.Config) (*Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}

	config = config.WithDefaults()

	credential, err := createCredential(config)
	if err != nil {
		return nil, err
	}

	return NewWithCredential(config, credential), nil
}

// NewWithCredential creates a client that authenticates with credential.
// A nil credential sends unauthenticated requests.
func NewWithCredential(config *fiken.Config, credential auth.Credential) *Client {
	config = config.WithDefaults()

	gate := ratelimit.New(
		ratelimit.WithLimit(config.RequestsPerSecond),
		ratelimit.WithLogger(config.Logger),
	)

	httpClient := http.NewClient(config.BaseURL, credential, createHTTPClientOptions(config, gate)...)

	client := &Client{
		httpClient: httpClient,
		credential: credential,
		gate:       gate,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// createCredential picks the API token when present and the OAuth2 set
// otherwise.
func createCredential(config *fiken.Config) (auth.Credential, error) {
	if config.UsesAPIToken() {
		credential, err := auth.NewStaticToken(config.APIToken)
		if err != nil {
			return nil, fmt.Errorf("creating API token credential: %w", err)
		}

		return credential, nil
	}

	return auth.NewOAuth2Credential(&auth.OAuth2Config{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.TokenURL,
		ExpiresAt:    config.TokenExpiresAt,
		HTTPClient:   config.HTTPClient,
		Persister:    config.TokenPersister,
		Logger:       config.Logger,
	}), nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *fiken.Config, gate *ratelimit.Gate) []http.Option {
	httpOpts := []http.Option{
		http.WithGate(gate),
		http.WithLogger(config.Logger),
		http.WithTimeout(config.HTTPTimeout),
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if len(config.RequestInterceptors) > 0 || len(config.ResponseInterceptors) > 0 {
		chain := fiken.NewInterceptorChain()
		for _, interceptor := range config.RequestInterceptors {
			chain.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range config.ResponseInterceptors {
			chain.AddResponseInterceptor(interceptor)
		}

		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts
}

// User implements fiken.Client.User.
func (c *Client) User() fiken.UserClient {
	return c.user
}

// Companies implements fiken.Client.Companies.
func (c *Client) Companies() fiken.CompaniesClient {
	return c.companies
}

// Company implements fiken.Client.Company.
func (c *Client) Company(slug string) fiken.CompanyClient {
	return NewCompanyClient(c.httpClient, slug)
}

// Pages implements fiken.Client.Pages.
func (c *Client) Pages() fiken.PageFetcher {
	return c.httpClient
}

// Close implements fiken.Client.Close.
func (c *Client) Close() {
	c.httpClient.Close()
}

// Credential returns the credential requests are signed with.
func (c *Client) Credential() auth.Credential {
	return c.credential
}

// Gate returns the request gate shared by all resource clients.
func (c *Client) Gate() *ratelimit.Gate {
	return c.gate
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// initializeResourceClients initializes the top-level resource clients.
func (c *Client) initializeResourceClients() {
	c.user = NewUserClient(c.httpClient)
	c.companies = NewCompaniesClient(c.httpClient)
}
