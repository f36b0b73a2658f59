// Package http is the transport every Fiken API call goes through. Each
// attempt passes the request gate, picks up fresh credential headers and has
// its failures classified into *fiken.APIError values.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/fiken-client/internal/auth"
	"github.com/fivetwenty-io/fiken-client/internal/constants"
	"github.com/fivetwenty-io/fiken-client/internal/ratelimit"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// ErrNilAttachment is returned by PostMultipart without a file.
var ErrNilAttachment = errors.New("attachment is nil")

// Request describes an API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Client sends requests to the Fiken API.
type Client struct {
	baseURL      string
	credential   auth.Credential
	gate         *ratelimit.Gate
	retry        *retryablehttp.Client
	logger       fiken.Logger
	debug        bool
	userAgent    string
	interceptors *fiken.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger fiken.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables retries of 429, 5xx and connection failures.
// Every retry attempt passes the gate again.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry.RetryMax = retryMax
		c.retry.RetryWaitMin = waitMin
		c.retry.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retry.HTTPClient.Timeout = timeout
	}
}

// WithGate shares a request gate. Clients without one get their own.
func WithGate(gate *ratelimit.Gate) Option {
	return func(c *Client) {
		if gate != nil {
			c.gate = gate
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.retry.HTTPClient = httpClient
		}
	}
}

// WithInterceptors runs the chain around every request.
func WithInterceptors(chain *fiken.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for baseURL. A nil credential sends no
// Authorization header.
func NewClient(baseURL string, credential auth.Credential, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		credential: credential,
		retry:      retryClient,
		logger:     fiken.NopLogger{},
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.gate == nil {
		client.gate = ratelimit.New(ratelimit.WithLogger(client.logger))
	}

	retryClient.PrepareRetry = client.prepareRetry
	retryClient.RequestLogHook = client.logRetry

	return client
}

// Do sends req. For status codes of 400 and above both the response and a
// classified *fiken.APIError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	target := c.resolve(req.Path, req.Query)

	var rawBody interface{}
	if len(body) > 0 {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	intercepted := &fiken.Request{
		Method:   req.Method,
		Path:     req.Path,
		Headers:  httpReq.Header,
		Body:     body,
		Metadata: map[string]interface{}{},
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	err = c.authorize(ctx, httpReq.Request)
	if err != nil {
		return nil, err
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    target,
		})
	}

	started := time.Now()

	resp, err := c.retry.Do(httpReq)
	if err != nil {
		err = fmt.Errorf("%s %s failed: %w", req.Method, req.Path, err)
		c.intercept(ctx, intercepted, &fiken.Response{Error: err})

		return nil, err
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": time.Since(started).String(),
			"bytes":    len(respBody),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Headers:    resp.Header,
	}

	var apiErr error
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr = fiken.Classify(resp.StatusCode, respBody).WithRequest(req.Method, target, resp.Header)
	}

	c.intercept(ctx, intercepted, &fiken.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
		Error:      apiErr,
	})

	return response, apiErr
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostRaw sends body unchanged with the given content type.
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Headers: map[string]string{"Content-Type": contentType},
	})
}

// PostMultipart uploads file as the "file" part of a multipart form, with
// its name repeated in a "filename" field and any extra fields after it.
func (c *Client) PostMultipart(ctx context.Context, path string, file *fiken.AttachmentFile) (*Response, error) {
	if file == nil {
		return nil, ErrNilAttachment
	}

	body, contentType, err := encodeMultipart(file)
	if err != nil {
		return nil, err
	}

	return c.PostRaw(ctx, path, body, contentType)
}

// FetchPage implements fiken.PageFetcher. Error statuses are returned as a
// page so that the iterator classifies them itself.
func (c *Client) FetchPage(ctx context.Context, path string, query url.Values) (*fiken.PageResponse, error) {
	resp, err := c.Get(ctx, path, query)
	if resp == nil {
		return nil, err
	}

	return &fiken.PageResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Headers,
		Body:       resp.Body,
	}, nil
}

// Gate returns the request gate in use.
func (c *Client) Gate() *ratelimit.Gate {
	return c.gate
}

// Close releases idle connections.
func (c *Client) Close() {
	c.retry.HTTPClient.CloseIdleConnections()
}

// authorize waits for the gate and then sets fresh credential headers.
func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	err := c.gate.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("request gate: %w", err)
	}

	if c.credential == nil {
		return nil
	}

	headers, err := c.credential.Headers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get credential headers: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return nil
}

func (c *Client) prepareRetry(req *http.Request) error {
	return c.authorize(req.Context(), req)
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	c.logger.Warn("Retrying request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

func (c *Client) intercept(ctx context.Context, req *fiken.Request, resp *fiken.Response) {
	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil {
		c.logger.Warn("Response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// resolve joins path onto the base URL. Absolute URLs, as found in Location
// headers, are used unchanged.
func (c *Client) resolve(path string, query url.Values) string {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}

	if len(query) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}

		target += separator + query.Encode()
	}

	return target
}

func encodeBody(body interface{}) ([]byte, string, error) {
	switch typed := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return typed, "", nil
	case io.Reader:
		data, err := io.ReadAll(typed)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read request body: %w", err)
		}

		return data, "", nil
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}

		return data, "application/json", nil
	}
}

func encodeMultipart(file *fiken.AttachmentFile) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	contentType := file.ContentType
	if contentType == "" {
		contentType = fiken.GuessContentType(file.Filename)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		constants.MultipartFileField, file.Filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}

	_, err = part.Write(file.Data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to write file part: %w", err)
	}

	err = writer.WriteField(constants.MultipartFilenameField, file.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to write filename field: %w", err)
	}

	for key, value := range file.Fields {
		err = writer.WriteField(key, value)
		if err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
