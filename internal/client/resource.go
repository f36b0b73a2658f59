package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
	http_internal "github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// decode unmarshals a response body into a new T.
func decode[T any](body []byte, what string) (*T, error) {
	var result T

	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &result, nil
}

// getResource fetches and decodes a single resource.
func getResource[T any](ctx context.Context, httpClient *http_internal.Client, path string, query url.Values, what string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	return decode[T](resp.Body, what)
}

// getList fetches an endpoint that returns a plain JSON array.
func getList[T any](ctx context.Context, httpClient *http_internal.Client, path string, query url.Values, what string) ([]T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	items := []T{}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return items, nil
	}

	err = json.Unmarshal(resp.Body, &items)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", what, err)
	}

	return items, nil
}

// listResources returns a lazy iterator over a paginated endpoint.
func listResources[T any](ctx context.Context, httpClient *http_internal.Client, path string, params *fiken.QueryParams) *fiken.PaginationIterator[T] {
	return fiken.NewPaginationIterator[T](ctx, httpClient, path, params)
}

// createResource posts body and returns the created resource. Fiken answers
// 201 with a Location header; the new ID is taken from it and the resource
// fetched through get. Without a Location the response body is decoded.
func createResource[T any](
	ctx context.Context,
	httpClient *http_internal.Client,
	path string,
	body interface{},
	get func(context.Context, int64) (*T, error),
	what string,
) (*T, error) {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", what, err)
	}

	return resolveCreated(ctx, resp, get, what)
}

// resolveCreated follows the Location of a 201 response.
func resolveCreated[T any](
	ctx context.Context,
	resp *http_internal.Response,
	get func(context.Context, int64) (*T, error),
	what string,
) (*T, error) {
	location := resp.Headers.Get(constants.HeaderLocation)
	if resp.StatusCode == http.StatusCreated && location != "" {
		id, err := idFromLocation(location)
		if err != nil {
			return nil, err
		}

		return get(ctx, id)
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, fmt.Errorf("creating %s: %w", what, fiken.ErrMissingLocation)
	}

	return decode[T](resp.Body, what)
}

// updateResource sends body with method and re-reads the resource.
func updateResource[T any](
	ctx context.Context,
	httpClient *http_internal.Client,
	method string,
	path string,
	body interface{},
	get func(context.Context) (*T, error),
	what string,
) (*T, error) {
	_, err := httpClient.Do(ctx, &http_internal.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", what, err)
	}

	return get(ctx)
}

// deleteResource sends a DELETE.
func deleteResource(ctx context.Context, httpClient *http_internal.Client, path, what string) error {
	_, err := httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", what, err)
	}

	return nil
}

// patchAction sends a PATCH with query parameters, as used by the delete and
// settle actions of sales, purchases and transactions. The resource in the
// response body is returned, or re-read through get when the body is empty.
func patchAction[T any](
	ctx context.Context,
	httpClient *http_internal.Client,
	path string,
	query url.Values,
	get func(context.Context) (*T, error),
	what string,
) (*T, error) {
	resp, err := httpClient.Do(ctx, &http_internal.Request{Method: http.MethodPatch, Path: path, Query: query})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return get(ctx)
	}

	return decode[T](resp.Body, what)
}

// idFromLocation parses the last path segment of a Location header.
func idFromLocation(location string) (int64, error) {
	trimmed := strings.TrimRight(location, "/")
	segment := trimmed[strings.LastIndex(trimmed, "/")+1:]

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: location %q", constants.ErrInvalidResourceID, location)
	}

	return id, nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// descriptionQuery is the query of the delete actions.
func descriptionQuery(description string) url.Values {
	query := url.Values{}
	if description != "" {
		query.Set("description", description)
	}

	return query
}

// withDate copies params and adds a date filter. A zero date adds nothing.
func withDate(params *fiken.QueryParams, key string, date fiken.Date) *fiken.QueryParams {
	out := fiken.NewQueryParams()
	if params != nil {
		out.PageSize = params.PageSize
		out.SortBy = params.SortBy

		for filter, values := range params.Filters {
			out.Filters[filter] = append([]string(nil), values...)
		}
	}

	if !date.IsZero() {
		out.WithDate(key, date)
	}

	return out
}

// dateQuery is a single "date" parameter, or nil for a zero date.
func dateQuery(date fiken.Date) url.Values {
	if date.IsZero() {
		return nil
	}

	return url.Values{"date": []string{date.String()}}
}
