package fiken

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
)

// PageResponse is one raw page of a list endpoint.
type PageResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// PageFetcher fetches a single page. Implementations must send every call
// through the client's request gate with fresh credential headers.
type PageFetcher interface {
	FetchPage(ctx context.Context, path string, query url.Values) (*PageResponse, error)
}

// PaginationIterator walks every item of a paginated list endpoint. Nothing
// is fetched until the first call to Next, HasNext or NextPage. Once an
// error has been returned the iterator keeps returning it.
type PaginationIterator[T any] struct {
	ctx     context.Context //nolint:containedctx // the iterator fetches lazily on behalf of its caller
	fetcher PageFetcher
	path    string
	query   url.Values

	items       []T
	index       int
	started     bool
	currentPage int
	totalPages  int
	fetched     int
	err         error
}

// NewPaginationIterator creates an iterator over path. Construction performs
// no I/O.
func NewPaginationIterator[T any](ctx context.Context, fetcher PageFetcher, path string, params *QueryParams) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:        ctx,
		fetcher:    fetcher,
		path:       path,
		query:      params.ToValues(),
		totalPages: -1,
	}
}

// HasNext reports whether another item is available, fetching the next page
// if needed. Errors are reported by the following Next call.
func (p *PaginationIterator[T]) HasNext() bool {
	return p.fill() == nil
}

// Next returns the next item, or ErrNoMoreItems when the list is exhausted.
func (p *PaginationIterator[T]) Next() (T, error) {
	var zero T

	err := p.fill()
	if err != nil {
		return zero, err
	}

	item := p.items[p.index]
	p.index++

	return item, nil
}

// NextPage returns the unread items of the current page, fetching the next
// page when the current one has been consumed.
func (p *PaginationIterator[T]) NextPage() ([]T, error) {
	err := p.fill()
	if err != nil {
		return nil, err
	}

	page := p.items[p.index:]
	p.index = len(p.items)

	return page, nil
}

// All collects the remaining items.
func (p *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for {
		page, err := p.NextPage()
		if errors.Is(err, ErrNoMoreItems) {
			return all, nil
		}

		if err != nil {
			return all, err
		}

		all = append(all, page...)
	}
}

// ForEach calls fn for every remaining item and stops at the first error.
func (p *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for {
		item, err := p.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return nil
		}

		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// Seq exposes the iterator as a range-over-func sequence. A failure is
// yielded once with a zero item.
func (p *PaginationIterator[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := p.Next()
			if errors.Is(err, ErrNoMoreItems) {
				return
			}

			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// CurrentPage is the 0-indexed page the buffered items came from.
func (p *PaginationIterator[T]) CurrentPage() int {
	return p.currentPage
}

// TotalPages returns the page count reported by the API, if any.
func (p *PaginationIterator[T]) TotalPages() (int, bool) {
	return p.totalPages, p.totalPages >= 0
}

// PagesFetched counts the pages retrieved so far.
func (p *PaginationIterator[T]) PagesFetched() int {
	return p.fetched
}

// fill makes sure at least one unread item is buffered.
func (p *PaginationIterator[T]) fill() error {
	if p.err != nil {
		return p.err
	}

	if !p.started {
		p.started = true

		err := p.fetch(0)
		if err != nil {
			return p.fail(err)
		}
	}

	if p.index < len(p.items) {
		return nil
	}

	if p.totalPages < 0 || p.currentPage >= p.totalPages-1 {
		return p.fail(ErrNoMoreItems)
	}

	err := p.fetch(p.currentPage + 1)
	if err != nil {
		return p.fail(err)
	}

	if p.index < len(p.items) {
		return nil
	}

	return p.fail(ErrNoMoreItems)
}

func (p *PaginationIterator[T]) fail(err error) error {
	p.err = err

	return err
}

func (p *PaginationIterator[T]) fetch(page int) error {
	query := url.Values{}
	for key, values := range p.query {
		query[key] = append([]string(nil), values...)
	}

	query.Set(constants.QueryPage, strconv.Itoa(page))

	resp, err := p.fetcher.FetchPage(p.ctx, p.path, query)
	if err != nil {
		return fmt.Errorf("failed to fetch page %d of %s: %w", page, p.path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Classify(resp.StatusCode, resp.Body).WithRequest(http.MethodGet, p.path, resp.Header)
	}

	items, err := decodePage[T](resp.Body)
	if err != nil {
		return fmt.Errorf("failed to decode page %d of %s: %w", page, p.path, err)
	}

	p.fetched++
	p.items = items
	p.index = 0
	p.currentPage = page

	if reported, ok := headerInt(resp.Header, constants.HeaderPage); ok && reported >= page {
		p.currentPage = reported
	}

	if total, ok := headerInt(resp.Header, constants.HeaderPageCount); ok && total >= 0 {
		p.totalPages = total
	}

	return nil
}

// decodePage reads a JSON array. Any other JSON value is an empty page.
func decodePage[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		if len(trimmed) > 0 && !json.Valid(trimmed) {
			return nil, ErrInvalidPageBody
		}

		return nil, nil
	}

	var items []T

	err := json.Unmarshal(trimmed, &items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPageBody, err)
	}

	return items, nil
}

func headerInt(header http.Header, key string) (int, bool) {
	raw := strings.TrimSpace(header.Get(key))
	if raw == "" {
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return value, true
}

// PaginationOptions bounds FetchAllPages and StreamPages.
type PaginationOptions struct {
	PageSize int
	MaxPages int
}

// DefaultPaginationOptions returns the API default page size with no page limit.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: constants.DefaultPageSize,
	}
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Page  int
	Items []T
	Err   error
}

// FetchAllPages collects every item of path, stopping after MaxPages pages
// when a limit is set.
func FetchAllPages[T any](ctx context.Context, fetcher PageFetcher, path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	iterator := newBoundedIterator[T](ctx, fetcher, path, params, options)

	var all []T

	for page := 0; options == nil || options.MaxPages <= 0 || page < options.MaxPages; page++ {
		items, err := iterator.NextPage()
		if errors.Is(err, ErrNoMoreItems) {
			break
		}

		if err != nil {
			return all, err
		}

		all = append(all, items...)
	}

	return all, nil
}

// StreamPages fetches pages in a background goroutine and delivers them on
// the returned channel, which is closed after the last page, the first
// error, or cancellation of ctx.
func StreamPages[T any](ctx context.Context, fetcher PageFetcher, path string, params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T], 1)
	iterator := newBoundedIterator[T](ctx, fetcher, path, params, options)

	go func() {
		defer close(results)

		for page := 0; options == nil || options.MaxPages <= 0 || page < options.MaxPages; page++ {
			items, err := iterator.NextPage()
			if errors.Is(err, ErrNoMoreItems) {
				return
			}

			select {
			case results <- PageResult[T]{Page: iterator.CurrentPage(), Items: items, Err: err}:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}
		}
	}()

	return results
}

func newBoundedIterator[T any](ctx context.Context, fetcher PageFetcher, path string, params *QueryParams, options *PaginationOptions) *PaginationIterator[T] {
	if options != nil && options.PageSize > 0 {
		merged := NewQueryParams()
		if params != nil {
			merged.SortBy = params.SortBy
			for key, values := range params.Filters {
				merged.Filters[key] = append([]string(nil), values...)
			}
		}

		merged.PageSize = options.PageSize
		params = merged
	}

	return NewPaginationIterator[T](ctx, fetcher, path, params)
}
