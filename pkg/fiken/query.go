package fiken

import (
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
)

// QueryParams holds the options of a list request. The page number is owned
// by the pagination iterator and is never set here.
type QueryParams struct {
	PageSize int
	SortBy   string
	Filters  map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// ToValues converts QueryParams to url.Values. Page sizes are clamped to the
// API maximum; a filter with several values is sent as repeated parameters.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.PageSize > 0 {
		values.Set(constants.QueryPageSize, strconv.Itoa(min(q.PageSize, constants.MaxPageSize)))
	}

	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(pageSize int) *QueryParams {
	q.PageSize = pageSize

	return q
}

// WithSortBy sets the sort expression, e.g. "createdDate desc".
func (q *QueryParams) WithSortBy(sortBy string) *QueryParams {
	q.SortBy = sortBy

	return q
}

// WithFilter appends values to a filter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// WithDate sets a date filter such as "issueDateGe".
func (q *QueryParams) WithDate(key string, date Date) *QueryParams {
	return q.setFilter(key, date.String())
}

// WithBool sets a boolean filter such as "settled".
func (q *QueryParams) WithBool(key string, value bool) *QueryParams {
	return q.setFilter(key, strconv.FormatBool(value))
}

// WithInt sets a numeric filter such as "customerId".
func (q *QueryParams) WithInt(key string, value int64) *QueryParams {
	return q.setFilter(key, strconv.FormatInt(value, 10))
}

func (q *QueryParams) setFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = []string{value}

	return q
}
