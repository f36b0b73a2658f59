//nolint:testpackage // Need access to internal types
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

type renderRow struct {
	Name  string `json:"name"  yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func fillRow(row renderRow) tableFunc {
	return func(table *tablewriter.Table) {
		table.Header("Name", "Count")
		_ = table.Append(row.Name, "7")
	}
}

func TestRender(t *testing.T) { //nolint:paralleltest // mutates global viper state
	row := renderRow{Name: "Kaffe", Count: 7}

	t.Run("json", func(t *testing.T) {
		resetViper(t)
		viper.Set("output", "json")

		var out bytes.Buffer
		require.NoError(t, render(&out, row, fillRow(row)))

		var decoded renderRow
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, row, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		resetViper(t)
		viper.Set("output", "yaml")

		var out bytes.Buffer
		require.NoError(t, render(&out, row, fillRow(row)))

		var decoded renderRow
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, row, decoded)
	})

	t.Run("table by default", func(t *testing.T) {
		resetViper(t)

		var out bytes.Buffer
		require.NoError(t, render(&out, row, fillRow(row)))
		assert.Contains(t, out.String(), "Kaffe")
		assert.Contains(t, out.String(), "NAME")
	})

	t.Run("unknown format", func(t *testing.T) {
		resetViper(t)
		viper.Set("output", "xml")

		err := render(&bytes.Buffer{}, row, fillRow(row))
		require.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ore  int64
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{12550, "125.50"},
		{-9900, "-99.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.ore))
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NotAvailable, formatDate(fiken.Date{}))
	assert.Equal(t, "2024-03-01", formatDate(fiken.NewDate(2024, 3, 1)))
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()

			id, err := parseID(tt.arg)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

type pagedFetcher struct {
	pages [][]byte
	calls int
}

func (f *pagedFetcher) FetchPage(_ context.Context, _ string, query url.Values) (*fiken.PageResponse, error) {
	f.calls++

	page, _ := strconv.Atoi(query.Get("page"))
	header := http.Header{}
	header.Set("Fiken-Api-Page", strconv.Itoa(page))
	header.Set("Fiken-Api-Page-Count", strconv.Itoa(len(f.pages)))

	return &fiken.PageResponse{StatusCode: http.StatusOK, Header: header, Body: f.pages[page]}, nil
}

func TestCollect(t *testing.T) {
	t.Parallel()

	newFetcher := func() *pagedFetcher {
		return &pagedFetcher{pages: [][]byte{
			[]byte(`[{"code":"1920","name":"Bank"},{"code":"1500","name":"Kundefordringer"}]`),
			[]byte(`[{"code":"3000","name":"Salgsinntekt"}]`),
		}}
	}

	t.Run("all pages", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{}
		addListFlags(cmd)

		fetcher := newFetcher()
		iterator := fiken.NewPaginationIterator[fiken.Account](context.Background(), fetcher, "accounts", listParams(cmd))

		accounts, err := collect(cmd, iterator)
		require.NoError(t, err)
		assert.Len(t, accounts, 3)
		assert.Equal(t, 2, fetcher.calls)
	})

	t.Run("stops at limit", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{}
		addListFlags(cmd)
		require.NoError(t, cmd.Flags().Set("limit", "2"))

		fetcher := newFetcher()
		iterator := fiken.NewPaginationIterator[fiken.Account](context.Background(), fetcher, "accounts", listParams(cmd))

		accounts, err := collect(cmd, iterator)
		require.NoError(t, err)
		assert.Equal(t, []fiken.Account{{Code: "1920", Name: "Bank"}, {Code: "1500", Name: "Kundefordringer"}}, accounts)
		assert.Equal(t, 1, fetcher.calls)
	})
}
