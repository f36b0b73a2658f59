package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = constants.NotAvailable
	Masked       = constants.MaskedSecret

	orePerKrone = 100
)

// Common static errors used throughout the commands package.
var (
	ErrCompanyRequired  = errors.New("company slug is required (use --company or 'fiken config set company SLUG')")
	ErrNotAuthenticated = errors.New("not authenticated: run 'fiken login' or set FIKEN_API_TOKEN")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidID        = errors.New("invalid ID")
	ErrInvalidFormat    = errors.New("invalid output format")
)

// tableFunc fills a table for the table output format.
type tableFunc func(table *tablewriter.Table)

// render writes value as JSON or YAML, or as the table built by fill.
func render(writer io.Writer, value interface{}, fill tableFunc) error {
	switch output := viper.GetString("output"); output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value) //nolint:wrapcheck // encoder errors are descriptive
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close() //nolint:wrapcheck // flush only
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(writer)
		fill(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, output)
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}

	return id, nil
}

// formatAmount renders an amount in øre as kroner with two decimals.
func formatAmount(ore int64) string {
	sign := ""
	if ore < 0 {
		sign = "-"
		ore = -ore
	}

	return fmt.Sprintf("%s%d.%02d", sign, ore/orePerKrone, ore%orePerKrone)
}

func formatDate(date fiken.Date) string {
	if date.IsZero() {
		return NotAvailable
	}

	return date.String()
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// addListFlags adds the paging flags shared by list commands.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page-size", constants.DefaultPageSize, "items per page (max 100)")
	cmd.Flags().Int("limit", 0, "stop after this many items (0 for all)")
}

// listParams builds query parameters from the paging flags.
func listParams(cmd *cobra.Command) *fiken.QueryParams {
	pageSize, _ := cmd.Flags().GetInt("page-size")

	return fiken.NewQueryParams().WithPageSize(pageSize)
}

// collect drains iterator, stopping at the --limit flag when set.
func collect[T any](cmd *cobra.Command, iterator *fiken.PaginationIterator[T]) ([]T, error) {
	limit, _ := cmd.Flags().GetInt("limit")

	items := make([]T, 0)

	for item, err := range iterator.Seq() {
		if err != nil {
			return nil, err //nolint:wrapcheck // already wrapped by the client
		}

		items = append(items, item)
		if limit > 0 && len(items) >= limit {
			break
		}
	}

	return items, nil
}

// companySlug returns the company from --company or the config file.
func companySlug() (string, error) {
	slug := viper.GetString("company")
	if slug == "" {
		return "", ErrCompanyRequired
	}

	return slug, nil
}
