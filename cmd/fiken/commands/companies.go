package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "List and show companies",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesGetCommand())

	return cmd
}

func newCompaniesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies the user can access",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			companies, err := collect(cmd, sess.client.Companies().List(cmd.Context(), listParams(cmd)))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), companies, func(table *tablewriter.Table) {
				table.Header("Slug", "Name", "Organization Number", "Created")

				for _, company := range companies {
					_ = table.Append(company.Slug, company.Name, company.OrganizationNumber, formatDate(company.CreationDate))
				}
			})
		},
	}

	addListFlags(cmd)

	return cmd
}

func newCompaniesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [SLUG]",
		Short: "Show a company (defaults to the configured company)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			var company *fiken.Company

			if len(args) == 1 {
				company, err = sess.client.Companies().Get(cmd.Context(), args[0])
			} else {
				var scoped fiken.CompanyClient

				scoped, err = sess.company()
				if err != nil {
					return err
				}

				company, err = scoped.Get(cmd.Context())
			}

			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the client
			}

			return render(cmd.OutOrStdout(), company, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Slug", company.Slug)
				_ = table.Append("Name", company.Name)
				_ = table.Append("Organization Number", company.OrganizationNumber)
				_ = table.Append("VAT Type", company.VatType)
				_ = table.Append("Email", company.Email)
				_ = table.Append("Created", formatDate(company.CreationDate))
			})
		},
	}
}
