package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "List and show invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		unsettled bool
		customer  int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			company, err := sess.company()
			if err != nil {
				return err
			}

			params := listParams(cmd)
			if unsettled {
				params.WithBool("settled", false)
			}

			if customer > 0 {
				params.WithInt("customerId", customer)
			}

			invoices, err := collect(cmd, company.Invoices().List(cmd.Context(), params))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), invoices, func(table *tablewriter.Table) {
				table.Header("ID", "Number", "Customer", "Issued", "Due", "Gross", "Currency", "Settled")

				for _, invoice := range invoices {
					customerName := NotAvailable
					if invoice.Customer != nil {
						customerName = invoice.Customer.Name
					}

					_ = table.Append(
						strconv.FormatInt(invoice.InvoiceID, 10),
						strconv.FormatInt(invoice.InvoiceNumber, 10),
						customerName,
						formatDate(invoice.IssueDate),
						formatDate(invoice.DueDate),
						formatAmount(invoice.Gross),
						invoice.Currency,
						formatBool(invoice.Settled),
					)
				}
			})
		},
	}

	addListFlags(cmd)
	cmd.Flags().BoolVar(&unsettled, "unsettled", false, "only unsettled invoices")
	cmd.Flags().Int64Var(&customer, "customer", 0, "only invoices for this contact ID")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sess, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			company, err := sess.company()
			if err != nil {
				return err
			}

			invoice, err := company.Invoices().Get(cmd.Context(), id)
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the client
			}

			return render(cmd.OutOrStdout(), invoice, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(invoice.InvoiceID, 10))
				_ = table.Append("Number", strconv.FormatInt(invoice.InvoiceNumber, 10))

				if invoice.Customer != nil {
					_ = table.Append("Customer", invoice.Customer.Name)
				}

				_ = table.Append("Issued", formatDate(invoice.IssueDate))
				_ = table.Append("Due", formatDate(invoice.DueDate))
				_ = table.Append("Net", formatAmount(invoice.Net))
				_ = table.Append("VAT", formatAmount(invoice.Vat))
				_ = table.Append("Gross", formatAmount(invoice.Gross))
				_ = table.Append("Currency", invoice.Currency)
				_ = table.Append("Settled", formatBool(invoice.Settled))

				for i, line := range invoice.Lines {
					_ = table.Append("Line "+strconv.Itoa(i+1), line.Description)
				}
			})
		},
	}
}
