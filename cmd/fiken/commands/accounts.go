package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Show the chart of accounts and balances",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsBalancesCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
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
			if from != "" {
				params.WithFilter("fromAccount", from)
			}

			if to != "" {
				params.WithFilter("toAccount", to)
			}

			accounts, err := collect(cmd, company.Accounts().List(cmd.Context(), params))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), accounts, func(table *tablewriter.Table) {
				table.Header("Code", "Name")

				for _, account := range accounts {
					_ = table.Append(account.Code, account.Name)
				}
			})
		},
	}

	addListFlags(cmd)
	cmd.Flags().StringVar(&from, "from", "", "first account code")
	cmd.Flags().StringVar(&to, "to", "", "last account code")

	return cmd
}

func newAccountsBalancesCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "List account balances at a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := fiken.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
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

			balances, err := collect(cmd, company.AccountBalances().List(cmd.Context(), at, listParams(cmd)))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), balances, func(table *tablewriter.Table) {
				table.Header("Code", "Name", "Balance")

				for _, balance := range balances {
					_ = table.Append(balance.Code, balance.Name, formatAmount(balance.Balance))
				}
			})
		},
	}

	addListFlags(cmd)
	cmd.Flags().StringVar(&date, "date", "", "balance date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
