package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fiken-client/cmd/fiken/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fiken",
		Short: "Fiken API v2 CLI",
		Long: `A command-line interface for the Fiken accounting API v2.

It reads companies, contacts, invoices, accounts and inbox documents, and
keeps requests within Fiken's rate limit of four per second.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(commands.InitConfig)

	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewCompaniesCommand())
	rootCmd.AddCommand(commands.NewContactsCommand())
	rootCmd.AddCommand(commands.NewInvoicesCommand())
	rootCmd.AddCommand(commands.NewAccountsCommand())
	rootCmd.AddCommand(commands.NewInboxCommand())

	return rootCmd
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
