package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewUserCommand creates the user command.
func NewUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			user, err := sess.client.User().Get(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the client
			}

			return render(cmd.OutOrStdout(), user, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", user.Name)
				_ = table.Append("Email", user.Email)
			})
		},
	}
}
