package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// NewInboxCommand creates the inbox command group.
func NewInboxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List and upload inbox documents",
	}

	cmd.AddCommand(newInboxListCommand())
	cmd.AddCommand(newInboxUploadCommand())

	return cmd
}

func newInboxListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inbox documents",
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

			documents, err := collect(cmd, company.Inbox().List(cmd.Context(), listParams(cmd)))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), documents, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Filename", "Processed", "Created")

				for _, document := range documents {
					_ = table.Append(strconv.FormatInt(document.DocumentID, 10), document.Name,
						document.Filename, formatBool(document.Status), document.CreatedAt)
				}
			})
		},
	}

	addListFlags(cmd)

	return cmd
}

func newInboxUploadCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a receipt or invoice to the inbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := fiken.NewAttachmentFromFile(args[0])
			if err != nil {
				return err //nolint:wrapcheck // carries the path
			}

			if name == "" {
				name = file.Filename
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

			document, err := company.Inbox().Upload(cmd.Context(), file, name, description)
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the client
			}

			return render(cmd.OutOrStdout(), document, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(document.DocumentID, 10))
				_ = table.Append("Name", document.Name)
				_ = table.Append("Filename", document.Filename)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "document name (defaults to the file name)")
	cmd.Flags().StringVar(&description, "description", "", "document description")

	return cmd
}
