package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// NewContactsCommand creates the contacts command group.
func NewContactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage customers and suppliers",
	}

	cmd.AddCommand(newContactsListCommand())
	cmd.AddCommand(newContactsGetCommand())
	cmd.AddCommand(newContactsCreateCommand())

	return cmd
}

func newContactsListCommand() *cobra.Command {
	var (
		customers bool
		suppliers bool
		name      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
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
			if customers {
				params.WithBool("customer", true)
			}

			if suppliers {
				params.WithBool("supplier", true)
			}

			if name != "" {
				params.WithFilter("name", name)
			}

			contacts, err := collect(cmd, company.Contacts().List(cmd.Context(), params))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), contacts, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Email", "Customer", "Supplier", "Inactive")

				for _, contact := range contacts {
					_ = table.Append(strconv.FormatInt(contact.ContactID, 10), contact.Name, contact.Email,
						formatBool(contact.Customer), formatBool(contact.Supplier), formatBool(contact.Inactive))
				}
			})
		},
	}

	addListFlags(cmd)
	cmd.Flags().BoolVar(&customers, "customers", false, "only customers")
	cmd.Flags().BoolVar(&suppliers, "suppliers", false, "only suppliers")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")

	return cmd
}

func newContactsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a contact",
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

			contact, err := company.Contacts().Get(cmd.Context(), id)
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the client
			}

			return renderContact(cmd, contact)
		},
	}
}

func newContactsCreateCommand() *cobra.Command {
	var contact fiken.Contact

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
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

			created, err := company.Contacts().Create(cmd.Context(), &contact)
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by the client
			}

			return renderContact(cmd, created)
		},
	}

	cmd.Flags().StringVar(&contact.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&contact.Email, "email", "", "email address")
	cmd.Flags().StringVar(&contact.OrganizationNumber, "org-number", "", "organization number")
	cmd.Flags().StringVar(&contact.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().BoolVar(&contact.Customer, "customer", false, "contact is a customer")
	cmd.Flags().BoolVar(&contact.Supplier, "supplier", false, "contact is a supplier")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func renderContact(cmd *cobra.Command, contact *fiken.Contact) error {
	return render(cmd.OutOrStdout(), contact, func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.FormatInt(contact.ContactID, 10))
		_ = table.Append("Name", contact.Name)
		_ = table.Append("Email", contact.Email)
		_ = table.Append("Organization Number", contact.OrganizationNumber)
		_ = table.Append("Customer", formatBool(contact.Customer))
		_ = table.Append("Supplier", formatBool(contact.Supplier))
		_ = table.Append("Created", formatDate(contact.CreatedDate))
	})
}
