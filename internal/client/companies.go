package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// UserClient implements fiken.UserClient.
type UserClient struct {
	httpClient *http.Client
}

// NewUserClient creates a new user client.
func NewUserClient(httpClient *http.Client) *UserClient {
	return &UserClient{httpClient: httpClient}
}

// Get implements fiken.UserClient.Get.
func (c *UserClient) Get(ctx context.Context) (*fiken.Userinfo, error) {
	return getResource[fiken.Userinfo](ctx, c.httpClient, "/user", nil, "user")
}

// CompaniesClient implements fiken.CompaniesClient.
type CompaniesClient struct {
	httpClient *http.Client
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(httpClient *http.Client) *CompaniesClient {
	return &CompaniesClient{httpClient: httpClient}
}

// List implements fiken.CompaniesClient.List.
func (c *CompaniesClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Company] {
	return listResources[fiken.Company](ctx, c.httpClient, "/companies", params)
}

// Get implements fiken.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, slug string) (*fiken.Company, error) {
	return getResource[fiken.Company](ctx, c.httpClient, companyPath(slug), nil, "company")
}

// CompanyClient implements fiken.CompanyClient. Every resource client it
// hands out is bound to the same company slug.
type CompanyClient struct {
	httpClient *http.Client
	slug       string
	base       string
}

// NewCompanyClient creates a client scoped to the company slug.
func NewCompanyClient(httpClient *http.Client, slug string) *CompanyClient {
	return &CompanyClient{
		httpClient: httpClient,
		slug:       slug,
		base:       companyPath(slug),
	}
}

func companyPath(slug string) string {
	return "/companies/" + url.PathEscape(slug)
}

// Slug implements fiken.CompanyClient.Slug.
func (c *CompanyClient) Slug() string {
	return c.slug
}

// Get implements fiken.CompanyClient.Get.
func (c *CompanyClient) Get(ctx context.Context) (*fiken.Company, error) {
	if c.slug == "" {
		return nil, ErrCompanySlugMissing
	}

	return getResource[fiken.Company](ctx, c.httpClient, c.base, nil, "company")
}

// Accounts implements fiken.CompanyClient.Accounts.
func (c *CompanyClient) Accounts() fiken.AccountsClient {
	return &AccountsClient{httpClient: c.httpClient, base: c.base + "/accounts"}
}

// AccountBalances implements fiken.CompanyClient.AccountBalances.
func (c *CompanyClient) AccountBalances() fiken.AccountBalancesClient {
	return &AccountBalancesClient{httpClient: c.httpClient, base: c.base + "/accountBalances"}
}

// BankAccounts implements fiken.CompanyClient.BankAccounts.
func (c *CompanyClient) BankAccounts() fiken.BankAccountsClient {
	return &BankAccountsClient{httpClient: c.httpClient, base: c.base + "/bankAccounts"}
}

// BankBalances implements fiken.CompanyClient.BankBalances.
func (c *CompanyClient) BankBalances() fiken.BankBalancesClient {
	return &BankBalancesClient{httpClient: c.httpClient, base: c.base + "/bankBalances"}
}

// Contacts implements fiken.CompanyClient.Contacts.
func (c *CompanyClient) Contacts() fiken.ContactsClient {
	return &ContactsClient{httpClient: c.httpClient, base: c.base + "/contacts"}
}

// Groups implements fiken.CompanyClient.Groups.
func (c *CompanyClient) Groups() fiken.GroupsClient {
	return &GroupsClient{httpClient: c.httpClient, base: c.base + "/groups"}
}

// Products implements fiken.CompanyClient.Products.
func (c *CompanyClient) Products() fiken.ProductsClient {
	return &ProductsClient{httpClient: c.httpClient, base: c.base + "/products"}
}

// Invoices implements fiken.CompanyClient.Invoices.
func (c *CompanyClient) Invoices() fiken.InvoicesClient {
	return &InvoicesClient{httpClient: c.httpClient, base: c.base + "/invoices"}
}

// CreditNotes implements fiken.CompanyClient.CreditNotes.
func (c *CompanyClient) CreditNotes() fiken.CreditNotesClient {
	return &CreditNotesClient{httpClient: c.httpClient, base: c.base + "/creditNotes"}
}

// Sales implements fiken.CompanyClient.Sales.
func (c *CompanyClient) Sales() fiken.SalesClient {
	return &SalesClient{httpClient: c.httpClient, base: c.base + "/sales"}
}

// Purchases implements fiken.CompanyClient.Purchases.
func (c *CompanyClient) Purchases() fiken.PurchasesClient {
	return &PurchasesClient{httpClient: c.httpClient, base: c.base + "/purchases"}
}

// JournalEntries implements fiken.CompanyClient.JournalEntries.
func (c *CompanyClient) JournalEntries() fiken.JournalEntriesClient {
	return &JournalEntriesClient{httpClient: c.httpClient, company: c.base}
}

// Transactions implements fiken.CompanyClient.Transactions.
func (c *CompanyClient) Transactions() fiken.TransactionsClient {
	return &TransactionsClient{httpClient: c.httpClient, base: c.base + "/transactions"}
}

// Projects implements fiken.CompanyClient.Projects.
func (c *CompanyClient) Projects() fiken.ProjectsClient {
	return &ProjectsClient{httpClient: c.httpClient, base: c.base + "/projects"}
}

// Inbox implements fiken.CompanyClient.Inbox.
func (c *CompanyClient) Inbox() fiken.InboxClient {
	return &InboxClient{httpClient: c.httpClient, base: c.base + "/inbox"}
}

// GroupsClient implements fiken.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context) ([]fiken.Group, error) {
	return getList[fiken.Group](ctx, c.httpClient, c.base, nil, "groups")
}
