package fiken

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
)

// Client is the top-level Fiken API client.
type Client interface {
	// User returns the client for the authenticated user.
	User() UserClient
	// Companies returns the client for companies the user can access.
	Companies() CompaniesClient
	// Company returns a client scoped to the company identified by slug.
	Company(slug string) CompanyClient
	// Pages returns the gated fetcher behind every list endpoint, for use
	// with FetchAllPages and StreamPages.
	Pages() PageFetcher
	// Close releases idle connections held by the transport.
	Close()
}

// UserClient reads the authenticated user.
type UserClient interface {
	Get(ctx context.Context) (*Userinfo, error)
}

// CompaniesClient lists and reads companies.
type CompaniesClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Company]
	Get(ctx context.Context, slug string) (*Company, error)
}

// CompanyClient groups the resource clients of one company.
type CompanyClient interface {
	Slug() string
	Get(ctx context.Context) (*Company, error)

	Accounts() AccountsClient
	AccountBalances() AccountBalancesClient
	BankAccounts() BankAccountsClient
	BankBalances() BankBalancesClient
	Contacts() ContactsClient
	Groups() GroupsClient
	Products() ProductsClient
	Invoices() InvoicesClient
	CreditNotes() CreditNotesClient
	Sales() SalesClient
	Purchases() PurchasesClient
	JournalEntries() JournalEntriesClient
	Transactions() TransactionsClient
	Projects() ProjectsClient
	Inbox() InboxClient
}

// AccountsClient reads the chart of accounts.
type AccountsClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Account]
	Get(ctx context.Context, code string) (*Account, error)
}

// AccountBalancesClient reads account balances at a date.
type AccountBalancesClient interface {
	List(ctx context.Context, date Date, params *QueryParams) *PaginationIterator[AccountBalance]
	Get(ctx context.Context, code string, date Date) (*AccountBalance, error)
}

// BankAccountsClient manages bank accounts.
type BankAccountsClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[BankAccount]
	Get(ctx context.Context, id int64) (*BankAccount, error)
	Create(ctx context.Context, request *BankAccountRequest) (*BankAccount, error)
}

// BankBalancesClient reads bank balances at a date.
type BankBalancesClient interface {
	List(ctx context.Context, date Date, params *QueryParams) *PaginationIterator[BankBalance]
}

// ContactsClient manages contacts.
type ContactsClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Contact]
	Get(ctx context.Context, id int64) (*Contact, error)
	Create(ctx context.Context, contact *Contact) (*Contact, error)
	Update(ctx context.Context, id int64, contact *Contact) (*Contact, error)
	Delete(ctx context.Context, id int64) error

	Attachments(id int64) AttachmentsClient
	Persons(id int64) ContactPersonsClient
}

// ContactPersonsClient manages the persons of one contact.
type ContactPersonsClient interface {
	List(ctx context.Context) ([]ContactPerson, error)
	Get(ctx context.Context, personID int64) (*ContactPerson, error)
	Create(ctx context.Context, person *ContactPerson) (*ContactPerson, error)
	Update(ctx context.Context, personID int64, person *ContactPerson) (*ContactPerson, error)
	Delete(ctx context.Context, personID int64) error
}

// GroupsClient lists contact groups. The endpoint is not paginated.
type GroupsClient interface {
	List(ctx context.Context) ([]Group, error)
}

// ProductsClient manages products.
type ProductsClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Product]
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)
	Update(ctx context.Context, id int64, product *Product) (*Product, error)
	Delete(ctx context.Context, id int64) error
	SalesReport(ctx context.Context, request *ProductSalesReportRequest) ([]ProductSalesReportLine, error)
}

// AttachmentsClient lists and uploads the attachments of one resource.
type AttachmentsClient interface {
	List(ctx context.Context) ([]Attachment, error)
	Add(ctx context.Context, file *AttachmentFile) error
}

// PaymentsClient lists and registers the payments of one sale or purchase.
type PaymentsClient interface {
	List(ctx context.Context) ([]Payment, error)
	Get(ctx context.Context, paymentID int64) (*Payment, error)
	Create(ctx context.Context, payment *Payment) (*Payment, error)
}

// InvoiceishDraftsClient manages invoice or credit note drafts. T is the
// resource a draft turns into.
type InvoiceishDraftsClient[T any] interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[InvoiceishDraft]
	Get(ctx context.Context, draftID int64) (*InvoiceishDraft, error)
	Create(ctx context.Context, draft *InvoiceishDraftRequest) (*InvoiceishDraft, error)
	Update(ctx context.Context, draftID int64, draft *InvoiceishDraftRequest) (*InvoiceishDraft, error)
	Delete(ctx context.Context, draftID int64) error
	Attachments(draftID int64) AttachmentsClient
	Finalize(ctx context.Context, draftID int64) (*T, error)
}

// DraftsClient manages sale or purchase drafts. T is the resource a draft
// turns into.
type DraftsClient[T any] interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Draft]
	Get(ctx context.Context, draftID int64) (*Draft, error)
	Create(ctx context.Context, draft *DraftRequest) (*Draft, error)
	Update(ctx context.Context, draftID int64, draft *DraftRequest) (*Draft, error)
	Delete(ctx context.Context, draftID int64) error
	Attachments(draftID int64) AttachmentsClient
	Finalize(ctx context.Context, draftID int64) (*T, error)
}

// InvoicesClient manages invoices.
type InvoicesClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Invoice]
	Get(ctx context.Context, id int64) (*Invoice, error)
	Create(ctx context.Context, invoice *InvoiceRequest) (*Invoice, error)
	Update(ctx context.Context, id int64, update *UpdateInvoiceRequest) (*Invoice, error)
	Send(ctx context.Context, request *SendInvoiceRequest) error
	Counter(ctx context.Context) (int64, error)
	SetCounter(ctx context.Context, value int64) error

	Attachments(id int64) AttachmentsClient
	Drafts() InvoiceishDraftsClient[Invoice]
}

// CreditNotesClient manages credit notes.
type CreditNotesClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[CreditNote]
	Get(ctx context.Context, id int64) (*CreditNote, error)
	CreateFull(ctx context.Context, request *FullCreditNoteRequest) (*CreditNote, error)
	CreatePartial(ctx context.Context, request *PartialCreditNoteRequest) (*CreditNote, error)
	Send(ctx context.Context, request *SendCreditNoteRequest) error
	Counter(ctx context.Context) (int64, error)
	SetCounter(ctx context.Context, value int64) error

	Drafts() InvoiceishDraftsClient[CreditNote]
}

// SalesClient manages sales.
type SalesClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Sale]
	Get(ctx context.Context, id int64) (*Sale, error)
	Create(ctx context.Context, sale *SaleRequest) (*Sale, error)
	Delete(ctx context.Context, id int64, description string) (*Sale, error)
	Settle(ctx context.Context, id int64, settledDate Date) (*Sale, error)

	Attachments(id int64) AttachmentsClient
	Payments(id int64) PaymentsClient
	Drafts() DraftsClient[Sale]
}

// PurchasesClient manages purchases.
type PurchasesClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Purchase]
	Get(ctx context.Context, id int64) (*Purchase, error)
	Create(ctx context.Context, purchase *PurchaseRequest) (*Purchase, error)
	Delete(ctx context.Context, id int64, description string) (*Purchase, error)

	Attachments(id int64) AttachmentsClient
	Payments(id int64) PaymentsClient
	Drafts() DraftsClient[Purchase]
}

// JournalEntriesClient manages journal entries.
type JournalEntriesClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[JournalEntry]
	Get(ctx context.Context, id int64) (*JournalEntry, error)
	Create(ctx context.Context, request *GeneralJournalEntryRequest) (*JournalEntry, error)
	Attachments(id int64) AttachmentsClient
}

// TransactionsClient reads and cancels transactions.
type TransactionsClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Transaction]
	Get(ctx context.Context, id int64) (*Transaction, error)
	Delete(ctx context.Context, id int64, description string) (*Transaction, error)
}

// ProjectsClient manages projects.
type ProjectsClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[Project]
	Get(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, project *ProjectRequest) (*Project, error)
	Update(ctx context.Context, id int64, project *UpdateProjectRequest) (*Project, error)
	Delete(ctx context.Context, id int64) error
}

// InboxClient lists and uploads inbox documents.
type InboxClient interface {
	List(ctx context.Context, params *QueryParams) *PaginationIterator[InboxDocument]
	Get(ctx context.Context, id int64) (*InboxDocument, error)
	Upload(ctx context.Context, file *AttachmentFile, name, description string) (*InboxDocument, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// TokenPersister stores OAuth2 tokens after a refresh so that other
// processes, or a later run, can pick up the rotated refresh token.
type TokenPersister interface {
	SaveToken(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) error
}

// Config represents client configuration for building a fiken.Client.
//
// # Authentication
//
// Exactly one credential form must be provided:
//  1. APIToken: a personal API token, sent as a static Bearer token.
//  2. AccessToken + RefreshToken + ClientID + ClientSecret: an OAuth2
//     authorization. The access token is refreshed against TokenURL five
//     minutes before it expires.
//
// An API token takes precedence when both forms are present.
//
// # Rate limiting and retries
//
// Every request, including each page of a list and each retry, passes the
// client's request gate: one request in flight and at most four started in
// any one-second window. Retries are disabled unless RetryMax is set.
type Config struct {
	// BaseURL: Fiken API root. Defaults to https://api.fiken.no/api/v2.
	BaseURL string

	// APIToken: personal API token.
	APIToken string

	// AccessToken: current OAuth2 access token.
	AccessToken string
	// RefreshToken: OAuth2 refresh token used to obtain new access tokens.
	RefreshToken string
	// ClientID: OAuth2 client ID.
	ClientID string
	// ClientSecret: OAuth2 client secret.
	ClientSecret string
	// TokenURL: OAuth2 token endpoint. Defaults to https://fiken.no/oauth/token.
	TokenURL string
	// TokenExpiresAt: expiry of AccessToken. Zero assumes a freshly issued
	// token valid for the default lifetime of 86157 seconds.
	TokenExpiresAt time.Time
	// TokenPersister: optional sink for refreshed tokens.
	TokenPersister TokenPersister

	// HTTPTimeout: per-attempt HTTP timeout. Defaults to 30s.
	HTTPTimeout time.Duration
	// RetryMax: retries for 429, 5xx and connection errors. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// HTTPClient: optional underlying client, e.g. for proxies or tests.
	HTTPClient *http.Client
	// RequestsPerSecond: requests started per one-second window. Defaults to
	// 4, the Fiken limit; lower values are allowed, higher ones are clamped.
	RequestsPerSecond int

	// Debug: enables request/response logging through Logger.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// RequestInterceptors run before each request is sent.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run after each response is received.
	ResponseInterceptors []ResponseInterceptor
}

// UsesAPIToken reports whether the personal API token form is configured.
func (c *Config) UsesAPIToken() bool {
	return strings.TrimSpace(c.APIToken) != ""
}

// UsesOAuth2 reports whether the complete OAuth2 form is configured.
func (c *Config) UsesOAuth2() bool {
	return c.AccessToken != "" && c.RefreshToken != "" && c.ClientID != "" && c.ClientSecret != ""
}

// Validate checks that one complete credential form is present.
func (c *Config) Validate() error {
	if !c.UsesAPIToken() && !c.UsesOAuth2() {
		return fmt.Errorf("%w: %w", ErrConfiguration, ErrInvalidCredentials)
	}

	if c.RetryMax < 0 {
		return fmt.Errorf("%w: retry max must not be negative", ErrConfiguration)
	}

	return nil
}

// WithDefaults returns a copy of the config with empty fields defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c

	out.BaseURL = NormalizeBaseURL(out.BaseURL)
	if out.TokenURL == "" {
		out.TokenURL = constants.DefaultTokenURL
	}

	if out.HTTPTimeout == 0 {
		out.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	if out.RetryWaitMin == 0 {
		out.RetryWaitMin = constants.DefaultRetryWaitMin
	}

	if out.RetryWaitMax == 0 {
		out.RetryWaitMax = constants.DefaultRetryWaitMax
	}

	if out.RequestsPerSecond <= 0 || out.RequestsPerSecond > constants.MaxRequestsPerSecond {
		out.RequestsPerSecond = constants.MaxRequestsPerSecond
	}

	if out.Logger == nil {
		out.Logger = NopLogger{}
	}

	return &out
}

// NormalizeBaseURL trims a trailing slash and adds "https://" when no scheme
// is present. An empty value yields the production API root.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return strings.TrimRight(baseURL, "/")
}
