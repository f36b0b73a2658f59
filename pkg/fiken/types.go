package fiken

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
)

// Date is a calendar date serialized as "yyyy-mm-dd".
type Date struct {
	time.Time
}

// NewDate returns the Date for year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "yyyy-mm-dd" string.
func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return Date{Time: parsed}, nil
}

// String formats the date as "yyyy-mm-dd", or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(constants.DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. Timestamps with a time part are
// accepted and truncated to their date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", string(data), err)
	}

	if raw == "" {
		*d = Date{}

		return nil
	}

	if len(raw) > len(constants.DateLayout) && strings.Contains(raw, "T") {
		raw = raw[:len(constants.DateLayout)]
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// MarshalYAML renders the date as a plain string.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Userinfo is the authenticated user.
type Userinfo struct {
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Address is a postal address on a company, contact or contact person.
type Address struct {
	StreetAddress      string `json:"streetAddress,omitempty"      yaml:"street_address,omitempty"`
	StreetAddressLine2 string `json:"streetAddressLine2,omitempty" yaml:"street_address_line2,omitempty"`
	City               string `json:"city,omitempty"               yaml:"city,omitempty"`
	PostCode           string `json:"postCode,omitempty"           yaml:"post_code,omitempty"`
	Country            string `json:"country,omitempty"            yaml:"country,omitempty"`
}

// Company is a company the authenticated user has access to.
type Company struct {
	Name                string   `json:"name"                          yaml:"name"`
	Slug                string   `json:"slug"                          yaml:"slug"`
	OrganizationNumber  string   `json:"organizationNumber,omitempty"  yaml:"organization_number,omitempty"`
	VatType             string   `json:"vatType,omitempty"             yaml:"vat_type,omitempty"`
	Address             *Address `json:"address,omitempty"             yaml:"address,omitempty"`
	PhoneNumber         string   `json:"phoneNumber,omitempty"         yaml:"phone_number,omitempty"`
	Email               string   `json:"email,omitempty"               yaml:"email,omitempty"`
	CreationDate        Date     `json:"creationDate"                  yaml:"creation_date"`
	HasAPIAccess        bool     `json:"hasApiAccess"                  yaml:"has_api_access"`
	TestCompany         bool     `json:"testCompany"                   yaml:"test_company"`
	AccountingStartDate Date     `json:"accountingStartDate"           yaml:"accounting_start_date"`
}

// Account is an entry in the chart of accounts.
type Account struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// AccountBalance is the balance of an account at a date. Amounts are in øre.
type AccountBalance struct {
	Code    string `json:"code"    yaml:"code"`
	Name    string `json:"name"    yaml:"name"`
	Balance int64  `json:"balance" yaml:"balance"`
}

// BankAccountRequest creates a bank account.
type BankAccountRequest struct {
	Name              string `json:"name"                        yaml:"name"`
	BankAccountNumber string `json:"bankAccountNumber"           yaml:"bank_account_number"`
	Bic               string `json:"bic,omitempty"               yaml:"bic,omitempty"`
	Iban              string `json:"iban,omitempty"              yaml:"iban,omitempty"`
	ForeignService    string `json:"foreignService,omitempty"    yaml:"foreign_service,omitempty"`
	Type              string `json:"type"                        yaml:"type"`
	ReconciledBalance int64  `json:"reconciledBalance,omitempty" yaml:"reconciled_balance,omitempty"`
	ReconciledDate    *Date  `json:"reconciledDate,omitempty"    yaml:"reconciled_date,omitempty"`
}

// BankAccount is a bank account registered in the company.
type BankAccount struct {
	BankAccountID     int64  `json:"bankAccountId"               yaml:"bank_account_id"`
	Name              string `json:"name"                        yaml:"name"`
	AccountCode       string `json:"accountCode"                 yaml:"account_code"`
	BankAccountNumber string `json:"bankAccountNumber"           yaml:"bank_account_number"`
	Iban              string `json:"iban,omitempty"              yaml:"iban,omitempty"`
	Bic               string `json:"bic,omitempty"               yaml:"bic,omitempty"`
	ForeignService    string `json:"foreignService,omitempty"    yaml:"foreign_service,omitempty"`
	Type              string `json:"type"                        yaml:"type"`
	ReconciledBalance int64  `json:"reconciledBalance,omitempty" yaml:"reconciled_balance,omitempty"`
	ReconciledDate    Date   `json:"reconciledDate"              yaml:"reconciled_date"`
	Inactive          bool   `json:"inactive"                    yaml:"inactive"`
}

// BankBalance is the balance of a bank account at a date.
type BankBalance struct {
	BankAccountID   int64  `json:"bankAccountId"   yaml:"bank_account_id"`
	BankAccountCode string `json:"bankAccountCode" yaml:"bank_account_code"`
	Date            Date   `json:"date"            yaml:"date"`
	Balance         int64  `json:"balance"         yaml:"balance"`
}

// ContactPerson is a person attached to a contact.
type ContactPerson struct {
	ContactPersonID int64    `json:"contactPersonId,omitempty" yaml:"contact_person_id,omitempty"`
	Name            string   `json:"name"                      yaml:"name"`
	Email           string   `json:"email"                     yaml:"email"`
	PhoneNumber     string   `json:"phoneNumber,omitempty"     yaml:"phone_number,omitempty"`
	Address         *Address `json:"address,omitempty"         yaml:"address,omitempty"`
}

// Contact is a customer and/or supplier. It is used both as request and
// result; read-only fields are ignored by the API on create and update.
type Contact struct {
	ContactID                 int64           `json:"contactId,omitempty"                 yaml:"contact_id,omitempty"`
	CreatedDate               Date            `json:"createdDate"                         yaml:"created_date"`
	LastModifiedDate          Date            `json:"lastModifiedDate"                    yaml:"last_modified_date"`
	Name                      string          `json:"name"                                yaml:"name"`
	Email                     string          `json:"email,omitempty"                     yaml:"email,omitempty"`
	OrganizationNumber        string          `json:"organizationNumber,omitempty"        yaml:"organization_number,omitempty"`
	CustomerNumber            int64           `json:"customerNumber,omitempty"            yaml:"customer_number,omitempty"`
	CustomerAccountCode       string          `json:"customerAccountCode,omitempty"       yaml:"customer_account_code,omitempty"`
	PhoneNumber               string          `json:"phoneNumber,omitempty"               yaml:"phone_number,omitempty"`
	MemberNumber              int64           `json:"memberNumber,omitempty"              yaml:"member_number,omitempty"`
	SupplierNumber            int64           `json:"supplierNumber,omitempty"            yaml:"supplier_number,omitempty"`
	SupplierAccountCode       string          `json:"supplierAccountCode,omitempty"       yaml:"supplier_account_code,omitempty"`
	Customer                  bool            `json:"customer"                            yaml:"customer"`
	Supplier                  bool            `json:"supplier"                            yaml:"supplier"`
	ContactPerson             []ContactPerson `json:"contactPerson,omitempty"             yaml:"contact_person,omitempty"`
	Currency                  string          `json:"currency,omitempty"                  yaml:"currency,omitempty"`
	Language                  string          `json:"language,omitempty"                  yaml:"language,omitempty"`
	Inactive                  bool            `json:"inactive"                            yaml:"inactive"`
	DaysUntilInvoicingDueDate int             `json:"daysUntilInvoicingDueDate,omitempty" yaml:"days_until_invoicing_due_date,omitempty"`
	Address                   *Address        `json:"address,omitempty"                   yaml:"address,omitempty"`
	Groups                    []string        `json:"groups,omitempty"                    yaml:"groups,omitempty"`
}

// Product is an item that can be sold.
type Product struct {
	ProductID        int64   `json:"productId,omitempty"     yaml:"product_id,omitempty"`
	CreatedDate      Date    `json:"createdDate"             yaml:"created_date"`
	LastModifiedDate Date    `json:"lastModifiedDate"        yaml:"last_modified_date"`
	Name             string  `json:"name"                    yaml:"name"`
	UnitPrice        int64   `json:"unitPrice,omitempty"     yaml:"unit_price,omitempty"`
	IncomeAccount    string  `json:"incomeAccount"           yaml:"income_account"`
	VatType          string  `json:"vatType"                 yaml:"vat_type"`
	Active           bool    `json:"active"                  yaml:"active"`
	ProductNumber    string  `json:"productNumber,omitempty" yaml:"product_number,omitempty"`
	Stock            float64 `json:"stock,omitempty"         yaml:"stock,omitempty"`
	Note             string  `json:"note,omitempty"          yaml:"note,omitempty"`
}

// ProductSalesReportRequest selects the period and products for a sales report.
type ProductSalesReportRequest struct {
	From     Date    `json:"from"               yaml:"from"`
	To       Date    `json:"to"                 yaml:"to"`
	Products []int64 `json:"products,omitempty" yaml:"products,omitempty"`
}

// ProductSales is the sold amounts of one product.
type ProductSales struct {
	Count       float64 `json:"count"       yaml:"count"`
	Sales       int64   `json:"sales"       yaml:"sales"`
	NetAmount   int64   `json:"netAmount"   yaml:"net_amount"`
	Vat         int64   `json:"vat"         yaml:"vat"`
	GrossAmount int64   `json:"grossAmount" yaml:"gross_amount"`
}

// ProductSalesReportLine is one product in a sales report.
type ProductSalesReportLine struct {
	Product Product      `json:"product" yaml:"product"`
	Sold    ProductSales `json:"sold"    yaml:"sold"`
}

// Attachment is the metadata of a document attached to a resource.
type Attachment struct {
	Identifier  string `json:"identifier,omitempty"  yaml:"identifier,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty" yaml:"download_url,omitempty"`
	//nolint:tagliatelle // field name is fixed by the API
	DownloadURLWithFikenNormalUserCredentials string `json:"downloadUrlWithFikenNormalUserCredentials,omitempty" yaml:"download_url_with_credentials,omitempty"`
	Comment                                   string `json:"comment,omitempty"                                   yaml:"comment,omitempty"`
	Type                                      string `json:"type,omitempty"                                      yaml:"type,omitempty"`
}

// InvoiceLineRequest is an invoice or credit note line.
type InvoiceLineRequest struct {
	Net           int64   `json:"net,omitempty"           yaml:"net,omitempty"`
	Vat           int64   `json:"vat,omitempty"           yaml:"vat,omitempty"`
	VatType       string  `json:"vatType,omitempty"       yaml:"vat_type,omitempty"`
	Gross         int64   `json:"gross,omitempty"         yaml:"gross,omitempty"`
	VatInPercent  float64 `json:"vatInPercent,omitempty"  yaml:"vat_in_percent,omitempty"`
	UnitPrice     int64   `json:"unitPrice,omitempty"     yaml:"unit_price,omitempty"`
	Quantity      float64 `json:"quantity"                yaml:"quantity"`
	Discount      float64 `json:"discount,omitempty"      yaml:"discount,omitempty"`
	ProductID     int64   `json:"productId,omitempty"     yaml:"product_id,omitempty"`
	Description   string  `json:"description,omitempty"   yaml:"description,omitempty"`
	Comment       string  `json:"comment,omitempty"       yaml:"comment,omitempty"`
	IncomeAccount string  `json:"incomeAccount,omitempty" yaml:"income_account,omitempty"`
}

// InvoiceLine is an invoice line as returned by the API.
type InvoiceLine struct {
	InvoiceLineRequest `yaml:",inline"`

	NetInNok   int64 `json:"netInNok,omitempty"   yaml:"net_in_nok,omitempty"`
	VatInNok   int64 `json:"vatInNok,omitempty"   yaml:"vat_in_nok,omitempty"`
	GrossInNok int64 `json:"grossInNok,omitempty" yaml:"gross_in_nok,omitempty"`
}

// InvoiceRequest creates an invoice.
type InvoiceRequest struct {
	UUID            string               `json:"uuid,omitempty"            yaml:"uuid,omitempty"`
	IssueDate       Date                 `json:"issueDate"                 yaml:"issue_date"`
	DueDate         Date                 `json:"dueDate"                   yaml:"due_date"`
	Lines           []InvoiceLineRequest `json:"lines"                     yaml:"lines"`
	OurReference    string               `json:"ourReference,omitempty"    yaml:"our_reference,omitempty"`
	YourReference   string               `json:"yourReference,omitempty"   yaml:"your_reference,omitempty"`
	OrderReference  string               `json:"orderReference,omitempty"  yaml:"order_reference,omitempty"`
	CustomerID      int64                `json:"customerId"                yaml:"customer_id"`
	ContactPersonID int64                `json:"contactPersonId,omitempty" yaml:"contact_person_id,omitempty"`
	ProjectID       int64                `json:"projectId,omitempty"       yaml:"project_id,omitempty"`
	BankAccountCode string               `json:"bankAccountCode"           yaml:"bank_account_code"`
	Currency        string               `json:"currency,omitempty"        yaml:"currency,omitempty"`
	InvoiceText     string               `json:"invoiceText,omitempty"     yaml:"invoice_text,omitempty"`
	Cash            bool                 `json:"cash"                      yaml:"cash"`
	PaymentAccount  string               `json:"paymentAccount,omitempty"  yaml:"payment_account,omitempty"`
}

// UpdateInvoiceRequest changes the mutable fields of an invoice.
type UpdateInvoiceRequest struct {
	NewDueDate   *Date `json:"newDueDate,omitempty"   yaml:"new_due_date,omitempty"`
	SentManually *bool `json:"sentManually,omitempty" yaml:"sent_manually,omitempty"`
}

// Invoice is an issued invoice.
type Invoice struct {
	InvoiceID        int64         `json:"invoiceId"                  yaml:"invoice_id"`
	CreatedDate      Date          `json:"createdDate"                yaml:"created_date"`
	LastModifiedDate Date          `json:"lastModifiedDate"           yaml:"last_modified_date"`
	InvoiceNumber    int64         `json:"invoiceNumber"              yaml:"invoice_number"`
	Kid              string        `json:"kid,omitempty"              yaml:"kid,omitempty"`
	IssueDate        Date          `json:"issueDate"                  yaml:"issue_date"`
	DueDate          Date          `json:"dueDate"                    yaml:"due_date"`
	OriginalDueDate  Date          `json:"originalDueDate"            yaml:"original_due_date"`
	Net              int64         `json:"net"                        yaml:"net"`
	Vat              int64         `json:"vat"                        yaml:"vat"`
	Gross            int64         `json:"gross"                      yaml:"gross"`
	NetInNok         int64         `json:"netInNok"                   yaml:"net_in_nok"`
	VatInNok         int64         `json:"vatInNok"                   yaml:"vat_in_nok"`
	GrossInNok       int64         `json:"grossInNok"                 yaml:"gross_in_nok"`
	Cash             bool          `json:"cash"                       yaml:"cash"`
	InvoiceText      string        `json:"invoiceText,omitempty"      yaml:"invoice_text,omitempty"`
	YourReference    string        `json:"yourReference,omitempty"    yaml:"your_reference,omitempty"`
	OurReference     string        `json:"ourReference,omitempty"     yaml:"our_reference,omitempty"`
	OrderReference   string        `json:"orderReference,omitempty"   yaml:"order_reference,omitempty"`
	InvoiceDraftUUID string        `json:"invoiceDraftUuid,omitempty" yaml:"invoice_draft_uuid,omitempty"`
	Address          *Address      `json:"address,omitempty"          yaml:"address,omitempty"`
	Lines            []InvoiceLine `json:"lines"                      yaml:"lines"`
	Currency         string        `json:"currency"                   yaml:"currency"`
	BankAccount      string        `json:"bankAccountNumber,omitempty" yaml:"bank_account_number,omitempty"`
	SentManually     bool          `json:"sentManually"               yaml:"sent_manually"`
	Settled          bool          `json:"settled"                    yaml:"settled"`
	SettledDate      Date          `json:"settledDate"                yaml:"settled_date"`
	Customer         *Contact      `json:"customer,omitempty"         yaml:"customer,omitempty"`
	Attachments      []Attachment  `json:"attachments,omitempty"      yaml:"attachments,omitempty"`
	Project          *Project      `json:"project,omitempty"          yaml:"project,omitempty"`
}

// SendInvoiceRequest sends an invoice to its customer.
type SendInvoiceRequest struct {
	InvoiceID                  int64    `json:"invoiceId"                            yaml:"invoice_id"`
	Method                     []string `json:"method"                               yaml:"method"`
	IncludeDocumentAttachments bool     `json:"includeDocumentAttachments"           yaml:"include_document_attachments"`
	RecipientName              string   `json:"recipientName,omitempty"              yaml:"recipient_name,omitempty"`
	RecipientEmail             string   `json:"recipientEmail,omitempty"             yaml:"recipient_email,omitempty"`
	Message                    string   `json:"message,omitempty"                    yaml:"message,omitempty"`
	EmailSendOption            string   `json:"emailSendOption,omitempty"            yaml:"email_send_option,omitempty"`
	MergeInvoiceAndAttachments bool     `json:"mergeInvoiceAndAttachments,omitempty" yaml:"merge_invoice_and_attachments,omitempty"`
	OrganizationNumber         string   `json:"organizationNumber,omitempty"         yaml:"organization_number,omitempty"`
	MobileNumber               string   `json:"mobileNumber,omitempty"               yaml:"mobile_number,omitempty"`
}

// InvoiceishDraftLine is a line on an invoice or credit note draft.
type InvoiceishDraftLine struct {
	InvoiceLineRequest `yaml:",inline"`
}

// InvoiceishDraftRequest creates or updates an invoice or credit note draft.
type InvoiceishDraftRequest struct {
	Type              string                `json:"type"                        yaml:"type"`
	IssueDate         *Date                 `json:"issueDate,omitempty"         yaml:"issue_date,omitempty"`
	DaysUntilDueDate  int                   `json:"daysUntilDueDate"            yaml:"days_until_due_date"`
	InvoiceText       string                `json:"invoiceText,omitempty"       yaml:"invoice_text,omitempty"`
	Currency          string                `json:"currency,omitempty"          yaml:"currency,omitempty"`
	YourReference     string                `json:"yourReference,omitempty"     yaml:"your_reference,omitempty"`
	OurReference      string                `json:"ourReference,omitempty"      yaml:"our_reference,omitempty"`
	OrderReference    string                `json:"orderReference,omitempty"    yaml:"order_reference,omitempty"`
	Lines             []InvoiceishDraftLine `json:"lines"                       yaml:"lines"`
	CustomerID        int64                 `json:"customerId"                  yaml:"customer_id"`
	ContactPersonID   int64                 `json:"contactPersonId,omitempty"   yaml:"contact_person_id,omitempty"`
	BankAccountNumber string                `json:"bankAccountNumber,omitempty" yaml:"bank_account_number,omitempty"`
	ProjectID         int64                 `json:"projectId,omitempty"         yaml:"project_id,omitempty"`
}

// InvoiceishDraft is an invoice or credit note draft.
type InvoiceishDraft struct {
	DraftID          int64                 `json:"draftId"                  yaml:"draft_id"`
	UUID             string                `json:"uuid"                     yaml:"uuid"`
	Type             string                `json:"type"                     yaml:"type"`
	IssueDate        Date                  `json:"issueDate"                yaml:"issue_date"`
	DaysUntilDueDate int                   `json:"daysUntilDueDate"         yaml:"days_until_due_date"`
	InvoiceText      string                `json:"invoiceText,omitempty"    yaml:"invoice_text,omitempty"`
	Currency         string                `json:"currency,omitempty"       yaml:"currency,omitempty"`
	YourReference    string                `json:"yourReference,omitempty"  yaml:"your_reference,omitempty"`
	OurReference     string                `json:"ourReference,omitempty"   yaml:"our_reference,omitempty"`
	OrderReference   string                `json:"orderReference,omitempty" yaml:"order_reference,omitempty"`
	Net              int64                 `json:"net"                      yaml:"net"`
	Gross            int64                 `json:"gross"                    yaml:"gross"`
	Lines            []InvoiceishDraftLine `json:"lines"                    yaml:"lines"`
	Customers        []Contact             `json:"customers,omitempty"      yaml:"customers,omitempty"`
	Attachments      []Attachment          `json:"attachments,omitempty"    yaml:"attachments,omitempty"`
	LastModifiedDate Date                  `json:"lastModifiedDate"         yaml:"last_modified_date"`
}

// OrderLine is a line on a sale or purchase.
type OrderLine struct {
	Description        string `json:"description,omitempty"        yaml:"description,omitempty"`
	NetPrice           int64  `json:"netPrice,omitempty"           yaml:"net_price,omitempty"`
	Vat                int64  `json:"vat,omitempty"                yaml:"vat,omitempty"`
	Account            string `json:"account,omitempty"            yaml:"account,omitempty"`
	VatType            string `json:"vatType"                      yaml:"vat_type"`
	NetPriceInCurrency int64  `json:"netPriceInCurrency,omitempty" yaml:"net_price_in_currency,omitempty"`
	VatInCurrency      int64  `json:"vatInCurrency,omitempty"      yaml:"vat_in_currency,omitempty"`
	ProjectID          int64  `json:"projectId,omitempty"          yaml:"project_id,omitempty"`
}

// Payment is a payment registered on a sale or purchase.
type Payment struct {
	PaymentID   int64  `json:"paymentId,omitempty"   yaml:"payment_id,omitempty"`
	Date        Date   `json:"date"                  yaml:"date"`
	Account     string `json:"account"               yaml:"account"`
	Amount      int64  `json:"amount"                yaml:"amount"`
	AmountInNok int64  `json:"amountInNok,omitempty" yaml:"amount_in_nok,omitempty"`
	Currency    string `json:"currency,omitempty"    yaml:"currency,omitempty"`
	Fee         int64  `json:"fee,omitempty"         yaml:"fee,omitempty"`
}

// SaleRequest creates a sale.
type SaleRequest struct {
	SaleNumber          string      `json:"saleNumber,omitempty"          yaml:"sale_number,omitempty"`
	Date                Date        `json:"date"                          yaml:"date"`
	Kind                string      `json:"kind"                          yaml:"kind"`
	TotalPaid           int64       `json:"totalPaid,omitempty"           yaml:"total_paid,omitempty"`
	TotalPaidInCurrency int64       `json:"totalPaidInCurrency,omitempty" yaml:"total_paid_in_currency,omitempty"`
	Lines               []OrderLine `json:"lines"                         yaml:"lines"`
	CustomerID          int64       `json:"customerId,omitempty"          yaml:"customer_id,omitempty"`
	Currency            string      `json:"currency"                      yaml:"currency"`
	DueDate             *Date       `json:"dueDate,omitempty"             yaml:"due_date,omitempty"`
	Kid                 string      `json:"kid,omitempty"                 yaml:"kid,omitempty"`
	PaymentAccount      string      `json:"paymentAccount,omitempty"      yaml:"payment_account,omitempty"`
	PaymentDate         *Date       `json:"paymentDate,omitempty"         yaml:"payment_date,omitempty"`
	PaymentFee          int64       `json:"paymentFee,omitempty"          yaml:"payment_fee,omitempty"`
	ProjectID           int64       `json:"projectId,omitempty"           yaml:"project_id,omitempty"`
}

// Sale is a registered sale.
type Sale struct {
	SaleID              int64        `json:"saleId"                        yaml:"sale_id"`
	TransactionID       int64        `json:"transactionId,omitempty"       yaml:"transaction_id,omitempty"`
	CreatedDate         Date         `json:"createdDate"                   yaml:"created_date"`
	LastModifiedDate    Date         `json:"lastModifiedDate"              yaml:"last_modified_date"`
	SaleNumber          string       `json:"saleNumber,omitempty"          yaml:"sale_number,omitempty"`
	Date                Date         `json:"date"                          yaml:"date"`
	Kind                string       `json:"kind"                          yaml:"kind"`
	NetAmount           int64        `json:"netAmount"                     yaml:"net_amount"`
	VatAmount           int64        `json:"vatAmount"                     yaml:"vat_amount"`
	Settled             bool         `json:"settled"                       yaml:"settled"`
	SettledDate         Date         `json:"settledDate"                   yaml:"settled_date"`
	WriteOff            bool         `json:"writeOff"                      yaml:"write_off"`
	TotalPaid           int64        `json:"totalPaid,omitempty"           yaml:"total_paid,omitempty"`
	TotalPaidInCurrency int64        `json:"totalPaidInCurrency,omitempty" yaml:"total_paid_in_currency,omitempty"`
	Lines               []OrderLine  `json:"lines"                         yaml:"lines"`
	Customer            *Contact     `json:"customer,omitempty"            yaml:"customer,omitempty"`
	Currency            string       `json:"currency"                      yaml:"currency"`
	DueDate             Date         `json:"dueDate"                       yaml:"due_date"`
	Kid                 string       `json:"kid,omitempty"                 yaml:"kid,omitempty"`
	SalePayments        []Payment    `json:"salePayments,omitempty"        yaml:"sale_payments,omitempty"`
	SaleAttachments     []Attachment `json:"saleAttachments,omitempty"     yaml:"sale_attachments,omitempty"`
	Deleted             bool         `json:"deleted"                       yaml:"deleted"`
	Project             *Project     `json:"project,omitempty"             yaml:"project,omitempty"`
}

// PurchaseRequest creates a purchase.
type PurchaseRequest struct {
	Identifier     string      `json:"identifier,omitempty"     yaml:"identifier,omitempty"`
	Date           Date        `json:"date"                     yaml:"date"`
	DueDate        *Date       `json:"dueDate,omitempty"        yaml:"due_date,omitempty"`
	Kind           string      `json:"kind"                     yaml:"kind"`
	Lines          []OrderLine `json:"lines"                    yaml:"lines"`
	Currency       string      `json:"currency"                 yaml:"currency"`
	SupplierID     int64       `json:"supplierId,omitempty"     yaml:"supplier_id,omitempty"`
	PaymentAccount string      `json:"paymentAccount,omitempty" yaml:"payment_account,omitempty"`
	PaymentDate    *Date       `json:"paymentDate,omitempty"    yaml:"payment_date,omitempty"`
	Kid            string      `json:"kid,omitempty"            yaml:"kid,omitempty"`
	ProjectID      int64       `json:"projectId,omitempty"      yaml:"project_id,omitempty"`
}

// Purchase is a registered purchase.
type Purchase struct {
	PurchaseID          int64        `json:"purchaseId"                    yaml:"purchase_id"`
	TransactionID       int64        `json:"transactionId,omitempty"       yaml:"transaction_id,omitempty"`
	Identifier          string       `json:"identifier,omitempty"          yaml:"identifier,omitempty"`
	Date                Date         `json:"date"                          yaml:"date"`
	DueDate             Date         `json:"dueDate"                       yaml:"due_date"`
	Kind                string       `json:"kind"                          yaml:"kind"`
	Paid                bool         `json:"paid"                          yaml:"paid"`
	Lines               []OrderLine  `json:"lines"                         yaml:"lines"`
	Supplier            *Contact     `json:"supplier,omitempty"            yaml:"supplier,omitempty"`
	Currency            string       `json:"currency"                      yaml:"currency"`
	Kid                 string       `json:"kid,omitempty"                 yaml:"kid,omitempty"`
	Payments            []Payment    `json:"payments,omitempty"            yaml:"payments,omitempty"`
	PurchaseAttachments []Attachment `json:"purchaseAttachments,omitempty" yaml:"purchase_attachments,omitempty"`
	Deleted             bool         `json:"deleted"                       yaml:"deleted"`
	Project             *Project     `json:"project,omitempty"             yaml:"project,omitempty"`
}

// DraftLine is a line on a sale or purchase draft.
type DraftLine struct {
	Text          string `json:"text"                    yaml:"text"`
	VatType       string `json:"vatType"                 yaml:"vat_type"`
	IncomeAccount string `json:"incomeAccount,omitempty" yaml:"income_account,omitempty"`
	Account       string `json:"account,omitempty"       yaml:"account,omitempty"`
	Net           int64  `json:"net"                     yaml:"net"`
	Gross         int64  `json:"gross"                   yaml:"gross"`
	ProjectID     int64  `json:"projectId,omitempty"     yaml:"project_id,omitempty"`
}

// DraftRequest creates or updates a sale or purchase draft.
type DraftRequest struct {
	Cash             bool        `json:"cash"                       yaml:"cash"`
	DueDate          *Date       `json:"dueDate,omitempty"          yaml:"due_date,omitempty"`
	Kid              string      `json:"kid,omitempty"              yaml:"kid,omitempty"`
	InvoiceIssueDate *Date       `json:"invoiceIssueDate,omitempty" yaml:"invoice_issue_date,omitempty"`
	InvoiceNumber    string      `json:"invoiceNumber,omitempty"    yaml:"invoice_number,omitempty"`
	Paid             bool        `json:"paid"                       yaml:"paid"`
	PaymentAccount   string      `json:"paymentAccount,omitempty"   yaml:"payment_account,omitempty"`
	PaymentDate      *Date       `json:"paymentDate,omitempty"      yaml:"payment_date,omitempty"`
	Lines            []DraftLine `json:"lines"                      yaml:"lines"`
	ContactID        int64       `json:"contactId,omitempty"        yaml:"contact_id,omitempty"`
	Currency         string      `json:"currency,omitempty"         yaml:"currency,omitempty"`
	ProjectID        int64       `json:"projectId,omitempty"        yaml:"project_id,omitempty"`
}

// Draft is a sale or purchase draft.
type Draft struct {
	DraftID          int64        `json:"draftId"                 yaml:"draft_id"`
	UUID             string       `json:"uuid"                    yaml:"uuid"`
	Cash             bool         `json:"cash"                    yaml:"cash"`
	DueDate          Date         `json:"dueDate"                 yaml:"due_date"`
	Kid              string       `json:"kid,omitempty"           yaml:"kid,omitempty"`
	InvoiceIssueDate Date         `json:"invoiceIssueDate"        yaml:"invoice_issue_date"`
	InvoiceNumber    string       `json:"invoiceNumber,omitempty" yaml:"invoice_number,omitempty"`
	Paid             bool         `json:"paid"                    yaml:"paid"`
	PaymentAccount   string       `json:"paymentAccount,omitempty" yaml:"payment_account,omitempty"`
	PaymentDate      Date         `json:"paymentDate"              yaml:"payment_date"`
	Lines            []DraftLine  `json:"lines"                   yaml:"lines"`
	Contact          *Contact     `json:"contact,omitempty"       yaml:"contact,omitempty"`
	Currency         string       `json:"currency,omitempty"      yaml:"currency,omitempty"`
	Attachments      []Attachment `json:"attachments,omitempty"   yaml:"attachments,omitempty"`
	Project          *Project     `json:"project,omitempty"       yaml:"project,omitempty"`
}

// FullCreditNoteRequest credits an invoice in full.
type FullCreditNoteRequest struct {
	IssueDate      Date   `json:"issueDate"                yaml:"issue_date"`
	InvoiceID      int64  `json:"invoiceId"                yaml:"invoice_id"`
	CreditNoteText string `json:"creditNoteText,omitempty" yaml:"credit_note_text,omitempty"`
}

// PartialCreditNoteRequest credits selected lines or amounts.
type PartialCreditNoteRequest struct {
	IssueDate      Date                 `json:"issueDate"                yaml:"issue_date"`
	InvoiceID      int64                `json:"invoiceId,omitempty"      yaml:"invoice_id,omitempty"`
	CustomerID     int64                `json:"customerId,omitempty"     yaml:"customer_id,omitempty"`
	OurReference   string               `json:"ourReference,omitempty"   yaml:"our_reference,omitempty"`
	YourReference  string               `json:"yourReference,omitempty"  yaml:"your_reference,omitempty"`
	OrderReference string               `json:"orderReference,omitempty" yaml:"order_reference,omitempty"`
	ProjectID      int64                `json:"projectId,omitempty"      yaml:"project_id,omitempty"`
	Currency       string               `json:"currency,omitempty"       yaml:"currency,omitempty"`
	CreditNoteText string               `json:"creditNoteText,omitempty" yaml:"credit_note_text,omitempty"`
	Lines          []InvoiceLineRequest `json:"lines"                    yaml:"lines"`
}

// CreditNote is an issued credit note.
type CreditNote struct {
	CreditNoteID        int64         `json:"creditNoteId"                  yaml:"credit_note_id"`
	CreditNoteNumber    int64         `json:"creditNoteNumber"              yaml:"credit_note_number"`
	Kid                 string        `json:"kid,omitempty"                 yaml:"kid,omitempty"`
	IssueDate           Date          `json:"issueDate"                     yaml:"issue_date"`
	Net                 int64         `json:"net"                           yaml:"net"`
	Vat                 int64         `json:"vat"                           yaml:"vat"`
	Gross               int64         `json:"gross"                         yaml:"gross"`
	NetInNok            int64         `json:"netInNok"                      yaml:"net_in_nok"`
	VatInNok            int64         `json:"vatInNok"                      yaml:"vat_in_nok"`
	GrossInNok          int64         `json:"grossInNok"                    yaml:"gross_in_nok"`
	CreditNoteText      string        `json:"creditNoteText,omitempty"      yaml:"credit_note_text,omitempty"`
	YourReference       string        `json:"yourReference,omitempty"       yaml:"your_reference,omitempty"`
	OurReference        string        `json:"ourReference,omitempty"        yaml:"our_reference,omitempty"`
	OrderReference      string        `json:"orderReference,omitempty"      yaml:"order_reference,omitempty"`
	Lines               []InvoiceLine `json:"lines"                         yaml:"lines"`
	Currency            string        `json:"currency"                      yaml:"currency"`
	Customer            *Contact      `json:"customer,omitempty"            yaml:"customer,omitempty"`
	Settled             bool          `json:"settled"                       yaml:"settled"`
	AssociatedInvoiceID int64         `json:"associatedInvoiceId,omitempty" yaml:"associated_invoice_id,omitempty"`
	CreditNoteDraftUUID string        `json:"creditNoteDraftUuid,omitempty" yaml:"credit_note_draft_uuid,omitempty"`
	Project             *Project      `json:"project,omitempty"             yaml:"project,omitempty"`
}

// SendCreditNoteRequest sends a credit note to its customer.
type SendCreditNoteRequest struct {
	CreditNoteID               int64    `json:"creditNoteId"                 yaml:"credit_note_id"`
	Method                     []string `json:"method"                       yaml:"method"`
	IncludeDocumentAttachments bool     `json:"includeDocumentAttachments"   yaml:"include_document_attachments"`
	RecipientName              string   `json:"recipientName,omitempty"      yaml:"recipient_name,omitempty"`
	RecipientEmail             string   `json:"recipientEmail,omitempty"     yaml:"recipient_email,omitempty"`
	Message                    string   `json:"message,omitempty"            yaml:"message,omitempty"`
	OrganizationNumber         string   `json:"organizationNumber,omitempty" yaml:"organization_number,omitempty"`
	MobileNumber               string   `json:"mobileNumber,omitempty"       yaml:"mobile_number,omitempty"`
}

// JournalEntryLine is a debit/credit line of a journal entry.
type JournalEntryLine struct {
	Amount        int64  `json:"amount"                  yaml:"amount"`
	Account       string `json:"account,omitempty"       yaml:"account,omitempty"`
	VatCode       string `json:"vatCode,omitempty"       yaml:"vat_code,omitempty"`
	DebitAccount  string `json:"debitAccount,omitempty"  yaml:"debit_account,omitempty"`
	DebitVatCode  int    `json:"debitVatCode,omitempty"  yaml:"debit_vat_code,omitempty"`
	CreditAccount string `json:"creditAccount,omitempty" yaml:"credit_account,omitempty"`
	CreditVatCode int    `json:"creditVatCode,omitempty" yaml:"credit_vat_code,omitempty"`
	ProjectID     int64  `json:"projectId,omitempty"     yaml:"project_id,omitempty"`
}

// JournalEntryRequest is one entry of a general journal entry request.
type JournalEntryRequest struct {
	Description string             `json:"description" yaml:"description"`
	Date        Date               `json:"date"        yaml:"date"`
	Lines       []JournalEntryLine `json:"lines"       yaml:"lines"`
}

// GeneralJournalEntryRequest creates one or more journal entries in a
// single transaction.
type GeneralJournalEntryRequest struct {
	Description    string                `json:"description,omitempty" yaml:"description,omitempty"`
	Open           bool                  `json:"open"                  yaml:"open"`
	JournalEntries []JournalEntryRequest `json:"journalEntries"        yaml:"journal_entries"`
}

// JournalEntry is a posted journal entry.
type JournalEntry struct {
	JournalEntryID      int64              `json:"journalEntryId"                yaml:"journal_entry_id"`
	TransactionID       int64              `json:"transactionId"                 yaml:"transaction_id"`
	OffsetTransactionID int64              `json:"offsetTransactionId,omitempty" yaml:"offset_transaction_id,omitempty"`
	JournalEntryNumber  int64              `json:"journalEntryNumber"            yaml:"journal_entry_number"`
	Description         string             `json:"description"                   yaml:"description"`
	Date                Date               `json:"date"                          yaml:"date"`
	Lines               []JournalEntryLine `json:"lines"                         yaml:"lines"`
	Attachments         []Attachment       `json:"attachments,omitempty"         yaml:"attachments,omitempty"`
}

// Transaction groups the journal entries of one accounting event.
type Transaction struct {
	TransactionID    int64          `json:"transactionId"    yaml:"transaction_id"`
	CreatedDate      Date           `json:"createdDate"      yaml:"created_date"`
	LastModifiedDate Date           `json:"lastModifiedDate" yaml:"last_modified_date"`
	Description      string         `json:"description"      yaml:"description"`
	Type             string         `json:"type"             yaml:"type"`
	Entries          []JournalEntry `json:"entries"          yaml:"entries"`
}

// ProjectRequest creates a project.
type ProjectRequest struct {
	Number      string `json:"number"                yaml:"number"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   Date   `json:"startDate"             yaml:"start_date"`
	EndDate     *Date  `json:"endDate,omitempty"     yaml:"end_date,omitempty"`
	ContactID   int64  `json:"contactId,omitempty"   yaml:"contact_id,omitempty"`
	Completed   bool   `json:"completed"             yaml:"completed"`
}

// UpdateProjectRequest changes a project.
type UpdateProjectRequest struct {
	Number      string `json:"number,omitempty"      yaml:"number,omitempty"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   *Date  `json:"startDate,omitempty"   yaml:"start_date,omitempty"`
	EndDate     *Date  `json:"endDate,omitempty"     yaml:"end_date,omitempty"`
	ContactID   int64  `json:"contactId,omitempty"   yaml:"contact_id,omitempty"`
	Completed   *bool  `json:"completed,omitempty"   yaml:"completed,omitempty"`
}

// Project is a project in the company.
type Project struct {
	ProjectID   int64    `json:"projectId"             yaml:"project_id"`
	Number      string   `json:"number"                yaml:"number"`
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   Date     `json:"startDate"             yaml:"start_date"`
	EndDate     Date     `json:"endDate"               yaml:"end_date"`
	Contact     *Contact `json:"contact,omitempty"     yaml:"contact,omitempty"`
	Completed   bool     `json:"completed"             yaml:"completed"`
}

// InboxDocument is a document in the company inbox.
type InboxDocument struct {
	DocumentID  int64  `json:"documentId"            yaml:"document_id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Filename    string `json:"filename"              yaml:"filename"`
	Status      bool   `json:"status"                yaml:"status"`
	CreatedAt   string `json:"createdAt,omitempty"   yaml:"created_at,omitempty"`
}

// Group is a contact group name.
type Group = string
