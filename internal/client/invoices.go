package client

import (
	"context"
	"fmt"
	"net/http"

	http_internal "github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// counter is the body of the invoice and credit note counter endpoints.
type counter struct {
	Value int64 `json:"value"`
}

// InvoicesClient implements fiken.InvoicesClient.
type InvoicesClient struct {
	httpClient *http_internal.Client
	base       string
}

// List implements fiken.InvoicesClient.List. Useful filters are "issueDate",
// "dueDate", "settled" and "customerId".
func (c *InvoicesClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Invoice] {
	return listResources[fiken.Invoice](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, id int64) (*fiken.Invoice, error) {
	return getResource[fiken.Invoice](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "invoice")
}

// Create implements fiken.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, invoice *fiken.InvoiceRequest) (*fiken.Invoice, error) {
	return createResource(ctx, c.httpClient, c.base, invoice, c.Get, "invoice")
}

// Update implements fiken.InvoicesClient.Update. Invoices are patched, not
// replaced.
func (c *InvoicesClient) Update(ctx context.Context, id int64, update *fiken.UpdateInvoiceRequest) (*fiken.Invoice, error) {
	return updateResource(ctx, c.httpClient, http.MethodPatch, c.base+"/"+itoa(id), update,
		func(ctx context.Context) (*fiken.Invoice, error) { return c.Get(ctx, id) }, "invoice")
}

// Send implements fiken.InvoicesClient.Send.
func (c *InvoicesClient) Send(ctx context.Context, request *fiken.SendInvoiceRequest) error {
	_, err := c.httpClient.Post(ctx, c.base+"/send", request)
	if err != nil {
		return fmt.Errorf("sending invoice: %w", err)
	}

	return nil
}

// Counter implements fiken.InvoicesClient.Counter.
func (c *InvoicesClient) Counter(ctx context.Context) (int64, error) {
	return getCounter(ctx, c.httpClient, c.base+"/counter", "invoice counter")
}

// SetCounter implements fiken.InvoicesClient.SetCounter.
func (c *InvoicesClient) SetCounter(ctx context.Context, value int64) error {
	return setCounter(ctx, c.httpClient, c.base+"/counter", value, "invoice counter")
}

// Attachments implements fiken.InvoicesClient.Attachments.
func (c *InvoicesClient) Attachments(id int64) fiken.AttachmentsClient {
	return newAttachmentsClient(c.httpClient, c.base+"/"+itoa(id)+"/attachments")
}

// Drafts implements fiken.InvoicesClient.Drafts.
func (c *InvoicesClient) Drafts() fiken.InvoiceishDraftsClient[fiken.Invoice] {
	return newDraftsClient[fiken.InvoiceishDraft, fiken.InvoiceishDraftRequest](
		c.httpClient, c.base, "createInvoice", "invoice draft", c.Get)
}

func getCounter(ctx context.Context, httpClient *http_internal.Client, path, what string) (int64, error) {
	result, err := getResource[counter](ctx, httpClient, path, nil, what)
	if err != nil {
		return 0, err
	}

	return result.Value, nil
}

func setCounter(ctx context.Context, httpClient *http_internal.Client, path string, value int64, what string) error {
	_, err := httpClient.Post(ctx, path, counter{Value: value})
	if err != nil {
		return fmt.Errorf("setting %s: %w", what, err)
	}

	return nil
}
