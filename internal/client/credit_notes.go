package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// CreditNotesClient implements fiken.CreditNotesClient.
type CreditNotesClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.CreditNotesClient.List.
func (c *CreditNotesClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.CreditNote] {
	return listResources[fiken.CreditNote](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.CreditNotesClient.Get.
func (c *CreditNotesClient) Get(ctx context.Context, id int64) (*fiken.CreditNote, error) {
	return getResource[fiken.CreditNote](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "credit note")
}

// CreateFull implements fiken.CreditNotesClient.CreateFull.
func (c *CreditNotesClient) CreateFull(ctx context.Context, request *fiken.FullCreditNoteRequest) (*fiken.CreditNote, error) {
	return createResource(ctx, c.httpClient, c.base+"/full", request, c.Get, "full credit note")
}

// CreatePartial implements fiken.CreditNotesClient.CreatePartial.
func (c *CreditNotesClient) CreatePartial(ctx context.Context, request *fiken.PartialCreditNoteRequest) (*fiken.CreditNote, error) {
	return createResource(ctx, c.httpClient, c.base+"/partial", request, c.Get, "partial credit note")
}

// Send implements fiken.CreditNotesClient.Send.
func (c *CreditNotesClient) Send(ctx context.Context, request *fiken.SendCreditNoteRequest) error {
	_, err := c.httpClient.Post(ctx, c.base+"/send", request)
	if err != nil {
		return fmt.Errorf("sending credit note: %w", err)
	}

	return nil
}

// Counter implements fiken.CreditNotesClient.Counter.
func (c *CreditNotesClient) Counter(ctx context.Context) (int64, error) {
	return getCounter(ctx, c.httpClient, c.base+"/counter", "credit note counter")
}

// SetCounter implements fiken.CreditNotesClient.SetCounter.
func (c *CreditNotesClient) SetCounter(ctx context.Context, value int64) error {
	return setCounter(ctx, c.httpClient, c.base+"/counter", value, "credit note counter")
}

// Drafts implements fiken.CreditNotesClient.Drafts.
func (c *CreditNotesClient) Drafts() fiken.InvoiceishDraftsClient[fiken.CreditNote] {
	return newDraftsClient[fiken.InvoiceishDraft, fiken.InvoiceishDraftRequest](
		c.httpClient, c.base, "createCreditNote", "credit note draft", c.Get)
}
