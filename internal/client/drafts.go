package client

import (
	"context"
	"fmt"
	"net/http"

	http_internal "github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// DraftsClient serves the draft endpoints of invoices, credit notes, sales
// and purchases. D is the draft type, R its request body and T the resource
// a finalized draft becomes.
type DraftsClient[D, R, T any] struct {
	httpClient *http_internal.Client
	base       string
	action     string
	what       string
	get        func(context.Context, int64) (*T, error)
}

func newDraftsClient[D, R, T any](
	httpClient *http_internal.Client,
	resourceBase string,
	action string,
	what string,
	get func(context.Context, int64) (*T, error),
) *DraftsClient[D, R, T] {
	return &DraftsClient[D, R, T]{
		httpClient: httpClient,
		base:       resourceBase + "/drafts",
		action:     action,
		what:       what,
		get:        get,
	}
}

// List returns the drafts.
func (c *DraftsClient[D, R, T]) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[D] {
	return listResources[D](ctx, c.httpClient, c.base, params)
}

// Get returns one draft.
func (c *DraftsClient[D, R, T]) Get(ctx context.Context, draftID int64) (*D, error) {
	return getResource[D](ctx, c.httpClient, c.base+"/"+itoa(draftID), nil, c.what)
}

// Create creates a draft.
func (c *DraftsClient[D, R, T]) Create(ctx context.Context, draft *R) (*D, error) {
	return createResource(ctx, c.httpClient, c.base, draft, c.Get, c.what)
}

// Update replaces a draft.
func (c *DraftsClient[D, R, T]) Update(ctx context.Context, draftID int64, draft *R) (*D, error) {
	return updateResource(ctx, c.httpClient, http.MethodPut, c.base+"/"+itoa(draftID), draft,
		func(ctx context.Context) (*D, error) { return c.Get(ctx, draftID) }, c.what)
}

// Delete deletes a draft.
func (c *DraftsClient[D, R, T]) Delete(ctx context.Context, draftID int64) error {
	return deleteResource(ctx, c.httpClient, c.base+"/"+itoa(draftID), c.what)
}

// Attachments returns the attachments of a draft.
func (c *DraftsClient[D, R, T]) Attachments(draftID int64) fiken.AttachmentsClient {
	return newAttachmentsClient(c.httpClient, c.base+"/"+itoa(draftID)+"/attachments")
}

// Finalize turns a draft into its resource and returns that resource.
func (c *DraftsClient[D, R, T]) Finalize(ctx context.Context, draftID int64) (*T, error) {
	resp, err := c.httpClient.Post(ctx, c.base+"/"+itoa(draftID)+"/"+c.action, nil)
	if err != nil {
		return nil, fmt.Errorf("finalizing %s %d: %w", c.what, draftID, err)
	}

	return resolveCreated(ctx, resp, c.get, c.what)
}

var (
	_ fiken.InvoiceishDraftsClient[fiken.Invoice]    = (*DraftsClient[fiken.InvoiceishDraft, fiken.InvoiceishDraftRequest, fiken.Invoice])(nil)
	_ fiken.InvoiceishDraftsClient[fiken.CreditNote] = (*DraftsClient[fiken.InvoiceishDraft, fiken.InvoiceishDraftRequest, fiken.CreditNote])(nil)
	_ fiken.DraftsClient[fiken.Sale]                 = (*DraftsClient[fiken.Draft, fiken.DraftRequest, fiken.Sale])(nil)
	_ fiken.DraftsClient[fiken.Purchase]             = (*DraftsClient[fiken.Draft, fiken.DraftRequest, fiken.Purchase])(nil)
)
