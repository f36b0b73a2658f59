package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// PurchasesClient implements fiken.PurchasesClient.
type PurchasesClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.PurchasesClient.List.
func (c *PurchasesClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Purchase] {
	return listResources[fiken.Purchase](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.PurchasesClient.Get.
func (c *PurchasesClient) Get(ctx context.Context, id int64) (*fiken.Purchase, error) {
	return getResource[fiken.Purchase](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "purchase")
}

// Create implements fiken.PurchasesClient.Create.
func (c *PurchasesClient) Create(ctx context.Context, purchase *fiken.PurchaseRequest) (*fiken.Purchase, error) {
	return createResource(ctx, c.httpClient, c.base, purchase, c.Get, "purchase")
}

// Delete implements fiken.PurchasesClient.Delete.
func (c *PurchasesClient) Delete(ctx context.Context, id int64, description string) (*fiken.Purchase, error) {
	return patchAction(ctx, c.httpClient, c.base+"/"+itoa(id)+"/delete", descriptionQuery(description),
		func(ctx context.Context) (*fiken.Purchase, error) { return c.Get(ctx, id) },
		fmt.Sprintf("deleting purchase %d", id))
}

// Attachments implements fiken.PurchasesClient.Attachments.
func (c *PurchasesClient) Attachments(id int64) fiken.AttachmentsClient {
	return newAttachmentsClient(c.httpClient, c.base+"/"+itoa(id)+"/attachments")
}

// Payments implements fiken.PurchasesClient.Payments.
func (c *PurchasesClient) Payments(id int64) fiken.PaymentsClient {
	return newPaymentsClient(c.httpClient, c.base+"/"+itoa(id)+"/payments")
}

// Drafts implements fiken.PurchasesClient.Drafts.
func (c *PurchasesClient) Drafts() fiken.DraftsClient[fiken.Purchase] {
	return newDraftsClient[fiken.Draft, fiken.DraftRequest](c.httpClient, c.base, "createPurchase", "purchase draft", c.Get)
}
