package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// SalesClient implements fiken.SalesClient.
type SalesClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.SalesClient.List.
func (c *SalesClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Sale] {
	return listResources[fiken.Sale](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.SalesClient.Get.
func (c *SalesClient) Get(ctx context.Context, id int64) (*fiken.Sale, error) {
	return getResource[fiken.Sale](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "sale")
}

// Create implements fiken.SalesClient.Create.
func (c *SalesClient) Create(ctx context.Context, sale *fiken.SaleRequest) (*fiken.Sale, error) {
	return createResource(ctx, c.httpClient, c.base, sale, c.Get, "sale")
}

// Delete implements fiken.SalesClient.Delete. Fiken keeps deleted sales and
// marks them with the given description, so the sale is returned.
func (c *SalesClient) Delete(ctx context.Context, id int64, description string) (*fiken.Sale, error) {
	return patchAction(ctx, c.httpClient, c.base+"/"+itoa(id)+"/delete", descriptionQuery(description),
		func(ctx context.Context) (*fiken.Sale, error) { return c.Get(ctx, id) },
		fmt.Sprintf("deleting sale %d", id))
}

// Settle implements fiken.SalesClient.Settle.
func (c *SalesClient) Settle(ctx context.Context, id int64, settledDate fiken.Date) (*fiken.Sale, error) {
	query := url.Values{"settledDate": []string{settledDate.String()}}

	return patchAction(ctx, c.httpClient, c.base+"/"+itoa(id)+"/settled", query,
		func(ctx context.Context) (*fiken.Sale, error) { return c.Get(ctx, id) },
		fmt.Sprintf("settling sale %d", id))
}

// Attachments implements fiken.SalesClient.Attachments.
func (c *SalesClient) Attachments(id int64) fiken.AttachmentsClient {
	return newAttachmentsClient(c.httpClient, c.base+"/"+itoa(id)+"/attachments")
}

// Payments implements fiken.SalesClient.Payments.
func (c *SalesClient) Payments(id int64) fiken.PaymentsClient {
	return newPaymentsClient(c.httpClient, c.base+"/"+itoa(id)+"/payments")
}

// Drafts implements fiken.SalesClient.Drafts.
func (c *SalesClient) Drafts() fiken.DraftsClient[fiken.Sale] {
	return newDraftsClient[fiken.Draft, fiken.DraftRequest](c.httpClient, c.base, "createSale", "sale draft", c.Get)
}
