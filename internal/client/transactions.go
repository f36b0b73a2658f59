package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// TransactionsClient implements fiken.TransactionsClient.
type TransactionsClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.TransactionsClient.List.
func (c *TransactionsClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Transaction] {
	return listResources[fiken.Transaction](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, id int64) (*fiken.Transaction, error) {
	return getResource[fiken.Transaction](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "transaction")
}

// Delete implements fiken.TransactionsClient.Delete.
func (c *TransactionsClient) Delete(ctx context.Context, id int64, description string) (*fiken.Transaction, error) {
	return patchAction(ctx, c.httpClient, c.base+"/"+itoa(id)+"/delete", descriptionQuery(description),
		func(ctx context.Context) (*fiken.Transaction, error) { return c.Get(ctx, id) },
		fmt.Sprintf("deleting transaction %d", id))
}
