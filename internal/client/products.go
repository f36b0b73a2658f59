package client

import (
	"context"
	"fmt"
	"net/http"

	http_internal "github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// ProductsClient implements fiken.ProductsClient.
type ProductsClient struct {
	httpClient *http_internal.Client
	base       string
}

// List implements fiken.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Product] {
	return listResources[fiken.Product](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id int64) (*fiken.Product, error) {
	return getResource[fiken.Product](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "product")
}

// Create implements fiken.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, product *fiken.Product) (*fiken.Product, error) {
	return createResource(ctx, c.httpClient, c.base, product, c.Get, "product")
}

// Update implements fiken.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, id int64, product *fiken.Product) (*fiken.Product, error) {
	return updateResource(ctx, c.httpClient, http.MethodPut, c.base+"/"+itoa(id), product,
		func(ctx context.Context) (*fiken.Product, error) { return c.Get(ctx, id) }, "product")
}

// Delete implements fiken.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, c.base+"/"+itoa(id), "product")
}

// SalesReport implements fiken.ProductsClient.SalesReport.
func (c *ProductsClient) SalesReport(ctx context.Context, request *fiken.ProductSalesReportRequest) ([]fiken.ProductSalesReportLine, error) {
	resp, err := c.httpClient.Post(ctx, c.base+"/salesReport", request)
	if err != nil {
		return nil, fmt.Errorf("creating product sales report: %w", err)
	}

	lines, err := decode[[]fiken.ProductSalesReportLine](resp.Body, "product sales report")
	if err != nil {
		return nil, err
	}

	return *lines, nil
}
