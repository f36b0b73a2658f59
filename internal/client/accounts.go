package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// AccountsClient implements fiken.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.AccountsClient.List. Filter with "fromAccount" and
// "toAccount".
func (c *AccountsClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Account] {
	return listResources[fiken.Account](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, code string) (*fiken.Account, error) {
	return getResource[fiken.Account](ctx, c.httpClient, c.base+"/"+url.PathEscape(code), nil, "account")
}

// AccountBalancesClient implements fiken.AccountBalancesClient.
type AccountBalancesClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.AccountBalancesClient.List.
func (c *AccountBalancesClient) List(ctx context.Context, date fiken.Date, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.AccountBalance] {
	return listResources[fiken.AccountBalance](ctx, c.httpClient, c.base, withDate(params, "date", date))
}

// Get implements fiken.AccountBalancesClient.Get.
func (c *AccountBalancesClient) Get(ctx context.Context, code string, date fiken.Date) (*fiken.AccountBalance, error) {
	return getResource[fiken.AccountBalance](ctx, c.httpClient, c.base+"/"+url.PathEscape(code), dateQuery(date), "account balance")
}

// BankAccountsClient implements fiken.BankAccountsClient.
type BankAccountsClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.BankAccountsClient.List.
func (c *BankAccountsClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.BankAccount] {
	return listResources[fiken.BankAccount](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.BankAccountsClient.Get.
func (c *BankAccountsClient) Get(ctx context.Context, id int64) (*fiken.BankAccount, error) {
	return getResource[fiken.BankAccount](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "bank account")
}

// Create implements fiken.BankAccountsClient.Create.
func (c *BankAccountsClient) Create(ctx context.Context, request *fiken.BankAccountRequest) (*fiken.BankAccount, error) {
	return createResource(ctx, c.httpClient, c.base, request, c.Get, "bank account")
}

// BankBalancesClient implements fiken.BankBalancesClient.
type BankBalancesClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.BankBalancesClient.List.
func (c *BankBalancesClient) List(ctx context.Context, date fiken.Date, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.BankBalance] {
	return listResources[fiken.BankBalance](ctx, c.httpClient, c.base, withDate(params, "date", date))
}
