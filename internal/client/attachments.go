package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// AttachmentsClient implements fiken.AttachmentsClient for any resource
// with an attachments sub-collection.
type AttachmentsClient struct {
	httpClient *http.Client
	path       string
}

func newAttachmentsClient(httpClient *http.Client, path string) *AttachmentsClient {
	return &AttachmentsClient{httpClient: httpClient, path: path}
}

// List implements fiken.AttachmentsClient.List.
func (c *AttachmentsClient) List(ctx context.Context) ([]fiken.Attachment, error) {
	return getList[fiken.Attachment](ctx, c.httpClient, c.path, nil, "attachments")
}

// Add implements fiken.AttachmentsClient.Add.
func (c *AttachmentsClient) Add(ctx context.Context, file *fiken.AttachmentFile) error {
	_, err := c.httpClient.PostMultipart(ctx, c.path, file)
	if err != nil {
		return fmt.Errorf("uploading attachment: %w", err)
	}

	return nil
}

// PaymentsClient implements fiken.PaymentsClient for a sale or purchase.
type PaymentsClient struct {
	httpClient *http.Client
	path       string
}

func newPaymentsClient(httpClient *http.Client, path string) *PaymentsClient {
	return &PaymentsClient{httpClient: httpClient, path: path}
}

// List implements fiken.PaymentsClient.List.
func (c *PaymentsClient) List(ctx context.Context) ([]fiken.Payment, error) {
	return getList[fiken.Payment](ctx, c.httpClient, c.path, nil, "payments")
}

// Get implements fiken.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, paymentID int64) (*fiken.Payment, error) {
	return getResource[fiken.Payment](ctx, c.httpClient, c.path+"/"+itoa(paymentID), nil, "payment")
}

// Create implements fiken.PaymentsClient.Create.
func (c *PaymentsClient) Create(ctx context.Context, payment *fiken.Payment) (*fiken.Payment, error) {
	return createResource(ctx, c.httpClient, c.path, payment, c.Get, "payment")
}
