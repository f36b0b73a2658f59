package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// InboxClient implements fiken.InboxClient.
type InboxClient struct {
	httpClient *http.Client
	base       string
}

// List implements fiken.InboxClient.List. Filter with "status" and "name".
func (c *InboxClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.InboxDocument] {
	return listResources[fiken.InboxDocument](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.InboxClient.Get.
func (c *InboxClient) Get(ctx context.Context, id int64) (*fiken.InboxDocument, error) {
	return getResource[fiken.InboxDocument](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "inbox document")
}

// Upload implements fiken.InboxClient.Upload.
func (c *InboxClient) Upload(ctx context.Context, file *fiken.AttachmentFile, name, description string) (*fiken.InboxDocument, error) {
	if file == nil {
		return nil, http.ErrNilAttachment
	}

	upload := *file
	upload.Fields = make(map[string]string, len(file.Fields)+2)

	for key, value := range file.Fields {
		upload.Fields[key] = value
	}

	if name != "" {
		upload.Fields["name"] = name
	}

	if description != "" {
		upload.Fields["description"] = description
	}

	resp, err := c.httpClient.PostMultipart(ctx, c.base, &upload)
	if err != nil {
		return nil, fmt.Errorf("uploading inbox document: %w", err)
	}

	return resolveCreated(ctx, resp, c.Get, "inbox document")
}
