package client

import (
	"context"

	"github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// JournalEntriesClient implements fiken.JournalEntriesClient. Entries are
// read from /journalEntries but created through /generalJournalEntries.
type JournalEntriesClient struct {
	httpClient *http.Client
	company    string
}

func (c *JournalEntriesClient) base() string {
	return c.company + "/journalEntries"
}

// List implements fiken.JournalEntriesClient.List.
func (c *JournalEntriesClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.JournalEntry] {
	return listResources[fiken.JournalEntry](ctx, c.httpClient, c.base(), params)
}

// Get implements fiken.JournalEntriesClient.Get.
func (c *JournalEntriesClient) Get(ctx context.Context, id int64) (*fiken.JournalEntry, error) {
	return getResource[fiken.JournalEntry](ctx, c.httpClient, c.base()+"/"+itoa(id), nil, "journal entry")
}

// Create implements fiken.JournalEntriesClient.Create.
func (c *JournalEntriesClient) Create(ctx context.Context, request *fiken.GeneralJournalEntryRequest) (*fiken.JournalEntry, error) {
	return createResource(ctx, c.httpClient, c.company+"/generalJournalEntries", request, c.Get, "general journal entry")
}

// Attachments implements fiken.JournalEntriesClient.Attachments.
func (c *JournalEntriesClient) Attachments(id int64) fiken.AttachmentsClient {
	return newAttachmentsClient(c.httpClient, c.base()+"/"+itoa(id)+"/attachments")
}
