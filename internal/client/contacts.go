package client

import (
	"context"
	"net/http"

	http_internal "github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// ContactsClient implements fiken.ContactsClient.
type ContactsClient struct {
	httpClient *http_internal.Client
	base       string
}

// List implements fiken.ContactsClient.List.
func (c *ContactsClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Contact] {
	return listResources[fiken.Contact](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.ContactsClient.Get.
func (c *ContactsClient) Get(ctx context.Context, id int64) (*fiken.Contact, error) {
	return getResource[fiken.Contact](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "contact")
}

// Create implements fiken.ContactsClient.Create.
func (c *ContactsClient) Create(ctx context.Context, contact *fiken.Contact) (*fiken.Contact, error) {
	return createResource(ctx, c.httpClient, c.base, contact, c.Get, "contact")
}

// Update implements fiken.ContactsClient.Update.
func (c *ContactsClient) Update(ctx context.Context, id int64, contact *fiken.Contact) (*fiken.Contact, error) {
	return updateResource(ctx, c.httpClient, http.MethodPut, c.base+"/"+itoa(id), contact,
		func(ctx context.Context) (*fiken.Contact, error) { return c.Get(ctx, id) }, "contact")
}

// Delete implements fiken.ContactsClient.Delete.
func (c *ContactsClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, c.base+"/"+itoa(id), "contact")
}

// Attachments implements fiken.ContactsClient.Attachments.
func (c *ContactsClient) Attachments(id int64) fiken.AttachmentsClient {
	return newAttachmentsClient(c.httpClient, c.base+"/"+itoa(id)+"/attachments")
}

// Persons implements fiken.ContactsClient.Persons.
func (c *ContactsClient) Persons(id int64) fiken.ContactPersonsClient {
	return &ContactPersonsClient{httpClient: c.httpClient, base: c.base + "/" + itoa(id) + "/contactPerson"}
}

// ContactPersonsClient implements fiken.ContactPersonsClient.
type ContactPersonsClient struct {
	httpClient *http_internal.Client
	base       string
}

// List implements fiken.ContactPersonsClient.List.
func (c *ContactPersonsClient) List(ctx context.Context) ([]fiken.ContactPerson, error) {
	return getList[fiken.ContactPerson](ctx, c.httpClient, c.base, nil, "contact persons")
}

// Get implements fiken.ContactPersonsClient.Get.
func (c *ContactPersonsClient) Get(ctx context.Context, personID int64) (*fiken.ContactPerson, error) {
	return getResource[fiken.ContactPerson](ctx, c.httpClient, c.base+"/"+itoa(personID), nil, "contact person")
}

// Create implements fiken.ContactPersonsClient.Create.
func (c *ContactPersonsClient) Create(ctx context.Context, person *fiken.ContactPerson) (*fiken.ContactPerson, error) {
	return createResource(ctx, c.httpClient, c.base, person, c.Get, "contact person")
}

// Update implements fiken.ContactPersonsClient.Update.
func (c *ContactPersonsClient) Update(ctx context.Context, personID int64, person *fiken.ContactPerson) (*fiken.ContactPerson, error) {
	return updateResource(ctx, c.httpClient, http.MethodPut, c.base+"/"+itoa(personID), person,
		func(ctx context.Context) (*fiken.ContactPerson, error) { return c.Get(ctx, personID) }, "contact person")
}

// Delete implements fiken.ContactPersonsClient.Delete.
func (c *ContactPersonsClient) Delete(ctx context.Context, personID int64) error {
	return deleteResource(ctx, c.httpClient, c.base+"/"+itoa(personID), "contact person")
}
