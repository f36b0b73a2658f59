package client

import (
	"context"
	"net/http"

	http_internal "github.com/fivetwenty-io/fiken-client/internal/http"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

// ProjectsClient implements fiken.ProjectsClient.
type ProjectsClient struct {
	httpClient *http_internal.Client
	base       string
}

// List implements fiken.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, params *fiken.QueryParams) *fiken.PaginationIterator[fiken.Project] {
	return listResources[fiken.Project](ctx, c.httpClient, c.base, params)
}

// Get implements fiken.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id int64) (*fiken.Project, error) {
	return getResource[fiken.Project](ctx, c.httpClient, c.base+"/"+itoa(id), nil, "project")
}

// Create implements fiken.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, project *fiken.ProjectRequest) (*fiken.Project, error) {
	return createResource(ctx, c.httpClient, c.base, project, c.Get, "project")
}

// Update implements fiken.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, id int64, project *fiken.UpdateProjectRequest) (*fiken.Project, error) {
	return updateResource(ctx, c.httpClient, http.MethodPut, c.base+"/"+itoa(id), project,
		func(ctx context.Context) (*fiken.Project, error) { return c.Get(ctx, id) }, "project")
}

// Delete implements fiken.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, id int64) error {
	return deleteResource(ctx, c.httpClient, c.base+"/"+itoa(id), "project")
}
