package githubapi

import (
	"context"
	"fmt"
)

// GetPullRequest retrieves a pull request by number. The project is
// given as "owner/name".
func (c *Client) GetPullRequest(ctx context.Context, project string, number int64) (*PullRequest, error) {
	pr, err := Get[PullRequest](ctx, c, fmt.Sprintf("repos/%s/pulls/%d", project, number))
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// ListPullRequests lists the open pull requests for a project.
func (c *Client) ListPullRequests(ctx context.Context, project string) ([]PullRequest, error) {
	return Get[[]PullRequest](ctx, c, fmt.Sprintf("repos/%s/pulls", project))
}

// CreatePullRequest opens a pull request.
func (c *Client) CreatePullRequest(ctx context.Context, project string, req CreatePullRequest) (*PullRequest, error) {
	pr, err := Post[PullRequest](ctx, c, fmt.Sprintf("repos/%s/pulls", project), req)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}
