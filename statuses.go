package githubapi

import (
	"context"
	"fmt"
)

// CreateStatus sets a commit status on the given SHA.
func (c *Client) CreateStatus(ctx context.Context, project, sha string, req CreateStatusRequest) (*Status, error) {
	status, err := Post[Status](ctx, c, fmt.Sprintf("repos/%s/statuses/%s", project, sha), req)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetCombinedStatus returns the combined status for a reference.
func (c *Client) GetCombinedStatus(ctx context.Context, project, ref string) (*CombinedStatus, error) {
	combined, err := Get[CombinedStatus](ctx, c, fmt.Sprintf("repos/%s/commits/%s/status", project, ref))
	if err != nil {
		return nil, err
	}
	return &combined, nil
}

// GetRef retrieves a git reference, e.g. "heads/main".
func (c *Client) GetRef(ctx context.Context, project, ref string) (*Ref, error) {
	r, err := Get[Ref](ctx, c, fmt.Sprintf("repos/%s/git/refs/%s", project, ref))
	if err != nil {
		return nil, err
	}
	return &r, nil
}
