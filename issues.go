package githubapi

import (
	"context"
	"fmt"
)

// GetIssue retrieves an issue by number.
func (c *Client) GetIssue(ctx context.Context, project string, number int64) (*Issue, error) {
	issue, err := Get[Issue](ctx, c, fmt.Sprintf("repos/%s/issues/%d", project, number))
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// AddComment posts a comment to an issue or pull request.
func (c *Client) AddComment(ctx context.Context, project string, number int64, body string) (*Comment, error) {
	payload := struct {
		Body string `json:"body"`
	}{Body: body}

	comment, err := Post[Comment](ctx, c, fmt.Sprintf("repos/%s/issues/%d/comments", project, number), payload)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
