package githubapi

import "time"

// User is an account on the service.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Label is an issue or pull request label.
type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Revision identifies one side of a pull request.
type Revision struct {
	Label string `json:"label,omitempty"`
	Ref   string `json:"ref"`
	SHA   string `json:"sha"`
}

// PullRequest is a pull request resource.
type PullRequest struct {
	Number    int64      `json:"number"`
	State     string     `json:"state"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	User      User       `json:"user"`
	Head      Revision   `json:"head"`
	Base      Revision   `json:"base"`
	Merged    bool       `json:"merged,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreatePullRequest is the payload for opening a pull request.
type CreatePullRequest struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Head  string `json:"head"`
	Base  string `json:"base"`
}

// Issue is an issue resource.
type Issue struct {
	Number int64   `json:"number"`
	State  string  `json:"state"`
	Title  string  `json:"title"`
	Body   string  `json:"body,omitempty"`
	User   User    `json:"user"`
	Labels []Label `json:"labels,omitempty"`
}

// Comment is a comment on an issue or pull request.
type Comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
	User User   `json:"user"`
}

// Commit state values accepted by CreateStatus and reported by
// CombinedStatus.
const (
	StateError   = "error"
	StateFailure = "failure"
	StatePending = "pending"
	StateSuccess = "success"
)

// Status is a commit status.
type Status struct {
	State       string `json:"state"`
	TargetURL   string `json:"target_url,omitempty"`
	Description string `json:"description,omitempty"`
	Context     string `json:"context,omitempty"`
	Creator     User   `json:"creator,omitempty"`
}

// CreateStatusRequest is the payload for setting a commit status.
type CreateStatusRequest struct {
	State       string `json:"state"`
	TargetURL   string `json:"target_url,omitempty"`
	Description string `json:"description,omitempty"`
	Context     string `json:"context,omitempty"`
}

// CombinedStatus aggregates the statuses for a commit.
type CombinedStatus struct {
	State      string   `json:"state"`
	SHA        string   `json:"sha"`
	TotalCount int      `json:"total_count"`
	Statuses   []Status `json:"statuses"`
}

// GitObject is the object a git reference points at.
type GitObject struct {
	Type string `json:"type"`
	SHA  string `json:"sha"`
	URL  string `json:"url,omitempty"`
}

// Ref is a git reference resource.
type Ref struct {
	Ref    string    `json:"ref"`
	URL    string    `json:"url,omitempty"`
	Object GitObject `json:"object"`
}
