package github

import "reposeed/pkg/seed"

// APIClient defines the remote repository-service operations the bootstrap
// depends on. Implementations return *APIError for remote failures so callers
// can detect the recoverable kinds (not found, empty repository).
type APIClient interface {
	// AuthenticatedUser returns the login of the session's identity.
	AuthenticatedUser() (string, error)

	// Repository operations
	GetRepository(owner, name string) (*Repository, error)
	CreateRepository(owner, name string) (*Repository, error)

	// HasCommits reports whether the repository has any commit history.
	// The remote "empty repository" signal is an expected condition and maps
	// to (false, nil) rather than an error.
	HasCommits(owner, name string) (bool, error)

	// Label operations
	ListLabels(owner, name string) ([]string, error)
	DeleteLabel(owner, name, label string) error
	CreateLabel(owner, name string, label seed.Label) error

	// Milestone operations
	ListMilestones(owner, name string) ([]Milestone, error)
	DeleteMilestone(owner, name string, number int) error
	CreateMilestone(owner, name, title string) (*Milestone, error)
	GetMilestone(owner, name string, number int) (*Milestone, error)

	// Issue operations
	CreateIssue(owner, name string, issue seed.Issue, milestoneNumber int) error
}
