package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"reposeed/pkg/seed"
)

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
	ctx    context.Context
	login  string
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// NewBasicAuthClient creates a new GitHub API client from a username and
// password (or personal access token used as a password).
func NewBasicAuthClient(username, password string) *Client {
	tp := &github.BasicAuthTransport{
		Username: username,
		Password: password,
	}

	return &Client{
		client: github.NewClient(tp.Client()),
		ctx:    context.Background(),
	}
}

// AuthenticatedUser returns the login of the authenticated session. The value
// is cached for the lifetime of the client.
func (c *Client) AuthenticatedUser() (string, error) {
	if c.login != "" {
		return c.login, nil
	}

	user, _, err := c.client.Users.Get(c.ctx, "")
	if err != nil {
		return "", WrapAPIError(err, "authenticated user")
	}

	c.login = user.GetLogin()
	return c.login, nil
}

// GetRepository retrieves a repository by owner and name
func (c *Client) GetRepository(owner, name string) (*Repository, error) {
	repo, _, err := c.client.Repositories.Get(c.ctx, owner, name)
	if err != nil {
		return nil, WrapAPIError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return convertRepository(repo), nil
}

// CreateRepository creates a new repository under owner. When owner is the
// authenticated user the repository is created on the user account, otherwise
// it is created in the named organization.
func (c *Client) CreateRepository(owner, name string) (*Repository, error) {
	login, err := c.AuthenticatedUser()
	if err != nil {
		return nil, err
	}

	org := owner
	if login == owner {
		org = ""
	}

	repo := &github.Repository{
		Name:      github.String(name),
		HasIssues: github.Bool(true),
	}

	created, _, err := c.client.Repositories.Create(c.ctx, org, repo)
	if err != nil {
		return nil, WrapAPIError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return convertRepository(created), nil
}

// HasCommits lists the first page of commit history. The 409 "empty
// repository" answer is an expected condition and maps to (false, nil).
func (c *Client) HasCommits(owner, name string) (bool, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}

	commits, _, err := c.client.Repositories.ListCommits(c.ctx, owner, name, opts)
	if err != nil {
		wrapped := WrapAPIError(err, fmt.Sprintf("commits for %s/%s", owner, name))
		if IsEmptyRepository(wrapped) {
			return false, nil
		}
		return false, wrapped
	}

	return len(commits) > 0, nil
}

// ListLabels lists the names of all labels on a repository
func (c *Client) ListLabels(owner, name string) ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var all []string
	for {
		labels, resp, err := c.client.Issues.ListLabels(c.ctx, owner, name, opts)
		if err != nil {
			return nil, WrapAPIError(err, fmt.Sprintf("labels for %s/%s", owner, name))
		}

		for _, label := range labels {
			all = append(all, label.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// DeleteLabel deletes a label from a repository
func (c *Client) DeleteLabel(owner, name, label string) error {
	_, err := c.client.Issues.DeleteLabel(c.ctx, owner, name, label)
	if err != nil {
		return WrapAPIError(err, fmt.Sprintf("label %s on %s/%s", label, owner, name))
	}
	return nil
}

// CreateLabel creates a label on a repository
func (c *Client) CreateLabel(owner, name string, label seed.Label) error {
	_, _, err := c.client.Issues.CreateLabel(c.ctx, owner, name, &github.Label{
		Name:        github.String(label.Name),
		Color:       github.String(label.Color),
		Description: github.String(label.Description),
	})
	if err != nil {
		return WrapAPIError(err, fmt.Sprintf("label %s on %s/%s", label.Name, owner, name))
	}
	return nil
}

// ListMilestones lists all milestones on a repository, open and closed
func (c *Client) ListMilestones(owner, name string) ([]Milestone, error) {
	opts := &github.MilestoneListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []Milestone
	for {
		milestones, resp, err := c.client.Issues.ListMilestones(c.ctx, owner, name, opts)
		if err != nil {
			return nil, WrapAPIError(err, fmt.Sprintf("milestones for %s/%s", owner, name))
		}

		for _, ms := range milestones {
			all = append(all, Milestone{
				Number: ms.GetNumber(),
				Title:  ms.GetTitle(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// DeleteMilestone deletes a milestone from a repository
func (c *Client) DeleteMilestone(owner, name string, number int) error {
	_, err := c.client.Issues.DeleteMilestone(c.ctx, owner, name, number)
	if err != nil {
		return WrapAPIError(err, fmt.Sprintf("milestone %d on %s/%s", number, owner, name))
	}
	return nil
}

// CreateMilestone creates a milestone on a repository
func (c *Client) CreateMilestone(owner, name, title string) (*Milestone, error) {
	ms, _, err := c.client.Issues.CreateMilestone(c.ctx, owner, name, &github.Milestone{
		Title: github.String(title),
	})
	if err != nil {
		return nil, WrapAPIError(err, fmt.Sprintf("milestone %s on %s/%s", title, owner, name))
	}

	return &Milestone{Number: ms.GetNumber(), Title: ms.GetTitle()}, nil
}

// GetMilestone retrieves a milestone by its number
func (c *Client) GetMilestone(owner, name string, number int) (*Milestone, error) {
	ms, _, err := c.client.Issues.GetMilestone(c.ctx, owner, name, number)
	if err != nil {
		return nil, WrapAPIError(err, fmt.Sprintf("milestone %d on %s/%s", number, owner, name))
	}

	return &Milestone{Number: ms.GetNumber(), Title: ms.GetTitle()}, nil
}

// CreateIssue creates an issue attached to the given milestone number with
// the seed issue's literal label names.
func (c *Client) CreateIssue(owner, name string, issue seed.Issue, milestoneNumber int) error {
	req := &github.IssueRequest{
		Title: github.String(issue.Title),
		Body:  github.String(issue.Body),
	}
	if milestoneNumber > 0 {
		req.Milestone = github.Int(milestoneNumber)
	}
	if len(issue.Labels) > 0 {
		labels := append([]string(nil), issue.Labels...)
		req.Labels = &labels
	}

	_, _, err := c.client.Issues.Create(c.ctx, owner, name, req)
	if err != nil {
		return WrapAPIError(err, fmt.Sprintf("issue %q on %s/%s", issue.Title, owner, name))
	}
	return nil
}

// convertRepository converts a GitHub API repository to our internal type
func convertRepository(repo *github.Repository) *Repository {
	return &Repository{
		Owner:    repo.GetOwner().GetLogin(),
		Name:     repo.GetName(),
		FullName: repo.GetFullName(),
	}
}
