package cmd

import (
	"fmt"
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reposeed/internal/logging"
	"reposeed/pkg/config"
	"reposeed/pkg/github"
	"reposeed/pkg/prompt"
	"reposeed/pkg/seed"
)

// fakeClient is an in-memory GitHub double that tracks state across calls, so
// full bootstrap runs can be asserted end to end.
type fakeClient struct {
	repos       map[string]*github.Repository
	hasCommits  bool
	labels      map[string]seed.Label
	milestones  map[int]string
	nextNumber  int
	issues      []fakeIssue
	deleteCalls int
}

type fakeIssue struct {
	issue     seed.Issue
	milestone int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		repos:      map[string]*github.Repository{},
		labels:     map[string]seed.Label{},
		milestones: map[int]string{},
		nextNumber: 1,
	}
}

func (f *fakeClient) AuthenticatedUser() (string, error) { return "octocat", nil }

func (f *fakeClient) GetRepository(owner, name string) (*github.Repository, error) {
	repo, ok := f.repos[owner+"/"+name]
	if !ok {
		return nil, &github.APIError{Type: github.ErrorTypeNotFound, Message: "resource not found"}
	}
	return repo, nil
}

func (f *fakeClient) CreateRepository(owner, name string) (*github.Repository, error) {
	repo := &github.Repository{Owner: owner, Name: name, FullName: owner + "/" + name}
	f.repos[repo.FullName] = repo
	return repo, nil
}

func (f *fakeClient) HasCommits(owner, name string) (bool, error) {
	return f.hasCommits, nil
}

func (f *fakeClient) ListLabels(owner, name string) ([]string, error) {
	names := make([]string, 0, len(f.labels))
	for n := range f.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeClient) DeleteLabel(owner, name, label string) error {
	delete(f.labels, label)
	f.deleteCalls++
	return nil
}

func (f *fakeClient) CreateLabel(owner, name string, label seed.Label) error {
	f.labels[label.Name] = label
	return nil
}

func (f *fakeClient) ListMilestones(owner, name string) ([]github.Milestone, error) {
	numbers := make([]int, 0, len(f.milestones))
	for n := range f.milestones {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var out []github.Milestone
	for _, n := range numbers {
		out = append(out, github.Milestone{Number: n, Title: f.milestones[n]})
	}
	return out, nil
}

func (f *fakeClient) DeleteMilestone(owner, name string, number int) error {
	delete(f.milestones, number)
	f.deleteCalls++
	return nil
}

func (f *fakeClient) CreateMilestone(owner, name, title string) (*github.Milestone, error) {
	ms := &github.Milestone{Number: f.nextNumber, Title: title}
	f.milestones[ms.Number] = title
	f.nextNumber++
	return ms, nil
}

func (f *fakeClient) GetMilestone(owner, name string, number int) (*github.Milestone, error) {
	title, ok := f.milestones[number]
	if !ok {
		return nil, &github.APIError{Type: github.ErrorTypeNotFound, Message: "resource not found"}
	}
	return &github.Milestone{Number: number, Title: title}, nil
}

func (f *fakeClient) CreateIssue(owner, name string, issue seed.Issue, milestoneNumber int) error {
	if milestoneNumber > 0 {
		if _, ok := f.milestones[milestoneNumber]; !ok {
			return &github.APIError{
				Type:    github.ErrorTypeValidation,
				Message: fmt.Sprintf("validation failed: milestone %d does not exist", milestoneNumber),
			}
		}
	}
	f.issues = append(f.issues, fakeIssue{issue: issue, milestone: milestoneNumber})
	return nil
}

// scriptedPrompter answers with the script, then with each question's default.
type scriptedPrompter struct {
	answers []string
	asked   []prompt.Question
}

func (p *scriptedPrompter) Ask(q prompt.Question) (string, error) {
	p.asked = append(p.asked, q)
	if len(p.answers) == 0 {
		return q.Default, nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func quietLogger() logging.Logger {
	return logging.New(io.Discard, 0)
}

func defaultFlags() bootstrapFlags {
	return bootstrapFlags{
		org:  "acme",
		repo: "widget",
		opts: github.Options{AssumeDefaults: true},
	}
}

func TestBootstrap_FreshRepositoryEndToEnd(t *testing.T) {
	client := newFakeClient()
	prompter := &scriptedPrompter{} // create gate accepts via its default
	manifest, err := seed.Default()
	require.NoError(t, err)

	err = bootstrap(client, prompter, quietLogger(), &config.Config{}, manifest, defaultFlags())

	require.NoError(t, err)
	assert.Contains(t, client.repos, "acme/widget")
	assert.Zero(t, client.deleteCalls, "a fresh repository has nothing to delete")
	assert.Len(t, client.labels, len(manifest.Labels))
	assert.Len(t, client.milestones, len(manifest.Milestones))
	require.Len(t, client.issues, len(manifest.Issues))

	// Every created issue landed on a milestone that exists.
	for _, created := range client.issues {
		if created.issue.Milestone > 0 {
			assert.Contains(t, client.milestones, created.milestone)
		}
	}
}

func TestBootstrap_DeclinedCreateGateIsACleanStop(t *testing.T) {
	client := newFakeClient()
	prompter := &scriptedPrompter{answers: []string{"n"}}
	manifest, err := seed.Default()
	require.NoError(t, err)

	err = bootstrap(client, prompter, quietLogger(), &config.Config{}, manifest, defaultFlags())

	require.NoError(t, err)
	assert.Empty(t, client.repos)
	assert.Empty(t, client.labels)
	assert.Empty(t, client.issues)
}

func TestBootstrap_DeclinedHistoryGateIsACleanStop(t *testing.T) {
	client := newFakeClient()
	client.repos["acme/widget"] = &github.Repository{Owner: "acme", Name: "widget", FullName: "acme/widget"}
	client.hasCommits = true
	// The history gate defaults to decline; an empty answer stops the run.
	prompter := &scriptedPrompter{}
	manifest, err := seed.Default()
	require.NoError(t, err)

	err = bootstrap(client, prompter, quietLogger(), &config.Config{}, manifest, defaultFlags())

	require.NoError(t, err)
	assert.Empty(t, client.labels)
	assert.Empty(t, client.milestones)
	assert.Empty(t, client.issues)
}

func TestBootstrap_RerunConvergesToSameState(t *testing.T) {
	client := newFakeClient()
	prompter := &scriptedPrompter{}
	manifest, err := seed.Default()
	require.NoError(t, err)

	fl := defaultFlags()
	fl.opts.SkipIssues = true // issues are create-only, so rerun idempotence holds for labels and milestones

	require.NoError(t, bootstrap(client, prompter, quietLogger(), &config.Config{}, manifest, fl))
	firstLabels, _ := client.ListLabels("acme", "widget")
	firstMilestones, _ := client.ListMilestones("acme", "widget")

	require.NoError(t, bootstrap(client, prompter, quietLogger(), &config.Config{}, manifest, fl))
	secondLabels, _ := client.ListLabels("acme", "widget")
	secondMilestones, _ := client.ListMilestones("acme", "widget")

	assert.Equal(t, firstLabels, secondLabels)
	require.Len(t, secondMilestones, len(firstMilestones))
	for i := range firstMilestones {
		// Remote numbers advance on recreation; the titles and order converge.
		assert.Equal(t, firstMilestones[i].Title, secondMilestones[i].Title)
	}
	assert.Empty(t, client.issues)
}

func TestBootstrap_SkipEverythingTouchesNothing(t *testing.T) {
	client := newFakeClient()
	client.repos["acme/widget"] = &github.Repository{Owner: "acme", Name: "widget", FullName: "acme/widget"}
	manifest, err := seed.Default()
	require.NoError(t, err)

	fl := defaultFlags()
	fl.opts = github.Options{SkipLabels: true, SkipMilestones: true, SkipIssues: true}

	err = bootstrap(client, &scriptedPrompter{}, quietLogger(), &config.Config{}, manifest, fl)

	require.NoError(t, err)
	assert.Empty(t, client.labels)
	assert.Empty(t, client.milestones)
	assert.Empty(t, client.issues)
	assert.Zero(t, client.deleteCalls)
}
