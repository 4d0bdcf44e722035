package github

import (
	"fmt"

	"reposeed/internal/logging"
	"reposeed/pkg/prompt"
)

// Locator fetches or creates the target repository and guards the two gates
// in front of the reconciler: creating a missing repository (default accept)
// and proceeding against a repository that already has commits (default
// decline).
type Locator struct {
	client   APIClient
	prompter prompt.Prompter
	log      logging.Logger
}

// NewLocator creates a new Locator
func NewLocator(client APIClient, p prompt.Prompter, log logging.Logger) *Locator {
	return &Locator{client: client, prompter: p, log: log}
}

// Locate resolves the target to a repository handle. The bool result reports
// whether the flow should proceed; a declined gate yields (nil, false, nil)
// so the caller can stop cleanly with no changes made.
func (l *Locator) Locate(target Target) (*Repository, bool, error) {
	repo, err := l.client.GetRepository(target.Owner, target.Name)
	if err != nil {
		if !IsNotFound(err) {
			return nil, false, err
		}
		return l.offerCreate(target)
	}

	hasCommits, err := l.client.HasCommits(target.Owner, target.Name)
	if err != nil {
		l.log.Errorf("history check failed for %s: %v", target, err)
		return nil, false, err
	}
	if !hasCommits {
		l.log.Debugf("repository %s has no commit history", target)
		return repo, true, nil
	}

	proceed, err := prompt.Confirm(l.prompter,
		fmt.Sprintf("Repository %s already has commits. Rewrite its labels and milestones anyway?", target), "n")
	if err != nil {
		return nil, false, err
	}
	if !proceed {
		l.log.Infof("leaving %s untouched", target)
		return nil, false, nil
	}

	return repo, true, nil
}

func (l *Locator) offerCreate(target Target) (*Repository, bool, error) {
	create, err := prompt.Confirm(l.prompter,
		fmt.Sprintf("Repository %s does not exist. Create it?", target), "y")
	if err != nil {
		return nil, false, err
	}
	if !create {
		l.log.Infof("not creating %s", target)
		return nil, false, nil
	}

	repo, err := l.client.CreateRepository(target.Owner, target.Name)
	if err != nil {
		return nil, false, err
	}

	l.log.Infof("created repository %s", repo.FullName)
	return repo, true, nil
}
