package github

import (
	"fmt"

	"reposeed/internal/logging"
	"reposeed/pkg/prompt"
	"reposeed/pkg/seed"
)

// Choice determines how a configuration domain is handled. It is derived once
// per domain from the flags and not re-evaluated within a run.
type Choice int

const (
	// Skip bypasses the domain entirely, without prompting.
	Skip Choice = iota
	// ApplyDefaults applies the reference set without prompting.
	ApplyDefaults
	// ApplyWithConfirmation asks before applying.
	ApplyWithConfirmation
)

func choiceFor(skip, defaults bool) Choice {
	switch {
	case skip:
		return Skip
	case defaults:
		return ApplyDefaults
	default:
		return ApplyWithConfirmation
	}
}

// Options captures the per-domain flags controlling the reconciliation.
type Options struct {
	SkipLabels     bool
	SkipMilestones bool
	SkipIssues     bool
	AssumeDefaults bool
}

// Reconciler brings the remote label, milestone, and issue state of one
// repository into alignment with a reference manifest. Labels and milestones
// are replaced wholesale: every existing remote entry is deleted, then the
// full reference set is created in manifest order. Issues are only ever
// created. The delete-then-create sequences are not atomic with respect to
// the remote service; a failure mid-domain aborts the remaining items and all
// subsequent domains with no rollback.
type Reconciler struct {
	client   APIClient
	prompter prompt.Prompter
	log      logging.Logger
	manifest *seed.Manifest
	opts     Options
}

// NewReconciler creates a reconciler for the given reference manifest.
func NewReconciler(client APIClient, p prompt.Prompter, log logging.Logger, manifest *seed.Manifest, opts Options) *Reconciler {
	return &Reconciler{
		client:   client,
		prompter: p,
		log:      log,
		manifest: manifest,
		opts:     opts,
	}
}

// Reconcile runs the three domains in their fixed order: labels, then
// milestones, then issues. Milestones must precede issues because seed issues
// reference milestones by ordinal.
func (r *Reconciler) Reconcile(target Target) error {
	if err := r.reconcileLabels(target); err != nil {
		return err
	}

	milestones, err := r.reconcileMilestones(target)
	if err != nil {
		return err
	}

	return r.reconcileIssues(target, milestones)
}

// confirmed resolves a Choice into a go/no-go decision, prompting only when
// neither skip nor defaults applies.
func (r *Reconciler) confirmed(choice Choice, question, def string) (bool, error) {
	switch choice {
	case Skip:
		return false, nil
	case ApplyDefaults:
		return true, nil
	default:
		return prompt.Confirm(r.prompter, question, def)
	}
}

func (r *Reconciler) reconcileLabels(target Target) error {
	choice := choiceFor(r.opts.SkipLabels, r.opts.AssumeDefaults)
	apply, err := r.confirmed(choice,
		fmt.Sprintf("Replace all labels on %s with the %d reference labels?", target, len(r.manifest.Labels)), "y")
	if err != nil {
		return err
	}
	if !apply {
		r.log.Infof("skipping labels")
		return nil
	}

	existing, err := r.client.ListLabels(target.Owner, target.Name)
	if err != nil {
		return err
	}
	for _, name := range existing {
		r.log.Debugf("deleting label %q", name)
		if err := r.client.DeleteLabel(target.Owner, target.Name, name); err != nil {
			return err
		}
	}

	for _, label := range r.manifest.Labels {
		r.log.Debugf("creating label %q (#%s)", label.Name, label.Color)
		if err := r.client.CreateLabel(target.Owner, target.Name, label); err != nil {
			return err
		}
	}

	r.log.Infof("labels: deleted %d, created %d", len(existing), len(r.manifest.Labels))
	return nil
}

// reconcileMilestones replaces the remote milestones and returns the mapping
// from 1-based manifest ordinal to the remote milestone number, for issue
// creation. The map is nil when the domain was skipped or declined.
func (r *Reconciler) reconcileMilestones(target Target) (map[int]int, error) {
	choice := choiceFor(r.opts.SkipMilestones, r.opts.AssumeDefaults)
	apply, err := r.confirmed(choice,
		fmt.Sprintf("Replace all milestones on %s with the %d reference milestones?", target, len(r.manifest.Milestones)), "y")
	if err != nil {
		return nil, err
	}
	if !apply {
		r.log.Infof("skipping milestones")
		return nil, nil
	}

	existing, err := r.client.ListMilestones(target.Owner, target.Name)
	if err != nil {
		return nil, err
	}
	for _, ms := range existing {
		r.log.Debugf("deleting milestone %d %q", ms.Number, ms.Title)
		if err := r.client.DeleteMilestone(target.Owner, target.Name, ms.Number); err != nil {
			return nil, err
		}
	}

	created := make(map[int]int, len(r.manifest.Milestones))
	for i, title := range r.manifest.Milestones {
		r.log.Debugf("creating milestone %q", title)
		ms, err := r.client.CreateMilestone(target.Owner, target.Name, title)
		if err != nil {
			return nil, err
		}
		created[i+1] = ms.Number
	}

	r.log.Infof("milestones: deleted %d, created %d", len(existing), len(created))
	return created, nil
}

// reconcileIssues creates the seed issues in manifest order. Each issue's
// milestone ordinal resolves through the numbers recorded when the milestones
// were created; when that mapping is unavailable (milestone domain skipped)
// the ordinal is looked up directly as a remote milestone number. Reordering
// the reference milestone list therefore silently changes issue assignment -
// the ordinal contract is preserved as-is.
func (r *Reconciler) reconcileIssues(target Target, milestones map[int]int) error {
	choice := choiceFor(r.opts.SkipIssues, r.opts.AssumeDefaults)
	apply, err := r.confirmed(choice,
		fmt.Sprintf("Create %d seed issues on %s?", len(r.manifest.Issues), target), "y")
	if err != nil {
		return err
	}
	if !apply {
		r.log.Infof("skipping issues")
		return nil
	}

	for _, issue := range r.manifest.Issues {
		number, err := r.resolveMilestone(target, milestones, issue.Milestone)
		if err != nil {
			return err
		}

		r.log.Debugf("creating issue %q (milestone %d)", issue.Title, number)
		if err := r.client.CreateIssue(target.Owner, target.Name, issue, number); err != nil {
			return err
		}
	}

	r.log.Infof("issues: created %d", len(r.manifest.Issues))
	return nil
}

func (r *Reconciler) resolveMilestone(target Target, milestones map[int]int, ordinal int) (int, error) {
	if ordinal <= 0 {
		return 0, nil
	}
	if number, ok := milestones[ordinal]; ok {
		return number, nil
	}

	ms, err := r.client.GetMilestone(target.Owner, target.Name, ordinal)
	if err != nil {
		return 0, err
	}
	return ms.Number, nil
}
