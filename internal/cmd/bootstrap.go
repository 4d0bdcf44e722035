package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reposeed/internal/logging"
	"reposeed/pkg/config"
	"reposeed/pkg/github"
	"reposeed/pkg/prompt"
	"reposeed/pkg/seed"
)

func runBootstrap(_ *cobra.Command, _ []string) error {
	log := logging.New(os.Stderr, flagVerbose)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load reposeed config: %w", err)
	}

	manifest, err := loadManifest()
	if err != nil {
		return err
	}

	prompter := prompt.New()
	client, err := github.NewAuthenticator(prompter, log).Resolve(flagToken, cfg)
	if err != nil {
		return err
	}

	return bootstrap(client, prompter, log, cfg, manifest, bootstrapFlags{
		org:  flagOrg,
		repo: flagRepo,
		opts: github.Options{
			SkipLabels:     flagSkipLabels,
			SkipMilestones: flagSkipMilestones,
			SkipIssues:     flagSkipIssues,
			AssumeDefaults: flagDefaults,
		},
	})
}

type bootstrapFlags struct {
	org  string
	repo string
	opts github.Options
}

// bootstrap runs the flow against an already-authenticated session: resolve
// the target, locate or create the repository, then reconcile the three
// domains. A declined gate is a clean stop, not an error.
func bootstrap(client github.APIClient, prompter prompt.Prompter, log logging.Logger, cfg *config.Config, manifest *seed.Manifest, fl bootstrapFlags) error {
	target, err := github.ResolveTarget(client, prompter, cfg, fl.org, fl.repo)
	if err != nil {
		return err
	}
	log.Debugf("target resolved to %s", target)

	repo, proceed, err := github.NewLocator(client, prompter, log).Locate(target)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Println("Nothing to do.")
		return nil
	}

	reconciler := github.NewReconciler(client, prompter, log, manifest, fl.opts)
	if err := reconciler.Reconcile(target); err != nil {
		return err
	}

	fmt.Printf("✅ Bootstrapped %s\n", repo.FullName)
	return nil
}

func loadManifest() (*seed.Manifest, error) {
	if flagManifest != "" {
		return seed.LoadFromFile(flagManifest)
	}
	return seed.Default()
}
