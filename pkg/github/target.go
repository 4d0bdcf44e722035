package github

import (
	"os"
	"path/filepath"

	"reposeed/pkg/config"
	"reposeed/pkg/prompt"
)

// ResolveTarget determines the fully-qualified repository identifier. The
// owner comes from the --org flag, then the configured organization, then the
// authenticated session's own identity. The name comes from the --repo flag
// or a prompt defaulting to the current directory's base name. No character
// or length validation happens here; malformed identifiers are rejected by
// the remote service.
func ResolveTarget(client APIClient, prompter prompt.Prompter, cfg *config.Config, orgFlag, repoFlag string) (Target, error) {
	owner := orgFlag
	if owner == "" && cfg != nil {
		owner = cfg.GitHub.Organization
	}
	if owner == "" {
		login, err := client.AuthenticatedUser()
		if err != nil {
			return Target{}, err
		}
		owner = login
	}

	name := repoFlag
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Target{}, err
		}

		name, err = prompter.Ask(prompt.Question{
			Message: "Repository name",
			Default: filepath.Base(wd),
		})
		if err != nil {
			return Target{}, err
		}
	}

	return Target{Owner: owner, Name: name}, nil
}
