package github

import (
	"os"
	"strings"

	"reposeed/internal/logging"
	"reposeed/pkg/config"
	"reposeed/pkg/prompt"
)

// defaultUsername is the fallback identity offered when neither the config
// file nor a flag supplies one.
const defaultUsername = "git"

// Authenticator resolves credentials into an authenticated session.
type Authenticator struct {
	prompter prompt.Prompter
	log      logging.Logger
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(p prompt.Prompter, log logging.Logger) *Authenticator {
	return &Authenticator{prompter: p, log: log}
}

// Resolve builds an authenticated client. A token supplied via flag,
// environment, or config file wins and skips all prompting; otherwise the
// user is asked for a username and a masked secret. Credential validity is
// not checked here - a bad secret surfaces on the first API call.
func (a *Authenticator) Resolve(tokenFlag string, cfg *config.Config) (*Client, error) {
	if token := resolveToken(tokenFlag, cfg); token != "" {
		a.log.Debugf("authenticating with access token")
		return NewClient(token), nil
	}

	fallback := defaultUsername
	if cfg != nil && cfg.GitHub.Username != "" {
		fallback = cfg.GitHub.Username
	}

	username, err := a.prompter.Ask(prompt.Question{
		Message: "GitHub username",
		Default: fallback,
	})
	if err != nil {
		return nil, err
	}

	password, err := a.prompter.Ask(prompt.Question{
		Message: "GitHub password or token",
		Secure:  true,
	})
	if err != nil {
		return nil, err
	}

	a.log.Debugf("authenticating as %s with basic credentials", username)
	return NewBasicAuthClient(username, password), nil
}

// resolveToken returns the first configured token: flag, then GITHUB_TOKEN,
// then the config file.
func resolveToken(tokenFlag string, cfg *config.Config) string {
	if tokenFlag != "" {
		return strings.TrimSpace(tokenFlag)
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return strings.TrimSpace(token)
	}
	if cfg != nil && cfg.GitHub.Token != "" {
		return strings.TrimSpace(cfg.GitHub.Token)
	}
	return ""
}
