package github

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reposeed/pkg/config"
)

func TestResolveTarget_FlagsWinWithoutAnyLookup(t *testing.T) {
	client := &MockAPIClient{}
	prompter := &scriptedPrompter{}

	target, err := ResolveTarget(client, prompter, &config.Config{}, "acme", "widget")

	require.NoError(t, err)
	assert.Equal(t, Target{Owner: "acme", Name: "widget"}, target)
	assert.Equal(t, "acme/widget", target.String())
	assert.Empty(t, prompter.asked)
	client.AssertNotCalled(t, "AuthenticatedUser")
}

func TestResolveTarget_ConfiguredOrganizationBeatsLogin(t *testing.T) {
	client := &MockAPIClient{}
	cfg := &config.Config{}
	cfg.GitHub.Organization = "acme"

	target, err := ResolveTarget(client, &scriptedPrompter{}, cfg, "", "widget")

	require.NoError(t, err)
	assert.Equal(t, "acme", target.Owner)
	client.AssertNotCalled(t, "AuthenticatedUser")
}

func TestResolveTarget_FallsBackToAuthenticatedUser(t *testing.T) {
	client := &MockAPIClient{}
	client.On("AuthenticatedUser").Return("octocat", nil)

	target, err := ResolveTarget(client, &scriptedPrompter{}, &config.Config{}, "", "widget")

	require.NoError(t, err)
	assert.Equal(t, "octocat", target.Owner)
	client.AssertExpectations(t)
}

func TestResolveTarget_PromptsForNameWithWorkingDirDefault(t *testing.T) {
	client := &MockAPIClient{}
	prompter := &scriptedPrompter{}

	target, err := ResolveTarget(client, prompter, &config.Config{}, "acme", "")

	require.NoError(t, err)
	wd, werr := os.Getwd()
	require.NoError(t, werr)
	require.Len(t, prompter.asked, 1)
	assert.Equal(t, filepath.Base(wd), prompter.asked[0].Default)
	assert.Equal(t, filepath.Base(wd), target.Name)
}

func TestResolveTarget_PromptedNameOverridesDefault(t *testing.T) {
	client := &MockAPIClient{}
	prompter := &scriptedPrompter{answers: []string{"widget"}}

	target, err := ResolveTarget(client, prompter, &config.Config{}, "acme", "")

	require.NoError(t, err)
	assert.Equal(t, "widget", target.Name)
}
