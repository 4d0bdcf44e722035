// Package github contains the remote-service collaborator and the decision
// core of the bootstrap. It provides:
// - APIClient interface over the GitHub REST API
// - credential resolution into an authenticated client
// - target resolution (owner/name) from flags, config, and prompts
// - the repository locator with its create/continue gates
// - the reconciler that replaces labels and milestones and creates seed issues
package github
