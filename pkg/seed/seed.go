// Package seed defines the reference configuration applied by the bootstrap:
// the label table, milestone list, and seed issues. The tables are plain data
// loaded from YAML so the reconciliation logic stays decoupled from any
// specific content set. A default manifest is embedded in the binary and can
// be overridden with the --manifest flag.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultManifest []byte

// Label describes one repository label. Name is the unique key.
type Label struct {
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	Description string `yaml:"description,omitempty"`
}

// Issue describes one seed issue. Milestone is a 1-based ordinal into the
// manifest's milestone list. Reordering the milestone list silently changes
// which milestone each issue lands on; the ordinal is passed through without
// any range check. Label names are likewise forwarded verbatim - a typo is
// only caught by the remote service.
type Issue struct {
	Title     string   `yaml:"title"`
	Body      string   `yaml:"body,omitempty"`
	Milestone int      `yaml:"milestone"`
	Labels    []string `yaml:"labels,omitempty"`
}

// Manifest is the full reference set consumed by the reconciler. Slice order
// is the creation order.
type Manifest struct {
	Labels     []Label  `yaml:"labels"`
	Milestones []string `yaml:"milestones"`
	Issues     []Issue  `yaml:"issues"`
}

// Default returns the manifest embedded in the binary.
func Default() (*Manifest, error) {
	return Load(defaultManifest)
}

// Load parses and structurally validates a manifest.
func Load(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse seed manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadFromFile loads a manifest from a YAML file.
func LoadFromFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed manifest: %w", err)
	}

	return Load(data)
}

var validColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Validate checks the manifest's structure: label names and colors, milestone
// titles, and issue titles. It deliberately does not verify that issue label
// names exist in the label table or that milestone ordinals are in range;
// those contracts are left to the remote service.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Labels))
	for i, label := range m.Labels {
		if label.Name == "" {
			return fmt.Errorf("label %d: name is required", i+1)
		}
		if seen[label.Name] {
			return fmt.Errorf("label %d: duplicate name %q", i+1, label.Name)
		}
		seen[label.Name] = true
		if !validColor.MatchString(label.Color) {
			return fmt.Errorf("label %q: color must be 6 hex digits, got %q", label.Name, label.Color)
		}
	}

	for i, title := range m.Milestones {
		if title == "" {
			return fmt.Errorf("milestone %d: title is required", i+1)
		}
	}

	for i, issue := range m.Issues {
		if issue.Title == "" {
			return fmt.Errorf("issue %d: title is required", i+1)
		}
	}

	return nil
}
