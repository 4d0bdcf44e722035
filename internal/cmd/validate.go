package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reposeed/pkg/seed"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest.yaml>",
	Short: "Validate a seed manifest file",
	Long: `Validate the structure of a seed manifest: label names and colors,
milestone titles, and issue titles.

Milestone ordinals and issue label names are passed to GitHub verbatim and are
not checked here; an out-of-range ordinal or a misspelled label name only
surfaces when the issues are created.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	manifest, err := seed.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("✅ Manifest is valid: %d labels, %d milestones, %d issues\n",
		len(manifest.Labels), len(manifest.Milestones), len(manifest.Issues))
	return nil
}
