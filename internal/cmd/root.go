package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	flagToken          string
	flagOrg            string
	flagRepo           string
	flagManifest       string
	flagDefaults       bool
	flagSkipLabels     bool
	flagSkipMilestones bool
	flagSkipIssues     bool
	flagVerbose        int
)

var rootCmd = &cobra.Command{
	Use:   "reposeed",
	Short: "Bootstrap a GitHub repository's labels, milestones, and seed issues",
	Long: `Reposeed configures a GitHub repository's metadata from a reference manifest.

It authenticates, locates (or creates) the target repository, then for each of
labels, milestones, and issues asks whether to apply the reference set. Labels
and milestones are replaced wholesale: everything on the repository is deleted
and the reference set is recreated. Seed issues are created on top, each
attached to its reference milestone.

Every destructive step is gated behind a confirmation prompt; pass --defaults
to accept them all. Declining any gate exits cleanly with no changes made.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runBootstrap,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagToken, "token", "t", "", "GitHub access token (falls back to GITHUB_TOKEN, then the config file)")
	rootCmd.Flags().StringVarP(&flagOrg, "org", "o", "", "Organization owning the repository (defaults to the authenticated user)")
	rootCmd.Flags().StringVarP(&flagRepo, "repo", "r", "", "Repository name (prompted when omitted, defaulting to the working directory)")
	rootCmd.Flags().StringVarP(&flagManifest, "manifest", "m", "", "Seed manifest YAML file (embedded defaults when omitted)")
	rootCmd.Flags().BoolVarP(&flagDefaults, "defaults", "d", false, "Accept every confirmation prompt")
	rootCmd.Flags().BoolVar(&flagSkipLabels, "skip-labels", false, "Leave repository labels untouched")
	rootCmd.Flags().BoolVar(&flagSkipMilestones, "skip-milestones", false, "Leave repository milestones untouched")
	rootCmd.Flags().BoolVar(&flagSkipIssues, "skip-issues", false, "Do not create seed issues")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "Increase log verbosity (repeat up to -vvvv)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
}
