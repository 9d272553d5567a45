package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqliterc/sqliterc/internal/release"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Prepare the repository for a new release",
	Long: "Bumps the module and packaging version markers to today's date, " +
		"regenerates the dpkg changelog and rebuilds the documentation. " +
		"Steps are best-effort: failures are reported and the command still succeeds.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		root, _ := cmd.Flags().GetString("path")
		res := release.Prepare(release.Options{Root: root})
		cmd.Printf("prepared release %s\n", res.Version)
		for _, warning := range res.Warnings {
			cmd.PrintErrf("warning: %s\n", warning)
		}
		return nil
	},
}

func init() {
	releaseCmd.Flags().String("path", ".", "Repository root to prepare")
	rootCmd.AddCommand(releaseCmd)
}
