package cmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqliterc/sqliterc/internal/config"
	"github.com/sqliterc/sqliterc/internal/manifest"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Show the packaging manifest and the resource files it declares",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		root, _ := cmd.Flags().GetString("path")

		m, err := manifest.Load(config.ManifestPath(root))
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendRows([]table.Row{
			{"Name", m.Name},
			{"Version", m.VersionString()},
			{"Arch", m.Arch},
			{"Maintainer", m.Maintainer},
			{"License", m.License},
			{"Homepage", m.Homepage},
			{"Depends", strings.Join(m.Depends, ", ")},
		})
		t.Render()

		files, err := m.ResolveContents(root)
		if err != nil {
			return err
		}
		t = table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Packaged file"})
		for _, file := range files {
			t.AppendRow(table.Row{file})
		}
		t.Render()
		return nil
	},
}

func init() {
	manifestCmd.Flags().String("path", ".", "Repository root to read the manifest from")
	rootCmd.AddCommand(manifestCmd)
}
