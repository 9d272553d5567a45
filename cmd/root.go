package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sqliterc",
	Short: "sqliterc bundles SQLite database metadata definitions",
	Long:  "sqliterc packages YAML schema definitions of known SQLite database files and provides the tooling used to produce and release them",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sqliterc: run 'sqliterc --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
