package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqliterc/sqliterc/internal/extractor"
)

var extractCmd = &cobra.Command{
	Use:   "extract <source>",
	Short: "Extract the schema of SQLite database files",
	Long: "Extracts table schemas from a SQLite database file, or from every " +
		"SQLite database found under a directory, and formats them as YAML or text.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]
		outputFormat, _ := cmd.Flags().GetString("format")
		outputDir, _ := cmd.Flags().GetString("output")
		definitionsPath, _ := cmd.Flags().GetString("definitions")

		info, err := os.Stat(source)
		if err != nil {
			return fmt.Errorf("stat source: %w", err)
		}

		ext, err := extractor.New(definitionsPath)
		if err != nil {
			return err
		}

		var results []*extractor.DatabaseSchema
		if info.IsDir() {
			results, err = ext.ExtractDirectory(source)
		} else {
			var result *extractor.DatabaseSchema
			result, err = ext.ExtractFile(source)
			if result != nil {
				results = append(results, result)
			}
		}
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no SQLite database files found in %s", source)
		}

		for _, result := range results {
			output, err := ext.FormatSchema(result.Schema, outputFormat)
			if err != nil {
				return err
			}
			if outputDir == "" {
				cmd.Println(output)
				continue
			}
			path, err := extractor.WriteSchemaFile(outputDir, result.Identifier, output)
			if errors.Is(err, os.ErrExist) {
				cmd.PrintErrf("warning: %s already exists, skipping %s\n", path, result.Path)
				continue
			}
			if err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or text")
	extractCmd.Flags().StringP("output", "o", "", "Directory to write one schema file per database to")
	extractCmd.Flags().String("definitions", "", "Path to a known database definitions YAML file (defaults to the bundled definitions)")
	rootCmd.AddCommand(extractCmd)
}
