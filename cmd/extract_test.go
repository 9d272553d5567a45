package cmd

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

func newExtractTestCmd(out *bytes.Buffer) *cobra.Command {
	local := &cobra.Command{RunE: extractCmd.RunE, Args: extractCmd.Args}
	local.Flags().StringP("format", "f", "yaml", "Output format: yaml or text")
	local.Flags().StringP("output", "o", "", "Directory to write one schema file per database to")
	local.Flags().String("definitions", "", "Path to a known database definitions YAML file")
	local.SetOut(out)
	local.SetErr(out)
	return local
}

func createTestDatabase(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()
	if _, err := db.Exec("CREATE TABLE urls (id INTEGER, url LONGVARCHAR)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return path
}

func TestExtractCommand_PrintsYAML(t *testing.T) {
	path := createTestDatabase(t, t.TempDir(), "History")

	out := &bytes.Buffer{}
	local := newExtractTestCmd(out)

	if err := local.RunE(local, []string{path}); err != nil {
		t.Fatalf("extractCmd failed: %v", err)
	}
	if !strings.Contains(out.String(), "table: urls") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "- name: url") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestExtractCommand_TextFormat(t *testing.T) {
	path := createTestDatabase(t, t.TempDir(), "History")

	out := &bytes.Buffer{}
	local := newExtractTestCmd(out)
	if err := local.Flags().Set("format", "text"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	if err := local.RunE(local, []string{path}); err != nil {
		t.Fatalf("extractCmd failed: %v", err)
	}
	if !strings.Contains(out.String(), "'urls': (") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestExtractCommand_WritesOutputDir(t *testing.T) {
	dir := t.TempDir()
	createTestDatabase(t, dir, "History")
	outputDir := filepath.Join(dir, "out")

	out := &bytes.Buffer{}
	local := newExtractTestCmd(out)
	if err := local.Flags().Set("output", outputDir); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	if err := local.RunE(local, []string{dir}); err != nil {
		t.Fatalf("extractCmd failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outputDir, "History.yaml"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "table: urls") {
		t.Fatalf("unexpected output file: %q", content)
	}

	// A second run must not overwrite the existing output file.
	out.Reset()
	if err := local.RunE(local, []string{dir}); err != nil {
		t.Fatalf("extractCmd failed on rerun: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("expected skip warning, got: %q", out.String())
	}
}

func TestExtractCommand_MissingSource(t *testing.T) {
	out := &bytes.Buffer{}
	local := newExtractTestCmd(out)
	if err := local.RunE(local, []string{filepath.Join(t.TempDir(), "missing.db")}); err == nil {
		t.Fatalf("expected error for missing source")
	}
}

func TestExtractCommand_NoDatabasesInDirectory(t *testing.T) {
	out := &bytes.Buffer{}
	local := newExtractTestCmd(out)
	if err := local.RunE(local, []string{t.TempDir()}); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}
