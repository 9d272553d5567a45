package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestManifestCommand_ShowsRepositoryManifest(t *testing.T) {
	out := &bytes.Buffer{}
	local := &cobra.Command{RunE: manifestCmd.RunE, Args: manifestCmd.Args}
	local.Flags().String("path", ".", "Repository root to read the manifest from")
	local.SetOut(out)
	local.SetErr(out)

	// The cmd package sits one level below the repository root.
	if err := local.Flags().Set("path", ".."); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	if err := local.RunE(local, nil); err != nil {
		t.Fatalf("manifestCmd failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "sqliterc") {
		t.Fatalf("missing package name in output: %q", output)
	}
	if !strings.Contains(output, "data/known_databases.yaml") {
		t.Fatalf("missing packaged file listing in output: %q", output)
	}
}

func TestManifestCommand_MissingManifest(t *testing.T) {
	out := &bytes.Buffer{}
	local := &cobra.Command{RunE: manifestCmd.RunE, Args: manifestCmd.Args}
	local.Flags().String("path", ".", "Repository root to read the manifest from")
	local.SetOut(out)
	local.SetErr(out)

	if err := local.Flags().Set("path", t.TempDir()); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := local.RunE(local, nil); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
}
