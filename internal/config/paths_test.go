package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	root := filepath.Join("some", "root")

	if got := ModulePath(root); got != filepath.Join(root, "internal", "version", "version.go") {
		t.Fatalf("ModulePath: %s", got)
	}
	if got := ManifestPath(root); got != filepath.Join(root, "nfpm.yaml") {
		t.Fatalf("ManifestPath: %s", got)
	}
	if got := ChangelogPath(root); got != filepath.Join(root, "config", "dpkg", "changelog") {
		t.Fatalf("ChangelogPath: %s", got)
	}
	if got := DocsPath(root); got != filepath.Join(root, "docs") {
		t.Fatalf("DocsPath: %s", got)
	}
}

func TestPathsExistInRepository(t *testing.T) {
	// The config package sits two levels below the repository root.
	root := filepath.Join("..", "..")
	for _, path := range []string{ModulePath(root), ManifestPath(root), ChangelogPath(root), DocsPath(root)} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("release-managed path missing: %v", err)
		}
	}
}
