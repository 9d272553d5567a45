package config

import "path/filepath"

// Paths of the release-managed files, relative to the repository root.
const (
	// ModuleFile carries the module version marker rewritten on release.
	ModuleFile = "internal/version/version.go"

	// ManifestFile is the packaging manifest consumed by nfpm.
	ManifestFile = "nfpm.yaml"

	// ChangelogFile is the dpkg changelog regenerated on release.
	ChangelogFile = "config/dpkg/changelog"

	// DocsDir is where the documentation toolchain runs.
	DocsDir = "docs"

	// DataDir holds the bundled YAML resource files.
	DataDir = "data"
)

// ModulePath returns the path to the module version file under root.
func ModulePath(root string) string {
	return filepath.Join(root, filepath.FromSlash(ModuleFile))
}

// ManifestPath returns the path to the packaging manifest under root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestFile)
}

// ChangelogPath returns the path to the dpkg changelog under root.
func ChangelogPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(ChangelogFile))
}

// DocsPath returns the path to the documentation directory under root.
func DocsPath(root string) string {
	return filepath.Join(root, DocsDir)
}
