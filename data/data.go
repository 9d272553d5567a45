// Package data bundles the static YAML resource files shipped with the
// package. The schema definition files are opaque to this repository: they
// are listed and served as bytes, never decoded.
package data

import (
	"embed"
	"io/fs"
)

//go:embed *.yaml
var files embed.FS

// KnownDatabasesFile is the database definitions index used by the schema
// extractor.
const KnownDatabasesFile = "known_databases.yaml"

// FS returns the bundled resource files.
func FS() fs.FS {
	return files
}

// Names returns the file names of the bundled resources, sorted.
func Names() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Open opens a bundled resource file by name.
func Open(name string) (fs.File, error) {
	return files.Open(name)
}
