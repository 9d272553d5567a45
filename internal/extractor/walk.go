package extractor

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DatabaseSchema is the extracted schema of a single database file.
type DatabaseSchema struct {
	// Identifier is the known database identifier, or the file name when the
	// database is not a known one.
	Identifier string

	// Path is the location of the database file.
	Path string

	// Schema is the CREATE query per table name.
	Schema map[string]string
}

// ExtractFile extracts the schema of the SQLite database file at path.
func (e *Extractor) ExtractFile(path string) (*DatabaseSchema, error) {
	schema, err := e.DatabaseSchema(path)
	if err != nil {
		return nil, err
	}
	return &DatabaseSchema{
		Identifier: e.Identify(filepath.Base(path)),
		Path:       path,
		Schema:     schema,
	}, nil
}

// ExtractDirectory walks root and extracts the schema of every SQLite
// database file found. Files that are too small, carry no SQLite signature or
// cannot be read as a database are skipped.
func (e *Extractor) ExtractDirectory(root string) ([]*DatabaseSchema, error) {
	var results []*DatabaseSchema
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if info.Size() < int64(len(Signature)) || !CheckFileSignature(path) {
			return nil
		}

		result, err := e.ExtractFile(path)
		if err != nil {
			slog.Warn("unable to determine schema from database file", "path", path, "error", err)
			return nil
		}
		results = append(results, result)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return results, nil
}

// WriteSchemaFile writes formatted schema output to <outputDir>/<name>.yaml.
// An existing file is never overwritten.
func WriteSchemaFile(outputDir, name, output string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outputDir, name+".yaml")
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("output file %s already exists: %w", path, os.ErrExist)
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return path, nil
}
