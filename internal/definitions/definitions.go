// Package definitions reads the known database definitions file.
package definitions

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sqliterc/sqliterc/internal/resources"
)

// Read reads database definitions from a multi-document YAML stream. Every
// document must carry both artifact_definition and database_identifier;
// unknown keys are rejected.
func Read(r io.Reader) ([]resources.DatabaseDefinition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var defs []resources.DatabaseDefinition
	for {
		var def resources.DatabaseDefinition
		err := dec.Decode(&def)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode database definition: %w", err)
		}
		if def.ArtifactDefinition == "" {
			return nil, fmt.Errorf("database definition %d: missing artifact_definition", len(defs)+1)
		}
		if def.DatabaseIdentifier == "" {
			return nil, fmt.Errorf("database definition %d: missing database_identifier", len(defs)+1)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ReadFile reads database definitions from the YAML file at path.
func ReadFile(path string) ([]resources.DatabaseDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definitions file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}
