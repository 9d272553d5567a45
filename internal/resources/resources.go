// Package resources provides SQLite database resource definitions.
package resources

// ColumnDefinition describes a single column of a table.
type ColumnDefinition struct {
	Name      string `yaml:"name"`
	ValueType string `yaml:"value_type,omitempty"`
}

// TableDefinition describes the schema of a single table.
type TableDefinition struct {
	Name    string             `yaml:"table"`
	Columns []ColumnDefinition `yaml:"columns"`
}

// DatabaseDefinition ties a known database file to the Digital Forensics
// Artifact definition that describes where it lives.
type DatabaseDefinition struct {
	ArtifactDefinition string `yaml:"artifact_definition"`
	DatabaseIdentifier string `yaml:"database_identifier"`
}
