// Package extractor extracts table schemas from SQLite database files.
package extractor

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	"github.com/sqliterc/sqliterc/data"
	"github.com/sqliterc/sqliterc/internal/definitions"
	"github.com/sqliterc/sqliterc/internal/resources"
)

// Signature is the first 16 bytes of every SQLite 3 database file.
var Signature = []byte("SQLite format 3\x00")

const schemaQuery = `SELECT tbl_name, sql FROM sqlite_master ` +
	`WHERE type = 'table' AND tbl_name != 'xp_proc' ` +
	`AND tbl_name != 'sqlite_sequence'`

// Extractor extracts schemas from SQLite database files and resolves known
// database identifiers.
type Extractor struct {
	known map[string]resources.DatabaseDefinition
}

// New creates an extractor. definitionsPath optionally points at a known
// database definitions YAML file; when empty the bundled definitions are used.
func New(definitionsPath string) (*Extractor, error) {
	var defs []resources.DatabaseDefinition
	var err error
	if definitionsPath == "" {
		defs, err = bundledDefinitions()
	} else {
		defs, err = definitions.ReadFile(definitionsPath)
	}
	if err != nil {
		return nil, err
	}

	e := &Extractor{known: map[string]resources.DatabaseDefinition{}}
	for _, def := range defs {
		e.known[strings.ToLower(def.DatabaseIdentifier)] = def
	}
	return e, nil
}

func bundledDefinitions() ([]resources.DatabaseDefinition, error) {
	f, err := data.Open(data.KnownDatabasesFile)
	if err != nil {
		return nil, fmt.Errorf("open bundled definitions: %w", err)
	}
	defer func() { _ = f.Close() }()
	return definitions.Read(f)
}

// CheckSignature reports whether r starts with the SQLite 3 file signature.
func CheckSignature(r io.Reader) bool {
	header := make([]byte, len(Signature))
	if _, err := io.ReadFull(r, header); err != nil {
		return false
	}
	return bytes.Equal(header, Signature)
}

// CheckFileSignature reports whether the file at path starts with the SQLite 3
// file signature.
func CheckFileSignature(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()
	return CheckSignature(f)
}

// DatabaseSchema retrieves the schema of the database at path as the CREATE
// query per table name.
func (e *Extractor) DatabaseSchema(path string) (map[string]string, error) {
	// Open read-only so extraction never touches the source database.
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(schemaQuery)
	if err != nil {
		return nil, fmt.Errorf("query schema: %w", err)
	}
	defer func() { _ = rows.Close() }()

	schema := map[string]string{}
	for rows.Next() {
		var tableName string
		var query sql.NullString
		if err := rows.Scan(&tableName, &query); err != nil {
			return nil, fmt.Errorf("scan schema row: %w", err)
		}
		// Internal shadow tables carry no CREATE query.
		if query.Valid {
			schema[tableName] = query.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read schema rows: %w", err)
	}
	return schema, nil
}

// Identify determines the known database identifier for name, typically the
// base name of a database file. It returns name itself when unknown.
func (e *Extractor) Identify(name string) string {
	if def, ok := e.known[strings.ToLower(name)]; ok {
		return def.DatabaseIdentifier
	}
	slog.Debug("unknown database identifier", "name", name)
	return name
}

// FormatSchema formats schema in the requested output format, "yaml" or
// "text".
func (e *Extractor) FormatSchema(schema map[string]string, outputFormat string) (string, error) {
	switch outputFormat {
	case "text":
		return formatSchemaAsText(schema), nil
	case "yaml":
		return formatSchemaAsYAML(schema)
	default:
		return "", fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
