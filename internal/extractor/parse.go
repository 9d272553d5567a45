package extractor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sqliterc/sqliterc/internal/resources"
)

var tabsPattern = regexp.MustCompile(`[\t]+`)

// errVirtualTable marks CREATE VIRTUAL TABLE statements, which carry no
// column definitions to extract.
var errVirtualTable = errors.New("virtual table")

// quoteTableName wraps tableName in the quoting style the query opens with.
func quoteTableName(query, tableName string) string {
	switch query[0] {
	case '\'':
		return "'" + tableName + "'"
	case '"':
		return `"` + tableName + `"`
	case '`':
		return "`" + tableName + "`"
	case '[':
		return "[" + tableName + "]"
	default:
		return tableName
	}
}

// parseCreateTable parses the column definitions out of a CREATE TABLE
// statement. Constraint clauses terminate the scan; virtual tables return
// errVirtualTable.
func parseCreateTable(tableName, query string) ([]resources.ColumnDefinition, error) {
	originalQuery := query

	query = tabsPattern.ReplaceAllString(query, " ")

	if !strings.HasPrefix(query, "CREATE ") || !strings.HasSuffix(query, ")") {
		return nil, fmt.Errorf("unsupported query: %q", originalQuery)
	}
	query = query[7 : len(query)-1]

	if strings.HasPrefix(query, "VIRTUAL ") {
		return nil, errVirtualTable
	}
	if !strings.HasPrefix(query, "TABLE ") {
		return nil, fmt.Errorf("unsupported query: %q", originalQuery)
	}
	query = query[6:]

	queryStart := quoteTableName(query, tableName)
	if !strings.HasPrefix(query, queryStart) {
		return nil, fmt.Errorf("unsupported query: %q", originalQuery)
	}

	// There can be whitespace between the table name and "(".
	query = strings.TrimLeft(query[len(queryStart):], " \n")
	if len(query) == 0 || query[0] != '(' {
		return nil, fmt.Errorf("unsupported query: %q", originalQuery)
	}

	// And between "(" and the first column definition.
	query = strings.TrimLeft(query[1:], " \n")

	var columns []resources.ColumnDefinition
	seen := map[string]bool{}
	for query != "" {
		// Strip comments.
		if strings.HasPrefix(query, "-- ") {
			_, rest, _ := strings.Cut(query, "\n")
			query = strings.TrimLeft(rest, " \n")
			continue
		}

		if strings.HasPrefix(query, "CONSTRAINT") ||
			strings.HasPrefix(query, "UNIQUE") ||
			strings.HasPrefix(query, "PRIMARY KEY") {
			break
		}

		var column string
		column, query, _ = strings.Cut(query, ",")
		query = strings.TrimLeft(query, " \n")

		segments := strings.Fields(column)
		if len(segments) == 0 {
			continue
		}
		name := segments[0]
		if len(name) > 1 && (name[0] == '\'' || name[0] == '"' || name[0] == '`' || name[0] == '[') {
			name = name[1 : len(name)-1]
		}

		if seen[name] {
			return nil, fmt.Errorf("column %s already defined", name)
		}
		seen[name] = true

		definition := resources.ColumnDefinition{Name: name}
		// A column can be defined without a type.
		if len(segments) > 1 {
			definition.ValueType = segments[1]
		}
		columns = append(columns, definition)
	}
	return columns, nil
}
