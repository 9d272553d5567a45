package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sqliterc/sqliterc/internal/resources"
)

var whitespacePattern = regexp.MustCompile(`[\n\t]+`)

// textWrapWidth leaves room for the leading indent and quotes of the text
// output format.
const textWrapWidth = 80 - (10 + 4)

// formatSchemaAsYAML formats schema as a stream of YAML table definitions,
// one document per table, sorted by table name.
func formatSchemaAsYAML(schema map[string]string) (string, error) {
	buf := &bytes.Buffer{}
	buf.WriteString("# SQLite database schema.\n")

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	for _, tableName := range sortedTableNames(schema) {
		columns, err := parseCreateTable(tableName, schema[tableName])
		if errors.Is(err, errVirtualTable) {
			continue
		}
		if err != nil {
			return "", err
		}
		table := resources.TableDefinition{Name: tableName, Columns: columns}
		if err := enc.Encode(&table); err != nil {
			return "", fmt.Errorf("encode table %s: %w", tableName, err)
		}
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("close encoder: %w", err)
	}
	return buf.String(), nil
}

// formatSchemaAsText formats schema as a word-wrapped, single-quoted source
// block.
func formatSchemaAsText(schema map[string]string) string {
	tableNames := sortedTableNames(schema)

	var lines []string
	for tableIndex, tableName := range tableNames {
		lines = append(lines, fmt.Sprintf("      '%s': (", tableName))

		query := whitespacePattern.ReplaceAllString(schema[tableName], " ")
		query = strings.ReplaceAll(query, "'", "\\'")

		wrapped := wrapText(query, textWrapWidth)
		for i, line := range wrapped {
			if i < len(wrapped)-1 {
				lines = append(lines, fmt.Sprintf("          '%s '", line))
				continue
			}
			if tableIndex == len(tableNames)-1 {
				lines = append(lines, fmt.Sprintf("          '%s')}}]", line))
			} else {
				lines = append(lines, fmt.Sprintf("          '%s'),", line))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func sortedTableNames(schema map[string]string) []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// wrapText greedily wraps text at width without breaking long words.
func wrapText(text string, width int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		if current == "" {
			current = word
			continue
		}
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
