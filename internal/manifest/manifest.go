// Package manifest loads the packaging manifest. The manifest is declarative:
// it is consumed by the external packaging toolchain (nfpm) and this package
// only reads it back for display.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Content declares files included in the package.
type Content struct {
	Src  string `yaml:"src"`
	Dst  string `yaml:"dst"`
	Type string `yaml:"type,omitempty"`
}

// RPM holds the RPM-specific packaging directives.
type RPM struct {
	Group       string `yaml:"group,omitempty"`
	Compression string `yaml:"compression,omitempty"`
}

// Manifest is the static packaging metadata consumed by nfpm.
type Manifest struct {
	Name        string    `yaml:"name"`
	Arch        string    `yaml:"arch"`
	Platform    string    `yaml:"platform,omitempty"`
	Version     int       `yaml:"version"`
	Section     string    `yaml:"section,omitempty"`
	Priority    string    `yaml:"priority,omitempty"`
	Maintainer  string    `yaml:"maintainer"`
	Description string    `yaml:"description"`
	Vendor      string    `yaml:"vendor,omitempty"`
	Homepage    string    `yaml:"homepage,omitempty"`
	License     string    `yaml:"license"`
	Depends     []string  `yaml:"depends,omitempty"`
	Contents    []Content `yaml:"contents"`
	RPM         RPM       `yaml:"rpm,omitempty"`
}

// VersionString returns the version as the 8-digit date token it is declared
// as.
func (m *Manifest) VersionString() string {
	return strconv.Itoa(m.Version)
}

// Load reads the packaging manifest at path.
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s: missing name", path)
	}
	if m.Version == 0 {
		return nil, fmt.Errorf("manifest %s: missing version", path)
	}
	return &m, nil
}

// ResolveContents expands the declared content globs relative to root and
// returns the matching files, sorted. The files are treated as opaque package
// data.
func (m *Manifest) ResolveContents(root string) ([]string, error) {
	var files []string
	for _, content := range m.Contents {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(content.Src)))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", content.Src, err)
		}
		for _, match := range matches {
			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, err
			}
			files = append(files, filepath.ToSlash(rel))
		}
	}
	sort.Strings(files)
	return files, nil
}
