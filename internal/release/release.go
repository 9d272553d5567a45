// Package release prepares the repository for a new release: it bumps the
// version markers, regenerates the dpkg changelog and triggers the
// documentation build. Every step is best-effort; a step that fails is
// reported as a warning and never aborts the run.
package release

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"time"

	"github.com/sqliterc/sqliterc/internal/config"
)

const projectName = "sqliterc"

// Version markers rewritten on release. A marker that does not match leaves
// its file unchanged.
var (
	moduleMarker   = regexp.MustCompile(`Version = "[0-9]*"`)
	manifestMarker = regexp.MustCompile(`version: [0-9]*`)
)

const changelogTemplate = `%s (%s-1) unstable; urgency=low

  * Auto-generated

 -- Sqliterc maintainers <sqliterc-dev@googlegroups.com>  %s
`

// Options configure a release preparation run.
type Options struct {
	// Root is the repository root. Defaults to the current directory.
	Root string

	// Now supplies the release timestamp. Defaults to time.Now.
	Now func() time.Time

	// DocsCommand is the documentation build invocation, run in the docs
	// directory. Defaults to "make clean html".
	DocsCommand []string
}

// Result describes what a release preparation run changed.
type Result struct {
	Version         string
	DpkgDate        string
	ModuleUpdated   bool
	ManifestUpdated bool
	DocsBuilt       bool
	Warnings        []string
}

// DateVersion returns the date-based release version: the UTC date as an
// 8-digit token (YYYYMMDD).
func DateVersion(now time.Time) string {
	return now.UTC().Format("20060102")
}

// DpkgDate returns now formatted per RFC 2822, the format dpkg changelogs
// require.
func DpkgDate(now time.Time) string {
	return now.Format(time.RFC1123Z)
}

// ReplaceMarker substitutes every match of pattern in the file at path with
// replacement. It reports whether the pattern matched; an unmatched pattern
// leaves the file untouched.
func ReplaceMarker(path string, pattern *regexp.Regexp, replacement string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if !pattern.Match(content) {
		return false, nil
	}
	updated := pattern.ReplaceAll(content, []byte(replacement))
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// Changelog renders the dpkg changelog for version and dpkgDate.
func Changelog(version, dpkgDate string) string {
	return fmt.Sprintf(changelogTemplate, projectName, version, dpkgDate)
}

// WriteChangelog overwrites the changelog at path wholesale.
func WriteChangelog(path, version, dpkgDate string) error {
	return os.WriteFile(path, []byte(Changelog(version, dpkgDate)), 0o644)
}

// Prepare runs the release preparation steps. It never returns an error:
// failed steps are recorded as warnings in the result, matching the
// best-effort contract of the release flow.
func Prepare(opts Options) *Result {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.DocsCommand) == 0 {
		opts.DocsCommand = []string{"make", "clean", "html"}
	}

	now := opts.Now()
	res := &Result{
		Version:  DateVersion(now),
		DpkgDate: DpkgDate(now),
	}
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		res.Warnings = append(res.Warnings, msg)
		slog.Warn(msg)
	}

	marker := fmt.Sprintf(`Version = "%s"`, res.Version)
	matched, err := ReplaceMarker(config.ModulePath(opts.Root), moduleMarker, marker)
	if err != nil {
		warn("update module version: %v", err)
	} else if !matched {
		warn("module version marker not found in %s", config.ModulePath(opts.Root))
	}
	res.ModuleUpdated = matched && err == nil

	marker = fmt.Sprintf("version: %s", res.Version)
	matched, err = ReplaceMarker(config.ManifestPath(opts.Root), manifestMarker, marker)
	if err != nil {
		warn("update manifest version: %v", err)
	} else if !matched {
		warn("manifest version marker not found in %s", config.ManifestPath(opts.Root))
	}
	res.ManifestUpdated = matched && err == nil

	if err := WriteChangelog(config.ChangelogPath(opts.Root), res.Version, res.DpkgDate); err != nil {
		warn("write changelog: %v", err)
	}

	docs := exec.Command(opts.DocsCommand[0], opts.DocsCommand[1:]...)
	docs.Dir = config.DocsPath(opts.Root)
	if output, err := docs.CombinedOutput(); err != nil {
		warn("documentation build failed: %v: %s", err, output)
	} else {
		res.DocsBuilt = true
	}

	return res
}
