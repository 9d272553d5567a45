// Package version provides version information.
package version

// Version is set at build time via -ldflags "-X github.com/sqliterc/sqliterc/internal/version.Version=<value>"
// The default is the version of the most recent release. Releases are dated
// YYYYMMDD, not semver; `sqliterc release` rewrites this marker.
var Version = "20260826"
