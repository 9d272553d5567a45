package definitions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqliterc/sqliterc/data"
)

func TestRead(t *testing.T) {
	defs, err := Read(strings.NewReader(`artifact_definition: MacOSNotesSQLiteDatabaseFile
database_identifier: Notes.storedata
`))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Equal(t, "MacOSNotesSQLiteDatabaseFile", defs[0].ArtifactDefinition)
	require.Equal(t, "Notes.storedata", defs[0].DatabaseIdentifier)
}

func TestRead_MissingKeys(t *testing.T) {
	_, err := Read(strings.NewReader("artifact_definition: MacOSNotesSQLiteDatabaseFile\n"))
	require.ErrorContains(t, err, "missing database_identifier")

	_, err = Read(strings.NewReader("database_identifier: Notes.storedata\n"))
	require.ErrorContains(t, err, "missing artifact_definition")
}

func TestRead_UnknownKey(t *testing.T) {
	_, err := Read(strings.NewReader("bogus: test\n"))
	require.Error(t, err)
}

func TestRead_BundledKnownDatabases(t *testing.T) {
	f, err := data.Open(data.KnownDatabasesFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	defs, err := Read(f)
	require.NoError(t, err)
	require.Len(t, defs, 5)
	require.Equal(t, "ChromiumBasedBrowsersCookiesDatabaseFile", defs[0].ArtifactDefinition)
	require.Equal(t, "ChromiumBasedBrowsersWebDataDatabaseFile", defs[4].ArtifactDefinition)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile("nonexistent.yaml")
	require.Error(t, err)
}
