package data

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	require.Contains(t, names, KnownDatabasesFile)
	require.Greater(t, len(names), 1)
	for _, name := range names {
		require.Regexp(t, `\.yaml$`, name)
	}
}

func TestOpen(t *testing.T) {
	f, err := Open(KnownDatabasesFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NotEmpty(t, content)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open("nonexistent.yaml")
	require.Error(t, err)
}
