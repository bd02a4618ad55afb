package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbarbashov/keycloak/config/source"

	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	flat := source.Flatten(map[string]any{
		"db": map[string]any{
			"url": "jdbc:postgresql://localhost/kc",
			"pool": map[string]any{
				"max-size": 20,
			},
		},
		"features": []any{"token-exchange", "recovery-codes"},
		"verbose":  true,
		"comment":  nil,
	})

	require.Equal(t, map[string]string{
		"db.url":           "jdbc:postgresql://localhost/kc",
		"db.pool.max-size": "20",
		"features":         "token-exchange,recovery-codes",
		"verbose":          "true",
		"comment":          "",
	}, flat)
}

func TestFlatten_EmptyDocument(t *testing.T) {
	t.Parallel()

	require.Empty(t, source.Flatten(map[string]any{}))
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	fpath := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("db: postgres\n"), 0o600))

	data, err := source.ReadFile(fpath)
	require.NoError(t, err)
	require.Equal(t, "db: postgres\n", string(data))
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	_, err := source.ReadFile(t.TempDir())
	require.ErrorIs(t, err, source.ErrPathIsDirectory)
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := source.ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
