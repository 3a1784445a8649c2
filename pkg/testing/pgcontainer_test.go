package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpScripts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"002_seed_credito.up.sql",
		"001_create_credito.up.sql",
		"001_create_credito.down.sql",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}

	files, err := upScripts(dir, false)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "001_create_credito.up.sql", filepath.Base(files[0]))
	assert.Equal(t, "002_seed_credito.up.sql", filepath.Base(files[1]))

	files, err = upScripts(dir, true)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "001_create_credito.up.sql", filepath.Base(files[0]))
}

func TestUpScripts_Empty(t *testing.T) {
	_, err := upScripts(t.TempDir(), false)
	assert.Error(t, err)
}

func TestMigrationsDir(t *testing.T) {
	files, err := upScripts(migrationsDir(), false)
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
