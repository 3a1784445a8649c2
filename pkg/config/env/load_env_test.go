package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CREDITOS_DOTENV_KEY=from-file\nCREDITOS_DOTENV_SET=from-file\n"), 0o600))

	t.Setenv("ENV_PATH", "")
	t.Setenv("CREDITOS_DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("CREDITOS_DOTENV_KEY") })

	require.NoError(t, LoadDotEnv("local", path))

	assert.Equal(t, "from-file", os.Getenv("CREDITOS_DOTENV_KEY"))
	assert.Equal(t, "from-env", os.Getenv("CREDITOS_DOTENV_SET"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	t.Setenv("ENV_PATH", "")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}

func TestGetters(t *testing.T) {
	t.Setenv("CREDITOS_STR", "  value ")
	t.Setenv("CREDITOS_BLANK", " ")
	t.Setenv("CREDITOS_BOOL", "true")
	t.Setenv("CREDITOS_BAD_BOOL", "yes please")
	t.Setenv("CREDITOS_INT", "42")
	t.Setenv("CREDITOS_BAD_INT", "4x")

	assert.Equal(t, "value", GetOr("CREDITOS_STR", "def"))
	assert.Equal(t, "def", GetOr("CREDITOS_BLANK", "def"))

	b, err := GetBool("CREDITOS_BOOL", false)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = GetBool("CREDITOS_UNSET_BOOL", true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = GetBool("CREDITOS_BAD_BOOL", false)
	assert.Error(t, err)

	n, err := GetInt("CREDITOS_INT", 0)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = GetInt("CREDITOS_BAD_INT", 7)
	assert.Error(t, err)
}
