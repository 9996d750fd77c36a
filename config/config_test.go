package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kds300/snntools/config"
)

// clearEnv unsets a variable for the duration of the test while keeping
// the automatic restore that t.Setenv registers.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// TestLoad reads the two directories from a JSON settings file.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dirs.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"FIG_SAVE_DIR": "/tmp/figs", "STYLE_DIR": "/tmp/styles"}`), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/figs", s.FigSaveDir)
	assert.Equal(t, "/tmp/styles", s.StyleDir)
}

// TestLoad_MissingKeysStayEmpty verifies partial settings files load
// with zero values for absent keys.
func TestLoad_MissingKeysStayEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dirs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"FIG_SAVE_DIR": "/figs"}`), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/figs", s.FigSaveDir)
	assert.Equal(t, "", s.StyleDir)
}

// TestLoad_Errors verifies missing files and malformed JSON surface as errors.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{not json`), 0o644))
	_, err = config.Load(bad)
	assert.Error(t, err)
}

// TestFromEnv_DotenvFile verifies values load from a .env file when the
// environment does not define them.
func TestFromEnv_DotenvFile(t *testing.T) {
	clearEnv(t, config.EnvFigSaveDir)
	clearEnv(t, config.EnvStyleDir)

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("FIG_SAVE_DIR=/from/file\nSTYLE_DIR=/styles/file\n"), 0o644))

	s, err := config.FromEnv(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/from/file", s.FigSaveDir)
	assert.Equal(t, "/styles/file", s.StyleDir)
}

// TestFromEnv_EnvironmentWins verifies already-set variables are not
// overridden by .env entries.
func TestFromEnv_EnvironmentWins(t *testing.T) {
	t.Setenv(config.EnvFigSaveDir, "/from/env")
	t.Setenv(config.EnvStyleDir, "/styles/env")

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("FIG_SAVE_DIR=/from/file\nSTYLE_DIR=/styles/file\n"), 0o644))

	s, err := config.FromEnv(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", s.FigSaveDir)
	assert.Equal(t, "/styles/env", s.StyleDir)
}

// TestFromEnv_MissingFileSkipped verifies absent .env files are not errors.
func TestFromEnv_MissingFileSkipped(t *testing.T) {
	t.Setenv(config.EnvFigSaveDir, "/env/only")
	clearEnv(t, config.EnvStyleDir)

	s, err := config.FromEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "/env/only", s.FigSaveDir)
	assert.Equal(t, "", s.StyleDir)
}
