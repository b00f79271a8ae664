package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
database: /data/carryvault.db
export_dir: /data/exports
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/carryvault.db", cfg.Database)
	assert.Equal(t, "/data/exports", cfg.ExportDir)
}

func TestLoad_PartialFileInheritsDefaults(t *testing.T) {
	path := writeConfig(t, `database: /data/carryvault.db`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/carryvault.db", cfg.Database)

	defaults, err := Default()
	require.NoError(t, err)
	assert.Equal(t, defaults.ExportDir, cfg.ExportDir)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, `
database: /data/carryvault.db
databse_typo: oops
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	// Point the home directory at a scratch dir with no config file.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	defaults, err := Default()
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestDefault_UnderHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".carryvault", "carryvault.db"), cfg.Database)
	assert.Equal(t, filepath.Join(home, ".carryvault", "exports"), cfg.ExportDir)
}
