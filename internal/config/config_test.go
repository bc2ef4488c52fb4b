package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, ": ", cfg.Prompt)
	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, filepath.Join(home, ".smallsh_history"), cfg.HistoryFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
prompt: "% "
home_dir: /tmp
log_file: /tmp/smallsh.log
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "% ", cfg.Prompt)
	assert.Equal(t, "/tmp", cfg.HomeDir)
	// Unset fields still get defaults, relative to the configured home.
	assert.Equal(t, "/tmp/.smallsh_history", cfg.HistoryFile)
	assert.Equal(t, "/tmp/smallsh.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
