package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanclaw/chippick/internal/config"
)

func runIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CHIPPICK_CONFIG_DIR", dir)

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestConfigInit(t *testing.T) {
	tmp := t.TempDir()

	out, err := runIn(t, tmp, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(tmp, "config.yaml"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)

	data, err := os.ReadFile(filepath.Join(tmp, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "header: Pick Users")
	assert.Contains(t, string(data), "empty_text: No items found")
}

func TestConfigInit_KeepsExisting(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  header: Invite\n"), 0o644))

	_, err := runIn(t, tmp, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ui:\n  header: Invite\n", string(data))
}

func TestConfigInit_Force(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte("ui:\n  header: Invite\n"), 0o644))

	_, err := runIn(t, tmp, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "Pick Users", cfg.UI.Header)
}

func TestConfigPath(t *testing.T) {
	tmp := t.TempDir()

	out, err := runIn(t, tmp, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "config.yaml")+"\n", out)
}
