package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gilbeats/beats/internal/config"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigInit_WritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	stdout, _, err := executeCommand(t, "config", "init", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "Wrote "+path+"\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [broken\n"), 0600))

	_, _, err := executeCommand(t, "config", "init", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	_, _, err = executeCommand(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))
}

func TestConfigShow_PrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: swiftbar\nswiftbar:\n  time_layout: \"15:04\"\n"), 0600))

	stdout, _, err := executeCommand(t, "config", "show", "--config", path, "--color")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))

	want := config.Defaults()
	want.Format = "swiftbar"
	want.Color = true
	want.SwiftBar.TimeLayout = "15:04"
	require.Equal(t, want, got)
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Equal(t, "beats dev\n", stdout)
}
