package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platform.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.json")

	require.NoError(t, LoadFrom(path))
	assert.FileExists(t, path)
	assert.Equal(t, GetDefaultConfig(), Config)

	// The written file must load back to the same configuration
	require.NoError(t, LoadFrom(path))
	assert.Equal(t, "info", Config.LogLevel)
	assert.Equal(t, "8080", Config.Server.Port)
	assert.Equal(t, GetDefaultConfig().Values, Config.Values)
}

func TestLoadExistingConfig(t *testing.T) {
	path := writeConfig(t, `{
		"log_level": "debug",
		"values": {
			"Shell": {"default": "/bin/sh", "Windows": "cmd.exe", "darwin": "/bin/zsh"}
		},
		"server": {"enabled": true}
	}`)

	require.NoError(t, LoadFrom(path))
	assert.Equal(t, "debug", Config.LogLevel)
	assert.True(t, Config.Server.Enabled)
	assert.Equal(t, "8080", Config.Server.Port, "empty port falls back to the default")
	assert.Equal(t, ValueTable{"default": "/bin/sh", "windows": "cmd.exe", "darwin": "/bin/zsh"}, Config.Values["shell"])
	assert.Equal(t, path, GetConfigPath())
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing default", `{"values": {"shell": {"linux": "/bin/bash"}}}`, "default is required"},
		{"unknown target", `{"values": {"shell": {"default": "sh", "redox": "ion"}}}`, `unknown target "redox"`},
		{"malformed json", `{"values": `, "failed to read config"},
		{"alias duplicate", `{"values": {"shell": {"default": "sh", "darwin": "a", "macos": "b"}, "ok": {"default": "x"}}}`, "both set macos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadFrom(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSetValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.json")
	require.NoError(t, LoadFrom(path))

	require.NoError(t, SetValue("Editor", "default", "vi"))
	require.NoError(t, SetValue("editor", "Darwin", "nano"))
	assert.Equal(t, ValueTable{"default": "vi", "macos": "nano"}, Config.Values["editor"])

	err := SetValue("browser", "linux", "firefox")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no default")

	err = SetValue("editor", "redox", "ion")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")

	require.Error(t, SetValue(" ", "default", "x"))

	// Saved values survive a reload
	require.NoError(t, Reload())
	assert.Equal(t, ValueTable{"default": "vi", "macos": "nano"}, Config.Values["editor"])
}

func TestRemoveValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.json")
	require.NoError(t, LoadFrom(path))

	require.NoError(t, RemoveValue("path_separator", "windows"))
	assert.Equal(t, ValueTable{"default": "/"}, Config.Values["path_separator"])

	require.Error(t, RemoveValue("path_separator", "windows"))
	require.Error(t, RemoveValue("path_separator", "default"))
	require.Error(t, RemoveValue("missing", ""))

	require.NoError(t, RemoveValue("path_separator", ""))
	assert.NotContains(t, Config.Values, "path_separator")

	require.NoError(t, Reload())
	assert.NotContains(t, Config.Values, "path_separator")
}

func TestKeys(t *testing.T) {
	Config = &AppConfig{Values: map[string]ValueTable{
		"zeta":  {DefaultKey: "z"},
		"alpha": {DefaultKey: "a"},
	}}
	assert.Equal(t, []string{"alpha", "zeta"}, Keys())
}

func TestBackupConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.json")
	require.NoError(t, LoadFrom(path))
	require.NoError(t, BackupConfig())

	original, err := os.ReadFile(path)
	require.NoError(t, err)
	backup, err := os.ReadFile(path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, original, backup)
}

func TestSetValueReplacesAliases(t *testing.T) {
	path := writeConfig(t, `{"values": {"shell": {"default": "/bin/sh", "darwin": "/bin/bash"}}}`)
	require.NoError(t, LoadFrom(path))

	require.NoError(t, SetValue("shell", "macos", "/bin/zsh"))
	assert.Equal(t, ValueTable{"default": "/bin/sh", "macos": "/bin/zsh"}, Config.Values["shell"])

	require.Error(t, SetValue("a.b", "default", "x"))
}

func TestRemoveValueIgnoresKeyCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.json")
	require.NoError(t, LoadFrom(path))

	require.NoError(t, SetValue("Editor", "default", "vi"))
	require.NoError(t, RemoveValue(" Editor ", ""))
	assert.NotContains(t, Config.Values, "editor")
}

func TestEditsBackUpPreviousConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platform.json")
	require.NoError(t, LoadFrom(path))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, SetValue("editor", "default", "vi"))
	backup, err := os.ReadFile(path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, before, backup)

	afterSet, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, before, afterSet)

	require.NoError(t, RemoveValue("editor", ""))
	backup, err = os.ReadFile(path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, afterSet, backup)
}
