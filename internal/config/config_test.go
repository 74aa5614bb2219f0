package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Encoder.Indent)
	assert.Equal(t, 10000, cfg.Encoder.MaxDepth)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.False(t, cfg.Dev.Debug)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
server:
  addr: ":9090"
encoder:
  indent: 4
llm:
  model: "gpt-4o"
dev:
  debug: true
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Encoder.Indent)
	// Unset fields keep their defaults.
	assert.Equal(t, 10000, cfg.Encoder.MaxDepth)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.True(t, cfg.Dev.Debug)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: valid"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Encoder.Indent = 0
	assert.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.Encoder.MaxDepth = -1
	assert.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.Server.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectedOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder:\n  indent: -2\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)
	t.Setenv("HOME", tmp)

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Encoder.Indent)
}

func TestLoadOrDefault_CurrentDirFile(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, os.WriteFile(filepath.Join(tmp, ConfigFileName), []byte("encoder:\n  indent: 3\n"), 0644))

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Encoder.Indent)
}
