package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logging.WARNING, level)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, `
tags: integration
tests: true
output: names_gen.go
color: never
logLevel: debug
patterns:
  - ./...
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Tags:     "integration",
		Tests:    true,
		Output:   "names_gen.go",
		Color:    "never",
		LogLevel: "debug",
		Patterns: []string{"./..."},
	}, cfg)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeFile(t, "outptu: x.go\n"), true)
	assert.ErrorContains(t, err, "outptu")
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "output: names_gen.go\ncolor: never\n")
	t.Setenv("ENUMNAME_OUTPUT", "env_gen.go")
	t.Setenv("ENUMNAME_TESTS", "yes")
	t.Setenv("ENUMNAME_TAGS", " a,b ")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "env_gen.go", cfg.Output)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.Tests)
	assert.Equal(t, "a,b", cfg.Tags)
}

func TestLoadInvalidEnvBool(t *testing.T) {
	t.Setenv("ENUMNAME_TESTS", "maybe")
	_, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	assert.ErrorContains(t, err, "ENUMNAME_TESTS")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Color = "rainbow"
	cfg.Output = "names.txt"
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	assert.ErrorContains(t, err, `invalid color "rainbow"`)
	assert.ErrorContains(t, err, `invalid output "names.txt"`)
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}
