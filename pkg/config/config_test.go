package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/strscript/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("", false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yml")

	cfg, err := config.Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(missing, true)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "log_level: debug\ncolor: false\ngas: 500\nmax_source_bytes: 4096\n")

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, config.Config{LogLevel: "debug", Color: false, Gas: 500, MaxSourceBytes: 4096}, cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "gas: 10\n")

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.Equal(t, 10, cfg.Gas)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadUnknownField(t *testing.T) {
	_, err := config.Load(writeConfig(t, "colour: true\n"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := config.Config{LogLevel: "chatty", Gas: -1, MaxSourceBytes: -5}

	err := cfg.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected *multierror.Error, got %T", err)
	assert.Len(t, merr.Errors, 3)
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := config.Load(writeConfig(t, "gas: -3\n"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gas must not be negative")
}
