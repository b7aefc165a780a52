package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9090\"\nlog_format: text\n"), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, Defaults().CorpusPath, cfg.CorpusPath)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9090\"\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("listen_addr", "", "")
	require.NoError(t, flags.Parse([]string{"--listen_addr=:7070"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}
