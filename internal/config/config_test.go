package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termcrack/termcrack/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	require.Equal(t, config.Default(dir), cfg)
	require.Equal(t, 4, cfg.MaxAttempts)
	require.Equal(t, 3, cfg.GameOverHoldSecs)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	settings := "dict_dir: /srv/words\nmax_attempts: 6\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(settings), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	require.Equal(t, "/srv/words", cfg.DictDir)
	require.Equal(t, 6, cfg.MaxAttempts)
	// Untouched keys keep their defaults.
	require.Equal(t, 3, cfg.GameOverHoldSecs)
	require.Equal(t, filepath.Join(dir, "history.db"), cfg.HistoryPath)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.MaxAttempts = 7

	require.NoError(t, config.Save(dir, cfg))

	loaded, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(":\t:"), 0o644))

	_, err := config.Load(dir)
	require.Error(t, err)
}
