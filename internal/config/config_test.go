package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := &Config{
		Version:      1,
		Pages:        []string{"One", "Two", "Three"},
		SelectedPage: "Two",
		Deck: DeckSettings{
			CornerRadius:   2,
			ShowShadow:     true,
			EnableRotation: false,
			ScaleStep:      0.15,
		},
	}
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadFromMissingPathErrors(t *testing.T) {
	svc := NewConfigService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	svc := NewConfigService()
	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.NotEmpty(t, loaded.Pages)
	require.Equal(t, 0.1, loaded.Deck.ScaleStep)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}

func TestDefaultConfigIsUsable(t *testing.T) {
	cfg := DefaultConfig()
	require.NotEmpty(t, cfg.Pages)
	require.Greater(t, cfg.Deck.ScaleStep, 0.0)
	require.True(t, cfg.Deck.ShowShadow)
}
