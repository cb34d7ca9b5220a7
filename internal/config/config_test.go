package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("KAWAIIFOLIO_SYSTEM_THEME", "")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
	assert.Equal(t, ExportFrames, cfg.Export.Frames)
	assert.Equal(t, ChatModel, cfg.Chat.Model)
	assert.Equal(t, "light", cfg.SystemTheme)
	assert.NotEmpty(t, cfg.Storage.Path)
	require.NotNil(t, cfg.Chat.Temperature)
	assert.InDelta(t, ChatTemperature, *cfg.Chat.Temperature, 1e-6)
}

func TestLoadKeepsExplicitZeroTemperature(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "kawaiifolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chat:\n  temperature: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Chat.Temperature)
	assert.Zero(t, *cfg.Chat.Temperature)
	assert.Equal(t, ChatModel, cfg.Chat.Model)
}

func TestLoadNullTemperatureUsesDefault(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "kawaiifolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chat:\n  temperature: null\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Chat.Temperature)
	assert.InDelta(t, ChatTemperature, *cfg.Chat.Temperature, 1e-6)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "kawaiifolio.yaml")
	data := []byte(`
window:
  width: 800
  hud: false
export:
  frames: 10
  seed: 42
chat:
  model: gemini-test
system_theme: dark
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
	assert.False(t, cfg.Window.HUD)
	assert.Equal(t, 10, cfg.Export.Frames)
	assert.Equal(t, ExportEvery, cfg.Export.Every)
	assert.Equal(t, uint64(42), cfg.Export.Seed)
	assert.Equal(t, "gemini-test", cfg.Chat.Model)
	assert.Equal(t, "dark", cfg.SystemTheme)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY wins over API_KEY", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "plain")
		t.Setenv("GEMINI_API_KEY", "gemini")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.Chat.APIKey)
	})

	t.Run("API_KEY fallback", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "plain")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "plain", cfg.Chat.APIKey)
	})

	t.Run("system theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KAWAIIFOLIO_SYSTEM_THEME", "DARK")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.SystemTheme)
	})
}
