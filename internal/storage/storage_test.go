package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharmila1320/Kawaiifolio/internal/pins"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "storage.json"))
	require.NoError(t, err)
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTemp(t)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("k", "v"))
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	reopened, err := Open(s.Path())
	require.NoError(t, err)
	v, ok = reopened.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, reopened.Remove("k"))
	require.NoError(t, reopened.Remove("k"))
	again, err := Open(s.Path())
	require.NoError(t, err)
	_, ok = again.Get("k")
	assert.False(t, ok)
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	s, err := Open(path)
	require.NoError(t, err)
	_, ok := s.Get(KeyTheme)
	assert.False(t, ok)
}

func TestThemeMode(t *testing.T) {
	p := NewPrefs(openTemp(t), nil)
	assert.Equal(t, theme.ModeSystem, p.ThemeMode())

	require.NoError(t, p.SetThemeMode(theme.ModeDark))
	assert.Equal(t, theme.ModeDark, p.ThemeMode())

	assert.ErrorIs(t, p.SetThemeMode("sepia"), theme.ErrUnknownTheme)

	require.NoError(t, p.store.Set(KeyTheme, "garbage"))
	assert.Equal(t, theme.ModeSystem, p.ThemeMode())
}

func TestToggleSavedPin(t *testing.T) {
	p := NewPrefs(openTemp(t), nil)
	assert.Empty(t, p.SavedPins())

	saved, err := p.ToggleSavedPin("1")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = p.ToggleSavedPin("2")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, []string{"1", "2"}, p.SavedPins())
	assert.True(t, p.IsSaved("2"))

	saved, err = p.ToggleSavedPin("1")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, []string{"2"}, p.SavedPins())

	raw, ok := p.store.Get(KeySavedPins)
	require.True(t, ok)
	assert.JSONEq(t, `["2"]`, raw)
}

func TestCorruptSavedPinsReadEmpty(t *testing.T) {
	p := NewPrefs(openTemp(t), nil)
	require.NoError(t, p.store.Set(KeySavedPins, "[oops"))
	assert.Equal(t, []string{}, p.SavedPins())

	saved, err := p.ToggleSavedPin("4")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, []string{"4"}, p.SavedPins())
}

func TestToggleSavedPinRejectsUnknownID(t *testing.T) {
	p := NewPrefs(openTemp(t), nil)

	saved, err := p.ToggleSavedPin("definitely-not-a-pin")
	assert.ErrorIs(t, err, pins.ErrUnknownPin)
	assert.False(t, saved)
	assert.Empty(t, p.SavedPins())
	_, ok := p.store.Get(KeySavedPins)
	assert.False(t, ok)
}

func TestToggleSavedPinDropsStaleID(t *testing.T) {
	p := NewPrefs(openTemp(t), nil)
	require.NoError(t, p.store.Set(KeySavedPins, `["retired","1"]`))

	saved, err := p.ToggleSavedPin("retired")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, []string{"1"}, p.SavedPins())
}
