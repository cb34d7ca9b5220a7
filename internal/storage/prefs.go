package storage

import (
	"encoding/json"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/sharmila1320/Kawaiifolio/internal/pins"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

const (
	KeyTheme     = "theme"
	KeySavedPins = "kawaiifolio_saved_pins"
)

// Prefs reads and writes the app preferences kept in a Store.
type Prefs struct {
	store *Store
	log   *zap.Logger
}

// NewPrefs wraps store. A nil logger discards warnings.
func NewPrefs(store *Store, log *zap.Logger) *Prefs {
	if log == nil {
		log = zap.NewNop()
	}
	return &Prefs{store: store, log: log}
}

// ThemeMode returns the stored preference, defaulting to system.
func (p *Prefs) ThemeMode() theme.Mode {
	v, ok := p.store.Get(KeyTheme)
	if !ok {
		return theme.ModeSystem
	}
	m, err := theme.ParseMode(v)
	if err != nil {
		p.log.Warn("ignoring stored theme", zap.String("value", v), zap.Error(err))
		return theme.ModeSystem
	}
	return m
}

// SetThemeMode persists m.
func (p *Prefs) SetThemeMode(m theme.Mode) error {
	if _, err := theme.ParseMode(string(m)); err != nil {
		return err
	}
	return p.store.Set(KeyTheme, string(m))
}

// SavedPins returns the saved pin ids in the order they were saved. A
// corrupt value reads as empty.
func (p *Prefs) SavedPins() []string {
	v, ok := p.store.Get(KeySavedPins)
	if !ok || v == "" {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(v), &ids); err != nil {
		p.log.Warn("failed to parse saved pins from storage", zap.Error(err))
		return []string{}
	}
	if ids == nil {
		ids = []string{}
	}
	return ids
}

// IsSaved reports whether id is saved.
func (p *Prefs) IsSaved(id string) bool {
	return slices.Contains(p.SavedPins(), id)
}

// ToggleSavedPin saves id, or removes it if already saved, and reports
// the new state. Only catalog pins can be saved. A stale id already in
// storage can still be removed.
func (p *Prefs) ToggleSavedPin(id string) (bool, error) {
	ids := p.SavedPins()
	saved := !slices.Contains(ids, id)
	if saved {
		if _, err := pins.Lookup(id); err != nil {
			return false, err
		}
		ids = append(ids, id)
	} else {
		ids = slices.DeleteFunc(ids, func(s string) bool { return s == id })
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return false, fmt.Errorf("failed to encode saved pins: %w", err)
	}
	if err := p.store.Set(KeySavedPins, string(data)); err != nil {
		return false, err
	}
	return saved, nil
}
