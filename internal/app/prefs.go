package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"caseshop/internal/storage"
)

// Preferences are display settings persisted across runs.
type Preferences struct {
	store storage.Store

	mu       sync.Mutex
	darkMode bool
}

func newPreferences(store storage.Store) *Preferences {
	return &Preferences{store: store}
}

// Load reads persisted preferences. Missing or unreadable values keep
// their defaults.
func (p *Preferences) Load(ctx context.Context) error {
	raw, ok, err := p.store.Get(ctx, storage.KeyDarkMode)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.darkMode = ok && raw == "true"
	return nil
}

// DarkMode reports whether the dark palette is selected.
func (p *Preferences) DarkMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.darkMode
}

// SetDarkMode selects the palette and persists the choice.
func (p *Preferences) SetDarkMode(ctx context.Context, on bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.Set(ctx, storage.KeyDarkMode, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	p.darkMode = on
	return nil
}

// ToggleDarkMode flips the palette and returns the new setting.
func (p *Preferences) ToggleDarkMode(ctx context.Context) (bool, error) {
	on := !p.DarkMode()
	if err := p.SetDarkMode(ctx, on); err != nil {
		return !on, err
	}
	return on, nil
}
