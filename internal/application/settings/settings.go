// Package settings persists player-facing options across runs.
//
// Settings are stored as YAML through gdata, which picks a writable
// per-platform location. A nil gdata manager degrades to in-memory
// defaults so the options screen keeps working without storage.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings holds the global options adjustable from the options scene.
type Settings struct {
	MusicVolume float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	Fullscreen  bool    `yaml:"fullscreen"`
}

// Defaults returns the settings used when nothing has been saved yet.
func Defaults() *Settings {
	return &Settings{
		MusicVolume: 0.7,
		SoundVolume: 0.8,
		Fullscreen:  false,
	}
}

// Manager loads, mutates, and saves settings.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager creates a settings manager backed by the given gdata
// store. store may be nil, in which case settings live in memory only.
// A failed load is not fatal; defaults are used instead.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:    store,
		settings: Defaults(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] load failed: %v (using defaults)", err)
	}
	return m
}

// Load reads settings from the store, falling back to defaults when the
// store is nil or holds nothing yet.
func (m *Manager) Load() error {
	if m.store == nil {
		m.settings = Defaults()
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Defaults()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Defaults()
		return fmt.Errorf("loading settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = Defaults()
		return fmt.Errorf("unmarshaling settings: %w", err)
	}

	m.settings = &loaded
	return nil
}

// Save writes the current settings to the store.
// With a nil store Save is a no-op.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Get returns the current settings.
func (m *Manager) Get() *Settings {
	return m.settings
}

// SetMusicVolume sets the music volume, clamped to [0, 1].
// Call Save to persist.
func (m *Manager) SetMusicVolume(volume float64) {
	m.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume sets the sound volume, clamped to [0, 1].
// Call Save to persist.
func (m *Manager) SetSoundVolume(volume float64) {
	m.settings.SoundVolume = clampVolume(volume)
}

// SetFullscreen toggles the fullscreen preference.
// Call Save to persist.
func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
