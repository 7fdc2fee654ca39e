package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// Settings are the user's choices from the settings menu.
type Settings struct {
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// SettingsFor seeds user settings from the window section.
func SettingsFor(cfg *Config) Settings {
	if cfg == nil {
		return Settings{VSync: true}
	}
	return Settings{VSync: cfg.Window.VSync}
}

// SettingsStore keeps Settings in memory and persists them through gdata.
// A nil manager keeps them in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	defaults Settings
	current  Settings
}

// OpenSettings opens the per-user data directory for app. Failing to open
// it is not fatal: the store falls back to memory only.
func OpenSettings(app string, defaults Settings) *SettingsStore {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		log.Printf("SettingsStore: persistence unavailable: %v", err)
		m = nil
	}
	s := NewSettingsStore(m, defaults)
	if err := s.Load(); err != nil {
		log.Printf("SettingsStore: %v (using defaults)", err)
	}
	return s
}

func NewSettingsStore(m *gdata.Manager, defaults Settings) *SettingsStore {
	return &SettingsStore{manager: m, defaults: defaults, current: defaults}
}

// Load replaces the current settings with the saved ones. Missing or broken
// data leaves the defaults in place.
func (s *SettingsStore) Load() error {
	s.current = s.defaults
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("config: load settings: %w", err)
	}
	loaded := s.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("config: decode settings: %w", err)
	}
	s.current = loaded
	return nil
}

func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("config: save settings: %w", err)
	}
	return nil
}

func (s *SettingsStore) Get() Settings {
	return s.current
}

// Update applies fn to the settings and saves them. A failed save is logged
// and the in-memory change kept.
func (s *SettingsStore) Update(fn func(*Settings)) Settings {
	fn(&s.current)
	if err := s.Save(); err != nil {
		log.Printf("SettingsStore: %v", err)
	}
	return s.current
}

// Persistent reports whether settings survive a restart.
func (s *SettingsStore) Persistent() bool {
	return s.manager != nil
}
