// Package settings persists display preferences between runs. Nothing
// about the reveal sequence itself is stored.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "window"

	minWindowWidth  = 320
	minWindowHeight = 240
)

// WindowSettings are the display preferences remembered across runs.
type WindowSettings struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

func DefaultWindowSettings(w, h int) WindowSettings {
	return WindowSettings{Width: w, Height: h}
}

// Manager loads and saves WindowSettings through gdata. A nil gdata
// manager gives an in-memory only Manager.
type Manager struct {
	gdataManager *gdata.Manager
	defaults     WindowSettings
	settings     WindowSettings
}

// Open creates a gdata-backed manager for appName. When storage cannot be
// opened the manager still works, it just forgets on exit.
func Open(appName string, defaults WindowSettings) *Manager {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (settings will not persist)", err)
		gm = nil
	}
	return NewManager(gm, defaults)
}

func NewManager(gm *gdata.Manager, defaults WindowSettings) *Manager {
	m := &Manager{gdataManager: gm, defaults: defaults, settings: defaults}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Load reads stored settings, keeping defaults when none exist.
func (m *Manager) Load() error {
	m.settings = m.defaults
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	var loaded WindowSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	m.settings = sanitize(loaded, m.defaults)
	return nil
}

// Save writes the current settings. Without storage it is a no-op.
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (m *Manager) Settings() WindowSettings { return m.settings }

// SetWindowSize records a new size; sizes below the minimum are ignored.
func (m *Manager) SetWindowSize(w, h int) {
	if w < minWindowWidth || h < minWindowHeight {
		return
	}
	m.settings.Width, m.settings.Height = w, h
}

func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

func sanitize(s, defaults WindowSettings) WindowSettings {
	if s.Width < minWindowWidth || s.Height < minWindowHeight {
		s.Width, s.Height = defaults.Width, defaults.Height
	}
	return s
}
