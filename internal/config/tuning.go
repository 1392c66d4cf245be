package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds the numbers that shape the reveal sequence. Everything here
// can be overridden from a YAML file; zero values fall back to defaults.
type Tuning struct {
	CoreThreshold      int           `yaml:"coreThreshold"`
	MaxEnergy          int           `yaml:"maxEnergy"`
	WavesPerClick      int           `yaml:"wavesPerClick"`
	TargetJitter       float64       `yaml:"targetJitter"`
	ParticleCount      int           `yaml:"particleCount"`
	MaxCoreSize        float64       `yaml:"maxCoreSize"`
	GrowthInterval     time.Duration `yaml:"growthInterval"`
	ExpansionDuration  time.Duration `yaml:"expansionDuration"`
	FlashDuration      time.Duration `yaml:"flashDuration"`
	ParticleMinSpeed   float64       `yaml:"particleMinSpeed"`
	ParticleSpeedRange float64       `yaml:"particleSpeedRange"`
}

// DefaultTuning returns the values the reveal was designed around.
func DefaultTuning() Tuning {
	return Tuning{
		CoreThreshold:      25,
		MaxEnergy:          100,
		WavesPerClick:      3,
		TargetJitter:       10,
		ParticleCount:      500,
		MaxCoreSize:        200,
		GrowthInterval:     100 * time.Millisecond,
		ExpansionDuration:  2000 * time.Millisecond,
		FlashDuration:      100 * time.Millisecond,
		ParticleMinSpeed:   5,
		ParticleSpeedRange: 15,
	}
}

// Validate checks that the thresholds make a reachable sequence.
func (t Tuning) Validate() error {
	if t.MaxEnergy <= 0 || t.MaxEnergy > 100 {
		return fmt.Errorf("maxEnergy %d must be in (0, 100]", t.MaxEnergy)
	}
	if t.CoreThreshold <= 0 || t.CoreThreshold >= t.MaxEnergy {
		return fmt.Errorf("coreThreshold %d must be in (0, %d)", t.CoreThreshold, t.MaxEnergy)
	}
	if t.WavesPerClick <= 0 {
		return errors.New("wavesPerClick must be positive")
	}
	if t.ParticleCount < 0 {
		return errors.New("particleCount must not be negative")
	}
	if t.TargetJitter < 0 || t.MaxCoreSize < 0 {
		return errors.New("targetJitter and maxCoreSize must not be negative")
	}
	if t.ParticleMinSpeed < 0 || t.ParticleSpeedRange < 0 {
		return errors.New("particle speeds must not be negative")
	}
	if t.GrowthInterval <= 0 || t.ExpansionDuration <= 0 {
		return errors.New("growthInterval and expansionDuration must be positive")
	}
	if t.FlashDuration < 0 {
		return errors.New("flashDuration must not be negative")
	}
	return nil
}

// ParseTuning decodes YAML on top of the defaults.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a tuning file. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuning(), fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}
