// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyTimeline is returned when a file parses but holds no entries.
var ErrEmptyTimeline = errors.New("timeline has no entries")

// ParseTimeline decodes timeline content. YAML is a superset of JSON, so
// the static JSON files of the web version load unchanged.
func ParseTimeline(data []byte) (*Timeline, error) {
	var tl Timeline
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timeline: %w", err)
	}
	if len(tl.Entries) == 0 {
		return nil, ErrEmptyTimeline
	}
	for i, e := range tl.Entries {
		if e.Title == "" {
			return nil, fmt.Errorf("timeline entry %d: missing title", i)
		}
	}
	return &tl, nil
}

// LoadTimeline reads the timeline content file.
func LoadTimeline(path string) (*Timeline, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline file: %w", err)
	}
	tl, err := ParseTimeline(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d timeline entries from %s", len(tl.Entries), path)
	return tl, nil
}

// LoadTimelineOr falls back to the embedded default when path is empty or
// unreadable.
func LoadTimelineOr(path string, fallback []byte) (*Timeline, error) {
	if path != "" {
		tl, err := LoadTimeline(path)
		if err == nil {
			return tl, nil
		}
		log.Printf("Warning: %v (using embedded timeline)", err)
	}
	return ParseTimeline(fallback)
}
