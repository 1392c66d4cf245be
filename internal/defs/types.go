// internal/defs/types.go
package defs

// TimelineEntry is one milestone shown in the revealed timeline.
type TimelineEntry struct {
	Year        string `yaml:"year" json:"year"`
	Title       string `yaml:"title" json:"title"`
	Subtitle    string `yaml:"subtitle" json:"subtitle"`
	Description string `yaml:"description" json:"description"`
}

// Timeline is the whole content layer.
type Timeline struct {
	Title   string          `yaml:"title" json:"title"`
	Entries []TimelineEntry `yaml:"entries" json:"entries"`
}
