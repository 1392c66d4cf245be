// Package assets bundles the default data files into the binary.
package assets

import _ "embed"

//go:embed data/timeline.yaml
var TimelineYAML []byte

//go:embed data/tuning.yaml
var TuningYAML []byte
