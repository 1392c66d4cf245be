package system

import (
	"math"

	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/utils"
	"cosmic-timeline/pkg/render"
)

// NewEnergyWave creates a wave travelling from the click point to (tx, ty).
func NewEnergyWave(rng *utils.PRNGService, x, y, tx, ty float64) component.EnergyWave {
	w := component.EnergyWave{
		OriginX:    x,
		OriginY:    y,
		TargetX:    tx,
		TargetY:    ty,
		Speed:      rng.Range(0.005, 0.005),
		Amplitude:  rng.Range(15, 20),
		PhaseShift: rng.Float64() * 2 * math.Pi,
		Width:      rng.Range(2, 2),
	}
	if rng.Coin() {
		w.Hue = rng.Range(render.BlueHueMin, render.BlueHueSpan)
	} else {
		w.Hue = rng.Range(render.OrangeHueMin, render.OrangeHueSpan)
	}
	w.Lightness = rng.Range(0.6, 0.1)
	return w
}

// StepWave advances a wave by one frame. The returned flag is true only on
// the frame the wave completes; completed waves are returned unchanged.
func StepWave(w component.EnergyWave) (component.EnergyWave, bool) {
	if w.Completed {
		return w, false
	}
	w.Progress += w.Speed
	if w.Progress >= 1 {
		w.Completed = true
		return w, true
	}
	return w, false
}

// WavePath samples the visible part of the wave at t = 0, 0.02, ... 1.
func WavePath(w component.EnergyWave) []component.Point {
	steps := int(math.Round(1/config.WavePathStep)) + 1
	pts := make([]component.Point, 0, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) * config.WavePathStep
		px := w.OriginX + (w.TargetX-w.OriginX)*t*w.Progress
		py := w.OriginY + (w.TargetY-w.OriginY)*t*w.Progress
		offset := math.Sin(t*10+w.PhaseShift+w.Progress*10) * w.Amplitude * (1 - t)
		pts = append(pts, component.Point{X: px, Y: py + offset})
	}
	return pts
}

// SweepWaves drops completed waves in place.
func SweepWaves(waves []component.EnergyWave) []component.EnergyWave {
	kept := waves[:0]
	for _, w := range waves {
		if !w.Completed {
			kept = append(kept, w)
		}
	}
	return kept
}
