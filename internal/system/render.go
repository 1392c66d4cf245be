package system

import (
	"image/color"

	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует волны, частицы и ударную волну на слое со шлейфом
type RenderSystem struct {
	trail *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Layer returns the trail layer sized to w×h, recreating it on resize.
func (s *RenderSystem) Layer(w, h int) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	if s.trail != nil {
		b := s.trail.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return s.trail
		}
		s.trail.Deallocate()
	}
	s.trail = ebiten.NewImage(w, h)
	return s.trail
}

// Clear wipes the trail layer completely.
func (s *RenderSystem) Clear() {
	if s.trail != nil {
		s.trail.Clear()
	}
}

// FadeTrail paints a low-opacity dark rectangle so older strokes fade out
// instead of being cleared.
func FadeTrail(dst *ebiten.Image) {
	b := dst.Bounds()
	fade := render.WithAlpha(config.BackgroundColor, config.TrailAlpha)
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), fade, false)
}

func DrawWave(dst *ebiten.Image, w component.EnergyWave) {
	if w.Completed {
		return
	}
	glow := render.HSLA(w.Hue, 1, 0.7, 0.35)
	stroke := render.HSLA(w.Hue, 1, w.Lightness, 1)
	pts := WavePath(w)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(w.Width+config.WaveShadowWidth), glow, true)
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(w.Width), stroke, true)
	}
}

func DrawParticle(dst *ebiten.Image, p component.ExplosionParticle) {
	if !ParticleAlive(p) {
		return
	}
	glow := render.HSLA(p.Hue, 1, 0.7, p.Opacity*0.3)
	fill := render.HSLA(p.Hue, 1, 0.7, p.Opacity)
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size+config.ParticleGlowSize), glow, true)
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size), fill, true)
}

func DrawShockwave(dst *ebiten.Image, sw component.Shockwave) {
	if sw.Radius <= 0 {
		return
	}
	width := config.ShockwaveBaseWidth + (1-sw.Opacity)*config.ShockwaveExtraWidth
	ring := render.WithAlpha(color.RGBA{255, 255, 255, 255}, sw.Opacity*0.8)
	halo := render.WithAlpha(color.RGBA{255, 255, 255, 255}, sw.Opacity*0.25)
	vector.StrokeCircle(dst, float32(sw.X), float32(sw.Y), float32(sw.Radius), float32(width*2), halo, true)
	vector.StrokeCircle(dst, float32(sw.X), float32(sw.Y), float32(sw.Radius), float32(width), ring, true)
}
