package system

import (
	"math"

	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/utils"
	"cosmic-timeline/pkg/render"
)

// NewExplosionParticle launches a particle from (x, y) at the given angle
// and speed, colored from one of the two wave hue families.
func NewExplosionParticle(rng *utils.PRNGService, x, y, angle, speed float64) component.ExplosionParticle {
	p := component.ExplosionParticle{
		X:         x,
		Y:         y,
		VX:        math.Cos(angle) * speed,
		VY:        math.Sin(angle) * speed,
		Size:      rng.Range(2, 3),
		Opacity:   1,
		FadeSpeed: rng.Range(0.01, 0.01),
		Life:      1,
	}
	if rng.Coin() {
		p.Hue = rng.Range(render.BlueHueMin, render.BlueHueSpan)
	} else {
		p.Hue = rng.Range(render.OrangeHueMin, render.OrangeHueSpan)
	}
	return p
}

// StepParticle moves a particle one frame. While young it is pulled weakly
// toward (cx, cy).
func StepParticle(p component.ExplosionParticle, cx, cy float64) component.ExplosionParticle {
	p.X += p.VX
	p.Y += p.VY
	p.Opacity -= p.FadeSpeed
	p.Size *= config.ParticleShrink

	if p.Life > config.ParticlePullLife {
		ux, uy, dist := utils.Normalize(cx-p.X, cy-p.Y)
		if dist > config.ParticlePullDeadZone {
			p.VX += ux * config.ParticlePull
			p.VY += uy * config.ParticlePull
		}
	}

	p.Life -= p.FadeSpeed * 0.5
	return p
}

func ParticleAlive(p component.ExplosionParticle) bool {
	return p.Opacity > 0 && p.Size > config.ParticleMinSize
}

// StepParticles steps every particle and drops the dead ones in place.
func StepParticles(ps []component.ExplosionParticle, cx, cy float64) []component.ExplosionParticle {
	kept := ps[:0]
	for _, p := range ps {
		p = StepParticle(p, cx, cy)
		if ParticleAlive(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// NewShockwave creates the ring for a surface of size w×h.
func NewShockwave(cx, cy, w, h float64) component.Shockwave {
	return component.Shockwave{
		X:         cx,
		Y:         cy,
		MaxRadius: math.Max(w, h) * config.ShockwaveRadiusRatio,
		Speed:     config.ShockwaveSpeed,
		Opacity:   1,
	}
}

// StepShockwave grows the ring; the flag reports whether it is still alive.
func StepShockwave(s component.Shockwave) (component.Shockwave, bool) {
	s.Radius += s.Speed
	s.Opacity -= config.ShockwaveOpacityDrop
	return s, s.Opacity > 0 && s.Radius <= s.MaxRadius
}
