package system

import (
	"math"
	"testing"

	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/utils"
)

func TestNewExplosionParticle(t *testing.T) {
	rng := utils.NewPRNGService(3)
	p := NewExplosionParticle(rng, 10, 20, math.Pi/2, 8)
	if p.X != 10 || p.Y != 20 {
		t.Errorf("position: got (%v, %v), want (10, 20)", p.X, p.Y)
	}
	if math.Abs(p.VX) > 1e-9 || math.Abs(p.VY-8) > 1e-9 {
		t.Errorf("velocity: got (%v, %v), want (0, 8)", p.VX, p.VY)
	}
	if p.Opacity != 1 || p.Life != 1 {
		t.Errorf("opacity/life: got %v/%v, want 1/1", p.Opacity, p.Life)
	}
	if p.Size < 2 || p.Size >= 5 {
		t.Errorf("size %v out of range", p.Size)
	}
	if p.FadeSpeed < 0.01 || p.FadeSpeed >= 0.02 {
		t.Errorf("fade speed %v out of range", p.FadeSpeed)
	}
}

func TestStepParticle_PullsTowardCenterWhileYoung(t *testing.T) {
	p := component.ExplosionParticle{X: 100, Y: 0, Size: 3, Opacity: 1, FadeSpeed: 0.02, Life: 1}
	got := StepParticle(p, 0, 0)

	if math.Abs(got.VX-(-0.005)) > 1e-12 || got.VY != 0 {
		t.Errorf("velocity: got (%v, %v), want (-0.005, 0)", got.VX, got.VY)
	}
	if math.Abs(got.Opacity-0.98) > 1e-12 {
		t.Errorf("opacity: got %v, want 0.98", got.Opacity)
	}
	if math.Abs(got.Size-2.97) > 1e-12 {
		t.Errorf("size: got %v, want 2.97", got.Size)
	}
	if math.Abs(got.Life-0.99) > 1e-12 {
		t.Errorf("life: got %v, want 0.99", got.Life)
	}
}

func TestStepParticle_NoPull(t *testing.T) {
	cases := []struct {
		name string
		p    component.ExplosionParticle
	}{
		{"old", component.ExplosionParticle{X: 100, Size: 3, Opacity: 1, FadeSpeed: 0.01, Life: 0.5}},
		{"near center", component.ExplosionParticle{X: 5, Size: 3, Opacity: 1, FadeSpeed: 0.01, Life: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StepParticle(tc.p, 0, 0)
			if got.VX != 0 || got.VY != 0 {
				t.Errorf("velocity: got (%v, %v), want unchanged", got.VX, got.VY)
			}
		})
	}
}

func TestStepParticles_DropsDead(t *testing.T) {
	ps := []component.ExplosionParticle{
		{Size: 3, Opacity: 1, FadeSpeed: 0.01, Life: 1},
		{Size: 3, Opacity: 0.005, FadeSpeed: 0.01, Life: 1},
		{Size: 0.1, Opacity: 1, FadeSpeed: 0.01, Life: 1},
	}
	got := StepParticles(ps, 0, 0)
	if len(got) != 1 {
		t.Fatalf("alive: got %d, want 1", len(got))
	}
	if !ParticleAlive(got[0]) {
		t.Error("survivor reported dead")
	}
}

func TestShockwave_GrowsAndFades(t *testing.T) {
	s := NewShockwave(400, 300, 800, 600)
	if s.Radius != 0 || s.Opacity != 1 || s.Speed != 10 {
		t.Fatalf("new shockwave: %+v", s)
	}
	if math.Abs(s.MaxRadius-560) > 1e-9 {
		t.Errorf("max radius: got %v, want 560", s.MaxRadius)
	}

	steps := 0
	for alive := true; alive; steps++ {
		s, alive = StepShockwave(s)
		if steps > 1000 {
			t.Fatal("shockwave never died")
		}
	}
	// 560 / 10 = 56 growing steps, the 57th overshoots.
	if steps != 57 {
		t.Errorf("lifetime: got %d steps, want 57", steps)
	}
}
