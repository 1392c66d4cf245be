package app

import (
	"math"
	"testing"
	"time"

	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/event"
	"cosmic-timeline/internal/scheduler"
	"cosmic-timeline/internal/utils"
)

const frame = 16 * time.Millisecond

type fakeSurface struct{ w, h int }

func (s fakeSurface) Size() (int, int) { return s.w, s.h }

// recordingPresenter keeps the last value of every UI property plus the
// history of applied masks.
type recordingPresenter struct {
	instruction   bool
	energy        int
	energyVisible bool
	closeVisible  bool
	coreVisible   bool
	coreSize      float64
	contentActive bool
	flash         bool
	mask          component.Mask
	masks         []component.Mask
}

func (p *recordingPresenter) ShowInstruction(v bool)  { p.instruction = v }
func (p *recordingPresenter) SetEnergy(pct int)       { p.energy = pct }
func (p *recordingPresenter) ShowEnergy(v bool)       { p.energyVisible = v }
func (p *recordingPresenter) ShowClose(v bool)        { p.closeVisible = v }
func (p *recordingPresenter) ShowCore(v bool)         { p.coreVisible = v }
func (p *recordingPresenter) SetCoreSize(d float64)   { p.coreSize = d }
func (p *recordingPresenter) SetContentActive(v bool) { p.contentActive = v }
func (p *recordingPresenter) Flash(on bool)           { p.flash = on }
func (p *recordingPresenter) SetMask(m component.Mask) {
	p.mask = m
	p.masks = append(p.masks, m)
}

type harness struct {
	c      *RevealController
	clock  *scheduler.Clock
	p      *recordingPresenter
	events *event.Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := scheduler.NewClock()
	p := &recordingPresenter{}
	events := event.NewDispatcher()
	c := NewRevealController(fakeSurface{800, 600}, p, clock, utils.NewPRNGService(42), events, config.DefaultTuning())
	if c.Inert() {
		t.Fatal("controller unexpectedly inert")
	}
	c.Show()
	return &harness{c: c, clock: clock, p: p, events: events}
}

func (h *harness) clickCenterish(n int) {
	for i := 0; i < n; i++ {
		h.c.Click(100, 100)
	}
}

// runUntil advances frames until done returns true or max frames pass.
func (h *harness) runUntil(t *testing.T, max int, done func() bool) {
	t.Helper()
	for i := 0; i < max; i++ {
		if done() {
			return
		}
		h.clock.Advance(frame)
	}
	if !done() {
		t.Fatalf("condition not reached after %d frames (phase %s, energy %d)", max, h.c.Phase(), h.c.Energy())
	}
}

func (h *harness) drainWaves(t *testing.T) {
	t.Helper()
	h.runUntil(t, 400, func() bool { return len(h.c.Waves()) == 0 })
}

// toPhase drives the controller with real clicks until it reaches target.
// One click at a time keeps the overshoot past target small.
func (h *harness) toPhase(t *testing.T, target component.Phase) {
	t.Helper()
	for i := 0; i < 100 && h.c.Phase() < target; i++ {
		if h.c.Phase() < component.PhaseExploding {
			h.c.Click(100, 100)
		}
		h.runUntil(t, 400, func() bool {
			return len(h.c.Waves()) == 0 || h.c.Phase() >= target
		})
	}
	if h.c.Phase() != target {
		t.Fatalf("could not reach %s, stuck in %s", target, h.c.Phase())
	}
}

func assertIdle(t *testing.T, h *harness) {
	t.Helper()
	c := h.c
	if c.Phase() != component.PhaseIdle {
		t.Errorf("phase: got %s, want idle", c.Phase())
	}
	if c.Energy() != 0 {
		t.Errorf("energy: got %d, want 0", c.Energy())
	}
	if c.ClipRadius() != 0 {
		t.Errorf("clip radius: got %v, want 0", c.ClipRadius())
	}
	if n := len(c.Waves()); n != 0 {
		t.Errorf("waves: got %d, want 0", n)
	}
	if n := len(c.Particles()); n != 0 {
		t.Errorf("particles: got %d, want 0", n)
	}
	if _, ok := c.Shockwave(); ok {
		t.Error("shockwave still present")
	}
	if h.p.mask.Radius != 0 {
		t.Errorf("mask radius: got %v, want 0", h.p.mask.Radius)
	}
	if h.p.closeVisible || h.p.coreVisible || h.p.energyVisible || h.p.contentActive {
		t.Error("affordances not restored after reset")
	}
}

func TestShow_InitialState(t *testing.T) {
	h := newHarness(t)
	assertIdle(t, h)
	if !h.p.instruction {
		t.Error("instruction should be visible after Show")
	}
	cx, cy := h.c.Center()
	if cx != 400 || cy != 300 {
		t.Errorf("center: got (%v, %v), want (400, 300)", cx, cy)
	}
	if got, want := h.c.MaxClipRadius(), 500.0; got != want {
		t.Errorf("max clip radius: got %v, want %v", got, want)
	}
	if h.clock.Pending() != 1 {
		t.Errorf("pending callbacks: got %d, want 1 (the frame loop)", h.clock.Pending())
	}
}

func TestShow_IsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseGrowingCore)

	h.c.Show()
	h.c.Show()

	assertIdle(t, h)
	if h.clock.Pending() != 1 {
		t.Errorf("pending callbacks after repeated Show: got %d, want 1", h.clock.Pending())
	}
}

func TestClick_FirstClickStartsCollecting(t *testing.T) {
	h := newHarness(t)
	var changes []event.PhaseChange
	h.events.Subscribe(event.PhaseChanged, event.ListenerFunc(func(e event.Event) {
		changes = append(changes, e.Data.(event.PhaseChange))
	}))

	h.c.Click(10, 20)

	if h.c.Phase() != component.PhaseCollecting {
		t.Fatalf("phase: got %s, want collecting", h.c.Phase())
	}
	if h.p.instruction {
		t.Error("instruction should be hidden after the first click")
	}
	if len(changes) != 1 || changes[0].From != component.PhaseIdle || changes[0].To != component.PhaseCollecting {
		t.Errorf("phase events: got %+v", changes)
	}

	waves := h.c.Waves()
	if len(waves) != 3 {
		t.Fatalf("waves: got %d, want 3", len(waves))
	}
	for i, w := range waves {
		if w.OriginX != 10 || w.OriginY != 20 {
			t.Errorf("wave %d origin: got (%v, %v)", i, w.OriginX, w.OriginY)
		}
		if math.Abs(w.TargetX-400) > 10 || math.Abs(w.TargetY-300) > 10 {
			t.Errorf("wave %d target (%v, %v) outside jitter", i, w.TargetX, w.TargetY)
		}
	}
}

func TestClick_IgnoredWhileHidden(t *testing.T) {
	h := newHarness(t)
	h.c.Hide()
	h.c.Click(10, 10)
	if h.c.Phase() != component.PhaseIdle || len(h.c.Waves()) != 0 {
		t.Error("click on a hidden controller changed state")
	}
}

// Nine completed waves leave the controller collecting at energy 9.
func TestEnergy_BelowThresholdKeepsCollecting(t *testing.T) {
	h := newHarness(t)
	h.clickCenterish(3)
	h.drainWaves(t)

	if h.c.Energy() != 9 {
		t.Errorf("energy: got %d, want 9", h.c.Energy())
	}
	if h.c.Phase() != component.PhaseCollecting {
		t.Errorf("phase: got %s, want collecting", h.c.Phase())
	}
	if h.p.energy != 9 || !h.p.energyVisible {
		t.Errorf("readout: got %d visible=%v, want 9 visible", h.p.energy, h.p.energyVisible)
	}
}

// The core appears exactly when energy reaches 25.
func TestEnergy_ThresholdStartsCoreGrowth(t *testing.T) {
	h := newHarness(t)
	h.clickCenterish(3)
	h.drainWaves(t)

	var energyAtTransition = -1
	h.events.Subscribe(event.PhaseChanged, event.ListenerFunc(func(e event.Event) {
		if e.Data.(event.PhaseChange).To == component.PhaseGrowingCore {
			energyAtTransition = h.c.Energy()
		}
	}))

	h.clickCenterish(6)
	for i := 0; i < 400 && len(h.c.Waves()) > 0; i++ {
		h.clock.Advance(frame)
		e, ph := h.c.Energy(), h.c.Phase()
		if e < 25 && ph != component.PhaseCollecting {
			t.Fatalf("phase %s with energy %d", ph, e)
		}
		if e >= 25 && ph != component.PhaseGrowingCore {
			t.Fatalf("phase %s with energy %d, want growing-core", ph, e)
		}
	}
	if energyAtTransition != 25 {
		t.Errorf("energy at transition: got %d, want 25", energyAtTransition)
	}
	if !h.p.coreVisible || !h.p.contentActive {
		t.Error("core and content layer should be active in growing-core")
	}
}

func TestCoreGrowth_MapsEnergyToDiameter(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseGrowingCore)
	h.drainWaves(t)

	e := h.c.Energy()
	h.clock.Advance(100 * time.Millisecond)

	want := math.Min(200, float64(e-25)/75*200)
	if math.Abs(h.p.coreSize-want) > 1e-9 {
		t.Errorf("core size: got %v, want %v", h.p.coreSize, want)
	}
	if math.Abs(h.c.ClipRadius()-want/2) > 1e-9 {
		t.Errorf("clip radius: got %v, want %v", h.c.ClipRadius(), want/2)
	}
	if h.p.mask.CenterX != 400 || h.p.mask.CenterY != 300 {
		t.Errorf("mask center: got (%v, %v)", h.p.mask.CenterX, h.p.mask.CenterY)
	}
}

func TestExplosion_SpawnsParticlesAndShockwave(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseGrowingCore)

	h.c.energy = 100
	h.c.onEnergyChanged()

	if h.c.Phase() != component.PhaseExploding {
		t.Fatalf("phase: got %s, want exploding", h.c.Phase())
	}
	if n := len(h.c.Particles()); n != 500 {
		t.Errorf("particles: got %d, want 500", n)
	}
	sw, ok := h.c.Shockwave()
	if !ok {
		t.Fatal("expected a shockwave")
	}
	if sw.Radius != 0 || sw.Opacity != 1 {
		t.Errorf("shockwave: got radius %v opacity %v, want 0 and 1", sw.Radius, sw.Opacity)
	}
	if math.Abs(sw.MaxRadius-560) > 1e-9 {
		t.Errorf("shockwave max radius: got %v, want %v", sw.MaxRadius, 0.7*800)
	}
	for _, p := range h.c.Particles() {
		if p.X != 400 || p.Y != 300 {
			t.Fatalf("particle spawned at (%v, %v), want center", p.X, p.Y)
		}
	}
	if h.p.coreVisible {
		t.Error("core should be hidden once the explosion starts")
	}
	if !h.p.flash {
		t.Error("flash should be on at explosion start")
	}
	h.clock.Advance(100 * time.Millisecond)
	if h.p.flash {
		t.Error("flash should be off after 100ms")
	}
}

func TestExplosion_ReachedThroughClicks(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseExploding)

	if h.c.Energy() != 100 {
		t.Errorf("energy: got %d, want 100", h.c.Energy())
	}
	if n := len(h.c.Particles()); n != 500 {
		t.Errorf("particles after the explosion frame: got %d, want 500", n)
	}
	if _, ok := h.c.Shockwave(); !ok {
		t.Error("expected a live shockwave")
	}
}

// The clip expansion is time based and ends in complete.
func TestClipExpansion_Completes(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseGrowingCore)
	h.clock.Advance(100 * time.Millisecond)

	revealed := 0
	h.events.Subscribe(event.TimelineRevealed, event.ListenerFunc(func(event.Event) { revealed++ }))

	h.c.energy = 100
	h.c.onEnergyChanged()
	start := h.c.ClipRadius()

	h.clock.Advance(1000 * time.Millisecond)
	want := start + (h.c.MaxClipRadius()-start)*0.875
	if math.Abs(h.c.ClipRadius()-want) > 1e-9 {
		t.Errorf("clip radius at 1s: got %v, want %v", h.c.ClipRadius(), want)
	}
	if h.c.Phase() != component.PhaseExploding {
		t.Errorf("phase at 1s: got %s, want exploding", h.c.Phase())
	}

	h.clock.Advance(1000 * time.Millisecond)
	if math.Abs(h.c.ClipRadius()-h.c.MaxClipRadius()) > 1e-9 {
		t.Errorf("clip radius at 2s: got %v, want %v", h.c.ClipRadius(), h.c.MaxClipRadius())
	}
	if h.c.Phase() != component.PhaseComplete {
		t.Errorf("phase at 2s: got %s, want complete", h.c.Phase())
	}
	if !h.p.closeVisible {
		t.Error("close affordance should be visible")
	}
	if revealed != 1 {
		t.Errorf("revealed events: got %d, want 1", revealed)
	}
}

func TestClipExpansion_IgnoresFrameRate(t *testing.T) {
	slow, fast := newHarness(t), newHarness(t)
	for _, h := range []*harness{slow, fast} {
		h.toPhase(t, component.PhaseGrowingCore)
		h.c.energy = 100
		h.c.onEnergyChanged()
	}

	slow.clock.Step(50*time.Millisecond, 20)
	fast.clock.Step(10*time.Millisecond, 100)
	if math.Abs(slow.c.ClipRadius()-fast.c.ClipRadius()) > 1e-9 {
		t.Errorf("clip radius at 1s: slow %v, fast %v", slow.c.ClipRadius(), fast.c.ClipRadius())
	}

	slow.clock.Step(50*time.Millisecond, 20)
	fast.clock.Step(10*time.Millisecond, 100)
	if slow.c.Phase() != component.PhaseComplete || fast.c.Phase() != component.PhaseComplete {
		t.Errorf("phases at 2s: slow %s, fast %s", slow.c.Phase(), fast.c.Phase())
	}
}

// Energy, phase order and clip radius over a full run.
func TestFullRun_Invariants(t *testing.T) {
	h := newHarness(t)
	allowed := map[component.Phase]component.Phase{
		component.PhaseIdle:        component.PhaseCollecting,
		component.PhaseCollecting:  component.PhaseGrowingCore,
		component.PhaseGrowingCore: component.PhaseExploding,
		component.PhaseExploding:   component.PhaseComplete,
	}
	h.events.Subscribe(event.PhaseChanged, event.ListenerFunc(func(e event.Event) {
		pc := e.Data.(event.PhaseChange)
		if allowed[pc.From] != pc.To {
			t.Errorf("illegal transition %s -> %s", pc.From, pc.To)
		}
	}))

	lastEnergy, lastClip := 0, 0.0
	for i := 0; i < 2000 && h.c.Phase() != component.PhaseComplete; i++ {
		if i%4 == 0 {
			h.c.Click(float64(i%800), float64(i%600))
		}
		h.clock.Advance(frame)

		if e := h.c.Energy(); e < lastEnergy || e > 100 {
			t.Fatalf("energy went from %d to %d", lastEnergy, e)
		}
		if r := h.c.ClipRadius(); r < lastClip {
			t.Fatalf("clip radius decreased from %v to %v", lastClip, r)
		}
		lastEnergy, lastClip = h.c.Energy(), h.c.ClipRadius()
	}
	if h.c.Phase() != component.PhaseComplete {
		t.Fatalf("run did not complete, phase %s", h.c.Phase())
	}
	for i := 1; i < len(h.p.masks); i++ {
		if h.p.masks[i].Radius < h.p.masks[i-1].Radius {
			t.Fatalf("mask %d shrank: %v -> %v", i, h.p.masks[i-1].Radius, h.p.masks[i].Radius)
		}
	}
}

// Full energy swallows clicks.
func TestClick_SaturatedEnergySpawnsNothing(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseExploding)
	before := len(h.c.Waves())
	h.clickCenterish(5)
	if got := len(h.c.Waves()); got != before {
		t.Errorf("waves: got %d, want %d", got, before)
	}
	if h.c.Energy() != 100 {
		t.Errorf("energy: got %d, want 100", h.c.Energy())
	}

	h.toPhase(t, component.PhaseComplete)
	before = len(h.c.Waves())
	h.clickCenterish(5)
	if got := len(h.c.Waves()); got != before {
		t.Errorf("waves after complete: got %d, want %d", got, before)
	}
}

// Reset yields the same state from every phase.
func TestReset_FromEveryPhase(t *testing.T) {
	phases := []component.Phase{
		component.PhaseIdle,
		component.PhaseCollecting,
		component.PhaseGrowingCore,
		component.PhaseExploding,
		component.PhaseComplete,
	}
	for _, ph := range phases {
		t.Run(ph.String(), func(t *testing.T) {
			h := newHarness(t)
			if ph != component.PhaseIdle {
				h.toPhase(t, ph)
			}
			h.c.Reset()
			assertIdle(t, h)
			if !h.p.instruction {
				t.Error("instruction should be visible again")
			}
			if h.clock.Pending() != 1 {
				t.Errorf("pending callbacks: got %d, want 1", h.clock.Pending())
			}
			// Nothing stale may fire afterwards.
			h.clock.Step(frame, 200)
			assertIdle(t, h)
		})
	}
}

func TestHide_StopsEverything(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseExploding)
	hidden := false
	h.events.Subscribe(event.TimelineHidden, event.ListenerFunc(func(event.Event) { hidden = true }))

	h.c.Hide()

	if h.c.Visible() {
		t.Error("controller still visible")
	}
	if h.clock.Pending() != 0 {
		t.Errorf("pending callbacks after Hide: got %d, want 0", h.clock.Pending())
	}
	if !hidden {
		t.Error("expected a TimelineHidden event")
	}
	assertIdle(t, h)
	if h.p.instruction {
		t.Error("instruction should be hidden while the section is hidden")
	}
}

func TestResize_ReappliesMaskAtNewCenter(t *testing.T) {
	h := newHarness(t)
	h.toPhase(t, component.PhaseGrowingCore)
	h.clock.Advance(100 * time.Millisecond)
	r := h.c.ClipRadius()

	h.c.Resize(1000, 1000)

	if h.p.mask.CenterX != 500 || h.p.mask.CenterY != 500 {
		t.Errorf("mask center: got (%v, %v), want (500, 500)", h.p.mask.CenterX, h.p.mask.CenterY)
	}
	if h.p.mask.Radius != r {
		t.Errorf("mask radius: got %v, want %v", h.p.mask.Radius, r)
	}
}

func TestResize_DuringExplosionMovesTarget(t *testing.T) {
	cases := map[string]struct{ w, h int }{
		"grow":   {1000, 1000},
		"shrink": {200, 150},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			h.toPhase(t, component.PhaseGrowingCore)
			h.clock.Advance(100 * time.Millisecond)
			h.c.energy = 100
			h.c.onEnergyChanged()
			start := h.c.ClipRadius()

			h.clock.Advance(500 * time.Millisecond)
			before := h.c.ClipRadius()

			h.c.Resize(tc.w, tc.h)
			cx, cy := float64(tc.w)/2, float64(tc.h)/2
			if h.p.mask.CenterX != cx || h.p.mask.CenterY != cy {
				t.Errorf("mask center: got (%v, %v), want (%v, %v)", h.p.mask.CenterX, h.p.mask.CenterY, cx, cy)
			}
			if h.p.mask.Radius != before {
				t.Errorf("mask radius after resize: got %v, want %v", h.p.mask.Radius, before)
			}

			prev := h.c.ClipRadius()
			for i := 0; i < 100; i++ {
				h.clock.Advance(frame)
				if r := h.c.ClipRadius(); r < prev {
					t.Fatalf("clip radius shrank at frame %d: %v -> %v", i, prev, r)
				}
				prev = h.c.ClipRadius()
			}

			if h.c.Phase() != component.PhaseComplete {
				t.Fatalf("phase: got %s, want complete", h.c.Phase())
			}
			want := math.Max(math.Max(h.c.MaxClipRadius(), start), before)
			if math.Abs(h.c.ClipRadius()-want) > 1e-9 {
				t.Errorf("final clip radius: got %v, want %v", h.c.ClipRadius(), want)
			}
			if h.p.mask.CenterX != cx || h.p.mask.CenterY != cy {
				t.Errorf("final mask center: got (%v, %v), want (%v, %v)", h.p.mask.CenterX, h.p.mask.CenterY, cx, cy)
			}
		})
	}
}

func TestResize_IdleDoesNotTouchMask(t *testing.T) {
	h := newHarness(t)
	n := len(h.p.masks)
	h.c.Resize(1024, 768)
	if len(h.p.masks) != n {
		t.Error("mask re-applied while idle")
	}
}

func TestResize_ZeroAreaDegrades(t *testing.T) {
	h := newHarness(t)
	h.c.Resize(0, 0)
	cx, cy := h.c.Center()
	if cx != 0 || cy != 0 || h.c.MaxClipRadius() != 0 {
		t.Errorf("geometry: center (%v, %v) max %v, want zeros", cx, cy, h.c.MaxClipRadius())
	}
	h.c.Click(0, 0)
	h.clock.Step(frame, 10)

	h.c.Resize(-5, -5)
	if h.c.MaxClipRadius() != 0 {
		t.Errorf("negative size: max clip %v, want 0", h.c.MaxClipRadius())
	}
}

func TestNewRevealController_MissingCollaboratorsIsInert(t *testing.T) {
	clock := scheduler.NewClock()
	c := NewRevealController(nil, nil, clock, nil, nil, config.DefaultTuning())
	if !c.Inert() {
		t.Fatal("expected inert controller")
	}
	c.Show()
	c.Click(1, 1)
	c.Resize(100, 100)
	c.Frame()
	c.Reset()
	c.Hide()
	c.Draw(nil)
	if c.Phase() != component.PhaseIdle || c.Visible() || clock.Pending() != 0 {
		t.Error("inert controller changed state or scheduled work")
	}
}

func TestSetTuning_AppliesOnReset(t *testing.T) {
	h := newHarness(t)
	tuning := config.DefaultTuning()
	tuning.WavesPerClick = 5
	h.c.SetTuning(tuning)

	h.c.Click(0, 0)
	if n := len(h.c.Waves()); n != 3 {
		t.Errorf("waves before reset: got %d, want 3", n)
	}
	h.c.Reset()
	h.c.Click(0, 0)
	if n := len(h.c.Waves()); n != 5 {
		t.Errorf("waves after reset: got %d, want 5", n)
	}

	bad := config.DefaultTuning()
	bad.CoreThreshold = 0
	h.c.SetTuning(bad)
	h.c.Reset()
	if h.c.Tuning().CoreThreshold != 25 {
		t.Errorf("invalid tuning was applied")
	}
}

func TestDraw_TrailFadesPerSimulationFrame(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 3; i++ {
		h.c.Frame()
	}
	if got := h.c.takeTrailSteps(); got != 3 {
		t.Errorf("fades after 3 frames: got %d, want 3", got)
	}
	// Повторная отрисовка без кадра симуляции не затемняет слой.
	if got := h.c.takeTrailSteps(); got != 0 {
		t.Errorf("fades without a frame: got %d, want 0", got)
	}

	for i := 0; i < 20; i++ {
		h.c.Frame()
	}
	if got := h.c.takeTrailSteps(); got != config.MaxTrailFades {
		t.Errorf("fades after a long stall: got %d, want %d", got, config.MaxTrailFades)
	}

	h.c.Frame()
	h.c.Reset()
	if got := h.c.takeTrailSteps(); got != 0 {
		t.Errorf("fades after reset: got %d, want 0", got)
	}
}
