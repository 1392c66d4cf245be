package app

import (
	"log"
	"math"
	"time"

	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/event"
	"cosmic-timeline/internal/interfaces"
	"cosmic-timeline/internal/scheduler"
	"cosmic-timeline/internal/system"
	"cosmic-timeline/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// RevealController runs the click-to-reveal sequence: clicks send energy
// waves to the center, enough energy grows a black hole core, a full core
// explodes and the timeline content is uncovered through a widening mask.
//
// All methods must be called from the same goroutine as the scheduler.
type RevealController struct {
	surface   interfaces.Surface
	presenter interfaces.Presenter
	sched     scheduler.Scheduler
	rng       *utils.PRNGService
	events    *event.Dispatcher
	renderer  *system.RenderSystem

	tuning        config.Tuning
	pendingTuning *config.Tuning

	inert   bool
	visible bool

	phase     component.Phase
	energy    int
	waves     []component.EnergyWave
	particles []component.ExplosionParticle
	shockwave component.Shockwave
	hasWave   bool

	width, height    float64
	centerX, centerY float64
	clipRadius       float64
	maxClipRadius    float64

	// Scheduled work. generation is bumped on every reset so callbacks
	// that slipped past Cancel recognise they are stale.
	generation   uint64
	frameHandle  scheduler.Handle
	growthHandle scheduler.Handle
	expandHandle scheduler.Handle
	flashHandle  scheduler.Handle
	expandStart  time.Duration
	expandFrom   float64

	// Кадры симуляции с прошлой отрисовки; слой затухает по разу на кадр.
	trailSteps int
}

// NewRevealController wires a controller. With a nil surface, presenter or
// scheduler the controller stays inert and every call is a no-op.
func NewRevealController(surface interfaces.Surface, presenter interfaces.Presenter, sched scheduler.Scheduler, rng *utils.PRNGService, events *event.Dispatcher, tuning config.Tuning) *RevealController {
	c := &RevealController{
		surface:   surface,
		presenter: presenter,
		sched:     sched,
		rng:       rng,
		events:    events,
		renderer:  system.NewRenderSystem(),
		tuning:    tuning,
	}
	if surface == nil || presenter == nil || sched == nil {
		log.Printf("[RevealController] missing surface, presenter or scheduler; reveal disabled")
		c.inert = true
		return c
	}
	if c.rng == nil {
		c.rng = utils.NewPRNGService(0)
	}
	if err := c.tuning.Validate(); err != nil {
		log.Printf("[RevealController] invalid tuning (%v), using defaults", err)
		c.tuning = config.DefaultTuning()
	}
	w, h := surface.Size()
	c.Resize(w, h)
	return c
}

func (c *RevealController) Phase() component.Phase { return c.phase }
func (c *RevealController) Energy() int            { return c.energy }
func (c *RevealController) ClipRadius() float64    { return c.clipRadius }
func (c *RevealController) MaxClipRadius() float64 { return c.maxClipRadius }
func (c *RevealController) Visible() bool          { return c.visible }
func (c *RevealController) Inert() bool            { return c.inert }
func (c *RevealController) Tuning() config.Tuning  { return c.tuning }

func (c *RevealController) Center() (float64, float64) { return c.centerX, c.centerY }

func (c *RevealController) Waves() []component.EnergyWave {
	return append([]component.EnergyWave(nil), c.waves...)
}

func (c *RevealController) Particles() []component.ExplosionParticle {
	return append([]component.ExplosionParticle(nil), c.particles...)
}

func (c *RevealController) Shockwave() (component.Shockwave, bool) {
	return c.shockwave, c.hasWave
}

// SetTuning queues new tuning; it takes effect on the next reset so a
// running sequence never sees its thresholds move.
func (c *RevealController) SetTuning(t config.Tuning) {
	if err := t.Validate(); err != nil {
		log.Printf("[RevealController] ignoring invalid tuning: %v", err)
		return
	}
	c.pendingTuning = &t
}

// Show starts a fresh sequence. Calling it while shown restarts cleanly.
func (c *RevealController) Show() {
	if c.inert {
		return
	}
	c.visible = true
	c.Reset()
}

// Hide stops the sequence and closes the mask. Safe from any phase.
func (c *RevealController) Hide() {
	if c.inert {
		return
	}
	c.cancelScheduled()
	c.resetState()
	c.visible = false
	c.presenter.ShowInstruction(false)
	c.events.Dispatch(event.Event{Type: event.TimelineHidden})
}

// Reset is the full reset bound to the close affordance: everything back
// to idle and the render loop restarted.
func (c *RevealController) Reset() {
	if c.inert || !c.visible {
		return
	}
	c.cancelScheduled()
	c.resetState()
	c.scheduleFrame()
}

func (c *RevealController) cancelScheduled() {
	c.generation++
	for _, h := range []*scheduler.Handle{&c.frameHandle, &c.growthHandle, &c.expandHandle, &c.flashHandle} {
		if *h != 0 {
			c.sched.Cancel(*h)
			*h = 0
		}
	}
}

func (c *RevealController) resetState() {
	if c.pendingTuning != nil {
		c.tuning = *c.pendingTuning
		c.pendingTuning = nil
	}
	prev := c.phase

	c.waves = c.waves[:0]
	c.particles = c.particles[:0]
	c.shockwave = component.Shockwave{}
	c.hasWave = false
	c.energy = 0
	c.phase = component.PhaseIdle
	c.clipRadius = 0
	c.trailSteps = 0
	c.renderer.Clear()

	c.presenter.ShowInstruction(true)
	c.presenter.ShowEnergy(false)
	c.presenter.SetContentActive(false)
	c.presenter.ShowClose(false)
	c.presenter.ShowCore(false)
	c.presenter.SetCoreSize(0)
	c.presenter.Flash(false)
	c.applyMask()

	if prev != component.PhaseIdle {
		c.events.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChange{From: prev, To: component.PhaseIdle}})
	}
}

// Resize recomputes the surface geometry. A zero-area surface yields zero
// geometry rather than an error.
func (c *RevealController) Resize(w, h int) {
	if c.inert {
		return
	}
	c.width = math.Max(0, float64(w))
	c.height = math.Max(0, float64(h))
	c.centerX = c.width / 2
	c.centerY = c.height / 2
	c.maxClipRadius = utils.Hypot2(c.width, c.height)

	if c.phase == component.PhaseGrowingCore || c.phase == component.PhaseExploding {
		c.applyMask()
	}
}

// Click handles a pointer click on the surface at (x, y).
func (c *RevealController) Click(x, y float64) {
	if c.inert || !c.visible {
		return
	}
	if c.phase == component.PhaseComplete || c.energy >= c.tuning.MaxEnergy {
		return
	}
	if c.phase == component.PhaseIdle {
		c.setPhase(component.PhaseCollecting)
		c.presenter.ShowInstruction(false)
	}
	jitter := c.tuning.TargetJitter
	for i := 0; i < c.tuning.WavesPerClick; i++ {
		tx := c.centerX + c.rng.Jitter(jitter)
		ty := c.centerY + c.rng.Jitter(jitter)
		c.waves = append(c.waves, system.NewEnergyWave(c.rng, x, y, tx, ty))
	}
}

func (c *RevealController) scheduleFrame() {
	gen := c.generation
	c.frameHandle = c.sched.RequestFrame(func() {
		if gen != c.generation {
			return
		}
		c.frameHandle = 0
		c.Frame()
		c.scheduleFrame()
	})
}

// Frame advances the simulation by one display frame.
func (c *RevealController) Frame() {
	if c.inert {
		return
	}
	c.trailSteps++
	for i := range c.waves {
		w, done := system.StepWave(c.waves[i])
		c.waves[i] = w
		if done && c.energy < c.tuning.MaxEnergy {
			c.energy++
			c.onEnergyChanged()
		}
	}
	// Completed waves stay put mid-explosion so nothing vanishes abruptly.
	if c.phase != component.PhaseExploding {
		c.waves = system.SweepWaves(c.waves)
	}

	if c.phase == component.PhaseExploding {
		c.particles = system.StepParticles(c.particles, c.centerX, c.centerY)
	}

	if c.hasWave {
		sw, alive := system.StepShockwave(c.shockwave)
		c.shockwave = sw
		if !alive {
			c.shockwave = component.Shockwave{}
			c.hasWave = false
		}
	}
}

func (c *RevealController) onEnergyChanged() {
	pct := int(math.Round(float64(c.energy) / float64(c.tuning.MaxEnergy) * 100))
	if pct > 100 {
		pct = 100
	}
	c.presenter.SetEnergy(pct)
	c.presenter.ShowEnergy(true)

	switch {
	case c.phase == component.PhaseCollecting && c.energy >= c.tuning.CoreThreshold:
		c.setPhase(component.PhaseGrowingCore)
		c.startCoreGrowth()
	case c.phase == component.PhaseGrowingCore && c.energy >= c.tuning.MaxEnergy:
		c.setPhase(component.PhaseExploding)
		c.explode()
	}
}

func (c *RevealController) setPhase(p component.Phase) {
	prev := c.phase
	c.phase = p
	log.Printf("[RevealController] phase %s -> %s (energy %d)", prev, p, c.energy)
	c.events.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChange{From: prev, To: p}})
}

func (c *RevealController) startCoreGrowth() {
	c.presenter.ShowCore(true)
	c.presenter.SetContentActive(true)
	c.applyMask()

	gen := c.generation
	var h scheduler.Handle
	h = c.sched.Every(c.tuning.GrowthInterval, func() {
		if gen != c.generation || c.phase != component.PhaseGrowingCore {
			c.sched.Cancel(h)
			if c.growthHandle == h {
				c.growthHandle = 0
			}
			return
		}
		c.growCore()
	})
	c.growthHandle = h
}

func (c *RevealController) growCore() {
	t := c.tuning
	span := float64(t.MaxEnergy - t.CoreThreshold)
	size := math.Min(t.MaxCoreSize, float64(c.energy-t.CoreThreshold)/span*t.MaxCoreSize)
	size = math.Max(0, size)
	c.presenter.SetCoreSize(size)
	c.clipRadius = math.Max(c.clipRadius, size/2)
	c.applyMask()
}

func (c *RevealController) explode() {
	c.presenter.ShowCore(false)

	c.shockwave = system.NewShockwave(c.centerX, c.centerY, c.width, c.height)
	c.hasWave = true

	c.presenter.Flash(true)
	gen := c.generation
	c.flashHandle = c.sched.AfterFunc(c.tuning.FlashDuration, func() {
		if gen != c.generation {
			return
		}
		c.flashHandle = 0
		c.presenter.Flash(false)
	})

	t := c.tuning
	for i := 0; i < t.ParticleCount; i++ {
		angle := c.rng.Float64() * 2 * math.Pi
		speed := c.rng.Range(t.ParticleMinSpeed, t.ParticleSpeedRange)
		c.particles = append(c.particles, system.NewExplosionParticle(c.rng, c.centerX, c.centerY, angle, speed))
	}

	c.expandStart = c.sched.Now()
	c.expandFrom = c.clipRadius
	c.expandClip()
}

// expandClip is the time-based clip animation; it measures elapsed time
// from expandStart so frame rate does not change its length.
func (c *RevealController) expandClip() {
	c.expandHandle = 0
	if c.phase != component.PhaseExploding {
		return
	}
	elapsed := c.sched.Now() - c.expandStart
	progress := math.Min(float64(elapsed)/float64(c.tuning.ExpansionDuration), 1)
	target := math.Max(c.maxClipRadius, c.expandFrom)
	r := utils.Lerp(c.expandFrom, target, utils.EaseOutCubic(progress))
	c.clipRadius = math.Max(c.clipRadius, r)
	c.applyMask()

	if progress < 1 {
		gen := c.generation
		c.expandHandle = c.sched.RequestFrame(func() {
			if gen != c.generation {
				return
			}
			c.expandClip()
		})
		return
	}
	c.setPhase(component.PhaseComplete)
	c.presenter.ShowClose(true)
	c.events.Dispatch(event.Event{Type: event.TimelineRevealed})
}

func (c *RevealController) applyMask() {
	c.presenter.SetMask(component.Mask{CenterX: c.centerX, CenterY: c.centerY, Radius: c.clipRadius})
}

// takeTrailSteps returns how many fades the layer owes and clears the count.
func (c *RevealController) takeTrailSteps() int {
	n := min(c.trailSteps, config.MaxTrailFades)
	c.trailSteps = 0
	return n
}

// Draw composites the trail layer onto screen. The layer is only painted
// when the simulation moved, so trail length does not depend on refresh rate.
func (c *RevealController) Draw(screen *ebiten.Image) {
	if c.inert || !c.visible {
		return
	}
	layer := c.renderer.Layer(int(c.width), int(c.height))
	if layer == nil {
		return
	}
	steps := c.takeTrailSteps()
	if steps > 0 {
		c.paintTrail(layer, steps)
	}
	screen.DrawImage(layer, nil)
}

func (c *RevealController) paintTrail(layer *ebiten.Image, steps int) {
	for range steps {
		system.FadeTrail(layer)
	}
	for _, w := range c.waves {
		system.DrawWave(layer, w)
	}
	if c.phase == component.PhaseExploding {
		for _, p := range c.particles {
			system.DrawParticle(layer, p)
		}
	}
	if c.hasWave {
		system.DrawShockwave(layer, c.shockwave)
	}
}
