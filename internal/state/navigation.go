package state

import (
	"log"

	"cosmic-timeline/internal/app"
	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/event"
	"cosmic-timeline/internal/scheduler"
	"cosmic-timeline/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Navigation switches between the page sections. It is the only caller
// of the reveal controller's Show and Hide.
type Navigation struct {
	sm       *StateMachine
	Home     *HomeState
	Timeline *TimelineState
	bar      *ui.NavBar
	revealed bool

	// Самая дальняя фаза текущего и прошлого посещения таймлайна
	furthest  component.Phase
	lastVisit component.Phase
	visited   bool
}

// NewNavigation builds both sections. bar may be nil (tests, headless runs).
func NewNavigation(sm *StateMachine, controller *app.RevealController, overlay *ui.Overlay, clock *scheduler.Clock, events *event.Dispatcher, face ebtext.Face) *Navigation {
	n := &Navigation{sm: sm}
	n.Home = NewHomeState(n, face)
	n.Timeline = NewTimelineState(n, controller, overlay, clock)
	if events != nil {
		events.Subscribe(event.TimelineRevealed, event.ListenerFunc(n.onRevealed))
		events.Subscribe(event.PhaseChanged, event.ListenerFunc(n.onPhaseChanged))
		events.Subscribe(event.TimelineHidden, event.ListenerFunc(n.onHidden))
	}
	return n
}

// AttachBar adds the on-screen navigation bar.
func (n *Navigation) AttachBar(face ebtext.Face) {
	n.bar = ui.NewNavBar(face, []ui.NavItem{
		{Label: "Home", OnClick: n.GoHome},
		{Label: "Timeline", OnClick: n.GoTimeline},
	})
	n.bar.Indicator.SetLit(n.revealed)
}

func (n *Navigation) onRevealed(e event.Event) {
	n.revealed = true
	log.Printf("[Navigation] timeline revealed")
	if n.bar != nil {
		n.bar.Indicator.SetLit(true)
	}
}

func (n *Navigation) onPhaseChanged(e event.Event) {
	if pc, ok := e.Data.(event.PhaseChange); ok && pc.To > n.furthest {
		n.furthest = pc.To
	}
}

// onHidden closes a visit; Hide resets to idle first, so furthest still
// holds what the visit reached.
func (n *Navigation) onHidden(e event.Event) {
	n.lastVisit = n.furthest
	n.furthest = component.PhaseIdle
	n.visited = true
	log.Printf("[Navigation] timeline left at %s", n.lastVisit)
}

// LastVisit reports the furthest phase of the previous timeline visit.
func (n *Navigation) LastVisit() (component.Phase, bool) { return n.lastVisit, n.visited }

// Revealed reports whether the timeline has been fully revealed at least once.
func (n *Navigation) Revealed() bool { return n.revealed }

func (n *Navigation) GoHome() {
	if n.sm.Current() == State(n.Home) {
		return
	}
	n.sm.SetState(n.Home)
}

// GoTimeline opens the timeline section; reopening it restarts the reveal.
func (n *Navigation) GoTimeline() {
	n.sm.SetState(n.Timeline)
}

func (n *Navigation) UpdateBar() {
	if n.bar != nil {
		n.bar.Update()
	}
}

func (n *Navigation) DrawBar(screen *ebiten.Image) {
	if n.bar != nil {
		n.bar.Draw(screen)
	}
}

func (n *Navigation) BarContains(x, y int) bool {
	return n.bar != nil && n.bar.Contains(x, y)
}
