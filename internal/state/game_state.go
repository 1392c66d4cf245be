// internal/state/game_state.go
package state

import (
	"time"

	"cosmic-timeline/internal/app"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/scheduler"
	"cosmic-timeline/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TimelineState — раздел «Таймлайн»: вход показывает анимацию раскрытия,
// выход её скрывает
type TimelineState struct {
	nav        *Navigation
	controller *app.RevealController
	overlay    *ui.Overlay
	clock      *scheduler.Clock
	paused     bool
}

func NewTimelineState(nav *Navigation, controller *app.RevealController, overlay *ui.Overlay, clock *scheduler.Clock) *TimelineState {
	return &TimelineState{
		nav:        nav,
		controller: controller,
		overlay:    overlay,
		clock:      clock,
	}
}

func (t *TimelineState) Enter() {
	t.paused = false
	t.controller.Show()
}

func (t *TimelineState) Exit() {
	t.controller.Hide()
}

// Update обрабатывает ввод и продвигает логические часы анимации
func (t *TimelineState) Update(deltaTime float64) {
	t.nav.UpdateBar()
	if t.overlay != nil {
		t.overlay.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		t.nav.GoHome()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		t.paused = !t.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		t.controller.Reset()
	}

	// Клики по панели навигации в анимацию не попадают
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !t.nav.BarContains(x, y) {
			t.controller.Click(float64(x), float64(y))
		}
	}

	t.Advance(deltaTime)
}

// Advance двигает часы на deltaTime секунд, если анимация не на паузе
func (t *TimelineState) Advance(deltaTime float64) {
	if t.paused {
		return
	}
	t.clock.Advance(time.Duration(deltaTime * float64(time.Second)))
}

func (t *TimelineState) SetPaused(paused bool) { t.paused = paused }
func (t *TimelineState) Paused() bool          { return t.paused }

func (t *TimelineState) Draw(screen *ebiten.Image) {
	if t.overlay != nil {
		t.overlay.DrawBackground(screen)
	} else {
		screen.Fill(config.BackgroundColor)
	}
	t.controller.Draw(screen)
	if t.overlay != nil {
		t.overlay.Draw(screen)
	}
	t.nav.DrawBar(screen)
}
