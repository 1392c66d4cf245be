// internal/state/menu_state.go
package state

import (
	"fmt"

	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HomeState — стартовый раздел с навигацией
type HomeState struct {
	nav  *Navigation
	face ebtext.Face
}

func NewHomeState(nav *Navigation, face ebtext.Face) *HomeState {
	return &HomeState{nav: nav, face: face}
}

func (h *HomeState) Enter() {
	// Ничего не делаем при входе
}

func (h *HomeState) Update(deltaTime float64) {
	h.nav.UpdateBar()
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		h.nav.GoTimeline()
	}
}

func (h *HomeState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	ui.DrawTextCentered(screen, "Welcome", h.face, cx, cy-config.TextLineHeight, config.TextLightColor)
	ui.DrawTextCentered(screen, "Open the Timeline section (or press T)", h.face, cx, cy+config.TextLineHeight, config.TextDimColor)
	if summary := h.VisitSummary(); summary != "" {
		ui.DrawTextCentered(screen, summary, h.face, cx, cy+3*config.TextLineHeight, config.TextDimColor)
	}
	h.nav.DrawBar(screen)
}

func (h *HomeState) Exit() {
	// Ничего не делаем при выходе
}

// VisitSummary описывает, докуда дошло прошлое посещение таймлайна
func (h *HomeState) VisitSummary() string {
	phase, ok := h.nav.LastVisit()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Last visit reached: %s", phase)
}
