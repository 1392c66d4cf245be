// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"cosmic-timeline/internal/config"
	"cosmic-timeline/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RevealIndicator — точка на панели навигации, загорается, когда таймлайн
// был раскрыт хотя бы раз
type RevealIndicator struct {
	X, Y       float32
	Radius     float32
	Lit        bool
	LastChange time.Time
}

func NewRevealIndicator(x, y, radius float32) *RevealIndicator {
	return &RevealIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// SetLit включает индикатор и запускает короткую пульсацию
func (i *RevealIndicator) SetLit(lit bool) {
	if i.Lit == lit {
		return
	}
	i.Lit = lit
	i.LastChange = time.Now()
}

// Scale — коэффициент пульсации через elapsed после переключения
func (i *RevealIndicator) Scale(elapsed time.Duration) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed.Seconds()*8))
}

// Draw отрисовывает индикатор
func (i *RevealIndicator) Draw(screen *ebiten.Image) {
	clr := render.DarkenColor(config.RevealedColor)
	if i.Lit {
		clr = config.RevealedColor
	}
	r := i.Radius * i.Scale(time.Since(i.LastChange))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)
}
