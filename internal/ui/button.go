// internal/ui/button.go
package ui

import (
	"image/color"

	"cosmic-timeline/internal/config"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	closeButtonWidth  = 120
	closeButtonHeight = 36
)

// CloseButton — кнопка «Закрыть», появляется после раскрытия таймлайна.
// Update и Draw ничего не делают, пока кнопка скрыта.
type CloseButton struct {
	ui      *ebitenui.UI
	Visible bool
}

// NewCloseButton создает кнопку в правом нижнем углу.
func NewCloseButton(face ebtext.Face, onClick func()) *CloseButton {
	idle := imageui.NewNineSliceColor(config.ButtonIdleColor)
	hover := imageui.NewNineSliceColor(config.ButtonHoverColor)
	textColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: hover}),
		widget.ButtonOpts.Text("Close", &face, textColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(closeButtonWidth, closeButtonHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(btn)

	return &CloseButton{ui: &ebitenui.UI{Container: root}}
}

func (b *CloseButton) Update() {
	if b.Visible {
		b.ui.Update()
	}
}

func (b *CloseButton) Draw(screen *ebiten.Image) {
	if b.Visible {
		b.ui.Draw(screen)
	}
}
