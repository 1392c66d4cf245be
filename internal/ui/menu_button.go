// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"cosmic-timeline/internal/config"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	navButtonWidth  = 110
	navButtonHeight = 32
)

// NavItem — пункт навигации: подпись и обработчик нажатия
type NavItem struct {
	Label   string
	OnClick func()
}

// NavBar — верхняя панель навигации между разделами
type NavBar struct {
	ui        *ebitenui.UI
	Indicator *RevealIndicator
}

// NewNavBar создает панель с кнопками в ряд слева и индикатором справа.
func NewNavBar(face ebtext.Face, items []NavItem) *NavBar {
	idle := imageui.NewNineSliceColor(config.ButtonIdleColor)
	hover := imageui.NewNineSliceColor(config.ButtonHoverColor)
	textColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}}

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	for _, item := range items {
		onClick := item.OnClick
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: hover}),
			widget.ButtonOpts.Text(item.Label, &face, textColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(navButtonWidth, navButtonHeight)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(row)

	return &NavBar{
		ui:        &ebitenui.UI{Container: root},
		Indicator: NewRevealIndicator(0, config.NavBarHeight/2, 8),
	}
}

// Contains сообщает, попадает ли точка на панель (клики по ней не должны
// уходить в анимацию)
func (n *NavBar) Contains(x, y int) bool {
	return y >= 0 && y < config.NavBarHeight
}

func (n *NavBar) Update() {
	n.ui.Update()
}

func (n *NavBar) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), config.NavBarHeight, config.NavBarColor, false)
	n.ui.Draw(screen)
	n.Indicator.X = float32(w) - 24
	n.Indicator.Draw(screen)
}
