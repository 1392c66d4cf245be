package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the built-in bitmap face; it needs no font files on disk.
func DefaultFace() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face ebtext.Face, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(dst, s, face, op)
}

// DrawTextCentered draws s centered horizontally on cx.
func DrawTextCentered(dst *ebiten.Image, s string, face ebtext.Face, cx, y float64, clr color.Color) {
	w, _ := ebtext.Measure(s, face, 0)
	drawText(dst, s, face, cx-w/2, y, clr)
}
