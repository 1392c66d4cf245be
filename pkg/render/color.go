package render

import (
	"image/color"
	"math"
)

// Wave hue families shared by energy waves and explosion particles.
const (
	BlueHueMin    = 210.0
	BlueHueSpan   = 30.0
	OrangeHueMin  = 30.0
	OrangeHueSpan = 20.0
)

// HSLA converts hue (degrees), saturation, lightness and alpha (all 0..1)
// into a premultiplied color usable by ebiten.
func HSLA(h, s, l, a float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(math.Round((r + m) * a * 255)),
		G: uint8(math.Round((g + m) * a * 255)),
		B: uint8(math.Round((b + m) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

// WithAlpha scales an opaque color to the given alpha, keeping it premultiplied.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
