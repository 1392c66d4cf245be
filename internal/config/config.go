// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // seconds; longer frames are clamped

	WindowTitle = "Cosmic Timeline"

	// Trail fade painted over the wave layer once per simulation frame.
	TrailAlpha = 0.1
	// Сколько затуханий накапливается между отрисовками, не больше.
	MaxTrailFades = 8

	WavePathStep     = 0.02
	WaveShadowWidth  = 6.0
	ParticleGlowSize = 2.0

	ShockwaveBaseWidth   = 5.0
	ShockwaveExtraWidth  = 15.0
	ShockwaveOpacityDrop = 0.01
	ShockwaveSpeed       = 10.0
	ShockwaveRadiusRatio = 0.7

	ParticleShrink       = 0.99
	ParticleMinSize      = 0.1
	ParticlePull         = 0.005
	ParticlePullLife     = 0.5
	ParticlePullDeadZone = 10.0

	NavBarHeight   = 48
	TextLineHeight = 16
)

var (
	BackgroundColor  = colornames.Black
	FlashColor       = colornames.White
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{150, 150, 170, 255}
	CoreColor        = colornames.Black
	CoreRimColor     = color.RGBA{255, 160, 60, 200}
	ContentBgColor   = color.RGBA{12, 14, 30, 255}
	TimelineAxis     = color.RGBA{90, 120, 200, 255}
	TimelineDot      = color.RGBA{255, 180, 80, 255}
	NavBarColor      = color.RGBA{20, 20, 30, 220}
	ButtonIdleColor  = color.RGBA{51, 51, 51, 255}
	ButtonHoverColor = color.RGBA{80, 80, 110, 255}
	RevealedColor    = colornames.Limegreen
)
