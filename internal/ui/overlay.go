package ui

import (
	"fmt"

	"cosmic-timeline/internal/component"
	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/defs"
	"cosmic-timeline/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const instructionText = "Click anywhere to gather energy"

// Viewport is the window-sized drawing surface. Layout keeps it current.
type Viewport struct {
	W, H int
}

func (v *Viewport) Size() (int, int) { return v.W, v.H }

// SetSize reports whether the size actually changed.
func (v *Viewport) SetSize(w, h int) bool {
	if v.W == w && v.H == h {
		return false
	}
	v.W, v.H = w, h
	return true
}

// Overlay holds the UI collaborators of the reveal: the instruction, the
// energy readout, the black hole core, the masked content layer and the
// close button. The controller only writes to it.
type Overlay struct {
	face     ebtext.Face
	content  *ContentLayer
	closeBtn *CloseButton

	instruction   bool
	energy        int
	energyVisible bool
	coreVisible   bool
	coreSize      float64
	contentActive bool
	mask          component.Mask
	flash         bool

	masked   *ebiten.Image
	maskDisc *ebiten.Image
}

// NewOverlay builds the overlay. onClose is wired to the close button.
func NewOverlay(tl *defs.Timeline, face ebtext.Face, onClose func()) *Overlay {
	return &Overlay{
		face:     face,
		content:  NewContentLayer(tl, face),
		closeBtn: NewCloseButton(face, onClose),
	}
}

func (o *Overlay) ShowInstruction(visible bool) { o.instruction = visible }
func (o *Overlay) SetEnergy(percent int)        { o.energy = percent }
func (o *Overlay) ShowEnergy(visible bool)      { o.energyVisible = visible }
func (o *Overlay) ShowClose(visible bool)       { o.closeBtn.Visible = visible }
func (o *Overlay) ShowCore(visible bool)        { o.coreVisible = visible }
func (o *Overlay) SetCoreSize(diameter float64) { o.coreSize = diameter }
func (o *Overlay) SetContentActive(active bool) { o.contentActive = active }
func (o *Overlay) SetMask(mask component.Mask)  { o.mask = mask }
func (o *Overlay) Flash(on bool)                { o.flash = on }
func (o *Overlay) Mask() component.Mask         { return o.mask }
func (o *Overlay) MaskString() string           { return o.mask.String() }
func (o *Overlay) InstructionVisible() bool     { return o.instruction }
func (o *Overlay) CloseVisible() bool           { return o.closeBtn.Visible }
func (o *Overlay) CoreVisible() bool            { return o.coreVisible }
func (o *Overlay) ContentActive() bool          { return o.contentActive }
func (o *Overlay) Flashing() bool               { return o.flash }

// EnergyText is the readout as displayed, or "" while hidden.
func (o *Overlay) EnergyText() string {
	if !o.energyVisible {
		return ""
	}
	return fmt.Sprintf("Energy: %d%%", o.energy)
}

func (o *Overlay) Update() {
	o.closeBtn.Update()
}

// DrawBackground fills the screen; white while the explosion flash is on.
func (o *Overlay) DrawBackground(screen *ebiten.Image) {
	if o.flash {
		screen.Fill(config.FlashColor)
		return
	}
	screen.Fill(config.BackgroundColor)
}

// Draw paints everything that sits above the particle layer.
func (o *Overlay) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()

	if o.contentActive && o.mask.Radius > 0 {
		o.drawMaskedContent(screen, w, h)
	}
	if o.coreVisible && o.coreSize > 0 {
		o.drawCore(screen)
	}
	if o.instruction {
		DrawTextCentered(screen, instructionText, o.face, float64(w)/2, float64(h)-3*config.TextLineHeight, config.TextLightColor)
	}
	if text := o.EnergyText(); text != "" {
		DrawTextCentered(screen, text, o.face, float64(w)/2, float64(config.NavBarHeight+config.TextLineHeight), config.TextLightColor)
	}
	o.closeBtn.Draw(screen)
}

func (o *Overlay) drawMaskedContent(screen *ebiten.Image, w, h int) {
	src := o.content.Image(w, h)
	if src == nil {
		return
	}
	o.masked = ensureImage(o.masked, w, h)
	o.maskDisc = ensureImage(o.maskDisc, w, h)

	o.maskDisc.Clear()
	vector.DrawFilledCircle(o.maskDisc, float32(o.mask.CenterX), float32(o.mask.CenterY), float32(o.mask.Radius), config.FlashColor, true)

	o.masked.Clear()
	o.masked.DrawImage(src, nil)
	o.masked.DrawImage(o.maskDisc, &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn})
	screen.DrawImage(o.masked, nil)
}

func (o *Overlay) drawCore(screen *ebiten.Image) {
	cx, cy := float32(o.mask.CenterX), float32(o.mask.CenterY)
	r := float32(o.coreSize / 2)
	vector.DrawFilledCircle(screen, cx, cy, r+6, render.WithAlpha(config.CoreRimColor, 0.25), true)
	vector.DrawFilledCircle(screen, cx, cy, r, render.WithAlpha(config.CoreColor, 0.85), true)
	vector.StrokeCircle(screen, cx, cy, r, 2, config.CoreRimColor, true)
}

func ensureImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}
