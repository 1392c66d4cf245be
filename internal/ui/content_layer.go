package ui

import (
	"strings"

	"cosmic-timeline/internal/config"
	"cosmic-timeline/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	entrySpacing  = 120
	entryBoxWidth = 320
	axisMargin    = 30
	wrapColumns   = 44
)

// ContentLayer renders the timeline into an offscreen image that is later
// composited through the reveal mask.
type ContentLayer struct {
	timeline *defs.Timeline
	face     ebtext.Face
	image    *ebiten.Image
	dirty    bool
}

func NewContentLayer(tl *defs.Timeline, face ebtext.Face) *ContentLayer {
	return &ContentLayer{timeline: tl, face: face, dirty: true}
}

// Image returns the rendered layer for a w×h surface, redrawing only when
// the size changed.
func (l *ContentLayer) Image(w, h int) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	if l.image != nil {
		b := l.image.Bounds()
		if b.Dx() != w || b.Dy() != h {
			l.image.Deallocate()
			l.image = nil
		}
	}
	if l.image == nil {
		l.image = ebiten.NewImage(w, h)
		l.dirty = true
	}
	if l.dirty {
		l.render()
		l.dirty = false
	}
	return l.image
}

func (l *ContentLayer) render() {
	img := l.image
	img.Fill(config.ContentBgColor)
	if l.timeline == nil {
		return
	}
	b := img.Bounds()
	cx := float64(b.Dx()) / 2
	top := float64(config.NavBarHeight + axisMargin)

	DrawTextCentered(img, l.timeline.Title, l.face, cx, top, config.TextLightColor)

	axisTop := top + 2*config.TextLineHeight
	axisBottom := axisTop + float64(len(l.timeline.Entries))*entrySpacing
	vector.StrokeLine(img, float32(cx), float32(axisTop), float32(cx), float32(axisBottom), 2, config.TimelineAxis, true)

	for i, e := range l.timeline.Entries {
		y := axisTop + float64(i)*entrySpacing + entrySpacing/2
		vector.DrawFilledCircle(img, float32(cx), float32(y), 6, config.TimelineDot, true)

		x := cx + axisMargin
		if i%2 == 1 {
			x = cx - axisMargin - entryBoxWidth
		}
		drawText(img, e.Year+"  "+e.Title, l.face, x, y-config.TextLineHeight, config.TextLightColor)
		if e.Subtitle != "" {
			drawText(img, e.Subtitle, l.face, x, y, config.TimelineDot)
		}
		for j, line := range wrap(e.Description, wrapColumns) {
			drawText(img, line, l.face, x, y+float64(j+1)*config.TextLineHeight, config.TextDimColor)
		}
	}
}

// wrap splits s into lines of at most width runes, breaking on spaces.
// Words longer than width get a line of their own.
func wrap(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(word)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
