package icon

import (
	"image"
	"image/color"
)

// GlyphKind identifies one of the fixed symbolic shapes ringed around
// the cross.
type GlyphKind int

const (
	GlyphDocument GlyphKind = iota
	GlyphPeople
	GlyphCalendar
	GlyphChart
)

// Glyph places a shape kind at an angle (degrees) on the glyph ring.
// The four glyphs sit at least 90° apart at a shared radius with small
// extent, so they never overlap and any subset may be drawn in any
// order.
type Glyph struct {
	Kind  GlyphKind
	Angle float64
}

func (k GlyphKind) String() string {
	switch k {
	case GlyphDocument:
		return "document"
	case GlyphPeople:
		return "people"
	case GlyphCalendar:
		return "calendar"
	case GlyphChart:
		return "chart"
	}
	return "unknown"
}

func paintGlyph(dst *image.NRGBA, l Layout, p Preset, g Glyph) {
	anchor := l.GlyphAnchor(g)
	fill := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: p.GlyphAlpha}
	ink := color.NRGBA{R: PrimaryBlue.R, G: PrimaryBlue.G, B: PrimaryBlue.B, A: p.GlyphAlpha}
	switch g.Kind {
	case GlyphDocument:
		paintDocument(dst, anchor, l.IconSize, fill, ink, p.SimpleShapes)
	case GlyphPeople:
		paintPeople(dst, anchor, l.IconSize, fill, p.SimpleShapes)
	case GlyphCalendar:
		paintCalendar(dst, anchor, l.IconSize, fill, ink)
	case GlyphChart:
		paintChart(dst, anchor, l.IconSize, fill)
	}
}

// paintDocument draws a page with a slightly taller bottom edge and
// three interior text lines. The simple variant is a plain square.
func paintDocument(dst *image.NRGBA, a image.Point, is int, fill, ink color.NRGBA, simple bool) {
	half := is / 2
	if simple {
		fillRect(dst, image.Rect(a.X-half, a.Y-half, a.X+half, a.Y+half), fill)
		return
	}
	overhang := int(float64(is) * 0.2)
	fillRect(dst, image.Rect(a.X-half, a.Y-half, a.X+half, a.Y+half+overhang), fill)

	lineHeight := int(float64(is) * 0.08)
	if lineHeight < 1 {
		return
	}
	for i := 0; i < 3; i++ {
		top := a.Y - is/4 + i*lineHeight*2
		fillRect(dst, image.Rect(a.X-is/3, top, a.X+is/3, top+lineHeight), ink)
	}
}

// paintPeople draws three heads in a row, spaced a third of the icon
// size apart.
func paintPeople(dst *image.NRGBA, a image.Point, is int, fill color.NRGBA, simple bool) {
	radius := float64(is) * 0.12
	startX := a.X - is/3
	if simple {
		radius = float64(is) / 8
		startX = a.X - is/2
	}
	for i := 0; i < 3; i++ {
		fillCircle(dst, startX+i*is/3, a.Y, radius, fill)
	}
}

// paintCalendar draws a square sheet with a 2x2 grid of day cells
// inset from its edges.
func paintCalendar(dst *image.NRGBA, a image.Point, is int, fill, ink color.NRGBA) {
	sheet := CenteredSquare(a.X, a.Y, is)
	fillRect(dst, sheet, fill)
	cell := is / 6
	if cell < 1 {
		return
	}
	grid := Inset(sheet, is/4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			x := grid.Min.X + i*is/3
			y := grid.Min.Y + j*is/3
			fillRect(dst, image.Rect(x, y, x+cell, y+cell), ink)
		}
	}
}

// paintChart draws three vertical bars of relative heights 0.3, 0.5
// and 0.2, left-aligned and vertically centered on the anchor.
func paintChart(dst *image.NRGBA, a image.Point, is int, fill color.NRGBA) {
	heights := [3]int{
		int(float64(is) * 0.3),
		int(float64(is) * 0.5),
		int(float64(is) * 0.2),
	}
	barWidth := is / 4
	for i, h := range heights {
		x := a.X - is/2 + i*is/3
		fillRect(dst, image.Rect(x, a.Y-h/2, x+barWidth, a.Y+h/2), fill)
	}
}
