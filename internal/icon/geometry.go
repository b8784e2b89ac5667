package icon

import (
	"image"
	"math"
)

// Layout carries every pixel measurement derived from the render size.
// All fields are pure functions of (size, preset); two layouts built
// from the same inputs are identical.
type Layout struct {
	Size           int
	Center         int
	BadgeRadius    int
	CrossSize      int
	CrossThickness int
	ShadowOffset   int
	IconSize       int
	RingRadius     int
}

func NewLayout(size int, p Preset) Layout {
	crossSize := int(float64(size) * 0.35)
	scale := float64(size) / 1024
	return Layout{
		Size:           size,
		Center:         size / 2,
		BadgeRadius:    int(float64(size) * 0.45),
		CrossSize:      crossSize,
		CrossThickness: int(float64(crossSize) * 0.15),
		ShadowOffset:   int(3 * scale),
		IconSize:       int(float64(size) * p.IconSizeRatio),
		RingRadius:     int(float64(size) * p.RingRadiusRatio),
	}
}

// GlyphAnchor returns the pixel the glyph is centered on:
// center + (cos angle, sin angle) * ring radius. Angles are in degrees;
// y grows downward, so negative angles land in the upper half.
func (l Layout) GlyphAnchor(g Glyph) image.Point {
	rad := g.Angle * math.Pi / 180
	return image.Point{
		X: l.Center + int(math.Cos(rad)*float64(l.RingRadius)),
		Y: l.Center + int(math.Sin(rad)*float64(l.RingRadius)),
	}
}

// GlyphBounds returns a conservative bounding box for a glyph at its
// anchor. Glyphs extend at most half an icon size from the anchor on
// each side, plus the document's bottom overhang.
func (l Layout) GlyphBounds(g Glyph) image.Rectangle {
	a := l.GlyphAnchor(g)
	half := l.IconSize / 2
	r := image.Rect(a.X-half, a.Y-half, a.X+half, a.Y+half)
	if g.Kind == GlyphDocument {
		r.Max.Y += int(float64(l.IconSize) * 0.2)
	}
	return r
}

// crossRects returns the vertical and horizontal bars of the cross,
// offset by (off, off) pixels.
func (l Layout) crossRects(off int) (vertical, horizontal image.Rectangle) {
	c := l.Center
	halfT := l.CrossThickness / 2
	halfS := l.CrossSize / 2
	vertical = image.Rect(c-halfT+off, c-halfS+off, c+halfT+off, c+halfS+off)
	horizontal = image.Rect(c-halfS+off, c-halfT+off, c+halfS+off, c+halfT+off)
	return vertical, horizontal
}
