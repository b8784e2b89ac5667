// Package icon renders the FLCMS app icon: a circular gradient badge,
// a drop-shadowed white cross, and a ring of small management glyphs.
//
// A render is a pure function of the target size and the preset: the
// same inputs always produce byte-identical rasters, and every render
// owns its canvas, so any number of sizes may be rendered in parallel
// with no coordination.
package icon

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidSize is returned when a render or resample is asked for a
// non-positive pixel size.
var ErrInvalidSize = errors.New("size must be a positive number of pixels")

// Render composites the management icon at size×size pixels.
func Render(size int) (*image.NRGBA, error) {
	return RenderPreset(size, PresetManagement)
}

// RenderPreset composites one icon variant at size×size pixels.
//
// The passes run in a fixed order over one canvas: badge gradient,
// cross shadow, white cross, then the glyph ring. Sizes below ~8 px
// degenerate gracefully (glyphs collapse to zero area) but never fail.
func RenderPreset(size int, p Preset) (*image.NRGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("render %d: %w", size, ErrInvalidSize)
	}
	l := NewLayout(size, p)
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))

	paintBadge(canvas, l, p)
	paintCross(canvas, l, p)
	for _, g := range p.Glyphs {
		paintGlyph(canvas, l, p, g)
	}
	return canvas, nil
}
