package icon

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// Resample produces a size×size raster from src using a Lanczos
// filter. The source is never mutated; the result is a fresh buffer.
// Fine edges (the cross, glyph detail) alias badly under nearest
// neighbor, so a smooth filter is mandatory here.
func Resample(src image.Image, size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("resample %d: %w", size, ErrInvalidSize)
	}
	return transform.Resize(src, size, size, transform.Lanczos), nil
}
