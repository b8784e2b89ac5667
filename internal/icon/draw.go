package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// The painters use overwrite semantics: a fill replaces the pixels
// under it, including their alpha. Semi-transparent fills therefore
// store their own alpha rather than compositing with what is below,
// and the white cross fully erases the shadow where they overlap.

// fillRect replaces r with a uniform color, clipped to dst.
func fillRect(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillCircle replaces an anti-aliased disc centered on (cx, cy).
// Coverage feathers across a one-pixel rim so downstream resampling
// does not pick up staircase edges.
func fillCircle(dst *image.NRGBA, cx, cy int, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	r := int(math.Ceil(radius)) + 1
	bounds := image.Rect(cx-r, cy-r, cx+r+1, cy+r+1).Intersect(dst.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - float64(cx)
			dy := float64(y) + 0.5 - float64(cy)
			dist := math.Sqrt(dx*dx + dy*dy)
			switch {
			case dist <= radius-0.5:
				dst.SetNRGBA(x, y, c)
			case dist <= radius+0.5:
				mixPixel(dst, x, y, c, radius+0.5-dist)
			}
		}
	}
}

// mixPixel replaces the pixel at (x, y) with c weighted by coverage,
// keeping (1 - coverage) of what was there. Coverage is in [0, 1].
func mixPixel(dst *image.NRGBA, x, y int, c color.NRGBA, coverage float64) {
	if coverage >= 1 {
		dst.SetNRGBA(x, y, c)
		return
	}
	if coverage <= 0 {
		return
	}
	d := dst.NRGBAAt(x, y)
	dst.SetNRGBA(x, y, lerpColor(d, c, coverage))
}
