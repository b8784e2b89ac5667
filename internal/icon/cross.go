package icon

import "image"

// paintCross draws the centered plus sign. The shadow bars go down
// first, then the opaque white bars at the true position; where they
// overlap, the white fully replaces the shadow. The order must not
// change.
func paintCross(dst *image.NRGBA, l Layout, p Preset) {
	if p.CrossShadow && l.ShadowOffset > 0 {
		shadowV, shadowH := l.crossRects(l.ShadowOffset)
		fillRect(dst, shadowV, shadowColor)
		fillRect(dst, shadowH, shadowColor)
	}
	vertical, horizontal := l.crossRects(0)
	fillRect(dst, vertical, White)
	fillRect(dst, horizontal, White)
}
