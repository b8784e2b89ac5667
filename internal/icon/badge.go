package icon

import (
	"image"
	"image/color"
	"math"
)

// Stop pins a color to an offset along the badge radius (0 = center,
// 1 = rim). Two stops sharing an offset produce a hard band edge.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Ramp is an ordered sequence of color stops, padded at both ends:
// offsets outside the stop range take the nearest stop's color.
type Ramp struct {
	Stops []Stop
}

// At returns the ramp color at offset t, linearly interpolating per
// RGB channel between the surrounding stops.
func (r Ramp) At(t float64) color.NRGBA {
	stops := r.Stops
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	if t >= stops[len(stops)-1].Offset {
		return stops[len(stops)-1].Color
	}
	for i := 0; i < len(stops)-1; i++ {
		s0, s1 := stops[i], stops[i+1]
		if t < s0.Offset || t >= s1.Offset {
			continue
		}
		span := s1.Offset - s0.Offset
		if span <= 0 {
			return s1.Color
		}
		return lerpColor(s0.Color, s1.Color, (t-s0.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// paintBadge fills the circular gradient badge. Color and alpha are
// computed analytically per pixel from the distance to the center;
// the badge is the first pass, so pixels are written directly onto
// the transparent canvas.
func paintBadge(dst *image.NRGBA, l Layout, p Preset) {
	maxR := float64(l.BadgeRadius)
	if maxR <= 0 {
		return
	}
	cx, cy := l.Center, l.Center
	r := l.BadgeRadius + 1
	bounds := image.Rect(cx-r, cy-r, cx+r+1, cy+r+1).Intersect(dst.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - float64(cx)
			dy := float64(y) + 0.5 - float64(cy)
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > maxR+0.5 {
				continue
			}
			coverage := 1.0
			if dist > maxR-0.5 {
				coverage = maxR + 0.5 - dist
			}
			ratio := dist / maxR
			if ratio > 1 {
				ratio = 1
			}
			c := p.Ramp.At(ratio)
			alpha := 255 * (p.AlphaBase + p.AlphaSpan*ratio) * coverage
			if alpha > 255 {
				alpha = 255
			}
			c.A = uint8(alpha)
			dst.SetNRGBA(x, y, c)
		}
	}
}
