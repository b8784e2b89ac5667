package icon

import (
	"image/color"
	"testing"
)

func TestRampStopsAndPadding(t *testing.T) {
	ramp := PresetManagement.Ramp
	for _, tc := range []struct {
		t    float64
		want color.NRGBA
	}{
		{-0.5, DarkBlue},
		{0, DarkBlue},
		{0.4, SecondaryBlue},
		{0.7, PrimaryBlue},
		{1, PrimaryBlue},
		{2, PrimaryBlue},
	} {
		if got := ramp.At(tc.t); got != tc.want {
			t.Errorf("At(%g) = %+v, want %+v", tc.t, got, tc.want)
		}
	}
}

func TestRampInterpolatesMidBand(t *testing.T) {
	got := PresetManagement.Ramp.At(0.55)
	// Halfway between the secondary and primary stops.
	want := color.NRGBA{R: 63, G: 133, B: 207, A: 255}
	if got != want {
		t.Errorf("At(0.55) = %+v, want %+v", got, want)
	}
}

func TestRampHardStep(t *testing.T) {
	ramp := PresetSimple.Ramp
	if got := ramp.At(0.49); got != DarkBlue {
		t.Errorf("At(0.49) = %+v, want dark blue", got)
	}
	if got := ramp.At(0.51); got != PrimaryBlue {
		t.Errorf("At(0.51) = %+v, want primary blue", got)
	}
}

func TestBadgeAlphaIncreasesTowardRim(t *testing.T) {
	const size = 512
	img, err := Render(size)
	if err != nil {
		t.Fatal(err)
	}
	l := NewLayout(size, PresetManagement)
	// Sample along the row just below the cross, inside the badge.
	y := l.Center + l.CrossSize/2 + l.ShadowOffset + 2
	inner := img.NRGBAAt(l.Center, y)
	outer := img.NRGBAAt(l.Center, l.Center+l.BadgeRadius-4)
	if inner.A >= outer.A {
		t.Errorf("alpha should grow toward the rim: inner=%d outer=%d", inner.A, outer.A)
	}
	if inner.A < 200 {
		t.Errorf("badge is near-opaque everywhere, got alpha %d", inner.A)
	}
}

func TestBadgeCornersTransparent(t *testing.T) {
	img, err := Render(256)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{0, 0}, {255, 0}, {0, 255}, {255, 255}} {
		if c := img.NRGBAAt(p[0], p[1]); c.A != 0 {
			t.Errorf("corner (%d,%d) = %+v, want fully transparent", p[0], p[1], c)
		}
	}
}
