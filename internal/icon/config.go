package icon

import "image/color"

// Brand palette for the FLCMS app icon.
var (
	PrimaryBlue   = color.NRGBA{R: 0x4A, G: 0x90, B: 0xE2, A: 0xFF} // #4A90E2
	SecondaryBlue = color.NRGBA{R: 0x35, G: 0x7A, B: 0xBD, A: 0xFF} // #357ABD
	DarkBlue      = color.NRGBA{R: 0x2E, G: 0x5A, B: 0xA5, A: 0xFF} // #2E5AA5
	White         = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// shadowColor is the semi-transparent black used under the cross.
var shadowColor = color.NRGBA{A: 100}

// Preset is an immutable description of one icon variant. All renders
// are pure functions of (size, preset); presets hold no mutable state.
type Preset struct {
	Name string

	// Badge gradient.
	Ramp      Ramp
	AlphaBase float64 // badge alpha = 255 * (AlphaBase + AlphaSpan*ratio)
	AlphaSpan float64

	// Cross.
	CrossShadow bool

	// Glyph ring.
	Glyphs          []Glyph
	GlyphAlpha      uint8   // fill alpha for glyph bodies
	IconSizeRatio   float64 // glyph extent as a fraction of size
	RingRadiusRatio float64 // glyph anchor distance from center as a fraction of size
	SimpleShapes    bool    // plain squares / small heads, no interior detail
}

// PresetManagement is the full icon: three-stop gradient, drop-shadowed
// cross and the complete glyph ring (document, people, calendar, chart).
var PresetManagement = Preset{
	Name: "management",
	Ramp: Ramp{Stops: []Stop{
		{Offset: 0, Color: DarkBlue},
		{Offset: 0.4, Color: SecondaryBlue},
		{Offset: 0.7, Color: PrimaryBlue},
	}},
	AlphaBase:   0.8,
	AlphaSpan:   0.2,
	CrossShadow: true,
	Glyphs: []Glyph{
		{Kind: GlyphDocument, Angle: -45},
		{Kind: GlyphPeople, Angle: 135},
		{Kind: GlyphCalendar, Angle: -135},
		{Kind: GlyphChart, Angle: 45},
	},
	GlyphAlpha:      200,
	IconSizeRatio:   0.06,
	RingRadiusRatio: 0.32,
}

// PresetSimple is the reduced icon: two-stop hard-edged gradient, no
// shadow, and only the document and people glyphs.
var PresetSimple = Preset{
	Name: "simple",
	Ramp: Ramp{Stops: []Stop{
		{Offset: 0, Color: DarkBlue},
		{Offset: 0.5, Color: DarkBlue},
		{Offset: 0.5, Color: PrimaryBlue},
	}},
	AlphaBase:   0.7,
	AlphaSpan:   0.3,
	CrossShadow: false,
	Glyphs: []Glyph{
		{Kind: GlyphDocument, Angle: -45},
		{Kind: GlyphPeople, Angle: 135},
	},
	GlyphAlpha:      180,
	IconSizeRatio:   0.05,
	RingRadiusRatio: 0.28,
	SimpleShapes:    true,
}

// PresetByName returns the preset with the given name. Unknown names
// fall back to the management preset.
func PresetByName(name string) Preset {
	if name == PresetSimple.Name {
		return PresetSimple
	}
	return PresetManagement
}
