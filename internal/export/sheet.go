package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sort"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/flcms/crest/internal/icon"
)

const (
	sheetMargin    = 24
	sheetLabelBand = 28
)

var sheetBackground = color.NRGBA{R: 0xF4, G: 0xF6, B: 0xF9, A: 0xFF}

// buildSheet lays every exported raster out in one row, largest first,
// with its pixel size printed underneath. It exists purely for
// eyeballing a batch at a glance.
func buildSheet(results []Result, fontPath string) (*image.NRGBA, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("nothing to lay out")
	}
	ordered := make([]Result, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Size > ordered[j].Size })

	width := sheetMargin
	tallest := 0
	for _, r := range ordered {
		width += r.Size + sheetMargin
		if r.Size > tallest {
			tallest = r.Size
		}
	}
	height := sheetMargin + tallest + sheetLabelBand + sheetMargin

	sheet := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	face := loadLabelFace(fontPath)
	drawer := &font.Drawer{
		Dst:  sheet,
		Src:  image.NewUniform(icon.DarkBlue),
		Face: face,
	}

	x := sheetMargin
	for _, r := range ordered {
		// Bottom-align the icons so the labels form one line.
		top := sheetMargin + tallest - r.Size
		dst := image.Rect(x, top, x+r.Size, top+r.Size)
		draw.Draw(sheet, dst, r.img, r.img.Bounds().Min, draw.Over)

		label := fmt.Sprintf("%d px", r.Size)
		labelWidth := drawer.MeasureString(label).Ceil()
		baseline := sheetMargin + tallest + sheetLabelBand - 8
		drawer.Dot = fixed.P(x+(r.Size-labelWidth)/2, baseline)
		drawer.DrawString(label)

		x += r.Size + sheetMargin
	}
	return sheet, nil
}

// loadLabelFace parses a TTF from disk when one is given, otherwise
// falls back to the built-in bitmap face so sheets always render.
func loadLabelFace(path string) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: 16, DPI: 96, Hinting: font.HintingFull})
}
