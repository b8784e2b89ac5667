// Package fbpreview puts the rendered icon on a Linux framebuffer so
// it can be eyeballed on a device display without a desktop session.
package fbpreview

import (
	"context"
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	"github.com/rs/zerolog"
	xdraw "golang.org/x/image/draw"

	"github.com/flcms/crest/internal/icon"
)

// masterSize is the resolution the icon is composited at before being
// scaled to whatever the framebuffer offers.
const masterSize = 1024

// Preview owns the framebuffer session: console mode, cursor state,
// and the blit itself.
type Preview struct {
	Device string // framebuffer device path; empty means /dev/fb0
	Preset icon.Preset
	Log    zerolog.Logger
}

// Show renders the icon, scales it to the framebuffer, and keeps it on
// screen until ctx is done. The console is switched to graphics mode
// for the duration and always restored.
func (p *Preview) Show(ctx context.Context) error {
	device := p.Device
	if device == "" {
		device = "/dev/fb0"
	}
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	p.Log.Info().Str("component", "fbpreview").
		Int("width", bounds.Dx()).Int("height", bounds.Dy()).
		Msg("framebuffer open")

	if err := setGraphicsMode(); err != nil {
		p.Log.Error().Str("component", "fbpreview").Err(err).Msg("set graphics mode failed")
	}
	_ = hideCursor()
	defer func() {
		_ = showCursor()
		if err := restoreTextMode(); err != nil {
			p.Log.Error().Str("component", "fbpreview").Err(err).Msg("restore text mode failed")
		}
	}()

	preset := p.Preset
	if preset.Name == "" {
		preset = icon.PresetManagement
	}
	master, err := icon.RenderPreset(masterSize, preset)
	if err != nil {
		return err
	}

	if err := blit(dev, bounds, master); err != nil {
		return err
	}
	p.Log.Info().Str("component", "fbpreview").Str("preset", preset.Name).Msg("icon on screen")

	<-ctx.Done()
	return nil
}

// blit scales the icon into the largest centered square the
// framebuffer can hold and copies it over a black background.
func blit(dev *fb.Device, bounds image.Rectangle, master image.Image) error {
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	if side < 1 {
		return fmt.Errorf("framebuffer too small: %v", bounds)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), master, master.Bounds(), xdraw.Src, nil)

	offX := bounds.Min.X + (bounds.Dx()-side)/2
	offY := bounds.Min.Y + (bounds.Dy()-side)/2
	black := color.RGBA{A: 0xFF}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sx, sy := x-offX, y-offY
			if sx < 0 || sy < 0 || sx >= side || sy >= side {
				dev.Set(x, y, black)
				continue
			}
			px := scaled.RGBAAt(sx, sy)
			// The framebuffer has no alpha; composite over black.
			dev.Set(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xFF})
		}
	}
	return nil
}
