// Package export turns one full-resolution render into the set of
// deliverable rasters: per-size PNGs, an optional ICO bundle, and an
// optional labelled contact sheet.
package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/flcms/crest/internal/icon"
)

// Entry maps an output label (file name) to a target pixel size.
type Entry struct {
	Label string
	Size  int
}

// Plan is the ordered set of rasters to produce from one master
// render. Every entry is resampled independently from the master;
// none may exceed the master size (no upscaling).
type Plan []Entry

// DefaultPlan mirrors the sizes the app ships with.
func DefaultPlan() Plan {
	return Plan{
		{Label: "app_icon.png", Size: 1024},
		{Label: "icon_512.png", Size: 512},
		{Label: "icon_256.png", Size: 256},
		{Label: "icon_128.png", Size: 128},
		{Label: "icon_64.png", Size: 64},
		{Label: "icon_32.png", Size: 32},
	}
}

// ParsePlan parses a "label=size,label=size" flag value.
func ParsePlan(s string) (Plan, error) {
	var plan Plan
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		label, sizeStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("plan entry %q: want label=size", part)
		}
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, fmt.Errorf("plan entry %q: %w", part, err)
		}
		plan = append(plan, Entry{Label: label, Size: size})
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("plan %q: no entries", s)
	}
	return plan, plan.Validate()
}

// Validate checks labels and sizes before any rendering happens.
func (p Plan) Validate() error {
	seen := make(map[string]bool, len(p))
	for _, e := range p {
		if e.Label == "" {
			return fmt.Errorf("plan entry with size %d has an empty label", e.Size)
		}
		if seen[e.Label] {
			return fmt.Errorf("duplicate plan label %q", e.Label)
		}
		seen[e.Label] = true
		if e.Size < 1 {
			return fmt.Errorf("plan entry %q: %w", e.Label, icon.ErrInvalidSize)
		}
	}
	return nil
}

// MaxSize returns the largest target in the plan, or 0 for an empty plan.
func (p Plan) MaxSize() int {
	max := 0
	for _, e := range p {
		if e.Size > max {
			max = e.Size
		}
	}
	return max
}

// Exporter renders the icon once at master resolution and writes every
// plan entry under OutDir.
type Exporter struct {
	OutDir     string
	Preset     icon.Preset
	Plan       Plan
	MasterSize int // 0 means the largest plan entry

	ICOPath   string // when set, also pack sizes <= 256 into this .ico
	SheetPath string // when set, also write a labelled contact sheet
	FontPath  string // optional TTF for sheet labels

	Log zerolog.Logger
}

// Result describes one written raster.
type Result struct {
	Label string
	Size  int
	Path  string
	Bytes int64

	img image.Image
	png []byte
}

// Run executes the plan. The master canvas is rendered exactly once;
// every smaller entry is resampled from it, never re-rendered, so all
// outputs come from the same composition.
func (e *Exporter) Run(ctx context.Context) ([]Result, error) {
	if len(e.Plan) == 0 {
		e.Plan = DefaultPlan()
	}
	if err := e.Plan.Validate(); err != nil {
		return nil, err
	}
	master := e.MasterSize
	if master == 0 {
		master = e.Plan.MaxSize()
	}
	for _, entry := range e.Plan {
		if entry.Size > master {
			return nil, fmt.Errorf("plan entry %q (%d px) exceeds master size %d: upscaling is not supported",
				entry.Label, entry.Size, master)
		}
	}

	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	canvas, err := icon.RenderPreset(master, e.preset())
	if err != nil {
		return nil, err
	}
	e.Log.Info().Str("component", "export").
		Str("preset", e.preset().Name).Int("master", master).
		Msg("master render complete")

	results := make([]Result, 0, len(e.Plan))
	for _, entry := range e.Plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var img image.Image = canvas
		if entry.Size != master {
			img, err = icon.Resample(canvas, entry.Size)
			if err != nil {
				return nil, fmt.Errorf("resample %q: %w", entry.Label, err)
			}
		}
		res, err := e.writePNG(entry, img)
		if err != nil {
			return nil, err
		}
		e.Log.Info().Str("component", "export").
			Str("file", res.Path).Int("size", res.Size).Int64("bytes", res.Bytes).
			Msg("wrote icon")
		results = append(results, res)
	}

	if e.ICOPath != "" {
		if err := e.writeICO(results); err != nil {
			return nil, err
		}
	}
	if e.SheetPath != "" {
		if err := e.writeSheet(results); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (e *Exporter) preset() icon.Preset {
	if e.Preset.Name == "" {
		return icon.PresetManagement
	}
	return e.Preset
}

func (e *Exporter) writePNG(entry Entry, img image.Image) (Result, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Result{}, fmt.Errorf("encode %q: %w", entry.Label, err)
	}
	path := filepath.Join(e.OutDir, entry.Label)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %q: %w", path, err)
	}
	return Result{
		Label: entry.Label,
		Size:  entry.Size,
		Path:  path,
		Bytes: int64(buf.Len()),
		img:   img,
		png:   buf.Bytes(),
	}, nil
}

func (e *Exporter) writeICO(results []Result) error {
	var fit []Result
	for _, r := range results {
		if r.Size <= maxICOEntrySize {
			fit = append(fit, r)
		}
	}
	if len(fit) == 0 {
		return fmt.Errorf("ico %q: no plan entry is %d px or smaller", e.ICOPath, maxICOEntrySize)
	}
	sort.Slice(fit, func(i, j int) bool { return fit[i].Size < fit[j].Size })

	path := e.ICOPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.OutDir, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()
	if err := encodeICO(f, fit); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	e.Log.Info().Str("component", "export").Str("file", path).Int("entries", len(fit)).Msg("wrote ico bundle")
	return nil
}

func (e *Exporter) writeSheet(results []Result) error {
	path := e.SheetPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.OutDir, path)
	}
	sheet, err := buildSheet(results, e.FontPath)
	if err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, sheet); err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	e.Log.Info().Str("component", "export").Str("file", path).Msg("wrote contact sheet")
	return nil
}
