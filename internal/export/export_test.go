package export

import (
	"context"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	plan, err := ParsePlan("app.png=256, small.png=32")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, Entry{Label: "app.png", Size: 256}, plan[0])
	assert.Equal(t, Entry{Label: "small.png", Size: 32}, plan[1])

	_, err = ParsePlan("")
	assert.Error(t, err)
	_, err = ParsePlan("nosize")
	assert.Error(t, err)
	_, err = ParsePlan("a.png=0")
	assert.Error(t, err)
	_, err = ParsePlan("a.png=8,a.png=16")
	assert.Error(t, err, "duplicate labels must be rejected")
}

func TestPlanMaxSize(t *testing.T) {
	assert.Equal(t, 1024, DefaultPlan().MaxSize())
	assert.Equal(t, 0, Plan{}.MaxSize())
}

func TestExporterWritesEveryEntry(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{
		OutDir: dir,
		Plan: Plan{
			{Label: "big.png", Size: 128},
			{Label: "mid.png", Size: 64},
			{Label: "small.png", Size: 32},
		},
	}
	results, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		f, err := os.Open(r.Path)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, r.Size, cfg.Width, r.Label)
		assert.Equal(t, r.Size, cfg.Height, r.Label)

		st, err := os.Stat(r.Path)
		require.NoError(t, err)
		assert.Equal(t, st.Size(), r.Bytes, "reported byte size must match the file")
	}
}

// Batch export of {512,256,128,64,32} from one 1024 master: every
// output has exactly the requested dimensions and nothing upscales.
func TestExporterBatchFromSingleMaster(t *testing.T) {
	if testing.Short() {
		t.Skip("1024 px master render")
	}
	dir := t.TempDir()
	e := &Exporter{OutDir: dir, Plan: DefaultPlan()}
	results, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 6)
	for _, r := range results {
		assert.LessOrEqual(t, r.Size, 1024)
		f, err := os.Open(r.Path)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, r.Size, cfg.Width)
	}
}

func TestExporterRejectsUpscaling(t *testing.T) {
	e := &Exporter{
		OutDir:     t.TempDir(),
		MasterSize: 32,
		Plan:       Plan{{Label: "too_big.png", Size: 64}},
	}
	_, err := e.Run(context.Background())
	assert.ErrorContains(t, err, "upscaling")
}

func TestExporterHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := &Exporter{
		OutDir: t.TempDir(),
		Plan:   Plan{{Label: "a.png", Size: 16}},
	}
	_, err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExporterWritesICOBundle(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{
		OutDir:  dir,
		ICOPath: "app.ico",
		Plan: Plan{
			{Label: "icon_64.png", Size: 64},
			{Label: "icon_32.png", Size: 32},
			{Label: "icon_16.png", Size: 16},
		},
	}
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "app.ico"))
	require.NoError(t, err)
	require.Greater(t, len(data), 6+3*16)

	// ICONDIR: reserved=0, type=1, count=3.
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[0:2]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[2:4]))
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data[4:6]))

	// First entry is the smallest size; its payload is a PNG.
	assert.Equal(t, uint8(16), data[6])
	firstOffset := binary.LittleEndian.Uint32(data[6+12 : 6+16])
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	assert.Equal(t, pngMagic, data[firstOffset:firstOffset+4])
}

func TestExporterWritesContactSheet(t *testing.T) {
	dir := t.TempDir()
	e := &Exporter{
		OutDir:    dir,
		SheetPath: "sheet.png",
		Plan: Plan{
			{Label: "icon_64.png", Size: 64},
			{Label: "icon_32.png", Size: 32},
		},
	}
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "sheet.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	// Two icons in a row plus margins, and room for labels below.
	assert.Equal(t, sheetMargin*3+64+32, cfg.Width)
	assert.Equal(t, sheetMargin*2+64+sheetLabelBand, cfg.Height)
}
