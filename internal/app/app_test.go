package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flcms/crest/internal/export"
	"github.com/flcms/crest/internal/web"
)

func TestRunExportOnlyReturnsImmediately(t *testing.T) {
	dir := t.TempDir()
	a := New(zerolog.Nop())
	a.Exporter = &export.Exporter{
		OutDir: dir,
		Plan:   export.Plan{{Label: "icon_16.png", Size: 16}},
	}
	require.NoError(t, a.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "icon_16.png"))
	assert.NoError(t, err)
}

func TestRunPropagatesExportErrors(t *testing.T) {
	a := New(zerolog.Nop())
	a.Exporter = &export.Exporter{
		OutDir: t.TempDir(),
		Plan:   export.Plan{{Label: "bad.png", Size: -1}},
	}
	assert.Error(t, a.Run(context.Background()))
}

func TestRunBlocksOnServerUntilCanceled(t *testing.T) {
	a := New(zerolog.Nop())
	a.Web = &web.NoopServer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("Run returned before cancel: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestExitUnblocksRun(t *testing.T) {
	a := New(zerolog.Nop())
	a.Web = &web.NoopServer{}

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	wantErr := errors.New("subsystem gave up")
	a.Exit(wantErr)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, wantErr)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Exit")
	}
}
