// Package app ties the subsystems together: run the export, then keep
// the preview surfaces (HTTP, framebuffer) alive until shutdown.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/flcms/crest/internal/export"
	"github.com/flcms/crest/internal/fbpreview"
	"github.com/flcms/crest/internal/web"
)

type App struct {
	Log      zerolog.Logger
	Exporter *export.Exporter
	Web      web.Server
	Preview  *fbpreview.Preview

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(logger zerolog.Logger) *App {
	return &App{Log: logger, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running. Any subsystem can call this
// to terminate the process via the generic codepath.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Run executes the export (when configured), then blocks on the
// preview surfaces until the context is canceled or a subsystem asks
// to exit. With no preview configured it returns as soon as the
// export is done.
func (app *App) Run(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if app.Exporter != nil {
		results, err := app.Exporter.Run(ctx)
		if err != nil {
			app.Log.Error().Str("component", "app").Err(err).Msg("export failed")
			return err
		}
		var total int64
		for _, r := range results {
			total += r.Bytes
		}
		app.Log.Info().Str("component", "app").
			Int("files", len(results)).Int64("bytes", total).
			Msg("export complete")
	}

	serving := false
	if app.Web != nil {
		if err := app.Web.Start(ctx); err != nil {
			app.Log.Error().Str("component", "app").Err(err).Msg("web server start failed")
			return err
		}
		defer func() { _ = app.Web.Stop() }()
		serving = true
	}

	var wg sync.WaitGroup
	if app.Preview != nil {
		serving = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := app.Preview.Show(ctx); err != nil {
				app.Exit(err)
			}
		}()
	}

	if !serving {
		return nil
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-app.exitCh:
	}
	wg.Wait()
	return err
}
