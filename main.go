// Command crest renders the FLCMS app icon and exports it at every
// shipped size. It can also serve a browser preview and put the icon
// on a Linux framebuffer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flcms/crest/internal/app"
	"github.com/flcms/crest/internal/applog"
	"github.com/flcms/crest/internal/export"
	"github.com/flcms/crest/internal/fbpreview"
	"github.com/flcms/crest/internal/icon"
	"github.com/flcms/crest/internal/web"
)

func main() {
	outDir := flag.String("out", "dist", "directory the exported rasters are written to")
	masterSize := flag.Int("size", 0, "master render size in pixels; 0 uses the largest plan entry")
	presetName := flag.String("preset", "management", "icon preset: management or simple")
	sizesFlag := flag.String("sizes", "", `export plan override as "label.png=size,..."`)
	icoPath := flag.String("ico", "", "also pack the small sizes into this .ico file")
	sheetPath := flag.String("sheet", "", "also write a labelled contact sheet to this PNG")
	fontPath := flag.String("font", "", "TTF file for contact sheet labels (falls back to a bitmap face)")
	noExport := flag.Bool("no-export", false, "skip the export run (useful with -serve or -preview)")
	serveAddr := flag.String("serve", "", "serve the browser preview on this address, e.g. :8080")
	staticDir := flag.String("static", "", "serve the preview UI from this directory instead of the embedded one")
	preview := flag.Bool("preview", false, "show the icon on the Linux framebuffer until interrupted")
	fbDevice := flag.String("fb", "/dev/fb0", "framebuffer device used by -preview")
	debug := flag.Bool("debug", false, "enable debug logging")
	logPath := flag.String("logpath", "", "append logs to this file in addition to the console")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via CREST_STDIO_LOG")
	flag.Parse()

	// Best-effort: route all stdout/stderr output (including panic stack
	// traces) to a file so crashes are diagnosable even when -preview
	// left the console in graphics mode.
	redirectPath := *stdioLog
	if redirectPath == "" {
		redirectPath = os.Getenv("CREST_STDIO_LOG")
	}
	if redirectPath != "" {
		if err := redirectStdIO(redirectPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	logger, closeLog, err := applog.New(*debug, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging setup error:", err)
		os.Exit(1)
	}
	defer closeLog()

	plan := export.DefaultPlan()
	if *sizesFlag != "" {
		plan, err = export.ParsePlan(*sizesFlag)
		if err != nil {
			logger.Error().Str("component", "main").Err(err).Msg("bad -sizes value")
			os.Exit(2)
		}
	}
	preset := icon.PresetByName(*presetName)

	a := app.New(logger)
	if !*noExport {
		a.Exporter = &export.Exporter{
			OutDir:     *outDir,
			Preset:     preset,
			Plan:       plan,
			MasterSize: *masterSize,
			ICOPath:    *icoPath,
			SheetPath:  *sheetPath,
			FontPath:   *fontPath,
			Log:        logger,
		}
	}
	if *serveAddr != "" {
		cfg, err := web.DefaultServerConfigFromEnv(*serveAddr)
		if err != nil {
			logger.Error().Str("component", "main").Err(err).Msg("bad server environment")
			os.Exit(2)
		}
		srv := web.NewHTTPServer(cfg.ListenAddr)
		srv.StaticDir = *staticDir
		srv.DevMode = cfg.DevMode
		srv.API = web.APIV1Config{DefaultPreset: preset, Plan: plan}
		a.Web = srv
		logger.Info().Str("component", "main").Str("addr", cfg.ListenAddr).Msg("preview server enabled")
	}
	if *preview {
		a.Preview = &fbpreview.Preview{Device: *fbDevice, Preset: preset, Log: logger}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Str("component", "main").Err(err).Msg("crest failed")
		os.Exit(1)
	}
}
