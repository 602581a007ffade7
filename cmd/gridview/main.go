// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command gridview renders a source file through the gridview pipeline and
// saves the last frame as a PNG.
//
// Usage:
//
//	gridview [flags] [file]
//
// Without a file a built-in Go sample is shown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/config"
	"github.com/gogpu/gridview/cursor"
	"github.com/gogpu/gridview/editor"
	"github.com/gogpu/gridview/highlight"
	"github.com/gogpu/gridview/internal/schedule"
	"github.com/gogpu/gridview/shaping"
	"github.com/gogpu/gridview/surface"
)

// errFramesDone stops the frame loop after the requested number of frames.
var errFramesDone = errors.New("frames done")

type options struct {
	configPath string
	output     string
	frames     int
	fps        int
	font       string
	theme      string
	backend    string
	scale      float64
	cols, rows int
	watch      bool
	verbose    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		o        options
		showHelp bool
	)

	pflag.StringVarP(&o.configPath, "config", "c", "", "Path to a YAML configuration file")
	pflag.StringVarP(&o.output, "output", "o", "gridview.png", "PNG file for the last frame")
	pflag.IntVarP(&o.frames, "frames", "n", 30, "Number of frames to render")
	pflag.IntVar(&o.fps, "fps", 60, "Frame rate limit")
	pflag.StringVarP(&o.font, "font", "f", "", "Font setting, e.g. Go_Mono:h16 (overrides config)")
	pflag.StringVarP(&o.theme, "theme", "t", "", "Highlighting theme (overrides config)")
	pflag.StringVar(&o.backend, "backend", "", "Surface backend (overrides config)")
	pflag.Float64Var(&o.scale, "scale", 0, "Device pixel ratio (overrides config)")
	pflag.IntVar(&o.cols, "cols", 0, "Grid columns (overrides config)")
	pflag.IntVar(&o.rows, "rows", 0, "Grid rows (overrides config)")
	pflag.BoolVarP(&o.watch, "watch", "w", false, "Reload the font setting when the config file changes")
	pflag.BoolVarP(&o.verbose, "verbose", "v", false, "Log per-frame diagnostics")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stderr, "Usage: gridview [flags] [file]\n\n")
		pflag.PrintDefaults()
		return 0
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gridview.SetLogger(logger)

	cfg, err := loadConfig(&o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	name, source, err := readSource(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := render(ctx, &o, cfg, name, source, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set on the command line.
func loadConfig(o *options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		c, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = c
	}

	flags := pflag.CommandLine
	if flags.Changed("font") {
		cfg.Font = o.font
	}
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("scale") {
		cfg.Window.Scale = o.scale
	}
	if flags.Changed("cols") {
		cfg.Window.Columns = o.cols
	}
	if flags.Changed("rows") {
		cfg.Window.Rows = o.rows
	}
	if o.watch && o.configPath == "" {
		return config.Config{}, errors.New("--watch needs --config")
	}
	if o.frames < 1 || o.fps < 1 {
		return config.Config{}, fmt.Errorf("--frames and --fps must be positive")
	}
	return cfg, cfg.Validate()
}

func readSource(args []string) (name, source string, err error) {
	if len(args) == 0 {
		return "sample.go", sample, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return args[0], string(data), nil
}

func render(ctx context.Context, o *options, cfg config.Config, name, source string, logger *slog.Logger) error {
	sched := schedule.New()
	ed := editor.New(editor.WithScheduler(sched))

	hl := highlight.New(cfg.Theme)
	d, err := newDemo(ed, hl, cfg, name, source)
	if err != nil {
		return err
	}

	shaperOpts := []shaping.ShaperOption{shaping.WithFont(cfg.Font), shaping.WithLogger(logger)}
	if cfg.ShapingCache > 0 {
		shaperOpts = append(shaperOpts, shaping.WithCacheLimit(cfg.ShapingCache))
	}
	shaper, err := shaping.NewCachingShaper(shaperOpts...)
	if err != nil {
		return err
	}

	r, err := gridview.NewRenderer(ed,
		gridview.WithShaper(shaper),
		gridview.WithCursorRenderer(cursor.New(cursor.WithAnimationLength(cfg.Cursor.Animation))),
		gridview.WithScheduler(sched),
		gridview.WithSurfaceBackend(cfg.Backend),
		gridview.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	if o.watch {
		go func() {
			err := config.Watch(ctx, o.configPath, func(c config.Config) {
				ed.SetFont(c.Font)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("gridview: config watch stopped", "err", err)
			}
		}()
	}

	coords := gridview.CoordinateSystem{Scale: cfg.Window.Scale}
	root, err := newRoot(r.FontMetrics(), cfg, coords)
	if err != nil {
		return err
	}
	defer func() { _ = root.Close() }()

	frame := 0
	err = sched.Run(ctx, time.Second/time.Duration(o.fps), func(dt time.Duration) error {
		d.step(frame)
		fontChanged, err := r.Draw(root, coords, dt)
		if err != nil {
			return err
		}
		if fontChanged {
			_ = root.Close()
			if root, err = newRoot(r.FontMetrics(), cfg, coords); err != nil {
				return err
			}
			logger.Info("gridview: root resized", "width", root.Width(), "height", root.Height())
		}
		frame++
		if frame >= o.frames {
			return errFramesDone
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFramesDone) && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := savePNG(o.output, root); err != nil {
		return err
	}
	logger.Info("gridview: frame saved", "path", o.output, "frames", frame,
		"width", root.Width(), "height", root.Height())
	return nil
}

// newRoot allocates the root target for the grid at the current cell size.
func newRoot(m gridview.FontMetrics, cfg config.Config, coords gridview.CoordinateSystem) (*surface.ImageSurface, error) {
	scale := coords.Scale
	if scale == 0 {
		scale = 1
	}
	w, h := m.SurfaceSize(cfg.Window.Columns, cfg.Window.Rows)
	return surface.NewImageSurface(int(float64(w)*scale), int(float64(h)*scale))
}

func savePNG(path string, s *surface.ImageSurface) error {
	dc := s.Context()
	if dc == nil {
		return fmt.Errorf("surface has no pixels")
	}
	return dc.SavePNG(path)
}
