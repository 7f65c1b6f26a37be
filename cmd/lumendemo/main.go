// Command lumendemo renders a progressive light-ray demo with lumen.
//
// A point light in the middle of the image emits rays that bounce once off
// the image border. Rays are drawn in batches into the scratch buffer, a
// preview is composited after every batch, and each completed sample is
// consolidated into the running average.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/lumen"
	"github.com/gogpu/lumen/internal/hud"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file (width, height, rays_per_sample)")
		width      = flag.Int("width", 0, "image width (overrides config)")
		height     = flag.Int("height", 0, "image height (overrides config)")
		rays       = flag.Int("rays", 0, "rays per sample (overrides config)")
		samples    = flag.Int("samples", 8, "number of samples to render")
		batch      = flag.Int("batch", 256, "rays traced between preview updates")
		seed       = flag.Uint64("seed", 1, "random seed")
		exposure   = flag.Float64("exposure", 1, "light intensity multiplier")
		scale      = flag.Int("scale", 1, "integer upscale factor for the output image")
		output     = flag.String("output", "lumen.png", "output file (.png or .bmp)")
		showHUD    = flag.Bool("hud", true, "overlay render progress on the output")
		verbose    = flag.Bool("v", false, "enable debug logging")
		trace      = flag.Bool("trace", false, "log draw span timings (implies -v)")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose || *trace {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	lumen.SetLogger(logger)

	cfg, err := loadConfig(*configPath, *width, *height, *rays)
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}
	if *samples < 1 || *batch < 1 || *scale < 1 {
		logger.Error("samples, batch and scale must be positive")
		os.Exit(2)
	}

	var opts []lumen.Option
	if *trace {
		opts = append(opts, lumen.WithHook(lumen.LogHook{}))
	}
	r, err := lumen.NewRenderer(cfg, opts...)
	if err != nil {
		logger.Error("renderer", "err", err)
		os.Exit(1)
	}

	p := message.NewPrinter(language.English)
	em := newEmitter(cfg, *seed, float32(*exposure))
	frame := render(r, em, *samples, *batch, func(pr lumen.Progress) {
		logger.Info(p.Sprintf("sample %d/%d complete", pr.Samples, *samples),
			"rays", p.Sprintf("%d", pr.Samples*cfg.RaysPerSample))
	})

	img := frame.Image()
	if *scale > 1 {
		img = frame.Scale(cfg.Width*(*scale), cfg.Height*(*scale))
	}
	if *showHUD {
		hud.Overlay(img, []string{
			p.Sprintf("%d x %d", cfg.Width, cfg.Height),
			p.Sprintf("samples %d", *samples),
			p.Sprintf("rays %d", *samples*cfg.RaysPerSample),
		})
	}

	if err := lumen.Save(*output, img); err != nil {
		logger.Error("save", "err", err)
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("saved %s", *output), "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
}

// loadConfig reads the optional config file and applies non-zero flag
// overrides.
func loadConfig(path string, width, height, rays int) (lumen.Config, error) {
	cfg := lumen.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = lumen.LoadConfig(path); err != nil {
			return lumen.Config{}, err
		}
	}
	if width != 0 {
		cfg.Width = width
	}
	if height != 0 {
		cfg.Height = height
	}
	if rays != 0 {
		cfg.RaysPerSample = rays
	}
	return cfg, cfg.Validate()
}

// render runs the progressive loop and returns the frame showing the
// converged image. done is called after every consolidated sample.
func render(r *lumen.Renderer, em *emitter, samples, batch int, done func(lumen.Progress)) *lumen.Frame {
	scratch, final, frame := r.NewBuffer(), r.NewBuffer(), r.NewFrame()
	rays := r.Config().RaysPerSample

	for s := 0; s < samples; s++ {
		for traced := 0; traced < rays; {
			n := min(batch, rays-traced)
			r.Draw(scratch, em.trace(n))
			traced += n
			r.Display(lumen.Progress{Samples: s, Rays: traced}, final, scratch, frame)
		}
		r.Consolidate(final, scratch, s)
		done(lumen.Progress{Samples: s + 1})
	}

	// Scratch is empty after consolidation, so this shows final alone.
	r.Display(lumen.Progress{Samples: samples}, final, scratch, frame)
	return frame
}
