// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/internal/app"
	"github.com/ik5/colorfreq/internal/config"
	"github.com/ik5/colorfreq/internal/observe"
	"github.com/ik5/colorfreq/pipeline"
	"github.com/ik5/colorfreq/render"
	"github.com/ik5/colorfreq/spectrum"
)

// runFlags are shared by listen and play.
type runFlags struct {
	frameLength int
	window      string
	addr        string
	inPlace     bool
	noTerminal  bool
	metrics     bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.frameLength, "frame-length", 0, "samples per analysis frame (default from config)")
	fs.StringVar(&f.window, "window", "", "analysis window: none, hann, hamming, blackman, bartlett, flattop")
	fs.StringVar(&f.addr, "addr", "", "serve the browser viewer on this address, e.g. :8080")
	fs.BoolVar(&f.inPlace, "in-place", false, "redraw a single terminal line")
	fs.BoolVar(&f.noTerminal, "no-terminal", false, "do not draw swatches on stdout")
	fs.BoolVar(&f.metrics, "metrics", false, "expose Prometheus metrics")
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("frame-length") {
		cfg.Audio.FrameLength = f.frameLength
	}
	if fs.Changed("window") {
		cfg.Audio.Window = f.window
	}
	if fs.Changed("addr") {
		cfg.Render.WebsocketAddr = f.addr
	}
	if fs.Changed("in-place") {
		cfg.Render.InPlace = f.inPlace
	}
	if fs.Changed("no-terminal") {
		cfg.Render.Terminal = !f.noTerminal
	}
	if fs.Changed("metrics") {
		cfg.Metrics.Enabled = f.metrics
	}
	return config.Validate(cfg)
}

// run frames src, drives it through the configured pipeline and renderers
// until the stream ends or ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer, src audio.Source, realtime bool) error {
	framer, err := audio.NewFramer(audio.Prepare(src, cfg.Audio.SampleRate), cfg.Audio.FrameLength)
	if err != nil {
		_ = src.Close()
		return err
	}

	pipe := pipeline.New(cfg.MappingMethod(logger),
		pipeline.WithRepresentation(cfg.ColorRepresentation()),
		pipeline.WithAnalyzer(spectrum.NewAnalyzer(
			spectrum.WithWindow(cfg.AnalysisWindow()),
			spectrum.WithLogger(logger),
		)),
	)

	opts := []app.Option{app.WithLogger(logger), app.WithRealtime(realtime)}

	var metrics *observe.Metrics
	var provider *observe.Provider
	if cfg.Metrics.Enabled {
		if provider, err = observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version}); err != nil {
			_ = framer.Close()
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(sctx); err != nil {
				logger.Warn("metrics shutdown failed", "err", err)
			}
		}()
		if metrics, err = observe.NewMetrics(provider.MeterProvider); err != nil {
			_ = framer.Close()
			return err
		}
		opts = append(opts, app.WithMetrics(metrics))
	}

	var renderers render.Multi
	if cfg.Render.Terminal {
		var topts []render.TerminalOption
		if cfg.Render.InPlace {
			topts = append(topts, render.InPlace())
		}
		renderers = append(renderers, render.NewTerminal(out, topts...))
	}

	mux := http.NewServeMux()
	addr := cfg.Render.WebsocketAddr
	if addr != "" {
		hopts := []render.HubOption{render.WithHubLogger(logger)}
		if metrics != nil {
			hopts = append(hopts, render.WithViewers(metrics.Viewers))
		}
		hub := render.NewHub(hopts...)
		renderers = append(renderers, hub)
		mux.Handle("/", hub.Handler())
		opts = append(opts, app.OnStop(hub.Close))
	}
	if provider != nil {
		mux.Handle("GET /metrics", provider.Handler())
		if addr == "" {
			addr = cfg.Metrics.Addr
		}
	}
	if addr != "" {
		opts = append(opts, app.WithHTTP(addr, mux))
	}

	if len(renderers) == 0 {
		renderers = append(renderers, render.Log{Logger: logger, Level: slog.LevelInfo})
	}

	logger.Info("colorfreq starting",
		"version", version,
		"method", pipe.Method(),
		"representation", pipe.Representation(),
		"sample_rate", framer.SampleRate(),
		"frame_length", framer.FrameLength(),
		"window", cfg.AnalysisWindow(),
		"http", addr,
	)
	return app.New(framer, pipe, renderers, opts...).Run(ctx)
}
