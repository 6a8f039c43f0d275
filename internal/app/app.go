// SPDX-License-Identifier: EPL-2.0

// Package app runs the capture and render loops of colorfreq.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/internal/observe"
	"github.com/ik5/colorfreq/pipeline"
	"github.com/ik5/colorfreq/render"
)

const shutdownTimeout = 5 * time.Second

// App pulls frames from a source, maps each to a reading and hands the
// newest reading to a renderer. Capture never waits for rendering.
type App struct {
	src      audio.FrameSource
	pipe     *pipeline.Pipeline
	renderer render.Renderer
	logger   *slog.Logger
	metrics  *observe.Metrics
	realtime bool

	addr     string
	listener net.Listener
	handler  http.Handler
	onStop   []func() error

	closeOnce sync.Once
	closeErr  error
}

// Option configures an App.
type Option func(*App)

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records loop metrics on m. Without it nothing is recorded.
func WithMetrics(m *observe.Metrics) Option {
	return func(a *App) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithRealtime paces capture at one frame per frame duration. Use it for
// file playback; live sources are paced by the device.
func WithRealtime(on bool) Option {
	return func(a *App) { a.realtime = on }
}

// WithHTTP serves handler on addr for the lifetime of Run.
func WithHTTP(addr string, handler http.Handler) Option {
	return func(a *App) {
		a.addr = addr
		a.handler = handler
	}
}

// WithListener serves handler on an already open listener.
func WithListener(ln net.Listener, handler http.Handler) Option {
	return func(a *App) {
		a.listener = ln
		a.handler = handler
	}
}

// OnStop registers fn to run when the render loop has finished, before the
// HTTP server shuts down.
func OnStop(fn func() error) Option {
	return func(a *App) { a.onStop = append(a.onStop, fn) }
}

func New(src audio.FrameSource, pipe *pipeline.Pipeline, renderer render.Renderer, opts ...Option) *App {
	a := &App{
		src:      src,
		pipe:     pipe,
		renderer: renderer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.metrics == nil {
		a.metrics, _ = observe.NewMetrics(noop.NewMeterProvider())
	}
	return a
}

// Run blocks until the source ends, ctx is cancelled or a loop fails. End of
// stream and cancellation return nil; a capture failure is returned wrapped.
// The source is closed before Run returns.
func (a *App) Run(ctx context.Context) error {
	defer a.closeSource()

	ln := a.listener
	if ln == nil && a.addr != "" {
		var err error
		if ln, err = net.Listen("tcp", a.addr); err != nil {
			return fmt.Errorf("listen %s: %w", a.addr, err)
		}
	}
	if ln != nil {
		a.logger.Info("serving http", "addr", ln.Addr().String())
	}

	mb := render.NewMailbox()
	captured := make(chan struct{})
	rendered := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(captured)
		defer mb.Close()
		return a.capture(gctx, mb)
	})
	g.Go(func() error {
		defer close(rendered)
		return a.render(gctx, mb)
	})
	// A blocked device read only returns once the source is closed.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			_ = a.closeSource()
		case <-captured:
		}
		return nil
	})

	if ln != nil {
		srv := &http.Server{
			Handler:           a.handler,
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return gctx },
		}
		g.Go(func() error {
			if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve http: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			select {
			case <-gctx.Done():
			case <-rendered:
			}
			a.stop()
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		})
	} else {
		g.Go(func() error {
			select {
			case <-gctx.Done():
			case <-rendered:
			}
			a.stop()
			return nil
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (a *App) capture(ctx context.Context, mb *render.Mailbox) error {
	sampleRate := a.src.SampleRate()
	var limiter *rate.Limiter
	if a.realtime && sampleRate > 0 {
		frame := time.Duration(float64(a.src.FrameLength()) / float64(sampleRate) * float64(time.Second))
		limiter = rate.NewLimiter(rate.Every(frame), 1)
	}

	a.logger.Info("capture started", "sample_rate", sampleRate, "frame_length", a.src.FrameLength(),
		"method", a.pipe.Method(), "realtime", limiter != nil)

	var frames uint64
	for {
		frame, err := a.src.NextFrame(ctx)
		if errors.Is(err, io.EOF) {
			a.logger.Info("end of stream", "frames", frames)
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			a.metrics.Frames.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "error")))
			return fmt.Errorf("capture: %w", err)
		}
		frames++

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
		}

		start := time.Now()
		reading, err := a.pipe.Trace(frame.Samples, float64(sampleRate))
		a.metrics.PipelineDuration.Record(ctx, time.Since(start).Seconds())
		if err != nil {
			a.metrics.Frames.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "error")))
			a.logger.Warn("frame skipped", "frame", frame.Index, "err", err)
			continue
		}
		a.metrics.Frames.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "ok")))
		a.metrics.PeakFrequency.Record(ctx, reading.Frequency)

		a.logger.Debug("reading", "frame", frame.Index, "frequency_hz", reading.Frequency,
			"wavelength_nm", reading.Wavelength, "hex", reading.Color.Hex())

		if mb.Put(reading) {
			a.metrics.ReadingsOverwritten.Add(ctx, 1)
		}
	}
}

func (a *App) render(ctx context.Context, mb *render.Mailbox) error {
	for {
		r, err := mb.Get(ctx)
		if err != nil {
			// Closed after the last reading, or cancelled.
			return nil
		}
		if err := a.renderer.Display(ctx, r); err != nil {
			a.metrics.RenderErrors.Add(ctx, 1)
			a.logger.Warn("render failed", "err", err)
		}
	}
}

func (a *App) stop() {
	for _, fn := range a.onStop {
		if err := fn(); err != nil {
			a.logger.Warn("stop hook failed", "err", err)
		}
	}
}

func (a *App) closeSource() error {
	a.closeOnce.Do(func() {
		a.closeErr = a.src.Close()
		if a.closeErr != nil {
			a.logger.Warn("closing source failed", "err", a.closeErr)
		}
	})
	return a.closeErr
}
