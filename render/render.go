// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/colorfreq/pipeline"
)

// Renderer displays one reading.
type Renderer interface {
	Display(ctx context.Context, r pipeline.Reading) error
}

// Func adapts a function to Renderer.
type Func func(ctx context.Context, r pipeline.Reading) error

func (f Func) Display(ctx context.Context, r pipeline.Reading) error { return f(ctx, r) }

// Multi displays each reading on every renderer, even when some fail.
type Multi []Renderer

func (m Multi) Display(ctx context.Context, r pipeline.Reading) error {
	var errs []error
	for i, rd := range m {
		if err := rd.Display(ctx, r); err != nil {
			errs = append(errs, fmt.Errorf("renderer %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Log writes every reading to a logger at the given level.
type Log struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (l Log) Display(ctx context.Context, r pipeline.Reading) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(ctx, l.Level, "color",
		"frequency_hz", r.Frequency,
		"wavelength_nm", r.Wavelength,
		"hex", r.Color.Hex(),
	)
	return nil
}
