// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ik5/colorfreq/pipeline"
)

// Terminal paints each reading as a swatch of 24-bit ANSI background color
// followed by the frequency, wavelength and hex value.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	width   int
	inPlace bool
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithSwatchWidth sets the swatch width in cells. The default is 8.
func WithSwatchWidth(n int) TerminalOption {
	return func(t *Terminal) {
		if n > 0 {
			t.width = n
		}
	}
}

// InPlace redraws a single line instead of scrolling.
func InPlace() TerminalOption {
	return func(t *Terminal) { t.inPlace = true }
}

func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{w: w, width: 8}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) Display(_ context.Context, r pipeline.Reading) error {
	red, green, blue := r.Color.Bytes()

	end := "\n"
	if t.inPlace {
		end = "\x1b[K"
	}
	line := fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m %9.2f Hz %6.1f nm %s%s",
		red, green, blue, strings.Repeat(" ", t.width),
		r.Frequency, r.Wavelength, r.Color.Hex(), end)
	if t.inPlace {
		line = "\r" + line
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := io.WriteString(t.w, line); err != nil {
		return fmt.Errorf("write swatch: %w", err)
	}
	return nil
}
