// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"strings"

	"github.com/mjibson/go-dsp/window"
)

// Window names an analysis window.
type Window int

const (
	WindowNone Window = iota
	WindowHann
	WindowHamming
	WindowBlackman
	WindowBartlett
	WindowFlatTop
)

var windowNames = map[Window]string{
	WindowNone:     "none",
	WindowHann:     "hann",
	WindowHamming:  "hamming",
	WindowBlackman: "blackman",
	WindowBartlett: "bartlett",
	WindowFlatTop:  "flattop",
}

func (w Window) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("window(%d)", int(w))
}

// ParseWindow resolves a window by name. "rectangular" and "" mean none.
func ParseWindow(s string) (Window, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "rectangular", "rect":
		return WindowNone, nil
	case "hanning":
		return WindowHann, nil
	case "flat-top":
		return WindowFlatTop, nil
	}

	for w, n := range windowNames {
		if n == name {
			return w, nil
		}
	}
	return WindowNone, fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// coefficients returns the go-dsp generator for w, or nil for no window.
func (w Window) coefficients() func(int) []float64 {
	switch w {
	case WindowHann:
		return window.Hann
	case WindowHamming:
		return window.Hamming
	case WindowBlackman:
		return window.Blackman
	case WindowBartlett:
		return window.Bartlett
	case WindowFlatTop:
		return window.FlatTop
	default:
		return nil
	}
}
