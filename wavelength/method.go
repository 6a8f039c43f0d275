// SPDX-License-Identifier: EPL-2.0

package wavelength

import (
	"fmt"
	"strings"
)

// Method selects a frequency to wavelength strategy.
type Method int

const (
	Simple Method = iota
	Octave
	FourForty
)

// Methods lists every strategy in menu order.
func Methods() []Method {
	return []Method{Simple, Octave, FourForty}
}

func (m Method) String() string {
	switch m {
	case Simple:
		return "simple"
	case Octave:
		return "octave"
	case FourForty:
		return "440hz"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Wavelength is shorthand for Map(f, m).
func (m Method) Wavelength(f float64) float64 {
	return Map(f, m)
}

// Valid reports whether m is one of the defined strategies.
func (m Method) Valid() bool {
	return m >= Simple && m <= FourForty
}

// ParseMethod resolves a method name. Besides the canonical names it accepts
// the menu numbers "1", "2" and "3" and a few aliases. Matching ignores case
// and surrounding whitespace.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "linear", "1":
		return Simple, nil
	case "octave", "harmonic", "2":
		return Octave, nil
	case "440hz", "440", "fourforty", "a440", "3":
		return FourForty, nil
	}

	return Simple, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
