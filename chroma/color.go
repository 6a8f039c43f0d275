// SPDX-License-Identifier: EPL-2.0

package chroma

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Representation states the scale of a Color's channels.
type Representation int

const (
	// Normalized channels are floats in [0, 1].
	Normalized Representation = iota
	// EightBit channels are whole numbers in [0, 255].
	EightBit
)

func (r Representation) String() string {
	switch r {
	case Normalized:
		return "normalized"
	case EightBit:
		return "8bit"
	default:
		return fmt.Sprintf("representation(%d)", int(r))
	}
}

// ParseRepresentation resolves "normalized" / "float" or "8bit" / "byte".
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normalized", "normalised", "float", "":
		return Normalized, nil
	case "8bit", "8-bit", "byte", "uint8":
		return EightBit, nil
	}
	return Normalized, fmt.Errorf("%w: %q", ErrUnknownRepresentation, s)
}

// Color is an RGB triple in an explicit representation.
type Color struct {
	R, G, B        float64
	Representation Representation
}

var _ color.Color = Color{}

// Black in the given representation.
func Black(rep Representation) Color {
	return Color{Representation: rep}
}

// As returns c expressed in rep.
func (c Color) As(rep Representation) Color {
	if c.Representation == rep {
		return c
	}

	switch rep {
	case EightBit:
		return Color{
			R:              math.RoundToEven(c.R * MaxIntensity),
			G:              math.RoundToEven(c.G * MaxIntensity),
			B:              math.RoundToEven(c.B * MaxIntensity),
			Representation: EightBit,
		}
	case Normalized:
		return Color{
			R:              c.R / MaxIntensity,
			G:              c.G / MaxIntensity,
			B:              c.B / MaxIntensity,
			Representation: Normalized,
		}
	default:
		return c
	}
}

// Bytes returns the 8-bit channels.
func (c Color) Bytes() (r, g, b uint8) {
	e := c.As(EightBit)
	return clampByte(e.R), clampByte(e.G), clampByte(e.B)
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Bytes()
	return color.RGBA{R: r8, G: g8, B: b8, A: 0xff}.RGBA()
}

// IsBlack reports whether every channel is zero.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

func (c Color) String() string {
	if c.Representation == EightBit {
		return fmt.Sprintf("{%.0f %.0f %.0f %s}", c.R, c.G, c.B, c.Representation)
	}
	return fmt.Sprintf("{%.4f %.4f %.4f %s}", c.R, c.G, c.B, c.Representation)
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= MaxIntensity:
		return 0xff
	}
	return uint8(v)
}
