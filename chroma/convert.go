// SPDX-License-Identifier: EPL-2.0

package chroma

import "math"

// Fixed constants of the spectral model.
const (
	Gamma        = 0.8
	MaxIntensity = 255.0
)

// Convert maps a wavelength in nanometres to an EightBit color.
func Convert(wavelength float64) Color {
	r, g, b := bandRGB(wavelength)
	factor := falloff(wavelength)

	return Color{
		R:              quantize(r * factor),
		G:              quantize(g * factor),
		B:              quantize(b * factor),
		Representation: EightBit,
	}
}

// ConvertAs maps a wavelength to a color in the requested representation.
func ConvertAs(wavelength float64, rep Representation) Color {
	return Convert(wavelength).As(rep)
}

// bandRGB returns the unscaled channel intensities for the band containing w.
// Bands are half-open except the last, which includes 700 nm.
func bandRGB(w float64) (r, g, b float64) {
	switch {
	case w >= 380 && w < 440:
		return -(w - 440) / (440 - 380), 0, 1
	case w >= 440 && w < 490:
		return 0, (w - 440) / (490 - 440), 1
	case w >= 490 && w < 510:
		return 0, 1, -(w - 510) / (510 - 490)
	case w >= 510 && w < 580:
		return (w - 510) / (580 - 510), 1, 0
	case w >= 580 && w < 645:
		return 1, -(w - 645) / (645 - 580), 0
	case w >= 645 && w <= 700:
		return 1, 0, 0
	default:
		return 0, 0, 0
	}
}

// falloff dims the channels where the eye is less sensitive.
func falloff(w float64) float64 {
	switch {
	case w >= 380 && w < 420:
		return 0.3 + 0.7*(w-380)/(420-380)
	case w >= 420 && w < 645:
		return 1
	case w >= 645 && w <= 700:
		return 0.3 + 0.7*(700-w)/(700-645)
	default:
		return 0
	}
}

func quantize(linear float64) float64 {
	return math.RoundToEven(MaxIntensity * math.Pow(linear, Gamma))
}
