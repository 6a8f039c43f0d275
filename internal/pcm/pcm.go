// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the sample conversions shared by the decoders, the raw
// capture source and the WAV writer.
package pcm

// FullScale returns the magnitude of the most negative integer sample at
// bitDepth, which maps to -1.0. Unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 1 << 7
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	default:
		return 1 << 15
	}
}

// FromInt normalizes an integer sample of the given bit depth into [-1, 1).
func FromInt(v, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// FromInt16 normalizes a 16-bit sample into [-1, 1).
func FromInt16(v int16) float32 {
	return float32(v) / (1 << 15)
}

// ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
// -1 maps to math.MinInt16 and 1 to math.MaxInt16.
func ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 1<<15 - 1
	case x <= -1:
		return -1 << 15
	case x < 0:
		return int16(x * (1 << 15))
	default:
		return int16(x * (1<<15 - 1))
	}
}

// Cubic is a Catmull-Rom interpolation between y1 and y2 at fraction x
// in [0, 1], using y0 and y3 as the outer neighbours.
func Cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
