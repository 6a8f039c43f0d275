// SPDX-License-Identifier: EPL-2.0

package spectrum

import "errors"

var (
	// ErrEmptyFrame indicates a frame with no samples.
	ErrEmptyFrame = errors.New("frame has no samples")

	// ErrInvalidSampleRate indicates a sample rate that is not a positive finite number.
	ErrInvalidSampleRate = errors.New("sample rate must be positive and finite")

	// ErrUnknownWindow indicates a window name that matches no window function.
	ErrUnknownWindow = errors.New("unknown window")
)
