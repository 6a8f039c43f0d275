// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrInvalidFrameLength = errors.New("frame length must be positive")
	ErrUnknownFormat      = errors.New("no decoder registered for format")
)
