// SPDX-License-Identifier: EPL-2.0

package wavelength

import "errors"

var (
	// ErrUnknownMethod indicates a method name that matches no strategy.
	ErrUnknownMethod = errors.New("unknown mapping method")
)
