// SPDX-License-Identifier: EPL-2.0

package chroma

import "errors"

var (
	ErrUnknownRepresentation = errors.New("unknown color representation")
)
