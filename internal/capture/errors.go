// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	ErrEmptyCommand      = errors.New("empty recorder command")
	ErrUnterminatedQuote = errors.New("unterminated quote in recorder command")
)
