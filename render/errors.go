// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var ErrMailboxClosed = errors.New("mailbox closed")
