// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"sync"

	"github.com/ik5/colorfreq/pipeline"
)

// Mailbox hands readings from one producer to one consumer through a single
// slot. Put never blocks; a reading that was not taken in time is replaced
// and counted.
type Mailbox struct {
	mu          sync.Mutex
	slot        pipeline.Reading
	full        bool
	closed      bool
	overwritten uint64

	ready     chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewMailbox() *Mailbox {
	return &Mailbox{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Put stores r, replacing an undelivered reading. It reports whether one was
// replaced. Put after Close is a no-op.
func (m *Mailbox) Put(r pipeline.Reading) (replaced bool) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	replaced = m.full
	if replaced {
		m.overwritten++
	}
	m.slot = r
	m.full = true
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
	return replaced
}

// Get blocks until a reading is available and takes it. After Close, a
// pending reading is still delivered, then Get returns ErrMailboxClosed.
func (m *Mailbox) Get(ctx context.Context) (pipeline.Reading, error) {
	for {
		if r, ok, closed := m.take(); ok {
			return r, nil
		} else if closed {
			return pipeline.Reading{}, ErrMailboxClosed
		}

		select {
		case <-m.ready:
		case <-m.done:
		case <-ctx.Done():
			return pipeline.Reading{}, ctx.Err()
		}
	}
}

func (m *Mailbox) take() (r pipeline.Reading, ok, closed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.full {
		r, m.slot, m.full = m.slot, pipeline.Reading{}, false
		return r, true, m.closed
	}
	return pipeline.Reading{}, false, m.closed
}

// Close wakes a blocked Get. It is safe to call more than once.
func (m *Mailbox) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()
		close(m.done)
	})
}

// Overwritten returns how many readings were replaced before delivery.
func (m *Mailbox) Overwritten() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overwritten
}
