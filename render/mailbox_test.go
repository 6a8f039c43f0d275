// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/ik5/colorfreq/pipeline"
)

func reading(hz float64) pipeline.Reading { return pipeline.Reading{Frequency: hz} }

func TestMailbox_LatestWins(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	mb := NewMailbox()
	is.True(!mb.Put(reading(1))) // empty slot
	is.True(mb.Put(reading(2)))  // replaces 1
	is.True(mb.Put(reading(3)))  // replaces 2

	got, err := mb.Get(context.Background())
	is.NoErr(err)
	is.Equal(got.Frequency, 3.0)
	is.Equal(mb.Overwritten(), uint64(2))
}

func TestMailbox_GetBlocksUntilPut(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	mb := NewMailbox()
	got := make(chan pipeline.Reading, 1)
	go func() {
		r, err := mb.Get(context.Background())
		if err == nil {
			got <- r
		}
	}()

	select {
	case <-got:
		t.Fatal("Get returned before Put")
	case <-time.After(20 * time.Millisecond):
	}

	mb.Put(reading(440))
	select {
	case r := <-got:
		is.Equal(r.Frequency, 440.0)
	case <-time.After(time.Second):
		t.Fatal("Get did not wake up after Put")
	}
}

func TestMailbox_NeverReorders(t *testing.T) {
	t.Parallel()

	mb := NewMailbox()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const n = 5000
	var wg sync.WaitGroup
	wg.Go(func() {
		for i := 1; i <= n; i++ {
			mb.Put(reading(float64(i)))
		}
		mb.Close()
	})

	last := 0.0
	received := 0
	for {
		r, err := mb.Get(ctx)
		if errors.Is(err, ErrMailboxClosed) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if r.Frequency <= last {
			t.Fatalf("received %v after %v", r.Frequency, last)
		}
		last = r.Frequency
		received++
	}
	wg.Wait()

	if last != n {
		t.Errorf("last reading = %v, want %d", last, n)
	}
	if uint64(received)+mb.Overwritten() != n {
		t.Errorf("received %d + overwritten %d != %d", received, mb.Overwritten(), n)
	}
}

func TestMailbox_ContextCancel(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := NewMailbox().Get(ctx)
	is.True(errors.Is(err, context.DeadlineExceeded))
}

func TestMailbox_Close(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	mb := NewMailbox()
	mb.Put(reading(7))
	mb.Close()
	mb.Close()

	is.True(!mb.Put(reading(8))) // ignored after close

	r, err := mb.Get(context.Background())
	is.NoErr(err)
	is.Equal(r.Frequency, 7.0) // pending reading survives Close

	_, err = mb.Get(context.Background())
	is.True(errors.Is(err, ErrMailboxClosed))
}

func TestMailbox_CloseWakesGet(t *testing.T) {
	t.Parallel()

	mb := NewMailbox()
	errc := make(chan error, 1)
	go func() {
		_, err := mb.Get(context.Background())
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	mb.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrMailboxClosed) {
			t.Errorf("Get() error = %v, want ErrMailboxClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not wake Get")
	}
}
