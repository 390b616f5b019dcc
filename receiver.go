// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq

import (
	"context"
	"iter"

	"github.com/petenewcomb/mpsq-go/internal/wakeslot"
)

// Receiver is the single consumer handle of a queue created by [New]. It is
// not cloneable and its methods must not be called concurrently with each
// other. Values come out in the global order their sends were accepted into
// the buffer, which preserves each producer's own send order but makes no
// promise about interleaving between producers.
type Receiver[T any] struct {
	state *sharedState[T]

	// closed marks the handle as released. Guarded by state.mu so that
	// senders racing Close observe a consistent liveness flag.
	closed bool
}

// Recv returns the next value, parking until one arrives. It follows a try,
// park, retry protocol: pop the front of the buffer if it is non-empty;
// otherwise report [ErrEndOfStream] if no sender shares remain (nothing can
// ever arrive); otherwise register a wake handle, release the lock, and park
// until a send or the release of the last sender share fires it. Every wake
// is treated as a hint, not a delivery: the buffer and share count are
// re-checked from scratch, so spurious wakes cost only a retry.
//
// If ctx is canceled while parked, Recv returns ctx.Err(). The registered
// wake handle may then be left behind, which is harmless: the next Recv
// re-checks the buffer before parking and replaces the stale registration
// with its own.
//
// After the receiver is closed or [ErrEndOfStream] has been returned, every
// subsequent call returns [ErrEndOfStream].
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	st := r.state
	for {
		st.mu.Lock()
		if r.closed {
			st.mu.Unlock()
			return zero, ErrEndOfStream
		}
		if st.buf.Len() > 0 {
			v := st.buf.PopFront()
			st.mu.Unlock()
			return v, nil
		}
		if st.senders == 0 {
			st.mu.Unlock()
			return zero, ErrEndOfStream
		}
		w := wakeslot.New()
		st.wake.Register(w)
		st.mu.Unlock()

		select {
		case <-w.Done():
			// Woken by a send or by the last sender share going away.
			// Either way, re-evaluate from the top.
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// TryRecv pops and returns the front value without parking. It reports false
// when the buffer is empty or the receiver has been closed, regardless of
// whether senders remain.
func (r *Receiver[T]) TryRecv() (T, bool) {
	st := r.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if r.closed || st.buf.Len() == 0 {
		var zero T
		return zero, false
	}
	return st.buf.PopFront(), true
}

// Values returns an iterator over the remaining values of the queue, parking
// between values as [Recv] does. The sequence ends at end of stream or when
// ctx is canceled; a ctx cancellation is indistinguishable from exhaustion
// here, so callers that need to tell them apart should use Recv directly.
func (r *Receiver[T]) Values(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := r.Recv(ctx)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// IsTerminated reports whether no sender shares remain (or the receiver
// itself has been closed), meaning no new values can ever be produced.
//
// Note the asymmetry: IsTerminated may report true while values still sit in
// the buffer, and [Recv] will drain those values before reporting
// [ErrEndOfStream]. IsTerminated answers "can anything new arrive", not
// "will the next Recv fail".
func (r *Receiver[T]) IsTerminated() bool {
	st := r.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return r.closed || st.senders == 0
}

// Close releases the receiver, cancelling the queue. All outstanding and
// future sends fail with [ErrReceiverDropped] from this point on, any parked
// wake registration is discarded without firing (nothing will be delivered to
// it), and buffered values are dropped so they can be collected. Close is
// idempotent and irreversible.
func (r *Receiver[T]) Close() {
	st := r.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	st.receiverLive = false
	st.wake.Clear()
	st.buf.Clear()
}
