// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq

// Sender is a cloneable producer handle. All clones of a Sender share the
// same buffer and count toward the same set of sender shares; the [Receiver]
// observes end of stream only after every share has been closed.
//
// A single Sender handle may be used from multiple goroutines, but the usual
// pattern is one clone per producing goroutine, each released with a deferred
// [Sender.Close]. Using a handle after closing it is a lifecycle bug and
// panics.
type Sender[T any] struct {
	state *sharedState[T]

	// closed marks this particular handle as released. Guarded by state.mu
	// so that Close may race other methods on a shared handle.
	closed bool
}

// Clone creates a new handle sharing the same buffer, adding one sender
// share.
func (s *Sender[T]) Clone() *Sender[T] {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if s.closed {
		panic("mpsq: Clone of closed Sender")
	}
	st.senders++
	return &Sender[T]{state: st}
}

// Send appends a value to the buffer and returns the buffer length just
// after the insert. The returned length lets producers detect a lagging
// consumer and throttle themselves; the queue itself never blocks or bounds a
// send.
//
// If the [Receiver] has been closed, Send fails with [ErrReceiverDropped]
// without buffering the value. No retry is attempted internally. A send
// racing receiver close may instead succeed and never be read; delivery is
// at-most-once.
func (s *Sender[T]) Send(v T) (int, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if s.closed {
		panic("mpsq: Send on closed Sender")
	}
	if !st.receiverLive {
		return 0, ErrReceiverDropped
	}
	st.buf.PushBack(v)
	// One registration, one fire: the slot clears itself so a second send
	// cannot double-wake for the same park.
	st.wake.Fire()
	return st.buf.Len(), nil
}

// QueueLen returns a snapshot of the current buffer length. It is advisory
// only and may be stale by the time it is observed.
func (s *Sender[T]) QueueLen() int {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if s.closed {
		panic("mpsq: QueueLen on closed Sender")
	}
	return st.buf.Len()
}

// IsCancelled reports whether the [Receiver] has been closed, in which case
// there is no point in sending anymore.
func (s *Sender[T]) IsCancelled() bool {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if s.closed {
		panic("mpsq: IsCancelled on closed Sender")
	}
	return !st.receiverLive
}

// IntoSink consumes the Sender, wrapping it in a [Sink] that owns its share.
// The Sender must not be used directly afterward; [Sink.Close] is what
// releases the share.
func (s *Sender[T]) IntoSink() *Sink[T] {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if s.closed {
		panic("mpsq: IntoSink on closed Sender")
	}
	return &Sink[T]{sender: s}
}

// Close releases this handle's share. Closing an already-closed handle is a
// no-op, but any other use of the handle afterward panics.
//
// When the last share is released, any parked [Receiver] is woken so it can
// re-evaluate termination. The wake may prove spurious if it races a
// concurrent send; the receiver re-checks the buffer and share count on every
// wake, so that is harmless.
func (s *Sender[T]) Close() {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	st.senders--
	if st.senders == 0 {
		st.wake.Fire()
	}
}
