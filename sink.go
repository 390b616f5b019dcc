// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq

// Sink wraps an owned [Sender] as a push contract of four operations --
// [Sink.Ready], [Sink.Send], [Sink.Flush], and [Sink.Close] -- for use by a
// flow-control layer that decides when to call each. A Sink is either open
// (holding its sender share) or closed (holding nothing); closed is terminal
// and there is no reopen operation.
//
// A Sink has a single owner and is not safe for concurrent use.
type Sink[T any] struct {
	sender *Sender[T]
}

// Ready reports whether the sink can accept an item: nil while open with a
// live consumer, [ErrReceiverDropped] while open with the consumer gone, and
// [ErrSinkClosed] once closed.
func (s *Sink[T]) Ready() error {
	if s.sender == nil {
		return ErrSinkClosed
	}
	if s.sender.IsCancelled() {
		return ErrReceiverDropped
	}
	return nil
}

// Send pushes an item through the held sender. It fails with [ErrSinkClosed]
// after [Sink.Close] and with [ErrReceiverDropped] when the consumer is gone.
func (s *Sink[T]) Send(item T) error {
	if s.sender == nil {
		return ErrSinkClosed
	}
	_, err := s.sender.Send(item)
	return err
}

// Flush succeeds immediately: the sink keeps no buffer of its own beyond the
// shared queue.
func (s *Sink[T]) Flush() error {
	return nil
}

// Close releases the held sender share and always succeeds. Closing twice is
// a no-op success both times.
func (s *Sink[T]) Close() error {
	if s.sender != nil {
		s.sender.Close()
		s.sender = nil
	}
	return nil
}
