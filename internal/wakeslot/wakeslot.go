// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package wakeslot provides single-slot storage for a parked consumer's wake
// handle. The slot itself is not synchronized; it is meant to live inside
// state that is already guarded by a mutex, with at most one fire per
// registration guaranteed by clearing the slot as it fires.
package wakeslot

// A Waiter is a wake handle over a one-element notification buffer.
//
// The zero value is a waiter that will never be signaled: [Waiter.Done]
// returns a nil channel. [New] returns a waiter with an empty notification
// channel of buffer length one. [Waiter.Notify] fills the buffer if it is
// empty and otherwise does nothing, so a waiter absorbs at most one
// notification regardless of how many times it is fired.
//
// Waiter variables may be safely copied and are designed to be passed by
// value.
type Waiter struct {
	notifyChan chan struct{}
}

// New returns a waiter ready to be registered and selected on.
func New() Waiter {
	return Waiter{notifyChan: make(chan struct{}, 1)}
}

// Done returns the channel a notification is delivered on.
func (w Waiter) Done() <-chan struct{} {
	return w.notifyChan
}

// Notify delivers a notification unless one is already pending.
func (w Waiter) Notify() {
	select {
	case w.notifyChan <- struct{}{}:
	default:
		// Either the buffer already holds an undelivered notification or
		// this is the zero-value waiter; in both cases there is nothing
		// more to deliver.
	}
}

// Slot holds at most one registered [Waiter]. The zero value is an empty
// slot ready to use.
type Slot struct {
	w     Waiter
	armed bool
}

// Register stores w, replacing any previously registered waiter. A replaced
// waiter is simply forgotten; it is the registrant's job to re-check the
// condition it was waiting on before parking again.
func (s *Slot) Register(w Waiter) {
	s.w = w
	s.armed = true
}

// Fire takes the registered waiter, if any, and notifies it. The slot is
// cleared before the notification goes out, so each registration is fired at
// most once.
func (s *Slot) Fire() {
	if !s.armed {
		return
	}
	w := s.w
	s.Clear()
	w.Notify()
}

// Clear discards any registered waiter without notifying it.
func (s *Slot) Clear() {
	s.w = Waiter{}
	s.armed = false
}

// Armed reports whether a waiter is currently registered.
func (s *Slot) Armed() bool {
	return s.armed
}
