// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq

import (
	"sync"

	"github.com/gammazero/deque"

	"github.com/petenewcomb/mpsq-go/internal/wakeslot"
)

// sharedState is the single unit of mutual exclusion behind a sender/receiver
// pair. The buffer, the wake slot, and the liveness bookkeeping must only be
// touched with mu held, and mu must never be held across a park.
type sharedState[T any] struct {
	mu   sync.Mutex
	buf  deque.Deque[T]
	wake wakeslot.Slot

	// senders counts outstanding sender shares, including any held by a
	// Sink. When it reaches zero no new values can ever arrive.
	senders int

	// receiverLive is cleared by Receiver.Close, after which every send
	// fails with ErrReceiverDropped.
	receiverLive bool
}

// New creates a linked sender/receiver pair backed by a fresh shared buffer.
// The returned [Sender] may be cloned any number of times; the [Receiver] is
// the one and only consumer handle and must not be shared across goroutines.
//
// Each call to New should typically be followed by deferred calls to
// [Sender.Close] and [Receiver.Close] so that early exits release the
// handles: sender release is what lets the receiver observe end of stream,
// and receiver release is what lets producers fail fast.
func New[T any]() (*Sender[T], *Receiver[T]) {
	st := &sharedState[T]{
		senders:      1,
		receiverLive: true,
	}
	return &Sender[T]{state: st}, &Receiver[T]{state: st}
}
