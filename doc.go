// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package mpsq provides an unbounded multi-producer, single-consumer value
// queue with cooperative suspension. Any number of [Sender] handles, cloned
// from the one returned by [New] and possibly spread across goroutines, push
// values into a shared buffer. A single [Receiver] pulls values one at a
// time, parking when the buffer is empty and resuming when a value arrives or
// the last sender share is released.
//
// The queue is deliberately simple: one mutex guards the buffer, a
// single-slot wake registration, and a receiver-liveness flag. There is no
// capacity limit and therefore no send-side blocking; producers that care
// about consumer lag can watch the buffer length that [Sender.Send] returns
// and throttle themselves. [Sender.IntoSink] wraps a sender as a push-based
// [Sink] with explicit, idempotent close semantics for callers that want to
// hand the producing end to a flow-control layer.
//
// Closing the [Receiver] is the cancellation signal for the whole queue: it
// takes effect immediately, is irreversible, and causes all outstanding and
// future sends to fail with [ErrReceiverDropped]. Delivery is at-most-once; a
// send racing receiver close may succeed and yet never be read.
package mpsq
