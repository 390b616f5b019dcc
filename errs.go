// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrReceiverDropped reports that the [Receiver] has been closed and further
// production is pointless. It is a normal shutdown signal, not a bug;
// producers are expected to check [Sender.IsCancelled] to short-circuit
// expensive work before even attempting a send.
const ErrReceiverDropped = constError("receiver dropped")

// ErrSinkClosed reports that a [Sink] operation was attempted after the sink
// owner closed it. It is distinct from [ErrReceiverDropped] so that a caller
// holding the sink can tell which side ended the stream.
const ErrSinkClosed = constError("sink closed")

// ErrEndOfStream reports that no sender shares remain and the buffer has
// drained, or that the [Receiver] itself has been closed. Once returned by
// [Receiver.Recv] it is returned by every subsequent call.
const ErrEndOfStream = constError("end of stream")
