// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq_test

import (
	"context"
	"testing"

	"github.com/petenewcomb/mpsq-go"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestQueueWithRapid uses rapid state machine testing to verify queue
// behavior against a plain slice model. Blocking receives are only attempted
// when the model says they cannot park.
func TestQueueWithRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// The system under test
		sender, receiver := mpsq.New[int]()
		senders := []*mpsq.Sender[int]{sender}

		// The model
		var model []int
		receiverClosed := false

		ctx := context.Background()
		t.Repeat(map[string]func(*rapid.T){
			"send": func(t *rapid.T) {
				if len(senders) == 0 {
					t.Skip("no sender shares left")
				}
				s := senders[rapid.IntRange(0, len(senders)-1).Draw(t, "sender")]
				val := rapid.Int().Draw(t, "value")

				pos, err := s.Send(val)
				if receiverClosed {
					require.ErrorIs(t, err, mpsq.ErrReceiverDropped)
					return
				}
				require.NoError(t, err)
				model = append(model, val)
				require.Equal(t, len(model), pos, "post-insert position mismatch")
			},

			"clone": func(t *rapid.T) {
				if len(senders) == 0 {
					t.Skip("no sender shares left")
				}
				if len(senders) >= 8 {
					t.Skip("enough shares already")
				}
				s := senders[rapid.IntRange(0, len(senders)-1).Draw(t, "sender")]
				senders = append(senders, s.Clone())
			},

			"closeSender": func(t *rapid.T) {
				if len(senders) == 0 {
					t.Skip("no sender shares left")
				}
				i := rapid.IntRange(0, len(senders)-1).Draw(t, "sender")
				senders[i].Close()
				senders = append(senders[:i], senders[i+1:]...)
			},

			"tryRecv": func(t *rapid.T) {
				val, ok := receiver.TryRecv()
				if len(model) == 0 {
					require.False(t, ok, "TryRecv succeeded on empty queue")
					return
				}
				require.True(t, ok, "TryRecv failed on non-empty queue")
				require.Equal(t, model[0], val, "TryRecv returned wrong value")
				model = model[1:]
			},

			"recv": func(t *rapid.T) {
				// Recv would park when the buffer is empty but shares
				// remain; only exercise the no-park outcomes here.
				if len(model) == 0 && !receiverClosed && len(senders) > 0 {
					t.Skip("Recv would park")
				}
				val, err := receiver.Recv(ctx)
				if len(model) == 0 {
					require.ErrorIs(t, err, mpsq.ErrEndOfStream)
					return
				}
				require.NoError(t, err)
				require.Equal(t, model[0], val, "Recv returned wrong value")
				model = model[1:]
			},

			"closeReceiver": func(t *rapid.T) {
				receiver.Close()
				receiverClosed = true
				// Closing forfeits buffered values.
				model = nil
			},

			"isTerminated": func(t *rapid.T) {
				require.Equal(t, receiverClosed || len(senders) == 0, receiver.IsTerminated())
			},

			// Check invariants between actions
			"": func(t *rapid.T) {
				if len(senders) > 0 {
					require.Equal(t, len(model), senders[0].QueueLen(), "length mismatch with model")
				}
				if len(model) == 0 {
					_, ok := receiver.TryRecv()
					require.False(t, ok, "TryRecv should fail on empty queue")
				}
			},
		})
	})
}
