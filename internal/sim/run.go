// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/petenewcomb/mpsq-go"
)

// Result holds what a real run of a plan observed.
type Result struct {
	// Received is every value the consumer pulled, in delivery order.
	Received []Value
	// PerProducer maps a producer ID to the Seq subsequence the consumer
	// observed for it. Entries exist only for producers whose values were
	// actually received.
	PerProducer map[int][]int
	// PeakSendPosition is the largest post-insert buffer length reported by
	// any send, i.e. the worst consumer lag any producer observed.
	PeakSendPosition int
}

// Run executes the plan against a live queue: one goroutine per producer,
// each pacing its sends by the plan's virtual offsets, with the calling
// goroutine acting as the consumer. It returns once the consumer reaches end
// of stream, or with ctx's error if ctx is canceled first.
func Run(ctx context.Context, plan *Plan) (*Result, error) {
	sender, receiver := mpsq.New[Value]()
	defer receiver.Close()

	var wg sync.WaitGroup
	var peak atomic.Int64
	for _, p := range plan.Producers {
		s := sender.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.Close()
			start := time.Now()
			for seq, at := range p.SendTimes {
				if d := at - time.Since(start); d > 0 {
					time.Sleep(d)
				}
				if s.IsCancelled() {
					return
				}
				pos, err := s.Send(Value{Producer: p.ID, Seq: seq})
				if err != nil {
					// Only the consumer side can fail a send, and this run
					// never closes the receiver before end of stream.
					return
				}
				storeMax(&peak, int64(pos))
			}
		}()
	}
	// The original share was only a factory for the clones above.
	sender.Close()
	defer wg.Wait()

	res := &Result{
		PerProducer: make(map[int][]int),
	}
	if plan.ConsumerStart > 0 {
		time.Sleep(plan.ConsumerStart)
	}
	for {
		v, err := receiver.Recv(ctx)
		if errors.Is(err, mpsq.ErrEndOfStream) {
			break
		}
		if err != nil {
			return nil, err
		}
		res.Received = append(res.Received, v)
		res.PerProducer[v.Producer] = append(res.PerProducer[v.Producer], v.Seq)
		if plan.ConsumerInterval > 0 {
			time.Sleep(plan.ConsumerInterval)
		}
	}
	res.PeakSendPosition = int(peak.Load())
	return res, nil
}

func storeMax(m *atomic.Int64, v int64) {
	for {
		old := m.Load()
		if v <= old || m.CompareAndSwap(old, v) {
			return
		}
	}
}
