// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"cmp"
	"time"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
	"pgregory.net/rapid"
)

// Expectation holds what a virtual-time replay of a plan predicts. The
// schedule-independent fields (TotalItems) must hold for any real run; the
// ideal-schedule fields (PeakQueueLen, DrainTime, Delivered) describe one
// valid execution and are useful for logging and sanity comparison, not for
// strict assertion against a real scheduler.
type Expectation struct {
	TotalItems   int
	PeakQueueLen int
	DrainTime    time.Duration
	Delivered    []Value
}

// Estimate replays the plan in virtual time: every scheduled send becomes an
// event on a time-ordered heap, and the consumer polls the model buffer at
// the plan's pace, parking when it finds the buffer empty and waking on the
// next send, just as the real consumer does. Events that fall on the same
// instant have no defined order, so they are permuted with rapid to make the
// estimate explore the interleavings a real run might produce.
func Estimate(t *rapid.T, plan *Plan) *Expectation {
	e := &Expectation{
		TotalItems: plan.TotalItems,
	}

	var eventHeap heap.Heap[simEvent, heap.Min]
	var buf deque.Deque[Value]
	var simTime time.Duration
	sendsRemaining := plan.TotalItems
	parked := false

	var poll func(at time.Duration)
	schedulePoll := func(at time.Duration) {
		heap.PushOrderable(&eventHeap, simEvent{
			Time: at,
			Func: func() { poll(at) },
		})
	}
	poll = func(at time.Duration) {
		if buf.Len() > 0 {
			e.Delivered = append(e.Delivered, buf.PopFront())
			schedulePoll(at + plan.ConsumerInterval)
			return
		}
		if sendsRemaining == 0 {
			// End of stream: no further polls.
			e.DrainTime = at
			return
		}
		// Nothing to pull yet; park until a send wakes the consumer.
		parked = true
	}

	for _, p := range plan.Producers {
		for seq, at := range p.SendTimes {
			v := Value{Producer: p.ID, Seq: seq}
			heap.PushOrderable(&eventHeap, simEvent{
				Time: at,
				Func: func() {
					buf.PushBack(v)
					sendsRemaining--
					if buf.Len() > e.PeakQueueLen {
						e.PeakQueueLen = buf.Len()
					}
					if parked {
						parked = false
						schedulePoll(at)
					}
				},
			})
		}
	}
	schedulePoll(plan.ConsumerStart)

	var concurrentEvents []simEvent
	for {
		event, ok := heap.PopOrderable(&eventHeap)
		if !ok {
			break
		}
		concurrentEvents = concurrentEvents[:0]
		for {
			concurrentEvents = append(concurrentEvents, event)
			event, ok = heap.Peek(&eventHeap)
			if !ok || event.Time != concurrentEvents[0].Time {
				break
			}
			_, _ = heap.PopOrderable(&eventHeap)
		}
		if len(concurrentEvents) > 1 {
			concurrentEvents = rapid.Permutation(concurrentEvents).Draw(t, "concurrentEvents")
		}
		for _, event := range concurrentEvents {
			simTime = event.Time
			event.Func()
		}
	}
	if e.DrainTime < simTime {
		e.DrainTime = simTime
	}

	return e
}

type simEvent struct {
	Time time.Duration
	Func func()
}

func (a *simEvent) Cmp(b *simEvent) int {
	return cmp.Compare(a.Time, b.Time)
}
