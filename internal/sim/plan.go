// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"fmt"
	"time"

	"pgregory.net/rapid"
)

// Plan is a generated workload: one send schedule per producer and the pace
// at which the consumer drains. Send offsets are virtual times measured from
// the start of the run and are nondecreasing within each producer.
type Plan struct {
	Producers        []Producer
	ConsumerStart    time.Duration
	ConsumerInterval time.Duration
	TotalItems       int
}

type Producer struct {
	ID        int
	SendTimes []time.Duration
}

// Value is the element type pushed through the queue during simulation. Seq
// is the zero-based position within the producer's own schedule, which is
// what lets observers check per-producer ordering.
type Value struct {
	Producer int
	Seq      int
}

func (v Value) String() string {
	return fmt.Sprintf("p%d#%d", v.Producer, v.Seq)
}

// NewPlan generates a workload plan according to config.
func NewPlan(t *rapid.T, config *Config) *Plan {
	plan := &Plan{
		ConsumerStart:    config.Consumer.StartDelay.Draw(t, "consumerStart"),
		ConsumerInterval: config.Consumer.Interval.Draw(t, "consumerInterval"),
	}

	producerCount := config.Producer.Count.Draw(t, "producerCount")
	plan.Producers = make([]Producer, producerCount)
	for i := range plan.Producers {
		name := fmt.Sprintf("producer#%d", i)
		itemCount := config.Producer.Items.Draw(t, name+".items")
		sendTimes := make([]time.Duration, itemCount)
		var at time.Duration
		for j := range sendTimes {
			at += config.Producer.Gap.Draw(t, name+".gap")
			sendTimes[j] = at
		}
		plan.Producers[i] = Producer{
			ID:        i,
			SendTimes: sendTimes,
		}
		plan.TotalItems += itemCount
	}
	return plan
}

// ExpectedSeqs returns the per-producer sequence the consumer must observe
// for the given producer, or nil when the producer sends nothing.
func (p *Plan) ExpectedSeqs(producer int) []int {
	n := len(p.Producers[producer].SendTimes)
	if n == 0 {
		return nil
	}
	seqs := make([]int, n)
	for i := range seqs {
		seqs[i] = i
	}
	return seqs
}
