// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq_test

import (
	"context"
	"testing"

	"github.com/petenewcomb/mpsq-go/internal/sim"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBySimulation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		config := sim.DefaultConfig
		if testing.Short() {
			config.Producer.Count.Max /= 2
			config.Producer.Items.Max /= 5
			config.Consumer.StartDelay.Max /= 4
			config.Consumer.Interval.Max /= 4
		}

		plan := sim.NewPlan(t, &config)

		// The virtual-time replay yields both hard expectations (totals,
		// per-producer order) and ideal-schedule statistics that a real run
		// is only compared against informally.
		expect := sim.Estimate(t, plan)
		t.Logf("plan: %d producers, %d items; estimate: peak=%d drain=%v",
			len(plan.Producers), plan.TotalItems, expect.PeakQueueLen, expect.DrainTime)

		res, err := sim.Run(context.Background(), plan)
		chk := require.New(t)
		chk.NoError(err)

		chk.Len(res.Received, expect.TotalItems, "delivery count mismatch")
		for _, p := range plan.Producers {
			chk.Equal(plan.ExpectedSeqs(p.ID), res.PerProducer[p.ID],
				"producer %d subsequence out of order", p.ID)
		}

		t.Logf("observed peak send position %d (ideal-schedule estimate %d)",
			res.PeakSendPosition, expect.PeakQueueLen)
	})
}
