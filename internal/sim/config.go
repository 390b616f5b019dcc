// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"time"

	"pgregory.net/rapid"
)

var DefaultConfig = Config{
	Producer: ProducerConfig{
		Count: IntRangeConfig{Min: 1, Max: 8},
		Items: IntRangeConfig{Min: 0, Max: 25},
		Gap:   DurationRangeConfig{Min: 0, Max: 500 * time.Microsecond},
	},
	Consumer: ConsumerConfig{
		StartDelay: DurationRangeConfig{Min: 0, Max: 2 * time.Millisecond},
		Interval:   DurationRangeConfig{Min: 0, Max: 200 * time.Microsecond},
	},
}

type Config struct {
	Producer ProducerConfig
	Consumer ConsumerConfig
}

type ProducerConfig struct {
	Count IntRangeConfig
	Items IntRangeConfig
	Gap   DurationRangeConfig
}

type ConsumerConfig struct {
	StartDelay DurationRangeConfig
	Interval   DurationRangeConfig
}

type IntRangeConfig struct {
	Min int
	Max int
}

func (c IntRangeConfig) Draw(t *rapid.T, label string) int {
	return rapid.IntRange(c.Min, c.Max).Draw(t, label)
}

type DurationRangeConfig struct {
	Min time.Duration
	Max time.Duration
}

func (c DurationRangeConfig) Draw(t *rapid.T, label string) time.Duration {
	return time.Duration(rapid.Int64Range(int64(c.Min), int64(c.Max)).Draw(t, label))
}
