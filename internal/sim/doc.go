// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package sim provides a way to generate and execute simulated mpsq
// workloads. It generates a plan for each workload: a set of producers, each
// with its own schedule of send offsets, plus a consumer pace. A plan can be
// replayed in virtual time to estimate schedule-independent expectations and
// ideal-schedule statistics, and executed for real against a live queue with
// one goroutine per producer. New plans are generated according to a set of
// configuration parameters that determine the size and shape of the workload.
package sim
