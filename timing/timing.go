// SPDX-License-Identifier: MIT

// Package timing runs the manual repeat-and-measure loops used to compare
// dense and sparse kernels. Durations are wall-clock deltas of time.Now.
package timing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNoRuns is returned when repeats < 1.
var ErrNoRuns = errors.New("timing: repeats must be >= 1")

// Result summarizes the runs of one measured function.
type Result struct {
	Name   string        `json:"name"`
	Runs   int           `json:"runs"`
	Min    time.Duration `json:"min_ns"`
	Max    time.Duration `json:"max_ns"`
	Mean   time.Duration `json:"mean_ns"`
	StdDev time.Duration `json:"stddev_ns"`
	Total  time.Duration `json:"total_ns"`
}

// String renders "name: mean ± stddev (min … max, n runs)".
func (r Result) String() string {
	return fmt.Sprintf("%s: %v ± %v (%v … %v, %d runs)", r.Name, r.Mean, r.StdDev, r.Min, r.Max, r.Runs)
}

// clock is swapped in tests.
var clock = time.Now

// Measure calls fn repeats times and summarizes the wall-clock durations.
//
// Cancellation is checked before every run; a cancelled context returns the
// summary of the completed runs together with ctx.Err(). An error from fn stops
// the loop and is returned wrapped with name, again with the partial summary.
func Measure(ctx context.Context, name string, repeats int, fn func() error) (Result, error) {
	if repeats < 1 {
		return Result{Name: name}, ErrNoRuns
	}
	samples := make([]time.Duration, 0, repeats)
	for i := 0; i < repeats; i++ {
		if err := ctx.Err(); err != nil {
			return summarize(name, samples), err
		}
		start := clock()
		err := fn()
		samples = append(samples, clock().Sub(start))
		if err != nil {
			return summarize(name, samples), fmt.Errorf("%s: %w", name, err)
		}
	}

	return summarize(name, samples), nil
}

// summarize computes min/max/mean and the sample standard deviation.
func summarize(name string, samples []time.Duration) Result {
	r := Result{Name: name, Runs: len(samples)}
	if len(samples) == 0 {
		return r
	}
	r.Min, r.Max = samples[0], samples[0]
	for _, s := range samples {
		r.Total += s
		if s < r.Min {
			r.Min = s
		}
		if s > r.Max {
			r.Max = s
		}
	}
	mean := float64(r.Total) / float64(len(samples))
	r.Mean = time.Duration(math.Round(mean))
	if len(samples) > 1 {
		var ss float64
		for _, s := range samples {
			d := float64(s) - mean
			ss += d * d
		}
		r.StdDev = time.Duration(math.Round(math.Sqrt(ss / float64(len(samples)-1))))
	}

	return r
}

// Speedup returns slow.Mean / fast.Mean, or 0 when fast.Mean is zero.
func Speedup(slow, fast Result) float64 {
	if fast.Mean == 0 {
		return 0
	}

	return float64(slow.Mean) / float64(fast.Mean)
}
