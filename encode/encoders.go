package encode

import (
	"fmt"
	"math"
)

// Encoder consumes successive samples of one signal and reports, per
// sample, whether a spike fires at that timestep. Encoders carry state
// between calls; use a fresh one per signal.
type Encoder func(sample float64) bool

// Threshold returns a rising-edge encoder: a spike fires at every
// sample that reaches level coming from below it. A first sample
// already at or above level fires immediately.
func Threshold(level float64) Encoder {
	prev := math.Inf(-1)
	return func(sample float64) bool {
		fire := sample >= level && prev < level
		prev = sample

		return fire
	}
}

// Delta returns a change encoder: a spike fires whenever the sample has
// moved at least delta away from the baseline, which then resets to the
// firing sample. The first sample seeds the baseline without firing.
// Returns ErrBadDelta unless delta is positive.
func Delta(delta float64) (Encoder, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadDelta, delta)
	}

	primed := false
	var baseline float64
	return func(sample float64) bool {
		if !primed {
			primed = true
			baseline = sample
			return false
		}
		if math.Abs(sample-baseline) >= delta {
			baseline = sample
			return true
		}

		return false
	}, nil
}

// Times runs enc over samples in order and collects the indices where
// it fires.
func Times(samples []float64, enc Encoder) []int {
	times := []int{}
	for i, s := range samples {
		if enc(s) {
			times = append(times, i)
		}
	}

	return times
}
