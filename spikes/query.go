// SPDX-License-Identifier: MIT

package spikes

import "fmt"

// Spikes returns the spike times inside a query window, one entry per
// selected detector.
//
// Defaults select every detector over [0, horizon]. WithMinTime and
// WithMaxTime bound the window inclusively on both ends; a max bound at
// or below zero means "through the horizon". WithRelativeTimes shifts
// the returned times so the window starts at 0. WithDetectors restricts
// the result; requesting an unknown detector fails with
// ErrUnknownDetector.
//
// The call is read-only and the result never aliases container memory.
// Complexity: O(N) over the selected detectors' timestamps.
func (sd *SpikeData) Spikes(opts ...QueryOption) (map[DetectorID][]int, error) {
	q := queryOptions{}
	for _, opt := range opts {
		opt(&q)
	}
	if q.maxTime <= 0 {
		q.maxTime = sd.horizon
	}
	shift := 0
	if q.relative {
		shift = q.minTime
	}
	detectors := q.detectors
	if detectors == nil {
		detectors = sd.order
	}

	out := make(map[DetectorID][]int, len(detectors))
	for _, id := range detectors {
		ts, ok := sd.times[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDetector, id)
		}
		out[id] = filterWindow(ts, q.minTime, q.maxTime, shift)
	}

	return out, nil
}
