// SPDX-License-Identifier: MIT

package spikes

import (
	"sort"
)

// New creates a SpikeData container with no detectors.
// WithLabel and WithHorizon apply; an unspecified horizon resolves to 1
// (maximum timestamp 0 plus one). WithKey has no effect here.
// Complexity: O(1).
func New(opts ...Option) *SpikeData {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sd := &SpikeData{}
	// Empty input cannot carry negative timestamps, so this never fails.
	_ = sd.setState(nil, nil, o.label, o.horizon)

	return sd
}

// SetSpikes overwrites the container state with the given detector ->
// times mapping, label and horizon. It is the sole state-setting
// primitive: New and every factory route through it.
//
// The input map is copied, never retained. Each sequence is rebuilt
// sorted ascending with duplicates removed. Detectors enumerate in
// lexicographic ID order, the stable substitute for the undefined
// iteration order of a Go map; use a factory with WithKey when a
// specific detector order matters.
//
// The horizon resolves against maxTimestamp, the largest timestamp in
// the mapping (0 when there are none):
//  1. horizon < 0: resolved to maxTimestamp + 1.
//  2. horizon > maxTimestamp: kept as given.
//  3. otherwise: forced to maxTimestamp + 1 and every sequence is
//     re-filtered to [0, maxTimestamp]. The filter also runs when
//     maxTimestamp is 0, where it keeps the zeros.
//
// Returns ErrNegativeTime if any sequence contains a negative
// timestamp; the container is left unchanged on error.
// Complexity: O(N log N) over N total timestamps.
func (sd *SpikeData) SetSpikes(times map[DetectorID][]int, label string, horizon int) error {
	order := make([]DetectorID, 0, len(times))
	for id := range times {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return sd.setState(order, times, label, horizon)
}

// SetLabel replaces the descriptive label. Labels are informational and
// never validated.
func (sd *SpikeData) SetLabel(label string) { sd.label = label }

// Label returns the descriptive label.
func (sd *SpikeData) Label() string { return sd.label }

// Horizon returns the exclusive upper bound of the time axis.
func (sd *SpikeData) Horizon() int { return sd.horizon }

// NumDetectors returns the number of detectors in the container.
func (sd *SpikeData) NumDetectors() int { return len(sd.order) }

// Detectors returns the detector IDs in natural (insertion) order.
// The returned slice is a fresh copy.
// Complexity: O(D).
func (sd *SpikeData) Detectors() []DetectorID {
	out := make([]DetectorID, len(sd.order))
	copy(out, sd.order)

	return out
}

// Times returns a copy of the spike times recorded for one detector and
// whether the detector exists.
// Complexity: O(len(times)).
func (sd *SpikeData) Times(id DetectorID) ([]int, bool) {
	ts, ok := sd.times[id]
	if !ok {
		return nil, false
	}
	out := make([]int, len(ts))
	copy(out, ts)

	return out, true
}

// setState installs new container state from an explicit detector order
// and a detector -> times mapping. Factories call it directly to keep
// their key order; SetSpikes calls it with sorted keys.
// The state mutates only after full validation.
func (sd *SpikeData) setState(order []DetectorID, times map[DetectorID][]int, label string, horizon int) error {
	clean := make(map[DetectorID][]int, len(order))
	kept := make([]DetectorID, 0, len(order))
	maxTimestamp := 0
	for _, id := range order {
		if _, dup := clean[id]; dup {
			continue // detector IDs are unique keys; first position wins
		}
		ts, err := sortedUniqueTimes(times[id])
		if err != nil {
			return err
		}
		if n := len(ts); n > 0 && ts[n-1] > maxTimestamp {
			maxTimestamp = ts[n-1]
		}
		clean[id] = ts
		kept = append(kept, id)
	}

	switch {
	case horizon < 0:
		horizon = maxTimestamp + 1
	case horizon > maxTimestamp:
		// keep as given
	default:
		// A horizon at or below the maximum timestamp cannot hold the
		// data; raise it and trim sequences back to the valid window.
		horizon = maxTimestamp + 1
		for id, ts := range clean {
			clean[id] = filterWindow(ts, 0, maxTimestamp, 0)
		}
	}

	sd.order = kept
	sd.times = clean
	sd.label = label
	sd.horizon = horizon

	return nil
}

// sortedUniqueTimes copies ts, sorts it ascending and drops duplicates.
// Returns ErrNegativeTime if any timestamp is negative.
func sortedUniqueTimes(ts []int) ([]int, error) {
	out := make([]int, len(ts))
	copy(out, ts)
	sort.Ints(out)
	if len(out) > 0 && out[0] < 0 {
		return nil, ErrNegativeTime
	}

	n := 0
	for i, t := range out {
		if i > 0 && t == out[n-1] {
			continue
		}
		out[n] = t
		n++
	}

	return out[:n], nil
}

// filterWindow returns the timestamps of ts within [tMin, tMax]
// inclusive, each shifted by -shift. ts must be sorted ascending; the
// result is a fresh slice.
func filterWindow(ts []int, tMin, tMax, shift int) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		if t < tMin {
			continue
		}
		if t > tMax {
			break
		}
		out = append(out, t-shift)
	}

	return out
}
