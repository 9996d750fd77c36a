// SPDX-License-Identifier: MIT

package spikes

import "fmt"

// Raster returns the spike times as one row per key position. Without a
// key, rows follow the natural (insertion) detector order; a key naming
// a subset of detectors both filters and reorders the rows, which is
// the mechanism for arranging rasters for display. Unknown detectors
// fail with ErrUnknownDetector.
//
// Rows are fresh copies with no aliasing back into the container.
// Complexity: O(N + D).
func (sd *SpikeData) Raster(key ...DetectorID) ([][]int, error) {
	if len(key) == 0 {
		key = sd.order
	}
	raster := make([][]int, len(key))
	for i, id := range key {
		ts, ok := sd.times[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDetector, id)
		}
		row := make([]int, len(ts))
		copy(row, ts)
		raster[i] = row
	}

	return raster, nil
}

// Dense returns the spike data as a binary matrix of shape
// (key positions x horizon), cell [row][t] = 1 iff the row's detector
// spikes at time t. Key semantics match Raster. Times at or beyond the
// horizon do not fit the matrix and are omitted; that state only arises
// when Combine is given an explicit horizon below max(time)+1.
// Complexity: O(rows*horizon + N).
func (sd *SpikeData) Dense(key ...DetectorID) ([][]int, error) {
	if len(key) == 0 {
		key = sd.order
	}
	dense := make([][]int, len(key))
	for i, id := range key {
		ts, ok := sd.times[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDetector, id)
		}
		row := make([]int, sd.horizon)
		for _, t := range ts {
			if t < sd.horizon {
				row[t] = 1
			}
		}
		dense[i] = row
	}

	return dense, nil
}

// Coordinates returns the container as parallel (position, time)
// slices, one pair per spike, the inverse of FromCoordinates.
//
// Positions always count through the NATURAL detector order, regardless
// of any custom key used with Raster or Dense on the same container.
// Callers arranging rows for display must not assume Coordinates
// follows that arrangement; rebuild positions from the same key
// instead.
// Complexity: O(N).
func (sd *SpikeData) Coordinates() (indices, times []int) {
	for pos, id := range sd.order {
		for _, t := range sd.times[id] {
			indices = append(indices, pos)
			times = append(times, t)
		}
	}

	return indices, times
}
