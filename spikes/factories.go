// SPDX-License-Identifier: MIT

package spikes

import (
	"fmt"
	"strconv"
)

// FromCoordinates builds a container from parallel index and time
// slices, one spike per position, as produced by "find nonzero cells"
// routines and by Coordinates. Extra elements of the longer slice are
// ignored, matching positional zip semantics.
//
// Without WithKey, detectors default to decimal position names "0"
// through strconv.Itoa(max index). Indices with no key position fail
// with ErrIndexOutOfRange; negative times fail with ErrNegativeTime.
// Complexity: O(N log N).
func FromCoordinates(indices, times []int, opts ...Option) (*SpikeData, error) {
	n := len(indices)
	if len(times) < n {
		n = len(times)
	}
	events := make([]Event, n)
	for i := 0; i < n; i++ {
		events[i] = Event{Index: indices[i], Time: times[i]}
	}

	return FromSequence(events, opts...)
}

// FromSequence builds a container from (index, time) events. Grouping,
// key defaults and errors match FromCoordinates; an empty event list
// without a key yields an empty container.
// Complexity: O(N log N).
func FromSequence(events []Event, opts ...Option) (*SpikeData, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	key := o.key
	if key == nil {
		key = identityKey(maxIndex(events) + 1)
	}

	return buildFromEvents(events, key, o)
}

// FromDense builds a container from a binary matrix: a non-zero cell at
// [row][col] is a spike from detector row at time col. Every row maps
// to a detector even when it holds no spikes, so the matrix shape
// survives a Dense round trip (give WithHorizon the column count when
// trailing columns are empty).
//
// Without WithKey, detectors default to decimal row names. A supplied
// key must cover every row that holds a spike; spiking rows outside the
// key fail with ErrIndexOutOfRange. Rows may differ in length.
// Complexity: O(R*C + N log N).
func FromDense(matrix [][]int, opts ...Option) (*SpikeData, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	key := o.key
	if key == nil {
		key = identityKey(len(matrix))
	}

	var events []Event
	for row, cells := range matrix {
		for col, v := range cells {
			if v != 0 {
				events = append(events, Event{Index: row, Time: col})
			}
		}
	}

	return buildFromEvents(events, key, o)
}

// buildFromEvents groups events by their key position and installs the
// result. Every key position becomes a detector, in key order, with an
// empty sequence when no event lands on it.
func buildFromEvents(events []Event, key []DetectorID, o buildOptions) (*SpikeData, error) {
	grouped := make(map[DetectorID][]int, len(key))
	order := make([]DetectorID, 0, len(key))
	for _, id := range key {
		if _, dup := grouped[id]; dup {
			continue
		}
		grouped[id] = nil
		order = append(order, id)
	}

	for _, ev := range events {
		if ev.Index < 0 || ev.Index >= len(key) {
			return nil, fmt.Errorf("%w: index %d with %d key positions", ErrIndexOutOfRange, ev.Index, len(key))
		}
		id := key[ev.Index]
		grouped[id] = append(grouped[id], ev.Time)
	}

	sd := &SpikeData{}
	if err := sd.setState(order, grouped, o.label, o.horizon); err != nil {
		return nil, err
	}

	return sd, nil
}

// identityKey returns the default position -> detector key of n decimal
// names "0" .. "n-1".
func identityKey(n int) []DetectorID {
	if n <= 0 {
		return nil
	}
	key := make([]DetectorID, n)
	for i := range key {
		key[i] = DetectorID(strconv.Itoa(i))
	}

	return key
}

// maxIndex returns the largest event index, or -1 when there are none.
func maxIndex(events []Event) int {
	m := -1
	for _, ev := range events {
		if ev.Index > m {
			m = ev.Index
		}
	}

	return m
}
