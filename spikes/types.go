// SPDX-License-Identifier: MIT

// Package spikes: domain types and functional options.
// This file declares DetectorID, Event, SpikeData, the construction
// options consumed by New and the factories, and the query options
// consumed by Spikes. Sentinel errors live in errors.go.

package spikes

// AutoHorizon marks the horizon as unspecified. SetSpikes and the
// factories resolve it to the maximum observed timestamp plus one.
const AutoHorizon = -1

// DetectorID names a single event channel within a SpikeData container.
type DetectorID string

// Event pairs a detector position with a spike time. It is the element
// type ingested by FromSequence.
type Event struct {
	// Index is the detector position, resolved through the detector key.
	Index int

	// Time is the spike timestamp. Must be non-negative.
	Time int
}

// SpikeData is an in-memory spike-train container.
//
// Detectors are kept in insertion order next to a detector -> times map,
// so enumeration never depends on map iteration. Every timestamp
// sequence is deduplicated and sorted ascending, and the horizon stays
// at least max(time)+1 after any call that routes through SetSpikes.
// The internal map is exclusively owned: ingestion copies caller data,
// exports build fresh structures.
//
// SpikeData is not safe for concurrent mutation; callers sharing one
// container across goroutines must synchronize externally.
type SpikeData struct {
	order   []DetectorID         // insertion order of detectors
	times   map[DetectorID][]int // detector -> sorted unique spike times
	horizon int                  // exclusive upper bound of the time axis
	label   string               // descriptive name, carried but never validated
}

// Option configures New, FromCoordinates, FromDense and FromSequence.
type Option func(*buildOptions)

// buildOptions collects construction settings before they reach SetSpikes.
type buildOptions struct {
	label   string
	horizon int
	key     []DetectorID
}

func defaultBuildOptions() buildOptions {
	return buildOptions{horizon: AutoHorizon}
}

// WithLabel sets the descriptive label of the constructed container.
func WithLabel(label string) Option {
	return func(o *buildOptions) { o.label = label }
}

// WithHorizon sets an explicit horizon. Values below zero mean
// AutoHorizon; values at or below the maximum timestamp are raised to
// max(time)+1 during normalization.
func WithHorizon(n int) Option {
	return func(o *buildOptions) { o.horizon = n }
}

// WithKey supplies the position -> detector key used by the factories:
// a spike with index i belongs to key[i]. Indices outside the key fail
// with ErrIndexOutOfRange. Every key position becomes a detector, even
// when no spike lands on it. New ignores this option.
func WithKey(key ...DetectorID) Option {
	return func(o *buildOptions) { o.key = key }
}

// QueryOption configures Spikes.
type QueryOption func(*queryOptions)

// queryOptions collects the window, shift and detector selection of one query.
type queryOptions struct {
	minTime   int
	maxTime   int // values <= 0 mean "through the horizon"
	relative  bool
	detectors []DetectorID
}

// WithMinTime sets the inclusive lower bound of the query window.
// The default is 0.
func WithMinTime(t int) QueryOption {
	return func(q *queryOptions) { q.minTime = t }
}

// WithMaxTime sets the inclusive upper bound of the query window.
// Values at or below zero select everything through the container's
// horizon, which is also the default.
func WithMaxTime(t int) QueryOption {
	return func(q *queryOptions) { q.maxTime = t }
}

// WithRelativeTimes shifts every returned timestamp by the negated
// lower bound, so the window starts at 0.
func WithRelativeTimes() QueryOption {
	return func(q *queryOptions) { q.relative = true }
}

// WithDetectors restricts the query to the named detectors. Unknown
// names fail with ErrUnknownDetector. The default is all detectors.
func WithDetectors(ids ...DetectorID) QueryOption {
	return func(q *queryOptions) { q.detectors = ids }
}
