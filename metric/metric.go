package metric

import (
	"errors"
	"fmt"
	"math"

	"github.com/kds300/snntools/records"
	"github.com/kds300/snntools/spikes"
)

var (
	// ErrEmptyTrain indicates one or both spike trains are empty.
	ErrEmptyTrain = errors.New("metric: spike trains must be non-empty")

	// ErrNoOverlap indicates two containers share no detector with
	// spikes on both sides.
	ErrNoOverlap = errors.New("metric: no comparable detectors")
)

// ScoreLabel is the record label on entries produced by Scores.
const ScoreLabel = "dtw"

// AttrTemplate is the record attribute naming the template an entry
// was scored against.
const AttrTemplate = "template"

// Option adjusts the alignment search.
type Option func(*options)

type options struct {
	window     int
	gapPenalty float64
}

// WithWindow bounds the alignment to the Sakoe-Chiba band |i-j| <= w.
// Values below 1 leave the alignment unconstrained.
func WithWindow(w int) Option {
	return func(o *options) {
		if w > 0 {
			o.window = w
		}
	}
}

// WithGapPenalty adds p to every insertion or deletion step, biasing
// the alignment toward one-to-one spike matches.
func WithGapPenalty(p float64) Option {
	return func(o *options) { o.gapPenalty = p }
}

// TrainDistance computes the DTW distance between two spike-time
// sequences. The local cost of matching spike times ta and tb is
// |ta - tb|; insertions and deletions additionally pay the gap
// penalty. Returns ErrEmptyTrain when either train has no spikes.
//
// A window narrower than the length difference of the trains leaves no
// legal alignment; the distance is then +Inf.
// Complexity: O(len(a)·len(b)) time, O(len(b)) memory.
func TrainDistance(a, b []int, opts ...Option) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptyTrain
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.window > 0 && abs(i-j) > o.window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(float64(a[i-1] - b[j-1]))
			ins := prev[j] + o.gapPenalty
			del := curr[j-1] + o.gapPenalty
			match := prev[j-1]
			curr[j] = cost + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// Compare scores two containers as the mean TrainDistance over the
// detectors they share, skipping detectors silent on either side:
// silent and unshared detectors carry no timing to align. Returns
// ErrNoOverlap when nothing is comparable.
func Compare(x, y *spikes.SpikeData, opts ...Option) (float64, error) {
	if x == nil || y == nil {
		return 0, ErrNoOverlap
	}

	total := 0.0
	count := 0
	for _, id := range x.Detectors() {
		xs, _ := x.Times(id)
		ys, ok := y.Times(id)
		if !ok || len(xs) == 0 || len(ys) == 0 {
			continue
		}
		d, err := TrainDistance(xs, ys, opts...)
		if err != nil {
			return 0, err
		}
		total += d
		count++
	}
	if count == 0 {
		return 0, ErrNoOverlap
	}

	return total / float64(count), nil
}

// Scores compares out against every template and collects the results
// as records: one entry per template, labelled ScoreLabel, holding the
// Compare distance as its value and the template's container label
// under AttrTemplate. The store feeds the records reductions directly.
func Scores(out *spikes.SpikeData, templates []*spikes.SpikeData, opts ...Option) (*records.Store, error) {
	store := records.NewStore()
	for i, tpl := range templates {
		d, err := Compare(out, tpl, opts...)
		if err != nil {
			return nil, fmt.Errorf("metric: template %d: %w", i, err)
		}
		store.Add(records.Entry{
			Label: ScoreLabel,
			Value: d,
			Attrs: map[string]any{AttrTemplate: tpl.Label()},
		})
	}

	return store, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
