// SPDX-License-Identifier: MIT

package spikes

// Merge folds another container into the receiver in place and returns
// the receiver for chaining.
//
// Detectors shared with other end up with the set union of both
// timestamp sequences, deduplicated and sorted. Detectors known only to
// other are adopted as copies, in other's natural order. Detectors only
// in the receiver stay untouched, as does the label. The horizon
// becomes the larger of the two.
//
// Merge performs no normalization or trimming pass, unlike SetSpikes;
// the union of valid containers already satisfies the sorted-unique and
// horizon bounds. A nil other is a no-op.
// Complexity: O(N + M) over both containers' timestamps.
func (sd *SpikeData) Merge(other *SpikeData) *SpikeData {
	if other == nil {
		return sd
	}
	for _, id := range other.order {
		ts, ok := sd.times[id]
		if !ok {
			adopted := make([]int, len(other.times[id]))
			copy(adopted, other.times[id])
			sd.times[id] = adopted
			sd.order = append(sd.order, id)

			continue
		}
		sd.times[id] = unionSorted(ts, other.times[id])
	}
	if other.horizon > sd.horizon {
		sd.horizon = other.horizon
	}

	return sd
}

// Combine returns a new container holding the union of x and y, leaving
// both inputs untouched: the pure counterpart of Merge.
//
// The horizon resolves to an explicit positive WithHorizon value, else
// to max(x.Horizon(), y.Horizon()). An explicit horizon is taken
// verbatim, even below max(time)+1; Dense documents how such a
// container renders. The label resolves to a non-empty WithLabel value,
// else to x's label. Nil inputs count as empty containers. WithKey has
// no effect here.
// Complexity: O(N + M).
func Combine(x, y *SpikeData, opts ...Option) *SpikeData {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := New()
	out.Merge(x).Merge(y)

	if o.horizon > 0 {
		out.horizon = o.horizon
	}
	switch {
	case o.label != "":
		out.label = o.label
	case x != nil:
		out.label = x.label
	}

	return out
}

// unionSorted merges two sorted, duplicate-free sequences into a fresh
// sorted, duplicate-free sequence.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
