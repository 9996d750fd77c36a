// SPDX-License-Identifier: MIT

package records

import (
	"fmt"
	"math"
	"sort"
)

// Mean returns the arithmetic mean of vals, or NaN for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum / float64(len(vals))
}

// Std returns the population standard deviation of vals (divisor n,
// not n-1), or NaN for an empty slice.
func Std(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	m := Mean(vals)
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(vals)))
}

// GroupStat summarizes the values of one attribute group.
type GroupStat struct {
	// Key is the shared attribute value of the group.
	Key any

	// N is the number of entries in the group.
	N int

	// Mean is the arithmetic mean of the group's values.
	Mean float64

	// Std is the population standard deviation of the group's values.
	Std float64
}

// GroupStats applies the constraints, groups the surviving entries by
// the named attribute and reduces each group's values to count, mean
// and population standard deviation. Entries lacking the attribute
// belong to no group.
//
// Groups are ordered deterministically: numeric keys ascending first,
// then string keys ascending, then any other keys by their string form.
// Complexity: O(entries x groups).
func (s *Store) GroupStats(attr string, constraints ...Constraint) []GroupStat {
	filtered := s.Filter(constraints...)

	seen := make(map[any]bool)
	keys := make([]any, 0)
	for _, e := range filtered.entries {
		v, ok := e.Attr(attr)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		keys = append(keys, v)
	}
	sortKeys(keys)

	out := make([]GroupStat, len(keys))
	for i, key := range keys {
		vals := filtered.Filter(Where(attr, key)).Values()
		out[i] = GroupStat{Key: key, N: len(vals), Mean: Mean(vals), Std: Std(vals)}
	}

	return out
}

// sortKeys orders group keys: numerics ascending, then strings
// ascending, then everything else by its string form. Ties between
// numerically equal keys of different types break on the string form
// to keep the order stable.
func sortKeys(keys []any) {
	sort.SliceStable(keys, func(i, j int) bool {
		ri, ni, si := keyRank(keys[i])
		rj, nj, sj := keyRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 0 && ni != nj {
			return ni < nj
		}

		return si < sj
	})
}

// keyRank classifies a key for ordering: rank 0 numeric (with its
// float64 value), rank 1 string, rank 2 other; the string form serves
// as the final tie-break.
func keyRank(v any) (rank int, num float64, str string) {
	switch x := v.(type) {
	case int:
		return 0, float64(x), fmt.Sprint(v)
	case int8:
		return 0, float64(x), fmt.Sprint(v)
	case int16:
		return 0, float64(x), fmt.Sprint(v)
	case int32:
		return 0, float64(x), fmt.Sprint(v)
	case int64:
		return 0, float64(x), fmt.Sprint(v)
	case uint:
		return 0, float64(x), fmt.Sprint(v)
	case uint8:
		return 0, float64(x), fmt.Sprint(v)
	case uint16:
		return 0, float64(x), fmt.Sprint(v)
	case uint32:
		return 0, float64(x), fmt.Sprint(v)
	case uint64:
		return 0, float64(x), fmt.Sprint(v)
	case float32:
		return 0, float64(x), fmt.Sprint(v)
	case float64:
		return 0, x, fmt.Sprint(v)
	case string:
		return 1, 0, x
	default:
		return 2, 0, fmt.Sprint(v)
	}
}
