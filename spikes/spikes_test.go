// SPDX-License-Identifier: MIT

package spikes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kds300/snntools/spikes"
)

// TestNew_Empty verifies the zero-detector container: no detectors,
// empty label, horizon resolved to 1.
func TestNew_Empty(t *testing.T) {
	sd := spikes.New()

	assert.Equal(t, 0, sd.NumDetectors(), "empty container has no detectors")
	assert.Equal(t, "", sd.Label(), "default label is empty")
	assert.Equal(t, 1, sd.Horizon(), "unspecified horizon resolves to max(0)+1")
}

// TestNew_Options verifies WithLabel and WithHorizon on construction.
func TestNew_Options(t *testing.T) {
	sd := spikes.New(spikes.WithLabel("baseline"), spikes.WithHorizon(64))

	assert.Equal(t, "baseline", sd.Label())
	assert.Equal(t, 64, sd.Horizon(), "explicit horizon above max timestamp is kept")
}

// TestSetSpikes_AutoHorizon checks horizon resolution when unspecified:
// max timestamp plus one.
func TestSetSpikes_AutoHorizon(t *testing.T) {
	sd := spikes.New()
	err := sd.SetSpikes(map[spikes.DetectorID][]int{
		"A": {1, 3, 5},
		"B": {2, 4},
	}, "trial", spikes.AutoHorizon)
	require.NoError(t, err)

	assert.Equal(t, 6, sd.Horizon(), "horizon = max(5)+1")
	assert.Equal(t, "trial", sd.Label())
	assert.Equal(t, 2, sd.NumDetectors())
}

// TestSetSpikes_ExplicitHorizonKept checks that a horizon above the
// maximum timestamp is taken as given.
func TestSetSpikes_ExplicitHorizonKept(t *testing.T) {
	sd := spikes.New()
	err := sd.SetSpikes(map[spikes.DetectorID][]int{"A": {1, 3, 5}}, "", 10)
	require.NoError(t, err)

	assert.Equal(t, 10, sd.Horizon())
}

// TestSetSpikes_LowHorizonRaised checks that a horizon at or below the
// maximum timestamp is forced back to max+1 and the data survives the
// trimming filter unchanged.
func TestSetSpikes_LowHorizonRaised(t *testing.T) {
	sd := spikes.New()
	err := sd.SetSpikes(map[spikes.DetectorID][]int{"A": {1, 3, 5}}, "", 3)
	require.NoError(t, err)

	assert.Equal(t, 6, sd.Horizon(), "horizon 3 <= max 5 is raised to 6")
	ts, ok := sd.Times("A")
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 5}, ts, "trim to [0,max] keeps all valid times")
}

// TestSetSpikes_ZeroMaxTimestamp pins the boundary where the maximum
// timestamp is 0 and the supplied horizon is not above it: the horizon
// resolves to 1 and zero-valued times survive the trim.
func TestSetSpikes_ZeroMaxTimestamp(t *testing.T) {
	sd := spikes.New()
	err := sd.SetSpikes(map[spikes.DetectorID][]int{"A": {0}}, "", 0)
	require.NoError(t, err)

	assert.Equal(t, 1, sd.Horizon(), "max 0 with horizon 0 resolves to 1")
	ts, ok := sd.Times("A")
	require.True(t, ok)
	assert.Equal(t, []int{0}, ts, "time 0 stays after the boundary trim")

	// Same boundary with no timestamps at all.
	err = sd.SetSpikes(map[spikes.DetectorID][]int{}, "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sd.Horizon(), "empty mapping with horizon 0 resolves to 1")
	assert.Equal(t, 0, sd.NumDetectors())
}

// TestSetSpikes_SortsAndDeduplicates verifies ingestion normalizes
// arbitrary caller sequences to sorted unique times.
func TestSetSpikes_SortsAndDeduplicates(t *testing.T) {
	sd := spikes.New()
	err := sd.SetSpikes(map[spikes.DetectorID][]int{"A": {5, 1, 3, 3, 1}}, "", spikes.AutoHorizon)
	require.NoError(t, err)

	ts, ok := sd.Times("A")
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 5}, ts)
}

// TestSetSpikes_NegativeTime verifies the only hard validation: a
// negative timestamp fails with ErrNegativeTime and leaves the
// container state untouched.
func TestSetSpikes_NegativeTime(t *testing.T) {
	sd := spikes.New()
	require.NoError(t, sd.SetSpikes(map[spikes.DetectorID][]int{"B": {7}}, "keep", spikes.AutoHorizon))

	err := sd.SetSpikes(map[spikes.DetectorID][]int{"A": {-1, 2}}, "drop", spikes.AutoHorizon)
	assert.ErrorIs(t, err, spikes.ErrNegativeTime)

	assert.Equal(t, "keep", sd.Label(), "failed SetSpikes must not change state")
	assert.Equal(t, []spikes.DetectorID{"B"}, sd.Detectors())
	assert.Equal(t, 8, sd.Horizon())
}

// TestSetSpikes_DeterministicOrder verifies that detectors from an
// unordered map enumerate in lexicographic ID order.
func TestSetSpikes_DeterministicOrder(t *testing.T) {
	sd := spikes.New()
	err := sd.SetSpikes(map[spikes.DetectorID][]int{
		"gamma": {1},
		"alpha": {2},
		"beta":  {3},
	}, "", spikes.AutoHorizon)
	require.NoError(t, err)

	assert.Equal(t, []spikes.DetectorID{"alpha", "beta", "gamma"}, sd.Detectors())
}

// TestSetSpikes_CopiesInput verifies the container never retains a
// reference into caller-owned slices.
func TestSetSpikes_CopiesInput(t *testing.T) {
	in := map[spikes.DetectorID][]int{"A": {1, 2, 3}}
	sd := spikes.New()
	require.NoError(t, sd.SetSpikes(in, "", spikes.AutoHorizon))

	in["A"][0] = 99
	ts, _ := sd.Times("A")
	assert.Equal(t, []int{1, 2, 3}, ts, "mutating the input must not reach the container")
}

// TestTimes_ReturnsCopy verifies accessor output cannot mutate the container.
func TestTimes_ReturnsCopy(t *testing.T) {
	sd := spikes.New()
	require.NoError(t, sd.SetSpikes(map[spikes.DetectorID][]int{"A": {1, 2}}, "", spikes.AutoHorizon))

	ts, ok := sd.Times("A")
	require.True(t, ok)
	ts[0] = 42

	again, _ := sd.Times("A")
	assert.Equal(t, []int{1, 2}, again)

	_, ok = sd.Times("missing")
	assert.False(t, ok)
}

// TestSetLabel verifies label replacement without touching spike state.
func TestSetLabel(t *testing.T) {
	sd := spikes.New(spikes.WithLabel("before"))
	sd.SetLabel("after")

	assert.Equal(t, "after", sd.Label())
	assert.Equal(t, 1, sd.Horizon())
}
