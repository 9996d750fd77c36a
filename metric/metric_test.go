package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kds300/snntools/metric"
	"github.com/kds300/snntools/records"
	"github.com/kds300/snntools/spikes"
)

func TestTrainDistance_IdenticalTrains(t *testing.T) {
	d, err := metric.TrainDistance([]int{1, 2, 3}, []int{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 0.0, d)
}

func TestTrainDistance_SingleSpikes(t *testing.T) {
	d, err := metric.TrainDistance([]int{1}, []int{3})
	require.NoError(t, err)

	assert.Equal(t, 2.0, d, "one pair, cost is the timing gap")
}

func TestTrainDistance_WarpsManyToOne(t *testing.T) {
	d, err := metric.TrainDistance([]int{1, 3}, []int{2})
	require.NoError(t, err)

	assert.Equal(t, 2.0, d, "both spikes align to the single counterpart")
}

func TestTrainDistance_EmptyTrain(t *testing.T) {
	_, err := metric.TrainDistance(nil, []int{1})
	require.ErrorIs(t, err, metric.ErrEmptyTrain)

	_, err = metric.TrainDistance([]int{1}, nil)
	require.ErrorIs(t, err, metric.ErrEmptyTrain)
}

func TestTrainDistance_WindowConstrainsWarp(t *testing.T) {
	a := []int{1, 2, 3, 4}
	b := []int{3, 4, 5, 6}

	free, err := metric.TrainDistance(a, b)
	require.NoError(t, err)
	assert.Equal(t, 6.0, free)

	banded, err := metric.TrainDistance(a, b, metric.WithWindow(1))
	require.NoError(t, err)
	assert.Equal(t, 7.0, banded, "the band blocks the cheaper off-diagonal alignment")
}

func TestTrainDistance_WindowTooNarrow(t *testing.T) {
	d, err := metric.TrainDistance([]int{1, 2, 3}, []int{5}, metric.WithWindow(1))
	require.NoError(t, err)

	assert.True(t, math.IsInf(d, 1), "no legal alignment inside the band")
}

func TestTrainDistance_GapPenalty(t *testing.T) {
	d, err := metric.TrainDistance([]int{1, 3}, []int{2}, metric.WithGapPenalty(1))
	require.NoError(t, err)

	assert.Equal(t, 3.0, d, "the repeated match pays one gap step")
}

func compareFixtures(t *testing.T) (*spikes.SpikeData, *spikes.SpikeData) {
	t.Helper()

	x := spikes.New()
	require.NoError(t, x.SetSpikes(map[spikes.DetectorID][]int{
		"A": {1, 3, 5},
		"B": {2, 4},
	}, "out", spikes.AutoHorizon))

	y := spikes.New()
	require.NoError(t, y.SetSpikes(map[spikes.DetectorID][]int{
		"A": {1, 3, 6},
		"B": {2, 4},
		"C": {9},
	}, "tpl", spikes.AutoHorizon))

	return x, y
}

func TestCompare_MeanOverSharedDetectors(t *testing.T) {
	x, y := compareFixtures(t)

	d, err := metric.Compare(x, y)
	require.NoError(t, err)

	// A differs by one late spike (distance 1), B matches exactly, C is
	// unshared and ignored.
	assert.Equal(t, 0.5, d)
}

func TestCompare_SkipsSilentDetectors(t *testing.T) {
	x := spikes.New()
	require.NoError(t, x.SetSpikes(map[spikes.DetectorID][]int{
		"A": {},
		"B": {1},
	}, "", spikes.AutoHorizon))

	y := spikes.New()
	require.NoError(t, y.SetSpikes(map[spikes.DetectorID][]int{
		"A": {5},
		"B": {1},
	}, "", spikes.AutoHorizon))

	d, err := metric.Compare(x, y)
	require.NoError(t, err)

	assert.Equal(t, 0.0, d, "only B carries timing on both sides")
}

func TestCompare_NoOverlap(t *testing.T) {
	x := spikes.New()
	require.NoError(t, x.SetSpikes(map[spikes.DetectorID][]int{"A": {1}}, "", spikes.AutoHorizon))

	y := spikes.New()
	require.NoError(t, y.SetSpikes(map[spikes.DetectorID][]int{"B": {1}}, "", spikes.AutoHorizon))

	_, err := metric.Compare(x, y)
	require.ErrorIs(t, err, metric.ErrNoOverlap)

	_, err = metric.Compare(x, nil)
	require.ErrorIs(t, err, metric.ErrNoOverlap)
}

func TestScores_OneEntryPerTemplate(t *testing.T) {
	out := spikes.New()
	require.NoError(t, out.SetSpikes(map[spikes.DetectorID][]int{"A": {1, 3}}, "out", spikes.AutoHorizon))

	t1 := spikes.New()
	require.NoError(t, t1.SetSpikes(map[spikes.DetectorID][]int{"A": {1, 3}}, "tpl-a", spikes.AutoHorizon))
	t2 := spikes.New()
	require.NoError(t, t2.SetSpikes(map[spikes.DetectorID][]int{"A": {2, 4}}, "tpl-b", spikes.AutoHorizon))

	store, err := metric.Scores(out, []*spikes.SpikeData{t1, t2})
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	first := store.At(0)
	assert.Equal(t, metric.ScoreLabel, first.Label)
	assert.Equal(t, 0.0, first.Value)
	tpl, ok := first.Attr(metric.AttrTemplate)
	require.True(t, ok)
	assert.Equal(t, "tpl-a", tpl)

	vals := store.Filter(records.Where(metric.AttrTemplate, "tpl-b")).Values()
	assert.Equal(t, []float64{2}, vals, "score entries filter like any other records")
}

func TestScores_PropagatesNoOverlap(t *testing.T) {
	out := spikes.New()
	require.NoError(t, out.SetSpikes(map[spikes.DetectorID][]int{"A": {1}}, "", spikes.AutoHorizon))

	tpl := spikes.New()
	require.NoError(t, tpl.SetSpikes(map[spikes.DetectorID][]int{"B": {1}}, "", spikes.AutoHorizon))

	_, err := metric.Scores(out, []*spikes.SpikeData{tpl})
	require.ErrorIs(t, err, metric.ErrNoOverlap)
}
