package plot

// RowKey labels every raster row with its group: repeated consecutive
// labels mark rows belonging to one group.
type RowKey []string

// Layout carries the y-axis numbers derived from a RowKey: one label
// per group, fractional boundaries between groups and tick positions at
// group midpoints. Boundaries sit at i+0.5 between rows i and i+1 where
// the key changes, framed by 0 and the row count.
type Layout struct {
	// Labels holds one entry per group, consecutive duplicates removed.
	Labels []string

	// Bounds holds len(Labels)+1 ascending group boundaries in row units.
	Bounds []float64

	// Ticks holds one midpoint per group, where its label belongs.
	Ticks []float64
}

// GroupLayout computes the Layout of a row key. Returns ErrEmptyKey for
// a key with no labels.
// Complexity: O(rows).
func GroupLayout(key RowKey) (Layout, error) {
	if len(key) == 0 {
		return Layout{}, ErrEmptyKey
	}

	labels := []string{key[0]}
	bounds := []float64{0}
	for i := 0; i+1 < len(key); i++ {
		if key[i] != key[i+1] {
			labels = append(labels, key[i+1])
			bounds = append(bounds, float64(i)+0.5)
		}
	}
	bounds = append(bounds, float64(len(key)))

	ticks := make([]float64, len(labels))
	for i := range ticks {
		ticks[i] = (bounds[i] + bounds[i+1]) / 2
	}

	return Layout{Labels: labels, Bounds: bounds, Ticks: ticks}, nil
}

// CoordsToRaster regroups parallel (row position, time) slices into
// numRows raster rows, the bridge from coordinate output back to a
// renderable raster. Pairs truncate to the shorter slice; positions
// outside [0, numRows) are dropped. Times keep their input order within
// each row.
// Complexity: O(pairs).
func CoordsToRaster(indices, times []int, numRows int) [][]int {
	if numRows < 0 {
		numRows = 0
	}
	raster := make([][]int, numRows)
	for i := range raster {
		raster[i] = []int{}
	}

	n := len(indices)
	if len(times) < n {
		n = len(times)
	}
	for i := 0; i < n; i++ {
		idx := indices[i]
		if idx < 0 || idx >= numRows {
			continue
		}
		raster[idx] = append(raster[idx], times[i])
	}

	return raster
}
