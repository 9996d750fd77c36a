// SPDX-License-Identifier: MIT

// Package spikes stores multi-detector spike trains and converts between
// their common representations.
//
// 🚀 What is a spike train?
//
//	A spike train records discrete events ("spikes") emitted by named
//	channels ("detectors") over a bounded time axis. The same data is
//	useful in several shapes:
//	  • sparse map: detector -> ascending spike times
//	  • raster: ordered list of per-row time sequences
//	  • dense matrix: binary (rows x horizon) array
//	  • coordinates: parallel (row position, time) event lists
//
// ✨ Key features:
//   - SpikeData keeps detectors in insertion order, so every enumeration,
//     raster and export is reproducible run to run
//   - per-detector sequences are always deduplicated and sorted ascending
//   - the horizon (exclusive upper time bound) is re-resolved on every
//     SetSpikes and factory call, so horizon >= max(time)+1 holds there;
//     Combine alone may keep a caller's tighter horizon
//   - factories ingest coordinate pairs, dense matrices and event
//     sequences; exports produce fresh structures with no aliasing
//   - Merge unions two containers in place; Combine does it purely
//
// ⚙️ Usage:
//
//	import "github.com/kds300/snntools/spikes"
//
//	sd := spikes.New(spikes.WithLabel("trial-0"))
//	err := sd.SetSpikes(map[spikes.DetectorID][]int{
//	    "A": {1, 3, 5},
//	    "B": {2, 4},
//	}, "trial-0", spikes.AutoHorizon)
//
//	dense, _ := sd.Dense()        // 2 x 6 binary matrix
//	raster, _ := sd.Raster("B")   // only detector B
//	idxs, ts := sd.Coordinates()  // natural-order positions
//
// Performance:
//
//   - SetSpikes: O(N log N) over N total timestamps
//   - Raster / Dense / Coordinates: O(N + D) with fresh output memory
//   - Merge: O(N + M) linear union of sorted sequences
//
// See example_test.go for runnable end-to-end scenarios.
package spikes
