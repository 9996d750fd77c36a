// Package metric scores spike trains against each other using Dynamic
// Time Warping (DTW) over spike times.
//
// 🚀 Why warp spike trains?
//
//	Two trains firing the same pattern slightly out of phase are close
//	in meaning but far apart spike-by-spike. DTW aligns the two time
//	sequences before summing the timing differences, so a small phase
//	shift costs little while a missing or extra burst costs a lot.
//	Typical uses:
//	  • scoring network output against stored templates
//	  • clustering trials by response shape
//	  • tracking drift of a detector across sessions
//
// ✨ Key features:
//   - integer spike-time sequences in, one distance out
//   - optional Sakoe-Chiba band (|i-j| ≤ w) to bound the warp
//   - gap penalty to bias alignments toward one-to-one matches
//   - container-level Compare averaging over shared detectors
//   - Scores emitting one record per template for downstream stats
//
// ⚙️ Usage:
//
//	import "github.com/kds300/snntools/metric"
//
//	d, err := metric.TrainDistance(out, tpl,
//	  metric.WithWindow(10),
//	  metric.WithGapPenalty(0.5),
//	)
//
// Performance:
//
//   - Time:   O(N·M) per train pair
//   - Memory: O(M), two DP rows, no path recovery
package metric
