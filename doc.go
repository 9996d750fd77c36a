// Package snntools is your in-memory toolkit for collecting, reshaping
// and inspecting spike-event data — from raw detector times to terminal
// raster plots.
//
// 🚀 What is snntools?
//
//	A small, focused library for spiking-network experiments:
//		• Spike containers: sparse detector→times maps under one horizon
//		• Conversions: dense matrices, raster rows, coordinate pairs
//		• Merging: set-union of trials, detector adoption, horizon tracking
//		• Records: labelled result values with attribute filters & stats
//		• Encoding: threshold & delta encoders, EDF/EDF+ ingestion
//		• Scoring: DTW spike-train distances, output-vs-template records
//		• Plotting: grouped raster rendering straight to the terminal
//
// ✨ Why snntools?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sorted, deduplicated times and copy-on-read accessors
//   - Composable – containers, records and plots share plain Go types
//
// Under the hood, everything is organized under six subpackages:
//
//	spikes/  — the SpikeData container: factories, queries, merging
//	records/ — labelled experiment results with filtering & group stats
//	encode/  — analogue-to-spike encoders + EDF/EDF+ recordings
//	metric/  — DTW spike-train similarity & template scoring
//	plot/    — row layouts & text raster rendering
//	config/  — settings files, dotenv loading & parameter trees
//
// Quick ASCII example:
//
//	in  |..|....
//	    ....|...
//	------------
//	out ..|..|..
//
//	two grouped input rows and one output row of a rendered raster.
//
// Next up: rate decoders, richer layout maths and beyond.
//
//	go get github.com/kds300/snntools
package snntools
