// SPDX-License-Identifier: MIT

// Package records provides an in-memory store of immutable labeled-value
// entries with attribute filtering, built to collect and slice analysis
// scores downstream of spike-train processing.
//
// ✨ Key features:
//   - Entry couples a label, a float64 value and free-form attributes
//   - Store keeps entries in insertion order and never mutates them
//   - Filter narrows a store by attribute constraints into a new,
//     independent store; Where(attr, v1, v2, ...) accepts value sets
//   - ValuesOf extracts one attribute across all entries; Values
//     collects the scores themselves
//   - GroupStats reduces values to per-group mean and standard
//     deviation, grouped by any attribute
//
// ⚙️ Usage:
//
//	store := records.NewStore(
//	    records.Entry{Label: "accuracy", Value: 0.91,
//	        Attrs: map[string]any{"cond": 1}},
//	    records.Entry{Label: "accuracy", Value: 0.87,
//	        Attrs: map[string]any{"cond": 2}},
//	)
//
//	cond1 := store.Filter(records.Where("cond", 1))
//	stats := store.GroupStats("cond", records.Where("label", "accuracy"))
//
// Attribute values are compared with ==, so constraint and entry values
// must be comparable types used consistently (ints with ints, strings
// with strings). Entries lacking a constrained attribute never match.
package records
