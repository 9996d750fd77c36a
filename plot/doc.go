// Package plot presents spike rasters outside the container: pure
// row-group layout math (label runs, group boundaries, tick midpoints),
// regrouping of coordinate pairs into raster rows, and a text renderer
// that draws event rasters onto terminals or files.
//
// The layout half is renderer-agnostic: GroupLayout turns a per-row
// label key into deduplicated group labels, fractional boundaries
// between label runs and tick positions at run midpoints, the numbers
// any axis labeling needs. The rendering half writes one text line per
// raster row with spike marks on a dotted baseline, an aligned label
// gutter and separator lines between groups, downsampling the time axis
// to the available width.
//
// Styles (mark, gap and separator characters, width) load from named
// JSON files under the configured style directory, and SaveRaster
// writes a rendered raster into the configured figure directory.
package plot
