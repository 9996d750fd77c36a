package plot

import "errors"

var (
	// ErrEmptyKey indicates a row key with no labels.
	ErrEmptyKey = errors.New("plot: row key must contain at least one label")
	// ErrKeyMismatch indicates a row key whose length differs from the raster's row count.
	ErrKeyMismatch = errors.New("plot: row key length does not match raster rows")
	// ErrStyleNotFound indicates the named style file does not exist in the style directory.
	ErrStyleNotFound = errors.New("plot: style file not found")
)
