package encode

import "errors"

var (
	// ErrBadDelta reports a delta encoder step that is zero or negative.
	ErrBadDelta = errors.New("encode: delta step must be positive")

	// ErrUnknownSignal reports a requested signal label missing from the
	// recording.
	ErrUnknownSignal = errors.New("encode: signal not in recording")
)
