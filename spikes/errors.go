// SPDX-License-Identifier: MIT

package spikes

import "errors"

var (
	// ErrNegativeTime indicates a spike sequence contains a negative timestamp.
	ErrNegativeTime = errors.New("spikes: negative spike time")
	// ErrIndexOutOfRange indicates a spike index has no position in the detector key.
	ErrIndexOutOfRange = errors.New("spikes: spike index outside detector key")
	// ErrUnknownDetector indicates a requested detector does not exist in the container.
	ErrUnknownDetector = errors.New("spikes: unknown detector")
)
