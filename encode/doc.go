// Package encode turns analogue sample streams into spike trains.
//
// Two encoders are provided. Threshold fires on rising edges: a spike
// marks each sample that reaches the level coming from below. Delta
// fires on change: a spike marks each sample that has drifted at least
// a fixed step away from the value captured at the previous spike.
// Both are stateful closures, one instance per signal.
//
// ReadEDF applies an encoder to every signal of an EDF/EDF+ recording
// and collects the result into a single spike container, one detector
// per signal, named after the signal labels. The sample index is the
// timestep, so the container horizon equals the longest signal's
// sample count.
package encode
