package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OpenPSG/edf"

	"github.com/kds300/snntools/spikes"
)

// Option adjusts how ReadEDF encodes a recording.
type Option func(*options)

type options struct {
	signals []string
	label   string
	encoder func() (Encoder, error)
}

func defaultOptions() options {
	return options{
		encoder: func() (Encoder, error) { return Threshold(0), nil },
	}
}

// WithSignals restricts encoding to the named signals, in the given
// order. Names match detector identifiers, so a duplicated signal label
// is addressed by its suffixed form. With no names, every signal is
// encoded in file order.
func WithSignals(labels ...string) Option {
	return func(o *options) {
		if len(labels) > 0 {
			o.signals = labels
		}
	}
}

// WithThreshold encodes each signal with a rising-edge encoder at the
// given level. This is the default at level zero.
func WithThreshold(level float64) Option {
	return func(o *options) {
		o.encoder = func() (Encoder, error) { return Threshold(level), nil }
	}
}

// WithDelta encodes each signal with a change encoder of the given
// step.
func WithDelta(delta float64) Option {
	return func(o *options) {
		o.encoder = func() (Encoder, error) { return Delta(delta) }
	}
}

// WithLabel overrides the container label. Empty keeps the default,
// the recording identification from the file header.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// ReadEDF encodes an EDF/EDF+ recording into a spike container. Every
// selected signal becomes one detector, keyed by its label; labels that
// repeat within the file are suffixed #2, #3 and so on, in file order.
// The container horizon is the largest sample count among the selected
// signals.
func ReadEDF(r io.ReadSeeker, opts ...Option) (*spikes.SpikeData, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	meta, err := readEDFMeta(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("encode: rewind recording: %w", err)
	}
	er, err := edf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("encode: open recording: %w", err)
	}

	ids := detectorIDs(meta.labels)
	selected, err := selectSignals(ids, o.signals)
	if err != nil {
		return nil, err
	}

	key := make([]spikes.DetectorID, len(selected))
	for p, si := range selected {
		key[p] = ids[si]
	}

	var events []spikes.Event
	horizon := 0
	buf := make([]float64, 2048)
	for p, si := range selected {
		enc, err := o.encoder()
		if err != nil {
			return nil, err
		}
		sr, err := er.Signal(si)
		if err != nil {
			return nil, fmt.Errorf("encode: signal %q: %w", key[p], err)
		}

		t := 0
		for {
			n, err := sr.Read(buf)
			for k := 0; k < n; k++ {
				if enc(buf[k]) {
					events = append(events, spikes.Event{Index: p, Time: t + k})
				}
			}
			t += n
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("encode: read signal %q: %w", key[p], err)
			}
		}
		if t > horizon {
			horizon = t
		}
	}

	label := o.label
	if label == "" {
		label = meta.recordingID
	}

	return spikes.FromSequence(events,
		spikes.WithKey(key...),
		spikes.WithLabel(label),
		spikes.WithHorizon(horizon),
	)
}

// edfMeta carries the header fields the edf reader parses but does not
// expose: the recording identification and the signal label table.
type edfMeta struct {
	recordingID string
	labels      []string
}

// readEDFMeta slices the fixed-layout EDF header directly. Field
// offsets follow the EDF specification: the recording identification
// occupies bytes 88:168, the signal count bytes 252:256 and the label
// table the first 16 bytes per signal after the static block.
func readEDFMeta(r io.ReadSeeker) (edfMeta, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return edfMeta{}, fmt.Errorf("encode: rewind recording: %w", err)
	}

	b := make([]byte, 256)
	if _, err := io.ReadFull(r, b); err != nil {
		return edfMeta{}, fmt.Errorf("encode: read recording header: %w", err)
	}

	meta := edfMeta{recordingID: strings.TrimSpace(string(b[88:168]))}
	count, err := strconv.Atoi(strings.TrimSpace(string(b[252:256])))
	if err != nil {
		return edfMeta{}, fmt.Errorf("encode: parse signal count: %w", err)
	}

	meta.labels = make([]string, count)
	lb := make([]byte, 16)
	for i := range meta.labels {
		if _, err := io.ReadFull(r, lb); err != nil {
			return edfMeta{}, fmt.Errorf("encode: read signal labels: %w", err)
		}
		meta.labels[i] = strings.TrimSpace(string(lb))
	}

	return meta, nil
}

// detectorIDs maps signal labels to unique detector identifiers,
// suffixing repeats with their occurrence number.
func detectorIDs(labels []string) []spikes.DetectorID {
	ids := make([]spikes.DetectorID, len(labels))
	seen := make(map[string]int, len(labels))
	for i, label := range labels {
		seen[label]++
		if n := seen[label]; n > 1 {
			ids[i] = spikes.DetectorID(fmt.Sprintf("%s#%d", label, n))
		} else {
			ids[i] = spikes.DetectorID(label)
		}
	}

	return ids
}

// selectSignals resolves requested detector identifiers to signal
// indices, or every index when no request was made.
func selectSignals(ids []spikes.DetectorID, requested []string) ([]int, error) {
	if len(requested) == 0 {
		all := make([]int, len(ids))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	byID := make(map[spikes.DetectorID]int, len(ids))
	for i, id := range ids {
		byID[id] = i
	}

	selected := make([]int, 0, len(requested))
	for _, want := range requested {
		i, ok := byID[spikes.DetectorID(want)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, want)
		}
		selected = append(selected, i)
	}

	return selected, nil
}
