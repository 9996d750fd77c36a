package plot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// fallbackWidth is used when the output is not a terminal and no
// explicit width was requested.
const fallbackWidth = 80

// RenderOption adjusts how Render draws a raster.
type RenderOption func(*renderOptions)

type renderOptions struct {
	key       RowKey
	timeShift int
	mark      string
	gap       string
	separator string
	maxWidth  int
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		mark:      "|",
		gap:       ".",
		separator: "-",
	}
}

// WithRowKey labels raster rows and draws separator lines between
// consecutive groups of equal labels. The key length must match the
// raster row count.
func WithRowKey(key RowKey) RenderOption {
	return func(o *renderOptions) { o.key = key }
}

// WithTimeShift subtracts n from every time before drawing. Times that
// leave [0, horizon) after the shift are not drawn.
func WithTimeShift(n int) RenderOption {
	return func(o *renderOptions) { o.timeShift = n }
}

// WithMark sets the glyph drawn at spike positions. It should occupy a
// single terminal column.
func WithMark(s string) RenderOption {
	return func(o *renderOptions) {
		if s != "" {
			o.mark = s
		}
	}
}

// WithGap sets the glyph drawn at silent positions. It should occupy a
// single terminal column.
func WithGap(s string) RenderOption {
	return func(o *renderOptions) {
		if s != "" {
			o.gap = s
		}
	}
}

// WithSeparator sets the glyph repeated across group separator lines.
func WithSeparator(s string) RenderOption {
	return func(o *renderOptions) {
		if s != "" {
			o.separator = s
		}
	}
}

// WithMaxWidth caps the rendered line width at n columns instead of
// detecting the terminal size. Values below 1 keep detection on.
func WithMaxWidth(n int) RenderOption {
	return func(o *renderOptions) {
		if n > 0 {
			o.maxWidth = n
		}
	}
}

// Render writes raster as text, one line per row, spikes as marks on a
// background of gaps. horizon fixes the time span: when it exceeds the
// available columns, times are binned down so the plot still fits, and
// a bin holding at least one spike draws a mark.
//
// With a row key, a left gutter carries one label per group at its
// middle row, and separator lines divide the groups. Returns
// ErrKeyMismatch when the key length differs from the raster row count.
// Complexity: O(rows x columns + spikes).
func Render(w io.Writer, raster [][]int, horizon int, opts ...RenderOption) error {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.key) > 0 && len(o.key) != len(raster) {
		return fmt.Errorf("%w: %d labels for %d rows", ErrKeyMismatch, len(o.key), len(raster))
	}

	width := o.maxWidth
	if width < 1 {
		width = detectWidth(w)
	}

	gutterWidth := 0
	if len(o.key) > 0 {
		for _, label := range o.key {
			if lw := runewidth.StringWidth(label); lw > gutterWidth {
				gutterWidth = lw
			}
		}
		gutterWidth++
	}

	bins := width - gutterWidth
	if bins < 1 {
		bins = 1
	}
	if horizon < bins {
		bins = horizon
	}
	if bins < 0 {
		bins = 0
	}

	lines := make([]string, len(raster))
	for i, times := range raster {
		cells := make([]string, bins)
		for c := range cells {
			cells[c] = o.gap
		}
		for _, t := range times {
			t -= o.timeShift
			if t < 0 || t >= horizon {
				continue
			}
			cells[t*bins/horizon] = o.mark
		}
		lines[i] = strings.Join(cells, "")
	}

	if len(o.key) == 0 {
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	sep := strings.Repeat(o.separator, gutterWidth+bins)
	for start := 0; start < len(o.key); {
		end := start
		for end+1 < len(o.key) && o.key[end+1] == o.key[start] {
			end++
		}
		if start > 0 {
			if _, err := fmt.Fprintln(w, sep); err != nil {
				return err
			}
		}
		mid := (start + end) / 2
		for i := start; i <= end; i++ {
			gutter := ""
			if i == mid {
				gutter = o.key[i]
			}
			if _, err := fmt.Fprintln(w, runewidth.FillRight(gutter, gutterWidth)+lines[i]); err != nil {
				return err
			}
		}
		start = end + 1
	}

	return nil
}

// detectWidth asks the terminal for its column count and falls back to
// a fixed width when the writer is not a terminal.
func detectWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}

	return fallbackWidth
}
