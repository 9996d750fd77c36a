package plot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/kds300/snntools/config"
)

// Style is a named set of rendering choices loaded from a JSON file.
// Zero fields keep the renderer defaults, so a style may override any
// subset of them.
type Style struct {
	Mark      string `json:"mark"`
	Gap       string `json:"gap"`
	Separator string `json:"separator"`
	MaxWidth  int    `json:"max_width"`
}

// LoadStyle reads <name>.json from the configured style directory.
// Returns ErrStyleNotFound when no such file exists.
func LoadStyle(cfg config.Settings, name string) (Style, error) {
	path := filepath.Join(cfg.StyleDir, name+".json")
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Style{}, fmt.Errorf("%w: %s", ErrStyleNotFound, path)
	}
	if err != nil {
		return Style{}, fmt.Errorf("plot: read style: %w", err)
	}

	var s Style
	if err := sonic.Unmarshal(raw, &s); err != nil {
		return Style{}, fmt.Errorf("plot: parse style %q: %w", name, err)
	}

	return s, nil
}

// WithStyle applies every non-zero field of s to the renderer.
func WithStyle(s Style) RenderOption {
	return func(o *renderOptions) {
		if s.Mark != "" {
			o.mark = s.Mark
		}
		if s.Gap != "" {
			o.gap = s.Gap
		}
		if s.Separator != "" {
			o.separator = s.Separator
		}
		if s.MaxWidth > 0 {
			o.maxWidth = s.MaxWidth
		}
	}
}
