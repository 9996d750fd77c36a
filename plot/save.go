package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kds300/snntools/config"
)

// SaveRaster renders raster into <name>.txt under the configured figure
// directory, creating the directory when missing. Rendering options
// apply as in Render; the file is not a terminal, so the width falls
// back to the default unless WithMaxWidth or a style overrides it.
func SaveRaster(cfg config.Settings, name string, raster [][]int, horizon int, opts ...RenderOption) error {
	if err := os.MkdirAll(cfg.FigSaveDir, 0o755); err != nil {
		return fmt.Errorf("plot: save raster: %w", err)
	}

	path := filepath.Join(cfg.FigSaveDir, name+".txt")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: save raster: %w", err)
	}
	if err := Render(f, raster, horizon, opts...); err != nil {
		f.Close()
		return fmt.Errorf("plot: save raster: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("plot: save raster: %w", err)
	}

	return nil
}
