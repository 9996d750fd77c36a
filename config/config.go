package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
)

// Environment variable and JSON key names for the two directories.
const (
	EnvFigSaveDir = "FIG_SAVE_DIR"
	EnvStyleDir   = "STYLE_DIR"
)

// Settings names the directories the plotting helpers read and write:
// where rendered figures land and where named style files live.
type Settings struct {
	// FigSaveDir is the directory rendered figures are saved into.
	FigSaveDir string `json:"FIG_SAVE_DIR"`

	// StyleDir is the directory style files are loaded from.
	StyleDir string `json:"STYLE_DIR"`
}

// Load reads Settings from a JSON file of the form
// {"FIG_SAVE_DIR": "...", "STYLE_DIR": "..."}. Missing keys stay empty.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read settings: %w", err)
	}
	var s Settings
	if err := sonic.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: parse settings %s: %w", path, err)
	}

	return s, nil
}

// FromEnv reads Settings from the FIG_SAVE_DIR and STYLE_DIR
// environment variables, first loading the given .env files (default
// ".env"). Files that do not exist are skipped. Variables already set
// in the environment are never overridden by file entries, so the
// process environment always wins.
func FromEnv(dotenvFiles ...string) (Settings, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return Settings{
		FigSaveDir: os.Getenv(EnvFigSaveDir),
		StyleDir:   os.Getenv(EnvStyleDir),
	}, nil
}
