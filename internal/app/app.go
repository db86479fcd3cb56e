package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// App is the CLI's application context.
type App struct {
	Config Config
	Log    zerolog.Logger
	*Wire
}

// New validates cfg, prepares the data directory, and builds the logger and
// dependency graph.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("creating home: %w", err)
	}

	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("home", cfg.Home).Uint32("max_memory_kib", cfg.MaxMemoryKiB).Msg("app ready")
	return &App{Config: cfg, Log: log, Wire: w}, nil
}

// Path returns name inside the data directory.
func (a *App) Path(name string) string { return filepath.Join(a.Config.Home, name) }
