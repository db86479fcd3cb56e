package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvHome         = "TONSECURITY_HOME"
	EnvLogLevel     = "TONSECURITY_LOG_LEVEL"
	EnvLogFormat    = "TONSECURITY_LOG_FORMAT"
	EnvMaxMemoryKiB = "TONSECURITY_MAX_MEMORY_KIB"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string    `validate:"required"`                                 // data directory, e.g. $HOME/.tonsecurity
	LogLevel     string    `validate:"oneof=trace debug info warn error disabled"` // zerolog level name
	LogFormat    string    `validate:"oneof=console json"`
	MaxMemoryKiB uint32    // Argon2 memory budget; 0 selects the crypto default
	LogOutput    io.Writer `validate:"-"` // optional; defaults to os.Stderr
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	home := ".tonsecurity"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".tonsecurity")
	}
	return Config{
		Home:      home,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig builds a Config from DefaultConfig and the environment. A
// non-empty envFile is loaded first with godotenv; variables already set in
// the process environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvMaxMemoryKiB); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMaxMemoryKiB, err)
		}
		cfg.MaxMemoryKiB = uint32(n)
	}
	return cfg, cfg.Validate()
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	err := configValidator.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("config %s: %q is not valid (%s)", fe.Field(), fe.Value(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
