package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// AppDir is the directory under the user's home holding the store and config.
	AppDir = ".projects"
	// ConfigFile is the name of the optional TOML configuration file.
	ConfigFile = "config.toml"
)

// Config holds the settings the console session needs at startup.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `toml:"db_path"`
	// LogFile receives structured logs; empty discards them.
	LogFile string `toml:"log_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:   filepath.Join(home, AppDir, "projects.db"),
		LogFile:  "",
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, then the TOML file, then the
// environment. A .env file in the working directory is loaded first and
// missing files are not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	path := os.Getenv("PROJECTS_CONFIG")
	if path == "" {
		path = filepath.Join(home, AppDir, ConfigFile)
	}
	if err := LoadFile(path, &cfg); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes the TOML file at path over cfg. Keys absent from the file
// keep their current values; a missing file leaves cfg untouched.
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PROJECTS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PROJECTS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PROJECTS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the values that cannot be corrected silently.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a configured level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: use debug, info, warn or error", s)
	}
	return level, nil
}

// NewLogger opens the configured log destination. The returned closer must
// be called on shutdown.
func (c Config) NewLogger() (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
