package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"manim-studio/internal/logger"
)

const (
	DefaultPython     = "python3"
	DefaultQuality    = "-ql"
	DefaultOutputName = "output"
	appDirName        = "manim-studio"
)

// Config holds runtime settings shared by the GUI and the headless CLI.
type Config struct {
	// DataDir is the root for sessions/ and logs/.
	DataDir string
	// Python is the interpreter used to run "python -m manim".
	Python     string
	Quality    string
	OutputName string

	LogLevel    logger.LogLevel
	JSONLogging bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		DataDir:    defaultDataDir(),
		Python:     DefaultPython,
		Quality:    DefaultQuality,
		OutputName: DefaultOutputName,
		LogLevel:   logger.InfoLevel,
	}
}

// Load reads an optional .env file from the working directory and applies
// environment overrides on top of Default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := FromEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds a Config from Default and the given lookup function.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv("MANIM_STUDIO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := getenv("MANIM_STUDIO_PYTHON"); v != "" {
		cfg.Python = v
	}
	if v := getenv("MANIM_STUDIO_QUALITY"); v != "" {
		cfg.Quality = v
	}
	if v := getenv("MANIM_STUDIO_OUTPUT_NAME"); v != "" {
		cfg.OutputName = v
	}
	if getenv("MANIM_STUDIO_JSON_LOGS") == "true" {
		cfg.JSONLogging = true
	}

	cfg.LogLevel = determineLogLevel(getenv)
	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Python) == "" {
		return errors.New("python interpreter path must not be empty")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data directory must not be empty")
	}
	return nil
}

func (c Config) SessionsDir() string {
	return filepath.Join(c.DataDir, "sessions")
}

func (c Config) LogFile() string {
	return filepath.Join(c.DataDir, "logs", "manim.log")
}

func determineLogLevel(getenv func(string) string) logger.LogLevel {
	if v := getenv("LOG_LEVEL"); v != "" {
		return logger.ParseLevel(v)
	}
	if getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(os.TempDir(), appDirName)
}
