package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"runcalc/internal/analysis"
)

const (
	appName    = "runcalc"
	configFile = "config.toml"
	logFile    = "runcalc.log"

	// HomeEnv overrides the directory holding the config and log files
	HomeEnv = "RUNCALC_HOME"

	// LogFileNone disables file logging
	LogFileNone = "none"
)

// Cadence slider bounds in steps per minute
const (
	MinCadence     = 170
	MaxCadence     = 200
	DefaultCadence = 180
)

// Tab names for the terminal UI
const (
	TabPaceToTime = "pace-to-time"
	TabTimeToPace = "time-to-pace"
	TabVDOT       = "vdot"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

// DisplayConfig holds the initial values shown by the calculator
type DisplayConfig struct {
	Cadence      int    `toml:"cadence"`
	Distance     string `toml:"distance"`
	VDOTDistance string `toml:"vdot_distance"`
	Tab          string `toml:"tab"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Cadence:      DefaultCadence,
			Distance:     string(analysis.Distance5K),
			VDOTDistance: string(analysis.Distance5K),
			Tab:          TabPaceToTime,
		},
		Logging: LoggingConfig{
			Level: logrus.InfoLevel.String(),
			File:  defaultLogPath(),
		},
	}
}

// Load reads the configuration file, filling missing values with defaults
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrNoConfig
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.Cadence == 0 {
		cfg.Display.Cadence = defaults.Display.Cadence
	}
	if cfg.Display.Distance == "" {
		cfg.Display.Distance = defaults.Display.Distance
	}
	if cfg.Display.VDOTDistance == "" {
		cfg.Display.VDOTDistance = defaults.Display.VDOTDistance
	}
	if cfg.Display.Tab == "" {
		cfg.Display.Tab = defaults.Display.Tab
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaults.Logging.File
	}

	return &cfg, nil
}

// LoadOrDefault is Load, falling back to DefaultConfig when no file exists
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNoConfig) {
		defaults := DefaultConfig()
		return &defaults, nil
	}
	return cfg, err
}

// Save writes the configuration file
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists.
// Returns the path of the config file.
func CreateExample() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return path, nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return path, Save(&example)
}

// Validate checks the config values
func (c *Config) Validate() error {
	if c.Display.Cadence != 0 && (c.Display.Cadence < MinCadence || c.Display.Cadence > MaxCadence) {
		return fmt.Errorf("display.cadence must be between %d and %d, got %d", MinCadence, MaxCadence, c.Display.Cadence)
	}

	if c.Display.Distance != "" {
		if _, err := analysis.ParseDistance(c.Display.Distance); err != nil {
			return fmt.Errorf("display.distance: %w", err)
		}
	}

	if c.Display.VDOTDistance != "" {
		d, err := analysis.ParseDistance(c.Display.VDOTDistance)
		if err != nil {
			return fmt.Errorf("display.vdot_distance: %w", err)
		}
		if !d.IsVDOTDistance() {
			return fmt.Errorf("display.vdot_distance must be one of 5k, 10k, half, full, got %q", c.Display.VDOTDistance)
		}
	}

	switch c.Display.Tab {
	case "", TabPaceToTime, TabTimeToPace, TabVDOT:
	default:
		return fmt.Errorf("display.tab must be %q, %q or %q, got %q", TabPaceToTime, TabTimeToPace, TabVDOT, c.Display.Tab)
	}

	if c.Logging.Level != "" {
		if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	if env := os.Getenv(HomeEnv); env != "" {
		return env, nil
	}
	if xdg.ConfigHome == "" {
		return "", errors.New("cannot determine config directory")
	}
	return filepath.Join(xdg.ConfigHome, appName), nil
}

func defaultLogPath() string {
	if env := os.Getenv(HomeEnv); env != "" {
		return filepath.Join(env, logFile)
	}
	return filepath.Join(xdg.StateHome, appName, logFile)
}
