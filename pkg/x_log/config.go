package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Defaults ----------

const defaultConfigPath = "./xlog.json"

// Config describes log targets and formatting.
type Config struct {
	Level       string `json:"Level"`
	LogFile     string `json:"LogFile"`
	ToConsole   bool   `json:"ToConsole"`
	ToFile      bool   `json:"ToFile"`
	ColoredFile bool   `json:"ColoredFile"`
	Style       string `json:"Style"`
	MaxSize     int    `json:"MaxSize"`    // MB
	MaxBackups  int    `json:"MaxBackups"` // rotated files
	MaxAge      int    `json:"MaxAge"`     // days
	Compress    bool   `json:"Compress"`
}

var defaultConfig = Config{
	Level:      "info",
	LogFile:    "logs/fpgrowth.log",
	ToConsole:  true,
	Style:      "dark",
	MaxSize:    10,
	MaxBackups: 5,
	MaxAge:     7,
	Compress:   true,
}

// DefaultConfig returns a copy of the built-in configuration.
func DefaultConfig() Config {
	return defaultConfig
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("XLOG_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("read log config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse log config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

//
// ---------- Defaults Fill ----------

func applyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
