// file:fpgrowth/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/pkg/x_txn"
)

// Config holds mining, output, store and server settings.
type Config struct {
	MinSupport      int         `json:"min_support" mapstructure:"min_support"`
	MinSupportRatio float64     `json:"min_support_ratio" mapstructure:"min_support_ratio"`
	Input           string      `json:"input" mapstructure:"input"`
	Format          string      `json:"format" mapstructure:"format"`
	Delimiter       string      `json:"delimiter" mapstructure:"delimiter"`
	Encoding        string      `json:"encoding" mapstructure:"encoding"`
	Output          string      `json:"output" mapstructure:"output"`
	Store           StoreConfig `json:"store" mapstructure:"store"`
	HTTPAddr        string      `json:"http_addr" mapstructure:"http_addr"`
	LogLevel        string      `json:"log_level" mapstructure:"log_level"`
}

// StoreConfig selects the result database.
type StoreConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Dialect string `json:"dialect" mapstructure:"dialect"`
	DSN     string `json:"dsn" mapstructure:"dsn"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		MinSupport: constant.DefaultMinSupport,
		Delimiter:  ",",
		Encoding:   "utf-8",
		Output:     constant.OutputTable,
		Store: StoreConfig{
			Dialect: constant.DialectSqlite,
			DSN:     constant.DefaultDSN,
		},
		HTTPAddr: constant.DefaultHTTPAddr,
		LogLevel: "info",
	}
}

// Load reads a JSON config file over the defaults. ${VAR} references are
// expanded and scalar values are weakly typed, so "3" works for min_support.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = replaceEnvVars(data)

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads config from environment using prefix.
func LoadFromEnv(prefix string) *Config {
	cfg := Default()

	cfg.MinSupport = GetEnvInt(prefix+"MIN_SUPPORT", cfg.MinSupport)
	cfg.MinSupportRatio = GetEnvFloat(prefix+"MIN_SUPPORT_RATIO", cfg.MinSupportRatio)
	cfg.Input = GetEnvStr(prefix+"INPUT", cfg.Input)
	cfg.Format = GetEnvStr(prefix+"FORMAT", cfg.Format)
	cfg.Delimiter = GetEnvStr(prefix+"DELIMITER", cfg.Delimiter)
	cfg.Encoding = GetEnvStr(prefix+"ENCODING", cfg.Encoding)
	cfg.Output = GetEnvStr(prefix+"OUTPUT", cfg.Output)
	cfg.HTTPAddr = GetEnvStr(prefix+"HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = GetEnvStr(prefix+"LOG_LEVEL", cfg.LogLevel)

	cfg.Store.Enabled = GetEnvBool(prefix+"STORE_ENABLED", cfg.Store.Enabled)
	cfg.Store.Dialect = GetEnvStr(prefix+"STORE_DIALECT", cfg.Store.Dialect)
	cfg.Store.DSN = GetEnvStr(prefix+"STORE_DSN", cfg.Store.DSN)

	return cfg
}

// LoadWithFallback loads from FPG_CONFIG, ./fpgrowth.json or FPG_ env vars.
func LoadWithFallback() (*Config, error) {
	if path := os.Getenv(constant.EnvConfigPath); path != "" {
		return Load(path)
	}
	if _, err := os.Stat(constant.DefaultConfigFile); err == nil {
		return Load(constant.DefaultConfigFile)
	}
	return LoadFromEnv(constant.EnvPrefix), nil
}

// Validate reports every invalid field at once.
func (cfg *Config) Validate() error {
	var bad []string

	if cfg.MinSupportRatio < 0 || cfg.MinSupportRatio > 1 {
		bad = append(bad, fmt.Sprintf("min_support_ratio(%g)", cfg.MinSupportRatio))
	}
	if cfg.MinSupportRatio == 0 && cfg.MinSupport < 1 {
		bad = append(bad, fmt.Sprintf("min_support(%d)", cfg.MinSupport))
	}
	if _, err := x_txn.NewReader(x_txn.Options{Format: cfg.Format}); cfg.Format != "" && err != nil {
		bad = append(bad, fmt.Sprintf("format(%s)", cfg.Format))
	}
	if _, err := cfg.DelimiterRune(); err != nil {
		bad = append(bad, fmt.Sprintf("delimiter(%q)", cfg.Delimiter))
	}
	if _, err := x_txn.Decode(strings.NewReader(""), cfg.Encoding); err != nil {
		bad = append(bad, fmt.Sprintf("encoding(%s)", cfg.Encoding))
	}
	if !slices.Contains(constant.Outputs, cfg.Output) {
		bad = append(bad, fmt.Sprintf("output(%s)", cfg.Output))
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		bad = append(bad, fmt.Sprintf("log_level(%s)", cfg.LogLevel))
	}
	if cfg.HTTPAddr == "" {
		bad = append(bad, "http_addr")
	}
	if cfg.Store.Enabled {
		if cfg.Store.Dialect != constant.DialectSqlite && cfg.Store.Dialect != constant.DialectPostgres {
			bad = append(bad, fmt.Sprintf("store.dialect(%s)", cfg.Store.Dialect))
		}
		if cfg.Store.DSN == "" {
			bad = append(bad, "store.dsn")
		}
	}

	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", constant.ErrInvalidConfig, strings.Join(bad, ", "))
	}
	return nil
}

// DelimiterRune returns the CSV delimiter. "\t" and "tab" mean a tab, an
// empty value means the reader default.
func (cfg *Config) DelimiterRune() (rune, error) {
	switch cfg.Delimiter {
	case "":
		return 0, nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(cfg.Delimiter)
	if r == utf8.RuneError || size != len(cfg.Delimiter) || r == '\n' || r == '"' {
		return 0, fmt.Errorf("%w: delimiter %q", constant.ErrInvalidConfig, cfg.Delimiter)
	}
	return r, nil
}

// TxnOptions maps the input settings onto reader options.
func (cfg *Config) TxnOptions() x_txn.Options {
	delim, _ := cfg.DelimiterRune()
	return x_txn.Options{
		Format:    cfg.Format,
		Delimiter: delim,
		Encoding:  cfg.Encoding,
	}
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return string(data)
}

func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	_, _ = w.Write(data)
}

// replaceEnvVars replaces ${ENV_VAR} in JSON with values from os.Getenv
func replaceEnvVars(data []byte) []byte {
	return []byte(os.Expand(string(data), os.Getenv))
}
