package x_db

import (
	"errors"
	"time"
)

var (
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
	ErrRunNotFound        = errors.New("run not found")
)

//---------------------
// Store Config
//---------------------

// Config selects the database and how chatty gorm is.
type Config struct {
	Dialect       string        // sqlite, postgres
	DSN           string        // file path for sqlite, key=value string for postgres
	LogLevel      string        // silent, error, warn, info
	SlowThreshold time.Duration // queries slower than this are logged as warnings
}

func (c Config) withDefaults() Config {
	if c.Dialect == "" {
		c.Dialect = "sqlite"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.SlowThreshold <= 0 {
		c.SlowThreshold = 200 * time.Millisecond
	}
	return c
}
