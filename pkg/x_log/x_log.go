// Package x_log provides a zerolog-based global logger with styled console
// output and rotated file output.
package x_log

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger type shared across packages.
type Logger = zerolog.Logger

//---------------------
// INIT
//---------------------

// Init configures the global logger from XLOG_CONFIG or ./xlog.json,
// falling back to defaults when the file is missing or broken.
func Init() {
	cfg, err := LoadConfig("")
	if err != nil {
		def := defaultConfig
		InitWithConfig(&def, "")
		log.Warn().Err(err).Msg("log config ignored")
		return
	}
	InitWithConfig(cfg, "")
}

// InitWithConfig configures the global logger from cfg. A non-empty app
// is attached to every entry.
func InitWithConfig(cfg *Config, app string) {
	c := *cfg
	applyDefaults(&c)

	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	lc := zerolog.New(buildWriter(&c)).With().Timestamp()
	if app != "" {
		lc = lc.Str("app", app)
	}
	log.Logger = lc.Logger()
}

// SetLevel changes the global level; unknown names are rejected.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

//---------------------
// SCOPED LOGGERS
//---------------------

// New returns a child of the global logger tagged with module.
func New(module string) Logger {
	return log.Logger.With().Str("module", module).Logger()
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger stored in ctx, or the global one.
func From(ctx context.Context) *Logger {
	l := zerolog.Ctx(ctx)
	if l == nil || l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}

//---------------------
// GLOBAL EVENTS
//---------------------

func Debug() *zerolog.Event { return log.Logger.Debug() }
func Info() *zerolog.Event  { return log.Logger.Info() }
func Warn() *zerolog.Event  { return log.Logger.Warn() }
func Error() *zerolog.Event { return log.Logger.Error() }
func Fatal() *zerolog.Event { return log.Logger.Fatal() }
