package x_db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//
// ---------- GORM log adapter ----------

// logAdapter implements gorm's logger.Interface on zerolog.
type logAdapter struct {
	log           zerolog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newLogAdapter(log zerolog.Logger, level logger.LogLevel, slow time.Duration) logger.Interface {
	return &logAdapter{
		log:           log.With().Str("module", "gorm").Logger(),
		level:         level,
		slowThreshold: slow,
	}
}

func parseLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func (l *logAdapter) LogMode(level logger.LogLevel) logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *logAdapter) Info(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		l.log.Info().Msgf(msg, data...)
	}
}

func (l *logAdapter) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		l.log.Warn().Msgf(msg, data...)
	}
}

func (l *logAdapter) Error(_ context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		l.log.Error().Msgf(msg, data...)
	}
}

// Trace logs failed and slow statements; everything else only at info.
func (l *logAdapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	e := l.log.With().Dur("elapsed", elapsed).Int64("rows", rows).Logger()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		e.Error().Err(err).Msg(sql)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		e.Warn().Msgf("slow sql: %s", sql)
	case l.level >= logger.Info:
		e.Info().Msg(sql)
	}
}
