package x_log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// buildWriter fans entries out to the configured targets.
func buildWriter(cfg *Config) io.Writer {
	var writers []io.Writer

	if cfg.ToConsole {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		styles.NoColor = !IsTerminal(os.Stderr)
		writers = append(writers, ConsoleWriterWithStyles(styles))
	}
	if cfg.ToFile {
		writers = append(writers, fileWriter(cfg))
	}

	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	default:
		return zerolog.MultiLevelWriter(writers...)
	}
}

func fileWriter(cfg *Config) io.Writer {
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	if !cfg.ColoredFile {
		return rotator
	}
	styles := DefaultStylesByName(cfg.Style)
	styles.Out = rotator
	return ConsoleWriterWithStyles(styles)
}
