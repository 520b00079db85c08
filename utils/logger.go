package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides leveled, printf-style logging throughout the application.
// Output is produced by zerolog, either as console lines or JSON.
type Logger struct {
	zl zerolog.Logger
}

// LoggerConfig selects the level, format and destination of a Logger.
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	Output io.Writer
}

// NewLoggerWithConfig builds a Logger from cfg, applying defaults for empty fields.
func NewLoggerWithConfig(cfg LoggerConfig) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02 15:04:05"}
	}

	zl := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With returns a child Logger that adds key=value to every line.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Info(format string, args ...any) {
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.zl.Error().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
