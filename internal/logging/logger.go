// Package logging builds the bot's zerolog loggers: pretty console output,
// an optional rotating JSON file, and per-subsystem children.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a zerolog.Logger that knows how to spawn subsystem children.
// Debug, Info, Warn, Error and Fatal come from the embedded logger.
type Logger struct {
	zerolog.Logger
}

// New returns a logger writing to w at level. A nil w means the console.
func New(w io.Writer, level string) *Logger {
	if w == nil {
		w = console()
	}
	return &Logger{
		Logger: zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger(),
	}
}

// NewWithFile is New on the console, teed into a size-rotated file when
// file is set.
func NewWithFile(level, file string) *Logger {
	if file == "" {
		return New(nil, level)
	}
	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return New(zerolog.MultiLevelWriter(console(), rotating), level)
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Sub returns a child tagged with subsystem.
func (l *Logger) Sub(subsystem string) *Logger {
	return &Logger{Logger: l.With().Str("subsystem", subsystem).Logger()}
}

// ParseLevel maps a LOG_LEVEL value to a zerolog level. "silent" disables
// output; empty or unknown values fall back to info.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "silent" {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func console() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
}
