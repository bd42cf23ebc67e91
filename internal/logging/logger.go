package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339
}

// ParseLevel maps a configured level name to a zerolog level.
// Unknown and empty names map to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug", "info", "warn", "error":
		lvl, _ := zerolog.ParseLevel(s)
		return lvl
	}
	return zerolog.InfoLevel
}

// Logger logs messages with alternating key/value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})

	// WithRequestID returns a child logger tagging every entry with request_id.
	WithRequestID(requestID string) Logger
	// WithFields returns a child logger carrying the given pairs.
	WithFields(keysAndValues ...interface{}) Logger
}

// Config selects level ("debug", "info", "warn", "error"), format ("text" or
// "json") and output ("stdout", "stderr" or a file path).
type Config struct {
	Level  string
	Format string
	Output string
}

type logger struct {
	z zerolog.Logger
}

// New creates a Logger for cfg. A log file that cannot be opened falls back
// to stdout.
func New(cfg Config) Logger {
	return NewWithWriter(cfg, openOutput(cfg.Output))
}

func openOutput(name string) io.Writer {
	switch name {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stdout
	}
	return f
}

// NewWithWriter creates a Logger writing to w, ignoring cfg.Output.
func NewWithWriter(cfg Config, w io.Writer) Logger {
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return &logger{z: z}
}

// NewDefault logs text at info level to stdout.
func NewDefault() Logger {
	return NewWithWriter(Config{Level: "info", Format: "text"}, os.Stdout)
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &logger{z: zerolog.Nop()}
}

func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.z.Debug().Fields(pairs(keysAndValues)).Msg(msg)
}

func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.z.Info().Fields(pairs(keysAndValues)).Msg(msg)
}

func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.z.Warn().Fields(pairs(keysAndValues)).Msg(msg)
}

func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.z.Error().Fields(pairs(keysAndValues)).Msg(msg)
}

func (l *logger) WithRequestID(requestID string) Logger {
	return &logger{z: l.z.With().Str("request_id", requestID).Logger()}
}

func (l *logger) WithFields(keysAndValues ...interface{}) Logger {
	return &logger{z: l.z.With().Fields(pairs(keysAndValues)).Logger()}
}

// pairs turns alternating key/value arguments into a field map.
// Non-string keys and a trailing key without a value are dropped.
func pairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
