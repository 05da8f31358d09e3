package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger writes JSON lines through zerolog.
type ZeroLogger struct {
	writer        io.Writer
	level         Level
	defaultFields Fields
	zl            zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// NewZeroLogger returns a configured instance of ZeroLogger
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	if defaultFields == nil {
		defaultFields = Fields{}
	}
	l := &ZeroLogger{writer: writer, level: level, defaultFields: defaultFields}
	l.configure()
	return l
}

func toZerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) configure() {
	props := make(map[string]interface{}, len(l.defaultFields))
	for k, v := range l.defaultFields {
		props[k] = v
	}
	l.zl = zerolog.New(l.writer).With().Fields(props).Timestamp().Logger().Level(toZerologLevel(l.level))
}

// Info only logs information
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.zl.Info().Fields(properties).Msg(message)
}

// Error reports all error at error level
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.zl.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal writes the log to output and stops the process
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.zl.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.zl.Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.level = level
	l.configure()
}

// With returns a child logger that adds fields to every line.
func (l *ZeroLogger) With(fields Fields) Logger {
	merged := make(Fields, len(l.defaultFields)+len(fields))
	for k, v := range l.defaultFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return NewZeroLogger(l.writer, l.level, merged)
}
