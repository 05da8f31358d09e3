package logger

type Fields map[string]interface{}

// Logger is the structured logger every service receives.
type Logger interface {
	Info(message string, properties map[string]interface{})
	Error(err error, properties map[string]interface{})
	Fatal(err error, properties map[string]interface{})
	Debug(message string, properties map[string]interface{})
	SetLevel(level Level)
	With(fields Fields) Logger
}

type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	case LevelDebug:
		return "DEBUG"
	default:
		return ""
	}
}

// ParseLevel maps a config value such as "debug" to a Level. Unknown values
// fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "error", "ERROR":
		return LevelError
	case "fatal", "FATAL":
		return LevelFatal
	case "off", "OFF":
		return LevelOff
	default:
		return LevelInfo
	}
}
