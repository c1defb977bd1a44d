package logger

import (
	"errors"
	"github.com/rs/zerolog"
	"strings"
)

type Level zerolog.Level

const (
	// TraceLevel defines trace log level.
	TraceLevel = Level(zerolog.TraceLevel)
	// DebugLevel defines debug log level.
	DebugLevel = Level(zerolog.DebugLevel)
	// InfoLevel defines info log level.
	InfoLevel = Level(zerolog.InfoLevel)
	// WarningLevel defines warn log level.
	WarningLevel = Level(zerolog.WarnLevel)
	// ErrorLevel defines error log level.
	ErrorLevel = Level(zerolog.ErrorLevel)
	// Disabled disables the logger.
	Disabled = Level(zerolog.Disabled)
)

const DefaultLogLevel = WarningLevel

var ErrUnknownLevel = errors.New("logger: Unknown log level")

// ParseLevel accepts the level names used in config files. Matching is
// case-insensitive and "warn" is accepted as an alias of "warning".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "none", "disabled":
		return Disabled, nil
	}
	return DefaultLogLevel, ErrUnknownLevel
}

func (l Level) String() string {
	if l == WarningLevel {
		return "warning"
	}
	return zerolog.Level(l).String()
}

func LogLevel() Level {
	if stdoutLevel, stderrLevel := stdoutLogger.GetLevel(), stderrLogger.GetLevel(); stdoutLevel < stderrLevel {
		return Level(stdoutLevel)
	} else {
		return Level(stderrLevel)
	}
}

func SetLogLevel(level Level) {
	stdoutLogger = stdoutLogger.Level(zerolog.Level(level))
	stderrLogger = stderrLogger.Level(zerolog.Level(level))
}
