package logger

import (
	"github.com/rs/zerolog"
)

var (
	stdoutLogger = zerolog.New(stdoutConsoleWriter).With().Timestamp().Logger().Level(zerolog.Level(DefaultLogLevel))
	stderrLogger = zerolog.New(stderrConsoleWriter).With().Timestamp().Logger().Level(zerolog.Level(DefaultLogLevel))
)

// Options collects the settings read from the "log" section of a config
// file.
type Options struct {
	Level     Level
	Color     bool
	Timestamp bool
}

// Apply installs the options on both the standard and the error logger.
func (o Options) Apply() {
	SetColor(o.Color)
	SetTimestamp(o.Timestamp)
	SetLogLevel(o.Level)
}

func SetTimestamp(enabled bool) {
	stdoutLogger = zerolog.New(stdoutConsoleWriter).Level(stdoutLogger.GetLevel())
	stderrLogger = zerolog.New(stderrConsoleWriter).Level(stderrLogger.GetLevel())
	if enabled {
		stdoutLogger = stdoutLogger.With().Timestamp().Logger()
		stderrLogger = stderrLogger.With().Timestamp().Logger()
	}
}

// Trace starts a new message with trace level.
//
// You must call Msg on the returned event in order to send the event.
func Trace() *zerolog.Event {
	return stdoutLogger.Trace()
}

// Debug starts a new message with debug level.
//
// You must call Msg on the returned event in order to send the event.
func Debug() *zerolog.Event {
	return stdoutLogger.Debug()
}

// Info starts a new message with info level.
//
// You must call Msg on the returned event in order to send the event.
func Info() *zerolog.Event {
	return stdoutLogger.Info()
}

// Warning starts a new message with warn level.
//
// You must call Msg on the returned event in order to send the event.
func Warning() *zerolog.Event {
	return stdoutLogger.Warn()
}

// Error starts a new message with error level on the error output.
//
// You must call Msg on the returned event in order to send the event.
func Error() *zerolog.Event {
	return stderrLogger.Error()
}

// Err starts a new message with error level with err as a field if not nil or
// with info level if err is nil.
//
// You must call Msg on the returned event in order to send the event.
func Err(err error) *zerolog.Event {
	if err != nil {
		return stderrLogger.Err(err)
	}
	return stdoutLogger.Err(nil)
}
