package logger

import (
	"fmt"
	"github.com/rs/zerolog"
	"io"
	"os"
	"time"
)

var (
	stdoutConsoleWriter = newConsoleWriter(os.Stdout)
	stderrConsoleWriter = newConsoleWriter(os.Stderr)
)

const (
	colorRed      = 31
	colorGreen    = 32
	colorYellow   = 33
	colorBlue     = 34
	colorMagenta  = 35
	colorCyan     = 36
	colorBold     = 1
	colorDarkGray = 90
)

type levelLabel struct {
	text  string
	color int
	bold  bool
}

var levelLabels = map[string]levelLabel{
	"trace": {text: "Trace", color: colorCyan},
	"debug": {text: "Debug", color: colorBlue},
	"info":  {text: "Info", color: colorGreen},
	"warn":  {text: "Warning", color: colorYellow},
	"error": {text: "Error", color: colorRed, bold: true},
	"fatal": {text: "Fatal", color: colorMagenta, bold: true},
	"panic": {text: "Panic", color: colorMagenta, bold: true},
}

func newConsoleWriter(output io.Writer) *zerolog.ConsoleWriter {
	cw := &zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.UnixDate,
		NoColor:    os.Getenv("TERM") == "",
	}
	cw.FormatLevel = levelFormatter(cw)
	cw.FormatFieldName = func(i interface{}) string {
		return colorize(fmt.Sprintf("%s=", i), colorDarkGray, cw.NoColor)
	}
	return cw
}

func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func levelFormatter(consoleWriter *zerolog.ConsoleWriter) zerolog.Formatter {
	return func(i interface{}) string {
		name, _ := i.(string)
		label, ok := levelLabels[name]
		if !ok {
			return "[" + colorize("???", colorBold, consoleWriter.NoColor) + "]"
		}
		text := colorize(label.text, label.color, consoleWriter.NoColor)
		if label.bold {
			text = colorize(text, colorBold, consoleWriter.NoColor)
		}
		return "[" + text + "]"
	}
}

func Color() bool {
	return !stdoutConsoleWriter.NoColor && !stderrConsoleWriter.NoColor
}

func SetColor(color bool) {
	stdoutConsoleWriter.NoColor = !color
	stderrConsoleWriter.NoColor = !color
}

func Output() io.Writer {
	return stdoutConsoleWriter.Out
}

func SetOutput(output io.Writer) {
	stdoutConsoleWriter.Out = output
}

func ErrorOutput() io.Writer {
	return stderrConsoleWriter.Out
}

func SetErrorOutput(output io.Writer) {
	stderrConsoleWriter.Out = output
}
