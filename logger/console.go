package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type consoleLabel struct {
	text  string
	color int
}

// consoleLabels is keyed by the severity names written by
// zerolog.LevelFieldMarshalFunc.
var consoleLabels = map[string]consoleLabel{
	"DEFAULT":   {"TRC", 35},
	"DEBUG":     {"DBG", 33},
	"INFO":      {"INF", 32},
	"NOTICE":    {"NOT", 36},
	"WARN":      {"WRN", 31},
	"ERROR":     {"ERR", 91},
	"CRITICAL":  {"CRT", 91},
	"EMERGENCY": {"FTL", 91},
}

// SetConsoleWriter switches to human readable output on stderr. Colors are
// only used when stderr is a terminal.
func SetConsoleWriter() {
	setConsoleWriter(os.Stderr, !isatty.IsTerminal(os.Stderr.Fd()))
}

func setConsoleWriter(out io.Writer, noColor bool) {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     noColor,
		TimeFormat:  "15:04:05.000",
		FormatLevel: formatSeverity(noColor),
	}).Level(level)
}

func formatSeverity(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		name, _ := i.(string)
		label, ok := consoleLabels[name]
		if !ok {
			return "???"
		}
		if noColor {
			return label.text
		}
		return fmt.Sprintf("\x1b[%dm%s\x1b[0m", label.color, label.text)
	}
}
