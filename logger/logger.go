// Package logger holds the process-wide zerolog logger. Events default to
// the console writer at Info level.
package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	log   zerolog.Logger
	level = zerolog.InfoLevel

	EmptyMessage = ""
)

func init() {
	setCallerFormatter()

	// Use GCP cloud logging naming
	zerolog.LevelFieldName = "severity"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		switch l {
		case zerolog.DebugLevel:
			return "DEBUG"
		case zerolog.InfoLevel:
			return "INFO"
		case zerolog.NoLevel:
			return "NOTICE"
		case zerolog.WarnLevel:
			return "WARN"
		case zerolog.ErrorLevel:
			return "ERROR"
		case zerolog.PanicLevel:
			return "CRITICAL"
		case zerolog.FatalLevel:
			return "EMERGENCY"
		default:
			return "DEFAULT"
		}
	}

	// Filtering happens on the package logger's own level.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	SetConsoleWriter()
}

// setCallerFormatter trims caller paths to be relative to the module root.
func setCallerFormatter() {
	_, file, _, _ := runtime.Caller(0)
	prefix := path.Dir(path.Dir(file))
	if len(prefix) > 0 && prefix[len(prefix)-1] != os.PathSeparator {
		prefix += "/"
	}

	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		if i := strings.Index(file, prefix); prefix != "" && i > -1 {
			file = file[i+len(prefix):]
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
}

// SetWriter sends JSON events to w.
func SetWriter(w io.Writer) {
	log = zerolog.New(w).Level(level)
}

func SetLevel(l zerolog.Level) {
	level = l
	log = log.Level(l)
}

func GetLevel() zerolog.Level {
	return level
}

// Enabled reports whether events at l would be written. Callers use it to
// skip building expensive fields on hot paths.
func Enabled(l zerolog.Level) bool {
	return l >= level && l >= zerolog.GlobalLevel()
}

func appendValue(event *zerolog.Event, name string, value interface{}) {
	switch v := value.(type) {
	case string:
		event.Str(name, v)
	case []byte:
		event.Bytes(name, v)
	case int:
		event.Int(name, v)
	case int64:
		event.Int64(name, v)
	case bool:
		event.Bool(name, v)
	case error:
		event.AnErr(name, v)
	case time.Duration:
		event.Str(name, v.String())
	case fmt.Stringer:
		event.Stringer(name, v)
	default:
		event.Interface(name, value)
	}
}

// doLog walks args as an optional leading error followed by key/value pairs.
// A key left without a value becomes the message. A key containing '%' is a
// format string consuming the remaining args.
func doLog(skip int, event *zerolog.Event, args []interface{}) {
	if event == nil {
		return
	}
	event.Timestamp()
	event.Caller(skip)

	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			event.Err(err)
			args = args[1:]
		}
	}

	for i := 0; i < len(args); i++ {
		k, ok := args[i].(string)
		if !ok {
			appendValue(event, fmt.Sprintf("arg%d", i), args[i])
			continue
		}
		if strings.Contains(k, "%") {
			event.Msgf(k, args[i+1:]...)
			return
		}
		if i+1 == len(args) {
			event.Msg(k)
			return
		}
		i++
		appendValue(event, k, args[i])
	}

	event.Msg(EmptyMessage)
}

// Trace logs a message at level Trace on the standard logger.
func Trace(args ...interface{}) {
	doLog(2, log.Trace(), args)
}

func TraceCaller(skip int, args ...interface{}) {
	doLog(skip, log.Trace(), args)
}

// Debug logs a message at level Debug on the standard logger.
func Debug(args ...interface{}) {
	doLog(2, log.Debug(), args)
}

func DebugCaller(skip int, args ...interface{}) {
	doLog(skip, log.Debug(), args)
}
