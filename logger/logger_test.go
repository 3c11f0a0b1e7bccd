package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func captureJSON(t *testing.T, l zerolog.Level) *bytes.Buffer {
	t.Helper()
	prevLevel := GetLevel()
	prevLog := log
	t.Cleanup(func() {
		level = prevLevel
		log = prevLog
	})
	buf := &bytes.Buffer{}
	level = l
	SetWriter(buf)
	return buf
}

func TestKeyValuesAndMessage(t *testing.T) {
	buf := captureJSON(t, zerolog.TraceLevel)

	Trace("cap", 8, "len", 12, "name", "hello", "sstring truncated")

	out := buf.String()
	require.Equal(t, "DEFAULT", gjson.Get(out, "severity").String())
	require.Equal(t, int64(8), gjson.Get(out, "cap").Int())
	require.Equal(t, int64(12), gjson.Get(out, "len").Int())
	require.Equal(t, "hello", gjson.Get(out, "name").String())
	require.Equal(t, "sstring truncated", gjson.Get(out, "message").String())
	require.Contains(t, gjson.Get(out, "caller").String(), "logger/logger_test.go:")
}

func TestLeadingErrorAndFormat(t *testing.T) {
	buf := captureJSON(t, zerolog.DebugLevel)

	Debug(errors.New("boom"), "took %s", time.Second)

	out := buf.String()
	require.Equal(t, "DEBUG", gjson.Get(out, "severity").String())
	require.Equal(t, "boom", gjson.Get(out, "error").String())
	require.Equal(t, "took 1s", gjson.Get(out, "message").String())
}

func TestNonStringKey(t *testing.T) {
	buf := captureJSON(t, zerolog.DebugLevel)

	DebugCaller(2, 42, "done")

	out := buf.String()
	require.Equal(t, int64(42), gjson.Get(out, "arg0").Int())
	require.Equal(t, "done", gjson.Get(out, "message").String())
}

func TestLevelFiltering(t *testing.T) {
	buf := captureJSON(t, zerolog.DebugLevel)

	require.False(t, Enabled(zerolog.TraceLevel))
	require.True(t, Enabled(zerolog.DebugLevel))
	require.True(t, Enabled(zerolog.WarnLevel))

	Trace("dropped")
	require.Zero(t, buf.Len())

	Debug("kept")
	require.Equal(t, "kept", gjson.Get(buf.String(), "message").String())

	buf.Reset()
	SetLevel(zerolog.TraceLevel)
	require.True(t, Enabled(zerolog.TraceLevel))
	TraceCaller(2, "now kept")
	require.Equal(t, "now kept", gjson.Get(buf.String(), "message").String())
}

func TestConsoleSeverityLabels(t *testing.T) {
	prevLevel := GetLevel()
	prevLog := log
	t.Cleanup(func() {
		level = prevLevel
		log = prevLog
	})
	level = zerolog.TraceLevel

	var buf bytes.Buffer
	setConsoleWriter(&buf, true)

	Trace("a")
	require.Contains(t, buf.String(), "TRC")
	buf.Reset()
	Debug("b")
	require.Contains(t, buf.String(), "DBG")
	require.NotContains(t, buf.String(), "\x1b[")

	require.Equal(t, "???", formatSeverity(true)("bogus"))
	require.Equal(t, "\x1b[32mINF\x1b[0m", formatSeverity(false)("INFO"))
}
