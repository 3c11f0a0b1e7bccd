package sstring

import (
	"bytes"
	"testing"

	"github.com/moontrade/stackie/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func traceTo(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logger.GetLevel()
	buf := &bytes.Buffer{}
	logger.SetWriter(buf)
	logger.SetLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		logger.SetLevel(prev)
		logger.SetConsoleWriter()
	})
	return buf
}

func TestTruncationTrace(t *testing.T) {
	buf := traceTo(t)

	var s String8
	s.SetString(msg)
	require.Equal(t, "hello wo", s.String())

	out := buf.String()
	require.Equal(t, "sstring truncated", gjson.Get(out, "message").String())
	require.Equal(t, int64(8), gjson.Get(out, "cap").Int())
	require.Equal(t, int64(len(msg)), gjson.Get(out, "len").Int())
}

func TestNoTraceWhenNothingIsLost(t *testing.T) {
	buf := traceTo(t)

	var s String8
	s.SetString("fits")
	// the raw copy is longer than 8 bytes but its terminator fits
	big := Of[Size256]("hi")
	s.SetFixed(&big)
	require.Equal(t, "hi", s.String())
	require.Zero(t, buf.Len())
}

func TestNoTraceByDefault(t *testing.T) {
	require.False(t, logger.Enabled(zerolog.TraceLevel))
}

func TestBoundedScanTraceOmitsLength(t *testing.T) {
	buf := traceTo(t)

	p := append([]byte(msg), 0)
	var s String8
	s.SetPointer(&p[0])
	require.Equal(t, "hello wo", s.String())

	out := buf.String()
	require.Equal(t, "sstring truncated", gjson.Get(out, "message").String())
	require.Equal(t, int64(8), gjson.Get(out, "cap").Int())
	require.False(t, gjson.Get(out, "len").Exists())
}

func TestDecodeFailureDebug(t *testing.T) {
	buf := traceTo(t)

	var s String8
	require.ErrorIs(t, s.UnmarshalBinary([]byte("abc")), ErrShortBuffer)
	out := buf.String()
	require.Equal(t, "sstring decode failed", gjson.Get(out, "message").String())
	require.Equal(t, "binary", gjson.Get(out, "format").String())
	require.Equal(t, int64(8), gjson.Get(out, "cap").Int())
	require.Equal(t, ErrShortBuffer.Error(), gjson.Get(out, "error").String())

	buf.Reset()
	require.Error(t, s.UnmarshalJSON([]byte(`42`)))
	require.Equal(t, "json", gjson.Get(buf.String(), "format").String())
}
