package sstring

import (
	"bytes"

	"github.com/moontrade/stackie/logger"
	"github.com/rs/zerolog"
)

// traceTruncated logs an assignment of src that dropped content. src is at
// least capacity+1 bytes long. Raw sources whose terminator fits are not
// reported since nothing visible was lost. A bounded src stops where the scan
// did, so its length is left out.
func traceTruncated(capacity int, src []byte, bounded bool) {
	if !logger.Enabled(zerolog.TraceLevel) {
		return
	}
	if bytes.IndexByte(src[:capacity+1], 0) > -1 {
		return
	}
	if bounded {
		logger.TraceCaller(5, "cap", capacity, "sstring truncated")
		return
	}
	l := bytes.IndexByte(src, 0)
	if l < 0 {
		l = len(src)
	}
	logger.TraceCaller(5, "cap", capacity, "len", l, "sstring truncated")
}

// debugDecode logs a rejected encoded value. Decode errors are returned to
// the caller as well; the event only adds the capacity involved.
func debugDecode(capacity int, format string, err error) {
	if !logger.Enabled(zerolog.DebugLevel) {
		return
	}
	logger.DebugCaller(4, err, "cap", capacity, "format", format, "sstring decode failed")
}
