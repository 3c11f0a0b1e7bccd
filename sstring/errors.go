package sstring

import (
	"io"
)

var (
	ErrShortBuffer = io.ErrShortBuffer
)
