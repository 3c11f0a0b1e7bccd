// Package sstring implements fixed capacity strings that live inline in
// their owner. A String never allocates: its bytes are a plain array sized by
// the Buffer type parameter, so the capacity is part of the type and is never
// stored per value.
//
// Every setter copies at most Cap() bytes and then writes a NUL terminator,
// so the buffer is always terminated at or before index Cap(). Longer sources
// are truncated silently. Bytes past the terminator are not cleared when a
// shorter value replaces a longer one and should be treated as unspecified.
//
// A String is a plain value. Copies are deep and distinct values share
// nothing, but a single value must not be mutated from multiple goroutines
// without external synchronization.
//
// All methods have pointer receivers, including the encoding.TextMarshaler
// and json.Marshaler implementations. encoding/json only finds them on
// addressable values, so a struct holding String fields must be marshaled
// through a pointer; marshaled by value each field encodes as {}.
package sstring

import (
	"bytes"
	"unsafe"

	"github.com/tidwall/match"
)

// String holds up to N bytes plus a NUL terminator, where N+1 is the length
// of B. The zero value is the empty string.
type String[B Buffer] struct {
	b B
}

// Fixed is implemented by *String for every capacity. It lets a String be
// assigned from another String of a different capacity.
type Fixed interface {
	Cap() int
	Len() int
	Bytes() []byte
	raw() []byte
	isNil() bool
}

// Capacity returns the capacity of strings built on B.
func Capacity[B Buffer]() int {
	var b B
	return len(b) - 1
}

func New[B Buffer]() String[B] {
	return String[B]{}
}

// From copies src into a new String of capacity Cap(B). A nil src yields the
// empty string.
func From[B, M Buffer](src *String[M]) (s String[B]) {
	s.SetFixed(src)
	return
}

// FromArray copies a fixed-size character array into a new String.
// See SetArray.
func FromArray[B Buffer](a []byte) (s String[B]) {
	s.SetArray(a)
	return
}

// FromCString copies the NUL-terminated content of p into a new String.
func FromCString[B Buffer](p []byte) (s String[B]) {
	s.SetCString(p)
	return
}

// FromPointer copies a NUL-terminated C-style string into a new String.
// See SetPointer.
func FromPointer[B Buffer](p *byte) (s String[B]) {
	s.SetPointer(p)
	return
}

func FromBytes[B Buffer](b []byte) (s String[B]) {
	s.SetBytes(b)
	return
}

// Of copies v into a new String, truncating to Cap(B) bytes.
func Of[B Buffer](v string) (s String[B]) {
	s.SetString(v)
	return
}

func unsafeBytes[B Buffer](b *B) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b)), len(*b))
}

func (s *String[B]) raw() []byte {
	return unsafeBytes(&s.b)
}

func (s *String[B]) isNil() bool {
	return s == nil
}

// assign is the single copy law shared by every setter: with k = min(len(src), N)
// bytes [0, k) are copied verbatim and byte k becomes the terminator.
// bounded marks a src cut short by a scan, whose full length is unknown.
func (s *String[B]) assign(src []byte, bounded bool) *String[B] {
	dst := s.raw()
	k := len(src)
	if k >= len(dst) {
		k = len(dst) - 1
		traceTruncated(k, src, bounded)
	}
	copy(dst, src[:k])
	dst[k] = 0
	return s
}

// SetFixed copies min(N, M) raw buffer bytes from src, where M is src.Cap(),
// and terminates at min(N, M). Content past src's terminator comes along
// but stays hidden behind it. A nil src, typed or not, resets s.
func (s *String[B]) SetFixed(src Fixed) *String[B] {
	if src == nil || src.isNil() {
		return s.Reset()
	}
	return s.assign(src.raw()[:src.Cap()], false)
}

// SetArray copies a fixed-size character array whose declared length is
// len(a). The array usually ends with its own terminator. The copy is raw:
// embedded NULs are copied as-is and Len reports the first of them.
func (s *String[B]) SetArray(a []byte) *String[B] {
	return s.assign(a, false)
}

// SetCString copies the bytes of p before its first NUL, or all of p when it
// holds no NUL.
func (s *String[B]) SetCString(p []byte) *String[B] {
	if i := bytes.IndexByte(p, 0); i > -1 {
		p = p[:i]
	}
	return s.assign(p, false)
}

// SetPointer copies a NUL-terminated C-style string starting at p. At most
// N+1 bytes are read, so p only has to be valid up to its terminator or
// that bound, whichever comes first. A nil p yields the empty string.
func (s *String[B]) SetPointer(p *byte) *String[B] {
	if p == nil {
		return s.Reset()
	}
	var (
		n = len(s.b) - 1
		l = 0
	)
	for l <= n && *(*byte)(unsafe.Add(unsafe.Pointer(p), l)) != 0 {
		l++
	}
	return s.assign(unsafe.Slice(p, l), true)
}

// SetBytes copies exactly min(len(b), N) bytes of b.
func (s *String[B]) SetBytes(b []byte) *String[B] {
	return s.assign(b, false)
}

// SetString copies exactly min(len(v), N) bytes of v.
func (s *String[B]) SetString(v string) *String[B] {
	return s.assign(unsafe.Slice(unsafe.StringData(v), len(v)), false)
}

// Reset makes s empty. Only the first byte is written.
func (s *String[B]) Reset() *String[B] {
	s.raw()[0] = 0
	return s
}

// Cap returns N. It does not depend on the receiver's contents and is the
// same for every String[B].
func (s *String[B]) Cap() int {
	return Capacity[B]()
}

// Len returns the number of bytes before the terminator.
func (s *String[B]) Len() int {
	b := s.raw()
	if i := bytes.IndexByte(b, 0); i > -1 {
		return i
	}
	return len(b) - 1
}

// Truncated reports whether a source of srcLen bytes would be cut short by
// an assignment to s.
func (s *String[B]) Truncated(srcLen int) bool {
	return srcLen > s.Cap()
}

// Bytes returns the content without its terminator. The slice aliases s.
func (s *String[B]) Bytes() []byte {
	l := s.Len()
	return s.raw()[0:l:l]
}

// CStr returns the content followed by its NUL terminator. The slice aliases
// s and is invalidated by the next assignment. It must not be written to.
func (s *String[B]) CStr() []byte {
	l := s.Len() + 1
	return s.raw()[0:l:l]
}

// Raw returns the whole N+1 byte buffer, including any stale bytes past the
// terminator. It must not be written to.
func (s *String[B]) Raw() []byte {
	return s.raw()
}

// Unsafe returns the content as a string that shares memory with s.
func (s *String[B]) Unsafe() string {
	b := s.Bytes()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

func (s *String[B]) String() string {
	return string(s.Bytes())
}

func (s *String[B]) Clone() String[B] {
	return *s
}

// Equal compares content only, so strings of different capacities can be
// equal.
func (s *String[B]) Equal(other Fixed) bool {
	if other == nil || other.isNil() {
		return s.Len() == 0
	}
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// Match reports whether the content matches a glob pattern using '*' and '?'.
func (s *String[B]) Match(pattern string) bool {
	return match.Match(s.Unsafe(), pattern)
}
