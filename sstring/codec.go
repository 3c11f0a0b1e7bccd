package sstring

import (
	"io"
)

// WriteTo writes exactly the first Len() bytes of s to w, the same bytes
// writing the equivalent Go string would produce. It is the text rendering
// of s, not an encoding: use WriteBinaryTo to persist a String.
func (s *String[B]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

func (s *String[B]) AppendTo(dst []byte) []byte {
	return append(dst, s.Bytes()...)
}

// WriteBinaryTo writes the fixed-width N+1 byte layout read back by
// ReadBinaryFrom.
func (s *String[B]) WriteBinaryTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.raw())
	return int64(n), err
}

// ReadBinaryFrom reads exactly N+1 bytes written by WriteBinaryTo or
// MarshalBinary. Byte N is forced to NUL afterwards so a corrupt source can
// never leave s unterminated. s is unchanged when the read fails.
func (s *String[B]) ReadBinaryFrom(r io.Reader) (int64, error) {
	var tmp B
	b := unsafeBytes(&tmp)
	n, err := io.ReadFull(r, b)
	if err != nil {
		debugDecode(len(b)-1, "binary", err)
		return int64(n), err
	}
	b[len(b)-1] = 0
	s.b = tmp
	return int64(n), nil
}

// MarshalBinary returns the raw N+1 byte buffer, the fixed-width layout used
// when a String is embedded in a record.
func (s *String[B]) MarshalBinary() ([]byte, error) {
	var v []byte
	return append(v, s.raw()...), nil
}

func (s *String[B]) MarshalBinaryTo(b []byte) []byte {
	return append(b, s.raw()...)
}

// UnmarshalBinary reads the fixed-width layout written by MarshalBinary.
// Only the first N+1 bytes of b are used.
func (s *String[B]) UnmarshalBinary(b []byte) error {
	dst := s.raw()
	if len(b) < len(dst) {
		debugDecode(len(dst)-1, "binary", ErrShortBuffer)
		return ErrShortBuffer
	}
	copy(dst, b[:len(dst)])
	dst[len(dst)-1] = 0
	return nil
}

func (s *String[B]) MarshalText() ([]byte, error) {
	return s.AppendTo(nil), nil
}

// UnmarshalText assigns text using the same truncation as SetBytes.
func (s *String[B]) UnmarshalText(text []byte) error {
	s.SetBytes(text)
	return nil
}
