package sstring

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"github.com/tidwall/gjson"
)

func (s *String[B]) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(s.Unsafe())
}

// UnmarshalEasyJSON assigns a JSON string with the usual truncation. JSON
// null resets s.
func (s *String[B]) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if l.IsNull() {
		l.Skip()
		s.Reset()
		return
	}
	v := l.UnsafeString()
	if !l.Ok() {
		return
	}
	s.SetString(v)
}

func (s *String[B]) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	s.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

func (s *String[B]) UnmarshalJSON(data []byte) error {
	l := jlexer.Lexer{Data: data}
	s.UnmarshalEasyJSON(&l)
	if err := l.Error(); err != nil {
		debugDecode(s.Cap(), "json", err)
		return err
	}
	return nil
}

// SetPath assigns the value found at path in the JSON document doc, using
// gjson path syntax. Numbers, booleans and nested documents are assigned in
// their JSON text form and null as the empty string.
// It reports whether the path exists; s is left untouched when it does not.
func (s *String[B]) SetPath(doc, path string) bool {
	r := gjson.Get(doc, path)
	if !r.Exists() {
		return false
	}
	s.SetString(r.String())
	return true
}
