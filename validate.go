package gecos

import (
	"fmt"
	"strings"
)

// forbiddenChars are the characters that may not appear in a GECOS field
// value. All of them are ASCII.
const forbiddenChars = ",:=\\\"\n"

// InvalidCharError reports the leftmost forbidden character found in a
// candidate field value.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q in gecos field (',', ':', '=', '\\', '\"' and newline are not allowed)", e.Char)
}

// SanitizedString is a field value guaranteed to contain none of the
// characters reserved by the passwd line format. The zero value is the
// empty string, which is valid. Two values compare equal with == iff their
// underlying text is equal.
type SanitizedString struct {
	str string
}

// NewSanitizedString validates value and wraps it unchanged, with no
// trimming or escaping. It is the only gate into SanitizedString; on
// failure the returned error is an *InvalidCharError carrying the leftmost
// offending character of value.
func NewSanitizedString(value string) (SanitizedString, error) {
	if i := strings.IndexAny(value, forbiddenChars); i >= 0 {
		// The forbidden set is ASCII, so the byte at i is the full rune.
		return SanitizedString{}, &InvalidCharError{Char: rune(value[i])}
	}
	return SanitizedString{str: value}, nil
}

// MustSanitizedString is like NewSanitizedString but panics on invalid
// input. Intended for literals known to be clean.
func MustSanitizedString(value string) SanitizedString {
	s, err := NewSanitizedString(value)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the underlying text exactly as it was given.
func (s SanitizedString) String() string {
	return s.str
}
