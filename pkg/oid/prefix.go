package oid

import "fmt"

// Prefix is the human readable tag in front of an identifier, such as "USR"
// in "USR-4GKFGPRVND4QT3PDR90PDKF66O".
//
// A Prefix holds one or more bytes from [0-9A-Za-z]. The only way to obtain
// a non-zero Prefix is through a validating constructor, and the bytes
// cannot be changed afterwards. Prefixes compare with == byte for byte,
// case-sensitively, and can be used as map keys.
type Prefix struct {
	s string
}

// NewPrefix validates s and returns it as a Prefix.
//
// If a byte is outside [0-9A-Za-z] the returned *Error has kind
// InvalidPrefix and ValidUntil set to that byte's index. An empty string
// returns ErrMissingPrefix.
func NewPrefix(s string) (Prefix, error) {
	if s == "" {
		return Prefix{}, ErrMissingPrefix
	}
	for i := 0; i < len(s); i++ {
		if !validPrefixByte(s[i]) {
			return Prefix{}, invalidByteError(i)
		}
	}
	return prefixUnchecked(s), nil
}

// PrefixFromBytes is NewPrefix for a byte slice. The bytes are copied.
func PrefixFromBytes(b []byte) (Prefix, error) {
	return NewPrefix(string(b))
}

// MustPrefix is like NewPrefix but panics on invalid input. It is meant for
// package level constants.
func MustPrefix(s string) Prefix {
	p, err := NewPrefix(s)
	if err != nil {
		panic(fmt.Sprintf("invalid prefix %q: %v", s, err))
	}
	return p
}

// prefixUnchecked skips validation. Callers must already know that every
// byte of s satisfies validPrefixByte.
func prefixUnchecked(s string) Prefix {
	return Prefix{s: s}
}

func validPrefixByte(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('A' <= c && c <= 'Z') ||
		('a' <= c && c <= 'z')
}

// String returns the prefix text.
func (p Prefix) String() string {
	return p.s
}

// Bytes returns a copy of the prefix bytes.
func (p Prefix) Bytes() []byte {
	return []byte(p.s)
}

// Len returns the number of bytes in the prefix.
func (p Prefix) Len() int {
	return len(p.s)
}

// IsZero reports whether p is the zero Prefix.
func (p Prefix) IsZero() bool {
	return p.s == ""
}

// Equal reports whether p and other hold the same bytes.
func (p Prefix) Equal(other Prefix) bool {
	return p.s == other.s
}

// MarshalText implements encoding.TextMarshaler.
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Prefix) UnmarshalText(data []byte) error {
	parsed, err := PrefixFromBytes(data)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
