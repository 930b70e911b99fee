package oid

import (
	"encoding/base32"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// EncodedLen is the length of an encoded UUID value.
const EncodedLen = 26

var base32Hex = base32.HexEncoding.WithPadding(base32.NoPadding)

var errNonCanonical = errors.New("non-canonical encoding")

// EncodeUUID returns the unpadded base32hex encoding of u's 16 bytes.
func EncodeUUID(u uuid.UUID) string {
	return base32Hex.EncodeToString(u[:])
}

// DecodeUUID reverses EncodeUUID.
//
// An empty string returns ErrMissingValue. Text that is not canonical
// unpadded base32hex (bad character, impossible length, non-zero trailing
// bits) returns a Base32Decode error. Well-formed text that does not decode
// to exactly 16 bytes returns an InvalidUUID error.
func DecodeUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, ErrMissingValue
	}
	// The stdlib decoder silently drops line breaks.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return uuid.Nil, &Error{Kind: Base32Decode, Err: base32.CorruptInputError(i)}
	}

	raw, err := base32Hex.DecodeString(s)
	if err != nil {
		return uuid.Nil, &Error{Kind: Base32Decode, Err: err}
	}
	if base32Hex.EncodeToString(raw) != s {
		return uuid.Nil, &Error{Kind: Base32Decode, Err: errNonCanonical}
	}

	u, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, &Error{Kind: InvalidUUID, Err: err}
	}
	return u, nil
}

// parseStdUUID parses the standard hyphenated UUID form.
func parseStdUUID(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &Error{Kind: InvalidUUID, Err: err}
	}
	return u, nil
}
