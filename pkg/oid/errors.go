package oid

import (
	"errors"
	"fmt"
)

// Kind classifies an identifier error. The set of kinds is closed.
type Kind uint8

const (
	// KindUnknown is reported by KindOf for errors that did not come from
	// this package.
	KindUnknown Kind = iota

	// PrefixByteLength is reserved for fixed-length prefix enforcement.
	// Prefixes are variable length, so no operation currently returns it.
	PrefixByteLength

	// InvalidPrefix has two variants that share one representation, see
	// Error.Mismatch.
	InvalidPrefix

	// MissingPrefix means the prefix segment is empty.
	MissingPrefix

	// MissingSeparator means no "-" was found in the parsed text.
	MissingSeparator

	// MissingValue means the value segment is empty.
	MissingValue

	// InvalidUUID means text that should hold a standard UUID does not, or
	// a decoded value is not 16 bytes long.
	InvalidUUID

	// Base32Decode means the value segment is not canonical unpadded
	// base32hex text.
	Base32Decode
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case PrefixByteLength:
		return "PrefixByteLength"
	case InvalidPrefix:
		return "InvalidPrefix"
	case MissingPrefix:
		return "MissingPrefix"
	case MissingSeparator:
		return "MissingSeparator"
	case MissingValue:
		return "MissingValue"
	case InvalidUUID:
		return "InvalidUUID"
	case Base32Decode:
		return "Base32Decode"
	default:
		return "Unknown"
	}
}

// Error is the only error type returned by this package.
//
// Two sentinel-compatible errors match with errors.Is when their kinds are
// equal; use errors.As to inspect ValidUntil, Mismatch or the cause.
type Error struct {
	Kind Kind

	// ValidUntil is the 0-based index of the first offending prefix byte.
	// Only meaningful for InvalidPrefix.
	ValidUntil int

	// Mismatch selects the InvalidPrefix variant. When false, the byte at
	// ValidUntil is outside [0-9A-Za-z]. When true, a typed identifier was
	// parsed and ValidUntil is where the supplied prefix first differs
	// from the marker's prefix.
	Mismatch bool

	// Err is the underlying cause for InvalidUUID and Base32Decode.
	Err error
}

// Sentinel errors, one per kind.
var (
	ErrPrefixByteLength = &Error{Kind: PrefixByteLength}
	ErrInvalidPrefix    = &Error{Kind: InvalidPrefix}
	ErrMissingPrefix    = &Error{Kind: MissingPrefix}
	ErrMissingSeparator = &Error{Kind: MissingSeparator}
	ErrMissingValue     = &Error{Kind: MissingValue}
	ErrInvalidUUID      = &Error{Kind: InvalidUUID}
	ErrBase32Decode     = &Error{Kind: Base32Decode}
)

func (e *Error) Error() string {
	switch e.Kind {
	case PrefixByteLength:
		return "oid: wrong number of bytes to construct prefix"
	case InvalidPrefix:
		if e.Mismatch {
			return fmt.Sprintf("oid: invalid prefix: does not match expected prefix at index %d", e.ValidUntil)
		}
		return fmt.Sprintf("oid: invalid prefix: byte at index %d is not 7-bit ASCII 0-9, A-Z or a-z", e.ValidUntil)
	case MissingPrefix:
		return "oid: missing prefix"
	case MissingSeparator:
		return "oid: missing separator"
	case MissingValue:
		return "oid: missing value"
	case InvalidUUID:
		if e.Err != nil {
			return fmt.Sprintf("oid: invalid UUID: %v", e.Err)
		}
		return "oid: invalid UUID"
	case Base32Decode:
		if e.Err != nil {
			return fmt.Sprintf("oid: base32hex decode: %v", e.Err)
		}
		return "oid: base32hex decode"
	default:
		return "oid: unknown error"
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func invalidByteError(at int) error {
	return &Error{Kind: InvalidPrefix, ValidUntil: at}
}

func mismatchError(at int) error {
	return &Error{Kind: InvalidPrefix, ValidUntil: at, Mismatch: true}
}
