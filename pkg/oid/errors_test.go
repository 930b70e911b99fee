package oid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	t.Run("matches sentinel of the same kind", func(t *testing.T) {
		err := &Error{Kind: InvalidPrefix, ValidUntil: 3}
		assert.ErrorIs(t, err, ErrInvalidPrefix)
		assert.NotErrorIs(t, err, ErrMissingPrefix)
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("loading fixture: %w", ErrMissingValue)
		assert.ErrorIs(t, err, ErrMissingValue)
		assert.Equal(t, MissingValue, KindOf(err))
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &Error{Kind: Base32Decode, Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrBase32Decode)
	})

	t.Run("foreign errors have unknown kind", func(t *testing.T) {
		assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
		assert.Equal(t, KindUnknown, KindOf(nil))
	})
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{ErrPrefixByteLength, "oid: wrong number of bytes to construct prefix"},
		{&Error{Kind: InvalidPrefix, ValidUntil: 2}, "oid: invalid prefix: byte at index 2 is not 7-bit ASCII 0-9, A-Z or a-z"},
		{&Error{Kind: InvalidPrefix, ValidUntil: 0, Mismatch: true}, "oid: invalid prefix: does not match expected prefix at index 0"},
		{ErrMissingPrefix, "oid: missing prefix"},
		{ErrMissingSeparator, "oid: missing separator"},
		{ErrMissingValue, "oid: missing value"},
		{&Error{Kind: InvalidUUID, Err: errors.New("bad")}, "oid: invalid UUID: bad"},
		{&Error{Kind: Base32Decode, Err: errors.New("bad")}, "oid: base32hex decode: bad"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "InvalidPrefix", InvalidPrefix.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}
