package oid

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PrefixLike is accepted wherever a DynamicID constructor takes a prefix.
// The value is validated with NewPrefix.
type PrefixLike interface {
	~string | ~[]byte
}

// DynamicID is an identifier whose prefix is runtime data.
//
// Unlike ID, all DynamicIDs share one Go type, and two DynamicIDs are equal
// only when both the prefix and the UUID are equal. DynamicIDs are
// immutable values, comparable with == and usable as map keys.
type DynamicID struct {
	prefix Prefix
	uuid   uuid.UUID
}

// NewDynamic returns a DynamicID with the given prefix and a random
// (version 4) UUID.
func NewDynamic[T PrefixLike](prefix T) (DynamicID, error) {
	return DynamicWithUUID(prefix, NewUUIDv4())
}

// NewDynamicV7 returns a DynamicID with the given prefix and a version 7
// UUID for the current time.
func NewDynamicV7[T PrefixLike](prefix T) (DynamicID, error) {
	return DynamicWithUUID(prefix, NewUUIDv7())
}

// NewDynamicV7At returns a DynamicID with the given prefix and a version 7
// UUID for time t.
func NewDynamicV7At[T PrefixLike](prefix T, t time.Time) (DynamicID, error) {
	return DynamicWithUUID(prefix, NewUUIDv7At(t))
}

// DynamicWithUUID returns a DynamicID with the given prefix and UUID.
func DynamicWithUUID[T PrefixLike](prefix T, u uuid.UUID) (DynamicID, error) {
	p, err := NewPrefix(string(prefix))
	if err != nil {
		return DynamicID{}, err
	}
	return DynamicFromParts(p, u), nil
}

// DynamicWithUUIDString is DynamicWithUUID for a UUID in standard
// hyphenated form.
func DynamicWithUUIDString[T PrefixLike](prefix T, s string) (DynamicID, error) {
	p, err := NewPrefix(string(prefix))
	if err != nil {
		return DynamicID{}, err
	}
	u, err := parseStdUUID(s)
	if err != nil {
		return DynamicID{}, err
	}
	return DynamicFromParts(p, u), nil
}

// DynamicWithBase32 is DynamicWithUUID for a base32hex encoded value.
func DynamicWithBase32[T PrefixLike](prefix T, s string) (DynamicID, error) {
	p, err := NewPrefix(string(prefix))
	if err != nil {
		return DynamicID{}, err
	}
	u, err := DecodeUUID(s)
	if err != nil {
		return DynamicID{}, err
	}
	return DynamicFromParts(p, u), nil
}

// DynamicFromParts pairs an already validated prefix with a UUID.
func DynamicFromParts(prefix Prefix, u uuid.UUID) DynamicID {
	return DynamicID{prefix: prefix, uuid: u}
}

// ParseDynamic parses the canonical "PREFIX-VALUE" form. Any valid prefix
// is accepted.
func ParseDynamic(s string) (DynamicID, error) {
	pfx, val, ok := strings.Cut(s, Separator)
	if !ok {
		return DynamicID{}, ErrMissingSeparator
	}
	if pfx == "" {
		return DynamicID{}, ErrMissingPrefix
	}
	return DynamicWithBase32(pfx, val)
}

// MustParseDynamic is like ParseDynamic but panics on error.
func MustParseDynamic(s string) DynamicID {
	id, err := ParseDynamic(s)
	if err != nil {
		panic(fmt.Sprintf("invalid ID %q: %v", s, err))
	}
	return id
}

// Prefix returns the stored prefix.
func (id DynamicID) Prefix() Prefix {
	return id.prefix
}

// Base32 returns the encoded value, the part after the separator.
func (id DynamicID) Base32() string {
	return EncodeUUID(id.uuid)
}

// UUID returns the underlying UUID.
func (id DynamicID) UUID() uuid.UUID {
	return id.uuid
}

// String returns the canonical "PREFIX-VALUE" form.
func (id DynamicID) String() string {
	return id.prefix.String() + Separator + id.Base32()
}

// GoString implements fmt.GoStringer.
func (id DynamicID) GoString() string {
	return fmt.Sprintf("oid.DynamicID{%q, %s}", id.prefix.String(), id.uuid)
}

// IsZero reports whether id is the zero DynamicID.
func (id DynamicID) IsZero() bool {
	return id.prefix.IsZero() && id.uuid == uuid.Nil
}

// Equal reports whether id and other have the same prefix and UUID.
func (id DynamicID) Equal(other DynamicID) bool {
	return id == other
}

// Compare orders DynamicIDs by prefix, then by UUID bytes.
func (id DynamicID) Compare(other DynamicID) int {
	if c := strings.Compare(id.prefix.s, other.prefix.s); c != 0 {
		return c
	}
	return bytes.Compare(id.uuid[:], other.uuid[:])
}

// Hash64 returns a hash of the prefix text and UUID.
func (id DynamicID) Hash64() uint64 {
	return hash64(id.prefix.String(), id.uuid)
}
