package oid

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Separator sits between the prefix and the encoded value.
const Separator = "-"

// ID is an identifier whose prefix is fixed by the marker type P.
//
// ID[A] and ID[B] are different types even when A and B declare the same
// prefix: they cannot be compared, assigned or converted to each other, so
// a user ID can never be passed where an order ID is expected. Only the
// UUID is stored; the marker costs nothing at runtime.
//
// IDs are immutable values and comparable with == when P is comparable.
type ID[P any] struct {
	// The zero-length array gives each instantiation a distinct
	// underlying type, which rules out conversions between markers.
	_    [0]P
	uuid uuid.UUID
}

// New returns an ID holding a random (version 4) UUID.
func New[P any]() ID[P] {
	return WithUUID[P](NewUUIDv4())
}

// NewV7 returns an ID holding a time-ordered (version 7) UUID for the
// current time.
func NewV7[P any]() ID[P] {
	return WithUUID[P](NewUUIDv7())
}

// NewV7At returns an ID holding a version 7 UUID for time t.
func NewV7At[P any](t time.Time) ID[P] {
	return WithUUID[P](NewUUIDv7At(t))
}

// WithUUID returns an ID holding u.
func WithUUID[P any](u uuid.UUID) ID[P] {
	return ID[P]{uuid: u}
}

// WithUUIDString parses a standard UUID ("b3cfdafa-3fec-41e2-82bf-ff881131abf1")
// and returns an ID holding it.
func WithUUIDString[P any](s string) (ID[P], error) {
	u, err := parseStdUUID(s)
	if err != nil {
		return ID[P]{}, err
	}
	return WithUUID[P](u), nil
}

// WithBase32 decodes a base32hex value ("4GKFGPRVND4QT3PDR90PDKF66O") and
// returns an ID holding it.
func WithBase32[P any](s string) (ID[P], error) {
	u, err := DecodeUUID(s)
	if err != nil {
		return ID[P]{}, err
	}
	return WithUUID[P](u), nil
}

// Parse parses the canonical "PREFIX-VALUE" form.
//
// The text is split on the first "-". The prefix must equal PrefixOf[P]()
// or be accepted by P's LooseMatcher; otherwise an InvalidPrefix error with
// Mismatch set is returned.
func Parse[P any](s string) (ID[P], error) {
	pfx, val, ok := strings.Cut(s, Separator)
	if !ok {
		return ID[P]{}, ErrMissingSeparator
	}
	if pfx == "" {
		return ID[P]{}, ErrMissingPrefix
	}
	if !matchPrefix[P](pfx) {
		return ID[P]{}, mismatchError(divergence(pfx, PrefixOf[P]()))
	}
	return WithBase32[P](val)
}

// MustParse is like Parse but panics on error. It is meant for tests and
// fixtures.
func MustParse[P any](s string) ID[P] {
	id, err := Parse[P](s)
	if err != nil {
		panic(fmt.Sprintf("invalid %s ID %q: %v", PrefixOf[P](), s, err))
	}
	return id
}

// Prefix returns the marker's prefix. It panics if the declared prefix is
// not a valid Prefix, which is a programming error in the marker type.
func (id ID[P]) Prefix() Prefix {
	return MustPrefix(PrefixOf[P]())
}

// Base32 returns the encoded value, the part after the separator.
func (id ID[P]) Base32() string {
	return EncodeUUID(id.uuid)
}

// UUID returns the underlying UUID.
func (id ID[P]) UUID() uuid.UUID {
	return id.uuid
}

// String returns the canonical "PREFIX-VALUE" form.
func (id ID[P]) String() string {
	return PrefixOf[P]() + Separator + id.Base32()
}

// GoString implements fmt.GoStringer.
func (id ID[P]) GoString() string {
	return fmt.Sprintf("oid.ID[%s]{%s}", reflect.TypeOf((*P)(nil)).Elem(), id.uuid)
}

// IsZero reports whether id holds the nil UUID.
func (id ID[P]) IsZero() bool {
	return id.uuid == uuid.Nil
}

// Equal reports whether id and other hold the same UUID.
func (id ID[P]) Equal(other ID[P]) bool {
	return id.uuid == other.uuid
}

// Compare orders IDs by UUID bytes. It returns -1, 0 or +1.
func (id ID[P]) Compare(other ID[P]) int {
	return bytes.Compare(id.uuid[:], other.uuid[:])
}

// Hash64 returns a hash of the prefix text and UUID. A DynamicID with the
// same text has the same hash.
func (id ID[P]) Hash64() uint64 {
	return hash64(PrefixOf[P](), id.uuid)
}
