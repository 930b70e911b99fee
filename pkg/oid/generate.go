package oid

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewUUIDv4 returns a random (version 4) UUID. It panics if the system
// random source fails, like uuid.New.
func NewUUIDv4() uuid.UUID {
	return uuid.New()
}

// NewUUIDv7 returns a time-ordered (version 7) UUID for the current time.
func NewUUIDv7() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewUUIDv7At returns a version 7 UUID whose 48-bit timestamp is t in unix
// milliseconds. The remaining 74 bits are random.
func NewUUIDv7At(t time.Time) uuid.UUID {
	u := uuid.Must(uuid.NewRandom())

	ms := uint64(t.UnixMilli())
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)

	u[6] = (u[6] & 0x0f) | 0x70 // version 7
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return u
}

// Version selects the UUID version used for new identifiers.
type Version int

const (
	V4 Version = 4
	V7 Version = 7
)

// String returns "v4" or "v7".
func (v Version) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// NewUUID returns a UUID of version v. For V7 a non-zero at sets the
// embedded timestamp; otherwise the current time is used. at must be zero
// for V4.
func NewUUID(v Version, at time.Time) (uuid.UUID, error) {
	switch v {
	case V4:
		if !at.IsZero() {
			return uuid.Nil, fmt.Errorf("a timestamp requires a version 7 UUID")
		}
		return NewUUIDv4(), nil
	case V7:
		if at.IsZero() {
			return NewUUIDv7(), nil
		}
		return NewUUIDv7At(at), nil
	default:
		return uuid.Nil, fmt.Errorf("unsupported UUID version %d", int(v))
	}
}
