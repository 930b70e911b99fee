package oid

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

func hash64(prefix string, u uuid.UUID) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(prefix)
	_, _ = d.WriteString(Separator)
	_, _ = d.Write(u[:])
	return d.Sum64()
}
