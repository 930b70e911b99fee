package oid

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// Record is a document-store reference made of a table name and an opaque
// id, such as "user:b3cfdafa-3fec-41e2-82bf-ff881131abf1". It is only a
// conversion surface; the canonical identifier grammar does not use it.
type Record struct {
	Table string `mapstructure:"tb" json:"tb" yaml:"tb"`
	ID    string `mapstructure:"id" json:"id" yaml:"id"`
}

// String returns "table:id".
func (r Record) String() string {
	return r.Table + ":" + r.ID
}

// DecodeRecord reads a Record from a generic document with "tb" and "id"
// keys. Non-string ids are converted to their string form.
func DecodeRecord(doc map[string]any) (Record, error) {
	var r Record
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &r,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Record{}, fmt.Errorf("error creating record decoder: %w", err)
	}
	if err := dec.Decode(doc); err != nil {
		return Record{}, fmt.Errorf("error decoding record: %w", err)
	}
	return r, nil
}

// recordUUID reads a record id as a standard UUID first and as base32hex
// text second.
func recordUUID(id string) (uuid.UUID, error) {
	if u, err := parseStdUUID(id); err == nil {
		return u, nil
	}
	return DecodeUUID(id)
}

// FromRecord converts a document-store record to an ID. When P implements
// LooseMatcher the table name must satisfy MatchPrefix, even if it equals
// the canonical prefix; otherwise it must equal the prefix exactly.
func FromRecord[P any](r Record) (ID[P], error) {
	if !matchTable[P](r.Table) {
		return ID[P]{}, mismatchError(divergence(r.Table, PrefixOf[P]()))
	}
	u, err := recordUUID(r.ID)
	if err != nil {
		return ID[P]{}, err
	}
	return WithUUID[P](u), nil
}

// DynamicFromRecord converts a document-store record to a DynamicID using
// the table name as the prefix.
func DynamicFromRecord(r Record) (DynamicID, error) {
	p, err := NewPrefix(r.Table)
	if err != nil {
		return DynamicID{}, err
	}
	u, err := recordUUID(r.ID)
	if err != nil {
		return DynamicID{}, err
	}
	return DynamicFromParts(p, u), nil
}

// Record returns id as a document-store record keyed by its prefix and
// standard UUID text.
func (id ID[P]) Record() Record {
	return Record{Table: PrefixOf[P](), ID: id.uuid.String()}
}

// Record returns id as a document-store record keyed by its prefix and
// standard UUID text.
func (id DynamicID) Record() Record {
	return Record{Table: id.prefix.String(), ID: id.uuid.String()}
}
