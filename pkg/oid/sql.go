package oid

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements sql.Scanner. A NULL or empty column scans to the zero ID.
func (id *ID[P]) Scan(value interface{}) error {
	s, ok, err := scanText(value)
	if err != nil {
		return fmt.Errorf("cannot scan %T into %s ID: %w", value, PrefixOf[P](), err)
	}
	if !ok {
		*id = ID[P]{}
		return nil
	}
	parsed, err := Parse[P](s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into %s ID: %w", s, PrefixOf[P](), err)
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. The zero ID is stored as NULL.
func (id ID[P]) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.String(), nil
}

// GormDataType tells gorm to store IDs in a string column.
func (ID[P]) GormDataType() string {
	return "string"
}

// Scan implements sql.Scanner. A NULL or empty column scans to the zero
// DynamicID.
func (id *DynamicID) Scan(value interface{}) error {
	s, ok, err := scanText(value)
	if err != nil {
		return fmt.Errorf("cannot scan %T into DynamicID: %w", value, err)
	}
	if !ok {
		*id = DynamicID{}
		return nil
	}
	parsed, err := ParseDynamic(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into DynamicID: %w", s, err)
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. The zero DynamicID is stored as NULL.
func (id DynamicID) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.String(), nil
}

// GormDataType tells gorm to store DynamicIDs in a string column.
func (DynamicID) GormDataType() string {
	return "string"
}

// scanText returns the text held by a database value. ok is false for
// NULL and empty values.
func scanText(value interface{}) (s string, ok bool, err error) {
	switch v := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, v != "", nil
	case []byte:
		return string(v), len(v) != 0, nil
	default:
		return "", false, fmt.Errorf("unsupported type")
	}
}
