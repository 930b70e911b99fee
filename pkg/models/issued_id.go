package models

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/oid/pkg/oid"
)

// IssuedID is a ledger entry for an identifier handed out by this tool.
type IssuedID struct {
	gorm.Model

	// OID is the issued identifier in canonical text form.
	OID oid.DynamicID `gorm:"column:oid;uniqueIndex;not null"`

	// Kind is the registry kind the identifier was issued for, if any.
	Kind string `gorm:"index"`

	// UUIDVersion is the version of the underlying UUID (4 or 7).
	UUIDVersion int `gorm:"not null"`

	// Note is free-form text supplied when issuing.
	Note string
}

// Create inserts the issued identifier.
func (i *IssuedID) Create(db *gorm.DB) error {
	if err := validation.ValidateStruct(i,
		validation.Field(&i.OID, validation.By(requiredID)),
		validation.Field(&i.UUIDVersion, validation.Required, validation.In(4, 7)),
	); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	return db.
		Create(i).
		Error
}

// FirstByOID retrieves the ledger entry for id.
func (i *IssuedID) FirstByOID(db *gorm.DB, id oid.DynamicID) error {
	if err := requiredID(id); err != nil {
		return err
	}

	return db.
		Where("oid = ?", id).
		First(i).
		Error
}

// FindIssuedIDs returns the most recently issued identifiers, newest first.
// An empty kind matches all kinds; a non-positive limit returns all
// entries.
func FindIssuedIDs(db *gorm.DB, kind string, limit int) ([]IssuedID, error) {
	var ids []IssuedID

	q := db.Order("id desc")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&ids).Error; err != nil {
		return nil, fmt.Errorf("error finding issued IDs: %w", err)
	}
	return ids, nil
}

func requiredID(value interface{}) error {
	id, ok := value.(oid.DynamicID)
	if !ok {
		return errors.New("must be an identifier")
	}
	if id.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}
