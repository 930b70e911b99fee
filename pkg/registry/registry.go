// Package registry maps runtime entity kinds to identifier prefixes.
//
// A Registry is the runtime counterpart of marker types: where ID[P] fixes
// its prefix at compile time, a Kind is configured (for example from HCL)
// and resolved while parsing. A Registry is immutable after New and safe
// for concurrent use.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"

	"github.com/hashicorp-forge/oid/pkg/oid"
)

// ErrUnknownKind is returned when a prefix or name does not resolve to a
// configured kind.
var ErrUnknownKind = errors.New("unknown kind")

var kindNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// KindSpec describes a kind before validation.
type KindSpec struct {
	// Name is the kind's lower snake case name, such as "user_account".
	Name string `json:"name"`

	// Prefix is the canonical identifier prefix. Defaults to the camel
	// case form of Name.
	Prefix string `json:"prefix"`

	// Aliases are alternate prefixes or document-store table names that
	// resolve to this kind when parsing.
	Aliases []string `json:"aliases"`

	Description string `json:"description"`
}

// Kind is a validated entry of a Registry.
type Kind struct {
	Name        string
	Prefix      oid.Prefix
	Aliases     []string
	Description string
}

// MatchPrefix reports whether s is the kind's canonical prefix or one of its
// aliases.
func (k *Kind) MatchPrefix(s string) bool {
	return s == k.Prefix.String() || slices.Contains(k.Aliases, s)
}

// Registry resolves kinds by name and by prefix.
type Registry struct {
	kinds    []*Kind
	byName   map[string]*Kind
	byPrefix map[string]*Kind
}

// New validates specs and builds a Registry. All problems are reported
// together.
func New(specs []KindSpec) (*Registry, error) {
	r := &Registry{
		byName:   make(map[string]*Kind, len(specs)),
		byPrefix: make(map[string]*Kind, len(specs)),
	}

	var result *multierror.Error
	for _, spec := range specs {
		k, err := newKind(spec)
		if err != nil {
			result = multierror.Append(result,
				fmt.Errorf("kind %q: %w", spec.Name, err))
			continue
		}

		if _, ok := r.byName[k.Name]; ok {
			result = multierror.Append(result,
				fmt.Errorf("kind %q: duplicate name", k.Name))
			continue
		}
		dup := false
		for _, p := range append([]string{k.Prefix.String()}, k.Aliases...) {
			if other, ok := r.byPrefix[p]; ok {
				result = multierror.Append(result,
					fmt.Errorf("kind %q: prefix %q already used by kind %q",
						k.Name, p, other.Name))
				dup = true
			}
		}
		if dup {
			continue
		}

		r.kinds = append(r.kinds, k)
		r.byName[k.Name] = k
		r.byPrefix[k.Prefix.String()] = k
		for _, a := range k.Aliases {
			r.byPrefix[a] = k
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	slices.SortFunc(r.kinds, func(a, b *Kind) int {
		return strings.Compare(a.Name, b.Name)
	})
	return r, nil
}

func newKind(spec KindSpec) (*Kind, error) {
	if spec.Prefix == "" {
		spec.Prefix = strcase.ToCamel(spec.Name)
	}

	if err := validation.ValidateStruct(&spec,
		validation.Field(&spec.Name,
			validation.Required,
			validation.Match(kindNameRe).Error("must be lower snake case"),
		),
		validation.Field(&spec.Prefix, validation.By(validPrefix)),
		validation.Field(&spec.Aliases,
			validation.Each(validation.Required, validation.By(validAlias)),
		),
	); err != nil {
		return nil, err
	}

	return &Kind{
		Name:        spec.Name,
		Prefix:      oid.MustPrefix(spec.Prefix),
		Aliases:     slices.Clone(spec.Aliases),
		Description: spec.Description,
	}, nil
}

func validPrefix(value interface{}) error {
	s, _ := value.(string)
	_, err := oid.NewPrefix(s)
	return err
}

func validAlias(value interface{}) error {
	s, _ := value.(string)
	if strings.Contains(s, oid.Separator) {
		return fmt.Errorf("must not contain %q", oid.Separator)
	}
	if strings.ContainsAny(s, " \t\r\n:") {
		return errors.New("must not contain whitespace or ':'")
	}
	return nil
}

// Kinds returns all kinds ordered by name.
func (r *Registry) Kinds() []*Kind {
	return slices.Clone(r.kinds)
}

// Kind returns the kind with the given name.
func (r *Registry) Kind(name string) (*Kind, bool) {
	k, ok := r.byName[name]
	return k, ok
}

// Match returns the kind whose canonical prefix or alias is s.
func (r *Registry) Match(s string) (*Kind, bool) {
	k, ok := r.byPrefix[s]
	return k, ok
}

// New returns a new identifier for the named kind. A non-zero at requires
// version 7.
func (r *Registry) New(name string, v oid.Version, at time.Time) (oid.DynamicID, error) {
	k, ok := r.Kind(name)
	if !ok {
		return oid.DynamicID{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	u, err := oid.NewUUID(v, at)
	if err != nil {
		return oid.DynamicID{}, err
	}
	return oid.DynamicFromParts(k.Prefix, u), nil
}

// Parse parses "PREFIX-VALUE" where PREFIX is a canonical prefix or alias
// of a configured kind. The returned identifier always carries the
// canonical prefix.
func (r *Registry) Parse(s string) (oid.DynamicID, *Kind, error) {
	pfx, val, ok := strings.Cut(s, oid.Separator)
	if !ok {
		return oid.DynamicID{}, nil, oid.ErrMissingSeparator
	}
	if pfx == "" {
		return oid.DynamicID{}, nil, oid.ErrMissingPrefix
	}
	k, ok := r.Match(pfx)
	if !ok {
		return oid.DynamicID{}, nil, fmt.Errorf("%w: prefix %q", ErrUnknownKind, pfx)
	}
	u, err := oid.DecodeUUID(val)
	if err != nil {
		return oid.DynamicID{}, nil, err
	}
	return oid.DynamicFromParts(k.Prefix, u), k, nil
}

// FromRecord converts a document-store record whose table is a canonical
// prefix or alias of a configured kind. The record id may be a standard
// UUID or base32hex text.
func (r *Registry) FromRecord(rec oid.Record) (oid.DynamicID, *Kind, error) {
	k, ok := r.Match(rec.Table)
	if !ok {
		return oid.DynamicID{}, nil, fmt.Errorf("%w: table %q", ErrUnknownKind, rec.Table)
	}
	id, err := oid.DynamicFromRecord(oid.Record{Table: k.Prefix.String(), ID: rec.ID})
	if err != nil {
		return oid.DynamicID{}, nil, err
	}
	return id, k, nil
}
