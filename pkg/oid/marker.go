package oid

import "reflect"

// Named is implemented by marker types that declare their prefix instead of
// using their Go type name.
//
//	type user struct{}
//
//	func (user) Prefix() string { return "USR" }
type Named interface {
	Prefix() string
}

// LooseMatcher is implemented by marker types that accept alternate
// prefixes when parsing, for example legacy spellings or document-store
// table names. Parse always accepts the canonical prefix as well;
// FromRecord consults MatchPrefix alone.
type LooseMatcher interface {
	MatchPrefix(s string) bool
}

// PrefixOf returns the prefix declared by marker type P: the result of
// P.Prefix() when P implements Named, otherwise the unqualified name of P.
func PrefixOf[P any]() string {
	var p P
	if n, ok := any(p).(Named); ok {
		return n.Prefix()
	}
	return reflect.TypeOf((*P)(nil)).Elem().Name()
}

// matchPrefix reports whether s is an acceptable prefix for P.
func matchPrefix[P any](s string) bool {
	if s == PrefixOf[P]() {
		return true
	}
	var p P
	if m, ok := any(p).(LooseMatcher); ok {
		return m.MatchPrefix(s)
	}
	return false
}

// matchTable reports whether a record table belongs to P. A LooseMatcher
// decides alone; other markers need the exact prefix.
func matchTable[P any](table string) bool {
	var p P
	if m, ok := any(p).(LooseMatcher); ok {
		return m.MatchPrefix(table)
	}
	return table == PrefixOf[P]()
}

// divergence returns the index of the first byte at which a and b differ.
// If one is a prefix of the other it returns the shorter length.
func divergence(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
