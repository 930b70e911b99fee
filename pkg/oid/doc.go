// Package oid provides compact, human readable, typed object identifiers.
//
// An identifier is a short ASCII prefix naming the kind of object, a "-"
// separator, and the unpadded base32hex encoding of a 128-bit UUID:
//
//	USR-4GKFGPRVND4QT3PDR90PDKF66O
//
// # Core Concepts
//
//  1. Prefix: one or more bytes from [0-9A-Za-z]. Validated once, when it is
//     constructed, and immutable afterwards.
//
//  2. Value: the 16 UUID bytes encoded with the base32hex alphabet
//     (0-9A-V), always 26 characters, case-sensitive, no padding.
//
//  3. ID[P]: an identifier whose prefix is fixed by a marker type P. IDs for
//     different markers are different Go types and never mix.
//
//  4. DynamicID: an identifier whose prefix is a runtime value.
//
// # Usage Examples
//
//	// Declare a marker type per entity kind
//	type user struct{}
//
//	func (user) Prefix() string { return "USR" }
//
//	type UserID = oid.ID[user]
//
//	// Generate and print
//	id := oid.New[user]()
//	fmt.Println(id) // USR-...
//
//	// Parse, rejecting identifiers of other kinds
//	id, err := oid.Parse[user]("USR-4GKFGPRVND4QT3PDR90PDKF66O")
//
//	// Runtime prefixes
//	dyn, err := oid.ParseDynamic("ORD-4GKFGPRVND4QT3PDR90PDKF66O")
//
// Markers that do not implement Named use their Go type name as the prefix.
// Markers that implement LooseMatcher can accept legacy prefixes while
// parsing; identifiers are always printed with the canonical prefix.
//
// # Errors
//
// Every failure is an *Error carrying one Kind from a closed set. Compare
// with errors.Is against the Err* sentinels, or use KindOf.
//
// # Serialization
//
// Both identifier flavors serialize as their canonical text: JSON and other
// text formats through encoding.TextMarshaler, YAML (gopkg.in/yaml.v3),
// CBOR (github.com/fxamacker/cbor/v2) and SQL through sql.Scanner and
// driver.Valuer, with the zero identifier stored as NULL.
package oid
