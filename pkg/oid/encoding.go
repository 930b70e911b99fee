package oid

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Identifiers always serialize as a single scalar holding the canonical
// text, never as a nested structure.

// MarshalText implements encoding.TextMarshaler. JSON encodes an ID as a
// string through this method.
func (id ID[P]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[P]) UnmarshalText(data []byte) error {
	parsed, err := Parse[P](string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id ID[P]) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are
// accepted.
func (id *ID[P]) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node)
	if err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalCBOR implements cbor.Marshaler. Encodes as a CBOR text string.
func (id ID[P]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler. Decodes a CBOR text string.
func (id *ID[P]) UnmarshalCBOR(data []byte) error {
	s, err := cborText(data)
	if err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// A zero DynamicID has no prefix to render, so it serializes as empty text
// and empty text deserializes to the zero DynamicID, matching Scan and
// Value.

// text returns the serialized form of id.
func (id DynamicID) text() (string, error) {
	switch {
	case id.IsZero():
		return "", nil
	case id.prefix.IsZero():
		return "", ErrMissingPrefix
	}
	return id.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (id DynamicID) MarshalText() ([]byte, error) {
	s, err := id.text()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *DynamicID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*id = DynamicID{}
		return nil
	}
	parsed, err := ParseDynamic(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id DynamicID) MarshalYAML() (interface{}, error) {
	return id.text()
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are
// accepted.
func (id *DynamicID) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlScalar(node)
	if err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalCBOR implements cbor.Marshaler. Encodes as a CBOR text string.
func (id DynamicID) MarshalCBOR() ([]byte, error) {
	s, err := id.text()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(s)
}

// UnmarshalCBOR implements cbor.Unmarshaler. Decodes a CBOR text string.
func (id *DynamicID) UnmarshalCBOR(data []byte) error {
	s, err := cborText(data)
	if err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

func yamlScalar(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: identifier must be a scalar", node.Line)
	}
	return node.Value, nil
}

func cborText(data []byte) (string, error) {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("identifier must be a CBOR text string: %w", err)
	}
	return s, nil
}
