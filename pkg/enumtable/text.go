package enumtable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is returned when marshaling a value that has no declared
	// member.
	ErrInvalidValue = errors.New("invalid enum value")

	// ErrUnknownName is returned when unmarshaling a name that is not declared.
	ErrUnknownName = errors.New("unknown enum name")
)

// MarshalText encodes e as its declared name. It helps to implement
// [encoding.TextMarshaler] on the enum type:
//
//	func (f Fruit) MarshalText() ([]byte, error) {
//		return fruitNames.MarshalText(f)
//	}
func (t Table[E]) MarshalText(e E) ([]byte, error) {
	if !t.Valid(e) {
		return nil, fmt.Errorf("marshaling %s: %w: %s", t.typeName, ErrInvalidValue, formatInt(e))
	}
	return []byte(t.names[int(e)]), nil
}

// UnmarshalText decodes a declared name into e. It helps to implement
// [encoding.TextUnmarshaler] on the enum type:
//
//	func (f *Fruit) UnmarshalText(text []byte) error {
//		return fruitNames.UnmarshalText(text, f)
//	}
//
// e is left untouched on error.
func (t Table[E]) UnmarshalText(text []byte, e *E) error {
	v, ok := t.Lookup(string(text))
	if !ok {
		return fmt.Errorf("unmarshaling %s: %w: %q", t.typeName, ErrUnknownName, text)
	}
	*e = v
	return nil
}
