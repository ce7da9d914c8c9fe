// Package enumtable provides the read-only name tables produced by Enumname.
//
// Tables are not meant to be built by hand. The enumname command generates a
// [New] call for each enum type referenced by an [enumname.Names] directive
// and the result is initialized once, before main runs:
//
//	var enumname_Fruit = enumtable.New[Fruit]("Fruit", "apple", "banana", "cherry")
//
// A Table is immutable. It is safe to share and to read from multiple
// goroutines without synchronization.
package enumtable

import (
	"iter"
	"slices"
	"strconv"
)

// Enum is the set of types which can be used as an enum by Enumname. The
// underlying type must be an integer. Go rejects any other type argument at
// compile time.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Table maps each ordinal of E to the identifier of the constant declared with
// that ordinal.
type Table[E Enum] struct {
	typeName string
	names    []string
}

// New creates a [Table]. names[i] is the name of the member whose ordinal is i.
// The given names are copied.
func New[E Enum](typeName string, names ...string) Table[E] {
	return Table[E]{typeName: typeName, names: slices.Clone(names)}
}

// TypeName returns the name of the enum type.
func (t Table[E]) TypeName() string { return t.typeName }

// Len returns the number of members, the sentinel excluded.
func (t Table[E]) Len() int { return len(t.names) }

// Valid reports whether e is an ordinal of a declared member.
func (t Table[E]) Valid(e E) bool {
	// E may be unsigned, compare as uint64 after the sign check.
	if isNegative(e) {
		return false
	}
	return uint64(e) < uint64(len(t.names))
}

// Name returns the declared identifier of e. For a value without a declared
// member, it returns the type name with the value in parentheses, for example
// "Fruit(42)".
func (t Table[E]) Name(e E) string {
	if t.Valid(e) {
		return t.names[int(e)]
	}
	return t.typeName + "(" + formatInt(e) + ")"
}

// Lookup finds the member declared with the given identifier. The comparison
// is case-sensitive.
func (t Table[E]) Lookup(name string) (E, bool) {
	i := slices.Index(t.names, name)
	if i < 0 {
		return 0, false
	}
	return E(i), true
}

// Names returns a copy of the names in ordinal order.
func (t Table[E]) Names() []string {
	return slices.Clone(t.names)
}

// All iterates the members in ordinal order.
func (t Table[E]) All() iter.Seq2[E, string] {
	return func(yield func(E, string) bool) {
		for i, name := range t.names {
			if !yield(E(i), name) {
				return
			}
		}
	}
}

func isNegative[E Enum](e E) bool {
	return e < 0 // always false for unsigned types
}

func formatInt[E Enum](e E) string {
	if isNegative(e) {
		return strconv.FormatInt(int64(e), 10)
	}
	return strconv.FormatUint(uint64(e), 10)
}
