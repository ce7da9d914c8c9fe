package derive

import (
	"go/types"

	"github.com/sublee/enumname/internal/typeinfo"
)

// Table is the name table of an enum. Names[i] is the declared name of the
// member whose ordinal is i.
type Table struct {
	Enum  *Enum
	Names []string
}

// Len returns the number of names.
func (t *Table) Len() int { return len(t.Names) }

// Builder builds name tables. A table is built only once per enum type.
type Builder struct {
	cache *typeinfo.Cache[*Table]
}

// NewBuilder creates a new [Builder].
func NewBuilder() *Builder {
	return &Builder{cache: typeinfo.NewCache[*Table]()}
}

// Build returns the name table of the enum. The same *Table is returned for the
// same enum type.
func (b *Builder) Build(enum *Enum) *Table {
	key := typeinfo.TypeOf(enum.Type.Named)
	if t, ok := b.cache.Get(key); ok {
		return t
	}

	names := make([]string, enum.Len())
	for ordinal := range names {
		con := enum.Member(ordinal)
		names[ordinal] = Extract(Probe(con))
	}

	t, _ := b.cache.Put(key, &Table{Enum: enum, Names: names})
	return t
}

// Len returns the number of built tables.
func (b *Builder) Len() int { return b.cache.Len() }

// Lookup returns the table built for the type.
func (b *Builder) Lookup(t types.Type) (*Table, bool) {
	return b.cache.Get(typeinfo.TypeOf(t))
}
