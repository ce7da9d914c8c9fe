package typeinfo

import (
	"iter"

	"golang.org/x/tools/go/types/typeutil"
)

// Cache holds values by type. Identical types share one entry even if their
// [types.Type] values differ, which happens when a package is type-checked
// more than once.
type Cache[V any] struct {
	m typeutil.Map
}

// NewCache creates a new [Cache].
func NewCache[V any]() *Cache[V] {
	c := &Cache[V]{}
	c.m.SetHasher(typeutil.MakeHasher())
	return c
}

// Get returns the value cached for the type.
func (c *Cache[V]) Get(t Type) (V, bool) {
	if c == nil {
		return *new(V), false
	}
	v, ok := c.m.At(t.Type()).(V)
	return v, ok
}

// Put caches the value for the type unless another value is already cached.
// It returns the cached value and whether the given value has been put.
func (c *Cache[V]) Put(t Type, v V) (V, bool) {
	if old, ok := c.Get(t); ok {
		return old, false
	}
	c.m.Set(t.Type(), v)
	return v, true
}

// Len returns the number of cached types.
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	return c.m.Len()
}

// All iterates the cached values in no particular order.
func (c *Cache[V]) All() iter.Seq2[Type, V] {
	return func(yield func(Type, V) bool) {
		if c == nil {
			return
		}
		for _, t := range c.m.Keys() {
			if !yield(TypeOf(t), c.m.At(t).(V)) {
				return
			}
		}
	}
}
