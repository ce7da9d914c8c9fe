package typeinfo

import (
	"go/token"
	"go/types"
)

// Type describes a type from Enumname's perspective. Only the parts needed to
// decide whether the type can be an enum are kept.
type Type struct {
	T types.Type

	Basic *types.Basic
	Named *types.Named
	Alias *types.Alias
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool { return t.Basic != nil }
func (t Type) IsNamed() bool { return t.Named != nil }
func (t Type) IsAlias() bool { return t.Alias != nil }

// IsInteger reports whether the underlying type is an integer type.
func (t Type) IsInteger() bool {
	return t.Basic != nil && t.Basic.Info()&types.IsInteger != 0
}

// IsUnsigned reports whether the underlying type is an unsigned integer type.
func (t Type) IsUnsigned() bool {
	return t.Basic != nil && t.Basic.Info()&types.IsUnsigned != 0
}

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// TypeOf inspects the given type and returns a new [Type]. An alias is resolved
// but remembered, so that "type Level = int" is not mistaken for a defined
// type.
func TypeOf(t types.Type) Type {
	info := Type{T: t}
	if alias, ok := t.(*types.Alias); ok {
		info.Alias = alias
	}

	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		info.Basic = tt
	case *types.Named:
		info.Named = tt
		if basic, ok := tt.Underlying().(*types.Basic); ok {
			info.Basic = basic
		}
	}
	return info
}

// Name returns the declared name of a named type, or the type string
// otherwise.
func (t Type) Name() string {
	if t.IsNamed() {
		return t.Named.Obj().Name()
	}
	return t.T.String()
}

// Pkg returns the package where the type is defined. It returns nil if the type
// is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns the position where the type is defined. It returns token.NoPos if
// the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	return token.NoPos
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			// e.g., Fruit
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// e.g., Flag[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if isGeneric(targs.At(i)) {
				// e.g., Flag[T] inside a generic function
				return true
			}
		}
	case *types.TypeParam:
		return true
	}
	return false
}
