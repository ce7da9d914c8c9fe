// Package derive derives the name table of an enum type from its type-checked
// declaration.
//
// The pipeline has four steps:
//
//   - [Validate] checks that a type satisfies the enum contract and resolves
//     the member of each ordinal.
//   - [Probe] produces the signature text which go/types synthesizes for a
//     member constant.
//   - [Extract] isolates the declared name from a signature text.
//   - [Builder] runs Probe and Extract for every ordinal and caches the result
//     per enum type.
package derive

import (
	"cmp"
	"go/constant"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/sublee/enumname/internal/codefmt"
	"github.com/sublee/enumname/internal/typeinfo"
	"github.com/sublee/enumname/internal/words"
)

// maxMissingRows limits the number of missing ordinals listed in an error. A
// sentinel with a huge value is reported on its own row anyway.
const maxMissingRows = 64

// Enum is an enum type which satisfies the contract.
type Enum struct {
	Type typeinfo.Type

	// Members holds the member constants. The index is the ordinal.
	Members []*types.Const

	// Sentinel is the last constant whose value is len(Members).
	Sentinel *types.Const
}

// Len returns the number of members, the sentinel excluded.
func (e *Enum) Len() int { return len(e.Members) }

// Member returns the member constant declared with the ordinal.
func (e *Enum) Member(ordinal int) *types.Const { return e.Members[ordinal] }

// IsSentinelName reports whether the constant name is reserved for a
// sentinel. The last two words of the name must be "enum" and "Size", the
// first letter of "enum" in either case: enumSize, EnumSize, FruitEnumSize.
func IsSentinelName(name string) bool {
	return words.HasSuffix(name, "enum", "Size")
}

// Validate checks whether the type t satisfies the enum contract:
//
//   - t is a defined type, not generic, whose underlying type is an integer.
//   - Exactly one package-level constant of t has a sentinel name.
//   - The sentinel is declared after the other constants of t.
//   - The value of the sentinel is the number of the other constants.
//   - Every other constant has a unique value in [0, sentinel).
//
// Errors are located at the given position, usually the directive which
// requested the enum.
func Validate(pkger codefmt.Pkger, at codefmt.Poser, t typeinfo.Type) (*Enum, error) {
	if !t.IsNamed() {
		return nil, codefmt.Errorf(pkger, at, "%t is not a defined type; enum must be a defined integer type", t)
	}
	if t.IsGeneric() {
		return nil, codefmt.Errorf(pkger, at, "%t is generic; enum must not have type parameters", t)
	}
	if !t.IsInteger() {
		// Names constrains its type parameter to integer types.
		return nil, codefmt.Errorf(pkger, at, "%t is not an integer type", t) // unreachable
	}

	consts := constsOf(t)

	var sentinels, members []*types.Const
	for _, con := range consts {
		if IsSentinelName(con.Name()) {
			sentinels = append(sentinels, con)
		} else {
			members = append(members, con)
		}
	}

	switch len(sentinels) {
	case 0:
		return nil, codefmt.Errorf(pkger, at, "%t has no sentinel; declare enumSize or %sEnumSize as its last constant", t, t.Name())
	case 1:
	default:
		names := make([]string, len(sentinels))
		for i, con := range sentinels {
			names[i] = con.Name()
		}
		return nil, codefmt.Errorf(pkger, at, "%t has %d sentinels: %s; need exactly one", t, len(sentinels), strings.Join(names, ", "))
	}
	sentinel := sentinels[0]

	// Index members by ordinal. The tree map keeps ordinals sorted for the
	// error report.
	slots := treemap.NewWith(utils.Int64Comparator)
	var overflows []*types.Const
	for _, con := range members {
		ordinal, ok := ordinalOf(con)
		if !ok {
			overflows = append(overflows, con)
			continue
		}

		var cons []*types.Const
		if v, found := slots.Get(ordinal); found {
			cons = v.([]*types.Const)
		}
		slots.Put(ordinal, append(cons, con))
	}

	size, sizeOK := ordinalOf(sentinel)

	vis := newVisualizer()
	for it := slots.Iterator(); it.Next(); {
		ordinal := it.Key().(int64)
		cons := it.Value().([]*types.Const)

		for _, con := range cons {
			r := row{ordinal: ordinal, pos: con.Pos(), name: con.Name()}
			switch {
			case !sizeOK || ordinal < 0 || ordinal >= size:
				vis.Fail(r, "out of range")
			case len(cons) > 1:
				vis.Fail(r, "duplicate")
			default:
				vis.OK(r, "")
			}
		}
	}

	if sizeOK {
		for ordinal := int64(0); ordinal < min(size, maxMissingRows); ordinal++ {
			if _, found := slots.Get(ordinal); !found {
				vis.Fail(row{ordinal: ordinal, name: "?"}, "missing")
			}
		}
	}

	for _, con := range overflows {
		vis.Fail(row{
			group: groupOverflow,
			text:  con.Val().ExactString(),
			pos:   con.Pos(),
			name:  con.Name(),
		}, "out of range")
	}

	sentinelRow := row{group: groupSentinel, ordinal: size, pos: sentinel.Pos(), name: sentinel.Name()}
	if !sizeOK {
		sentinelRow.text = sentinel.Val().ExactString()
	}
	switch {
	case !sizeOK || size != int64(len(members)):
		vis.Fail(sentinelRow, "sentinel must be "+strconv.Itoa(len(members))+", the number of members")
	case slices.ContainsFunc(members, func(con *types.Const) bool { return con.Pos() > sentinel.Pos() }):
		vis.Fail(sentinelRow, "sentinel must be declared last")
	default:
		vis.OK(sentinelRow, "sentinel")
	}

	if !vis.IsValid() {
		return nil, codefmt.Errorf(pkger, at, "invalid enum %t\n%s", t, indent(vis.String()))
	}

	// Every slot in [0, size) holds exactly one member now.
	enum := &Enum{
		Type:     t,
		Members:  make([]*types.Const, size),
		Sentinel: sentinel,
	}
	for it := slots.Iterator(); it.Next(); {
		enum.Members[it.Key().(int64)] = it.Value().([]*types.Const)[0]
	}
	return enum, nil
}

// constsOf collects the package-level constants of the named type t in
// declaration order.
func constsOf(t typeinfo.Type) []*types.Const {
	scope := t.Pkg().Scope()

	var consts []*types.Const
	for _, name := range scope.Names() {
		con, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		if !types.Identical(con.Type(), t.Type()) {
			continue
		}
		consts = append(consts, con)
	}

	slices.SortFunc(consts, func(a, b *types.Const) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return consts
}

// ordinalOf returns the value of the constant as an ordinal. It returns false
// if the value does not fit in int64.
func ordinalOf(con *types.Const) (int64, bool) {
	return constant.Int64Val(constant.ToInt(con.Val()))
}

// indent prefixes every line with a tab.
func indent(s string) string {
	return "\t" + strings.ReplaceAll(s, "\n", "\n\t")
}
