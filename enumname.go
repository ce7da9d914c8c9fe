// Package enumname provides a directive for generating enum name tables.
//
// Go has no way to ask an enum constant for the identifier it was declared
// with. Enumname derives it at generation time from the type-checked source,
// so a table of names never has to be written or maintained by hand, and
// reading a name at run time is a plain slice index.
//
// To start with Enumname, add a build constraint to files containing Enumname
// directives:
//
//	//go:build enumname
//
// An enum is a defined integer type with constants numbered from zero by iota.
// The final constant is a sentinel named enumSize, or any name ending with
// EnumSize, whose value is the number of the other constants:
//
//	type Fruit int
//
//	const (
//		Apple Fruit = iota
//		Banana
//		Cherry
//
//		FruitEnumSize
//	)
//
// Declare a table with [Names]:
//
//	// source:
//	var FruitNames = enumname.Names[Fruit]()
//
// After declaring tables, run the enumname command. It will generate
// enumname_gen.go for your package:
//
//	go run github.com/sublee/enumname/cmd/enumname
//
//	// generated: (simplified)
//	var enumname_Fruit = enumtable.New[Fruit]("Fruit", "Apple", "Banana", "Cherry")
//	var FruitNames = enumname_Fruit
//
// The table is an [enumtable.Table]. FruitNames.Name(Banana) returns "Banana"
// and FruitNames.Len() returns 3.
//
// # Requirements
//
// Enumname refuses to generate a table rather than guessing. Only integer
// types can be passed to [Names]; the Go compiler rejects the others. The
// enumname command additionally reports:
//
//   - a type that is not a defined type, such as int or an alias of int,
//   - a generic type,
//   - a missing sentinel, or more than one,
//   - a sentinel that is not declared after every member,
//   - a sentinel whose value differs from the number of members,
//   - members with gaps, duplicate values, or negative values.
//
// For example, if Banana is removed but Cherry keeps the value 2:
//
//	main.go:10:17: invalid enum Fruit
//		ok:   0 Apple
//		FAIL: 1 ?             // missing
//		ok:   2 Cherry
//		FAIL: 3 FruitEnumSize // sentinel must be 2, the number of members
package enumname

import "github.com/sublee/enumname/pkg/enumtable"

// Names directive generates a name table for the enum type E:
//
//	// source:
//	var fruitNames = enumname.Names[Fruit]()
//
// The directive must be assigned to a package-level variable. The call is
// replaced by the generated table when Enumname generates code. Every
// directive for the same enum type in a package shares one table.
//
// E may be declared in another package. Unexported members are named as well
// because the names are copied as strings.
func Names[E enumtable.Enum]() enumtable.Table[E] {
	panic("enumname: not generated")
}
