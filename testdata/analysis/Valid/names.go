//go:build enumname

package valid

import "github.com/sublee/enumname"

type Fruit int

const (
	Apple Fruit = iota
	Banana
	Cherry

	FruitEnumSize
)

type Weekday uint8

const (
	sunday Weekday = iota
	monday
	weekday_enumSize
)

type Empty int

const enumSize Empty = 0

var (
	fruitNames   = enumname.Names[Fruit]()
	weekdayNames = enumname.Names[Weekday]()
	emptyNames   = enumname.Names[Empty]()

	// The same table is shared.
	moreFruitNames = enumname.Names[Fruit]()
)
