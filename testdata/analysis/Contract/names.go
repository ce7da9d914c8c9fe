//go:build enumname

package contract

import "github.com/sublee/enumname"

type Fruit int

const (
	apple Fruit = iota
	banana
	enumSize
)

type Color int

const (
	red Color = iota
	green
)

type Size int

const (
	small Size = iota
	large
	sizeEnumSize
	SizeEnumSize
)

type Level int

const (
	debug         Level = 0
	warn          Level = 2
	LevelEnumSize Level = 2
)

var (
	fruitNames = enumname.Names[Fruit]()
	colorNames = enumname.Names[Color]() // want `Color has no sentinel; declare enumSize or ColorEnumSize as its last constant`
	sizeNames  = enumname.Names[Size]()  // want `Size has 2 sentinels: sizeEnumSize, SizeEnumSize; need exactly one`
	levelNames = enumname.Names[Level]() // want `invalid enum Level\n\tok:   0 debug\n\tFAIL: 1 \?`
	intNames   = enumname.Names[int]()   // want `int is not a defined type; enum must be a defined integer type`
)
