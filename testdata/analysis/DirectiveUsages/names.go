//go:build enumname

package directiveusages

import "github.com/sublee/enumname"

type Fruit int

const (
	apple Fruit = iota
	banana
	enumSize
)

var fruitNames = enumname.Names[Fruit]()

var _ = enumname.Names[Fruit]() // want `cannot assign enumname.Names\[Fruit\] to blank identifier`

var wrapped = []any{enumname.Names[Fruit]()} // want `cannot use enumname.Names\[Fruit\] outside package-level variable declaration`

func localNames() {
	names := enumname.Names[Fruit]() // want `cannot use enumname.Names\[Fruit\] outside package-level variable declaration`
	_ = names
}
