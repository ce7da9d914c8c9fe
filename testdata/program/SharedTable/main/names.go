//go:build enumname

package main

import (
	"github.com/sublee/enumname"
	"github.com/sublee/enumname/pkg/enumtable"
)

var (
	fruitNames     = enumname.Names[Fruit]()
	moreFruitNames = enumname.Names[Fruit]()
)

var colorNames enumtable.Table[Color] = enumname.Names[Color]()

var names = struct {
	colors enumtable.Table[Color]
	count  int
}{
	colors: colorNames,
	count:  colorNames.Len(),
}
