package constraint

import "github.com/sublee/enumname" // want `file must have "//go:build enumname" constraint when importing enumname`

var fruitNames = enumname.Names[Fruit]()
