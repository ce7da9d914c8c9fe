//go:build enumname

package main

import "github.com/sublee/enumname"

var (
	fruitNames = enumname.Names[Fruit]()
	colorNames = enumname.Names[Color]()
	intNames   = enumname.Names[int]()
)
