//go:build enumname

package main

import (
	"github.com/sublee/enumname"

	"example.com/OtherPackage/fruits"
)

var fruitNames = enumname.Names[fruits.Fruit]()
