//go:build enumname

package main

import "github.com/sublee/enumname"

// FruitNames holds the names of fruits.
var FruitNames = enumname.Names[Fruit]()
