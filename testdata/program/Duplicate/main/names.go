//go:build enumname

package main

import "github.com/sublee/enumname"

var fruitNames = enumname.Names[Fruit]()
