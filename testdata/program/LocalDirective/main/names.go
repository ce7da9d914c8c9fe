//go:build enumname

package main

import "github.com/sublee/enumname"

func fruitNames() any {
	return enumname.Names[Fruit]()
}
