//go:build enumname

package main

import "github.com/sublee/enumname"

var _ = enumname.Names[Fruit]()
