//go:build enumname

package main

import "github.com/sublee/enumname"

var intNames = enumname.Names[int]()
