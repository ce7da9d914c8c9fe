//go:build enumname

package main

import "github.com/sublee/enumname"

var nothingNames = enumname.Names[Nothing]()
