//go:build enumname

package main

import "github.com/sublee/enumname"

var nameNames = enumname.Names[Name]()
