//go:build enumname

package main

import "github.com/sublee/enumname"

var levelNames = enumname.Names[Level]()
