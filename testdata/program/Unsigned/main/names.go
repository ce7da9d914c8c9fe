//go:build enumname

package main

import "github.com/sublee/enumname"

var weekdayNames = enumname.Names[Weekday]()
