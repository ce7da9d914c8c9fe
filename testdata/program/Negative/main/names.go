//go:build enumname

package main

import "github.com/sublee/enumname"

var temperatureNames = enumname.Names[Temperature]()
