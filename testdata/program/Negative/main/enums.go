package main

type Temperature int

const (
	cold Temperature = iota - 1
	mild
	hot
	enumSize
)
