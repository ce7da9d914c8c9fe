package main

type Fruit int

const (
	apple Fruit = iota
	enumSize
)
