package main

type Fruit int

const (
	apple Fruit = iota
	banana
)

type Color int

const (
	red Color = iota
	ColorEnumSize
)
