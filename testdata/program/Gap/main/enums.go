package main

type Fruit int

const (
	Apple Fruit = iota
	_
	Cherry

	FruitEnumSize
)
