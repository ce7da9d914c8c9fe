package main

type Fruit int

const (
	apple Fruit = iota
	banana
	cherry
)
