package main

type Fruit int

const (
	apple Fruit = iota
	banana
)

const enumSize Fruit = 3

const cherry Fruit = 2
