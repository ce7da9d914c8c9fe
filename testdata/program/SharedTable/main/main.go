package main

import "fmt"

type Fruit int

const (
	Apple Fruit = iota
	Banana
	enumSize
)

type Color uint8

const (
	Red Color = iota
	Green
	Blue
	ColorEnumSize
)

func main() {
	fmt.Println(fruitNames.Names(), moreFruitNames.Names())
	fmt.Println(colorNames.Name(Blue))
	fmt.Println(names.colors.Name(Green), names.count)
}
