package main

import "fmt"

type Fruit int

const (
	apple Fruit = iota
	banana
	cherry
	grape
	grapefruit
	kiwi
	lemon
	lime
	melon
	orange
	pear
	pineapple
	plum
	raspberry
	strawberry

	enumSize
)

func main() {
	fmt.Println("List of fruits:")
	fmt.Println()

	for fruit, name := range fruitNames.All() {
		fmt.Printf("%2d: %s\n", fruit, name)
	}
}
