// Command enumnameexample lists fruits by the names which Enumname derived
// from their declarations. Regenerate enumname_gen.go with:
//
//	go generate
package main

import "fmt"

//go:generate go run github.com/sublee/enumname/cmd/enumname

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

func (f Fruit) String() string { return fruitNames.Name(f) }

func main() {
	fmt.Println("List of fruits:")
	fmt.Println()

	for fruit, name := range fruitNames.All() {
		fmt.Printf("%2d: %s\n", fruit, name)
	}
}
