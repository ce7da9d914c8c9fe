package main

import "fmt"

func main() {
	for fruit, name := range fruitNames.All() {
		fmt.Println(fruit, name)
	}
	fmt.Println(fruitNames.TypeName())
}
