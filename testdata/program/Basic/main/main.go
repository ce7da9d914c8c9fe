package main

import "fmt"

type Fruit int

const (
	Apple Fruit = iota
	Banana
	Cherry

	FruitEnumSize
)

func main() {
	fmt.Println(FruitNames.Len())
	fmt.Println(FruitNames.Name(Apple), FruitNames.Name(Banana), FruitNames.Name(Cherry))
	fmt.Println(FruitNames.Name(Fruit(3)), FruitNames.Name(-1))
	fmt.Println(FruitNames.Valid(Cherry), FruitNames.Valid(FruitEnumSize))
	fmt.Println(FruitNames.Lookup("Cherry"))
	fmt.Println(FruitNames.Lookup("Durian"))
	fmt.Println(FruitNames.Names())
}
