package main

import "fmt"

type Nothing int8

const enumSize Nothing = 0

func main() {
	fmt.Println(nothingNames.Len(), nothingNames.Names())
	fmt.Println(nothingNames.Name(0))
}
