package main

import "fmt"

type Weekday uint64

const (
	sunday Weekday = iota
	monday
	tuesday
	wednesday
	thursday
	friday
	saturday
	weekday_enumSize
)

func main() {
	fmt.Println(weekdayNames.Len())
	fmt.Println(weekdayNames.Name(saturday))
	fmt.Println(weekdayNames.Name(1 << 63))
	fmt.Println(weekdayNames.Valid(1 << 63))
}
