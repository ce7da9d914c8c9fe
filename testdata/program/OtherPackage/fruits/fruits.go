package fruits

type Fruit uint16

const (
	Apple Fruit = iota
	banana
	Cherry
	EnumSize
)
