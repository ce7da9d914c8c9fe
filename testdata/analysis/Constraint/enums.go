package constraint

type Fruit int

const (
	apple Fruit = iota
	enumSize
)
