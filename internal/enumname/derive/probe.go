package derive

import "go/types"

// Probe returns the signature text which go/types synthesizes for the
// constant:
//
//	const example.com/fruits.apple example.com/fruits.Fruit
//
// The text is built from the package path and the declared name of the
// constant. The value of the constant never appears in it.
func Probe(con *types.Const) string {
	return types.ObjectString(con, nil)
}
