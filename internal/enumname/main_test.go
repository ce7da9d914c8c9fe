package enumnameinternal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReorderErrors(t *testing.T) {
	assert.NoError(t, reorderErrors(nil))

	a := errors.New("a.go:1:1: invalid enum Fruit")
	b := errors.New("b.go:2:3: cannot assign enumname.Names[Fruit] to blank identifier")
	c := errors.New("a.go:9:9: Level is not a defined type")

	err := reorderErrors(errors.Join(b, errors.Join(c, a)))
	assert.EqualError(t, err, "a.go:1:1: invalid enum Fruit\n"+
		"a.go:9:9: Level is not a defined type\n"+
		"b.go:2:3: cannot assign enumname.Names[Fruit] to blank identifier")

	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
	assert.ErrorIs(t, err, c)
}
