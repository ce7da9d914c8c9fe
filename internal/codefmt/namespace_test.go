package codefmt

import (
	"go/types"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("fruit"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "fruit", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "fruit2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "fruit3", name)
	assert.True(t, more)
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("level8"))
	defer stop()

	var name string

	name, _ = pull()
	assert.Equal(t, "level8", name)

	name, _ = pull()
	assert.Equal(t, "level8_2", name)

	name, _ = pull()
	assert.Equal(t, "level8_3", name)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "enumname_Fruit", NormalizeName("enumname_Fruit"))
	assert.Equal(t, "enumname_fruitsFruit", NormalizeName("enumname_fruits.Fruit"))
	assert.Equal(t, "enumname_httpStatusCode", NormalizeName("enumname_http.statusCode"))
}

func TestNormalizeNameEmpty(t *testing.T) {
	assert.Panics(t, func() { NormalizeName("") })
	assert.Panics(t, func() { NormalizeName("...") })
}

func TestNSName(t *testing.T) {
	scope := types.NewScope(nil, 0, 0, "")
	scope.Insert(types.NewVar(0, nil, "enumname_Fruit", types.Typ[types.Int]))
	ns := NewNS(scope)

	assert.Equal(t, "enumname_Fruit2", ns.Name("enumname_Fruit"))
	assert.Equal(t, "enumname_Fruit3", ns.Name("enumname_Fruit"))
	assert.Equal(t, "enumname_Color", ns.Name("enumname_Color"))
}

func TestNSNameKeyword(t *testing.T) {
	ns := make(NS)
	assert.Equal(t, "type_", ns.Name("type"))
}

func TestNSReserve(t *testing.T) {
	ns := make(NS)
	assert.True(t, ns.Reserve("apple"))
	assert.False(t, ns.Reserve("apple"))
}
