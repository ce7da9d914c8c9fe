package codefmt_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumname/internal/codefmt"
)

type pkger struct{}

func (pkger) Pkg() *packages.Package {
	var pkg packages.Package
	pkg.Fset = token.NewFileSet()
	pkg.Fset.AddFile("fruit.go", -1, 100).AddLine(10)
	return &pkg
}

type poser struct{ pos int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }

func TestErrorfNilNil(t *testing.T) {
	err := codefmt.Errorf(nil, nil, "simple error")
	assert.Equal(t, "simple error", err.Error())
}

func TestErrorfPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "invalid enum")
	assert.Equal(t, "fruit.go:1:1: invalid enum", err.Error())
}

func TestErrorfSecondLine(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{13}, "invalid enum")
	assert.Equal(t, "fruit.go:2:3: invalid enum", err.Error())
}

func TestErrorfNoPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, codefmt.Pos(token.NoPos), "invalid enum")
	assert.Equal(t, "invalid enum", err.Error())
}

func TestErrorfW(t *testing.T) {
	assert.Panics(t, func() {
		_ = codefmt.Errorf(pkger{}, poser{1}, "error: %w", assert.AnError)
	})
}

func TestErrorfUnwrap(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "invalid enum")
	codeErr, ok := err.(*codefmt.CodeError)
	assert.True(t, ok)
	assert.Equal(t, token.Pos(1), codeErr.Pos())
	assert.Equal(t, "invalid enum", codeErr.Unwrap().Error())
}
