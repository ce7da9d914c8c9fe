package parse

import (
	"errors"
	"go/ast"
	"strings"

	"github.com/sublee/enumname/internal/codefmt"
)

// Validate checks for usages outside expected places. It collects all errors
// instead of stopping at the first error.
//
// A directive is erased at code generation. So it is only allowed as the value
// of a named package-level variable in a file tagged with "enumname". Other
// references would remain after code generation and break the build.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectiveUsages(file))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/enumname"
// have "//go:build enumname" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	var enumnameImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsEnumnameImport(strings.Trim(imp.Path.Value, `"`)) {
			enumnameImport = imp
			break
		}
	}
	if enumnameImport == nil {
		return nil
	}

	if hasGoBuildEnumname(file) {
		return nil
	}

	return codefmt.Errorf(p, enumnameImport, `file must have "//go:build enumname" constraint when importing enumname`)
}

// validateDirectiveUsages checks directives which are not assigned to named
// package-level variables.
func (p *Parser) validateDirectiveUsages(file *ast.File) error {
	if !hasGoBuildEnumname(file) {
		return nil
	}

	var errs error

	allowed := make(map[*ast.CallExpr]bool)
	for _, a := range p.packageLevelDirectives(file) {
		if a.Name.Name == "_" {
			err := codefmt.Errorf(p, a.Call, "cannot assign %c to blank identifier", a.Call.Fun)
			errs = errors.Join(errs, err)
		}
		allowed[a.Call] = true
	}

	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}
		if allowed[call] {
			return false
		}

		if !p.IsDirective(call, "") {
			return true
		}

		err := codefmt.Errorf(p, call, "cannot use %c outside package-level variable declaration", call.Fun)
		errs = errors.Join(errs, err)
		return false
	})

	return errs
}
