// Package enumnameanalysis reports misuse of Enumname directives and enum
// types which cannot have a name table, without generating code.
package enumnameanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumname/internal/codefmt"
	enumnameinternal "github.com/sublee/enumname/internal/enumname"
)

// Analyzer validates the usage of Enumname in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumname",
	Doc:  "linter for enumname usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	en, err := enumnameinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := en.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
