package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumname/internal/codefmt"
	"github.com/sublee/enumname/internal/typeinfo"
)

// Directive is a call of enumname.Names assigned to a package-level variable:
//
//	var fruitNames = enumname.Names[Fruit]()
type Directive struct {
	// Enum is the type argument.
	Enum typeinfo.Type

	// Var is the variable which the directive is assigned to.
	Var *types.Var

	Call *ast.CallExpr

	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup

	pkg *packages.Package
	pos token.Pos
}

// Pkg returns the package where the directive is called. Directive implements
// [codefmt.Pkger] by this method.
func (d Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the token position where the directive is called. Directive
// implements [codefmt.Poser] by this method.
func (d Directive) Pos() token.Pos { return d.pos }

// Type returns the enum type. Directive implements [codefmt.Typer] by this
// method.
func (d Directive) Type() types.Type { return d.Enum.Type() }

// Object returns the assigned variable.
func (d Directive) Object() types.Object { return d.Var }

// String returns a string representation of the directive. For example,
// "enumname.Names[Fruit]".
func (d Directive) String() string {
	return codefmt.Sprintf(d, "enumname.Names[%t]", d.Enum)
}

// ParseDirectives parses all [Directive]s from the files tagged with
// "enumname". Call [Parser.Validate] first to report directives in illegal
// places.
func (p *Parser) ParseDirectives() ([]Directive, error) {
	var errs error
	var dirs []Directive

	for _, file := range p.EnumnameGoFiles() {
		for dir, err := range p.parseDirectivesInFile(file) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			dirs = append(dirs, dir)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return dirs, nil
}

// parseDirectivesInFile parses and yields [Directive]s in the given file.
func (p *Parser) parseDirectivesInFile(file *ast.File) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		for _, a := range p.packageLevelDirectives(file) {
			if a.Name.Name == "_" {
				// Reported by Validate
				continue
			}

			dir, err := p.parseDirective(a.Name, a.Call, a.Spec.Doc, a.Spec.Comment)
			if !yield(dir, err) {
				return
			}
		}
	}
}

// assignment is a directive call assigned to a package-level variable.
type assignment struct {
	Spec *ast.ValueSpec
	Name *ast.Ident
	Call *ast.CallExpr
}

// packageLevelDirectives finds directive calls which are assigned to
// package-level variables.
func (p *Parser) packageLevelDirectives(file *ast.File) []assignment {
	var as []assignment
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}

		for _, spec := range gen.Specs {
			val, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			if len(val.Names) != len(val.Values) {
				// A directive returns exactly one value.
				continue
			}

			for i := range val.Values {
				call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
				if !ok || !p.IsDirective(call, "Names") {
					continue
				}
				as = append(as, assignment{val, val.Names[i], call})
			}
		}
	}
	return as
}

// parseDirective parses a [Directive] from the given AST nodes.
func (p *Parser) parseDirective(id *ast.Ident, call *ast.CallExpr, doc, comment *ast.CommentGroup) (Directive, error) {
	dir := Directive{
		Call:    call,
		Doc:     doc,
		Comment: comment,
		pkg:     p.Pkg(),
		pos:     call.Pos(),
	}

	v, ok := p.Pkg().TypesInfo.Defs[id].(*types.Var)
	if !ok {
		return Directive{}, codefmt.Errorf(p, id, "cannot resolve variable %s", id.Name) // unreachable
	}
	dir.Var = v

	fun, ok := tailIdent(call.Fun)
	if !ok {
		return Directive{}, codefmt.Errorf(p, call, "cannot resolve %c", call.Fun) // unreachable
	}

	inst, ok := p.Pkg().TypesInfo.Instances[fun]
	if !ok || inst.TypeArgs.Len() != 1 {
		return Directive{}, codefmt.Errorf(p, call, "%c must be instantiated with an enum type", call.Fun) // unreachable
	}
	dir.Enum = typeinfo.TypeOf(inst.TypeArgs.At(0))

	return dir, nil
}
