package enumnameinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/enumname/internal/codefmt"
	"github.com/sublee/enumname/internal/enumname/derive"
	"github.com/sublee/enumname/internal/enumname/parse"
	"github.com/sublee/enumname/internal/logger"
)

// TablePath is the import path of the runtime table package which the
// generated code refers to.
const TablePath = "github.com/sublee/enumname/pkg/enumtable"

var log = logger.GetLogger()

// Enumname generates name table code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Enumname struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer
	b   *derive.Builder

	dirs   map[token.Pos]parse.Directive
	tables map[token.Pos]*derive.Table

	// vars holds the variable name of each table in the order of the first
	// directive requesting it.
	vars  map[*derive.Table]string
	order []*derive.Table
}

// New creates a new [Enumname] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Enumname, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Enumname{
		p:      parser,
		ns:     codefmt.NewNS(pkg.Types.Scope()),
		buf:    &buf,
		w:      codefmt.NewWriter(&buf, pkg),
		b:      derive.NewBuilder(),
		dirs:   make(map[token.Pos]parse.Directive),
		tables: make(map[token.Pos]*derive.Table),
		vars:   make(map[*derive.Table]string),
	}, nil
}

// Build prepares code generation by parsing directives and building name
// tables. All potential errors are returned by this method. It must be called
// before [Generate].
func (en *Enumname) Build() error {
	errs := en.p.Validate()

	dirs, err := en.p.ParseDirectives()
	errs = errors.Join(errs, err)

	if errs != nil {
		return errs
	}

	for _, dir := range dirs {
		enum, err := derive.Validate(dir, dir, dir.Enum)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		table := en.b.Build(enum)
		en.dirs[dir.Pos()] = dir
		en.tables[dir.Pos()] = table

		if _, ok := en.vars[table]; !ok {
			typeName := codefmt.FormatType(dir, table.Enum.Type.Named)
			en.vars[table] = en.ns.Name("enumname_" + typeName)
			en.order = append(en.order, table)
			log.Debugf("%s: built %s table with %d names", codefmt.FormatPos(dir, dir.Pos()), typeName, table.Len())
		}
	}

	return errs
}

// Generate generates name table code for the package. It must be called after
// [Build] succeeds. It returns nil if the package has no directives.
func (en *Enumname) Generate() []byte {
	if len(en.dirs) == 0 {
		return nil
	}
	en.writeTableCode()
	en.mergeCode()
	return en.frameCode()
}

// writeTableCode writes a variable declaration for each name table:
//
//	var enumname_Fruit = enumtable.New[Fruit]("Fruit",
//		"apple",
//		"banana",
//	)
func (en *Enumname) writeTableCode() {
	en.w.Printf("// enumname: name tables\n\n")

	pkgName := en.w.Import(TablePath, "enumtable")
	for _, table := range en.order {
		named := table.Enum.Type.Named
		en.w.Printf("var %s = %s.New[%t](%q", en.vars[table], pkgName, named, named.Obj().Name())
		if table.Len() == 0 {
			en.w.Printf(")\n\n")
			continue
		}

		en.w.Printf(",\n")
		for _, name := range table.Names {
			en.w.Printf("\t%q,\n", name)
		}
		en.w.Printf(")\n\n")
	}
}

// mergeCode copies code from the source files that tagged with "//go:build
// enumname". Each directive is replaced with a reference to its name table to
// remove any references to the enumname package.
func (en *Enumname) mergeCode() {
	for _, file := range en.p.EnumnameGoFiles() {
		name := filepath.Base(en.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(en.buf, "// %s:\n\n", name)
				first = false
			}

			// Replace enumname.Names[T]() with the table variable
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				call, ok := c.Node().(*ast.CallExpr)
				if !ok {
					return true
				}

				table, ok := en.tables[call.Pos()]
				if !ok {
					return true
				}

				// The identifier is not resolved by the type checker, so
				// RewriteImports leaves it as is.
				c.Replace(&ast.Ident{NamePos: call.Pos(), Name: en.vars[table]})
				return false
			}, nil).(ast.Decl)

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(en.w, decl)

			printer.Fprint(en.buf, en.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(en.buf, "\n\n")
		}
	}
}

func (en *Enumname) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", en.p.Pkg().Name)

	imports := en.w.Imports()
	aliases := make([]string, 0, len(imports))
	for alias := range imports {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)

	if len(aliases) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range aliases {
			imp := imports[alias]
			if parse.IsEnumnameImport(imp.Path()) {
				log.Warningf("%s: enumname import remains in generated code", en.p.Pkg().PkgPath)
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, en.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	} else {
		log.Warningf("%s: generated code is not formatted: %v", en.p.Pkg().PkgPath, err)
	}
	return code
}
