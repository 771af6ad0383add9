// SPDX-License-Identifier: EPL-2.0

package namhost

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// Public packages document every exported function, method and type.
func TestExportedIdentifiersAreDocumented(t *testing.T) {
	t.Parallel()

	dirs := []string{
		".",
		"audio",
		"engine",
		"engine/nam",
		"formats/aiff",
		"formats/mp3",
		"formats/vorbis",
		"formats/wav",
		"metrics",
		"session",
		"utils",
	}

	for _, dir := range dirs {
		fset := token.NewFileSet()
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}

		hasPackageDoc := false
		for _, name := range files {
			if strings.HasSuffix(name, "_test.go") {
				continue
			}

			f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
			if err != nil {
				t.Fatalf("parsing %s: %v", name, err)
			}
			if f.Doc != nil {
				hasPackageDoc = true
			}

			for _, decl := range f.Decls {
				for _, missing := range undocumented(decl) {
					t.Errorf("%s: %s has no doc comment", fset.Position(decl.Pos()), missing)
				}
			}
		}

		if !hasPackageDoc {
			t.Errorf("package in %q has no package comment", dir)
		}
	}
}

func undocumented(decl ast.Decl) []string {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if !d.Name.IsExported() || d.Doc != nil {
			return nil
		}
		if d.Recv != nil && !ast.IsExported(receiverType(d.Recv.List[0].Type)) {
			return nil
		}
		return []string{d.Name.Name}
	case *ast.GenDecl:
		if d.Tok != token.TYPE {
			return nil
		}
		var out []string
		for _, s := range d.Specs {
			ts := s.(*ast.TypeSpec)
			if ts.Name.IsExported() && ts.Doc == nil && d.Doc == nil {
				out = append(out, ts.Name.Name)
			}
		}
		return out
	}
	return nil
}

func receiverType(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverType(e.X)
	case *ast.IndexExpr:
		return receiverType(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}
