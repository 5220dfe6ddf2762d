package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/vane-lang/vane/ast"
	"github.com/vane-lang/vane/parser"
	"github.com/vane-lang/vane/sexy"
)

// TestLiterateExamples drives the literate fixtures under testdata/*.md
// through the real parser and lowering pipeline, the way
// sexy_test.go drives its own compiler at the top of the teacher's
// repository rather than only exercising the extraction mechanism.
func TestLiterateExamples(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.md")
	be.Equal(t, err, nil)
	be.True(t, len(paths) > 0)

	for _, path := range paths {
		content, err := parser.DefaultReadFile(path)
		be.Equal(t, err, nil)

		cases, err := sexy.ExtractTestCases(content)
		be.Equal(t, err, nil)

		for _, tc := range cases {
			t.Run(tc.Name, func(t *testing.T) {
				runLiterateCase(t, tc)
			})
		}
	}
}

func runLiterateCase(t *testing.T, tc sexy.TestCase) {
	switch tc.InputType {
	case sexy.InputTypeVaneExpr:
		runExprCase(t, tc)
	case sexy.InputTypeVaneProgram:
		runProgramCase(t, tc)
	default:
		t.Fatalf("unknown input type %q", tc.InputType)
	}
}

func runExprCase(t *testing.T, tc sexy.TestCase) {
	p := parser.New(tc.Input, "", nil)
	expr := p.ParseExpression()

	for _, assertion := range tc.Assertions {
		if assertion.Type != sexy.AssertionTypeAST {
			t.Fatalf("expression fixture %q: unsupported assertion type %q", tc.Name, assertion.Type)
		}
		be.Equal(t, ast.ToSExpr(expr), assertion.ParsedSexy.String())
	}
}

func runProgramCase(t *testing.T, tc sexy.TestCase) {
	p := parser.New(tc.Input, "", parser.DefaultReadFile)
	program, err := p.Program()
	be.Equal(t, err, nil)

	for _, assertion := range tc.Assertions {
		switch assertion.Type {
		case sexy.AssertionTypeAST:
			fn := findFunction(program, "run")
			if fn == nil {
				fn = findFunction(program, "main")
			}
			be.True(t, fn != nil)
			expr := lastExpr(fn)
			be.True(t, expr != nil)
			be.Equal(t, ast.ToSExpr(expr), assertion.ParsedSexy.String())

		case sexy.AssertionTypeIR:
			module, err := program.Build("literate_" + strings.ReplaceAll(tc.Name, " ", "_"))
			be.Equal(t, err, nil)
			text := module.String()
			be.True(t, strings.Contains(text, assertion.Content))

		default:
			t.Fatalf("program fixture %q: unsupported assertion type %q", tc.Name, assertion.Type)
		}
	}
}

func findFunction(program *ast.Program, name string) *ast.FunctionDecl {
	for _, fn := range program.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// lastExpr picks the checkable expression out of a function's last
// statement, since a full program (unlike a bare vane-expr fixture) has no
// single top-level expression of its own.
func lastExpr(fn *ast.FunctionDecl) ast.Expr {
	if len(fn.Body) == 0 {
		return nil
	}
	switch stmt := fn.Body[len(fn.Body)-1].(type) {
	case *ast.Return:
		return stmt.Value
	case *ast.ExpressionStatement:
		return stmt.Expression
	case *ast.VariableDeclaration:
		return stmt.Initial
	default:
		panic(fmt.Sprintf("lastExpr: unsupported statement type %T", stmt))
	}
}
