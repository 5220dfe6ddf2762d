package parser

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/vane-lang/vane/types"
)

func TestParseFunctionDetachedFreeFunction(t *testing.T) {
	p := newTestParser("int add(int a, int b) { return a; }")
	fn := p.parseFunction()

	be.Equal(t, fn.Name, "add")
	be.True(t, fn.Detached)
	be.Equal(t, len(fn.Params), 2)
	be.Equal(t, fn.Params[0].Name, "a")
	be.Equal(t, fn.Params[1].Name, "b")
	be.Equal(t, len(fn.Body), 1)
}

func TestParseFunctionBodylessDeclaration(t *testing.T) {
	p := newTestParser("int forwardDeclared(int a);")
	fn := p.parseFunction()

	be.Equal(t, fn.Name, "forwardDeclared")
	be.True(t, fn.Body == nil)
}

func TestParseFunctionMethodSplicesThisParam(t *testing.T) {
	p := newTestParser("int length() { return 0; }")

	decl := types.NewDecl("Point")
	p.registry.RegisterClass(decl)
	p.currentClassName = "Point"

	fn := p.parseFunction()

	be.Equal(t, fn.Name, "Point_length")
	be.True(t, !fn.Detached)
	be.Equal(t, len(fn.Params), 1)
	be.Equal(t, fn.Params[0].Name, "this")
}

func TestParseFunctionRegistersReturnType(t *testing.T) {
	p := newTestParser("int compute() { return 0; }")
	p.parseFunction()

	retType := p.registry.FunctionReturnType("compute")
	be.True(t, retType != nil)
	be.Equal(t, retType.String(), "int")
}
