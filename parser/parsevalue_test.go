package parser

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/vane-lang/vane/ast"
	"github.com/vane-lang/vane/types"
)

func TestParseValueLocalVariable(t *testing.T) {
	p := newTestParser("count")
	intType := p.registry.Lookup("int")
	p.pushScope()
	p.indexVariableType("count", intType)

	expr, derived := p.parseValue()
	ref, ok := expr.(*ast.VariableReference)
	be.True(t, ok)
	be.Equal(t, ref.Name, "count")
	be.Equal(t, derived, intType)
}

func TestParseValueImplicitThisMember(t *testing.T) {
	p := newTestParser("x")
	intType := p.registry.Lookup("int")
	decl := types.NewDecl("Point")
	decl.AddMembers([]types.Member{{Name: "x", Type: intType}})
	p.registry.RegisterClass(decl)

	classRef, _ := p.registry.Lookup("Point").(*types.ClassRef)
	p.pushScope()
	p.indexVariableType("this", &types.Pointer{Target: classRef})

	expr, derived := p.parseValue()
	access, ok := expr.(*ast.StructAccess)
	be.True(t, ok)
	be.Equal(t, access.Member, "x")
	be.Equal(t, derived, intType)
}

func TestParseValueStructFieldAccess(t *testing.T) {
	p := newTestParser("p.x")
	intType := p.registry.Lookup("int")
	decl := types.NewDecl("Point")
	decl.AddMembers([]types.Member{{Name: "x", Type: intType}})
	p.registry.RegisterClass(decl)
	classRef, _ := p.registry.Lookup("Point").(*types.ClassRef)

	p.pushScope()
	p.indexVariableType("p", classRef)

	expr, derived := p.parseValue()
	access, ok := expr.(*ast.StructAccess)
	be.True(t, ok)
	be.Equal(t, access.Member, "x")
	be.Equal(t, derived, intType)
}

func TestParseValueMethodCallDesugarsToFunctionCall(t *testing.T) {
	p := newTestParser("p.length()")
	intType := p.registry.Lookup("int")
	decl := types.NewDecl("Point")
	p.registry.RegisterClass(decl)
	classRef, _ := p.registry.Lookup("Point").(*types.ClassRef)
	p.registry.SetFunctionReturnType("Point_length", intType)

	p.pushScope()
	p.indexVariableType("p", classRef)

	expr, _ := p.parseValue()
	call, ok := expr.(*ast.FunctionCall)
	be.True(t, ok)
	be.Equal(t, call.Name, "Point_length")
	be.Equal(t, len(call.Args), 1)

	_, isAddrOf := call.Args[0].(*ast.AddressOf)
	be.True(t, isAddrOf)
}

func TestParseValueArrayAccess(t *testing.T) {
	p := newTestParser("a[0]")
	intType := p.registry.Lookup("int")
	arrType := &types.Array{Target: intType, Length: 4}

	p.pushScope()
	p.indexVariableType("a", arrType)

	expr, derived := p.parseValue()
	_, ok := expr.(*ast.ArrayAccess)
	be.True(t, ok)
	be.Equal(t, derived, intType)
}

func TestParseValueAddressOf(t *testing.T) {
	p := newTestParser("&count")
	intType := p.registry.Lookup("int")
	p.pushScope()
	p.indexVariableType("count", intType)

	expr, _ := p.parseValue()
	_, ok := expr.(*ast.AddressOf)
	be.True(t, ok)
}
