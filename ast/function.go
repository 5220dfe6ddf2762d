package ast

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"

	vtypes "github.com/vane-lang/vane/types"
)

// Param is one function or method parameter.
type Param struct {
	Name string
	Type vtypes.Type
}

// FunctionDecl is a free function or a method (already carrying its
// synthetic leading "this" parameter, spliced in by the parser). Body is
// nil for a bodyless (forward-declared) function.
type FunctionDecl struct {
	Name     string
	Type     vtypes.Type
	Params   []Param
	Body     []Stmt
	Public   bool
	Detached bool
}

// CodeGen creates the LLVM function (declaration-only if Body is nil) and,
// if a body exists, lowers it. The function is registered in ctx.Funcs
// before its body is generated so a recursive call to itself resolves. A
// call to a function lowered after this one is not resolved.
func (f *FunctionDecl) CodeGen(ctx *Context) *ir.Func {
	retType := LowerType(f.Type, ctx)

	params := make([]*ir.Param, len(f.Params))
	for i, p := range f.Params {
		params[i] = ir.NewParam(p.Name, LowerType(p.Type, ctx))
	}

	fn := ctx.Module.NewFunc(f.Name, retType, params...)
	if f.Public {
		fn.Linkage = enum.LinkageExternal
	} else {
		fn.Linkage = enum.LinkageInternal
	}
	ctx.Funcs[f.Name] = fn

	if f.Body != nil {
		f.generateBody(ctx, fn, retType)
	}

	return fn
}

// generateBody lowers a function's parameter bindings and statement list
// into fn's entry block. Parameters are copied into stack slots (an
// alloca + store per parameter) so they behave as ordinary mutable local
// variables, matching the original implementation's parameter handling.
func (f *FunctionDecl) generateBody(ctx *Context, fn *ir.Func, retType irtypes.Type) {
	entry := fn.NewBlock("entry")

	ctx.Func = fn
	ctx.Block = entry
	ctx.CurrentReturnType = retType

	ctx.PushScope()

	for i, p := range f.Params {
		arg := fn.Params[i]
		alloca := ctx.Block.NewAlloca(arg.Type())
		ctx.Block.NewStore(arg, alloca)
		ctx.DeclareVariable(p.Name, &Slot{Ptr: alloca, Type: arg.Type()})
	}

	for _, stmt := range f.Body {
		stmt.CodeGen(ctx)
		if hasTerminator(ctx.Block) {
			break
		}
	}

	// Every LLVM basic block needs a terminator, including one left dangling
	// because every statement that reached it already returned (e.g. an
	// if/else where both arms return, leaving an empty, unreachable merge
	// block). A non-void function gets `unreachable` there rather than a
	// fabricated `ret void`, which would be a well-typed lie about the
	// function's declared return type.
	if !hasTerminator(ctx.Block) {
		if isVoid(retType) {
			ctx.Block.NewRet(nil)
		} else {
			ctx.Block.NewUnreachable()
		}
	}

	ctx.PopScope()
}
