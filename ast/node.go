// Package ast defines the typed abstract syntax tree produced by the
// parser and the lowering logic that turns it into LLVM IR via
// github.com/llir/llvm. Every node lowers itself: expression nodes expose
// CodeGen (r-value) and, for the five variants that can appear on the left
// of an assignment, CodeGenLValue; statement and function nodes expose
// CodeGen for their side effects.
package ast

import "github.com/llir/llvm/ir/value"

// Expr is any expression node. Signed reports the expression's own
// signedness, computed once at parse time and used both to choose signed
// vs. unsigned lowering for binary operations and to pick sign- vs.
// zero-extension when a value is widened to a wider type.
type Expr interface {
	Signed() bool
	CodeGen(ctx *Context) value.Value
}

// LValue is implemented by the expression variants that can be the target
// of an assignment or have their address taken: VariableReference,
// StructAccess, ArrayAccess, PtrIndexAccess, and Dereference. Any other
// Expr is an r-value only.
type LValue interface {
	Expr
	CodeGenLValue(ctx *Context) value.Value
}

// Stmt is any statement node.
type Stmt interface {
	CodeGen(ctx *Context)
}
