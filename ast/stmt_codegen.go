package ast

import (
	"github.com/llir/llvm/ir"
	irtypes "github.com/llir/llvm/ir/types"

	"github.com/vane-lang/vane/diag"
)

func (n *VariableDeclaration) CodeGen(ctx *Context) {
	t := LowerType(n.Type, ctx)
	if t == nil {
		diag.Report(diag.Codegen, "failed to create type for variable '"+n.Name+"'", nil)
	}

	alloca := ctx.Block.NewAlloca(t)

	if n.Initial != nil {
		initVal := n.Initial.CodeGen(ctx)
		converted := ctx.ConvertIfNeeded(initVal, t, n.Initial.Signed())
		if !ctx.CheckTypeCompatible(t, converted.Type()) {
			diag.Report(diag.Codegen, "cannot initialize variable '"+n.Name+"' with incompatible type", nil)
		}
		ctx.Block.NewStore(converted, alloca)
	}

	ctx.DeclareVariable(n.Name, &Slot{Ptr: alloca, Type: t})
}

// AssignmentStatement.CodeGen derives the store's target type from
// whatever kind of address Target produced — an alloca's allocated type,
// a GEP's indexed-into element type, or, failing both, the stored value's
// own type — matching the fallback chain the original implementation uses.
func (n *AssignmentStatement) CodeGen(ctx *Context) {
	ptr := n.Target.CodeGenLValue(ctx)
	if ptr == nil {
		diag.Report(diag.Codegen, "failed to generate lvalue for assignment target", nil)
	}

	val := n.Value.CodeGen(ctx)
	if val == nil {
		diag.Report(diag.Codegen, "failed to generate value for assignment", nil)
	}

	var targetType irtypes.Type
	switch p := ptr.(type) {
	case *ir.InstAlloca:
		targetType = p.ElemType
	case *ir.InstGetElementPtr:
		targetType = p.ElemType
	default:
		targetType = val.Type()
	}

	converted := ctx.ConvertIfNeeded(val, targetType, n.Value.Signed())
	ctx.Block.NewStore(converted, ptr)
}

func (n *Return) CodeGen(ctx *Context) {
	if n.Value != nil {
		v := n.Value.CodeGen(ctx)
		if v == nil {
			diag.Report(diag.Codegen, "failed to generate return value", nil)
		}
		converted := ctx.ConvertIfNeeded(v, ctx.CurrentReturnType, n.Value.Signed())
		if !ctx.CheckTypeCompatible(ctx.CurrentReturnType, converted.Type()) {
			diag.Report(diag.Codegen, "return value type does not match function return type", nil)
		}
		ctx.Block.NewRet(converted)
		return
	}

	if !isVoid(ctx.CurrentReturnType) {
		diag.Report(diag.Codegen, "non-void function must return a value", nil)
	}
	ctx.Block.NewRet(nil)
}

func isVoid(t irtypes.Type) bool {
	_, ok := t.(*irtypes.VoidType)
	return ok
}

func hasTerminator(b *ir.Block) bool {
	return b.Term != nil
}

func (n *If) CodeGen(ctx *Context) {
	f := ctx.Func

	thenBB := f.NewBlock("then")
	var elseBB *ir.Block
	if n.FalseBody != nil {
		elseBB = f.NewBlock("else")
	}
	mergeBB := f.NewBlock("ifcont")

	cond := n.Condition.CodeGen(ctx)
	if _, ok := cond.Type().(*irtypes.IntType); !ok {
		diag.Report(diag.Codegen, "if statement condition must be integer type", nil)
	}

	if n.FalseBody != nil {
		ctx.Block.NewCondBr(cond, thenBB, elseBB)
	} else {
		ctx.Block.NewCondBr(cond, thenBB, mergeBB)
	}

	ctx.Block = thenBB
	for _, stmt := range n.TrueBody {
		stmt.CodeGen(ctx)
	}
	if !hasTerminator(ctx.Block) {
		ctx.Block.NewBr(mergeBB)
	}

	if n.FalseBody != nil {
		ctx.Block = elseBB
		for _, stmt := range n.FalseBody {
			stmt.CodeGen(ctx)
		}
		if !hasTerminator(ctx.Block) {
			ctx.Block.NewBr(mergeBB)
		}
	}

	ctx.Block = mergeBB
}

// While.CodeGen checks for an existing terminator before branching back to
// the condition block, the same discipline If.CodeGen already applies.
// The original implementation omits this check in its While but not its
// If, which would emit a second (invalid) terminator whenever the loop
// body's last statement already ends the block — see DESIGN.md.
func (n *While) CodeGen(ctx *Context) {
	f := ctx.Func

	condBB := f.NewBlock("cond")
	bodyBB := f.NewBlock("body")
	exitBB := f.NewBlock("exit")

	ctx.Block.NewBr(condBB)

	ctx.Block = condBB
	cond := n.Condition.CodeGen(ctx)
	if _, ok := cond.Type().(*irtypes.IntType); !ok {
		diag.Report(diag.Codegen, "while statement condition must be integer type", nil)
	}
	ctx.Block.NewCondBr(cond, bodyBB, exitBB)

	ctx.Block = bodyBB
	for _, stmt := range n.Body {
		stmt.CodeGen(ctx)
	}
	if !hasTerminator(ctx.Block) {
		ctx.Block.NewBr(condBB)
	}

	ctx.Block = exitBB
}

func (n *ExpressionStatement) CodeGen(ctx *Context) {
	if n.Expression.CodeGen(ctx) == nil {
		diag.Report(diag.Codegen, "failed to generate expression statement", nil)
	}
}
