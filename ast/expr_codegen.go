package ast

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/vane-lang/vane/diag"
)

// CodeGen for IntLiteral always produces a 32-bit signed constant — every
// call site that builds one already agreed the source language has no
// literal syntax for any other integer width.
func (n *IntLiteral) CodeGen(ctx *Context) value.Value {
	return constant.NewInt(irtypes.I32, n.Value)
}

func (n *FloatLiteral) CodeGen(ctx *Context) value.Value {
	return constant.NewFloat(irtypes.Float, n.Value)
}

func (n *StringLiteral) CodeGen(ctx *Context) value.Value {
	data := append([]byte(n.Value), 0)
	arrType := irtypes.NewArray(uint64(len(data)), irtypes.I8)
	init := constant.NewCharArrayFromString(string(data))
	g := ctx.Module.NewGlobalDef(ctx.nextStringName(), init)
	g.Immutable = true
	zero := constant.NewInt(irtypes.I32, 0)
	return ctx.Block.NewGetElementPtr(arrType, g, zero, zero)
}

func (n *VariableReference) CodeGen(ctx *Context) value.Value {
	slot, ok := ctx.LookupVariable(n.Name)
	if !ok {
		diag.Report(diag.Codegen, fmt.Sprintf("undefined variable '%s'", n.Name), nil)
	}
	return ctx.Block.NewLoad(slot.Type, slot.Ptr)
}

func (n *VariableReference) CodeGenLValue(ctx *Context) value.Value {
	slot, ok := ctx.LookupVariable(n.Name)
	if !ok {
		diag.Report(diag.Codegen, fmt.Sprintf("undefined variable '%s'", n.Name), nil)
	}
	return slot.Ptr
}

// Dereference.CodeGenLValue uses the child's r-value — the pointer it
// evaluates to — directly as the address. The original implementation
// instead routed this through the child's l-value and re-loaded through
// it, which is wrong whenever the child itself isn't a bare variable (e.g.
// $p.next, $arr[i]); see DESIGN.md Open Question 3.
func (n *Dereference) CodeGenLValue(ctx *Context) value.Value {
	ptr := n.Target.CodeGen(ctx)
	if ptr == nil {
		diag.Report(diag.Codegen, "failed to generate target expression for dereference", nil)
	}
	return ptr
}

func (n *Dereference) CodeGen(ctx *Context) value.Value {
	ptr := n.Target.CodeGen(ctx)
	if ptr == nil {
		diag.Report(diag.Codegen, "failed to generate target expression for dereference", nil)
	}
	return ctx.Block.NewLoad(LowerType(n.ResultType, ctx), ptr)
}

func (n *AddressOf) CodeGen(ctx *Context) value.Value {
	lv, ok := n.Target.(LValue)
	if !ok {
		diag.Report(diag.Codegen, "address-of operator requires an addressable expression", nil)
	}
	return lv.CodeGenLValue(ctx)
}

func (n *StructAccess) CodeGenLValue(ctx *Context) value.Value {
	targetLV, ok := n.Target.(LValue)
	if !ok {
		diag.Report(diag.Codegen, "failed to generate lvalue for struct expression", nil)
	}
	structPtr := targetLV.CodeGenLValue(ctx)

	st, ok := ctx.Structs[n.ClassName]
	if !ok {
		diag.Report(diag.Codegen, fmt.Sprintf("struct type '%s' not found", n.ClassName), nil)
	}

	idx := n.ClassType.Decl.MemberIndex(n.Member)
	if idx < 0 {
		diag.Report(diag.Codegen, fmt.Sprintf("struct '%s' has no member named '%s'", n.ClassName, n.Member), nil)
	}

	zero := constant.NewInt(irtypes.I32, 0)
	field := constant.NewInt(irtypes.I32, int64(idx))
	return ctx.Block.NewGetElementPtr(st, structPtr, zero, field)
}

func (n *StructAccess) CodeGen(ctx *Context) value.Value {
	fieldPtr := n.CodeGenLValue(ctx)
	memberType := n.ClassType.Decl.MemberType(n.Member)
	if memberType == nil {
		diag.Report(diag.Codegen, fmt.Sprintf("struct '%s' has no member named '%s'", n.ClassName, n.Member), nil)
	}
	return ctx.Block.NewLoad(LowerType(memberType, ctx), fieldPtr)
}

func (n *ArrayAccess) CodeGenLValue(ctx *Context) value.Value {
	targetLV, ok := n.Target.(LValue)
	if !ok {
		diag.Report(diag.Codegen, "failed to generate lvalue for array expression", nil)
	}
	arrayPtr := targetLV.CodeGenLValue(ctx)

	indexVal := n.Index.CodeGen(ctx)
	arrType := LowerType(n.ArrayType, ctx)

	zero := constant.NewInt(irtypes.I32, 0)
	return ctx.Block.NewGetElementPtr(arrType, arrayPtr, zero, indexVal)
}

func (n *ArrayAccess) CodeGen(ctx *Context) value.Value {
	elemPtr := n.CodeGenLValue(ctx)
	elemType := LowerType(n.ArrayType.Target, ctx)
	return ctx.Block.NewLoad(elemType, elemPtr)
}

func (n *PtrIndexAccess) CodeGenLValue(ctx *Context) value.Value {
	ptrVal := n.Target.CodeGen(ctx)
	indexVal := n.Index.CodeGen(ctx)
	elemType := LowerType(n.PtrType.Target, ctx)
	return ctx.Block.NewGetElementPtr(elemType, ptrVal, indexVal)
}

func (n *PtrIndexAccess) CodeGen(ctx *Context) value.Value {
	elemPtr := n.CodeGenLValue(ctx)
	elemType := LowerType(n.PtrType.Target, ctx)
	return ctx.Block.NewLoad(elemType, elemPtr)
}

func (n *FunctionCall) CodeGen(ctx *Context) value.Value {
	callee, ok := ctx.Funcs[n.Name]
	if !ok {
		diag.Report(diag.Codegen, fmt.Sprintf("unknown function '%s'", n.Name), nil)
	}
	if len(callee.Params) != len(n.Args) {
		diag.Report(diag.Codegen, fmt.Sprintf("function '%s' expects %d arguments, got %d", n.Name, len(callee.Params), len(n.Args)), nil)
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.CodeGen(ctx)
	}
	return ctx.Block.NewCall(callee, args...)
}

// BinaryOperation.CodeGen branches to signed or unsigned opcodes based on
// the operation's own Signed flag for Divide/Less/More (the original
// implementation always emits the unsigned opcode regardless of operand
// signedness — see DESIGN.md Open Question 2). Add/Subtract have no
// signed/unsigned distinction at the instruction level; Equal has no
// signed/unsigned distinction in LLVM either (eq/ne ignore sign), so it is
// unconditional, matching both the original and the corrected design.
func (n *BinaryOperation) CodeGen(ctx *Context) value.Value {
	l := n.Left.CodeGen(ctx)
	r := n.Right.CodeGen(ctx)
	r = ctx.ConvertIfNeeded(r, l.Type(), n.signed)

	lPtr, lIsPtr := l.Type().(*irtypes.PointerType)
	rPtr, rIsPtr := r.Type().(*irtypes.PointerType)

	switch n.Op {
	case OpAdd:
		if lIsPtr {
			return ctx.Block.NewGetElementPtr(lPtr.ElemType, l, r)
		}
		if rIsPtr {
			return ctx.Block.NewGetElementPtr(rPtr.ElemType, r, l)
		}
		return ctx.Block.NewAdd(l, r)
	case OpSubtract:
		if lIsPtr {
			return ctx.Block.NewGetElementPtr(lPtr.ElemType, l, ctx.Block.NewSub(constant.NewInt(r.Type().(*irtypes.IntType), 0), r))
		}
		return ctx.Block.NewSub(l, r)
	case OpMultiply:
		return ctx.Block.NewMul(l, r)
	case OpDivide:
		if n.signed {
			return ctx.Block.NewSDiv(l, r)
		}
		return ctx.Block.NewUDiv(l, r)
	case OpLess:
		if n.signed {
			return ctx.Block.NewICmp(intPredSLT, l, r)
		}
		return ctx.Block.NewICmp(intPredULT, l, r)
	case OpMore:
		if n.signed {
			return ctx.Block.NewICmp(intPredSGT, l, r)
		}
		return ctx.Block.NewICmp(intPredUGT, l, r)
	case OpEqual:
		return ctx.Block.NewICmp(intPredEQ, l, r)
	default:
		diag.Report(diag.Codegen, "unexpected binary operation type", nil)
		return nil
	}
}
