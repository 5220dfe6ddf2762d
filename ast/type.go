package ast

import (
	irtypes "github.com/llir/llvm/ir/types"

	"github.com/vane-lang/vane/diag"
	vtypes "github.com/vane-lang/vane/types"
)

// LowerType maps a vane type expression onto its LLVM representation.
// Pointers are always lowered to an opaque ptr — the Target type they
// carry exists only so element-type arithmetic (dereference, indexing) can
// recover what they point to, never to produce a typed LLVM pointer.
func LowerType(t vtypes.Type, ctx *Context) irtypes.Type {
	switch v := t.(type) {
	case *vtypes.Primitive:
		return lowerPrimitive(v)
	case *vtypes.Pointer:
		_ = LowerType(v.Target, ctx) // fails if a target class has not been lowered yet
		return irtypes.NewPointer(irtypes.Void)
	case *vtypes.Array:
		elem := LowerType(v.Target, ctx)
		return irtypes.NewArray(uint64(v.Length), elem)
	case *vtypes.ClassRef:
		if st, ok := ctx.Structs[v.Name]; ok {
			return st
		}
		diag.Report(diag.Internal, "class '"+v.Name+"' used before its struct type was lowered", nil)
		return nil
	default:
		diag.Report(diag.Internal, "unknown type node during lowering", nil)
		return nil
	}
}

func lowerPrimitive(p *vtypes.Primitive) irtypes.Type {
	switch p.Kind {
	case vtypes.Void:
		return irtypes.Void
	case vtypes.Bool:
		return irtypes.I1
	case vtypes.Char, vtypes.UChar:
		return irtypes.I8
	case vtypes.Short, vtypes.UShort:
		return irtypes.I16
	case vtypes.Int, vtypes.UInt:
		return irtypes.I32
	case vtypes.Long, vtypes.ULong:
		return irtypes.I64
	case vtypes.Half:
		return irtypes.Half
	case vtypes.Float:
		return irtypes.Float
	case vtypes.Double:
		return irtypes.Double
	case vtypes.Quad:
		return irtypes.FP128
	default:
		diag.Report(diag.Internal, "could not find primitive type, how did we get here?", nil)
		return nil
	}
}
