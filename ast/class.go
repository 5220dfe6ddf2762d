package ast

import (
	irtypes "github.com/llir/llvm/ir/types"

	vtypes "github.com/vane-lang/vane/types"
)

// LowerClass registers decl's LLVM struct type before computing its field
// types, exactly as the original implementation does: an opaque struct is
// created and registered first so a pointer-typed member referring back to
// the same class can resolve it, and only then is the field list filled
// in. A pointer member naming a class that is lowered after this one is not
// resolved.
func LowerClass(decl *vtypes.Decl, ctx *Context) *irtypes.StructType {
	st := irtypes.NewStruct()
	st.TypeName = decl.Name
	ctx.Module.NewTypeDef(decl.Name, st)
	ctx.DeclareStruct(decl.Name, st)

	fields := make([]irtypes.Type, len(decl.Members))
	for i, m := range decl.Members {
		fields[i] = LowerType(m.Type, ctx)
	}
	st.Fields = fields
	return st
}
