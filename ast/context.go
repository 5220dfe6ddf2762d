package ast

import (
	"fmt"

	"github.com/llir/llvm/ir"
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/vane-lang/vane/scope"
)

// Slot is a declared variable's stack storage: the pointer returned by its
// alloca, and the LLVM type that was allocated (needed by Load/GEP, which
// take an explicit element type under opaque pointers).
type Slot struct {
	Ptr  value.Value
	Type irtypes.Type
}

// Context carries everything CodeGen needs while lowering a module: the
// module being built, the function/block currently being emitted into, the
// variable scope stack, and the registry of already-lowered struct types.
// It is the Go analogue of the original implementation's CodegenContext.
type Context struct {
	Module *ir.Module
	Func   *ir.Func
	Block  *ir.Block

	vars    *scope.Stack[*Slot]
	Structs map[string]*irtypes.StructType
	Funcs   map[string]*ir.Func

	// CurrentReturnType is the LLVM return type of the function currently
	// being lowered, consulted by Return to convert its value.
	CurrentReturnType irtypes.Type

	stringCounter int
}

// NewContext returns a Context for a fresh, empty module. moduleName is not
// recorded on the module.
func NewContext(moduleName string) *Context {
	return &Context{
		Module:  ir.NewModule(),
		vars:    scope.New[*Slot](),
		Structs: make(map[string]*irtypes.StructType),
		Funcs:   make(map[string]*ir.Func),
	}
}

// nextStringName returns a fresh, unique name for a string literal's
// backing global constant.
func (c *Context) nextStringName() string {
	c.stringCounter++
	return fmt.Sprintf(".str.%d", c.stringCounter)
}

// DeclareStruct registers a named class's lowered LLVM struct type so
// later member accesses can recover its field layout.
func (c *Context) DeclareStruct(name string, t *irtypes.StructType) {
	c.Structs[name] = t
}

// PushScope opens a new variable scope. Lowering pushes one per function
// body; if/while bodies share their enclosing function's scope.
func (c *Context) PushScope() { c.vars.Push() }

// PopScope closes the innermost variable scope.
func (c *Context) PopScope() { c.vars.Pop() }

// DeclareVariable binds name to its stack slot in the innermost scope.
func (c *Context) DeclareVariable(name string, slot *Slot) { c.vars.Declare(name, slot) }

// LookupVariable searches the scope stack from innermost outward.
func (c *Context) LookupVariable(name string) (*Slot, bool) { return c.vars.Lookup(name) }

// ExistsInCurrentScope reports whether name is already bound in the
// innermost scope.
func (c *Context) ExistsInCurrentScope(name string) bool { return c.vars.ExistsInCurrentScope(name) }

// ConvertIfNeeded widens or narrows v to targetType if they differ.
// Widening picks sign- or zero-extension based on signed — the calling
// expression's OWN signedness, not necessarily the target's, matching the
// original implementation's convertIfNeeded exactly (see DESIGN.md Open
// Question 6). Narrowing always truncates unconditionally.
func (c *Context) ConvertIfNeeded(v value.Value, targetType irtypes.Type, signed bool) value.Value {
	if v == nil || targetType == nil {
		return v
	}
	valueType := v.Type()
	if valueType.Equal(targetType) {
		return v
	}

	vInt, vIsInt := valueType.(*irtypes.IntType)
	tInt, tIsInt := targetType.(*irtypes.IntType)
	if vIsInt && tIsInt {
		switch {
		case vInt.BitSize < tInt.BitSize:
			if signed {
				return c.Block.NewSExt(v, targetType)
			}
			return c.Block.NewZExt(v, targetType)
		case vInt.BitSize > tInt.BitSize:
			return c.Block.NewTrunc(v, targetType)
		}
	}
	return v
}

// CheckTypeCompatible reports whether two LLVM types are directly
// assignable without conversion — structural identity, matching the
// original's pointer-equality check on llvm::Type*.
func (c *Context) CheckTypeCompatible(a, b irtypes.Type) bool {
	return a.Equal(b)
}
