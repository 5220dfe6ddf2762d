package ast

import (
	"fmt"

	"github.com/llir/llvm/ir"

	vtypes "github.com/vane-lang/vane/types"
)

// Program is the fully parsed compilation unit: every class declaration
// and every function/method, in first-encounter order — the order
// module assembly lowers them in.
type Program struct {
	Classes   []*vtypes.Decl
	Functions []*FunctionDecl
}

// Build lowers the program to an LLVM module: every class struct type
// first (so functions referencing them can resolve field layouts), then
// every function and method, matching the module assembly order this
// front end's specification requires.
func (p *Program) Build(moduleName string) (*ir.Module, error) {
	ctx := NewContext(moduleName)

	for _, decl := range p.Classes {
		LowerClass(decl, ctx)
	}

	for _, fn := range p.Functions {
		fn.CodeGen(ctx)
	}

	if err := Verify(ctx.Module); err != nil {
		return ctx.Module, err
	}

	return ctx.Module, nil
}

// Verify performs a minimal structural sanity pass over the lowered
// module. github.com/llir/llvm has no equivalent of llvm::verifyModule —
// it is a construction library, not a verifier — so this checks the one
// invariant CodeGen is responsible for upholding itself: every defined
// function's last block ends in a terminator instruction.
func Verify(m *ir.Module) error {
	for _, fn := range m.Funcs {
		if len(fn.Blocks) == 0 {
			continue // bodyless declaration
		}
		last := fn.Blocks[len(fn.Blocks)-1]
		if last.Term == nil {
			return fmt.Errorf("function %q: block %q has no terminator", fn.Name(), last.Name())
		}
	}
	return nil
}
