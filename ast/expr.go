package ast

import vtypes "github.com/vane-lang/vane/types"

// IntLiteral is a decimal- or hex-sourced integer constant. It is always
// signed, matching every literal-producing call site in the parser.
type IntLiteral struct {
	Value int64
}

func (n *IntLiteral) Signed() bool { return true }

// FloatLiteral is a 32-bit floating point constant. Always signed; there is
// no source syntax that produces a double/half/quad literal (see
// SPEC_FULL.md Open Question 4 — a known feature gap, not a bug).
type FloatLiteral struct {
	Value float64
}

func (n *FloatLiteral) Signed() bool { return true }

// StringLiteral is a decoded string constant, lowered to a pointer to a
// global character array.
type StringLiteral struct {
	Value string
}

func (n *StringLiteral) Signed() bool { return false }

// VariableReference names a local variable or function parameter.
type VariableReference struct {
	Name   string
	signed bool
}

func NewVariableReference(name string, signed bool) *VariableReference {
	return &VariableReference{Name: name, signed: signed}
}

func (n *VariableReference) Signed() bool { return n.signed }

// StructAccess is a.b — member access on an already-addressable struct
// expression.
type StructAccess struct {
	Target    Expr
	Member    string
	ClassName string
	ClassType *vtypes.ClassRef
	signed    bool
}

func NewStructAccess(target Expr, member, className string, signed bool, classType *vtypes.ClassRef) *StructAccess {
	return &StructAccess{Target: target, Member: member, ClassName: className, ClassType: classType, signed: signed}
}

func (n *StructAccess) Signed() bool { return n.signed }

// ArrayAccess is a[i] where a has a fixed-size array type.
type ArrayAccess struct {
	Target    Expr
	Index     Expr
	ArrayType *vtypes.Array
	signed    bool
}

func NewArrayAccess(target, index Expr, signed bool, arrayType *vtypes.Array) *ArrayAccess {
	return &ArrayAccess{Target: target, Index: index, ArrayType: arrayType, signed: signed}
}

func (n *ArrayAccess) Signed() bool { return n.signed }

// PtrIndexAccess is p[i] where p has pointer type.
type PtrIndexAccess struct {
	Target  Expr
	Index   Expr
	PtrType *vtypes.Pointer
	signed  bool
}

func NewPtrIndexAccess(target, index Expr, signed bool, ptrType *vtypes.Pointer) *PtrIndexAccess {
	return &PtrIndexAccess{Target: target, Index: index, PtrType: ptrType, signed: signed}
}

func (n *PtrIndexAccess) Signed() bool { return n.signed }

// Dereference is $p — loads through a pointer expression.
type Dereference struct {
	Target     Expr
	ResultType vtypes.Type
	signed     bool
}

func NewDereference(target Expr, resultType vtypes.Type, signed bool) *Dereference {
	return &Dereference{Target: target, ResultType: resultType, signed: signed}
}

func (n *Dereference) Signed() bool { return n.signed }

// AddressOf is &x — takes the address of an l-value.
type AddressOf struct {
	Target Expr
	signed bool
}

func NewAddressOf(target Expr, signed bool) *AddressOf {
	return &AddressOf{Target: target, signed: signed}
}

func (n *AddressOf) Signed() bool { return n.signed }

// FunctionCall invokes a declared free function or (after method-call
// desugaring) a class method, with the receiver already spliced in as
// argument zero.
type FunctionCall struct {
	Name       string
	Args       []Expr
	ReturnType vtypes.Type
	signed     bool
}

func NewFunctionCall(name string, args []Expr, signed bool, returnType vtypes.Type) *FunctionCall {
	return &FunctionCall{Name: name, Args: args, ReturnType: returnType, signed: signed}
}

func (n *FunctionCall) Signed() bool { return n.signed }

// BinaryOp enumerates the supported binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpLess
	OpMore
	OpEqual
)

// BinaryOperation is a two-operand arithmetic or comparison expression.
type BinaryOperation struct {
	Op     BinaryOp
	Left   Expr
	Right  Expr
	signed bool
}

func NewBinaryOperation(op BinaryOp, left, right Expr, signed bool) *BinaryOperation {
	return &BinaryOperation{Op: op, Left: left, Right: right, signed: signed}
}

func (n *BinaryOperation) Signed() bool { return n.signed }
