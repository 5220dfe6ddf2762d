package ast

import "github.com/llir/llvm/ir/enum"

// Integer comparison predicates used by BinaryOperation.CodeGen, named
// locally so the signed/unsigned branch reads clearly at each call site.
const (
	intPredSLT = enum.IPredSLT
	intPredULT = enum.IPredULT
	intPredSGT = enum.IPredSGT
	intPredUGT = enum.IPredUGT
	intPredEQ  = enum.IPredEQ
)
