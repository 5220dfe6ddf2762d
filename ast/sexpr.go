package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ToSExpr renders an expression as an s-expression, the way the teacher's
// ToSExpr renders its own AST — used by the literate test harness (package
// sexy) to assert parse-tree shape without comparing Go struct values
// directly.
func ToSExpr(e Expr) string {
	switch n := e.(type) {
	case *IntLiteral:
		return strconv.FormatInt(n.Value, 10)
	case *FloatLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *StringLiteral:
		return strconv.Quote(n.Value)
	case *VariableReference:
		return n.Name
	case *StructAccess:
		return fmt.Sprintf("(. %s %s)", ToSExpr(n.Target), n.Member)
	case *ArrayAccess:
		return fmt.Sprintf("(index %s %s)", ToSExpr(n.Target), ToSExpr(n.Index))
	case *PtrIndexAccess:
		return fmt.Sprintf("(ptr-index %s %s)", ToSExpr(n.Target), ToSExpr(n.Index))
	case *Dereference:
		return fmt.Sprintf("(deref %s)", ToSExpr(n.Target))
	case *AddressOf:
		return fmt.Sprintf("(addr-of %s)", ToSExpr(n.Target))
	case *FunctionCall:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = ToSExpr(a)
		}
		return fmt.Sprintf("(call %s %s)", n.Name, strings.Join(args, " "))
	case *BinaryOperation:
		return fmt.Sprintf("(%s %s %s)", binaryOpSymbol(n.Op), ToSExpr(n.Left), ToSExpr(n.Right))
	default:
		return "(unknown)"
	}
}

func binaryOpSymbol(op BinaryOp) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpLess:
		return "<"
	case OpMore:
		return ">"
	case OpEqual:
		return "=="
	default:
		return "?"
	}
}
