package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vane-lang/vane/ast"
	"github.com/vane-lang/vane/token"
)

// getOperatorPrecedence ranks a binary operator token for precedence
// climbing; -1 means k is not a binary operator at all.
func getOperatorPrecedence(k token.Kind) int {
	switch k {
	case token.Asterisk, token.Slash:
		return 20
	case token.Plus, token.Minus:
		return 10
	case token.Less, token.Greater:
		return 5
	case token.Equals:
		return 3
	default:
		return -1
	}
}

func (p *Parser) tokenToBinaryOp(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSubtract
	case token.Asterisk:
		return ast.OpMultiply
	case token.Slash:
		return ast.OpDivide
	case token.Less:
		return ast.OpLess
	case token.Greater:
		return ast.OpMore
	case token.Equals:
		return ast.OpEqual
	default:
		p.emitSemanticError("invalid binary operator")
		return ast.OpAdd
	}
}

// parsePrimaryExpression parses one operand of an expression: a literal,
// a unary-minus-fused literal, a function call, an intdef constant
// substitution, a variable/member/subscript chain (delegated to
// parseValue), or a parenthesized sub-expression.
func (p *Parser) parsePrimaryExpression(terminator token.Kind) ast.Expr {
	switch p.lex.Peek(0).Kind {
	case token.IntLit:
		value, _ := p.parseIntValue()
		return &ast.IntLiteral{Value: value}

	case token.StringLit:
		return &ast.StringLiteral{Value: p.expect(token.StringLit).Text}

	case token.FloatLit:
		text := p.expect(token.FloatLit).Text
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.emitSemanticError(fmt.Sprintf("invalid float literal '%s'", text))
		}
		return &ast.FloatLiteral{Value: value}

	case token.Minus:
		p.lex.Consume()
		if p.lex.PeekIs(token.FloatLit, 0) {
			text := p.expect(token.FloatLit).Text
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				p.emitSemanticError(fmt.Sprintf("invalid float literal '%s'", text))
			}
			return &ast.FloatLiteral{Value: -value}
		}
		value, _ := p.parseIntValue()
		return &ast.IntLiteral{Value: -value}

	case token.Ampersand, token.Dollar, token.Identifier:
		if p.lex.Peek(0).Kind == token.Identifier && p.lex.PeekIs(token.LParen, 1) {
			nameTok := p.expect(token.Identifier)
			p.validateIdentifier(nameTok.Text)
			name := nameTok.Text
			p.expect(token.LParen)

			var args []ast.Expr
			for !p.lex.PeekIs(token.RParen, 0) {
				args = append(args, p.parseExpression(token.Comma))
				if p.lex.PeekIs(token.Comma, 0) {
					p.lex.Consume()
				}
			}
			p.lex.Consume()

			returnType := p.registry.FunctionReturnType(name)
			if returnType == nil {
				p.emitSemanticError(fmt.Sprintf("call to undefined function '%s'", name))
			}

			if p.currentClassName != "" && strings.Contains(name, "_") {
				prefix := p.currentClassName + "_"
				if strings.HasPrefix(name, prefix) {
					p.emitSemanticError(fmt.Sprintf("cannot call member function '%s' without an instance of the class", name))
				}
			}

			return ast.NewFunctionCall(name, args, returnType.Signed(), returnType)
		}

		if p.lex.Peek(0).Kind == token.Identifier {
			if value, ok := p.registry.IntDef(p.lex.Peek(0).Text); ok {
				p.lex.Consume()
				return &ast.IntLiteral{Value: int64(value)}
			}
		}

		expr, _ := p.parseValue()
		return expr

	case token.LParen:
		p.lex.Consume()
		expr := p.parseExpression(token.RParen)
		p.expect(token.RParen)
		return expr

	default:
		p.emitSyntaxError("unexpected token in expression")
		return nil
	}
}

// parseBinaryOpRHS climbs operator precedence, folding a run of binary
// operators at or above exprPrec into a single left-associative tree.
// terminator marks where the enclosing construct's own delimiter lives;
// inside a call's argument list, a trailing comma is treated the same as
// the terminator so the last argument doesn't swallow the closing paren.
func (p *Parser) parseBinaryOpRHS(exprPrec int, lhs ast.Expr, terminator token.Kind) ast.Expr {
	isTerminator := func() bool {
		k := p.lex.Peek(0).Kind
		if k == terminator {
			return true
		}
		if terminator == token.Comma && k == token.RParen {
			return true
		}
		return false
	}

	for !isTerminator() {
		tokKind := p.lex.Peek(0).Kind

		if tokKind == token.Equals && !p.lex.PeekIs(token.Equals, 1) {
			p.emitSemanticError("variable assignment is not an expression, did you mean '=='?")
		}

		tokPrec := getOperatorPrecedence(tokKind)
		if tokPrec < exprPrec {
			return lhs
		}

		if tokKind == token.Equals {
			p.lex.Consume()
			p.lex.Consume()
		} else {
			p.lex.Consume()
		}

		rhs := p.parsePrimaryExpression(terminator)

		nextKind := p.lex.Peek(0).Kind
		if !isTerminator() {
			if nextKind == token.Equals && !p.lex.PeekIs(token.Equals, 1) {
				// lone '=' immediately after rhs: leave it for the next
				// iteration's own diagnostic rather than recursing into it.
			} else {
				nextPrec := getOperatorPrecedence(nextKind)
				if nextPrec > tokPrec {
					rhs = p.parseBinaryOpRHS(tokPrec+1, rhs, terminator)
				}
			}
		}

		if lhs.Signed() != rhs.Signed() {
			p.emitSemanticError("cannot create binary operation with types of different signedness")
		}

		lhs = ast.NewBinaryOperation(p.tokenToBinaryOp(tokKind), lhs, rhs, lhs.Signed())
	}

	return lhs
}

// parseExpression parses a full expression up to terminator.
func (p *Parser) parseExpression(terminator token.Kind) ast.Expr {
	lhs := p.parsePrimaryExpression(terminator)
	return p.parseBinaryOpRHS(0, lhs, terminator)
}

// ParseExpression parses a single standalone expression consuming the
// whole input, for callers outside this package that only need to check
// expression parsing in isolation (e.g. a literate-fixture harness).
func (p *Parser) ParseExpression() ast.Expr {
	return p.parseExpression(token.EndOfFile)
}
