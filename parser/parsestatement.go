package parser

import (
	"github.com/vane-lang/vane/ast"
	"github.com/vane-lang/vane/token"
)

// parseStatement parses one statement: return, if/else, while, a
// variable declaration (with optional initializer), a detached function
// call used as a statement, a method call used as a statement, or an
// assignment to an l-value.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.lex.Peek(0).Kind {
	case token.Return:
		p.lex.Consume()
		if p.lex.PeekIs(token.Semi, 0) {
			p.lex.Consume()
			return &ast.Return{Value: nil}
		}
		value := p.parseExpression(token.Semi)
		p.expect(token.Semi)
		return &ast.Return{Value: value}

	case token.If:
		p.lex.Consume()
		p.expect(token.LParen)
		condition := p.parseExpression(token.RParen)
		p.expect(token.RParen)
		p.expect(token.LBrace)

		var trueBody []ast.Stmt
		var falseBody []ast.Stmt

		for !p.lex.PeekIs(token.Else, 0) && !p.lex.PeekIs(token.RBrace, 0) {
			trueBody = append(trueBody, p.parseStatement())
		}
		p.expect(token.RBrace)

		if p.lex.PeekIs(token.Else, 0) {
			p.lex.Consume()
			p.expect(token.LBrace)
			falseBody = []ast.Stmt{}
			for !p.lex.PeekIs(token.RBrace, 0) {
				falseBody = append(falseBody, p.parseStatement())
			}
			p.expect(token.RBrace)
		}

		return &ast.If{Condition: condition, TrueBody: trueBody, FalseBody: falseBody}

	case token.While:
		p.lex.Consume()
		p.expect(token.LParen)
		condition := p.parseExpression(token.RParen)
		p.expect(token.RParen)
		p.expect(token.LBrace)

		var body []ast.Stmt
		for !p.lex.PeekIs(token.RBrace, 0) {
			body = append(body, p.parseStatement())
		}
		p.expect(token.RBrace)

		return &ast.While{Condition: condition, Body: body}
	}

	declType := p.parseType()
	if declType != nil {
		nameTok := p.expect(token.Identifier)
		p.validateIdentifier(nameTok.Text)
		name := nameTok.Text

		var initial ast.Expr
		if p.lex.PeekIs(token.Equals, 0) {
			p.lex.Consume()
			initial = p.parseExpression(token.Semi)
		}
		p.expect(token.Semi)

		p.indexVariableType(name, declType)

		return &ast.VariableDeclaration{Type: declType, Name: name, Initial: initial}
	}

	if p.lex.PeekIs(token.Identifier, 0) && p.lex.PeekIs(token.LParen, 1) {
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
		p.expect(token.Semi)

		returnType := p.registry.FunctionReturnType(name)
		if returnType == nil {
			p.emitSemanticError("call to undefined function '" + name + "'")
		}

		call := ast.NewFunctionCall(name, args, returnType.Signed(), returnType)
		return &ast.ExpressionStatement{Expression: call}
	}

	target, _ := p.parseValue()

	if call, ok := target.(*ast.FunctionCall); ok {
		p.expect(token.Semi)
		return &ast.ExpressionStatement{Expression: call}
	}

	p.expect(token.Equals)
	newValue := p.parseExpression(token.Semi)
	p.expect(token.Semi)

	lvalue, ok := target.(ast.LValue)
	if !ok {
		p.emitSemanticError("left-hand side of assignment is not assignable")
	}

	return &ast.AssignmentStatement{Target: lvalue, Value: newValue}
}
