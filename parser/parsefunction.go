package parser

import (
	"github.com/vane-lang/vane/ast"
	"github.com/vane-lang/vane/token"
	"github.com/vane-lang/vane/types"
)

// parseFunction parses one free function or method declaration: its
// return type, name (mangled to "<Class>_<name>" for a method), its
// parameter list (with a synthetic leading "this" pointer parameter
// spliced in for methods), and its body if one is present. A method
// body is optional — a function can be forward-declared with just
// "<type> name(...);".
func (p *Parser) parseFunction() *ast.FunctionDecl {
	isDetached := p.currentClassName == ""

	returnType := p.parseType()
	if returnType == nil {
		p.emitSyntaxError("expected a return type")
	}

	nameTok := p.expect(token.Identifier)
	p.validateIdentifier(nameTok.Text)

	name := nameTok.Text
	if !isDetached {
		name = p.currentClassName + "_" + nameTok.Text
	}

	p.expect(token.LParen)

	var params []ast.Param

	if !isDetached {
		if thisType := p.registry.Lookup(p.currentClassName); thisType != nil {
			params = append(params, ast.Param{Name: "this", Type: &types.Pointer{Target: thisType}})
		}
	}

	for !p.lex.PeekIs(token.RParen, 0) {
		paramType := p.parseType()
		if paramType == nil {
			p.emitSyntaxError("expected a parameter type")
		}
		paramTok := p.expect(token.Identifier)
		p.validateIdentifier(paramTok.Text)

		params = append(params, ast.Param{Name: paramTok.Text, Type: paramType})

		if p.lex.PeekIs(token.Comma, 0) {
			p.lex.Consume()
		}
	}
	p.expect(token.RParen)

	p.registry.SetFunctionReturnType(name, returnType)

	var body []ast.Stmt
	if p.lex.Consume().Kind == token.LBrace {
		body = []ast.Stmt{}

		p.pushScope()
		for _, param := range params {
			p.indexVariableType(param.Name, param.Type)
		}

		for !p.lex.PeekIs(token.RBrace, 0) {
			body = append(body, p.parseStatement())
		}
		p.expect(token.RBrace)

		p.popScope()
	}

	return &ast.FunctionDecl{
		Name:     name,
		Type:     returnType,
		Params:   params,
		Body:     body,
		Public:   true,
		Detached: isDetached,
	}
}
