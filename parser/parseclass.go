package parser

import (
	"github.com/vane-lang/vane/token"
	"github.com/vane-lang/vane/types"
)

// parseClass parses one class body in two passes, exactly bracketing the
// currently-open "{" ... "}" of a "class Name { ... }" declaration
// (currentClassName is already set and the opening brace already
// consumed by the caller).
//
// The first pass scans only for data members ("<type> <ident> ;"),
// skipping over every method — brace-balancing a method with a body, or
// swallowing a bare ";" for a bodyless one — without attempting to
// resolve or codegen anything inside them: a method may reference a
// sibling data member declared later in the same class, or the class's
// own type recursively (a self-referential pointer field), so the full
// member set must exist before any method is actually parsed. The lexer
// is then rewound and a second pass parses the methods for real, now
// that every field is registered.
func (p *Parser) parseClass() {
	saved := p.lex.Save()

	var members []types.Member
	seen := make(map[string]bool)

	for !p.lex.PeekIs(token.EndOfFile, 0) && !p.lex.PeekIs(token.RBrace, 0) {
		memberType := p.parseType()
		if memberType == nil {
			p.emitSyntaxError("expected a type")
		}
		nameTok := p.expect(token.Identifier)
		p.validateIdentifier(nameTok.Text)

		if !p.lex.PeekIs(token.LParen, 0) {
			p.expect(token.Semi)
			if !seen[nameTok.Text] {
				seen[nameTok.Text] = true
				members = append(members, types.Member{Name: nameTok.Text, Type: memberType})
			}
			continue
		}

		p.skipMethodSignatureAndBody()
	}

	if p.currentClassName != "" {
		if existing, ok := p.registry.Lookup(p.currentClassName).(*types.ClassRef); ok {
			existing.Decl.AddMembers(members)
		} else {
			decl := types.NewDecl(p.currentClassName)
			decl.AddMembers(members)
			p.registry.RegisterClass(decl)
		}
	}

	p.lex.Restore(saved)
	p.parseFunctions()
}

// skipMethodSignatureAndBody consumes a method's parameter list and body
// (or trailing ";" for a bodyless declaration) during the first,
// members-only pass. The type and name have already been consumed by
// the caller.
func (p *Parser) skipMethodSignatureAndBody() {
	p.expect(token.LParen)
	for !p.lex.PeekIs(token.RParen, 0) {
		if !p.lex.PeekIs(token.RParen, 0) && !p.lex.PeekIs(token.Comma, 0) {
			p.parseType()
			nameTok := p.expect(token.Identifier)
			p.validateIdentifier(nameTok.Text)
		}
		if p.lex.PeekIs(token.Comma, 0) {
			p.lex.Consume()
		}
	}
	p.expect(token.RParen)

	if p.lex.PeekIs(token.LBrace, 0) {
		p.lex.Consume()
		depth := 1
		for depth > 0 && !p.lex.PeekIs(token.EndOfFile, 0) {
			switch p.lex.Peek(0).Kind {
			case token.LBrace:
				depth++
			case token.RBrace:
				depth--
			}
			p.lex.Consume()
		}
	} else {
		p.expect(token.Semi)
	}
}

// parseFunctions runs the second pass over a class body: every data
// member (now fully resolvable from the first pass) is skipped, and
// every method is parsed for real via parseFunction.
func (p *Parser) parseFunctions() {
	for !p.lex.PeekIs(token.EndOfFile, 0) && !p.lex.PeekIs(token.RBrace, 0) {
		if p.lex.PeekIs(token.Typedef, 0) {
			p.lex.Consume()
		}

		if p.lex.PeekIs(token.LParen, p.getNextTypeLength()+1) {
			fn := p.parseFunction()
			p.functions = append(p.functions, fn)
			continue
		}

		// a data member already recorded by the first pass: skip it.
		p.parseType()
		p.expect(token.Identifier)
		p.expect(token.Semi)
	}
}
