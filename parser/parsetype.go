package parser

import (
	"github.com/vane-lang/vane/token"
	"github.com/vane-lang/vane/types"
)

// parseType consumes a type expression (leading "ptr" modifiers, a base
// type name, and an optional "[N]" array suffix) and returns the
// resulting Type. It returns nil without consuming anything beyond the
// "ptr" prefixes if the next token does not name a known type — callers
// use this to distinguish "this is a type" from "this is something else"
// without having to look arbitrarily far ahead.
func (p *Parser) parseType() types.Type {
	ptrs := 0
	for p.lex.PeekIs(token.Ptr, 0) {
		ptrs++
		p.lex.Consume()
	}

	base := p.registry.Lookup(p.lex.Peek(0).Text)
	if base == nil {
		return nil
	}
	p.lex.Consume()

	arrayLen := 0
	if p.lex.PeekIs(token.LBracket, 0) {
		p.lex.Consume()
		value, _ := p.parseIntValue()
		arrayLen = int(value)
		p.expect(token.RBracket)
	}

	result := base
	for i := 0; i < ptrs; i++ {
		result = &types.Pointer{Target: result}
	}
	if arrayLen != 0 {
		result = &types.Array{Target: result, Length: arrayLen}
	}
	return result
}

// getNextTypeLength peeks, without consuming, how many tokens the next
// type expression would occupy: used to distinguish a method declaration
// ("<type> <name> (") from a trailing data member ("<type> <name> ;")
// during the second pass of class parsing.
func (p *Parser) getNextTypeLength() int {
	i := 0
	for p.lex.PeekIs(token.Ptr, i) {
		i++
	}
	if p.lex.PeekIs(token.Identifier, i) {
		i++
	}
	if p.lex.PeekIs(token.LBracket, i) {
		i++
		if p.lex.PeekIs(token.IntLit, i) {
			i++
		}
		if p.lex.PeekIs(token.RBracket, i) {
			i++
		}
	}
	return i
}
