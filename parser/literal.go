package parser

import (
	"fmt"
	"strconv"

	"github.com/vane-lang/vane/token"
)

// parseIntLiteral parses an integer literal's text, hex-aware: a leading
// "0x"/"0X" parses as base 16, everything else as base 10.
func parseIntLiteral(text string) (int64, error) {
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return strconv.ParseInt(text[2:], 16, 64)
	}
	return strconv.ParseInt(text, 10, 64)
}

// parseIntValue consumes one integer literal, fusing a leading "0"
// IntLit with an immediately-adjacent "x1A"-shaped Identifier into a
// single hex literal. The lexer only ever scans decimal digit runs, so
// "0x1A" comes off the lexer as IntLit("0") followed directly by
// Identifier("x1A") — hex recognition is therefore a parser-level
// concern, applied uniformly at every integer-literal call site
// (intdef bindings, primary expressions, array lengths).
func (p *Parser) parseIntValue() (int64, token.Token) {
	intTok := p.expect(token.IntLit)

	if intTok.Text == "0" {
		next := p.lex.Peek(0)
		if next.Kind == token.Identifier && len(next.Text) > 0 &&
			(next.Text[0] == 'x' || next.Text[0] == 'X') &&
			next.Row == intTok.Row && next.Col == intTok.Col+len(intTok.Text) {
			p.lex.Consume()
			value, err := parseIntLiteral("0" + next.Text)
			if err != nil {
				p.emitSemanticError("invalid hexadecimal integer literal")
			}
			return value, intTok
		}
	}

	value, err := parseIntLiteral(intTok.Text)
	if err != nil {
		p.emitSemanticError(fmt.Sprintf("invalid integer literal '%s'", intTok.Text))
	}
	return value, intTok
}
