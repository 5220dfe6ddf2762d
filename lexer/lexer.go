// Package lexer tokenizes vane source text into a stream of token.Token
// values, with unbounded lookahead and reversible state snapshots so the
// parser can skim ahead (two-pass class parsing) and rewind.
package lexer

import (
	"github.com/vane-lang/vane/diag"
	"github.com/vane-lang/vane/token"
)

// Lexer turns source bytes into tokens on demand. Unlike a simple one-token
// lookahead scanner, it buffers an arbitrary-length queue of already-lexed
// tokens so Peek can look any distance ahead without consuming, and State
// captures enough to rewind the whole lexer to an earlier point.
type Lexer struct {
	src    string
	cursor int

	lookahead []token.Token

	row int
	col int
}

// New returns a Lexer over src. Row/column numbering starts at 1.
func New(src string) *Lexer {
	return &Lexer{src: src, row: 1, col: 1}
}

// State is a snapshot of a Lexer's full position, returned by Save and
// accepted by Restore. It is a value type: Restore never aliases the
// lexer's live lookahead queue with a saved one.
type State struct {
	cursor    int
	lookahead []token.Token
	row       int
	col       int
}

// Save captures the lexer's current position for later Restore.
func (l *Lexer) Save() State {
	queued := make([]token.Token, len(l.lookahead))
	copy(queued, l.lookahead)
	return State{cursor: l.cursor, lookahead: queued, row: l.row, col: l.col}
}

// Restore rewinds the lexer to a previously captured State.
func (l *Lexer) Restore(s State) {
	l.cursor = s.cursor
	l.lookahead = make([]token.Token, len(s.lookahead))
	copy(l.lookahead, s.lookahead)
	l.row = s.row
	l.col = s.col
}

// Peek returns the token offset positions ahead of the current one without
// consuming anything. Peek(0) is the next token to be consumed.
func (l *Lexer) Peek(offset int) token.Token {
	for len(l.lookahead) <= offset {
		l.lookahead = append(l.lookahead, l.scan())
	}
	return l.lookahead[offset]
}

// PeekIs reports whether the token offset positions ahead has the given
// kind.
func (l *Lexer) PeekIs(k token.Kind, offset int) bool {
	return l.Peek(offset).Kind == k
}

// Consume returns and removes the next token from the stream.
func (l *Lexer) Consume() token.Token {
	if len(l.lookahead) == 0 {
		l.lookahead = append(l.lookahead, l.scan())
	}
	tok := l.lookahead[0]
	l.lookahead = l.lookahead[1:]
	return tok
}

func (l *Lexer) peekChar(offset int) byte {
	i := l.cursor + offset
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) atEOF(offset int) bool {
	return l.cursor+offset >= len(l.src)
}

func (l *Lexer) consumeChar() byte {
	c := l.src[l.cursor]
	l.cursor++
	if c == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool  { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isAlnum(c byte) bool  { return isAlpha(c) || isDigit(c) || c == '_' }
func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// scan lexes and returns exactly one token from the current cursor
// position, advancing the cursor past it. Whitespace and comments are
// skipped transparently. An invalid character or an unterminated string
// literal is a fatal diagnostic (diag.Fatalf), matching the original
// implementation's terminate-on-first-error lexing policy.
func (l *Lexer) scan() token.Token {
	for !l.atEOF(0) {
		c := l.peekChar(0)

		if isSpace(c) {
			l.consumeChar()
			continue
		}

		if c == '/' && !l.atEOF(1) {
			if l.peekChar(1) == '/' {
				l.consumeChar()
				l.consumeChar()
				for !l.atEOF(0) && l.peekChar(0) != '\n' {
					l.consumeChar()
				}
				continue
			}
			if l.peekChar(1) == '*' {
				l.consumeChar()
				l.consumeChar()
				for !l.atEOF(1) {
					if l.peekChar(0) == '*' && l.peekChar(1) == '/' {
						l.consumeChar()
						l.consumeChar()
						break
					}
					l.consumeChar()
				}
				continue
			}
		}

		row, col := l.row, l.col

		if kind, ok := token.Symbols[c]; ok {
			l.consumeChar()
			return token.Token{Kind: kind, Text: string(c), Row: row, Col: col}
		}

		if isDigit(c) {
			start := l.cursor
			for !l.atEOF(0) && isDigit(l.peekChar(0)) {
				l.consumeChar()
			}
			kind := token.IntLit
			if !l.atEOF(0) && l.peekChar(0) == '.' {
				l.consumeChar()
				for !l.atEOF(0) && isDigit(l.peekChar(0)) {
					l.consumeChar()
					kind = token.FloatLit
				}
			}
			return token.Token{Kind: kind, Text: l.src[start:l.cursor], Row: row, Col: col}
		}

		if c == '"' {
			l.consumeChar()
			var content []byte
			for !l.atEOF(0) && l.peekChar(0) != '"' {
				if l.peekChar(0) == '\\' && !l.atEOF(1) {
					l.consumeChar()
					escaped := l.consumeChar()
					switch escaped {
					case 'n':
						content = append(content, '\n')
					case 't':
						content = append(content, '\t')
					case '"':
						content = append(content, '"')
					case '\\':
						content = append(content, '\\')
					default:
						content = append(content, escaped)
					}
				} else {
					content = append(content, l.consumeChar())
				}
			}
			if l.atEOF(0) {
				diag.Fatalf(diag.Syntax, "unterminated string literal")
			}
			l.consumeChar()
			return token.Token{Kind: token.StringLit, Text: string(content), Row: row, Col: col}
		}

		if isAlpha(c) || c == '_' {
			start := l.cursor
			for !l.atEOF(0) && isAlnum(l.peekChar(0)) {
				l.consumeChar()
			}
			text := l.src[start:l.cursor]
			kind := token.Identifier
			if kw, ok := token.Keywords[text]; ok {
				kind = kw
			}
			return token.Token{Kind: kind, Text: text, Row: row, Col: col}
		}

		diag.Fatalf(diag.Syntax, "invalid character found during lexing: '%c'", c)
	}
	return token.Token{Kind: token.EndOfFile, Row: l.row, Col: l.col}
}
