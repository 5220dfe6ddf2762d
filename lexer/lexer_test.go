package lexer

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/vane-lang/vane/token"
)

func TestIntAndFloatLiterals(t *testing.T) {
	l := New("123 4.5")
	be.Equal(t, l.Peek(0).Kind, token.IntLit)
	be.Equal(t, l.Peek(0).Text, "123")
	be.Equal(t, l.Peek(1).Kind, token.FloatLit)
	be.Equal(t, l.Peek(1).Text, "4.5")
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	l := New("class ptr myVar")
	be.Equal(t, l.Consume().Kind, token.Class)
	be.Equal(t, l.Consume().Kind, token.Ptr)
	tok := l.Consume()
	be.Equal(t, tok.Kind, token.Identifier)
	be.Equal(t, tok.Text, "myVar")
}

func TestStringLiteralEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\\"`)
	tok := l.Consume()
	be.Equal(t, tok.Kind, token.StringLit)
	be.Equal(t, tok.Text, "a\nb\t\"c\\")
}

func TestCommentsAndWhitespaceAreSkipped(t *testing.T) {
	l := New("x // comment\n y")
	be.Equal(t, l.Consume().Text, "x")
	be.Equal(t, l.Consume().Text, "y")
}

func TestEndOfFile(t *testing.T) {
	l := New("")
	be.Equal(t, l.Peek(0).Kind, token.EndOfFile)
	be.Equal(t, l.Peek(5).Kind, token.EndOfFile)
}

func TestSaveRestoreIsIdempotent(t *testing.T) {
	l := New("a b c")
	l.Consume()
	saved := l.Save()

	first := l.Consume()
	second := l.Consume()

	l.Restore(saved)
	firstAgain := l.Consume()
	secondAgain := l.Consume()

	be.Equal(t, first.Text, firstAgain.Text)
	be.Equal(t, second.Text, secondAgain.Text)
}

func TestPeekIsDoesNotConsume(t *testing.T) {
	l := New("class Foo")
	be.True(t, l.PeekIs(token.Class, 0))
	be.True(t, l.PeekIs(token.Identifier, 1))
	be.Equal(t, l.Consume().Kind, token.Class)
}
