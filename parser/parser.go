// Package parser implements the recursive-descent, Pratt-fused parser that
// simultaneously builds the typed AST, resolves names and types, and
// desugars method calls into plain function calls. It is a direct
// translation of the two-pass, lexer-snapshotting parser this front end's
// specification describes.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/vane-lang/vane/ast"
	"github.com/vane-lang/vane/diag"
	"github.com/vane-lang/vane/lexer"
	"github.com/vane-lang/vane/scope"
	"github.com/vane-lang/vane/token"
	"github.com/vane-lang/vane/types"
)

// Parser holds all state threaded through parsing a root file and every
// file it transitively imports: the active lexer (swapped per imported
// file and restored afterward), the type/intdef/function-return registry,
// the variable scope stack, and the accumulated class and function lists.
type Parser struct {
	lex *lexer.Lexer

	currentClassName string
	currentFileName  string

	registry *types.Registry
	scopes   *scope.Stack[types.Type]

	functions []*ast.FunctionDecl

	importedFiles map[string]bool

	// readFile loads an imported file's contents; overridable in tests so
	// imports can be resolved against an in-memory filesystem instead of
	// the real one.
	readFile func(path string) (string, error)
}

// DefaultReadFile is the production readFile: plain os.ReadFile, for use by
// New when a parser should resolve imports against the real filesystem.
func DefaultReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// New returns a Parser ready to parse rootSource as if it were read from
// rootFileName (used to resolve relative imports and to label
// diagnostics). rootFileName may be empty for a parser that never follows
// imports (e.g. parsing a single expression fixture in a test).
func New(rootSource, rootFileName string, readFile func(string) (string, error)) *Parser {
	return &Parser{
		lex:             lexer.New(rootSource),
		currentFileName: rootFileName,
		registry:        types.NewRegistry(),
		scopes:          scope.New[types.Type](),
		importedFiles:   make(map[string]bool),
		readFile:        readFile,
	}
}

// Registry exposes the type/intdef registry, primarily for tests that want
// to assert on registered class shapes without a full Program.
func (p *Parser) Registry() *types.Registry { return p.registry }

// Program parses the root file (and, transitively, everything it imports)
// and returns the assembled program: every class declaration and every
// function/method in first-encounter order.
func (p *Parser) Program() (*ast.Program, error) {
	if p.currentFileName != "" {
		if abs, err := canonicalPath(p.currentFileName); err == nil {
			p.importedFiles[abs] = true
		}
	}

	if err := p.processImports(); err != nil {
		return nil, err
	}
	if err := p.parseFile(); err != nil {
		return nil, err
	}

	return &ast.Program{Classes: p.registry.Classes(), Functions: p.functions}, nil
}

// expect consumes the next token if it has kind k, else reports a fatal
// syntax error naming what was expected and what was actually found.
func (p *Parser) expect(k token.Kind) token.Token {
	tok := p.lex.Peek(0)
	if tok.Kind != k {
		p.emitSyntaxError(fmt.Sprintf("expected %s, found %s", k, tok.Kind))
	}
	return p.lex.Consume()
}

// validateIdentifier rejects identifiers containing an underscore: method
// names are mangled as "<Class>_<method>" at parse time, and a
// user-written identifier containing '_' could collide with or be
// mistaken for a mangled method name.
func (p *Parser) validateIdentifier(name string) {
	if strings.Contains(name, "_") {
		p.emitSemanticError(fmt.Sprintf("identifier '%s' cannot contain an underscore", name))
	}
}

func (p *Parser) emitSyntaxError(msg string) {
	p.report(diag.Syntax, msg)
}

func (p *Parser) emitSemanticError(msg string) {
	p.report(diag.Semantic, msg)
}

func (p *Parser) report(kind diag.Kind, msg string) {
	tok := p.lex.Peek(0)
	diag.Report(kind, msg, &diag.Location{
		File:      p.currentFileName,
		Class:     p.currentClassName,
		Row:       tok.Row,
		Col:       tok.Col,
		TokenText: tok.Text,
	})
}

func (p *Parser) pushScope() { p.scopes.Push() }
func (p *Parser) popScope()  { p.scopes.Pop() }

func (p *Parser) indexVariableType(name string, t types.Type) {
	p.scopes.Declare(name, t)
}

func (p *Parser) lookupVariableType(name string) types.Type {
	t, _ := p.scopes.Lookup(name)
	return t
}
