package parser

import (
	"fmt"
	"path/filepath"

	"github.com/vane-lang/vane/lexer"
	"github.com/vane-lang/vane/token"
)

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// processImports recursively resolves every leading "import "path";"
// statement in the current file, in source order, before any other
// top-level construct is parsed. Each imported file has its own imports
// processed first (depth-first), and a canonical-path dedup set makes
// importing the same file twice — directly or via a cycle — a no-op on
// the second occurrence.
func (p *Parser) processImports() error {
	savedLex := p.lex
	savedFileName := p.currentFileName

	for !p.lex.PeekIs(token.EndOfFile, 0) {
		if !p.lex.PeekIs(token.Import, 0) {
			break
		}
		p.lex.Consume()

		importText := p.expect(token.StringLit).Text
		p.expect(token.Semi)

		importPath := importText
		if !filepath.IsAbs(importPath) && savedFileName != "" {
			importPath = filepath.Join(filepath.Dir(savedFileName), importPath)
		}

		canon, err := canonicalPath(importPath)
		if err != nil {
			p.emitSemanticError(fmt.Sprintf("cannot import nonexistent file: '%s'", importText))
			return err
		}

		if p.importedFiles[canon] {
			continue
		}
		p.importedFiles[canon] = true

		src, err := p.readFile(importPath)
		if err != nil {
			p.emitSemanticError(fmt.Sprintf("cannot import nonexistent file: '%s'", importText))
			return err
		}

		p.lex = lexer.New(src)
		p.currentFileName = canon

		if err := p.processImports(); err != nil {
			return err
		}
		if err := p.parseFile(); err != nil {
			return err
		}

		p.lex = savedLex
		p.currentFileName = savedFileName
	}

	return nil
}

// parseFile consumes every top-level construct in the current lexer's
// stream: leading imports are skipped (already consumed by
// processImports, but a defensive re-check remains here exactly as in the
// original so a stray import deeper in the file is still swallowed
// harmlessly), typedef and intdef bind names in the registry, class opens
// two-pass class parsing, and anything else is a detached function.
func (p *Parser) parseFile() error {
	for !p.lex.PeekIs(token.EndOfFile, 0) {
		switch p.lex.Peek(0).Kind {
		case token.Import:
			p.lex.Consume()
			p.expect(token.StringLit)
			p.expect(token.Semi)

		case token.Typedef:
			p.lex.Consume()
			alias := p.expect(token.Identifier).Text
			target := p.expect(token.Identifier).Text
			p.registry.InsertAlias(alias, target)
			p.expect(token.Semi)

		case token.Intdef:
			p.lex.Consume()
			alias := p.expect(token.Identifier).Text
			value, _ := p.parseIntValue()
			p.registry.InsertIntDef(alias, int(value))
			p.expect(token.Semi)

		case token.Class:
			p.lex.Consume()
			nameTok := p.expect(token.Identifier)
			p.validateIdentifier(nameTok.Text)
			p.currentClassName = nameTok.Text
			p.expect(token.LBrace)
			p.parseClass()
			p.expect(token.RBrace)
			p.currentClassName = ""

		default:
			fn := p.parseFunction()
			p.functions = append(p.functions, fn)
		}
	}
	return nil
}
