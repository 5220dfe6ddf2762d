package parser

import (
	"fmt"

	"github.com/vane-lang/vane/ast"
	"github.com/vane-lang/vane/token"
	"github.com/vane-lang/vane/types"
)

// parseValue parses an l-value/value expression: a variable or implicit
// "this" member access, any number of prefix "$" dereferences, a chain of
// postfix "." member accesses (desugaring a trailing method call into a
// FunctionCall with the receiver's address spliced in as the first
// argument) and "[...]" subscripts, and an optional leading "&"
// address-of wrapping the whole chain. It returns the built expression
// together with its derived type, so callers performing assignment or
// further type-directed decisions don't have to re-derive it.
func (p *Parser) parseValue() (ast.Expr, types.Type) {
	drefs := 0
	for p.lex.PeekIs(token.Dollar, 0) {
		drefs++
		p.lex.Consume()
	}

	addressOf := false
	if p.lex.PeekIs(token.Ampersand, 0) {
		addressOf = true
		p.lex.Consume()
	}

	nameTok := p.expect(token.Identifier)
	p.validateIdentifier(nameTok.Text)
	name := nameTok.Text

	var target ast.Expr
	derivedType := p.lookupVariableType(name)

	if derivedType != nil {
		target = ast.NewVariableReference(name, derivedType.Signed())
	} else {
		thisType := p.lookupVariableType("this")
		if thisPtr, ok := thisType.(*types.Pointer); ok {
			if classRef, ok := thisPtr.Target.(*types.ClassRef); ok {
				if fieldType := classRef.Decl.MemberType(name); fieldType != nil {
					thisRef := ast.NewVariableReference("this", thisType.Signed())
					derefThis := ast.NewDereference(thisRef, thisPtr.Target, thisPtr.Target.Signed())
					target = ast.NewStructAccess(derefThis, name, classRef.Decl.Name, fieldType.Signed(), classRef)
					derivedType = fieldType
				}
			}
		}

		if derivedType == nil {
			p.emitSemanticError(fmt.Sprintf("undefined variable '%s'", name))
		}
	}

	for i := 0; i < drefs; i++ {
		ptrType, ok := derivedType.(*types.Pointer)
		if !ok {
			p.emitSemanticError("cannot dereference non-pointer type")
		}
		derivedType = ptrType.Target
		target = ast.NewDereference(target, derivedType, derivedType.Signed())
	}

	for {
		if p.lex.PeekIs(token.Period, 0) {
			p.lex.Consume()

			structRef, ok := derivedType.(*types.ClassRef)
			if !ok {
				if ptrType, isPtr := derivedType.(*types.Pointer); isPtr {
					if sr, isStruct := ptrType.Target.(*types.ClassRef); isStruct {
						structRef = sr
						ok = true
						derivedType = ptrType.Target
						target = ast.NewDereference(target, derivedType, derivedType.Signed())
					}
				}
			}
			if !ok {
				p.emitSemanticError("cannot access member of non-struct type")
			}

			memDrefs := 0
			for p.lex.PeekIs(token.Dollar, 0) {
				memDrefs++
				p.lex.Consume()
			}

			fieldTok := p.expect(token.Identifier)
			p.validateIdentifier(fieldTok.Text)
			fieldName := fieldTok.Text

			if p.lex.PeekIs(token.LParen, 0) {
				methodName := structRef.Decl.Name + "_" + fieldName
				p.lex.Consume()

				args := []ast.Expr{ast.NewAddressOf(target, derivedType.Signed())}
				for !p.lex.PeekIs(token.RParen, 0) {
					args = append(args, p.parseExpression(token.Comma))
					if p.lex.PeekIs(token.Comma, 0) {
						p.lex.Consume()
					}
				}
				p.lex.Consume()

				returnType := p.registry.FunctionReturnType(methodName)
				if returnType == nil {
					p.emitSemanticError(fmt.Sprintf("call to undefined member method '%s'", methodName))
				}

				call := ast.NewFunctionCall(methodName, args, returnType.Signed(), returnType)
				return call, returnType
			}

			fieldType := structRef.Decl.MemberType(fieldName)
			if fieldType == nil {
				p.emitSemanticError(fmt.Sprintf("struct '%s' has no member '%s'", structRef.Decl.Name, fieldName))
			}

			target = ast.NewStructAccess(target, fieldName, structRef.Decl.Name, fieldType.Signed(), structRef)
			derivedType = fieldType

			for i := 0; i < memDrefs; i++ {
				ptrType, ok := derivedType.(*types.Pointer)
				if !ok {
					p.emitSemanticError("cannot dereference non-pointer type")
				}
				derivedType = ptrType.Target
				target = ast.NewDereference(target, derivedType, derivedType.Signed())
			}
		} else if p.lex.PeekIs(token.LBracket, 0) {
			memDrefs := 0
			for p.lex.PeekIs(token.Dollar, 0) {
				memDrefs++
				p.lex.Consume()
			}

			p.lex.Consume()

			arrayType, isArray := derivedType.(*types.Array)
			ptrType, isPtr := derivedType.(*types.Pointer)

			if !isArray && !isPtr {
				p.emitSemanticError("cannot apply subscript operator to non-array/non-pointer type")
			}

			index := p.parseExpression(token.RBracket)
			p.expect(token.RBracket)

			if isArray {
				target = ast.NewArrayAccess(target, index, arrayType.Target.Signed(), arrayType)
				derivedType = arrayType.Target
			} else {
				target = ast.NewPtrIndexAccess(target, index, ptrType.Target.Signed(), ptrType)
				derivedType = ptrType.Target
			}

			for i := 0; i < memDrefs; i++ {
				pt, ok := derivedType.(*types.Pointer)
				if !ok {
					p.emitSemanticError("cannot dereference non-pointer type")
				}
				derivedType = pt.Target
				target = ast.NewDereference(target, derivedType, derivedType.Signed())
			}
		} else {
			break
		}
	}

	if addressOf {
		target = ast.NewAddressOf(target, derivedType.Signed())
	}

	return target, derivedType
}
