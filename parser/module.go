/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"github.com/krotik/ecmaparse/ast"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/token"
)

// The Module Syntax Handler (spec.md §4.6): import declarations (side
// effect, default, namespace, named, combined) and export declarations
// (local, default, re-export forms). parseItem only reaches these
// functions at module top level, outside any function or statement
// nesting.

/*
parseImportDeclaration parses every import form:

	import "mod"
	import Default from "mod"
	import * as NS from "mod"
	import { a, b as c } from "mod"
	import Default, * as NS from "mod"
	import Default, { a, b as c } from "mod"
*/
func (p *Parser) parseImportDeclaration() (*ast.Node, error) {
	kw, _ := p.buf.Consume() // import
	n := ast.New(ast.ImportDeclaration, kw.Pos)

	if p.buf.Peek().Kind == token.STRING {
		src := p.buf.Peek()
		p.buf.Consume()
		n.SetField("source", src.StringValue)
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return n, nil
	}

	var specifiers []*ast.Node

	if isBindingIdentifierStart(p.buf.Peek().Kind) {
		tok := p.buf.Peek()
		p.buf.Consume()
		name := identifierName(tok)
		if _, err := p.defineSymbol(bindConst, name, tok.Pos); err != nil {
			return nil, err
		}
		local := ast.New(ast.Identifier, tok.Pos)
		local.SetField("name", name)
		spec := ast.New(ast.ImportDefaultSpecifier, tok.Pos)
		spec.AddChild(local)
		specifiers = append(specifiers, spec)

		if p.buf.Peek().Kind == token.COMMA {
			p.buf.Consume()
		} else {
			return p.finishImportDeclaration(n, specifiers)
		}
	}

	if p.buf.Peek().Kind == token.STAR {
		star, _ := p.buf.Consume()
		if _, err := p.expectContextual(token.AS, "as"); err != nil {
			return nil, err
		}
		tok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		name := identifierName(tok)
		if _, err := p.defineSymbol(bindConst, name, tok.Pos); err != nil {
			return nil, err
		}
		local := ast.New(ast.Identifier, tok.Pos)
		local.SetField("name", name)
		spec := ast.New(ast.ImportNamespaceSpecifier, star.Pos)
		spec.AddChild(local)
		specifiers = append(specifiers, spec)
		return p.finishImportDeclaration(n, specifiers)
	}

	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	for p.buf.Peek().Kind != token.RBRACE {
		specTok := p.buf.Peek()
		if !isPropertyKeyStart(specTok.Kind) {
			return nil, p.fatalAt(perr.ErrUnexpectedToken, "expected import binding", specTok.Pos)
		}
		importedTok, err := p.anyIdentifierName()
		if err != nil {
			return nil, err
		}
		imported := ast.New(ast.Identifier, importedTok.Pos)
		imported.SetField("name", identifierName(importedTok))

		localTok := importedTok
		if p.buf.Peek().Kind == token.AS {
			p.buf.Consume()
			localTok, err = p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
		}
		localName := identifierName(localTok)
		if _, err := p.defineSymbol(bindConst, localName, localTok.Pos); err != nil {
			return nil, err
		}
		local := ast.New(ast.Identifier, localTok.Pos)
		local.SetField("name", localName)

		spec := ast.New(ast.ImportSpecifier, importedTok.Pos)
		spec.SetField("imported", imported)
		spec.AddChild(local)
		specifiers = append(specifiers, spec)

		if ok, err := p.buf.Match(token.COMMA); err != nil {
			return nil, err
		} else if !ok {
			break
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}

	return p.finishImportDeclaration(n, specifiers)
}

func (p *Parser) finishImportDeclaration(n *ast.Node, specifiers []*ast.Node) (*ast.Node, error) {
	if _, err := p.expectContextual(token.FROM, "from"); err != nil {
		return nil, err
	}
	src, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	n.SetField("source", src.StringValue)
	for _, s := range specifiers {
		n.AddChild(s)
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return n, nil
}

/*
parseExportDeclaration parses every export form:

	export VariableStatement | FunctionDeclaration | ClassDeclaration
	export default AssignmentExpression | FunctionDeclaration | ClassDeclaration
	export { a, b as c } [from "mod"]
	export * from "mod"
	export * as ns from "mod"
*/
func (p *Parser) parseExportDeclaration() (*ast.Node, error) {
	kw, _ := p.buf.Consume() // export

	if p.buf.Peek().Kind == token.DEFAULT {
		p.buf.Consume()
		n := ast.New(ast.ExportDefaultDeclaration, kw.Pos)

		switch p.buf.Peek().Kind {
		case token.FUNCTION:
			decl, err := p.parseFunctionDeclaration(false)
			if err != nil {
				return nil, err
			}
			n.AddChild(decl)
			return n, nil
		case token.CLASS:
			decl, err := p.parseClassDeclaration()
			if err != nil {
				return nil, err
			}
			n.AddChild(decl)
			return n, nil
		case token.ASYNC:
			if p.isAsyncFunctionStart() {
				p.buf.Consume()
				decl, err := p.parseFunctionDeclaration(true)
				if err != nil {
					return nil, err
				}
				n.AddChild(decl)
				return n, nil
			}
		}

		expr, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		n.AddChild(expr)
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return n, nil
	}

	if p.buf.Peek().Kind == token.STAR {
		p.buf.Consume()
		n := ast.New(ast.ExportAllDeclaration, kw.Pos)
		if p.buf.Peek().Kind == token.AS {
			p.buf.Consume()
			tok, err := p.expect(token.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			ns := ast.New(ast.Identifier, tok.Pos)
			ns.SetField("name", identifierName(tok))
			n.SetField("exported", ns)
		}
		if _, err := p.expectContextual(token.FROM, "from"); err != nil {
			return nil, err
		}
		src, err := p.expect(token.STRING)
		if err != nil {
			return nil, err
		}
		n.SetField("source", src.StringValue)
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return n, nil
	}

	if p.buf.Peek().Kind == token.LBRACE {
		p.buf.Consume()
		n := ast.New(ast.ExportNamedDeclaration, kw.Pos)

		for p.buf.Peek().Kind != token.RBRACE {
			localTok, err := p.anyIdentifierName()
			if err != nil {
				return nil, err
			}
			local := ast.New(ast.Identifier, localTok.Pos)
			local.SetField("name", identifierName(localTok))

			exportedTok := localTok
			if p.buf.Peek().Kind == token.AS {
				p.buf.Consume()
				exportedTok, err = p.anyIdentifierName()
				if err != nil {
					return nil, err
				}
			}
			exported := ast.New(ast.Identifier, exportedTok.Pos)
			exported.SetField("name", identifierName(exportedTok))

			spec := ast.New(ast.ExportSpecifier, localTok.Pos)
			spec.AddChild(local)
			spec.SetField("exported", exported)
			n.AddChild(spec)

			if ok, err := p.buf.Match(token.COMMA); err != nil {
				return nil, err
			} else if !ok {
				break
			}
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}

		if p.buf.Peek().Kind == token.FROM {
			p.buf.Consume()
			src, err := p.expect(token.STRING)
			if err != nil {
				return nil, err
			}
			n.SetField("source", src.StringValue)
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return n, nil
	}

	n := ast.New(ast.ExportNamedDeclaration, kw.Pos)
	decl, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	n.AddChild(decl)
	return n, nil
}

/*
expectContextual consumes the current token if it is the contextual
keyword k spelled name, reporting an unexpected-token error otherwise.
*/
func (p *Parser) expectContextual(k token.Kind, name string) (token.Token, error) {
	cur := p.buf.Peek()
	if cur.Kind != k {
		return cur, p.fatalAt(perr.ErrUnexpectedToken, "expected '"+name+"'", cur.Pos)
	}
	return p.buf.Consume()
}

/*
anyIdentifierName consumes any identifier-shaped token, including
reserved and contextual keywords, as used by module binding names
(`import { default as x }`, `export { x as default }`).
*/
func (p *Parser) anyIdentifierName() (token.Token, error) {
	cur := p.buf.Peek()
	if cur.Kind != token.IDENTIFIER && !cur.Kind.IsKeyword() && !isContextualKeywordKind(cur.Kind) {
		return cur, p.fatalAt(perr.ErrUnexpectedToken, "expected an identifier", cur.Pos)
	}
	return p.buf.Consume()
}
