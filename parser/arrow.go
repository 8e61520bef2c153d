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
	"github.com/krotik/ecmaparse/token"
)

/*
tryParseArrowFunction implements the arrow-function reinterpretation
spec.md §9 describes as deferred: a parenthesized parameter list looks
exactly like a parenthesized expression until the `=>` is seen.  Rather
than build a full cover grammar, this speculatively parses parameters
from a checkpoint and backtracks if `=>` doesn't follow with no
intervening line terminator; on backtrack the caller falls through to
ordinary expression parsing. ok is false (with a nil error) when no
arrow function was present, so parseAssignmentExpression knows to
continue down the precedence ladder instead.
*/
func (p *Parser) tryParseArrowFunction() (result *ast.Node, ok bool, err error) {
	cur := p.buf.Peek()
	startPos := cur.Pos

	// The speculative path below may call into parseParams, which reports
	// real diagnostics (via expect/fatalAt) for what turns out to be an
	// ordinary parenthesized expression, not a parameter list - e.g. `(a.b)`.
	// Every backtrack ("not an arrow function after all") must also roll
	// the reporter back to this mark, or the abandoned attempt leaves a
	// phantom syntax error behind.
	mark := p.reporter.Mark()

	isAsync := false
	asyncSave := p.buf.Save()
	if cur.Kind == token.ASYNC {
		p.buf.Consume()
		nxt := p.buf.Peek()
		if nxt.AfterEOL || (!isBindingIdentifierStart(nxt.Kind) && nxt.Kind != token.LPAREN) {
			p.buf.Restore(asyncSave)
			p.reporter.Truncate(mark)
			return nil, false, nil
		}
		isAsync = true
		cur = nxt
	}

	outerFn := p.fn
	outerScope := p.scope
	restore := func() {
		p.fn = outerFn
		p.scope = outerScope
	}

	if cur.Kind != token.LPAREN && !isBindingIdentifierStart(cur.Kind) {
		p.buf.Restore(asyncSave)
		p.reporter.Truncate(mark)
		return nil, false, nil
	}

	p.fn = newFuncState(outerFn)
	p.fn.isAsync = isAsync
	p.fn.nestingOfFunction = outerFn.nestingOfFunction + 1
	p.scope = newScope(scopeFunction, outerScope)

	var params *ast.Node

	if cur.Kind == token.LPAREN {
		params, _, err = p.parseParams()
		if err != nil || p.buf.Peek().Kind != token.ARROW || p.buf.Peek().AfterEOL {
			restore()
			p.buf.Restore(asyncSave)
			p.reporter.Truncate(mark)
			return nil, false, nil
		}
	} else {
		idTok := cur
		p.buf.Consume()
		if p.buf.Peek().Kind != token.ARROW || p.buf.Peek().AfterEOL {
			restore()
			p.buf.Restore(asyncSave)
			p.reporter.Truncate(mark)
			return nil, false, nil
		}
		if _, err := p.defineSymbol(bindParam, identifierName(idTok), idTok.Pos); err != nil {
			restore()
			return nil, true, err
		}
		param := ast.New(ast.Identifier, idTok.Pos)
		param.SetField("name", identifierName(idTok))
		params = ast.New(ast.Params, idTok.Pos)
		params.AddChild(param)
	}

	defer restore()

	p.buf.Consume() // =>

	var body *ast.Node
	isExprBody := p.buf.Peek().Kind != token.LBRACE
	if isExprBody {
		savedIn := p.fn.inForInit
		p.fn.inForInit = false
		body, err = p.parseAssignmentExpression()
		p.fn.inForInit = savedIn
	} else {
		body, err = p.parseFunctionBody(true)
	}
	if err != nil {
		return nil, true, err
	}

	n := ast.New(ast.ArrowFunctionExpression, startPos)
	n.SetField("async", isAsync)
	n.SetField("expression", isExprBody)
	n.AddChild(params)
	n.AddChild(body)
	return n, true, nil
}
