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

/*
parseItem parses one top-level-or-block item: a declaration (function,
class, or - at module top level - import/export) or a statement (spec.md
§4.2 "Top-level loop"). The Declaration Disambiguator for "async function"
lives here, since async is a contextual keyword, not a reserved word.
*/
func (p *Parser) parseItem() (*ast.Node, error) {
	jsdoc := p.buf.TakeJSDoc()
	n, err := p.parseItemInner()
	if n != nil && jsdoc != "" {
		n.JSDoc = jsdoc
	}
	return n, err
}

func (p *Parser) parseItemInner() (*ast.Node, error) {
	t := p.buf.Peek()

	switch t.Kind {
	case token.FUNCTION:
		return p.parseFunctionDeclaration(false)
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.IMPORT:
		if p.isModule && p.fn.nestingOfFunction == 0 && p.fn.nestingOfStatement == 0 && p.scope.kind == scopeModule {
			return p.parseImportDeclaration()
		}
	case token.EXPORT:
		if p.isModule && p.fn.nestingOfFunction == 0 && p.fn.nestingOfStatement == 0 && p.scope.kind == scopeModule {
			return p.parseExportDeclaration()
		}
	case token.ASYNC:
		if p.isAsyncFunctionStart() {
			p.buf.Consume()
			return p.parseFunctionDeclaration(true)
		}
	}

	return p.parseStatement()
}

/*
isAsyncFunctionStart reports whether the current `async` token (peeked,
not consumed) begins `async function` with no intervening line
terminator (spec.md §4.4). Uses a checkpoint for the second token of
lookahead the Token Buffer itself doesn't carry.
*/
func (p *Parser) isAsyncFunctionStart() bool {
	if p.buf.Peek().Kind != token.ASYNC {
		return false
	}
	save := p.buf.Save()
	defer p.buf.Restore(save)

	p.buf.Consume()
	nxt := p.buf.Peek()
	return nxt.Kind == token.FUNCTION && !nxt.AfterEOL
}

/*
parseStatement parses a single Statement production (spec.md §4.2
"Statement dispatch by token kind").
*/
func (p *Parser) parseStatement() (*ast.Node, error) {
	t := p.buf.Peek()

	switch t.Kind {
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.SEMICOLON:
		p.buf.Consume()
		return ast.New(ast.EmptyStatement, t.Pos), nil
	case token.VAR:
		return p.parseVariableStatement(bindVar)
	case token.CONST:
		return p.parseVariableStatement(bindConst)
	case token.LET:
		if p.letStartsDeclaration() {
			return p.parseVariableStatement(bindLet)
		}
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakContinue(true)
	case token.CONTINUE:
		return p.parseBreakContinue(false)
	case token.WITH:
		return p.parseWithStatement()
	case token.DEBUGGER:
		p.buf.Consume()
		n := ast.New(ast.DebuggerStatement, t.Pos)
		return n, p.consumeSemicolon()
	}

	if isBindingIdentifierStart(t.Kind) {
		if n, ok, err := p.tryParseLabeledStatement(); ok || err != nil {
			return n, err
		}
	}

	return p.parseExpressionStatement()
}

/*
letStartsDeclaration implements the Declaration Disambiguator's `let`
rules (spec.md §4.4): `let` begins a declaration only when followed by
something that can begin a binding target - a `[`/`{` pattern or a
binding identifier - with no intervening line terminator in a
single-statement context. Anything else (`let.foo`, `let instanceof x`,
`let()`, `let++`, a bare `let` at the end of a statement) is `let` used
as an ordinary identifier, per spec.md §4.4's "`let` followed by
something that cannot begin a binding -> identifier" rule. Uses a
checkpoint for the second token of lookahead the Token Buffer itself
doesn't carry, the same way isAsyncFunctionStart does.
*/
func (p *Parser) letStartsDeclaration() bool {
	if p.scope.isStrict {
		// In strict mode `let` is always a reserved word at statement
		// position, so it can only begin a declaration.
		return true
	}

	save := p.buf.Save()
	defer p.buf.Restore(save)

	p.buf.Consume()
	nxt := p.buf.Peek()

	if p.fn.inSingleStatementContext && nxt.AfterEOL {
		return false
	}

	return nxt.Kind == token.LBRACKET || nxt.Kind == token.LBRACE || isBindingIdentifierStart(nxt.Kind)
}

/*
parseBlockStatement parses `{ StatementList }` (spec.md §3 BlockScope).
*/
func (p *Parser) parseBlockStatement() (*ast.Node, error) {
	lb, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	p.pushScope(scopeBlock)
	body, err := p.parseStatementsUntil(token.RBRACE)
	p.popScope()
	if err != nil {
		return nil, err
	}

	rb, err := p.expect(token.RBRACE)
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.BlockStatement, lb.Pos)
	n.SetSub("lc", lb.Pos)
	n.SetSub("rc", rb.Pos)
	for _, c := range body {
		n.AddChild(c)
	}
	n.Length = rb.Pos.Offset + rb.Length - lb.Pos.Offset
	return n, nil
}

func (p *Parser) parseStatementsUntil(end token.Kind) ([]*ast.Node, error) {
	var items []*ast.Node
	for p.buf.Peek().Kind != end && p.buf.Peek().Kind != token.EOF {
		item, err := p.parseItem()
		if err != nil {
			if _, ok := perr.IsAbort(err); ok {
				p.resynchronize()
				if p.buf.Peek().Kind == end {
					break
				}
				continue
			}
			p.resynchronize()
			continue
		}
		if item != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

/*
parseVariableStatement parses `var`/`let`/`const` VariableDeclarationList
`;` (spec.md §4.7 for destructuring targets).
*/
func (p *Parser) parseVariableStatement(kind bindingKind) (*ast.Node, error) {
	decl, err := p.parseVariableDeclarationList(kind, true)
	if err != nil {
		return nil, err
	}
	return decl, p.consumeSemicolon()
}

/*
parseVariableDeclarationList parses the declarator list shared by
variable statements and `for` heads. withIn controls whether the `in`
operator is visible while parsing initializers (it is suppressed in a
`for`-init position, spec.md §4.9).
*/
func (p *Parser) parseVariableDeclarationList(kind bindingKind, withIn bool) (*ast.Node, error) {
	start := p.buf.Peek()
	p.buf.Consume()

	n := ast.New(ast.VariableDeclaration, start.Pos)
	n.SetField("kind", bindingKindString(kind))

	for {
		d, err := p.parseVariableDeclarator(kind, withIn)
		if err != nil {
			return nil, err
		}
		n.AddChild(d)

		if ok, err := p.buf.Match(token.COMMA); err != nil {
			return nil, err
		} else if !ok {
			break
		}
	}

	return n, nil
}

func bindingKindString(k bindingKind) string {
	switch k {
	case bindVar:
		return "var"
	case bindLet:
		return "let"
	case bindConst:
		return "const"
	}
	return "var"
}

func (p *Parser) parseVariableDeclarator(kind bindingKind, withIn bool) (*ast.Node, error) {
	pos := p.buf.Peek().Pos

	target, err := p.parseBindingTarget(kind)
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.VariableDeclarator, pos)
	n.AddChild(target)

	if ok, err := p.buf.Match(token.ASSIGN); err != nil {
		return nil, err
	} else if ok {
		savedIn := p.fn.inForInit
		if !withIn {
			p.fn.inForInit = true
		}
		init, err := p.parseAssignmentExpression()
		p.fn.inForInit = savedIn
		if err != nil {
			return nil, err
		}
		p.maybeInferFunctionName(target, init)
		n.AddChild(init)
		if lowered := p.lowerDeclaratorPattern(kind, target, init); lowered != nil {
			n.SetField("lowering", lowered)
		}
	} else if kind == bindConst && target.Kind == ast.Identifier {
		// a bare `const x;` without initializer is an early error, but the
		// parser still produces a node so tooling keeps working; recorded
		// as a regular syntax error, recoverable.
		p.errorAt(perr.ErrUnexpectedToken, "missing initializer in const declaration", pos)
	}

	return n, nil
}

/*
parseBindingTarget parses an identifier or destructuring pattern used as
a declaration target, defining symbols as it goes (spec.md §9 "the one
case that must happen at parse time is defineSymbol for target names").
*/
func (p *Parser) parseBindingTarget(kind bindingKind) (*ast.Node, error) {
	t := p.buf.Peek()

	switch t.Kind {
	case token.LBRACKET:
		return p.parseArrayBindingPattern(kind)
	case token.LBRACE:
		return p.parseObjectBindingPattern(kind)
	}

	tok := p.buf.Peek()
	if !isBindingIdentifierStart(tok.Kind) {
		if tok.Kind == token.EOF {
			return nil, p.fatalAt(perr.ErrUnexpectedEnd, "expected a binding identifier", tok.Pos)
		}
		return nil, p.fatalAt(perr.ErrUnexpectedToken, "expected a binding identifier, got "+tok.Kind.String(), tok.Pos)
	}
	p.buf.Consume()

	name := identifierName(tok)
	p.checkBindingName(name, tok.Pos)

	if _, err := p.defineSymbol(kind, name, tok.Pos); err != nil {
		return nil, err
	}

	n := ast.New(ast.Identifier, tok.Pos)
	n.SetField("name", name)
	n.Length = tok.Length
	return n, nil
}

/*
checkBindingName rejects `eval`/`arguments` as a binding name in strict
mode (spec.md §7) and `await` inside async function parameters (spec.md
§4.5).
*/
func (p *Parser) checkBindingName(name string, pos token.Position) {
	if p.scope.isStrict && (name == "eval" || name == "arguments") {
		p.errorAt(perr.ErrStrictModeViolation, "cannot bind '"+name+"' in strict mode", pos)
	}
	if p.fn.isAsync && p.fn.inFunctionParams && name == "await" {
		p.errorAt(perr.ErrIllegalAwait, "'await' is not a valid parameter name in an async function", pos)
	}
	if p.fn.isGenerator && p.fn.inFunctionParams && name == "yield" {
		p.errorAt(perr.ErrIllegalYield, "'yield' is not a valid parameter name in a generator", pos)
	}
}

/*
isBindingIdentifierStart reports whether a token kind can start a
BindingIdentifier: an ordinary identifier, or a contextual keyword used
as one (spec.md §4.4). Reserved words proper (`strict`-only or
otherwise) are excluded.
*/
func isBindingIdentifierStart(k token.Kind) bool {
	switch k {
	case token.IDENTIFIER, token.ASYNC, token.AWAIT, token.YIELD, token.LET,
		token.OF, token.GET, token.SET, token.STATIC, token.FROM, token.AS:
		return true
	}
	return false
}

func identifierName(t token.Token) string {
	if t.StringValue != "" {
		return t.StringValue
	}
	return t.Lexeme
}

/*
parseIfStatement parses `if (Expr) Stmt [else Stmt]`.
*/
func (p *Parser) parseIfStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	cons, err := p.parseSingleStatementContext()
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.IfStatement, kw.Pos)
	n.AddChild(test)
	n.AddChild(cons)

	if ok, err := p.buf.Match(token.ELSE); err != nil {
		return nil, err
	} else if ok {
		alt, err := p.parseSingleStatementContext()
		if err != nil {
			return nil, err
		}
		n.AddChild(alt)
	}

	return n, nil
}

/*
parseSingleStatementContext parses a Statement in a position where a
lexical declaration is forbidden directly (spec.md §3, §7 "lexical
declaration in single-statement position").
*/
func (p *Parser) parseSingleStatementContext() (*ast.Node, error) {
	if p.buf.Peek().Kind == token.LET || p.buf.Peek().Kind == token.CONST {
		pos := p.buf.Peek().Pos
		if p.buf.Peek().Kind == token.CONST || p.letStartsDeclaration() {
			p.errorAt(perr.ErrIllegalLexicalInSingleStatement,
				"lexical declaration cannot appear in a single-statement context", pos)
		}
	}
	if p.buf.Peek().Kind == token.FUNCTION {
		if !p.scope.isStrict {
			p.warn(perr.ErrStrictModeViolation,
				"function declarations in single-statement context are a strict-mode error", p.buf.Peek().Pos)
		} else {
			p.errorAt(perr.ErrUnexpectedToken,
				"function declaration cannot appear in a single-statement context", p.buf.Peek().Pos)
		}
	}

	saved := p.fn.inSingleStatementContext
	p.fn.inSingleStatementContext = true
	n, err := p.parseStatement()
	p.fn.inSingleStatementContext = saved
	return n, err
}

/*
parseWhileStatement parses `while (Expr) Stmt`.
*/
func (p *Parser) parseWhileStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	p.fn.loopSwitchDepth++
	body, err := p.parseSingleStatementContext()
	p.fn.loopSwitchDepth--
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.WhileStatement, kw.Pos)
	n.AddChild(test)
	n.AddChild(body)
	return n, nil
}

/*
parseDoWhileStatement parses `do Stmt while (Expr) ;`. The trailing `;`
is always inserted regardless of ASI rules (spec.md §4.2).
*/
func (p *Parser) parseDoWhileStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()

	p.fn.loopSwitchDepth++
	body, err := p.parseSingleStatementContext()
	p.fn.loopSwitchDepth--
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	// do-while's trailing semicolon is unconditional (spec.md §4.2).
	if p.buf.Peek().Kind == token.SEMICOLON {
		p.buf.Consume()
	}

	n := ast.New(ast.DoWhileStatement, kw.Pos)
	n.AddChild(body)
	n.AddChild(test)
	return n, nil
}

/*
parseForStatement parses `for`, distinguishing classic/`for-in`/`for-of`
by what follows the (possibly absent) init clause (spec.md §4.9 "in
suppression"). Disambiguation between `for (x in obj)` and
`for (x of obj)` follows spec.md §4.4.
*/
func (p *Parser) parseForStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()

	isAwait := false
	if p.buf.Peek().Kind == token.AWAIT && p.fn.isAsync {
		p.buf.Consume()
		isAwait = true
	}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	p.pushScope(scopeForHead)
	defer p.popScope()

	var init *ast.Node
	var err error
	declKind := bindingKind(-1)

	savedForInit := p.fn.inForInit
	p.fn.inForInit = true

	switch p.buf.Peek().Kind {
	case token.SEMICOLON:
		// no init
	case token.VAR:
		declKind = bindVar
		init, err = p.parseVariableDeclarationList(bindVar, false)
	case token.CONST:
		declKind = bindConst
		init, err = p.parseVariableDeclarationList(bindConst, false)
	case token.LET:
		if p.letStartsDeclaration() {
			declKind = bindLet
			init, err = p.parseVariableDeclarationList(bindLet, false)
		}
	}

	if err != nil {
		p.fn.inForInit = savedForInit
		return nil, err
	}

	if init == nil && declKind == -1 {
		init, err = p.parseExpressionNoIn()
		if err != nil {
			p.fn.inForInit = savedForInit
			return nil, err
		}
	}

	p.fn.inForInit = savedForInit

	cur := p.buf.Peek()
	if cur.Kind == token.IN || (cur.Kind == token.OF) {
		isOf := cur.Kind == token.OF
		p.buf.Consume()

		if declKind != -1 && len(init.Children) > 1 {
			p.errorAt(perr.ErrUnexpectedToken, "for-in/for-of loop may not have multiple bindings", cur.Pos)
		}
		if declKind != -1 && declKind != bindVar {
			for _, d := range init.Children {
				if len(d.Children) > 1 {
					p.errorAt(perr.ErrUnexpectedToken,
						"for-in/for-of loop variable declaration may not have an initializer", cur.Pos)
				}
			}
		}
		// `for (var a = 0 in obj)` (and the same in for-of) is reported as
		// well; the let/const form, e.g. `for (const a = 0 in obj)`, is
		// reported by the check above.
		if declKind == bindVar {
			for _, d := range init.Children {
				if len(d.Children) > 1 {
					p.errorAt(perr.ErrUnexpectedToken,
						"for-in loop variable declaration may not have an initializer", cur.Pos)
				}
			}
		}

		right, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}

		p.fn.loopSwitchDepth++
		body, err := p.parseSingleStatementContext()
		p.fn.loopSwitchDepth--
		if err != nil {
			return nil, err
		}

		kind := ast.ForInStatement
		if isOf {
			kind = ast.ForOfStatement
		}
		n := ast.New(kind, kw.Pos)
		n.SetField("await", isAwait)
		n.AddChild(init)
		n.AddChild(right)
		n.AddChild(body)
		return n, nil
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	var test, update *ast.Node
	if p.buf.Peek().Kind != token.SEMICOLON {
		test, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	if p.buf.Peek().Kind != token.RPAREN {
		update, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	p.fn.loopSwitchDepth++
	body, err := p.parseSingleStatementContext()
	p.fn.loopSwitchDepth--
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.ForStatement, kw.Pos)
	if init != nil {
		n.AddChild(init)
	} else {
		n.AddChild(nil)
	}
	n.AddChild(test)
	n.AddChild(update)
	n.AddChild(body)
	return n, nil
}

/*
parseExpressionNoIn parses an expression with the `in` operator
suppressed, for use as a for-init expression (spec.md §4.9).
*/
func (p *Parser) parseExpressionNoIn() (*ast.Node, error) {
	return p.parseExpression()
}

/*
parseSwitchStatement parses `switch (Expr) { CaseClause* }`.
*/
func (p *Parser) parseSwitchStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	disc, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	p.pushScope(scopeSwitch)
	p.fn.loopSwitchDepth++

	n := ast.New(ast.SwitchStatement, kw.Pos)
	n.AddChild(disc)

	seenDefault := false
	for p.buf.Peek().Kind != token.RBRACE && p.buf.Peek().Kind != token.EOF {
		caseNode, err := p.parseSwitchCase(&seenDefault)
		if err != nil {
			p.fn.loopSwitchDepth--
			p.popScope()
			return nil, err
		}
		n.AddChild(caseNode)
	}

	p.fn.loopSwitchDepth--
	p.popScope()

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseSwitchCase(seenDefault *bool) (*ast.Node, error) {
	t := p.buf.Peek()
	n := ast.New(ast.SwitchCase, t.Pos)

	if t.Kind == token.DEFAULT {
		if *seenDefault {
			p.errorAt(perr.ErrUnexpectedToken, "more than one default clause in switch statement", t.Pos)
		}
		*seenDefault = true
		n.SetField("default", true)
		p.buf.Consume()
	} else if _, err := p.expect(token.CASE); err == nil {
		test, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		n.AddChild(test)
	} else {
		return nil, err
	}

	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}

	for p.buf.Peek().Kind != token.CASE && p.buf.Peek().Kind != token.DEFAULT &&
		p.buf.Peek().Kind != token.RBRACE && p.buf.Peek().Kind != token.EOF {
		item, err := p.parseItem()
		if err != nil {
			p.resynchronize()
			continue
		}
		if item != nil {
			n.AddChild(item)
		}
	}

	return n, nil
}

/*
parseTryStatement parses `try Block [catch (Param) Block] [finally Block]`.
*/
func (p *Parser) parseTryStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()
	block, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.TryStatement, kw.Pos)
	n.AddChild(block)

	if p.buf.Peek().Kind == token.CATCH {
		catchKw, _ := p.buf.Consume()
		p.pushScope(scopeCatch)

		catch := ast.New(ast.CatchClause, catchKw.Pos)
		if ok, err := p.buf.Match(token.LPAREN); err != nil {
			p.popScope()
			return nil, err
		} else if ok {
			param, err := p.parseBindingTarget(bindCatch)
			if err != nil {
				p.popScope()
				return nil, err
			}
			catch.AddChild(param)
			if _, err := p.expect(token.RPAREN); err != nil {
				p.popScope()
				return nil, err
			}
		} else {
			catch.AddChild(nil)
		}

		body, err := p.parseBlockStatement()
		p.popScope()
		if err != nil {
			return nil, err
		}
		catch.AddChild(body)
		n.AddChild(catch)
	} else {
		n.AddChild(nil)
	}

	if p.buf.Peek().Kind == token.FINALLY {
		p.buf.Consume()
		fin, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		n.AddChild(fin)
	} else {
		n.AddChild(nil)
		if n.Children[1] == nil {
			p.errorAt(perr.ErrUnexpectedToken, "missing catch or finally after try", kw.Pos)
		}
	}

	return n, nil
}

/*
parseThrowStatement parses `throw Expr ;`. The argument must start on the
same line as `throw` (spec.md §4.1 "peek-or-EOL").
*/
func (p *Parser) parseThrowStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()
	if p.buf.Peek().AfterEOL {
		p.errorAt(perr.ErrUnexpectedToken, "illegal newline after throw", p.buf.Peek().Pos)
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ThrowStatement, kw.Pos)
	n.AddChild(val)
	return n, p.consumeSemicolon()
}

/*
parseReturnStatement parses `return [Expr] ;`; the optional argument must
start on the same line (spec.md §4.1).
*/
func (p *Parser) parseReturnStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()

	if !p.fn.inFunctionBody {
		p.errorAt(perr.ErrIllegalReturn, "'return' outside of a function", kw.Pos)
	}

	n := ast.New(ast.ReturnStatement, kw.Pos)

	cur := p.buf.Peek()
	if !cur.AfterEOL && cur.Kind != token.SEMICOLON && cur.Kind != token.RBRACE && cur.Kind != token.EOF {
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		n.AddChild(val)
	} else {
		n.AddChild(nil)
	}

	return n, p.consumeSemicolon()
}

/*
parseBreakContinue parses `break`/`continue [Label] ;`. The label, if
present, must be on the same line (spec.md §4.1).
*/
func (p *Parser) parseBreakContinue(isBreak bool) (*ast.Node, error) {
	kw, _ := p.buf.Consume()

	kind := ast.ContinueStatement
	if isBreak {
		kind = ast.BreakStatement
	}
	n := ast.New(kind, kw.Pos)

	cur := p.buf.Peek()
	if !cur.AfterEOL && isBindingIdentifierStart(cur.Kind) {
		label := identifierName(cur)
		if !p.fn.labels[label] {
			p.errorAt(perr.ErrIllegalBreakContinue, "undefined label '"+label+"'", cur.Pos)
		}
		p.buf.Consume()
		l := ast.New(ast.Identifier, cur.Pos)
		l.SetField("name", label)
		n.AddChild(l)
	} else {
		if p.fn.loopSwitchDepth == 0 && !(isBreak) {
			p.errorAt(perr.ErrIllegalBreakContinue, "illegal continue statement: no surrounding iteration statement", kw.Pos)
		}
		if p.fn.loopSwitchDepth == 0 && isBreak {
			p.errorAt(perr.ErrIllegalBreakContinue, "illegal break statement", kw.Pos)
		}
		n.AddChild(nil)
	}

	return n, p.consumeSemicolon()
}

/*
parseWithStatement parses `with (Expr) Stmt`; forbidden in strict mode
(spec.md §7).
*/
func (p *Parser) parseWithStatement() (*ast.Node, error) {
	kw, _ := p.buf.Consume()
	if p.scope.isStrict {
		p.errorAt(perr.ErrStrictModeViolation, "'with' statement is not allowed in strict mode", kw.Pos)
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	obj, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseSingleStatementContext()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.WithStatement, kw.Pos)
	n.AddChild(obj)
	n.AddChild(body)
	return n, nil
}

/*
tryParseLabeledStatement speculatively consumes `Identifier :` and, if
present, parses the labeled body; the label set is registered on the
function state per spec.md §3's "Labelled Statement Registry".
*/
func (p *Parser) tryParseLabeledStatement() (*ast.Node, bool, error) {
	ident := p.buf.Peek()

	// The buffer normally gives only one token of lookahead; detecting a
	// label needs a second, so a checkpoint is taken and restored if this
	// turns out not to be a label (spec.md §9 "Ambiguous arrow
	// parameters" describes the same bounded-backtracking technique for
	// parenthesized expressions).
	save := p.buf.Save()
	name := identifierName(ident)
	p.buf.Consume()

	if p.buf.Peek().Kind != token.COLON {
		p.buf.Restore(save)
		return nil, false, nil
	}
	p.buf.Consume()

	if p.fn.labels[name] {
		p.errorAt(perr.ErrIllegalBreakContinue, "label '"+name+"' has already been declared", ident.Pos)
	}
	p.fn.labels[name] = true
	defer delete(p.fn.labels, name)

	var body *ast.Node
	var err error
	if p.buf.Peek().Kind == token.FUNCTION {
		if p.scope.isStrict {
			p.errorAt(perr.ErrUnexpectedToken, "labeled function declarations are not allowed in strict mode", ident.Pos)
		}
		body, err = p.parseFunctionDeclaration(false)
	} else {
		body, err = p.parseStatement()
	}
	if err != nil {
		return nil, true, err
	}

	n := ast.New(ast.LabeledStatement, ident.Pos)
	l := ast.New(ast.Identifier, ident.Pos)
	l.SetField("name", name)
	n.AddChild(l)
	n.AddChild(body)
	return n, true, nil
}

/*
parseExpressionStatement parses an ExpressionStatement, the fallback of
statement dispatch (spec.md §4.2).
*/
func (p *Parser) parseExpressionStatement() (*ast.Node, error) {
	pos := p.buf.Peek().Pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ExpressionStatement, pos)
	n.AddChild(expr)
	return n, p.consumeSemicolon()
}
