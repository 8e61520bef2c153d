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
parsePrimaryExpression parses the base case of the member/call tail chain
(spec.md §4.2): literals, `this`, `super`, identifiers, array/object
literals, function/class expressions, template literals, and
parenthesized expressions.
*/
func (p *Parser) parsePrimaryExpression() (*ast.Node, error) {
	cur := p.buf.Peek()

	switch cur.Kind {
	case token.NUMBER:
		p.buf.Consume()
		n := ast.New(ast.Literal, cur.Pos)
		n.SetField("literalType", "number")
		n.SetField("value", cur.NumberValue)
		n.SetField("raw", cur.Lexeme)
		return n, nil

	case token.BIGINT:
		p.buf.Consume()
		n := ast.New(ast.Literal, cur.Pos)
		n.SetField("literalType", "bigint")
		n.SetField("value", cur.BigIntValue)
		n.SetField("raw", cur.Lexeme)
		return n, nil

	case token.STRING:
		p.buf.Consume()
		n := ast.New(ast.Literal, cur.Pos)
		n.SetField("literalType", "string")
		n.SetField("value", cur.StringValue)
		n.SetField("containsEscape", cur.ContainsEscape)
		return n, nil

	case token.NULL:
		p.buf.Consume()
		n := ast.New(ast.Literal, cur.Pos)
		n.SetField("literalType", "null")
		n.SetField("value", nil)
		return n, nil

	case token.TRUE, token.FALSE:
		p.buf.Consume()
		n := ast.New(ast.Literal, cur.Pos)
		n.SetField("literalType", "boolean")
		n.SetField("value", cur.Kind == token.TRUE)
		return n, nil

	case token.REGEXP:
		p.buf.Consume()
		n := ast.New(ast.RegExpLiteral, cur.Pos)
		n.SetField("pattern", cur.StringValue)
		n.SetField("raw", cur.Lexeme)
		return n, nil

	case token.THIS:
		p.buf.Consume()
		return ast.New(ast.ThisExpression, cur.Pos), nil

	case token.SUPER:
		p.buf.Consume()
		if p.fn.nestingOfFunction == 0 {
			p.errorAt(perr.ErrIllegalSuper, "'super' keyword is only valid inside a method", cur.Pos)
		}
		nxt := p.buf.Peek()
		if nxt.Kind != token.DOT && nxt.Kind != token.LBRACKET && nxt.Kind != token.LPAREN {
			p.errorAt(perr.ErrIllegalSuper, "'super' must be followed by a property access or call", cur.Pos)
		}
		return ast.New(ast.SuperExpression, cur.Pos), nil

	case token.LPAREN:
		return p.parseParenthesizedExpression()

	case token.LBRACKET:
		return p.parseArrayLiteral()

	case token.LBRACE:
		return p.parseObjectLiteral()

	case token.FUNCTION:
		return p.parseFunctionExpression(false)

	case token.CLASS:
		return p.parseClassExpression()

	case token.NO_SUBST_TEMPLATE, token.TEMPLATE_HEAD:
		return p.parseTemplateLiteral(false)

	case token.ASYNC:
		if p.peekIsAsyncFunctionExpr() {
			p.buf.Consume()
			return p.parseFunctionExpression(true)
		}
		return p.parseIdentifierReference()

	case token.IMPORT:
		return p.parseImportMetaOrCall()

	case token.IDENTIFIER, token.YIELD, token.AWAIT, token.LET, token.OF, token.GET, token.SET, token.STATIC, token.FROM, token.AS:
		return p.parseIdentifierReference()
	}

	if cur.Kind == token.EOF {
		return nil, p.fatalAt(perr.ErrUnexpectedEnd, "unexpected end of input", cur.Pos)
	}
	return nil, p.fatalAt(perr.ErrUnexpectedToken, "unexpected token "+cur.Kind.String(), cur.Pos)
}

/*
peekIsAsyncFunctionExpr reports whether the `async` just peeked starts an
`async function` expression (no line terminator before `function`,
spec.md §4.4).
*/
func (p *Parser) peekIsAsyncFunctionExpr() bool {
	save := p.buf.Save()
	defer p.buf.Restore(save)

	p.buf.Consume()
	nxt := p.buf.Peek()
	return nxt.Kind == token.FUNCTION && !nxt.AfterEOL
}

/*
parseIdentifierReference resolves a contextual keyword used as an
ordinary identifier (spec.md §4.4): `yield` is rejected inside a
generator, `await` inside an async function, per the Declaration
Disambiguator's grammar-parameter carrying.
*/
func (p *Parser) parseIdentifierReference() (*ast.Node, error) {
	cur := p.buf.Peek()

	if cur.Kind == token.YIELD && p.fn.isGenerator {
		return nil, p.fatalAt(perr.ErrIllegalYield, "'yield' is reserved inside a generator", cur.Pos)
	}
	if cur.Kind == token.AWAIT && p.fn.isAsync {
		return nil, p.fatalAt(perr.ErrIllegalAwait, "'await' is reserved inside an async function", cur.Pos)
	}
	if p.scope.isStrict && (cur.Kind == token.LET || cur.Kind == token.YIELD) {
		p.errorAt(perr.ErrStrictModeViolation, "'"+cur.Kind.String()+"' is reserved in strict mode", cur.Pos)
	}

	p.buf.Consume()
	n := ast.New(ast.Identifier, cur.Pos)
	n.SetField("name", identifierName(cur))
	n.Length = cur.Length
	return n, nil
}

/*
parseImportMetaOrCall parses `import.meta` and the dynamic `import(...)`
call form (spec.md §4.6 supplement).
*/
func (p *Parser) parseImportMetaOrCall() (*ast.Node, error) {
	kw, _ := p.buf.Consume()

	if p.buf.Peek().Kind == token.DOT {
		p.buf.Consume()
		if !p.isModule {
			p.errorAt(perr.ErrIllegalImportExport, "'import.meta' is only valid in a module", kw.Pos)
		}
		metaTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if identifierName(metaTok) != "meta" {
			p.errorAt(perr.ErrUnexpectedToken, "expected 'meta' after 'import.'", metaTok.Pos)
		}
		n := ast.New(ast.MetaProperty, kw.Pos)
		n.SetField("meta", "import")
		n.SetField("property", "meta")
		return n, nil
	}

	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.CallExpression, kw.Pos)
	n.SetField("dynamicImport", true)
	imp := ast.New(ast.Identifier, kw.Pos)
	imp.SetField("name", "import")
	n.AddChild(imp)
	n.AddChild(args)
	return n, nil
}

/*
parseParenthesizedExpression parses `( Expression )` and returns the inner
expression itself; no node and no paren position is recorded for the
grouping. It never re-parses the contents as arrow-function parameters:
tryParseArrowFunction has already attempted and failed the arrow form by
the time this runs from parsePrimaryExpression.
*/
func (p *Parser) parseParenthesizedExpression() (*ast.Node, error) {
	p.buf.Consume() // (
	savedIn := p.fn.inForInit
	p.fn.inForInit = false
	expr, err := p.parseExpression()
	p.fn.inForInit = savedIn
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

/*
parseArrayLiteral parses `[ Elision? AssignmentExpression|SpreadElement
(, ...)* ]`, permitting elisions (holes, recorded as a nil child).
*/
func (p *Parser) parseArrayLiteral() (*ast.Node, error) {
	lb, _ := p.buf.Consume()
	n := ast.New(ast.ArrayExpression, lb.Pos)

	for p.buf.Peek().Kind != token.RBRACKET {
		if p.buf.Peek().Kind == token.COMMA {
			p.buf.Consume()
			n.AddChild(nil)
			continue
		}

		var el *ast.Node
		var err error
		if p.buf.Peek().Kind == token.DOTDOTDOT {
			sp, _ := p.buf.Consume()
			val, err2 := p.parseAssignmentExpression()
			if err2 != nil {
				return nil, err2
			}
			el = ast.New(ast.SpreadElement, sp.Pos)
			el.AddChild(val)
		} else {
			el, err = p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
		}
		n.AddChild(el)

		if p.buf.Peek().Kind == token.RBRACKET {
			break
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return n, nil
}

/*
parseObjectLiteral parses `{ PropertyDefinition (, ...)* }`: shorthand,
computed, method, getter/setter, and spread properties (spec.md §4.2,
§4.5).
*/
func (p *Parser) parseObjectLiteral() (*ast.Node, error) {
	lb, _ := p.buf.Consume()
	n := ast.New(ast.ObjectExpression, lb.Pos)

	for p.buf.Peek().Kind != token.RBRACE {
		prop, err := p.parsePropertyDefinition()
		if err != nil {
			return nil, err
		}
		n.AddChild(prop)

		if p.buf.Peek().Kind == token.RBRACE {
			break
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parsePropertyDefinition() (*ast.Node, error) {
	start := p.buf.Peek()

	if start.Kind == token.DOTDOTDOT {
		p.buf.Consume()
		val, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.SpreadElement, start.Pos)
		n.AddChild(val)
		return n, nil
	}

	isAsync, isGenerator, accessor := p.peekMethodModifiers()

	key, computed, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}

	switch {
	case accessor != "" || isAsync || isGenerator || p.buf.Peek().Kind == token.LPAREN:
		fn, err := p.parseMethodBody(isAsync, isGenerator)
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Property, start.Pos)
		n.SetField("key", key)
		n.SetField("computed", computed)
		n.SetField("method", accessor == "")
		n.SetField("kind", propKindOrInit(accessor))
		n.SetField("value", fn)
		return n, nil

	case p.buf.Peek().Kind == token.COLON:
		p.buf.Consume()
		val, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Property, start.Pos)
		n.SetField("key", key)
		n.SetField("computed", computed)
		n.SetField("kind", "init")
		n.SetField("value", val)
		if !computed {
			p.maybeInferFunctionName(key, val)
		}
		return n, nil

	case p.buf.Peek().Kind == token.ASSIGN:
		// CoverInitializedName: only legal when later reinterpreted as an
		// object destructuring pattern (spec.md §4.7, §9).
		p.buf.Consume()
		def, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Property, start.Pos)
		n.SetField("key", key)
		n.SetField("computed", false)
		n.SetField("kind", "init")
		n.SetField("shorthand", true)
		n.SetField("value", def)
		n.SetField("coverInitializedName", true)
		return n, nil

	default:
		// shorthand { x }
		n := ast.New(ast.Property, start.Pos)
		n.SetField("key", key)
		n.SetField("computed", false)
		n.SetField("kind", "init")
		n.SetField("shorthand", true)
		n.SetField("value", key)
		return n, nil
	}
}

func propKindOrInit(accessor string) string {
	if accessor != "" {
		return accessor
	}
	return "init"
}

/*
peekMethodModifiers looks ahead (using a checkpoint) for `async`,
`*` (generator), `get`, `set` before a property key, without consuming
anything that turns out to belong to the key itself.
*/
func (p *Parser) peekMethodModifiers() (isAsync, isGenerator bool, accessor string) {
	if p.buf.Peek().Kind == token.ASYNC {
		save := p.buf.Save()
		p.buf.Consume()
		nxt := p.buf.Peek()
		if !nxt.AfterEOL && (nxt.Kind == token.STAR || isPropertyKeyStart(nxt.Kind)) {
			isAsync = true
		} else {
			p.buf.Restore(save)
		}
	}

	if p.buf.Peek().Kind == token.STAR {
		p.buf.Consume()
		isGenerator = true
	}

	if !isAsync && !isGenerator && (p.buf.Peek().Kind == token.GET || p.buf.Peek().Kind == token.SET) {
		save := p.buf.Save()
		kw, _ := p.buf.Consume()
		if isPropertyKeyStart(p.buf.Peek().Kind) {
			accessor = kw.Kind.String()
		} else {
			p.buf.Restore(save)
		}
	}

	return
}

func isPropertyKeyStart(k token.Kind) bool {
	switch k {
	case token.IDENTIFIER, token.STRING, token.NUMBER, token.LBRACKET, token.PRIVATE_IDENTIFIER:
		return true
	}
	return k.IsKeyword() || isContextualKeywordKind(k)
}

/*
parsePropertyKey parses a property key: identifier name, string,
number, computed `[Expr]`, or private name.
*/
func (p *Parser) parsePropertyKey() (*ast.Node, bool, error) {
	cur := p.buf.Peek()

	if cur.Kind == token.LBRACKET {
		p.buf.Consume()
		expr, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, false, err
		}
		return expr, true, nil
	}

	if cur.Kind == token.STRING {
		p.buf.Consume()
		n := ast.New(ast.Literal, cur.Pos)
		n.SetField("literalType", "string")
		n.SetField("value", cur.StringValue)
		return n, false, nil
	}

	if cur.Kind == token.NUMBER {
		p.buf.Consume()
		n := ast.New(ast.Literal, cur.Pos)
		n.SetField("literalType", "number")
		n.SetField("value", cur.NumberValue)
		return n, false, nil
	}

	if cur.Kind == token.PRIVATE_IDENTIFIER {
		p.buf.Consume()
		n := ast.New(ast.PrivateIdentifier, cur.Pos)
		n.SetField("name", identifierName(cur))
		return n, false, nil
	}

	prop, err := p.parsePropertyName()
	if err != nil {
		return nil, false, err
	}
	return prop, false, nil
}

/*
parseTemplateLiteral parses a template literal (spec.md §6's
read-template-literal), stitching TEMPLATE_HEAD/TEMPLATE_MIDDLE/
TEMPLATE_TAIL chunks around substitution expressions. tagged marks a
tagged template, where cooked values may be invalid (spec.md edge case:
an invalid escape in a tagged template's cooked string is represented as
undefined rather than a syntax error).
*/
func (p *Parser) parseTemplateLiteral(tagged bool) (*ast.Node, error) {
	start := p.buf.Peek()
	n := ast.New(ast.TemplateLiteral, start.Pos)

	var quasis []interface{}
	var raws []string

	for {
		cur := p.buf.Peek()
		if cur.Kind != token.TEMPLATE_HEAD && cur.Kind != token.TEMPLATE_MIDDLE &&
			cur.Kind != token.TEMPLATE_TAIL && cur.Kind != token.NO_SUBST_TEMPLATE {
			return nil, p.fatalAt(perr.ErrUnexpectedToken, "malformed template literal", cur.Pos)
		}
		p.buf.Consume()

		quasis = append(quasis, cur.StringValue)
		raws = append(raws, cur.Lexeme)

		if cur.Kind == token.NO_SUBST_TEMPLATE || cur.Kind == token.TEMPLATE_TAIL {
			break
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		n.AddChild(expr)

		if p.buf.Peek().Kind != token.RBRACE {
			return nil, p.fatalAt(perr.ErrUnexpectedToken, "expected '}' to close template substitution", p.buf.Peek().Pos)
		}
		if err := p.buf.NextTemplatePart(); err != nil {
			return nil, err
		}
	}

	n.SetField("quasis", quasis)
	n.SetField("raws", raws)
	return n, nil
}
