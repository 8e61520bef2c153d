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

// Expression precedence ladder (spec.md §4.2), lowest to highest:
// assignment -> conditional -> nullish coalescing -> logical OR ->
// logical AND -> bitwise OR -> XOR -> AND -> equality -> relational
// (in/instanceof/comparisons) -> shift -> additive -> multiplicative ->
// exponentiation -> unary -> update/postfix -> member/call tail ->
// primary.
//
// binaryPrecedence is the table the climbing loop in parseBinaryExpr
// consults - the one place in this package a lookup table still pays for
// itself the way the teacher's astNodeMap binding powers do
// (parser/parser.go); every other production is explicit recursive
// descent (see parser.go's package doc for why).
var binaryPrecedence = map[token.Kind]int{
	token.PIPEPIPE: 1, token.QUESTIONQUESTION: 1,
	token.AMPAMP: 2,
	token.PIPE:    3,
	token.CARET:   4,
	token.AMP:     5,
	token.EQ: 6, token.NE: 6, token.SHEQ: 6, token.SHNE: 6,
	token.LT: 7, token.GT: 7, token.LE: 7, token.GE: 7, token.INSTANCEOF: 7, token.IN: 7,
	token.LSHIFT: 8, token.RSHIFT: 8, token.URSHIFT: 8,
	token.PLUS: 9, token.MINUS: 9,
	token.STAR: 10, token.SLASH: 10, token.PERCENT: 10,
}

const exponentPrecedence = 11

/*
parseExpression parses an Expression, which is a comma-separated sequence
of AssignmentExpressions (spec.md §4.2).
*/
func (p *Parser) parseExpression() (*ast.Node, error) {
	pos := p.buf.Peek().Pos
	first, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}

	if p.buf.Peek().Kind != token.COMMA {
		return first, nil
	}

	n := ast.New(ast.SequenceExpression, pos)
	n.AddChild(first)
	for p.buf.Peek().Kind == token.COMMA {
		p.buf.Consume()
		next, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		n.AddChild(next)
	}
	return n, nil
}

var assignOps = map[token.Kind]string{
	token.ASSIGN: "=", token.PLUS_ASSIGN: "+=", token.MINUS_ASSIGN: "-=",
	token.STAR_ASSIGN: "*=", token.PERCENT_ASSIGN: "%=", token.STARSTAR_ASSIGN: "**=",
	token.LSHIFT_ASSIGN: "<<=", token.RSHIFT_ASSIGN: ">>=", token.URSHIFT_ASSIGN: ">>>=",
	token.AMP_ASSIGN: "&=", token.PIPE_ASSIGN: "|=", token.CARET_ASSIGN: "^=",
	token.AMPAMP_ASSIGN: "&&=", token.PIPEPIPE_ASSIGN: "||=", token.QUESTIONQUESTION_ASSIGN: "??=",
}

/*
parseAssignmentExpression is the entry point of the precedence ladder
(spec.md §4.2). It also hosts `yield` (inside generators) and the arrow
function reinterpretation described in spec.md §4.2/§9.
*/
func (p *Parser) parseAssignmentExpression() (*ast.Node, error) {
	if p.fn.isGenerator && p.buf.Peek().Kind == token.YIELD {
		return p.parseYieldExpression()
	}

	if arrow, ok, err := p.tryParseArrowFunction(); ok || err != nil {
		return arrow, err
	}

	pos := p.buf.Peek().Pos
	left, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}

	cur := p.buf.Peek()
	if op, ok := assignOps[cur.Kind]; ok {
		if err := p.checkAssignmentTarget(left); err != nil {
			return nil, err
		}
		p.buf.Consume()
		right, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}

		kind := ast.AssignmentExpression
		n := ast.New(kind, pos)
		n.SetField("operator", op)
		n.AddChild(p.toAssignmentTarget(left))
		n.AddChild(right)
		p.maybeInferFunctionName(left, right)
		return n, nil
	}

	return left, nil
}

/*
checkAssignmentTarget rejects assignment to eval/arguments in strict
mode and to anything that isn't an identifier, member expression, or
destructuring pattern (spec.md §4.7, §7).
*/
func (p *Parser) checkAssignmentTarget(n *ast.Node) error {
	switch n.Kind {
	case ast.Identifier:
		if p.scope.isStrict && (n.Str("name") == "eval" || n.Str("name") == "arguments") {
			return p.errorAt(perr.ErrStrictModeViolation, "cannot assign to '"+n.Str("name")+"' in strict mode", n.Pos)
		}
		return nil
	case ast.MemberExpression, ast.ArrayExpression, ast.ObjectExpression:
		return nil
	}
	return p.errorAt(perr.ErrInvalidDestructuring, "invalid assignment target", n.Pos)
}

/*
toAssignmentTarget reinterprets an ArrayExpression/ObjectExpression
parsed as an ordinary expression into the equivalent destructuring
pattern, the decision spec.md §9 describes as deferred until `=` is
actually seen.
*/
func (p *Parser) toAssignmentTarget(n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.ArrayExpression:
		return p.arrayExpressionToPattern(n)
	case ast.ObjectExpression:
		return p.objectExpressionToPattern(n)
	}
	return n
}

/*
parseConditionalExpression parses the `?:` ternary (spec.md §4.2).
*/
func (p *Parser) parseConditionalExpression() (*ast.Node, error) {
	pos := p.buf.Peek().Pos
	test, err := p.parseNullishExpression()
	if err != nil {
		return nil, err
	}

	if p.buf.Peek().Kind != token.QUESTION {
		return test, nil
	}
	p.buf.Consume()

	savedForInit := p.fn.inForInit
	p.fn.inForInit = false
	cons, err := p.parseAssignmentExpression()
	p.fn.inForInit = savedForInit
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}

	alt, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.ConditionalExpression, pos)
	n.AddChild(test)
	n.AddChild(cons)
	n.AddChild(alt)
	return n, nil
}

/*
parseNullishExpression handles `??`, enforcing that it may not directly
neighbor `||`/`&&` without parentheses (spec.md §4.2, scenario 7 in §8).
*/
func (p *Parser) parseNullishExpression() (*ast.Node, error) {
	left, mixedKind, err := p.parseBinaryExpr(1)
	if err != nil {
		return nil, err
	}
	if mixedKind {
		p.errorAt(perr.ErrAmbiguousNullishCoalescing,
			"'??' may not neighbor '||' or '&&' without parentheses", left.Pos)
	}
	return left, nil
}

/*
parseBinaryExpr is a precedence-climbing implementation of the shared
binary-operator ladder (`||`, `&&`, `??`, bitwise, equality, relational,
shift, additive, multiplicative, exponentiation). mixedNullish is true
when `??` was combined with `||`/`&&` at the same grouping without
parentheses.
*/
func (p *Parser) parseBinaryExpr(minPrec int) (*ast.Node, bool, error) {
	left, err := p.parseExponentExpr()
	if err != nil {
		return nil, false, err
	}

	mixedNullish := false
	sawNullish := false
	sawLogical := false

	for {
		cur := p.buf.Peek()

		if cur.Kind == token.IN && p.fn.inForInit {
			break
		}

		prec, ok := binaryPrecedence[cur.Kind]
		if !ok || prec < minPrec {
			break
		}

		if cur.Kind == token.QUESTIONQUESTION {
			sawNullish = true
			if sawLogical {
				mixedNullish = true
			}
		} else if cur.Kind == token.PIPEPIPE || cur.Kind == token.AMPAMP {
			sawLogical = true
			if sawNullish {
				mixedNullish = true
			}
		}

		p.buf.Consume()

		nextMin := prec + 1
		if cur.Kind == token.QUESTIONQUESTION {
			// Stop `??`'s right operand before `&&` as well, so that
			// `a ?? b && c` reaches the mixing check above.
			nextMin = binaryPrecedence[token.AMPAMP] + 1
		}
		right, rightMixed, err := p.parseBinaryExpr(nextMin)
		if err != nil {
			return nil, false, err
		}
		if rightMixed {
			mixedNullish = true
		}

		kind := ast.BinaryExpression
		if cur.Kind == token.PIPEPIPE || cur.Kind == token.AMPAMP || cur.Kind == token.QUESTIONQUESTION {
			kind = ast.LogicalExpression
		}

		n := ast.New(kind, left.Pos)
		n.SetField("operator", cur.Kind.String())
		n.AddChild(left)
		n.AddChild(right)
		left = n
	}

	return left, mixedNullish, nil
}

/*
parseExponentExpr parses `**`, which is right-associative and whose left
operand may not be an unparenthesized unary expression (spec.md §4.2).
*/
func (p *Parser) parseExponentExpr() (*ast.Node, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	if p.buf.Peek().Kind != token.STARSTAR {
		return left, nil
	}

	if left.Kind == ast.UnaryExpression {
		p.errorAt(perr.ErrUnexpectedToken,
			"unparenthesized unary expression cannot be the left-hand side of '**'", left.Pos)
	}

	p.buf.Consume()
	right, err := p.parseExponentExpr() // right-associative
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.BinaryExpression, left.Pos)
	n.SetField("operator", "**")
	n.AddChild(left)
	n.AddChild(right)
	return n, nil
}

var unaryOps = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.BANG: true, token.TILDE: true,
	token.TYPEOF: true, token.VOID: true, token.DELETE: true,
}

/*
parseUnaryExpr parses prefix unary operators, `await`, and prefix
`++`/`--` (spec.md §4.2, §4.4).
*/
func (p *Parser) parseUnaryExpr() (*ast.Node, error) {
	cur := p.buf.Peek()

	if cur.Kind == token.AWAIT && p.fn.isAsync {
		p.buf.Consume()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.AwaitExpression, cur.Pos)
		n.AddChild(operand)
		return n, nil
	}

	if unaryOps[cur.Kind] {
		p.buf.Consume()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		if cur.Kind == token.DELETE && p.scope.isStrict && operand.Kind == ast.Identifier {
			p.errorAt(perr.ErrStrictModeViolation, "'delete' of an unqualified identifier is not allowed in strict mode", cur.Pos)
		}
		n := ast.New(ast.UnaryExpression, cur.Pos)
		n.SetField("operator", cur.Kind.String())
		n.SetField("prefix", true)
		n.AddChild(operand)
		return n, nil
	}

	if cur.Kind == token.PLUSPLUS || cur.Kind == token.MINUSMINUS {
		p.buf.Consume()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		if err := p.checkAssignmentTarget(operand); err != nil {
			return nil, err
		}
		n := ast.New(ast.UpdateExpression, cur.Pos)
		n.SetField("operator", cur.Kind.String())
		n.SetField("prefix", true)
		n.AddChild(operand)
		return n, nil
	}

	return p.parseUpdateExpr()
}

/*
parseUpdateExpr parses postfix `++`/`--`, rejected if a line terminator
precedes it (spec.md §4.2).
*/
func (p *Parser) parseUpdateExpr() (*ast.Node, error) {
	operand, err := p.parseLHSExpression()
	if err != nil {
		return nil, err
	}

	cur := p.buf.Peek()
	if (cur.Kind == token.PLUSPLUS || cur.Kind == token.MINUSMINUS) && !cur.AfterEOL {
		if err := p.checkAssignmentTarget(operand); err != nil {
			return nil, err
		}
		p.buf.Consume()
		n := ast.New(ast.UpdateExpression, operand.Pos)
		n.SetField("operator", cur.Kind.String())
		n.SetField("prefix", false)
		n.AddChild(operand)
		return n, nil
	}

	return operand, nil
}

/*
parseLHSExpression parses `new`, member access, and call tails (spec.md
§4.2 "member/call (tail chain)"), including the optional-chain state
machine (spec.md §4.9).
*/
func (p *Parser) parseLHSExpression() (*ast.Node, error) {
	var left *ast.Node
	var err error

	if p.buf.Peek().Kind == token.NEW {
		left, err = p.parseNewExpression()
	} else {
		left, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}

	return p.parseCallMemberTail(left, false)
}

/*
parseNewExpression parses `new Callee[Arguments]` and `new.target`
(spec.md §4.5, §4.9).
*/
func (p *Parser) parseNewExpression() (*ast.Node, error) {
	kw, _ := p.buf.Consume()

	if p.buf.Peek().Kind == token.DOT {
		p.buf.Consume()
		targetTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if identifierName(targetTok) != "target" {
			p.errorAt(perr.ErrUnexpectedToken, "expected 'target' after 'new.'", targetTok.Pos)
		}
		if p.fn.nestingOfFunction == 0 {
			p.errorAt(perr.ErrIllegalNewTarget, "'new.target' is only valid inside a function", kw.Pos)
		}
		n := ast.New(ast.MetaProperty, kw.Pos)
		n.SetField("meta", "new")
		n.SetField("property", "target")
		return p.parseCallMemberTail(n, false)
	}

	var callee *ast.Node
	var err error
	if p.buf.Peek().Kind == token.NEW {
		callee, err = p.parseNewExpression()
	} else {
		callee, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}

	callee, err = p.parseMemberTailOnly(callee)
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.NewExpression, kw.Pos)
	n.AddChild(callee)

	if p.buf.Peek().Kind == token.LPAREN {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		n.AddChild(args)
	} else {
		n.AddChild(nil)
	}

	return n, nil
}

/*
parseMemberTailOnly parses only `.`/`[`/template-tag tails (no call),
used for a `new` callee, which binds tighter than a call (`new a.b()`
calls `a.b`, not `a.b()`).
*/
func (p *Parser) parseMemberTailOnly(left *ast.Node) (*ast.Node, error) {
	for {
		cur := p.buf.Peek()
		switch cur.Kind {
		case token.NO_SUBST_TEMPLATE, token.TEMPLATE_HEAD:
			tmpl, err := p.parseTemplateLiteral(true)
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.TaggedTemplateExpression, left.Pos)
			n.AddChild(left)
			n.AddChild(tmpl)
			left = n
		case token.DOT:
			p.buf.Consume()
			prop, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.MemberExpression, left.Pos)
			n.SetField("computed", false)
			n.AddChild(left)
			n.AddChild(prop)
			left = n
		case token.LBRACKET:
			p.buf.Consume()
			savedIn := p.fn.inForInit
			p.fn.inForInit = false
			prop, err := p.parseExpression()
			p.fn.inForInit = savedIn
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			n := ast.New(ast.MemberExpression, left.Pos)
			n.SetField("computed", true)
			n.AddChild(left)
			n.AddChild(prop)
			left = n
		default:
			return left, nil
		}
	}
}

/*
parseCallMemberTail parses the full member/call tail chain, tagging
every node from the first `?.` onward as part of an optional chain
(spec.md §4.9). `super.x?.y` is rejected by refusing to start an
optional chain from a bare SuperExpression.
*/
func (p *Parser) parseCallMemberTail(left *ast.Node, inOptionalChain bool) (*ast.Node, error) {
	for {
		cur := p.buf.Peek()
		switch cur.Kind {
		case token.DOT:
			p.buf.Consume()
			prop, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.MemberExpression, left.Pos)
			n.SetField("computed", false)
			n.SetField("optional", false)
			n.SetField("optionalChain", inOptionalChain)
			n.AddChild(left)
			n.AddChild(prop)
			left = n

		case token.QUESTIONDOT:
			if left.Kind == ast.SuperExpression {
				p.errorAt(perr.ErrIllegalSuper, "'super' cannot start an optional chain", cur.Pos)
			}
			p.buf.Consume()
			inOptionalChain = true
			if p.buf.Peek().Kind == token.LPAREN {
				args, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				n := ast.New(ast.CallExpression, left.Pos)
				n.SetField("optional", true)
				n.SetField("optionalChain", true)
				n.AddChild(left)
				n.AddChild(args)
				left = n
				continue
			}
			if p.buf.Peek().Kind == token.LBRACKET {
				p.buf.Consume()
				prop, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.RBRACKET); err != nil {
					return nil, err
				}
				n := ast.New(ast.MemberExpression, left.Pos)
				n.SetField("computed", true)
				n.SetField("optional", true)
				n.SetField("optionalChain", true)
				n.AddChild(left)
				n.AddChild(prop)
				left = n
				continue
			}
			prop, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.MemberExpression, left.Pos)
			n.SetField("computed", false)
			n.SetField("optional", true)
			n.SetField("optionalChain", true)
			n.AddChild(left)
			n.AddChild(prop)
			left = n

		case token.LBRACKET:
			p.buf.Consume()
			savedIn := p.fn.inForInit
			p.fn.inForInit = false
			prop, err := p.parseExpression()
			p.fn.inForInit = savedIn
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			n := ast.New(ast.MemberExpression, left.Pos)
			n.SetField("computed", true)
			n.SetField("optionalChain", inOptionalChain)
			n.AddChild(left)
			n.AddChild(prop)
			left = n

		case token.LPAREN:
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.CallExpression, left.Pos)
			n.SetField("optionalChain", inOptionalChain)
			n.AddChild(left)
			n.AddChild(args)
			left = n

		case token.NO_SUBST_TEMPLATE, token.TEMPLATE_HEAD:
			tmpl, err := p.parseTemplateLiteral(true)
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.TaggedTemplateExpression, left.Pos)
			n.AddChild(left)
			n.AddChild(tmpl)
			left = n

		default:
			return left, nil
		}
	}
}

/*
parsePropertyName parses the identifier (or private identifier) that
follows `.`/`?.` in a member expression.
*/
func (p *Parser) parsePropertyName() (*ast.Node, error) {
	cur := p.buf.Peek()
	if cur.Kind == token.PRIVATE_IDENTIFIER {
		p.buf.Consume()
		name := identifierName(cur)
		if !p.declaredPrivateNames[name] {
			p.errorAt(perr.ErrUnexpectedToken, "private field '"+name+"' must be declared in an enclosing class", cur.Pos)
		}
		n := ast.New(ast.PrivateIdentifier, cur.Pos)
		n.SetField("name", name)
		return n, nil
	}
	// any identifier name, including reserved words, is valid after `.`
	if cur.Kind != token.IDENTIFIER && !cur.Kind.IsKeyword() && !isContextualKeywordKind(cur.Kind) {
		return nil, p.fatalAt(perr.ErrUnexpectedToken, "expected property name", cur.Pos)
	}
	p.buf.Consume()
	n := ast.New(ast.Identifier, cur.Pos)
	n.SetField("name", identifierName(cur))
	return n, nil
}

func isContextualKeywordKind(k token.Kind) bool {
	switch k {
	case token.ASYNC, token.AWAIT, token.OF, token.GET, token.SET, token.FROM, token.AS, token.STATIC, token.LET, token.YIELD:
		return true
	}
	return false
}

/*
parseArguments parses `(` Argument* `)`, recording a trailing-comma flag
per spec.md §8's boundary behavior.
*/
func (p *Parser) parseArguments() (*ast.Node, error) {
	lp, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.Arguments, lp.Pos)

	savedForInit := p.fn.inForInit
	p.fn.inForInit = false
	defer func() { p.fn.inForInit = savedForInit }()

	trailingComma := false
	for p.buf.Peek().Kind != token.RPAREN {
		trailingComma = false
		var arg *ast.Node
		if p.buf.Peek().Kind == token.DOTDOTDOT {
			sp, _ := p.buf.Consume()
			val, err := p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
			arg = ast.New(ast.SpreadElement, sp.Pos)
			arg.AddChild(val)
		} else {
			arg, err = p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
		}
		n.AddChild(arg)

		if ok, err := p.buf.Match(token.COMMA); err != nil {
			return nil, err
		} else if ok {
			trailingComma = true
		} else {
			break
		}
	}
	n.SetField("trailingComma", trailingComma)

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return n, nil
}

/*
parseYieldExpression parses `yield [*] [Expr]` - loosest assignment
precedence, requiring no line terminator before `*` (spec.md §4.4).
*/
func (p *Parser) parseYieldExpression() (*ast.Node, error) {
	kw, _ := p.buf.Consume()
	n := ast.New(ast.YieldExpression, kw.Pos)

	delegate := false
	if !p.buf.Peek().AfterEOL && p.buf.Peek().Kind == token.STAR {
		p.buf.Consume()
		delegate = true
	}
	n.SetField("delegate", delegate)

	cur := p.buf.Peek()
	canHaveArg := !cur.AfterEOL && cur.Kind != token.SEMICOLON && cur.Kind != token.RPAREN &&
		cur.Kind != token.RBRACKET && cur.Kind != token.RBRACE && cur.Kind != token.COMMA &&
		cur.Kind != token.COLON && cur.Kind != token.EOF

	if delegate && !canHaveArg {
		p.errorAt(perr.ErrIllegalYield, "'yield*' requires an operand", kw.Pos)
	}

	if canHaveArg {
		val, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		n.AddChild(val)
	} else {
		n.AddChild(nil)
	}

	return n, nil
}

/*
maybeInferFunctionName implements the destructuring/assignment
function-name inference rule (spec.md §4.7, §9): an anonymous function
or class expression assigned to a statically-nameable target takes that
name. Computed-key targets never infer a name (open question resolved in
SPEC_FULL.md).
*/
func (p *Parser) maybeInferFunctionName(target, value *ast.Node) {
	if target == nil || value == nil || target.Kind != ast.Identifier {
		return
	}
	if value.Kind != ast.FunctionExpression && value.Kind != ast.ArrowFunctionExpression && value.Kind != ast.ClassExpression {
		return
	}
	if value.Str("name") != "" {
		return
	}
	value.SetField("inferredName", target.Str("name"))
}
