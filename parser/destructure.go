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
	"fmt"

	"github.com/krotik/ecmaparse/ast"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/token"
)

// The Destructuring Lowerer (spec.md §4.7). Binding patterns are parsed
// into plain Pattern nodes (ArrayPattern/ObjectPattern/AssignmentPattern/
// RestElement) that mirror their source shape; lowerDeclaratorPattern
// then converts a pattern plus its source expression into the
// LETEXPR/COMMA/SETNAME/... IR the downstream consumer expects
// (spec.md §6), using the iterator protocol for arrays and
// REQ_OBJ_COERCIBLE/OBJECT_REST_COPY for objects.

/*
parseArrayBindingPattern parses `[ BindingElement (, ...)* ]` as a
binding target (declaration or parameter), permitting elisions and a
single trailing rest element.
*/
func (p *Parser) parseArrayBindingPattern(kind bindingKind) (*ast.Node, error) {
	lb, _ := p.buf.Consume()
	n := ast.New(ast.ArrayPattern, lb.Pos)

	for p.buf.Peek().Kind != token.RBRACKET {
		if p.buf.Peek().Kind == token.COMMA {
			p.buf.Consume()
			n.AddChild(nil)
			continue
		}

		if p.buf.Peek().Kind == token.DOTDOTDOT {
			sp, _ := p.buf.Consume()
			target, err := p.parseBindingTarget(kind)
			if err != nil {
				return nil, err
			}
			rest := ast.New(ast.RestElement, sp.Pos)
			rest.AddChild(target)
			n.AddChild(rest)
			break // a rest element must be the last in the pattern
		}

		target, err := p.parseBindingTarget(kind)
		if err != nil {
			return nil, err
		}

		if p.buf.Peek().Kind == token.ASSIGN {
			p.buf.Consume()
			def, err := p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
			pat := ast.New(ast.AssignmentPattern, target.Pos)
			pat.AddChild(target)
			pat.AddChild(def)
			p.maybeInferFunctionName(target, def)
			n.AddChild(pat)
		} else {
			n.AddChild(target)
		}

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
parseObjectBindingPattern parses `{ BindingProperty (, ...)* }` as a
binding target, permitting a single trailing rest element which must
itself bind a plain identifier (spec.md §4.7 "rest element... emits a
copy of own enumerable keys").
*/
func (p *Parser) parseObjectBindingPattern(kind bindingKind) (*ast.Node, error) {
	lb, _ := p.buf.Consume()
	n := ast.New(ast.ObjectPattern, lb.Pos)

	for p.buf.Peek().Kind != token.RBRACE {
		if p.buf.Peek().Kind == token.DOTDOTDOT {
			sp, _ := p.buf.Consume()
			nameTok := p.buf.Peek()
			if !isBindingIdentifierStart(nameTok.Kind) {
				return nil, p.fatalAt(perr.ErrInvalidDestructuring, "object rest element must bind a plain identifier", nameTok.Pos)
			}
			p.buf.Consume()
			if _, err := p.defineSymbol(kind, identifierName(nameTok), nameTok.Pos); err != nil {
				return nil, err
			}
			id := ast.New(ast.Identifier, nameTok.Pos)
			id.SetField("name", identifierName(nameTok))
			rest := ast.New(ast.RestElement, sp.Pos)
			rest.AddChild(id)
			n.AddChild(rest)
			break
		}

		keyStart := p.buf.Peek()
		key, computed, err := p.parsePropertyKey()
		if err != nil {
			return nil, err
		}

		prop := ast.New(ast.Property, keyStart.Pos)
		prop.SetField("key", key)
		prop.SetField("computed", computed)

		if p.buf.Peek().Kind == token.COLON {
			p.buf.Consume()
			target, err := p.parseBindingTarget(kind)
			if err != nil {
				return nil, err
			}
			if p.buf.Peek().Kind == token.ASSIGN {
				p.buf.Consume()
				def, err := p.parseAssignmentExpression()
				if err != nil {
					return nil, err
				}
				pat := ast.New(ast.AssignmentPattern, target.Pos)
				pat.AddChild(target)
				pat.AddChild(def)
				p.maybeInferFunctionName(target, def)
				prop.SetField("value", pat)
			} else {
				prop.SetField("value", target)
			}
		} else {
			// shorthand { x } or { x = default }
			if computed || key.Kind != ast.Identifier {
				return nil, p.fatalAt(perr.ErrInvalidDestructuring, "invalid shorthand destructuring property", keyStart.Pos)
			}
			name := key.Str("name")
			p.checkBindingName(name, keyStart.Pos)
			if _, err := p.defineSymbol(kind, name, keyStart.Pos); err != nil {
				return nil, err
			}
			if p.buf.Peek().Kind == token.ASSIGN {
				p.buf.Consume()
				def, err := p.parseAssignmentExpression()
				if err != nil {
					return nil, err
				}
				pat := ast.New(ast.AssignmentPattern, key.Pos)
				pat.AddChild(key)
				pat.AddChild(def)
				p.maybeInferFunctionName(key, def)
				prop.SetField("value", pat)
			} else {
				prop.SetField("value", key)
			}
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

/*
arrayExpressionToPattern reinterprets an ArrayExpression parsed under the
cover grammar as an ArrayPattern assignment target (spec.md §9): each
element is recursively reinterpreted, a bare AssignmentExpression becomes
an AssignmentPattern when covered by `=`.
*/
func (p *Parser) arrayExpressionToPattern(n *ast.Node) *ast.Node {
	pat := ast.New(ast.ArrayPattern, n.Pos)
	for _, c := range n.Children {
		pat.AddChild(p.exprElementToPatternElement(c))
	}
	return pat
}

func (p *Parser) exprElementToPatternElement(c *ast.Node) *ast.Node {
	if c == nil {
		return nil
	}
	switch c.Kind {
	case ast.SpreadElement:
		rest := ast.New(ast.RestElement, c.Pos)
		rest.AddChild(p.toAssignmentTarget(c.Children[0]))
		return rest
	case ast.AssignmentExpression:
		if c.Str("operator") == "=" {
			pat := ast.New(ast.AssignmentPattern, c.Pos)
			pat.AddChild(c.Children[0])
			pat.AddChild(c.Children[1])
			return pat
		}
		return c
	case ast.ArrayExpression:
		return p.arrayExpressionToPattern(c)
	case ast.ObjectExpression:
		return p.objectExpressionToPattern(c)
	default:
		return p.toAssignmentTarget(c)
	}
}

/*
objectExpressionToPattern reinterprets an ObjectExpression as an
ObjectPattern assignment target (spec.md §9), unwrapping the
CoverInitializedName `{ x = 1 }` shorthand into an AssignmentPattern.
*/
func (p *Parser) objectExpressionToPattern(n *ast.Node) *ast.Node {
	pat := ast.New(ast.ObjectPattern, n.Pos)
	for _, c := range n.Children {
		if c.Kind == ast.SpreadElement {
			rest := ast.New(ast.RestElement, c.Pos)
			rest.AddChild(p.toAssignmentTarget(c.Children[0]))
			pat.AddChild(rest)
			continue
		}

		prop := ast.New(ast.Property, c.Pos)
		prop.SetField("key", c.Field("key"))
		prop.SetField("computed", c.Field("computed"))

		value, _ := c.Field("value").(*ast.Node)
		if c.Bool("coverInitializedName") {
			key, _ := c.Field("key").(*ast.Node)
			apat := ast.New(ast.AssignmentPattern, c.Pos)
			apat.AddChild(key)
			apat.AddChild(value)
			prop.SetField("value", apat)
		} else if value != nil && value.Kind == ast.AssignmentExpression && value.Str("operator") == "=" {
			apat := ast.New(ast.AssignmentPattern, value.Pos)
			apat.AddChild(value.Children[0])
			apat.AddChild(value.Children[1])
			prop.SetField("value", apat)
		} else {
			prop.SetField("value", p.exprElementToPatternElement(value))
		}

		pat.AddChild(prop)
	}
	return pat
}

// Lowering into the lookahead-free IR the downstream consumer expects
// (spec.md §6): LETEXPR/COMMA sequences of SETNAME/SETLETINIT/SETCONST/
// GETPROP/GETELEM/OBJECT_REST_COPY/REQ_OBJ_COERCIBLE/iterator-protocol
// primitives.

/*
nextTemp allocates a fresh synthetic temporary name for a lowering
sequence. Temporaries never collide with source identifiers since `%`
cannot appear in one.
*/
func (p *Parser) nextTemp() string {
	p.tempCounter++
	return fmt.Sprintf("%%tmp%d", p.tempCounter)
}

func tempRef(name string, pos token.Position) *ast.Node {
	n := ast.New(ast.Identifier, pos)
	n.SetField("name", name)
	return n
}

func setTargetKind(kind bindingKind) ast.Kind {
	switch kind {
	case bindLet, bindParam, bindCatch:
		return ast.SetLetInit
	case bindConst:
		return ast.SetConst
	default:
		return ast.SetName
	}
}

/*
lowerDeclaratorPattern produces the LETEXPR/COMMA IR tree that assigns
source into pattern's bindings, for attachment alongside a
VariableDeclarator's plain Pattern tree (spec.md §4.7, §6). Returns nil
when pattern is a plain Identifier - nothing to lower.
*/
func (p *Parser) lowerDeclaratorPattern(kind bindingKind, pattern, source *ast.Node) *ast.Node {
	if pattern == nil || pattern.Kind == ast.Identifier {
		return nil
	}

	letexpr := ast.New(ast.LetExpr, pattern.Pos)
	seq := ast.New(ast.CommaSeq, pattern.Pos)

	tmp := p.nextTemp()
	seq.AddChild(p.assignIR(ast.SetLetInit, tmp, source, pattern.Pos))
	p.lowerPatternInto(seq, kind, pattern, tempRef(tmp, pattern.Pos))

	letexpr.AddChild(seq)
	return letexpr
}

func (p *Parser) assignIR(setKind ast.Kind, name string, value *ast.Node, pos token.Position) *ast.Node {
	n := ast.New(setKind, pos)
	n.SetField("name", name)
	n.AddChild(value)
	return n
}

/*
lowerPatternInto appends the assignment sequence for pattern (reading
from srcRef, an Identifier referencing an already-evaluated temporary)
into seq.
*/
func (p *Parser) lowerPatternInto(seq *ast.Node, kind bindingKind, pattern, srcRef *ast.Node) {
	switch pattern.Kind {
	case ast.Identifier:
		seq.AddChild(p.assignIR(setTargetKind(kind), pattern.Str("name"), srcRef, pattern.Pos))

	case ast.AssignmentPattern:
		target, def := pattern.Children[0], pattern.Children[1]
		defaulted := ast.New(ast.ConditionalExpression, pattern.Pos)
		isUndef := ast.New(ast.BinaryExpression, pattern.Pos)
		isUndef.SetField("operator", "===")
		isUndef.AddChild(srcRef)
		undef := ast.New(ast.Identifier, pattern.Pos)
		undef.SetField("name", "undefined")
		isUndef.AddChild(undef)
		defaulted.AddChild(isUndef)
		defaulted.AddChild(def)
		defaulted.AddChild(srcRef)
		p.lowerPatternInto(seq, kind, target, defaulted)

	case ast.ArrayPattern:
		p.lowerArrayPatternInto(seq, kind, pattern, srcRef)

	case ast.ObjectPattern:
		p.lowerObjectPatternInto(seq, kind, pattern, srcRef)

	case ast.MemberExpression:
		seq.AddChild(memberAssignIR(pattern, srcRef))
	}
}

func memberAssignIR(member, value *ast.Node) *ast.Node {
	kind := ast.GetProp
	if member.Bool("computed") {
		kind = ast.GetElem
	}
	n := ast.New(kind, member.Pos)
	n.AddChild(member.Children[0])
	n.AddChild(member.Children[1])
	n.AddChild(value)
	return n
}

/*
lowerArrayPatternInto implements the ES6+ iterator-protocol array
lowering (spec.md §4.7): obtain an iterator, call `.next()` once per
element (including elisions), drain the remainder for a rest element,
and close the iterator if not exhausted.
*/
func (p *Parser) lowerArrayPatternInto(seq *ast.Node, kind bindingKind, pattern, srcRef *ast.Node) {
	itTmp := p.nextTemp()
	seq.AddChild(p.assignIR(ast.SetLetInit, itTmp, wrapIter(ast.IteratorOpen, srcRef, pattern.Pos), pattern.Pos))

	for _, el := range pattern.Children {
		if el != nil && el.Kind == ast.RestElement {
			restTmp := p.nextTemp()
			seq.AddChild(p.assignIR(ast.SetLetInit, restTmp, wrapIter(ast.IteratorRestDrain, tempRef(itTmp, pattern.Pos), pattern.Pos), pattern.Pos))
			p.lowerPatternInto(seq, kind, el.Children[0], tempRef(restTmp, pattern.Pos))
			continue
		}

		stepTmp := p.nextTemp()
		seq.AddChild(p.assignIR(ast.SetLetInit, stepTmp, wrapIter(ast.IteratorNext, tempRef(itTmp, pattern.Pos), pattern.Pos), pattern.Pos))

		if el == nil {
			continue // elision: the iterator still advances, nothing is bound
		}
		p.lowerPatternInto(seq, kind, el, tempRef(stepTmp, pattern.Pos))
	}

	seq.AddChild(wrapIter(ast.IteratorClose, tempRef(itTmp, pattern.Pos), pattern.Pos))
}

func wrapIter(opKind ast.Kind, arg *ast.Node, pos token.Position) *ast.Node {
	n := ast.New(opKind, pos)
	n.AddChild(arg)
	return n
}

/*
lowerObjectPatternInto implements the object lowering (spec.md §4.7):
REQ_OBJ_COERCIBLE on the source, then `target := temp.key` (or computed
GETELEM) per static property, and OBJECT_REST_COPY excluding the
already-bound keys for a trailing rest element.
*/
func (p *Parser) lowerObjectPatternInto(seq *ast.Node, kind bindingKind, pattern, srcRef *ast.Node) {
	seq.AddChild(wrapIter(ast.ReqObjCoercible, srcRef, pattern.Pos))

	var boundKeys []*ast.Node
	for _, prop := range pattern.Children {
		if prop.Kind == ast.RestElement {
			restCopy := ast.New(ast.ObjectRestCopy, prop.Pos)
			restCopy.AddChild(srcRef)
			for _, k := range boundKeys {
				restCopy.AddChild(k)
			}
			restTmp := p.nextTemp()
			seq.AddChild(p.assignIR(ast.SetLetInit, restTmp, restCopy, prop.Pos))
			p.lowerPatternInto(seq, kind, prop.Children[0], tempRef(restTmp, prop.Pos))
			continue
		}

		key, _ := prop.Field("key").(*ast.Node)
		computed := prop.Bool("computed")
		value, _ := prop.Field("value").(*ast.Node)

		getKind := ast.GetProp
		if computed {
			getKind = ast.GetElem
		}
		get := ast.New(getKind, prop.Pos)
		get.AddChild(srcRef)
		get.AddChild(key)

		valTmp := p.nextTemp()
		seq.AddChild(p.assignIR(ast.SetLetInit, valTmp, get, prop.Pos))
		p.lowerPatternInto(seq, kind, value, tempRef(valTmp, prop.Pos))

		if !computed {
			boundKeys = append(boundKeys, key)
		}
	}
}
