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

// The Class/Function Constructor (spec.md §4.5): function declarations
// and expressions (plain, generator, async, async generator), method
// definitions on object literals and class bodies, parameter lists with
// defaults/rest/destructuring and their non-simple-parameter-list
// restrictions, and class declarations/expressions with private fields.

/*
parseFunctionDeclaration parses `function [*] Identifier (Params) {
Body }`, called from parseItem. isAsync is true when the caller already
consumed a leading `async`.
*/
func (p *Parser) parseFunctionDeclaration(isAsync bool) (*ast.Node, error) {
	kw, _ := p.buf.Consume() // function
	isGenerator := false
	if p.buf.Peek().Kind == token.STAR {
		p.buf.Consume()
		isGenerator = true
	}

	nameTok := p.buf.Peek()
	var name *ast.Node
	if isBindingIdentifierStart(nameTok.Kind) {
		p.buf.Consume()
		declKind := bindFunction
		if isGenerator {
			declKind = bindGeneratorFunction
		}
		if _, err := p.defineSymbol(declKind, identifierName(nameTok), nameTok.Pos); err != nil {
			return nil, err
		}
		name = ast.New(ast.Identifier, nameTok.Pos)
		name.SetField("name", identifierName(nameTok))
	} else if p.fn.nestingOfFunction == 0 && p.fn.nestingOfStatement == 0 {
		return nil, p.fatalAt(perr.ErrUnexpectedToken, "function declaration requires a name", nameTok.Pos)
	}

	body, params, err := p.parseFunctionRest(isAsync, isGenerator)
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.FunctionDeclaration, kw.Pos)
	n.SetField("async", isAsync)
	n.SetField("generator", isGenerator)
	n.AddChild(name)
	n.AddChild(params)
	n.AddChild(body)
	return n, nil
}

/*
parseFunctionExpression parses a function expression; the name, if
present, is bound only inside the function's own scope (spec.md §4.5).
*/
func (p *Parser) parseFunctionExpression(isAsync bool) (*ast.Node, error) {
	kw, _ := p.buf.Consume() // function
	isGenerator := false
	if p.buf.Peek().Kind == token.STAR {
		p.buf.Consume()
		isGenerator = true
	}

	var name *ast.Node
	nameTok := p.buf.Peek()
	hasName := isBindingIdentifierStart(nameTok.Kind)
	if hasName {
		p.buf.Consume()
		name = ast.New(ast.Identifier, nameTok.Pos)
		name.SetField("name", identifierName(nameTok))
	}

	outerScope := p.scope
	p.scope = newScope(scopeFunction, outerScope)
	if hasName {
		p.scope.symbols[identifierName(nameTok)] = &symbol{kind: bindConst, pos: nameTok.Pos}
	}

	body, params, err := p.parseFunctionRest(isAsync, isGenerator)
	p.scope = outerScope
	if err != nil {
		return nil, err
	}

	n := ast.New(ast.FunctionExpression, kw.Pos)
	n.SetField("async", isAsync)
	n.SetField("generator", isGenerator)
	n.AddChild(name)
	n.AddChild(params)
	n.AddChild(body)
	return n, nil
}

/*
parseFunctionRest parses the `(Params) { Body }` shared by function
declarations, expressions, and methods, handling the funcState
save/restore (spec.md §9 design note) and the non-simple-parameter-list
"use strict" prohibition (spec.md §7).
*/
func (p *Parser) parseFunctionRest(isAsync, isGenerator bool) (body, params *ast.Node, err error) {
	outerFn := p.fn
	p.fn = newFuncState(outerFn)
	p.fn.isAsync = isAsync
	p.fn.isGenerator = isGenerator
	p.fn.nestingOfFunction = outerFn.nestingOfFunction + 1
	defer func() { p.fn = outerFn }()

	p.pushScope(scopeFunction)
	defer p.popScope()

	params, simple, err := p.parseParams()
	if err != nil {
		return nil, nil, err
	}

	body, err = p.parseFunctionBody(simple)
	if err != nil {
		return nil, nil, err
	}

	return body, params, nil
}

/*
parseParams parses a parenthesized ParameterList, returning the params
node and whether the list is "simple" (spec.md §7: only plain
identifiers, no defaults/rest/destructuring - required for a function
body's own "use strict" directive to be legal).
*/
func (p *Parser) parseParams() (*ast.Node, bool, error) {
	lp, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, false, err
	}

	n := ast.New(ast.Params, lp.Pos)
	simple := true

	savedInParams := p.fn.inFunctionParams
	p.fn.inFunctionParams = true
	defer func() { p.fn.inFunctionParams = savedInParams }()

	seen := make(map[string]bool)
	var dups []*ast.Node

	for p.buf.Peek().Kind != token.RPAREN {
		paramStart := p.buf.Peek()

		if paramStart.Kind == token.DOTDOTDOT {
			simple = false
			p.buf.Consume()
			target, err := p.parseBindingTarget(bindParam)
			if err != nil {
				return nil, false, err
			}
			if d := checkParamDuplicate(p, target, seen); d != nil {
				dups = append(dups, d)
			}
			rest := ast.New(ast.RestElement, paramStart.Pos)
			rest.AddChild(target)
			n.AddChild(rest)
			break
		}

		if paramStart.Kind == token.LBRACKET || paramStart.Kind == token.LBRACE {
			simple = false
		}

		target, err := p.parseBindingTarget(bindParam)
		if err != nil {
			return nil, false, err
		}
		if d := checkParamDuplicate(p, target, seen); d != nil {
			dups = append(dups, d)
		}

		if p.buf.Peek().Kind == token.ASSIGN {
			simple = false
			p.buf.Consume()
			def, err := p.parseAssignmentExpression()
			if err != nil {
				return nil, false, err
			}
			pat := ast.New(ast.AssignmentPattern, target.Pos)
			pat.AddChild(target)
			pat.AddChild(def)
			p.maybeInferFunctionName(target, def)
			n.AddChild(pat)
		} else {
			n.AddChild(target)
		}

		if ok, err := p.buf.Match(token.COMMA); err != nil {
			return nil, false, err
		} else if !ok {
			break
		}
	}

	if p.scope.isStrict || !simple {
		for _, d := range dups {
			p.errorAt(perr.ErrDuplicateParameter, "duplicate parameter name '"+d.Str("name")+"'", d.Pos)
		}
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, false, err
	}

	return n, simple, nil
}

/*
checkParamDuplicate returns target when it is a plain identifier whose
name an earlier parameter of the same list already used, and nil
otherwise, recording each name in seen. parseParams reports the collected
duplicates once the whole list is read, when the code is strict or the
list is non-simple (spec.md §7). Names bound inside destructuring
patterns are not compared here.
*/
func checkParamDuplicate(p *Parser, target *ast.Node, seen map[string]bool) *ast.Node {
	if target == nil || target.Kind != ast.Identifier {
		return nil
	}
	name := target.Str("name")
	if seen[name] {
		return target
	}
	seen[name] = true
	return nil
}

/*
parseFunctionBody parses `{ Directives Statements }`, applying the
non-simple-parameter-list "use strict" restriction (spec.md §7).
*/
func (p *Parser) parseFunctionBody(simpleParams bool) (*ast.Node, error) {
	lb, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	savedBody := p.fn.inFunctionBody
	p.fn.inFunctionBody = true

	items, sawUseStrict := p.parseStatementListAndDirectives(func() bool {
		return p.buf.Peek().Kind != token.RBRACE && p.buf.Peek().Kind != token.EOF
	})

	if sawUseStrict {
		if !simpleParams {
			p.errorAt(perr.ErrStrictModeViolation, "'use strict' is not allowed in a function with a non-simple parameter list", lb.Pos)
		}
		p.scope.isStrict = true
		p.fn.inStrictDirective = true
	}

	p.fn.inFunctionBody = savedBody

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}

	n := ast.New(ast.BlockStatement, lb.Pos)
	for _, it := range items {
		n.AddChild(it)
	}
	return n, nil
}

/*
parseMethodBody parses the `(Params) { Body }` of an object-literal or
class method. It applies no getter/setter arity check itself: class
accessors are checked by parseClassElement through checkAccessorArity,
and object-literal accessors are not checked.
*/
func (p *Parser) parseMethodBody(isAsync, isGenerator bool) (*ast.Node, error) {
	kw := p.buf.Peek()
	body, params, err := p.parseFunctionRest(isAsync, isGenerator)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.FunctionExpression, kw.Pos)
	n.SetField("async", isAsync)
	n.SetField("generator", isGenerator)
	n.AddChild(nil) // methods are always anonymous at the function-expression level
	n.AddChild(params)
	n.AddChild(body)
	return n, nil
}

func checkAccessorArity(p *Parser, accessor string, params *ast.Node, pos token.Position) {
	switch accessor {
	case "get":
		if len(params.Children) != 0 {
			p.errorAt(perr.ErrUnexpectedToken, "a getter must have no parameters", pos)
		}
	case "set":
		if len(params.Children) != 1 {
			p.errorAt(perr.ErrUnexpectedToken, "a setter must have exactly one parameter", pos)
		}
	}
}

// Class declarations and expressions
// ===================================

/*
parseClassDeclaration parses `class Identifier [extends Expr] { Body }`.
*/
func (p *Parser) parseClassDeclaration() (*ast.Node, error) {
	return p.parseClassCommon(ast.ClassDeclaration, true)
}

/*
parseClassExpression parses a class expression. Its optional name is
stored on the node; it is not declared in any scope, neither the
enclosing one nor the class body's.
*/
func (p *Parser) parseClassExpression() (*ast.Node, error) {
	return p.parseClassCommon(ast.ClassExpression, false)
}

func (p *Parser) parseClassCommon(kind ast.Kind, requireBinding bool) (*ast.Node, error) {
	kw, _ := p.buf.Consume() // class

	// a class body is always strict, independent of any enclosing directive
	savedStrict := p.scope.isStrict
	p.scope.isStrict = true
	defer func() { p.scope.isStrict = savedStrict }()

	var name *ast.Node
	nameTok := p.buf.Peek()
	if isBindingIdentifierStart(nameTok.Kind) {
		p.buf.Consume()
		if requireBinding {
			if _, err := p.defineSymbol(bindClass, identifierName(nameTok), nameTok.Pos); err != nil {
				return nil, err
			}
		}
		name = ast.New(ast.Identifier, nameTok.Pos)
		name.SetField("name", identifierName(nameTok))
	} else if requireBinding {
		return nil, p.fatalAt(perr.ErrUnexpectedToken, "class declaration requires a name", nameTok.Pos)
	}

	var superClass *ast.Node
	if p.buf.Peek().Kind == token.EXTENDS {
		p.buf.Consume()
		sc, err := p.parseLHSExpression()
		if err != nil {
			return nil, err
		}
		superClass = sc
	}

	body, err := p.parseClassBody(superClass != nil)
	if err != nil {
		return nil, err
	}

	n := ast.New(kind, kw.Pos)
	n.AddChild(name)
	n.AddChild(superClass)
	n.AddChild(body)
	return n, nil
}

/*
parseClassBody parses `{ ClassElement* }`: methods, accessors, static
and instance fields, private names, and the static initialization block
supplement (spec.md §4.5, original-source supplement).
*/
func (p *Parser) parseClassBody(hasSuper bool) (*ast.Node, error) {
	lb, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	p.pushScope(scopeClassBody)
	defer p.popScope()

	n := ast.New(ast.ClassBody, lb.Pos)
	sawConstructor := false

	for p.buf.Peek().Kind != token.RBRACE && p.buf.Peek().Kind != token.EOF {
		if _, err := p.buf.Match(token.SEMICOLON); err != nil {
			return nil, err
		} else if p.buf.Peek().Kind == token.RBRACE {
			break
		}

		el, isCtor, err := p.parseClassElement(hasSuper)
		if err != nil {
			return nil, err
		}
		if el == nil {
			continue
		}
		if isCtor {
			if sawConstructor {
				p.errorAt(perr.ErrRedeclaration, "a class may have only one constructor", el.Pos)
			}
			sawConstructor = true
		}
		n.AddChild(el)
	}

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return n, nil
}

/*
parseClassElement parses one class element. Returns isCtor=true when the
element is the instance constructor method, so the caller can enforce
the at-most-one-constructor rule.
*/
func (p *Parser) parseClassElement(hasSuper bool) (el *ast.Node, isCtor bool, err error) {
	start := p.buf.Peek()

	isStatic := false
	if start.Kind == token.STATIC {
		save := p.buf.Save()
		p.buf.Consume()
		nxt := p.buf.Peek()
		if nxt.Kind == token.LBRACE {
			// static initialization block
			p.pushScope(scopeFunction)
			outerFn := p.fn
			p.fn = newFuncState(outerFn)
			p.fn.nestingOfFunction = outerFn.nestingOfFunction + 1
			body, err := p.parseFunctionBody(true)
			p.fn = outerFn
			p.popScope()
			if err != nil {
				return nil, false, err
			}
			n := ast.New(ast.MethodDefinition, start.Pos)
			n.SetField("kind", "static-block")
			n.AddChild(body)
			return n, false, nil
		}
		if nxt.Kind == token.ASSIGN || nxt.Kind == token.SEMICOLON || nxt.Kind == token.LPAREN || nxt.AfterEOL {
			p.buf.Restore(save)
		} else {
			isStatic = true
		}
	}

	isAsync, isGenerator, accessor := p.peekMethodModifiers()

	keyTok := p.buf.Peek()
	key, computed, err := p.parsePropertyKey()
	if err != nil {
		return nil, false, err
	}

	if key.Kind == ast.PrivateIdentifier {
		p.declaredPrivateNames[key.Str("name")] = true
	}

	if name, ok := staticPropertyName(key, computed); ok {
		if isStatic && name == "prototype" {
			p.errorAt(perr.ErrIllegalClassElementName,
				"classes may not have a static element named 'prototype'", keyTok.Pos)
		}
		if !isStatic && name == "constructor" && (accessor != "" || isGenerator || isAsync) {
			p.errorAt(perr.ErrIllegalClassElementName,
				"'constructor' may not be a getter, setter, generator, or async method", keyTok.Pos)
		}
	}

	if p.buf.Peek().Kind == token.LPAREN {
		elementName, _ := staticPropertyName(key, computed)
		isConstructor := !isStatic && accessor == "" && !isAsync && !isGenerator && elementName == "constructor"

		savedFn := p.fn
		if isConstructor {
			p.fn = newFuncState(savedFn)
			p.fn.nestingOfFunction = savedFn.nestingOfFunction + 1
		}
		fn, err := p.parseMethodBody(isAsync, isGenerator)
		if isConstructor {
			p.fn = savedFn
		}
		if err != nil {
			return nil, false, err
		}

		if accessor != "" {
			checkAccessorArity(p, accessor, fn.Children[1], keyTok.Pos)
		}

		n := ast.New(ast.MethodDefinition, start.Pos)
		n.SetField("static", isStatic)
		n.SetField("computed", computed)
		n.SetField("kind", classMethodKind(isConstructor, accessor))
		n.SetField("key", key)
		n.SetField("value", fn)
		return n, isConstructor, nil
	}

	// field definition (class field declarations supplement, spec.md §4.5)
	var value *ast.Node
	if p.buf.Peek().Kind == token.ASSIGN {
		p.buf.Consume()
		savedFn := p.fn
		p.fn = newFuncState(savedFn)
		p.fn.nestingOfFunction = savedFn.nestingOfFunction + 1
		value, err = p.parseAssignmentExpression()
		p.fn = savedFn
		if err != nil {
			return nil, false, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, false, err
	}

	n := ast.New(ast.PropertyDefinition, start.Pos)
	n.SetField("static", isStatic)
	n.SetField("computed", computed)
	n.SetField("key", key)
	n.AddChild(value)
	return n, false, nil
}

/*
staticPropertyName returns the literal name of a non-computed class
element key - a plain string/identifier PropertyName, per spec.md §4.5's
"constructor"/"prototype" early errors - and false for computed keys,
private names, and numeric keys, none of which those checks apply to.
*/
func staticPropertyName(key *ast.Node, computed bool) (string, bool) {
	if computed {
		return "", false
	}
	switch {
	case key.Kind == ast.Identifier:
		return key.Str("name"), true
	case key.Kind == ast.Literal && key.Str("literalType") == "string":
		return key.Str("value"), true
	}
	return "", false
}

func classMethodKind(isConstructor bool, accessor string) string {
	if isConstructor {
		return "constructor"
	}
	if accessor != "" {
		return accessor
	}
	return "method"
}
