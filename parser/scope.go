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
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/token"
)

/*
bindingKind identifies how a name was declared, mirroring spec.md §3's
symbol map value ("var", "let", "const", "function", "param").
*/
type bindingKind int

const (
	bindVar bindingKind = iota
	bindLet
	bindConst
	bindFunction
	bindGeneratorFunction
	bindParam
	bindCatch
	bindClass
)

/*
scopeKind tags the syntactic role of a scope, used to reject lexical
declarations in forbidden positions (spec.md §3 "a type tag used to
reject let/const declarations in forbidden positions").
*/
type scopeKind int

const (
	scopeProgram scopeKind = iota
	scopeModule
	scopeFunction
	scopeBlock
	scopeIf
	scopeLoop
	scopeSwitch
	scopeCatch
	scopeForHead
	scopeClassBody
	scopeLetExpr
)

/*
symbol is one binding recorded in a scope's symbol map.
*/
type symbol struct {
	kind bindingKind
	pos  token.Position
}

/*
scope is one node of the Scope & Symbol Tracker's nested chain (spec.md
§3). Either a FunctionScope (script/module/function body) or a
BlockScope (block, loop, switch, catch, let-expr, class body, for-head).
Adapted in spirit from the teacher's scope/varsscope.go parent-chain
shape, but this one exists only during parsing to police redeclarations -
it carries no values, only declaration kinds and positions.
*/
type scope struct {
	kind   scopeKind
	parent *scope

	// symbols maps name -> declaration record for bindings declared
	// directly in this scope.
	symbols map[string]*symbol

	// varHoistedThrough records var/hoisted-function names that have
	// passed up through this block scope on their way to the enclosing
	// function scope (spec.md §3, redeclaration rule 1 and 7).
	varHoistedThrough map[string]bool

	// catchParam is the name bound by an enclosing catch clause's
	// parameter, if this is (or is nested directly in) a catch scope.
	catchParam string

	isStrict bool
}

func newScope(kind scopeKind, parent *scope) *scope {
	s := &scope{
		kind:              kind,
		parent:            parent,
		symbols:           make(map[string]*symbol),
		varHoistedThrough: make(map[string]bool),
	}
	if parent != nil {
		s.isStrict = parent.isStrict
		if parent.kind == scopeCatch {
			s.catchParam = parent.catchParam
		}
	}
	return s
}

/*
functionScope walks up to the nearest enclosing FunctionScope (script,
module, function, or method body).
*/
func (s *scope) functionScope() *scope {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.kind == scopeProgram || cur.kind == scopeModule || cur.kind == scopeFunction {
			return cur
		}
	}
	return s
}

/*
pushScope creates and enters a child scope.
*/
func (p *Parser) pushScope(kind scopeKind) *scope {
	s := newScope(kind, p.scope)
	p.scope = s
	return s
}

/*
popScope exits the current scope, returning to its parent.
*/
func (p *Parser) popScope() {
	if p.scope != nil {
		p.scope = p.scope.parent
	}
}

/*
defineSymbol enforces the redeclaration rules of spec.md §4.3 and
records the binding. Returns skipHoist=true when Annex B.3.3 says a
conflicting non-strict function-in-block declaration should silently
skip var-hoisting rather than erroring (rule 5 exception).
*/
func (p *Parser) defineSymbol(kind bindingKind, name string, pos token.Position) (skipHoist bool, err error) {
	s := p.scope

	if name == "" {
		return false, nil
	}

	// Rule 2: let/const/function-in-block may not collide with the
	// enclosing catch parameter.
	if s.catchParam == name && (kind == bindLet || kind == bindConst || kind == bindFunction || kind == bindGeneratorFunction) {
		return false, p.errorAt(perr.ErrRedeclaration, "identifier '"+name+"' has already been declared as catch parameter", pos)
	}

	existing := s.symbols[name]

	switch kind {
	case bindLet, bindConst, bindClass:
		// Rule 1: let/const may not collide with any prior binding in
		// this scope, nor with a var name hoisted through this block.
		if existing != nil {
			return false, p.errorAt(perr.ErrRedeclaration, "identifier '"+name+"' has already been declared", pos)
		}
		if s.varHoistedThrough[name] {
			return false, p.errorAt(perr.ErrRedeclaration, "identifier '"+name+"' has already been declared", pos)
		}
		s.symbols[name] = &symbol{kind: kind, pos: pos}

	case bindFunction, bindGeneratorFunction:
		if existing != nil {
			switch existing.kind {
			case bindLet, bindConst, bindClass:
				// Rule 3.
				return false, p.errorAt(perr.ErrRedeclaration, "function '"+name+"' conflicts with lexical declaration", pos)
			case bindFunction, bindGeneratorFunction:
				// Rule 4: function-vs-function allowed non-strict unless
				// either is a generator.
				if s.isStrict || existing.kind == bindGeneratorFunction || kind == bindGeneratorFunction {
					return false, p.errorAt(perr.ErrRedeclaration, "function '"+name+"' has already been declared", pos)
				}
			}
		}
		if s.varHoistedThrough[name] {
			// Rule 5 exception (Annex B.3.3): non-strict eval skips the
			// hoist instead of erroring.
			if p.env.InEval && !s.isStrict {
				s.symbols[name] = &symbol{kind: kind, pos: pos}
				return true, nil
			}
			if existing == nil || (existing.kind != bindLet && existing.kind != bindConst && existing.kind != bindClass) {
				// a plain var already claims the name at function scope -
				// not an error for function-vs-var, only for let/const.
			} else {
				return false, p.errorAt(perr.ErrRedeclaration, "function '"+name+"' conflicts with lexical declaration", pos)
			}
		}
		s.symbols[name] = &symbol{kind: kind, pos: pos}

	case bindVar, bindParam:
		// Rule 5: var in a scope where let/const of the same name is
		// already defined is an error (except the Annex B exception
		// handled above for the function case).
		if existing != nil && (existing.kind == bindLet || existing.kind == bindConst || existing.kind == bindClass) {
			return false, p.errorAt(perr.ErrRedeclaration, "identifier '"+name+"' has already been declared", pos)
		}
		// Rule 6: var vs prior var/parameter permitted, strict-mode
		// warning only.
		if existing != nil && (existing.kind == bindVar || existing.kind == bindParam) && s.isStrict {
			p.warn(perr.ErrStrictModeViolation, "identifier '"+name+"' has already been declared", pos)
		}
		if existing == nil {
			s.symbols[name] = &symbol{kind: kind, pos: pos}
		}
		// Rule 7: record the var name in every enclosing block scope up
		// to (not including) the function scope, to support rule 1.
		fn := s.functionScope()
		for cur := s; cur != nil && cur != fn; cur = cur.parent {
			cur.varHoistedThrough[name] = true
		}

	case bindCatch:
		if existing != nil {
			return false, p.errorAt(perr.ErrRedeclaration, "identifier '"+name+"' has already been declared", pos)
		}
		s.symbols[name] = &symbol{kind: kind, pos: pos}
		s.catchParam = name
	}

	return false, nil
}

/*
declareVar records a var (or hoisted function) declaration directly at
the nearest enclosing FunctionScope, per spec.md §3's hoisting semantics,
while still running defineSymbol at every intermediate block scope up to
the function so rule 1/7 bookkeeping happens in source order.
*/
func (p *Parser) declareVar(kind bindingKind, name string, pos token.Position) (bool, error) {
	skip := false
	for cur := p.scope; cur != nil; cur = cur.parent {
		s, err := p.defineSymbolIn(cur, kind, name, pos)
		if err != nil {
			return false, err
		}
		if s {
			skip = true
		}
		if cur.kind == scopeProgram || cur.kind == scopeModule || cur.kind == scopeFunction {
			break
		}
	}
	return skip, nil
}

/*
defineSymbolIn runs the same rule set as defineSymbol but against an
explicit scope, used by declareVar to hoist through nested blocks.
*/
func (p *Parser) defineSymbolIn(s *scope, kind bindingKind, name string, pos token.Position) (bool, error) {
	saved := p.scope
	p.scope = s
	skip, err := p.defineSymbol(kind, name, pos)
	p.scope = saved
	return skip, err
}
