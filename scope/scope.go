/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package scope provides a reference implementation of ast.Scope: a
// binding environment a downstream evaluator can use when it plugs an
// ast.RuntimeProvider into the parser (spec.md §6 "Downstream AST
// consumer"). The parser itself never creates one of these - evaluating
// the program is a non-goal (spec.md §1) - but without a concrete Scope
// the RuntimeProvider hook in ast/runtime.go would be untestable.
//
// Adapted from the teacher's scope/varsscope.go: same parent-chain-plus-
// mutex shape, same NewChild/Clear/String/ToJSONObject API, but with the
// ECAL-specific dotted-name container indexing (`a.b.c` reaching into
// nested maps/lists) stripped out - a JS evaluator resolves member access
// through MemberExpression nodes, not through dotted variable names, so
// that machinery has no role here.
package scope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/krotik/ecmaparse/ast"
)

/*
envScope is a binding environment with a parent chain, used the way a
runtime would track lexical/variable scopes (spec.md §3 distinguishes
FunctionScope from BlockScope at parse time; this is the analogous
runtime-side structure a downstream evaluator needs once it starts
executing against the parsed tree).
*/
type envScope struct {
	name     string
	parent   ast.Scope
	children []*envScope
	storage  map[string]interface{}
	lock     *sync.RWMutex
}

/*
New creates a new root binding environment.
*/
func New(name string) ast.Scope {
	return NewWithParent(name, nil)
}

/*
NewWithParent creates a scope with an explicit parent, without registering
it as a tracked child - useful for building scope trees the caller owns
directly.
*/
func NewWithParent(name string, parent ast.Scope) ast.Scope {
	s := &envScope{name: name, storage: make(map[string]interface{}), lock: &sync.RWMutex{}}
	if p, ok := parent.(*envScope); ok {
		s.parent = p
		s.lock = p.lock
	}
	return s
}

/*
Name returns the scope's name.
*/
func (s *envScope) Name() string { return s.name }

/*
NewChild creates (or returns an existing, same-named) child scope.
*/
func (s *envScope) NewChild(name string) ast.Scope {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, c := range s.children {
		if c.name == name {
			return c
		}
	}

	child := &envScope{name: name, parent: s, storage: make(map[string]interface{}), lock: s.lock}
	s.children = append(s.children, child)
	return child
}

/*
Clear removes all bindings and children from this scope.
*/
func (s *envScope) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.children = nil
	s.storage = make(map[string]interface{})
}

/*
Parent returns the enclosing scope, or nil at the root.
*/
func (s *envScope) Parent() ast.Scope {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

/*
SetValue sets a variable, walking up the parent chain to find where it was
declared (matching JS's lexical-scoping assignment semantics); if no
enclosing scope already has the name, it is created here.
*/
func (s *envScope) SetValue(name string, value interface{}) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if owner := s.owner(name); owner != nil {
		owner.storage[name] = value
		return nil
	}
	s.storage[name] = value
	return nil
}

/*
SetLocalValue forces the binding into this scope regardless of any
same-named binding in an enclosing scope - the runtime counterpart of a
`let`/`const`/`var` declaration shadowing an outer binding.
*/
func (s *envScope) SetLocalValue(name string, value interface{}) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.storage[name] = value
	return nil
}

func (s *envScope) owner(name string) *envScope {
	if _, ok := s.storage[name]; ok {
		return s
	}
	if s.parent != nil {
		if p, ok := s.parent.(*envScope); ok {
			return p.owner(name)
		}
	}
	return nil
}

/*
GetValue looks up a variable along the parent chain.
*/
func (s *envScope) GetValue(name string) (interface{}, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if owner := s.owner(name); owner != nil {
		return owner.storage[name], true, nil
	}
	return nil, false, nil
}

/*
String renders this scope and its ancestors, most specific first.
*/
func (s *envScope) String() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var buf bytes.Buffer
	cur := s
	for cur != nil {
		fmt.Fprintf(&buf, "%s: %v\n", cur.name, cur.sortedNames())
		if cur.parent == nil {
			break
		}
		p, ok := cur.parent.(*envScope)
		if !ok {
			break
		}
		cur = p
	}
	return buf.String()
}

func (s *envScope) sortedNames() []string {
	names := make([]string, 0, len(s.storage))
	for k := range s.storage {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

/*
ToJSONObject renders this scope (and ancestors) as a JSON-ready map.
*/
func (s *envScope) ToJSONObject() map[string]interface{} {
	s.lock.RLock()
	defer s.lock.RUnlock()

	vars := make(map[string]interface{})
	for _, name := range s.sortedNames() {
		vars[name] = s.storage[name]
	}

	out := map[string]interface{}{"name": s.name, "vars": vars}
	if p, ok := s.parent.(*envScope); ok {
		out["parent"] = p.ToJSONObject()
	}
	return out
}

/*
MarshalJSON lets an envScope be dropped straight into encoding/json.
*/
func (s *envScope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToJSONObject())
}
