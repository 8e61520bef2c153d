/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

// RuntimeProvider and Runtime are ported near-verbatim from the teacher's
// parser/runtime.go, which lets ECAL decorate every ASTNode with an
// evaluator component as it is built. The parser core never implements
// Eval itself (spec.md §1 - "evaluating the program" is a non-goal); the
// hook exists purely so a downstream IR/codegen consumer (spec.md §6) can
// plug its own evaluator in without the parser depending on it. The
// krotik/ecmaparse/scope package below ships one concrete Scope so the
// hook is exercised by tests, not left as a dangling interface.

/*
RuntimeProvider provides runtime components for a parse tree. A caller
that wants to evaluate (or lower further) the AST implements this and
sets each node's Runtime field from it; the parser takes no provider and
leaves Runtime nil.
*/
type RuntimeProvider interface {
	Runtime(node *Node) Runtime
}

/*
Runtime is the interface a downstream evaluator attaches to an ASTNode.
*/
type Runtime interface {
	Validate() error
	Eval(scope Scope, instanceState map[string]interface{}, threadID uint64) (interface{}, error)
}

/*
Scope models a binding environment a Runtime evaluates against. Mirrors
the teacher's parser.Scope.
*/
type Scope interface {
	Name() string
	NewChild(name string) Scope
	Clear()
	Parent() Scope
	SetValue(name string, value interface{}) error
	SetLocalValue(name string, value interface{}) error
	GetValue(name string) (interface{}, bool, error)
	String() string
	ToJSONObject() map[string]interface{}
}
