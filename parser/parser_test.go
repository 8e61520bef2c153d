/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser_test

import (
	"testing"

	"github.com/krotik/ecmaparse/ast"
	"github.com/krotik/ecmaparse/config"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/parser"
)

// parseOK parses src as a script with recovery disabled and fails the
// test if parsing aborts or any diagnostic was reported.
func parseOK(t *testing.T, src string) (*ast.Node, *perr.Reporter) {
	t.Helper()

	rep := perr.NewReporter(src, false, false, false)
	p := parser.New("t.js", src, 1, config.Default(), rep)
	root, err := p.ParseScript()
	if err != nil {
		t.Fatalf("parse aborted: %v", err)
	}
	if rep.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.Errors())
	}
	return root, rep
}

// containsKind reports whether n or any descendant (including the nodes
// reachable through Fields, for the destructuring lowering IR which
// hangs off a VariableDeclarator's "lowering" field rather than its
// Children) has the given Kind.
func containsKind(n *ast.Node, k ast.Kind) bool {
	if n == nil {
		return false
	}
	if n.Kind == k {
		return true
	}
	for _, c := range n.Children {
		if containsKind(c, k) {
			return true
		}
	}
	if n.Fields != nil {
		if lowered, ok := n.Fields["lowering"].(*ast.Node); ok && containsKind(lowered, k) {
			return true
		}
	}
	return false
}

// --- spec.md §8 "Concrete end-to-end scenarios" ---

func TestScenario1_BlockScopedRedeclarationIsAllowedAcrossScopes(t *testing.T) {
	root, _ := parseOK(t, `let x = 1; { let x = 2; } x`)
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 top-level statements, got %d", len(root.Children))
	}
	if root.Children[0].Kind != ast.VariableDeclaration {
		t.Fatalf("expected VariableDeclaration, got %s", root.Children[0].Kind)
	}
	if root.Children[1].Kind != ast.BlockStatement {
		t.Fatalf("expected BlockStatement, got %s", root.Children[1].Kind)
	}
}

func TestScenario2_ForLoopWithLetInitializer(t *testing.T) {
	root, _ := parseOK(t, `for (let i = 0; i < 3; i++) {}`)
	forNode := root.Children[0]
	if forNode.Kind != ast.ForStatement {
		t.Fatalf("expected ForStatement, got %s", forNode.Kind)
	}
	init := forNode.Children[0]
	if init.Kind != ast.VariableDeclaration || init.Str("kind") != "let" {
		t.Fatalf("expected `let` VariableDeclaration init, got %s/%q", init.Kind, init.Str("kind"))
	}
	body := forNode.Children[len(forNode.Children)-1]
	if body.Kind != ast.BlockStatement {
		t.Fatalf("expected block body, got %s", body.Kind)
	}
}

func TestScenario3_AsyncArrowWithAwaitBody(t *testing.T) {
	root, _ := parseOK(t, `async x => await x`)
	exprStmt := root.Children[0]
	arrow := exprStmt.Children[0]
	if arrow.Kind != ast.ArrowFunctionExpression {
		t.Fatalf("expected ArrowFunctionExpression, got %s", arrow.Kind)
	}
	if !arrow.Bool("async") {
		t.Fatalf("expected async flag set")
	}
	if !containsKind(arrow, ast.AwaitExpression) {
		t.Fatalf("expected an AwaitExpression in the arrow body")
	}
}

func TestScenario4_ObjectAndArrayDestructuringLowersToIteratorProtocol(t *testing.T) {
	root, _ := parseOK(t, `const {a, b: [c = 1, ...rest]} = obj`)
	decl := root.Children[0]
	if decl.Kind != ast.VariableDeclaration || decl.Str("kind") != "const" {
		t.Fatalf("expected const VariableDeclaration, got %s/%q", decl.Kind, decl.Str("kind"))
	}
	declarator := decl.Children[0]
	pattern := declarator.Children[0]
	if pattern.Kind != ast.ObjectPattern {
		t.Fatalf("expected ObjectPattern target, got %s", pattern.Kind)
	}
	if !containsKind(declarator, ast.IteratorOpen) {
		t.Fatalf("expected the lowering to acquire an iterator for the nested array pattern")
	}
	if !containsKind(declarator, ast.IteratorClose) {
		t.Fatalf("expected the lowering to emit an IteratorClose for the nested array pattern")
	}
}

func TestScenario5_ClassWithPrivateFieldAndPrivateStaticMethod(t *testing.T) {
	root, _ := parseOK(t, `class C extends B { #x = 1; static #y(){} get p(){return this.#x} }`)
	cls := root.Children[0]
	if cls.Kind != ast.ClassDeclaration {
		t.Fatalf("expected ClassDeclaration, got %s", cls.Kind)
	}
	body := cls.Children[len(cls.Children)-1]
	if body.Kind != ast.ClassBody {
		t.Fatalf("expected ClassBody, got %s", body.Kind)
	}
	if len(body.Children) != 3 {
		t.Fatalf("expected 3 class elements, got %d", len(body.Children))
	}

	field := body.Children[0]
	if field.Kind != ast.PropertyDefinition {
		t.Fatalf("expected PropertyDefinition for #x, got %s", field.Kind)
	}
	key, _ := field.Field("key").(*ast.Node)
	if key == nil || key.Kind != ast.PrivateIdentifier {
		t.Fatalf("expected a private identifier key for #x")
	}

	method := body.Children[1]
	if method.Kind != ast.MethodDefinition || !method.Bool("static") {
		t.Fatalf("expected static MethodDefinition for #y")
	}
	mkey, _ := method.Field("key").(*ast.Node)
	if mkey == nil || mkey.Kind != ast.PrivateIdentifier {
		t.Fatalf("expected a private identifier key for #y")
	}

	getter := body.Children[2]
	if getter.Str("kind") != "get" {
		t.Fatalf("expected getter kind, got %q", getter.Str("kind"))
	}
}

func TestScenario6_ReExportWithRenamedDefault(t *testing.T) {
	rep := perr.NewReporter(`export { foo as default } from "m"`, false, false, false)
	p := parser.New("t.mjs", `export { foo as default } from "m"`, 1, config.Default(), rep)
	root, err := p.ParseModule()
	if err != nil {
		t.Fatalf("parse aborted: %v", err)
	}
	n := root.Children[0]
	if n.Kind != ast.ExportNamedDeclaration {
		t.Fatalf("expected ExportNamedDeclaration, got %s", n.Kind)
	}
	if n.Str("source") != "m" {
		t.Fatalf("expected from-specifier %q, got %q", "m", n.Str("source"))
	}
	spec := n.Children[0]
	local := spec.Children[0]
	if local.Str("name") != "foo" {
		t.Fatalf("expected local name foo, got %q", local.Str("name"))
	}
	exported, _ := spec.Field("exported").(*ast.Node)
	if exported == nil || exported.Str("name") != "default" {
		t.Fatalf("expected exported name default")
	}
}

func TestScenario7_NullishCoalescingNeighboringLogicalOrIsASyntaxError(t *testing.T) {
	rep := perr.NewReporter(`a ?? b || c`, true, false, false)
	p := parser.New("t.js", `a ?? b || c`, 1, config.Default(), rep)
	if _, err := p.ParseScript(); err != nil {
		t.Fatalf("expected recovery rather than abort, got %v", err)
	}
	if rep.Count() == 0 {
		t.Fatalf("expected an ambiguous-nullish-coalescing diagnostic")
	}
	found := false
	for _, e := range rep.Errors() {
		if e.Category == perr.ErrAmbiguousNullishCoalescing {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s among reported diagnostics, got %v", perr.ErrAmbiguousNullishCoalescing, rep.Errors())
	}
}

func TestScenario8_DuplicateStrictModeParameterIsASyntaxError(t *testing.T) {
	src := `function f() { "use strict"; function g(a, a) {} }`
	rep := perr.NewReporter(src, true, false, false)
	p := parser.New("t.js", src, 1, config.Default(), rep)
	if _, err := p.ParseScript(); err != nil {
		t.Fatalf("expected recovery rather than abort, got %v", err)
	}
	found := false
	for _, e := range rep.Errors() {
		if e.Category == perr.ErrDuplicateParameter {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s among reported diagnostics, got %v", perr.ErrDuplicateParameter, rep.Errors())
	}
}

// --- boundary behaviors ---

func TestEmptyInputProducesZeroStatements(t *testing.T) {
	root, _ := parseOK(t, "")
	if len(root.Children) != 0 {
		t.Fatalf("expected zero statements, got %d", len(root.Children))
	}
}

func TestUseStrictDirectiveSetsStrictFlagOnRoot(t *testing.T) {
	root, _ := parseOK(t, `"use strict";`)
	if !root.Bool("strict") {
		t.Fatalf("expected strict flag set on root")
	}
}

func TestTrailingCommaInArgumentListIsAccepted(t *testing.T) {
	root, _ := parseOK(t, `f(1, 2,);`)
	call := root.Children[0].Children[0]
	if call.Kind != ast.CallExpression {
		t.Fatalf("expected CallExpression, got %s", call.Kind)
	}
	args := call.Children[len(call.Children)-1]
	if !args.Bool("trailingComma") {
		t.Fatalf("expected trailingComma flag set on Arguments node")
	}
}

// --- quantified properties ---

func TestRedeclarationOfLetInSameScopeIsReportedExactlyOnce(t *testing.T) {
	src := `let x; let x;`
	rep := perr.NewReporter(src, true, false, false)
	p := parser.New("t.js", src, 1, config.Default(), rep)
	if _, err := p.ParseScript(); err != nil {
		t.Fatalf("expected recovery rather than abort, got %v", err)
	}
	count := 0
	for _, e := range rep.Errors() {
		if e.Category == perr.ErrRedeclaration {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 redeclaration diagnostic, got %d: %v", count, rep.Errors())
	}
}

func TestOptionalChainTagsEntireMemberCallTail(t *testing.T) {
	root, _ := parseOK(t, `a?.b.c()`)
	call := root.Children[0].Children[0]
	if call.Kind != ast.CallExpression {
		t.Fatalf("expected CallExpression, got %s", call.Kind)
	}
	if !call.Bool("optionalChain") {
		t.Fatalf("expected the call tail to be tagged optionalChain")
	}
	callee := call.Children[0]
	if callee.Kind != ast.MemberExpression || !callee.Bool("optionalChain") {
		t.Fatalf("expected the intermediate member access to be tagged optionalChain too")
	}
}

// --- regression: speculative arrow-function parsing must not leave
// phantom diagnostics behind when the parenthesized expression turns
// out not to be an arrow parameter list ---

func TestParenthesizedNonArrowExpressionsReportNoDiagnostics(t *testing.T) {
	for _, src := range []string{
		`(a.b);`,
		`(a + b);`,
		`(f());`,
		`({a: 1});`,
		`(a || b);`,
		`(a, b);`,
	} {
		parseOK(t, src)
	}
}

// --- regression: `let` used as an ordinary identifier, not a
// declaration, when what follows it cannot begin a binding target ---

func TestLetAsIdentifierWhenNotFollowedByABindingTarget(t *testing.T) {
	for _, src := range []string{
		`let instanceof X;`,
		`let.foo;`,
		`let();`,
		`let++;`,
	} {
		root, _ := parseOK(t, src)
		if root.Children[0].Kind != ast.ExpressionStatement {
			t.Fatalf("%q: expected an ExpressionStatement (let used as identifier), got %s", src, root.Children[0].Kind)
		}
	}
}

func TestLetStillStartsADeclarationWhenFollowedByABindingTarget(t *testing.T) {
	for _, src := range []string{
		`let x;`,
		`let [a] = b;`,
		`let {a} = b;`,
	} {
		root, _ := parseOK(t, src)
		if root.Children[0].Kind != ast.VariableDeclaration {
			t.Fatalf("%q: expected a VariableDeclaration, got %s", src, root.Children[0].Kind)
		}
	}
}

// --- regression: argument lists clear the for-head `in` suppression ---

func TestInIsAllowedInsideArgumentListWithinForHead(t *testing.T) {
	parseOK(t, `for (f(a in b); ; ) {}`)
}

// --- regression: class element early errors (spec.md §4.5) ---

func TestConstructorMayNotBeAnAccessorGeneratorOrAsyncMethod(t *testing.T) {
	for _, src := range []string{
		`class C { get constructor() {} }`,
		`class C { set constructor(v) {} }`,
		`class C { *constructor() {} }`,
		`class C { async constructor() {} }`,
	} {
		rep := perr.NewReporter(src, true, false, false)
		p := parser.New("t.js", src, 1, config.Default(), rep)
		if _, err := p.ParseScript(); err != nil {
			t.Fatalf("%q: expected recovery rather than abort, got %v", src, err)
		}
		found := false
		for _, e := range rep.Errors() {
			if e.Category == perr.ErrIllegalClassElementName {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q: expected %s among reported diagnostics, got %v", src, perr.ErrIllegalClassElementName, rep.Errors())
		}
	}
}

func TestStaticClassElementMayNotBeNamedPrototype(t *testing.T) {
	src := `class C { static prototype() {} }`
	rep := perr.NewReporter(src, true, false, false)
	p := parser.New("t.js", src, 1, config.Default(), rep)
	if _, err := p.ParseScript(); err != nil {
		t.Fatalf("expected recovery rather than abort, got %v", err)
	}
	found := false
	for _, e := range rep.Errors() {
		if e.Category == perr.ErrIllegalClassElementName {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s among reported diagnostics, got %v", perr.ErrIllegalClassElementName, rep.Errors())
	}
}
