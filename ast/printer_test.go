/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krotik/ecmaparse/ast"
	"github.com/krotik/ecmaparse/config"
	"github.com/krotik/ecmaparse/internal/perr"
	"github.com/krotik/ecmaparse/parser"
)

func printSource(t *testing.T, src string) string {
	t.Helper()

	rep := perr.NewReporter(src, false, true, false)
	p := parser.New("t.js", src, 1, config.Default(), rep)
	root, err := p.ParseScript()
	assert.New(t).NoError(err)
	assert.New(t).Equal(0, rep.Count())
	return ast.Print(root)
}

func TestPrintVariableDeclaration(t *testing.T) {
	out := printSource(t, "var x = 1;")
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "1")
}

func TestPrintIfElse(t *testing.T) {
	out := printSource(t, "if (a) { b(); } else { c(); }")
	assert.Contains(t, out, "if (")
	assert.Contains(t, out, "else")
}

func TestPrintFunctionDeclaration(t *testing.T) {
	out := printSource(t, "function f(a, b) { return a + b; }")
	assert.Contains(t, out, "function f(")
	assert.Contains(t, out, "return")
}

func TestPrintArrowFunction(t *testing.T) {
	out := printSource(t, "const f = (a, b) => a + b;")
	assert.Contains(t, out, "=>")
}

func TestPrintClassWithMethodAndGetter(t *testing.T) {
	out := printSource(t, "class C { get x() { return 1; } m(a) { return a; } }")
	assert.Contains(t, out, "class C")
	assert.Contains(t, out, "get x(")
	assert.Contains(t, out, "m(")
}

func TestPrintForLoop(t *testing.T) {
	out := printSource(t, "for (let i = 0; i < 10; i++) { x(i); }")
	assert.Contains(t, out, "for (")
}

func TestPrintSwitchWithDefault(t *testing.T) {
	out := printSource(t, "switch (a) { case 1: b(); break; default: c(); }")
	assert.Contains(t, out, "switch (")
	assert.Contains(t, out, "default:")
}

func TestPrintTryCatchFinally(t *testing.T) {
	out := printSource(t, "try { a(); } catch (e) { b(e); } finally { c(); }")
	assert.Contains(t, out, "try")
	assert.Contains(t, out, "catch")
	assert.Contains(t, out, "finally")
}

func TestPrintTemplateLiteral(t *testing.T) {
	out := printSource(t, "const s = `hello ${name}`;")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "name")
}

func TestPrintIndentationNestsByTwoSpaces(t *testing.T) {
	out := printSource(t, "if (a) { if (b) { c(); } }")
	lines := strings.Split(out, "\n")
	var innermost string
	for _, l := range lines {
		if strings.Contains(l, "c()") {
			innermost = l
		}
	}
	assert.NotEmpty(t, innermost)
	leading := len(innermost) - len(strings.TrimLeft(innermost, " "))
	assert.True(t, leading >= 4, "expected nested indentation, got %q", innermost)
}

func TestPrintNamedImportExport(t *testing.T) {
	rep := perr.NewReporter("import { a as b } from \"m\"; export { b as c };", false, true, false)
	p := parser.New("t.mjs", "import { a as b } from \"m\"; export { b as c };", 1, config.Default(), rep)
	root, err := p.ParseModule()
	assert.New(t).NoError(err)
	out := ast.Print(root)
	assert.Contains(t, out, "import { a as b } from \"m\"")
	assert.Contains(t, out, "export { b as c }")
}
