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

import (
	"bytes"
	"fmt"
	"strconv"

	"devt.de/krotik/common/stringutil"
)

/*
IndentWidth is the number of spaces Print uses per nesting level, mirroring
the teacher's parser.IndentationLevel.
*/
const IndentWidth = 2

/*
Print renders root as source text, reconstructed from the AST rather than
copied from the original input - the round-trip the `ecmaparse fmt`
subcommand performs.

The teacher's PrettyPrinter (parser/prettyprinter.go) drives one
text/template per node kind, keyed by child count, because ECAL's small
grammar has one spelling per node. JavaScript doesn't: a MemberExpression
prints differently computed vs. dotted vs. optional, a VariableDeclaration
differently per declaration kind, and some kinds are pure bookkeeping for
the destructuring lowering pass that share their Kind string with no
printable form at all. A fixed per-kind template can't express that, so
this follows the teacher's indentation bookkeeping (stringutil.GenerateRollingString
for level-based indent, same as the teacher's levelString helper) but
dispatches per kind with an ordinary Go switch instead of a template map.
*/
func Print(root *Node) string {
	var buf bytes.Buffer
	p := &printer{buf: &buf}
	p.statementList(root.Children, 0)
	return buf.String()
}

type printer struct {
	buf *bytes.Buffer
}

func indent(level int) string {
	return stringutil.GenerateRollingString(" ", level*IndentWidth)
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
}

func (p *printer) line(level int, s string) {
	p.write(indent(level))
	p.write(s)
	p.write("\n")
}

func (p *printer) statementList(stmts []*Node, level int) {
	for _, s := range stmts {
		if s == nil {
			continue
		}
		p.statement(s, level)
	}
}

func (p *printer) statement(n *Node, level int) {
	switch n.Kind {
	case BlockStatement:
		p.line(level, "{")
		p.statementList(n.Children, level+1)
		p.line(level, "}")
	case VariableDeclaration:
		p.line(level, p.variableDeclaration(n)+";")
	case FunctionDeclaration:
		p.write(indent(level))
		p.functionHeader(n)
		p.write(" ")
		p.functionBody(n, level)
	case ClassDeclaration:
		p.write(indent(level))
		p.classHeader(n)
		p.write(" ")
		p.classBody(n, level)
	case ExpressionStatement:
		p.line(level, p.expr(n.Children[0])+";")
	case EmptyStatement:
		p.line(level, ";")
	case DebuggerStatement:
		p.line(level, "debugger;")
	case ReturnStatement:
		if n.Children[0] == nil {
			p.line(level, "return;")
		} else {
			p.line(level, "return "+p.expr(n.Children[0])+";")
		}
	case ThrowStatement:
		p.line(level, "throw "+p.expr(n.Children[0])+";")
	case BreakStatement:
		if n.Children[0] != nil {
			p.line(level, "break "+p.expr(n.Children[0])+";")
		} else {
			p.line(level, "break;")
		}
	case ContinueStatement:
		if n.Children[0] != nil {
			p.line(level, "continue "+p.expr(n.Children[0])+";")
		} else {
			p.line(level, "continue;")
		}
	case IfStatement:
		p.write(indent(level))
		p.write("if (" + p.expr(n.Children[0]) + ") ")
		p.singleStatementInline(n.Children[1], level)
		if len(n.Children) > 2 && n.Children[2] != nil {
			p.write(indent(level) + "else ")
			p.singleStatementInline(n.Children[2], level)
		}
	case WhileStatement:
		p.write(indent(level))
		p.write("while (" + p.expr(n.Children[0]) + ") ")
		p.singleStatementInline(n.Children[1], level)
	case DoWhileStatement:
		p.write(indent(level))
		p.write("do ")
		p.singleStatementInline(n.Children[0], level)
		p.write(indent(level) + "while (" + p.expr(n.Children[1]) + ");\n")
	case ForStatement:
		p.forStatement(n, level)
	case ForInStatement:
		p.write(indent(level))
		p.write("for (" + p.expr(n.Children[0]) + " in " + p.expr(n.Children[1]) + ") ")
		p.singleStatementInline(n.Children[2], level)
	case ForOfStatement:
		kw := "for ("
		if n.Bool("await") {
			kw = "for await ("
		}
		p.write(indent(level))
		p.write(kw + p.expr(n.Children[0]) + " of " + p.expr(n.Children[1]) + ") ")
		p.singleStatementInline(n.Children[2], level)
	case SwitchStatement:
		p.write(indent(level))
		p.write("switch (" + p.expr(n.Children[0]) + ") {\n")
		for _, c := range n.Children[1:] {
			p.switchCase(c, level+1)
		}
		p.line(level, "}")
	case TryStatement:
		p.write(indent(level))
		p.write("try ")
		p.statement(n.Children[0], level)
		if n.Children[1] != nil {
			p.tryCatch(n.Children[1], level)
		}
		if n.Children[2] != nil {
			p.write(indent(level) + "finally ")
			p.statement(n.Children[2], level)
		}
	case LabeledStatement:
		p.write(indent(level) + n.Children[0].Str("name") + ": ")
		p.singleStatementInline(n.Children[1], level)
	case WithStatement:
		p.write(indent(level))
		p.write("with (" + p.expr(n.Children[0]) + ") ")
		p.singleStatementInline(n.Children[1], level)
	case ImportDeclaration:
		p.line(level, p.importDecl(n)+";")
	case ExportNamedDeclaration, ExportDefaultDeclaration, ExportAllDeclaration:
		p.exportDecl(n, level)
	default:
		p.line(level, fmt.Sprintf("/* unprintable node %s */", n.Kind))
	}
}

// singleStatementInline prints a statement that can be either a block
// (printed in place, no leading newline) or a single statement (printed
// on its own line, indented one level deeper).
func (p *printer) singleStatementInline(n *Node, level int) {
	if n == nil {
		p.write(";\n")
		return
	}
	if n.Kind == BlockStatement {
		p.write("{\n")
		p.statementList(n.Children, level+1)
		p.line(level, "}")
		return
	}
	p.write("\n")
	p.statement(n, level+1)
}

func (p *printer) switchCase(n *Node, level int) {
	// A case's test, if present, is always the first child; remaining
	// children are the statement list.
	if n.Bool("default") {
		p.line(level, "default:")
		p.statementList(n.Children, level+1)
		return
	}
	test := n.Children[0]
	p.line(level, "case "+p.expr(test)+":")
	p.statementList(n.Children[1:], level+1)
}

func (p *printer) tryCatch(n *Node, level int) {
	p.write(indent(level) + "catch ")
	if n.Children[0] != nil {
		p.write("(" + p.expr(n.Children[0]) + ") ")
	}
	p.statement(n.Children[1], level)
}

func (p *printer) forStatement(n *Node, level int) {
	init, test, update, body := "", "", "", n.Children[3]
	if n.Children[0] != nil {
		if n.Children[0].Kind == VariableDeclaration {
			init = p.variableDeclaration(n.Children[0])
		} else {
			init = p.expr(n.Children[0])
		}
	}
	if n.Children[1] != nil {
		test = p.expr(n.Children[1])
	}
	if n.Children[2] != nil {
		update = p.expr(n.Children[2])
	}
	p.write(indent(level))
	p.write("for (" + init + "; " + test + "; " + update + ") ")
	p.singleStatementInline(body, level)
}

func (p *printer) variableDeclaration(n *Node) string {
	s := n.Str("kind") + " "
	for i, d := range n.Children {
		if i > 0 {
			s += ", "
		}
		s += p.expr(d.Children[0])
		if len(d.Children) > 1 && d.Children[1] != nil {
			s += " = " + p.expr(d.Children[1])
		}
	}
	return s
}

// functionHeader prints `function` / `function*` / `async function`
// through the parameter list for a FunctionDeclaration/FunctionExpression
// node, whose children are [name|nil, params, body].
func (p *printer) functionHeader(n *Node) {
	kw := "function"
	if n.Bool("generator") {
		kw += "*"
	}
	if n.Bool("async") {
		kw = "async " + kw
	}
	p.write(kw)
	if name := n.Children[0]; name != nil {
		p.write(" " + name.Str("name"))
	} else {
		p.write(" ")
	}
	p.write(p.paramList(n.Children[1]))
}

// functionBody prints the `{ ... }` block of a FunctionDeclaration/
// FunctionExpression node (body is always the last of its 3 children).
func (p *printer) functionBody(n *Node, level int) {
	body := n.Children[2]
	p.write("{\n")
	p.statementList(body.Children, level+1)
	p.line(level, "}")
}

func (p *printer) paramList(params *Node) string {
	s := "("
	for i, c := range params.Children {
		if i > 0 {
			s += ", "
		}
		s += p.expr(c)
	}
	return s + ")"
}

// classHeader prints `class Name extends Super` for a ClassDeclaration/
// ClassExpression node, whose children are [name|nil, superClass|nil, body].
func (p *printer) classHeader(n *Node) {
	p.write("class")
	if name := n.Children[0]; name != nil {
		p.write(" " + name.Str("name"))
	}
	if sup := n.Children[1]; sup != nil {
		p.write(" extends " + p.expr(sup))
	}
}

func (p *printer) classBody(n *Node, level int) {
	body := n.Children[2]
	p.write("{\n")
	for _, el := range body.Children {
		p.classElement(el, level+1)
	}
	p.line(level, "}")
}

func (p *printer) classElement(n *Node, level int) {
	switch n.Kind {
	case MethodDefinition:
		kind := n.Str("kind")
		if kind == "static-block" {
			p.write(indent(level) + "static ")
			p.write("{\n")
			p.statementList(n.Children[0].Children, level+1)
			p.line(level, "}")
			return
		}
		fn, _ := n.Field("value").(*Node)
		key, _ := n.Field("key").(*Node)
		prefix := ""
		if n.Bool("static") {
			prefix += "static "
		}
		if fn.Bool("async") {
			prefix += "async "
		}
		if fn.Bool("generator") {
			prefix += "*"
		}
		if kind == "get" || kind == "set" {
			prefix += kind + " "
		}
		p.write(indent(level) + prefix + p.expr(key) + p.paramList(fn.Children[1]) + " ")
		p.functionBody(fn, level)
	case PropertyDefinition:
		prefix := ""
		if n.Bool("static") {
			prefix = "static "
		}
		key, _ := n.Field("key").(*Node)
		if len(n.Children) > 0 && n.Children[0] != nil {
			p.line(level, prefix+p.expr(key)+" = "+p.expr(n.Children[0])+";")
		} else {
			p.line(level, prefix+p.expr(key)+";")
		}
	default:
		p.line(level, fmt.Sprintf("/* unprintable class element %s */", n.Kind))
	}
}

func (p *printer) importDecl(n *Node) string {
	src := strconv.Quote(n.Str("source"))
	if len(n.Children) == 0 {
		return "import " + src
	}
	var parts []string
	var named []string
	for _, s := range n.Children {
		switch s.Kind {
		case ImportDefaultSpecifier:
			parts = append(parts, p.expr(s.Children[0]))
		case ImportNamespaceSpecifier:
			parts = append(parts, "* as "+p.expr(s.Children[0]))
		case ImportSpecifier:
			imported := s.Field("imported").(*Node).Str("name")
			local := s.Children[0].Str("name")
			if imported == local {
				named = append(named, imported)
			} else {
				named = append(named, imported+" as "+local)
			}
		}
	}
	if len(named) > 0 {
		s := "{ "
		for i, nm := range named {
			if i > 0 {
				s += ", "
			}
			s += nm
		}
		s += " }"
		parts = append(parts, s)
	}
	head := ""
	for i, s := range parts {
		if i > 0 {
			head += ", "
		}
		head += s
	}
	return "import " + head + " from " + src
}

func (p *printer) exportDecl(n *Node, level int) {
	switch n.Kind {
	case ExportDefaultDeclaration:
		if n.Children[0].Kind == FunctionDeclaration || n.Children[0].Kind == ClassDeclaration {
			p.write(indent(level) + "export default ")
			p.statement(n.Children[0], 0)
		} else {
			p.line(level, "export default "+p.expr(n.Children[0])+";")
		}
	case ExportAllDeclaration:
		s := "export *"
		if ns, ok := n.Field("exported").(*Node); ok {
			s += " as " + ns.Str("name")
		}
		s += " from " + strconv.Quote(n.Str("source"))
		p.line(level, s+";")
	case ExportNamedDeclaration:
		if len(n.Children) == 1 && n.Children[0].Kind != ExportSpecifier {
			p.write(indent(level) + "export ")
			p.statement(n.Children[0], 0)
			return
		}
		s := "export { "
		for i, spec := range n.Children {
			if i > 0 {
				s += ", "
			}
			local := spec.Children[0].Str("name")
			exported := spec.Field("exported").(*Node).Str("name")
			if local == exported {
				s += local
			} else {
				s += local + " as " + exported
			}
		}
		s += " }"
		if src := n.Str("source"); src != "" {
			s += " from " + strconv.Quote(src)
		}
		p.line(level, s+";")
	}
}

// expr renders an expression-position node to a single-line string.
// Every BinaryExpression/LogicalExpression node is printed wrapped in
// parentheses as a whole. Conditional, assignment and sequence expressions
// are printed without parentheses, so where one of them is an operand the
// output can parse back differently: `(a ? b : c) + d` prints as
// `(a ? b : c + d)`.
func (p *printer) expr(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case Identifier:
		return n.Str("name")
	case PrivateIdentifier:
		return "#" + n.Str("name")
	case ThisExpression:
		return "this"
	case SuperExpression:
		return "super"
	case Literal:
		return p.literal(n)
	case RegExpLiteral:
		return n.Str("raw")
	case ArrayExpression, ArrayPattern:
		s := "["
		for i, el := range n.Children {
			if i > 0 {
				s += ", "
			}
			s += p.expr(el)
		}
		return s + "]"
	case ObjectExpression, ObjectPattern:
		s := "{"
		for i, el := range n.Children {
			if i > 0 {
				s += ", "
			}
			s += p.expr(el)
		}
		return s + "}"
	case Property:
		return p.property(n)
	case SpreadElement, RestElement:
		return "..." + p.expr(n.Children[0])
	case AssignmentPattern:
		return p.expr(n.Children[0]) + " = " + p.expr(n.Children[1])
	case FunctionExpression:
		return p.funcExprString(n)
	case ArrowFunctionExpression:
		return p.arrowString(n)
	case ClassExpression:
		return p.classExprString(n)
	case UnaryExpression:
		op := n.Str("operator")
		if n.Bool("prefix") {
			if len(op) > 1 {
				return op + " " + p.expr(n.Children[0])
			}
			return op + p.expr(n.Children[0])
		}
		return p.expr(n.Children[0]) + op
	case UpdateExpression:
		if n.Bool("prefix") {
			return n.Str("operator") + p.expr(n.Children[0])
		}
		return p.expr(n.Children[0]) + n.Str("operator")
	case BinaryExpression, LogicalExpression:
		return "(" + p.expr(n.Children[0]) + " " + n.Str("operator") + " " + p.expr(n.Children[1]) + ")"
	case AssignmentExpression:
		return p.expr(n.Children[0]) + " " + n.Str("operator") + " " + p.expr(n.Children[1])
	case ConditionalExpression:
		return p.expr(n.Children[0]) + " ? " + p.expr(n.Children[1]) + " : " + p.expr(n.Children[2])
	case SequenceExpression:
		s := ""
		for i, c := range n.Children {
			if i > 0 {
				s += ", "
			}
			s += p.expr(c)
		}
		return s
	case CallExpression:
		return p.expr(n.Children[0]) + p.optionalDot(n) + p.argsString(n.Children[1])
	case NewExpression:
		s := "new " + p.expr(n.Children[0])
		if len(n.Children) > 1 {
			s += p.argsString(n.Children[1])
		} else {
			s += "()"
		}
		return s
	case MemberExpression:
		if n.Bool("computed") {
			return p.expr(n.Children[0]) + p.optionalDot(n) + "[" + p.expr(n.Children[1]) + "]"
		}
		return p.expr(n.Children[0]) + p.optionalDotPlain(n) + p.expr(n.Children[1])
	case TaggedTemplateExpression:
		return p.expr(n.Children[0]) + p.expr(n.Children[1])
	case TemplateLiteral:
		return p.templateString(n)
	case YieldExpression:
		s := "yield"
		if n.Bool("delegate") {
			s += "*"
		}
		if len(n.Children) > 0 && n.Children[0] != nil {
			s += " " + p.expr(n.Children[0])
		}
		return s
	case AwaitExpression:
		return "await " + p.expr(n.Children[0])
	case MetaProperty:
		return n.Str("meta") + "." + n.Str("property")
	case Params:
		return p.paramList(n)
	case Arguments:
		return p.argsString(n)
	default:
		return fmt.Sprintf("/* unprintable expr %s */", n.Kind)
	}
}

// property renders a Property node (object literal member or object
// destructuring pattern entry): key and value live in Fields, never
// Children, since a shorthand property's key and value are the same node.
func (p *printer) property(n *Node) string {
	key, _ := n.Field("key").(*Node)
	value, _ := n.Field("value").(*Node)
	keyStr := p.expr(key)
	if n.Bool("computed") {
		keyStr = "[" + keyStr + "]"
	}
	if n.Bool("shorthand") {
		if value != nil && value.Kind == AssignmentPattern {
			return p.expr(value)
		}
		return keyStr
	}
	kindField := n.Str("kind")
	if n.Bool("method") || kindField == "get" || kindField == "set" {
		fn := value
		prefix := ""
		if fn.Bool("async") {
			prefix += "async "
		}
		if fn.Bool("generator") {
			prefix += "*"
		}
		if kindField == "get" || kindField == "set" {
			prefix += kindField + " "
		}
		var buf bytes.Buffer
		saved := p.buf
		p.buf = &buf
		p.write(prefix + keyStr + p.paramList(fn.Children[1]) + " ")
		p.functionBody(fn, 0)
		p.buf = saved
		return buf.String()
	}
	return keyStr + ": " + p.expr(value)
}

func (p *printer) optionalDot(n *Node) string {
	if n.Bool("optional") {
		return "?."
	}
	return ""
}

func (p *printer) optionalDotPlain(n *Node) string {
	if n.Bool("optional") {
		return "?."
	}
	return "."
}

func (p *printer) argsString(args *Node) string {
	s := "("
	for i, a := range args.Children {
		if i > 0 {
			s += ", "
		}
		s += p.expr(a)
	}
	return s + ")"
}

func (p *printer) literal(n *Node) string {
	switch n.Str("literalType") {
	case "string":
		return strconv.Quote(n.Str("value"))
	case "null":
		return "null"
	case "boolean":
		if n.Bool("value") {
			return "true"
		}
		return "false"
	default:
		return n.Str("raw")
	}
}

// templateString re-assembles a TemplateLiteral: quasis holds len(Children)+1
// cooked-text segments, Children holds only the substitution expressions
// between them (spec.md §4.1's TEMPLATE_HEAD/MIDDLE/TAIL stitching).
func (p *printer) templateString(n *Node) string {
	quasis, _ := n.Field("quasis").([]interface{})
	s := "`"
	for i, expr := range n.Children {
		if i < len(quasis) {
			s += fmt.Sprintf("%v", quasis[i])
		}
		s += "${" + p.expr(expr) + "}"
	}
	if len(quasis) > 0 {
		s += fmt.Sprintf("%v", quasis[len(quasis)-1])
	}
	return s + "`"
}

func (p *printer) funcExprString(n *Node) string {
	var buf bytes.Buffer
	saved := p.buf
	p.buf = &buf
	p.functionHeader(n)
	p.write(" ")
	p.functionBody(n, 0)
	p.buf = saved
	return buf.String()
}

func (p *printer) arrowString(n *Node) string {
	s := ""
	if n.Bool("async") {
		s += "async "
	}
	s += p.paramList(n.Children[0]) + " => "
	if n.Bool("expression") {
		return s + p.expr(n.Children[1])
	}
	var buf bytes.Buffer
	saved := p.buf
	p.buf = &buf
	p.write("{\n")
	p.statementList(n.Children[1].Children, 1)
	p.write("}")
	p.buf = saved
	return s + buf.String()
}

func (p *printer) classExprString(n *Node) string {
	var buf bytes.Buffer
	saved := p.buf
	p.buf = &buf
	p.classHeader(n)
	p.write(" ")
	p.classBody(n, 0)
	p.buf = saved
	return buf.String()
}
