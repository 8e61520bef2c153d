/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package ast is the AST Node Model (spec.md §3, §9): a flat tagged
// variant keyed by node Kind rather than the inheritance-plus-property-bag
// hierarchy the original implementation used. Shared metadata (position,
// length, line, column, optional JSDoc) lives in a header embedded in
// every node; per-variant fields follow.
//
// Adapted from the teacher's parser/helper.go ASTNode (name/token/
// children/meta struct, Equals, String, ToJSONObject) but reshaped: the
// teacher stores one *LexToken per node and renders everything through a
// single Children slice, which is enough for ECAL's small grammar but
// cannot carry JS's many named sub-positions (lp/rp, lc/rc, operator
// position, else position - spec.md §3). Node keeps Children for
// traversal but adds named fields per Kind and a Sub map for position
// hints.
package ast

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"

	"github.com/krotik/ecmaparse/token"
)

/*
Kind tags the syntactic category of a Node. ~80 variants across
statements, declarations, expressions, literals, patterns and module
items, per spec.md §3.
*/
type Kind string

const (
	// Program / module

	Program Kind = "Program"
	Module  Kind = "Module"

	// Statements

	BlockStatement      Kind = "BlockStatement"
	ExpressionStatement Kind = "ExpressionStatement"
	EmptyStatement      Kind = "EmptyStatement"
	DebuggerStatement   Kind = "DebuggerStatement"
	IfStatement         Kind = "IfStatement"
	ForStatement        Kind = "ForStatement"
	ForInStatement      Kind = "ForInStatement"
	ForOfStatement      Kind = "ForOfStatement"
	WhileStatement      Kind = "WhileStatement"
	DoWhileStatement    Kind = "DoWhileStatement"
	BreakStatement      Kind = "BreakStatement"
	ContinueStatement   Kind = "ContinueStatement"
	ReturnStatement     Kind = "ReturnStatement"
	WithStatement       Kind = "WithStatement"
	SwitchStatement     Kind = "SwitchStatement"
	SwitchCase          Kind = "SwitchCase"
	ThrowStatement      Kind = "ThrowStatement"
	TryStatement        Kind = "TryStatement"
	CatchClause         Kind = "CatchClause"
	LabeledStatement    Kind = "LabeledStatement"

	// Declarations

	VariableDeclaration Kind = "VariableDeclaration"
	VariableDeclarator  Kind = "VariableDeclarator"
	FunctionDeclaration Kind = "FunctionDeclaration"
	ClassDeclaration    Kind = "ClassDeclaration"

	// Expressions

	ThisExpression           Kind = "ThisExpression"
	SuperExpression          Kind = "SuperExpression"
	Identifier               Kind = "Identifier"
	PrivateIdentifier        Kind = "PrivateIdentifier"
	Literal                  Kind = "Literal"
	TemplateLiteral          Kind = "TemplateLiteral"
	TaggedTemplateExpression Kind = "TaggedTemplateExpression"
	RegExpLiteral            Kind = "RegExpLiteral"
	ArrayExpression          Kind = "ArrayExpression"
	ObjectExpression         Kind = "ObjectExpression"
	Property                 Kind = "Property"
	FunctionExpression       Kind = "FunctionExpression"
	ArrowFunctionExpression  Kind = "ArrowFunctionExpression"
	ClassExpression          Kind = "ClassExpression"
	ClassBody                Kind = "ClassBody"
	MethodDefinition         Kind = "MethodDefinition"
	PropertyDefinition       Kind = "PropertyDefinition"
	UnaryExpression          Kind = "UnaryExpression"
	UpdateExpression         Kind = "UpdateExpression"
	BinaryExpression         Kind = "BinaryExpression"
	LogicalExpression        Kind = "LogicalExpression"
	AssignmentExpression     Kind = "AssignmentExpression"
	ConditionalExpression    Kind = "ConditionalExpression"
	CallExpression           Kind = "CallExpression"
	NewExpression            Kind = "NewExpression"
	MemberExpression         Kind = "MemberExpression"
	SequenceExpression       Kind = "SequenceExpression"
	Arguments                Kind = "Arguments"
	Params                   Kind = "Params"
	SpreadElement            Kind = "SpreadElement"
	YieldExpression          Kind = "YieldExpression"
	AwaitExpression          Kind = "AwaitExpression"
	MetaProperty             Kind = "MetaProperty" // new.target, import.meta

	// Patterns (destructuring targets, spec.md §4.7)

	ArrayPattern       Kind = "ArrayPattern"
	ObjectPattern      Kind = "ObjectPattern"
	AssignmentPattern  Kind = "AssignmentPattern"
	RestElement        Kind = "RestElement"

	// Module items (spec.md §4.6)

	ImportDeclaration    Kind = "ImportDeclaration"
	ImportDefaultSpecifier   Kind = "ImportDefaultSpecifier"
	ImportNamespaceSpecifier Kind = "ImportNamespaceSpecifier"
	ImportSpecifier          Kind = "ImportSpecifier"
	ExportNamedDeclaration   Kind = "ExportNamedDeclaration"
	ExportDefaultDeclaration Kind = "ExportDefaultDeclaration"
	ExportAllDeclaration     Kind = "ExportAllDeclaration"
	ExportSpecifier          Kind = "ExportSpecifier"

	// Destructuring lowering IR (spec.md §4.7, §6)

	LetExpr          Kind = "LETEXPR"
	CommaSeq         Kind = "COMMA"
	SetName          Kind = "SETNAME"
	SetLetInit       Kind = "SETLETINIT"
	SetConst         Kind = "SETCONST"
	GetProp          Kind = "GETPROP"
	GetElem          Kind = "GETELEM"
	ObjectRestCopy   Kind = "OBJECT_REST_COPY"
	ReqObjCoercible  Kind = "REQ_OBJ_COERCIBLE"
	IteratorOpen     Kind = "ITERATOR_OPEN"
	IteratorNext     Kind = "ITERATOR_NEXT"
	IteratorClose    Kind = "ITERATOR_CLOSE"
	IteratorRestDrain Kind = "ITERATOR_REST_DRAIN"

	// XML/E4X extension (spec.md §1, conditional on Environment.XMLAvailable)

	XMLLiteral Kind = "XMLLiteral"
)

/*
Position mirrors token.Position; re-exported so ast consumers don't need
to import the token package just to read a node's location.
*/
type Position = token.Position

/*
Node is the shared header every AST node embeds, plus a flat Children
slice for generic traversal. Kind-specific accessors are implemented as
methods that read named entries out of Fields/Sub (Field, Str, Bool below).
*/
type Node struct {
	Kind Kind

	// Position metadata (spec.md §3). Pos/Length/Line/Column describe the
	// node's own span. During parsing these are absolute; Attach (below)
	// converts a subtree to parent-relative once the parent is known,
	// deferring fixups exactly as spec.md §3 prescribes.
	Pos    Position
	Length int

	// Sub carries named sub-position hints: lp/rp for paren positions,
	// lc/rc for brace positions, "operator", "else", etc. (spec.md §3).
	Sub map[string]Position

	Children []*Node
	Parent   *Node

	// Fields holds kind-specific scalar data (operator strings, flags,
	// names) so one struct can represent every variant instead of one
	// Go struct type per Kind - the "tagged variant" from spec.md §9.
	Fields map[string]interface{}

	// JSDoc is the most recent pending doc comment attached to this node,
	// per the Token Buffer's retention rule (spec.md §4.1).
	JSDoc string

	// Runtime is an optional hook a downstream IR/codegen consumer can
	// populate via a RuntimeProvider (see runtime.go); the parser itself
	// never calls it - evaluating the program is a non-goal (spec.md §1).
	Runtime Runtime
}

/*
New creates a bare Node of the given kind at an absolute position.
*/
func New(kind Kind, pos Position) *Node {
	return &Node{Kind: kind, Pos: pos, Fields: make(map[string]interface{})}
}

/*
Field looks up a scalar field, returning nil if absent.
*/
func (n *Node) Field(name string) interface{} {
	if n.Fields == nil {
		return nil
	}
	return n.Fields[name]
}

/*
SetField sets a scalar field.
*/
func (n *Node) SetField(name string, value interface{}) *Node {
	if n.Fields == nil {
		n.Fields = make(map[string]interface{})
	}
	n.Fields[name] = value
	return n
}

/*
Str reads a string field, defaulting to "".
*/
func (n *Node) Str(name string) string {
	if v, ok := n.Field(name).(string); ok {
		return v
	}
	return ""
}

/*
Bool reads a bool field, defaulting to false.
*/
func (n *Node) Bool(name string) bool {
	v, _ := n.Field(name).(bool)
	return v
}

/*
AddChild appends a child node, including nil - several productions carry
fixed-arity optional slots (a `for` head's absent init/test/update, a
`return` with no argument, a `try` with no catch) where position in
Children is meaningful and a missing slot must still occupy it.
*/
func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

/*
SetSub records a named sub-position hint (lp/rp, lc/rc, operator, else...).
*/
func (n *Node) SetSub(name string, pos Position) {
	if n.Sub == nil {
		n.Sub = make(map[string]Position)
	}
	n.Sub[name] = pos
}

/*
End returns the end offset of this node's span, in the same frame as Pos
(absolute before Attach, parent-relative after).
*/
func (n *Node) End() int {
	return n.Pos.Offset + n.Length
}

/*
Attach finalises a subtree once its parent is known: it sets Parent links
bottom-up and converts every descendant's Pos from absolute to
parent-relative, per spec.md §3 ("Child positions are stored absolute
during parsing and converted to parent-relative on attach. This defers
fixups and preserves source-range fidelity."). Children are attached
while n's own offset is still absolute, and n is relativized afterwards.
A node is marked with an "__attached" entry in Fields, and Attach returns
at once for a node that carries it, so no offset is converted twice.
*/
func (n *Node) Attach(parent *Node) {
	if n == nil || parent == nil {
		return
	}
	if n.Bool("__attached") {
		return
	}
	n.Parent = parent
	n.SetField("__attached", true)
	for _, c := range n.Children {
		if c != nil {
			c.Attach(n)
		}
	}
	n.Pos.Offset -= parent.Pos.Offset
}

/*
Equals structurally compares two nodes (Kind, Fields, Children), ignoring
parent links and the Runtime hook - the same semantics the teacher's
ASTNode.Equals provides for ECAL's grammar tests (parser/helper.go).
*/
func (n *Node) Equals(other *Node) (bool, string) {
	return n.equalsPath(string(n.Kind), other)
}

func (n *Node) equalsPath(path string, other *Node) (bool, string) {
	if other == nil {
		return false, fmt.Sprintf("%s: other is nil", path)
	}
	if n.Kind != other.Kind {
		return false, fmt.Sprintf("%s: Kind differs %v vs %v", path, n.Kind, other.Kind)
	}
	for k, v := range n.Fields {
		if k == "__attached" {
			continue
		}
		if ov, ok := other.Fields[k]; !ok || fmt.Sprint(v) != fmt.Sprint(ov) {
			return false, fmt.Sprintf("%s: field %q differs %v vs %v", path, k, v, ov)
		}
	}
	if len(n.Children) != len(other.Children) {
		return false, fmt.Sprintf("%s: child count differs %d vs %d", path, len(n.Children), len(other.Children))
	}
	for i, c := range n.Children {
		if c == nil || other.Children[i] == nil {
			if c != other.Children[i] {
				return false, fmt.Sprintf("%s: child %d differs (nil vs non-nil)", path, i)
			}
			continue
		}
		if ok, msg := c.equalsPath(fmt.Sprintf("%s > %s", path, c.Kind), other.Children[i]); !ok {
			return false, msg
		}
	}
	return true, ""
}

/*
String renders an indented tree, in the style of the teacher's
ASTNode.String/levelString (parser/helper.go).
*/
func (n *Node) String() string {
	var buf bytes.Buffer
	n.level(0, &buf)
	return buf.String()
}

func (n *Node) level(indent int, buf *bytes.Buffer) {
	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))
	buf.WriteString(string(n.Kind))

	switch n.Kind {
	case Identifier, PrivateIdentifier:
		buf.WriteString(fmt.Sprintf(": %v", n.Field("name")))
	case Literal:
		buf.WriteString(fmt.Sprintf(": %v", n.Field("value")))
	}

	buf.WriteString("\n")
	for _, c := range n.Children {
		if c == nil {
			buf.WriteString(stringutil.GenerateRollingString(" ", (indent+1)*2))
			buf.WriteString("<nil>\n")
			continue
		}
		c.level(indent+1, buf)
	}
}

/*
ToJSONObject renders the node and its subtree as a JSON-ready map, for the
CLI's `ast` subcommand and for IDE tooling - ported from the teacher's
ASTNode.ToJSONObject (parser/helper.go).
*/
func (n *Node) ToJSONObject() map[string]interface{} {
	out := map[string]interface{}{
		"kind":   string(n.Kind),
		"pos":    n.Pos.Offset,
		"line":   n.Pos.Line,
		"column": n.Pos.Column,
		"length": n.Length,
	}

	if len(n.Fields) > 0 {
		fields := make(map[string]interface{})
		for k, v := range n.Fields {
			if k == "__attached" {
				continue
			}
			fields[k] = v
		}
		if len(fields) > 0 {
			out["fields"] = fields
		}
	}

	if len(n.Children) > 0 {
		children := make([]map[string]interface{}, len(n.Children))
		for i, c := range n.Children {
			if c != nil {
				children[i] = c.ToJSONObject()
			}
		}
		out["children"] = children
	}

	return out
}
