/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package token defines the vocabulary of lexical tokens the scanner
// produces and the parser's Token Buffer (spec.md §4.1) consumes.
package token

import "fmt"

/*
Kind identifies the lexical category of a Token. There are about 120
kinds: punctuators, keywords (reserved and contextual), literals, comments
and the structural markers EOF (which the scanner returns at the end of
input) and ERROR.
*/
type Kind int

/*
Token kinds. Ordering matters only in that punctuators/keywords/
identifiers/literals form contiguous bands so callers can range-check
cheaply (e.g. `IsKeyword`, `IsAssignOp`).
*/
const (
	EOF Kind = iota
	ERROR
	COMMENT_LINE
	COMMENT_BLOCK

	// Literals

	IDENTIFIER
	PRIVATE_IDENTIFIER // #name
	NUMBER
	BIGINT
	STRING
	REGEXP
	TEMPLATE_HEAD     // `abc${
	TEMPLATE_MIDDLE   // }abc${
	TEMPLATE_TAIL     // }abc`
	NO_SUBST_TEMPLATE // `abc`

	punctuatorsBegin

	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	DOT       // .
	DOTDOTDOT // ...
	SEMICOLON // ;
	COMMA     // ,
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	EQ        // ==
	NE        // !=
	SHEQ      // ===
	SHNE      // !==
	PLUS      // +
	MINUS     // -
	STAR      // *
	PERCENT   // %
	STARSTAR  // **
	PLUSPLUS  // ++
	MINUSMINUS
	LSHIFT  // <<
	RSHIFT  // >>
	URSHIFT // >>>
	AMP     // &
	PIPE    // |
	CARET   // ^
	BANG    // !
	TILDE   // ~
	AMPAMP  // &&
	PIPEPIPE // ||
	QUESTIONQUESTION // ??
	QUESTION         // ?
	QUESTIONDOT      // ?.
	COLON            // :
	ASSIGN           // =
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	PERCENT_ASSIGN
	STARSTAR_ASSIGN
	LSHIFT_ASSIGN
	RSHIFT_ASSIGN
	URSHIFT_ASSIGN
	AMP_ASSIGN
	PIPE_ASSIGN
	CARET_ASSIGN
	AMPAMP_ASSIGN
	PIPEPIPE_ASSIGN
	QUESTIONQUESTION_ASSIGN
	SLASH        // /
	SLASH_ASSIGN // /=
	ARROW        // =>
	AT           // @ (decorator reserved)

	punctuatorsEnd

	keywordsBegin

	// Reserved words

	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	EXPORT
	EXTENDS
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	IN
	INSTANCEOF
	NEW
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH

	// Literal keywords

	NULL
	TRUE
	FALSE

	// Strict-mode future reserved words

	IMPLEMENTS
	INTERFACE
	LET
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC
	STATIC
	YIELD

	keywordsEnd

	// Contextual keywords - identifiers everywhere except in the one
	// syntactic position that gives them meaning (spec.md §4.4).

	ASYNC
	AWAIT
	OF
	GET
	SET
	FROM
	AS
	TARGET // new.target
)

var names = map[Kind]string{
	EOF: "EOF", ERROR: "error", COMMENT_LINE: "//", COMMENT_BLOCK: "/**/",
	IDENTIFIER: "identifier", PRIVATE_IDENTIFIER: "#identifier", NUMBER: "number",
	BIGINT: "bigint", STRING: "string", REGEXP: "regexp",
	TEMPLATE_HEAD: "template head", TEMPLATE_MIDDLE: "template middle",
	TEMPLATE_TAIL: "template tail", NO_SUBST_TEMPLATE: "template",
	LBRACE: "{", RBRACE: "}", LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	DOT: ".", DOTDOTDOT: "...", SEMICOLON: ";", COMMA: ",",
	LT: "<", GT: ">", LE: "<=", GE: ">=", EQ: "==", NE: "!=", SHEQ: "===", SHNE: "!==",
	PLUS: "+", MINUS: "-", STAR: "*", PERCENT: "%", STARSTAR: "**",
	PLUSPLUS: "++", MINUSMINUS: "--", LSHIFT: "<<", RSHIFT: ">>", URSHIFT: ">>>",
	AMP: "&", PIPE: "|", CARET: "^", BANG: "!", TILDE: "~",
	AMPAMP: "&&", PIPEPIPE: "||", QUESTIONQUESTION: "??",
	QUESTION: "?", QUESTIONDOT: "?.", COLON: ":", ASSIGN: "=",
	PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=", PERCENT_ASSIGN: "%=",
	STARSTAR_ASSIGN: "**=", LSHIFT_ASSIGN: "<<=", RSHIFT_ASSIGN: ">>=",
	URSHIFT_ASSIGN: ">>>=", AMP_ASSIGN: "&=", PIPE_ASSIGN: "|=", CARET_ASSIGN: "^=",
	AMPAMP_ASSIGN: "&&=", PIPEPIPE_ASSIGN: "||=", QUESTIONQUESTION_ASSIGN: "??=",
	SLASH: "/", SLASH_ASSIGN: "/=", ARROW: "=>", AT: "@",
	BREAK: "break", CASE: "case", CATCH: "catch", CLASS: "class", CONST: "const",
	CONTINUE: "continue", DEBUGGER: "debugger", DEFAULT: "default", DELETE: "delete",
	DO: "do", ELSE: "else", EXPORT: "export", EXTENDS: "extends", FINALLY: "finally",
	FOR: "for", FUNCTION: "function", IF: "if", IMPORT: "import", IN: "in",
	INSTANCEOF: "instanceof", NEW: "new", RETURN: "return", SUPER: "super",
	SWITCH: "switch", THIS: "this", THROW: "throw", TRY: "try", TYPEOF: "typeof",
	VAR: "var", VOID: "void", WHILE: "while", WITH: "with",
	NULL: "null", TRUE: "true", FALSE: "false",
	IMPLEMENTS: "implements", INTERFACE: "interface", LET: "let", PACKAGE: "package",
	PRIVATE: "private", PROTECTED: "protected", PUBLIC: "public", STATIC: "static",
	YIELD: "yield", ASYNC: "async", AWAIT: "await", OF: "of", GET: "get", SET: "set",
	FROM: "from", AS: "as", TARGET: "target",
}

/*
String renders a Kind using its canonical lexeme (or a category label for
non-punctuator/keyword kinds), matching the style of the teacher's
LexToken.String which upper-cases keywords and symbols for diagnostics.
*/
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
IsKeyword reports whether k lies in the reserved-word band, which also
holds the literal words and the strict-mode reserved words `let`,
`static` and `yield`. Contextual keywords like `async`/`of`/`get`/`set`
are excluded - they are identifiers almost everywhere, see spec.md §4.4.
*/
func (k Kind) IsKeyword() bool {
	return k > keywordsBegin && k < keywordsEnd
}

/*
IsPunctuator reports whether k is a structural symbol.
*/
func (k Kind) IsPunctuator() bool {
	return k > punctuatorsBegin && k < punctuatorsEnd
}

/*
Keywords maps reserved-word lexemes to their Kind. Contextual keywords
(async, await, of, get, set, from, as, static, let, yield) are NOT reserved
words in every mode, so they are looked up separately by the Declaration
Disambiguator (spec.md §4.4) rather than being unconditionally keyworded
here; `Contextual` below lists them.
*/
var Keywords = map[string]Kind{
	"break": BREAK, "case": CASE, "catch": CATCH, "class": CLASS, "const": CONST,
	"continue": CONTINUE, "debugger": DEBUGGER, "default": DEFAULT, "delete": DELETE,
	"do": DO, "else": ELSE, "export": EXPORT, "extends": EXTENDS, "finally": FINALLY,
	"for": FOR, "function": FUNCTION, "if": IF, "import": IMPORT, "in": IN,
	"instanceof": INSTANCEOF, "new": NEW, "return": RETURN, "super": SUPER,
	"switch": SWITCH, "this": THIS, "throw": THROW, "try": TRY, "typeof": TYPEOF,
	"var": VAR, "void": VOID, "while": WHILE, "with": WITH,
	"null": NULL, "true": TRUE, "false": FALSE,
}

/*
StrictReserved lists words that are only reserved in strict-mode code
(spec.md §7 "Context-sensitive early errors").
*/
var StrictReserved = map[string]Kind{
	"implements": IMPLEMENTS, "interface": INTERFACE, "package": PACKAGE,
	"private": PRIVATE, "protected": PROTECTED, "public": PUBLIC,
	"static": STATIC, "let": LET, "yield": YIELD,
}

/*
Contextual lists identifiers that acquire keyword meaning only in specific
syntactic positions (spec.md §4.4, GLOSSARY "Contextual keyword").
*/
var Contextual = map[string]Kind{
	"async": ASYNC, "await": AWAIT, "of": OF, "get": GET, "set": SET,
	"from": FROM, "as": AS, "static": STATIC, "let": LET, "yield": YIELD,
}

/*
Position is an absolute source location: byte offset plus 1-based line and
column, matching spec.md §3's Position data model. AST nodes additionally
carry a Length; Position itself is the point form used by tokens.
*/
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

/*
Token is the unit the scanner hands to the parser's Token Buffer. Flags
mirror spec.md §3's Token data model.
*/
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
	Length int

	// Literal values, populated according to Kind.
	NumberValue float64
	BigIntValue string // decimal digits, sign-less; base already normalised
	StringValue string

	// Flags
	AfterEOL       bool // a line terminator was skipped before this token
	ContainsEscape bool // identifier/keyword written with a \uXXXX escape
	IsRegexBody    bool // scanned as /pattern/flags rather than division
	Comment        CommentKind
}

/*
CommentKind distinguishes how a comment should be attached, mirroring the
teacher's TokenPRECOMMENT/TokenPOSTCOMMENT split (parser/lexer.go).
*/
type CommentKind int

const (
	NoComment CommentKind = iota
	LineComment
	BlockComment
	JSDocComment
)

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case ERROR:
		return fmt.Sprintf("error: %s (%s)", t.Lexeme, t.Pos)
	case IDENTIFIER, NUMBER, BIGINT, STRING:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	}
	return t.Kind.String()
}
