/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krotik/ecmaparse/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()

	s := New("t.js", src, 1, false)
	var toks []token.Token
	for {
		tok, _, err := s.Next(true)
		assert.New(t).NoError(err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	assert := assert.New(t)

	toks := scanAll(t, "var x = foo")
	assert.Equal(token.VAR, toks[0].Kind)
	assert.Equal(token.IDENTIFIER, toks[1].Kind)
	assert.Equal("x", toks[1].Lexeme)
	assert.Equal(token.ASSIGN, toks[2].Kind)
	assert.Equal(token.IDENTIFIER, toks[3].Kind)
	assert.Equal(token.EOF, toks[4].Kind)
}

func TestContextualKeywordsGetContextualKind(t *testing.T) {
	assert := assert.New(t)

	// This is the regression test for the lexer's contextual-keyword
	// promotion bug: before the fix, readIdentifier only consulted
	// token.Keywords, so every one of these lexed as a plain
	// IDENTIFIER with the right Lexeme but the wrong Kind.
	cases := map[string]token.Kind{
		"async":  token.ASYNC,
		"await":  token.AWAIT,
		"of":     token.OF,
		"get":    token.GET,
		"set":    token.SET,
		"from":   token.FROM,
		"as":     token.AS,
		"static": token.STATIC,
		"let":    token.LET,
		"yield":  token.YIELD,
	}

	for word, want := range cases {
		toks := scanAll(t, word)
		assert.Equal(want, toks[0].Kind, "word %q", word)
		assert.Equal(word, toks[0].Lexeme, "word %q", word)
	}
}

func TestScanNumberLiteral(t *testing.T) {
	assert := assert.New(t)

	toks := scanAll(t, "123.45")
	assert.Equal(token.NUMBER, toks[0].Kind)
	assert.Equal(123.45, toks[0].NumberValue)
}

func TestScanStringLiteral(t *testing.T) {
	assert := assert.New(t)

	toks := scanAll(t, `"hello\nworld"`)
	assert.Equal(token.STRING, toks[0].Kind)
	assert.Equal("hello\nworld", toks[0].StringValue)
}

func TestScanTemplateNoSubstitution(t *testing.T) {
	assert := assert.New(t)

	toks := scanAll(t, "`plain`")
	assert.Equal(token.NO_SUBST_TEMPLATE, toks[0].Kind)
	assert.Equal("plain", toks[0].StringValue)
}

func TestScanRegexWhenAllowed(t *testing.T) {
	assert := assert.New(t)

	s := New("t.js", "/abc/gi", 1, false)
	tok, _, err := s.Next(true)
	assert.NoError(err)
	assert.Equal(token.REGEXP, tok.Kind)
}

func TestScanDivisionWhenRegexNotAllowed(t *testing.T) {
	assert := assert.New(t)

	s := New("t.js", "/2", 1, false)
	tok, _, err := s.Next(false)
	assert.NoError(err)
	assert.Equal(token.SLASH, tok.Kind)
}

func TestCheckpointRestore(t *testing.T) {
	assert := assert.New(t)

	s := New("t.js", "foo bar", 1, false)

	cp := s.Save()
	first, _, err := s.Next(true)
	assert.NoError(err)
	assert.Equal("foo", first.Lexeme)

	s.Restore(cp)
	again, _, err := s.Next(true)
	assert.NoError(err)
	assert.Equal("foo", again.Lexeme)
}

func TestScanPunctuatorsLongestMatchFirst(t *testing.T) {
	assert := assert.New(t)

	toks := scanAll(t, ">>>=")
	assert.Equal(token.URSHIFT_ASSIGN, toks[0].Kind)
}

func TestScanCommentsAreReportedSeparately(t *testing.T) {
	assert := assert.New(t)

	s := New("t.js", "// a comment\nx", 1, true)
	tok, comments, err := s.Next(true)
	assert.NoError(err)
	assert.Equal(token.IDENTIFIER, tok.Kind)
	assert.Len(comments, 1)
	assert.Equal(token.LineComment, comments[0].Comment)
}

func TestScanJSDocCommentIsTaggedDistinctlyFromPlainBlockComment(t *testing.T) {
	assert := assert.New(t)

	s := New("t.js", "/** doc */\nx", 1, true)
	_, comments, err := s.Next(true)
	assert.NoError(err)
	assert.Len(comments, 1)
	assert.Equal(token.JSDocComment, comments[0].Comment)

	s2 := New("t.js", "/* plain */\nx", 1, true)
	_, comments2, err := s2.Next(true)
	assert.NoError(err)
	assert.Len(comments2, 1)
	assert.Equal(token.BlockComment, comments2[0].Comment)

	s3 := New("t.js", "/**/\nx", 1, true)
	_, comments3, err := s3.Next(true)
	assert.NoError(err)
	assert.Len(comments3, 1)
	assert.Equal(token.BlockComment, comments3[0].Comment)
}
