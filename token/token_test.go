/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStringReturnsLiteralLexemeForOperators(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("+", PLUS.String())
	assert.Equal("++", PLUSPLUS.String())
	assert.Equal("&&=", AMPAMP_ASSIGN.String())
	assert.Equal("?.", QUESTIONDOT.String())
	assert.Equal("=>", ARROW.String())
}

func TestKindStringReturnsCategoryLabelForNonLexemeKinds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("identifier", IDENTIFIER.String())
	assert.Equal("template head", TEMPLATE_HEAD.String())
}

func TestKindStringFallsBackForUnnamedKinds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Kind(-1)", Kind(-1).String())
}

func TestIsKeywordExcludesContextualKeywords(t *testing.T) {
	assert := assert.New(t)

	assert.True(BREAK.IsKeyword())
	assert.True(YIELD.IsKeyword())
	assert.False(ASYNC.IsKeyword())
	assert.False(OF.IsKeyword())
	assert.False(IDENTIFIER.IsKeyword())
}

func TestIsPunctuator(t *testing.T) {
	assert := assert.New(t)

	assert.True(PLUS.IsPunctuator())
	assert.True(LBRACE.IsPunctuator())
	assert.False(BREAK.IsPunctuator())
	assert.False(IDENTIFIER.IsPunctuator())
}

func TestKeywordsStrictReservedAndContextualArePartitioned(t *testing.T) {
	assert := assert.New(t)

	for word := range Keywords {
		_, inStrict := StrictReserved[word]
		_, inContextual := Contextual[word]
		assert.False(inStrict, "%q should not be both a Keyword and StrictReserved", word)
		assert.False(inContextual, "%q should not be both a Keyword and Contextual", word)
	}
}

func TestContextualOverlapsStrictReservedByDesign(t *testing.T) {
	assert := assert.New(t)

	// static/let/yield are contextual almost everywhere but become
	// full reserved words in strict mode - spec.md §4.4/§7.
	for _, word := range []string{"static", "let", "yield"} {
		_, inStrict := StrictReserved[word]
		_, inContextual := Contextual[word]
		assert.True(inStrict)
		assert.True(inContextual)
	}
}

func TestPositionString(t *testing.T) {
	assert := assert.New(t)

	p := Position{Line: 3, Column: 7}
	assert.Equal("3:7", p.String())
}

func TestTokenStringQuotesIdentifiersAndLiterals(t *testing.T) {
	assert := assert.New(t)

	tok := Token{Kind: IDENTIFIER, Lexeme: "foo"}
	assert.Equal(`identifier("foo")`, tok.String())

	eof := Token{Kind: EOF}
	assert.Equal("EOF", eof.String())

	plus := Token{Kind: PLUS}
	assert.Equal("+", plus.String())
}
