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
	"devt.de/krotik/common/datautil"

	"github.com/krotik/ecmaparse/lexer"
	"github.com/krotik/ecmaparse/token"
)

/*
tokenBuffer is the Token Buffer component (spec.md §4.1): a single-token
lookahead over the scanner. Adapted from the teacher's LABuffer
(parser/helper.go), which fed a channel-delivered token stream into a
datautil.RingBuffer; this buffer instead pulls directly from a
lexer.Scanner since JS tokenization needs the parser to tell the scanner
whether `/` starts a regex and when to resume scanning a template tail -
a free-running producer goroutine can't take that instruction. The
RingBuffer is kept for its role here: queuing comment tokens gathered
between two real tokens so the most recent JSDoc-style comment can be
retained for attachment to the next declaration.
*/
type tokenBuffer struct {
	scanner *lexer.Scanner

	cur  token.Token
	curComments []token.Token

	pendingJSDoc string
	recordComments bool

	// regexAllowed reflects whether the token just consumed can be
	// followed by a `/` that starts a regex body, rather than a division
	// operator - updated after every consume.
	regexAllowed bool

	comments *datautil.RingBuffer
}

/*
newTokenBuffer creates a tokenBuffer over scanner and primes the first
token.
*/
func newTokenBuffer(scanner *lexer.Scanner, recordComments bool) (*tokenBuffer, error) {
	b := &tokenBuffer{
		scanner:        scanner,
		recordComments: recordComments,
		regexAllowed:   true,
		comments:       datautil.NewRingBuffer(16),
	}
	if err := b.advance(); err != nil {
		return nil, err
	}
	return b, nil
}

/*
advance pulls the next token (skipping trivia, which the scanner already
does) into cur, updating regexAllowed from the token kind just consumed.
*/
func (b *tokenBuffer) advance() error {
	tok, comments, err := b.scanner.Next(b.regexAllowed)
	if err != nil {
		return err
	}

	for _, c := range comments {
		if b.recordComments {
			b.comments.Add(c)
			if c.Comment == token.JSDocComment {
				b.pendingJSDoc = c.Lexeme
			}
		}
	}

	b.cur = tok
	b.regexAllowed = regexAllowedAfter(tok)

	return nil
}

/*
regexAllowedAfter reports whether a `/` seen right after tok should be
read as the start of a regex body rather than a division/assign-division
operator - true after most tokens except value-producing ones (an
identifier, a literal, `)`, `]`, postfix `++`/`--`, `this`, `super`).
*/
func regexAllowedAfter(tok token.Token) bool {
	switch tok.Kind {
	case token.IDENTIFIER, token.NUMBER, token.BIGINT, token.STRING,
		token.NULL, token.TRUE, token.FALSE, token.REGEXP, token.THIS, token.SUPER, token.RPAREN, token.RBRACKET,
		token.PLUSPLUS, token.MINUSMINUS, token.NO_SUBST_TEMPLATE, token.TEMPLATE_TAIL:
		return false
	}
	// A contextual keyword (async, await, of, get, set, static, from, as,
	// let, yield) behaves like a value-producing identifier wherever a
	// division can follow it, e.g. `yield / 2` outside a generator.
	if _, ok := token.Contextual[tok.Lexeme]; ok {
		return false
	}
	return true
}

/*
Peek returns the current lookahead token without consuming it.
*/
func (b *tokenBuffer) Peek() token.Token {
	return b.cur
}

/*
Consume discards the current token and advances, returning the consumed
token.
*/
func (b *tokenBuffer) Consume() (token.Token, error) {
	t := b.cur
	return t, b.advance()
}

/*
Match reports whether the current token has the given kind; if so it is
consumed.
*/
func (b *tokenBuffer) Match(kind token.Kind) (bool, error) {
	if b.cur.Kind != kind {
		return false, nil
	}
	_, err := b.Consume()
	return true, err
}

/*
TakeJSDoc returns and clears the most recently recorded JSDoc-style
comment, for attachment to the next declaration node.
*/
func (b *tokenBuffer) TakeJSDoc() string {
	d := b.pendingJSDoc
	b.pendingJSDoc = ""
	return d
}

/*
checkpoint is a saved tokenBuffer position (scanner checkpoint plus the
currently-peeked token and regex-context flag), used for the bounded
backtracking the grammar genuinely needs: arrow-parameter reinterpretation
and labeled-statement lookahead (spec.md §4.2, §9).
*/
type checkpoint struct {
	scanner      lexer.Checkpoint
	cur          token.Token
	regexAllowed bool
	pendingJSDoc string
}

/*
Save captures the buffer's current position.
*/
func (b *tokenBuffer) Save() checkpoint {
	return checkpoint{
		scanner:      b.scanner.Save(),
		cur:          b.cur,
		regexAllowed: b.regexAllowed,
		pendingJSDoc: b.pendingJSDoc,
	}
}

/*
Restore rewinds the buffer to a previously captured checkpoint. Comments
recorded between the checkpoint and the restore point are not un-recorded,
and re-scanning after the restore records them again, so a comment inside
an abandoned speculative parse can appear twice in the comment queue.
*/
func (b *tokenBuffer) Restore(c checkpoint) {
	b.scanner.Restore(c.scanner)
	b.cur = c.cur
	b.regexAllowed = c.regexAllowed
	b.pendingJSDoc = c.pendingJSDoc
}

/*
NextTemplatePart asks the scanner to resume scanning a template literal
after the parser has consumed a `${ ... }` substitution expression.
*/
func (b *tokenBuffer) NextTemplatePart() error {
	tok, err := b.scanner.NextTemplatePart()
	if err != nil {
		return err
	}
	b.cur = tok
	b.regexAllowed = regexAllowedAfter(tok)
	return nil
}
