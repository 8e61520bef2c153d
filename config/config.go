/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package config models the configured environment a parser is given
// (spec.md §6 "Inputs to the parser core"). Adapted from the teacher's
// config.Config global string-keyed map: that shape fit a single shared
// process-wide configuration for ECAL's interpreter, but a parser
// Environment is instead created fresh per call and passed explicitly
// (spec.md §5: "a parser instance is a single-use resource"), so the
// global map becomes a plain struct with a constructor and per-field
// validation, while keeping the teacher's errorutil-based assertion style
// for option validation.
package config

import (
	"fmt"

	"devt.de/krotik/common/errorutil"
)

/*
ProductVersion is the current version of ecmaparse.
*/
const ProductVersion = "1.0.0"

/*
LanguageVersion selects the grammar variant accepted by the parser.
*/
type LanguageVersion string

/*
Known language versions, oldest first.
*/
const (
	Legacy LanguageVersion = "legacy" // pre-ES5, e.g. octal literals unconditionally allowed
	ES5    LanguageVersion = "es5"
	ES6    LanguageVersion = "es6" // ES2015 - classes, let/const, destructuring, modules, generators
	ES2017 LanguageVersion = "es2017"
	ES2020 LanguageVersion = "es2020" // optional chaining, nullish coalescing, BigInt, private fields
)

/*
Environment is the full set of flags the parser core is configured with
(spec.md §6): language version, strict-mode default, error recovery and
IDE-mode behaviour, comment recording, the XML/E4X extension gate, and a
handful of environment-reality escape hatches the teacher's ECAL dialect
does not need but a browser-embeddable ES parser does.
*/
type Environment struct {
	// LanguageVersion gates which grammar productions are accepted.
	LanguageVersion LanguageVersion

	// StrictMode forces the whole input to be parsed as strict-mode code,
	// independent of any "use strict" directive prologue.
	StrictMode bool

	// RecoverFromErrors keeps parsing after a syntax error instead of
	// aborting the current production (spec.md §4.8, §7). Always true
	// when IDEMode is set.
	RecoverFromErrors bool

	// RecordComments retains comments (and JSDoc attachment) instead of
	// discarding them as pure trivia (spec.md §4.1).
	RecordComments bool

	// IDEMode never aborts: all errors are accumulated with position
	// ranges and an AST is always returned (spec.md §4.8).
	IDEMode bool

	// XMLAvailable gates the optional XML/E4X extension (spec.md §1).
	XMLAvailable bool

	// AllowMemberExprAsFunctionName permits `function a.b.c(){}`-style
	// member-expression function names, a legacy extension some hosts
	// accept outside strict mode.
	AllowMemberExprAsFunctionName bool

	// ReportWarningAsError escalates strict-mode warnings (spec.md §7) to
	// full syntax errors.
	ReportWarningAsError bool

	// ReservedKeywordAsIdentifier relaxes future-reserved-word rules,
	// letting callers parse code written against an older edition.
	ReservedKeywordAsIdentifier bool

	// ActivationNames lists global binding names considered pre-declared
	// (e.g. host globals) - used by the Scope & Symbol Tracker to avoid
	// flagging references to them as undeclared.
	ActivationNames []string

	// InEval marks the input as the body of a direct eval() call, which
	// relaxes some of Annex B's non-strict function-in-block hoisting
	// rules (spec.md §4.3 rule 5).
	InEval bool
}

/*
Default returns the Environment used when a caller doesn't configure one
explicitly: the latest supported edition, sloppy mode, no recovery, no
comment recording, not IDE mode, XML disabled.
*/
func Default() *Environment {
	return &Environment{
		LanguageVersion: ES2020,
	}
}

/*
IDE returns the Environment conventionally used by editor tooling: error
recovery and comment recording both on, matching spec.md §4.8's "In IDE
mode the parser never aborts".
*/
func IDE() *Environment {
	e := Default()
	e.IDEMode = true
	e.RecoverFromErrors = true
	e.RecordComments = true
	return e
}

/*
Validate checks the Environment for inconsistent option combinations,
panicking via errorutil (matching the teacher's config.Int/config.Bool
assertion style) since these are programmer errors, not input errors.
*/
func (e *Environment) Validate() {
	errorutil.AssertTrue(e.LanguageVersion != "", "LanguageVersion must be set")

	_, known := map[LanguageVersion]bool{
		Legacy: true, ES5: true, ES6: true, ES2017: true, ES2020: true,
	}[e.LanguageVersion]
	errorutil.AssertTrue(known, fmt.Sprintf("unknown language version: %v", e.LanguageVersion))

	if e.IDEMode {
		errorutil.AssertTrue(e.RecoverFromErrors, "IDEMode requires RecoverFromErrors")
	}
}

/*
SupportsModules reports whether the configured edition has ES module
syntax (spec.md §4.6).
*/
func (e *Environment) SupportsModules() bool {
	return e.LanguageVersion == ES6 || e.LanguageVersion == ES2017 || e.LanguageVersion == ES2020
}

/*
SupportsOptionalChaining reports whether `?.`/`??` are recognised
(spec.md §4.2) - ES2020 only.
*/
func (e *Environment) SupportsOptionalChaining() bool {
	return e.LanguageVersion == ES2020
}

/*
SupportsPrivateFields reports whether `#name` class members parse
(spec.md §4.5) - ES2020 only.
*/
func (e *Environment) SupportsPrivateFields() bool {
	return e.LanguageVersion == ES2020
}

/*
SupportsBigInt reports whether a numeric literal followed by `n` lexes as
a BigInt rather than a syntax error.
*/
func (e *Environment) SupportsBigInt() bool {
	return e.LanguageVersion == ES2020
}

/*
IsActivationName reports whether name is one of the caller's pre-declared
global bindings.
*/
func (e *Environment) IsActivationName(name string) bool {
	for _, n := range e.ActivationNames {
		if n == name {
			return true
		}
	}
	return false
}
