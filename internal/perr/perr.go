/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package perr implements the parser's Error Reporter (spec.md §4.8, §7):
// three severities, position-tagged diagnostics, and an accumulation
// policy that keeps parsing in IDE mode.
//
// Adapted from the teacher's util/error.go RuntimeError/
// TraceableRuntimeError shape (Source/Type/Detail/Node/Line/Pos, JSON
// marshalling) - renamed to SyntaxError and given a Severity, since the
// teacher only ever reports one flavour of error (runtime) while the
// parser must distinguish fatal aborts from recorded syntax errors from
// strict-mode warnings.
package perr

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/krotik/ecmaparse/token"
)

/*
Severity classifies a diagnostic per spec.md §7.
*/
type Severity int

const (
	// SeverityFatal aborts the current production via a sentinel unless
	// RecoverFromErrors is set.
	SeverityFatal Severity = iota
	// SeverityError is recorded and parsing resynchronizes to continue.
	SeverityError
	// SeverityWarning is a strict-mode style advisory, never fatal.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

/*
Category values are stable identifiers for specific diagnostics, playing
the role the teacher's util.Err* sentinel errors play for RuntimeError.Type.
*/
type Category string

const (
	ErrUnexpectedToken          Category = "unexpected token"
	ErrUnexpectedEnd            Category = "unexpected end of input"
	ErrLexicalError             Category = "lexical error"
	ErrImpossibleNullDenotation Category = "impossible null denotation"
	ErrImpossibleLeftDenotation Category = "impossible left denotation"
	ErrDuplicateParameter       Category = "duplicate parameter name"
	ErrRedeclaration            Category = "redeclared variable"
	ErrIllegalLexicalInSingleStatement Category = "lexical declaration in single-statement context"
	ErrIllegalReturn             Category = "illegal return"
	ErrIllegalBreakContinue      Category = "illegal break or continue"
	ErrIllegalYield              Category = "illegal yield"
	ErrIllegalAwait              Category = "illegal await"
	ErrIllegalSuper              Category = "illegal super"
	ErrIllegalNewTarget          Category = "illegal new.target"
	ErrIllegalImportExport       Category = "import/export outside module top level"
	ErrStrictModeViolation       Category = "strict mode violation"
	ErrInvalidDestructuring      Category = "invalid destructuring target"
	ErrTooDeepRecursion          Category = "too deep parser recursion"
	ErrAmbiguousNullishCoalescing Category = "ambiguous use of '??' with '||' or '&&'"
	ErrIllegalClassElementName    Category = "illegal class element name"
)

/*
SyntaxError is a single position-tagged diagnostic.
*/
type SyntaxError struct {
	Source   string
	Category Category
	Severity Severity
	Detail   string
	Pos      token.Position
	LineText string
}

/*
New creates a SyntaxError.
*/
func New(source string, category Category, severity Severity, detail string, pos token.Position) *SyntaxError {
	return &SyntaxError{Source: source, Category: category, Severity: severity, Detail: detail, Pos: pos}
}

/*
Error renders a human-readable message, including the source URI, line
and column the way the teacher's RuntimeError.Error does.
*/
func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Category, e.Detail)
	if e.Source != "" {
		msg = fmt.Sprintf("%s: %s", e.Source, msg)
	}
	return fmt.Sprintf("%s (Line:%d Pos:%d)", msg, e.Pos.Line, e.Pos.Column)
}

/*
MarshalJSON serialises a SyntaxError for IDE-mode consumers.
*/
func (e *SyntaxError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"source":   e.Source,
		"category": string(e.Category),
		"severity": e.Severity.String(),
		"detail":   e.Detail,
		"line":     e.Pos.Line,
		"column":   e.Pos.Column,
		"offset":   e.Pos.Offset,
	})
}

/*
abortSentinel is the sentinel used to unwind a non-recoverable production,
matching the teacher's pattern of returning a wrapped error from `next`/
`run` that propagates up to the nearest recovery point (spec.md §7).
*/
type abortSentinel struct {
	err *SyntaxError
}

func (a *abortSentinel) Error() string { return a.err.Error() }

/*
IsAbort reports whether err is a non-recoverable parse abort and returns
the underlying SyntaxError.
*/
func IsAbort(err error) (*SyntaxError, bool) {
	var a *abortSentinel
	if errors.As(err, &a) {
		return a.err, true
	}
	return nil, false
}

/*
Reporter accumulates diagnostics in source order. It is safe to share
across parses only when written to from a single thread during a single
parse (spec.md §5).
*/
type Reporter struct {
	Source            string
	RecoverFromErrors bool
	IDEMode           bool
	ReportWarningAsError bool

	merr *multierror.Error
}

/*
NewReporter creates a Reporter for the given source label and recovery
policy. IDE mode implies RecoverFromErrors (spec.md §7).
*/
func NewReporter(source string, recoverFromErrors, ideMode, warnAsError bool) *Reporter {
	return &Reporter{
		Source:               source,
		RecoverFromErrors:    recoverFromErrors || ideMode,
		IDEMode:              ideMode,
		ReportWarningAsError: warnAsError,
	}
}

/*
Report records a diagnostic. If the severity is SeverityFatal and
recovery is disabled, Report returns a non-nil error that the caller must
propagate immediately to unwind the current production (spec.md §7).
Warnings are escalated to errors when ReportWarningAsError is set.
*/
func (r *Reporter) Report(category Category, severity Severity, detail string, pos token.Position) error {
	if severity == SeverityWarning && r.ReportWarningAsError {
		severity = SeverityError
	}

	se := New(r.Source, category, severity, detail, pos)
	r.merr = multierror.Append(r.merr, se)

	if severity == SeverityFatal && !r.RecoverFromErrors {
		return &abortSentinel{se}
	}

	return nil
}

/*
Mark snapshots the current diagnostic count so a caller doing speculative
parsing (e.g. the arrow-function reinterpretation in parser/arrow.go,
spec.md §4.2/§4.9) can roll back any diagnostics the speculation recorded
if it turns out not to apply.
*/
func (r *Reporter) Mark() int {
	if r.merr == nil {
		return 0
	}
	return len(r.merr.Errors)
}

/*
Truncate discards every diagnostic recorded since mark, undoing the
effect of an abandoned speculative parse. A no-op if nothing was
recorded since mark.
*/
func (r *Reporter) Truncate(mark int) {
	if r.merr == nil || mark >= len(r.merr.Errors) {
		return
	}
	if mark == 0 {
		r.merr = nil
		return
	}
	r.merr.Errors = r.merr.Errors[:mark]
}

/*
Errors returns all recorded diagnostics in source order.
*/
func (r *Reporter) Errors() []*SyntaxError {
	if r.merr == nil {
		return nil
	}

	out := make([]*SyntaxError, 0, len(r.merr.Errors))
	for _, e := range r.merr.Errors {
		if se, ok := e.(*SyntaxError); ok {
			out = append(out, se)
		}
	}
	return out
}

/*
Count returns the number of recorded diagnostics at or above
SeverityError (warnings don't count towards the §7 "got N syntax errors"
fatality check).
*/
func (r *Reporter) Count() int {
	n := 0
	for _, e := range r.Errors() {
		if e.Severity <= SeverityError {
			n++
		}
	}
	return n
}

/*
Summary renders the non-IDE-mode "got N syntax errors" message (spec.md
§7). Returns "" if there is nothing to report.
*/
func (r *Reporter) Summary() string {
	n := r.Count()
	if n == 0 {
		return ""
	}
	if n == 1 {
		return fmt.Sprintf("%s: got 1 syntax error", r.Source)
	}
	return fmt.Sprintf("%s: got %d syntax errors", r.Source, n)
}

/*
ErrorOrNil returns the accumulated multierror.Error, or nil when empty -
the same "ErrorOrNil" convention go-multierror itself documents.
*/
func (r *Reporter) ErrorOrNil() error {
	if r.merr == nil || r.Count() == 0 {
		return nil
	}
	return r.merr.ErrorOrNil()
}

/*
IDECollector is a Reporter with a stable session identity, so an IDE
integration that keeps re-parsing the same open buffer on every keystroke
can correlate the diagnostics of one parse with the next. The parser
itself has no notion of "the same buffer" - it sees a new Reporter each
call - so the session id is assigned once by the IDE-side caller and
carried alongside the Reporter it creates per parse.
*/
type IDECollector struct {
	*Reporter

	SessionID string
}

/*
NewIDECollector creates a Reporter in IDE mode (always recovers, never
escalates a fatal parse error into an abort) tagged with a fresh session
id.
*/
func NewIDECollector(source string, warnAsError bool) *IDECollector {
	return &IDECollector{
		Reporter:  NewReporter(source, true, true, warnAsError),
		SessionID: uuid.NewString(),
	}
}
