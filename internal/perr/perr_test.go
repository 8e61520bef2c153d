/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package perr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krotik/ecmaparse/token"
)

func TestReporterAccumulatesInSourceOrder(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", true, false, false)

	err1 := r.Report(ErrUnexpectedToken, SeverityError, "first", token.Position{Line: 1, Column: 1})
	err2 := r.Report(ErrUnexpectedToken, SeverityError, "second", token.Position{Line: 2, Column: 1})

	assert.NoError(err1)
	assert.NoError(err2)

	errs := r.Errors()
	assert.Len(errs, 2)
	assert.Equal("first", errs[0].Detail)
	assert.Equal("second", errs[1].Detail)
	assert.Equal(2, r.Count())
}

func TestReporterAbortsOnFatalWithoutRecovery(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", false, false, false)

	err := r.Report(ErrLexicalError, SeverityFatal, "boom", token.Position{Line: 1, Column: 1})

	assert.Error(err)
	se, ok := IsAbort(err)
	assert.True(ok)
	assert.Equal("boom", se.Detail)
}

func TestReporterRecoversWhenConfigured(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", true, false, false)

	err := r.Report(ErrLexicalError, SeverityFatal, "boom", token.Position{Line: 1, Column: 1})

	assert.NoError(err)
	assert.Equal(1, r.Count())
}

func TestIDEModeImpliesRecovery(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", false, true, false)

	assert.True(r.RecoverFromErrors)
}

func TestReportWarningAsError(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", true, false, true)
	r.Report(ErrStrictModeViolation, SeverityWarning, "deprecated", token.Position{})

	errs := r.Errors()
	assert.Len(errs, 1)
	assert.Equal(SeverityError, errs[0].Severity)
	assert.Equal(1, r.Count())
}

func TestWarningsDoNotCountTowardsCountByDefault(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", true, false, false)
	r.Report(ErrStrictModeViolation, SeverityWarning, "deprecated", token.Position{})

	assert.Equal(0, r.Count())
	assert.Equal("", r.Summary())
}

func TestSummary(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", true, false, false)
	assert.Equal("", r.Summary())

	r.Report(ErrUnexpectedToken, SeverityError, "x", token.Position{})
	assert.Equal("a.js: got 1 syntax error", r.Summary())

	r.Report(ErrUnexpectedToken, SeverityError, "y", token.Position{})
	assert.Equal("a.js: got 2 syntax errors", r.Summary())
}

func TestErrorOrNil(t *testing.T) {
	assert := assert.New(t)

	r := NewReporter("a.js", true, false, false)
	assert.Nil(r.ErrorOrNil())

	r.Report(ErrUnexpectedToken, SeverityError, "x", token.Position{})
	assert.Error(r.ErrorOrNil())
}

func TestSyntaxErrorMarshalJSON(t *testing.T) {
	assert := assert.New(t)

	se := New("a.js", ErrUnexpectedToken, SeverityError, "oops", token.Position{Line: 3, Column: 4, Offset: 10})

	data, err := se.MarshalJSON()
	assert.NoError(err)
	assert.Contains(string(data), `"category":"unexpected token"`)
	assert.Contains(string(data), `"severity":"error"`)
	assert.Contains(string(data), `"line":3`)
}

func TestNewIDECollectorAssignsSessionID(t *testing.T) {
	assert := assert.New(t)

	c1 := NewIDECollector("a.js", false)
	c2 := NewIDECollector("a.js", false)

	assert.NotEmpty(c1.SessionID)
	assert.NotEqual(c1.SessionID, c2.SessionID)
	assert.True(c1.IDEMode)
	assert.True(c1.RecoverFromErrors)
}
