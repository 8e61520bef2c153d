/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package elog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	assert := assert.New(t)

	_, err := New("test", "trace")
	assert.Error(err)
}

func TestNewAcceptsKnownLevels(t *testing.T) {
	assert := assert.New(t)

	for _, lvl := range []Level{Debug, Info, Error} {
		l, err := New("test", lvl)
		assert.NoError(err)
		assert.Equal(lvl, l.Level())
	}
}

func TestLoggingDoesNotPanic(t *testing.T) {
	assert := assert.New(t)

	l, err := New("test", Debug)
	assert.NoError(err)

	assert.NotPanics(func() {
		l.LogDebug("debug message")
		l.LogInfo("info message")
		l.LogError("error message")
	})
}
