/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	e := Default()

	assert.Equal(ES2020, e.LanguageVersion)
	assert.False(e.IDEMode)
	assert.False(e.RecoverFromErrors)
	assert.False(e.RecordComments)
	assert.False(e.XMLAvailable)
}

func TestIDE(t *testing.T) {
	assert := assert.New(t)

	e := IDE()

	assert.True(e.IDEMode)
	assert.True(e.RecoverFromErrors)
	assert.True(e.RecordComments)
}

func TestValidatePanicsOnMissingLanguageVersion(t *testing.T) {
	assert := assert.New(t)

	e := &Environment{}

	assert.Panics(func() { e.Validate() })
}

func TestValidatePanicsOnUnknownLanguageVersion(t *testing.T) {
	assert := assert.New(t)

	e := &Environment{LanguageVersion: "es1999"}

	assert.Panics(func() { e.Validate() })
}

func TestValidatePanicsOnIDEModeWithoutRecovery(t *testing.T) {
	assert := assert.New(t)

	e := Default()
	e.IDEMode = true
	e.RecoverFromErrors = false

	assert.Panics(func() { e.Validate() })
}

func TestValidateAcceptsIDE(t *testing.T) {
	assert := assert.New(t)

	e := IDE()

	assert.NotPanics(func() { e.Validate() })
}

func TestSupportsGates(t *testing.T) {
	assert := assert.New(t)

	es6 := &Environment{LanguageVersion: ES6}
	assert.True(es6.SupportsModules())
	assert.False(es6.SupportsOptionalChaining())
	assert.False(es6.SupportsPrivateFields())
	assert.False(es6.SupportsBigInt())

	es2020 := &Environment{LanguageVersion: ES2020}
	assert.True(es2020.SupportsModules())
	assert.True(es2020.SupportsOptionalChaining())
	assert.True(es2020.SupportsPrivateFields())
	assert.True(es2020.SupportsBigInt())

	legacy := &Environment{LanguageVersion: Legacy}
	assert.False(legacy.SupportsModules())
	assert.False(legacy.SupportsOptionalChaining())
}

func TestIsActivationName(t *testing.T) {
	assert := assert.New(t)

	e := Default()
	e.ActivationNames = []string{"window", "globalThis"}

	assert.True(e.IsActivationName("window"))
	assert.True(e.IsActivationName("globalThis"))
	assert.False(e.IsActivationName("document"))
}
