/*
 * ecmaparse
 *
 * Copyright 2026 The ecmaparse Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChildReturnsSameInstanceForSameName(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	a := root.NewChild("block1")
	b := root.NewChild("block1")
	assert.Same(a, b)
}

func TestGetValueWalksParentChain(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	assert.NoError(root.SetValue("x", 1))

	child := root.NewChild("block")
	v, ok, err := child.GetValue("x")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(1, v)
}

func TestGetValueMissingReturnsFalse(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	v, ok, err := root.GetValue("missing")
	assert.NoError(err)
	assert.False(ok)
	assert.Nil(v)
}

func TestSetValueUpdatesOwningScopeNotShadowing(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	assert.NoError(root.SetValue("x", 1))

	child := root.NewChild("block")
	assert.NoError(child.SetValue("x", 2))

	v, _, _ := root.GetValue("x")
	assert.Equal(2, v, "SetValue should reassign the declaring scope's binding, not shadow it")

	cv, _, _ := child.GetValue("x")
	assert.Equal(2, cv)
}

func TestSetLocalValueShadowsOuterBinding(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	assert.NoError(root.SetValue("x", 1))

	child := root.NewChild("block")
	assert.NoError(child.SetLocalValue("x", 2))

	rv, _, _ := root.GetValue("x")
	assert.Equal(1, rv)

	cv, _, _ := child.GetValue("x")
	assert.Equal(2, cv)
}

func TestSetValueWithNoExistingBindingCreatesLocally(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	child := root.NewChild("block")
	assert.NoError(child.SetValue("y", 7))

	_, ok, _ := root.GetValue("y")
	assert.False(ok, "unbound SetValue should not leak into the parent")

	v, ok, _ := child.GetValue("y")
	assert.True(ok)
	assert.Equal(7, v)
}

func TestClearRemovesBindingsAndChildren(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	assert.NoError(root.SetValue("x", 1))
	child := root.NewChild("block")

	root.Clear()

	_, ok, _ := root.GetValue("x")
	assert.False(ok)
	assert.NotSame(child, root.NewChild("block"))
}

func TestParentReturnsNilAtRoot(t *testing.T) {
	assert := assert.New(t)
	root := New("global")
	assert.Nil(root.Parent())
}

func TestToJSONObjectIncludesParentChain(t *testing.T) {
	assert := assert.New(t)

	root := New("global")
	assert.NoError(root.SetValue("x", 1))
	child := root.NewChild("block")
	assert.NoError(child.SetLocalValue("y", 2))

	out := child.ToJSONObject()
	assert.Equal("block", out["name"])
	vars := out["vars"].(map[string]interface{})
	assert.Equal(2, vars["y"])

	parent := out["parent"].(map[string]interface{})
	assert.Equal("global", parent["name"])
	pvars := parent["vars"].(map[string]interface{})
	assert.Equal(1, pvars["x"])
}
