// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))
	base := stderrors.New("base problem")
	wrapped := Wrap(base)
	var e *Error
	assert.True(t, As(wrapped, &e))
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
	assert.NotEmpty(t, e.Stack)
	assert.True(t, strings.HasPrefix(wrapped.Error(), "base problem ("))
}

func TestNewHasStack(t *testing.T) {
	err := New("oops")
	var e *Error
	assert.True(t, As(err, &e))
	assert.Contains(t, strings.Join(e.Stack, ": "), "TestNewHasStack")
	assert.Equal(t, err.Error(), e.String())
}

func TestWrapping(t *testing.T) {
	base := New("base problem")
	wrapped := Errorf("context: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(Unwrap(wrapped)))
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("oops")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("bad")) })
	assert.Equal(t, "x", Must1("x", nil))
	assert.Panics(t, func() { Must1(0, New("bad")) })
}

func TestIgnore(t *testing.T) {
	assert.Equal(t, 5, Ignore1(5, New("ignored")))
}
