// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelDebug

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b))
	lg.Debug("this is debug")
	lg.Info("this is info", "key", 1)
	lg.Warn("this is warn")
	lg.Error("this is error")

	out := b.String()
	assert.Contains(t, out, "this is debug")
	assert.Contains(t, out, "this is info")
	assert.Contains(t, out, "key=1")
	assert.Contains(t, out, "this is warn")
	assert.Contains(t, out, "this is error")
}

func TestHandlerLevelGate(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelWarn

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b))
	lg.Info("hidden")
	lg.Warn("shown")

	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestHandlerGroupsAndAttrs(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelDebug

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b)).WithGroup("dict").With("file", "stats.json")
	lg.Info("loaded", "rows", 3)

	out := b.String()
	assert.Contains(t, out, "dict.file=stats.json")
	assert.Contains(t, out, "dict.rows=3")
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
}

func TestSetDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	SetDefaultLogger()
	slog.Warn("smoke")
}
