// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vape/serialdict"
)

// testHost is a scripted stand-in for an engine editor. It hands
// out a constant default key, the worst case for collisions.
type testHost struct {
	key     string
	val     int
	actions []string
}

func (h *testHost) DefaultKey() string { return h.key }

func (h *testHost) DefaultValue() int { return h.val }

func (h *testHost) Changed(action string) { h.actions = append(h.actions, action) }

func newTestSession() (*Session[string, int], *testHost) {
	h := &testHost{key: "new", val: 0}
	return NewSession[string, int](nil, h), h
}

func TestAdd(t *testing.T) {
	s, h := newTestSession()
	i := s.Add()
	assert.Equal(t, 0, i)
	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "new", rows[0].Key)
	assert.Equal(t, serialdict.RowOK, rows[0].State)
	assert.Equal(t, []string{"add entry"}, h.actions)
}

func TestAddCollision(t *testing.T) {
	s, _ := newTestSession()
	s.Add()
	s.Add()
	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, serialdict.RowOK, rows[0].State)
	assert.Equal(t, serialdict.RowDuplicate, rows[1].State)
	assert.Equal(t, []int{1}, s.Conflicts())

	// editing the colliding key resolves the conflict
	require.NoError(t, s.SetKey(1, "other"))
	rows = s.Rows()
	assert.Equal(t, serialdict.RowOK, rows[1].State)
	assert.Empty(t, s.Conflicts())
}

func TestAddInvalidDefault(t *testing.T) {
	h := &testHost{key: "", val: 0}
	d := serialdict.New[string, int]()
	d.Validator = serialdict.RejectZero[string]()
	s := NewSession(d, h)

	s.Add()
	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, serialdict.RowInvalid, rows[0].State)
	require.NoError(t, s.SetKey(0, "fixed"))
	assert.Equal(t, serialdict.RowOK, s.Rows()[0].State)
}

func TestRowIdentity(t *testing.T) {
	s, _ := newTestSession()
	s.Add()
	require.NoError(t, s.SetKey(0, "a"))
	s.Add()
	require.NoError(t, s.SetKey(1, "b"))

	before := s.Rows()
	require.NoError(t, s.Move(1, 0))
	after := s.Rows()
	assert.Equal(t, before[1].ID, after[0].ID)
	assert.Equal(t, before[0].ID, after[1].ID)
	assert.Equal(t, "b", after[0].Key)
}

func TestRemove(t *testing.T) {
	s, h := newTestSession()
	s.Add()
	require.NoError(t, s.SetKey(0, "a"))
	s.Add()
	require.NoError(t, s.SetKey(1, "b"))

	keep := s.Rows()[1].ID
	require.NoError(t, s.Remove(0))
	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "b", rows[0].Key)
	assert.Equal(t, keep, rows[0].ID)
	assert.Error(t, s.Remove(5))
	assert.Contains(t, h.actions, "remove entry")
}

func TestSetValue(t *testing.T) {
	s, h := newTestSession()
	s.Add()
	require.NoError(t, s.SetValue(0, 42))
	assert.Equal(t, 42, s.Rows()[0].Value)
	assert.Contains(t, h.actions, "change value")
}

func TestMoveResolvesConflict(t *testing.T) {
	s, _ := newTestSession()
	s.Add() // "new"
	s.Add() // "new" again, duplicate
	require.NoError(t, s.SetValue(0, 1))
	require.NoError(t, s.SetValue(1, 2))

	require.NoError(t, s.Move(1, 0))
	rows := s.Rows()
	assert.Equal(t, serialdict.RowOK, rows[0].State)
	assert.Equal(t, 2, rows[0].Value)
	assert.Equal(t, serialdict.RowDuplicate, rows[1].State)
	assert.Equal(t, 2, s.Dict().At("new"))
}

func TestSnapshotRestore(t *testing.T) {
	s, h := newTestSession()
	s.Add()
	require.NoError(t, s.SetKey(0, "a"))
	require.NoError(t, s.SetValue(0, 1))

	snap, err := s.Snapshot()
	require.NoError(t, err)

	require.NoError(t, s.SetValue(0, 99))
	require.NoError(t, s.SetKey(0, "z"))
	require.NoError(t, s.Restore(snap))

	if diff := cmp.Diff(snap.Pairs(), s.Dict().Pairs()); diff != "" {
		t.Errorf("restore mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, s.Dict().At("a"))
	assert.Contains(t, h.actions, "restore entries")
}

// sliceHost exercises slice-valued dictionaries.
type sliceHost struct{}

func (h *sliceHost) DefaultKey() string    { return "new" }
func (h *sliceHost) DefaultValue() []int   { return nil }
func (h *sliceHost) Changed(action string) {}

func TestSnapshotIsDeep(t *testing.T) {
	h := &sliceHost{}
	d := serialdict.New[string, []int]()
	require.NoError(t, d.Set("a", []int{1, 2}))
	s := NewSession(d, h)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	d.At("a")[0] = 99
	assert.Equal(t, []int{1, 2}, snap.At("a"))
}

func TestClear(t *testing.T) {
	s, h := newTestSession()
	s.Add()
	s.Clear()
	assert.Empty(t, s.Rows())
	assert.Equal(t, 0, s.Dict().NumRows())
	assert.Contains(t, h.actions, "clear entries")
}
