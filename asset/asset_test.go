// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vape/serialdict"
)

func testDict() *serialdict.Dict[string, int] {
	d := serialdict.New[string, int]()
	d.AppendRow("hp", 10)
	d.AppendRow("mp", 4)
	d.AppendRow("hp", 7)
	return d
}

func assertLoaded(t *testing.T, d *serialdict.Dict[string, int]) {
	t.Helper()
	assert.Equal(t, []string{"hp", "mp", "hp"}, d.Keys)
	assert.Equal(t, []int{10, 4, 7}, d.Values)
	assert.Equal(t, 10, d.At("hp"))
	assert.Equal(t, serialdict.RowDuplicate, d.StateAt(2))
}

func TestJSONFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, SaveJSON(testDict(), fn))

	nd := serialdict.New[string, int]()
	require.NoError(t, OpenJSON(nd, fn))
	assertLoaded(t, nd)
}

func TestYAMLFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stats.yaml")
	require.NoError(t, SaveYAML(testDict(), fn))

	nd := serialdict.New[string, int]()
	require.NoError(t, OpenYAML(nd, fn))
	assertLoaded(t, nd)
}

func TestTOMLFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stats.toml")
	require.NoError(t, SaveTOML(testDict(), fn))

	// TOML writes into the exported slices; the Open reconciles
	// via the Reconciler interface.
	nd := serialdict.New[string, int]()
	require.NoError(t, OpenTOML(nd, fn))
	assertLoaded(t, nd)
}

func TestOpenMissing(t *testing.T) {
	nd := serialdict.New[string, int]()
	assert.Error(t, OpenJSON(nd, filepath.Join(t.TempDir(), "nope.json")))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "stats.json")
	require.NoError(t, SaveJSON(testDict(), fn))

	ch := make(chan struct{}, 1)
	w, err := Watch(fn, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(fn, []byte(`{"keys":["a"],"values":[1]}`), 0666))

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "stats.json")
	require.NoError(t, SaveJSON(testDict(), fn))

	ch := make(chan struct{}, 1)
	w, err := Watch(fn, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0666))

	select {
	case <-ch:
		t.Fatal("notified for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
