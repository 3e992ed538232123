// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialdict

import (
	"fmt"
	"log/slog"
)

// Reconcile rebuilds the runtime map and the per-row states from the
// Keys and Values slices. This is the deserialization half of the
// synchronization protocol: a deserializer (or anything else) fills
// the exported slices, and Reconcile makes the dictionary usable as
// a map again. The serialization half is an invariant rather than a
// callback: the slices are the canonical storage, so they are always
// ready to marshal.
//
// Rows are scanned in order. A row whose key the validator rejects
// becomes [RowInvalid]; the first valid occurrence of a key becomes
// the canonical [RowOK] row; later occurrences become [RowDuplicate].
// Reconcile is idempotent. It returns an error wrapping
// [ErrLengthMismatch] if the slices have different lengths, leaving
// the runtime map empty in that case.
func (d *Dict[K, V]) Reconcile() error {
	if len(d.Keys) != len(d.Values) {
		d.indexes = make(map[K]int)
		d.states = nil
		return fmt.Errorf("serialdict.Reconcile: %w: %d keys, %d values", ErrLengthMismatch, len(d.Keys), len(d.Values))
	}
	d.indexes = make(map[K]int, len(d.Keys))
	d.states = make([]RowState, len(d.Keys))
	for i, k := range d.Keys {
		if !d.validKey(k) {
			d.states[i] = RowInvalid
			continue
		}
		if _, ok := d.indexes[k]; ok {
			d.states[i] = RowDuplicate
			continue
		}
		d.indexes[k] = i
	}
	return nil
}

// Compact deletes all retained duplicate and invalid rows, leaving
// only the canonical ones, and returns the number of rows dropped.
// This is the strict runtime mode for hosts that want a clean map
// after loading, as opposed to an editor that keeps broken rows
// around for the user to fix. Dropped rows are logged at Debug.
func (d *Dict[K, V]) Compact() int {
	nd := 0
	for i := len(d.states) - 1; i >= 0; i-- {
		if d.states[i] == RowOK {
			continue
		}
		slog.Debug("serialdict: compacting row", "index", i, "key", d.Keys[i], "state", d.states[i])
		d.Keys = append(d.Keys[:i], d.Keys[i+1:]...)
		d.Values = append(d.Values[:i], d.Values[i+1:]...)
		d.states = append(d.states[:i], d.states[i+1:]...)
		nd++
	}
	if nd > 0 {
		d.Reconcile()
	}
	return nd
}
