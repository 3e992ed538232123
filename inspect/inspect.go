// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package inspect implements the editing model behind an inspector
panel for a [serialdict.Dict], without any GUI code. A [Session]
exposes the operations a drawer needs (add a row with synthesized
defaults, edit keys and values, remove, reorder, revert), keeps the
dictionary reconciled after every edit, and reports row conflicts
for the drawer to badge.

Everything engine-specific sits behind the single [Host] collaborator
interface: default-value synthesis (typically reflection-based in the
host editor), undo recording, and repaint scheduling are the host's
business, driven by the change notifications the session emits.
*/
package inspect

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/vape/serialdict"
	"github.com/vape/serialdict/slicesx"
)

// Host is the collaborator interface abstracting the engine editor.
// The session calls it; it never calls the session.
type Host[K comparable, V any] interface {

	// DefaultKey returns the key for a newly added row. Hosts
	// typically synthesize this from the key type (reflection,
	// object pickers, counters); the session does not care how.
	DefaultKey() K

	// DefaultValue returns the value for a newly added row.
	DefaultValue() V

	// Changed notifies the host that the session mutated the
	// dictionary, with a short action label suitable for an undo
	// record. The host decides what to do with it: record undo
	// state, mark the asset dirty, schedule a repaint.
	Changed(action string)
}

// Row is one inspector row: a dictionary row plus a stable identity.
type Row[K comparable, V any] struct {

	// ID identifies the row across edits and reorders, so a host
	// can reuse the widgets it built for it.
	ID uuid.UUID

	Key   K
	Value V

	// State flags the row for badging: [serialdict.RowDuplicate]
	// and [serialdict.RowInvalid] rows are conflicts the user still
	// has to fix.
	State serialdict.RowState
}

// Session is an editing session over a dictionary on behalf of a
// host editor. All mutations go through the session so that the
// dictionary stays reconciled and the host stays notified.
type Session[K comparable, V any] struct {
	dict *serialdict.Dict[K, V]
	host Host[K, V]

	// ids is parallel to the dictionary rows.
	ids []uuid.UUID
}

// NewSession returns a new editing session over the given
// dictionary for the given host. A nil dictionary starts empty.
func NewSession[K comparable, V any](dict *serialdict.Dict[K, V], host Host[K, V]) *Session[K, V] {
	if dict == nil {
		dict = serialdict.New[K, V]()
	}
	s := &Session[K, V]{dict: dict, host: host}
	s.syncIDs()
	return s
}

// Dict returns the dictionary being edited.
func (s *Session[K, V]) Dict() *serialdict.Dict[K, V] {
	return s.dict
}

// syncIDs makes the id list parallel to the dictionary rows again,
// keeping existing identities and minting new ones at the end. This
// covers rows added or removed behind the session's back.
func (s *Session[K, V]) syncIDs() {
	n := s.dict.NumRows()
	for len(s.ids) < n {
		s.ids = append(s.ids, uuid.New())
	}
	s.ids = s.ids[:n]
}

// Rows returns the current inspector rows in order, including
// conflicted ones.
func (s *Session[K, V]) Rows() []Row[K, V] {
	s.syncIDs()
	rows := make([]Row[K, V], s.dict.NumRows())
	for i := range rows {
		rows[i] = Row[K, V]{
			ID:    s.ids[i],
			Key:   s.dict.KeyAt(i),
			Value: s.dict.ValueAt(i),
			State: s.dict.StateAt(i),
		}
	}
	return rows
}

// Conflicts returns the indexes of the rows that are not canonical,
// in order, for the drawer to badge.
func (s *Session[K, V]) Conflicts() []int {
	s.syncIDs()
	var cs []int
	for i := 0; i < s.dict.NumRows(); i++ {
		if s.dict.StateAt(i) != serialdict.RowOK {
			cs = append(cs, i)
		}
	}
	return cs
}

// Add appends a new row with host-synthesized default key and value
// and returns its index. If the default key collides with an
// existing row, the new row is kept as a [serialdict.RowDuplicate]
// conflict until the user edits its key; nothing is overwritten.
func (s *Session[K, V]) Add() int {
	s.syncIDs()
	i := s.dict.AppendRow(s.host.DefaultKey(), s.host.DefaultValue())
	s.ids = append(s.ids, uuid.New())
	s.host.Changed("add entry")
	return i
}

// Remove removes the row at the given index, which may be any row
// including conflicted ones.
func (s *Session[K, V]) Remove(i int) error {
	s.syncIDs()
	if err := s.dict.DeleteRow(i); err != nil {
		return err
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	s.host.Changed("remove entry")
	return nil
}

// SetKey sets the key of the row at the given index. Conflict states
// across the dictionary are recomputed, since changing one key can
// flip several rows at once.
func (s *Session[K, V]) SetKey(i int, key K) error {
	if err := s.dict.SetKeyAt(i, key); err != nil {
		return err
	}
	s.host.Changed("change key")
	return nil
}

// SetValue sets the value of the row at the given index.
func (s *Session[K, V]) SetValue(i int, val V) error {
	if err := s.dict.SetValueAt(i, val); err != nil {
		return err
	}
	s.host.Changed("change value")
	return nil
}

// Move moves the row at the given old index to the given new index,
// keeping its identity. Moving a conflicted duplicate above its
// canonical row resolves the conflict in the moved row's favor.
func (s *Session[K, V]) Move(from, to int) error {
	s.syncIDs()
	if err := s.dict.Move(from, to); err != nil {
		return err
	}
	s.ids = slicesx.Move(s.ids, from, to)
	s.host.Changed("move entry")
	return nil
}

// Clear removes all rows.
func (s *Session[K, V]) Clear() {
	s.dict.Reset()
	s.ids = nil
	s.host.Changed("clear entries")
}

// Snapshot returns a deep copy of the dictionary, for the host to
// keep as an undo record.
func (s *Session[K, V]) Snapshot() (*serialdict.Dict[K, V], error) {
	snap := serialdict.New[K, V]()
	err := copier.CopyWithOption(snap, s.dict, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, err
	}
	if err := snap.Reconcile(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Restore replaces the dictionary contents with the given snapshot,
// as taken by [Session.Snapshot].
func (s *Session[K, V]) Restore(snap *serialdict.Dict[K, V]) error {
	d := serialdict.New[K, V]()
	if err := copier.CopyWithOption(d, snap, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	s.dict.Keys = d.Keys
	s.dict.Values = d.Values
	if err := s.dict.Reconcile(); err != nil {
		return err
	}
	s.syncIDs()
	s.host.Changed("restore entries")
	return nil
}
