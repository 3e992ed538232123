// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package serialdict implements a dictionary that behaves as an
order-independent key/value map at runtime while persisting as an
order-preserving pair of parallel slices, for serialization systems
that cannot represent associative containers directly.

The parallel [Dict.Keys] and [Dict.Values] slices are the canonical
storage and the serialized form; an unexported key-to-index map
provides fast runtime lookup. Rows whose keys are duplicates or
invalid are retained in the slices, so nothing is lost across
serialization round trips while a human is still fixing them, but
they are excluded from the runtime map. [Dict.Reconcile] rebuilds
the runtime state from the slices after deserialization or direct
slice manipulation; the first valid occurrence of a key wins.
*/
package serialdict

import (
	"fmt"
	"slices"
	"sort"

	"github.com/vape/serialdict/errors"
	"github.com/vape/serialdict/slicesx"
)

var (
	// ErrInvalidKey is returned for keys rejected by the key validator.
	ErrInvalidKey = errors.New("invalid key")

	// ErrDuplicateKey is returned by [Dict.Add] for keys that
	// already have a canonical row.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrLengthMismatch is returned by [Dict.Reconcile] when the
	// Keys and Values slices have different lengths.
	ErrLengthMismatch = errors.New("keys and values lengths differ")
)

// RowState describes how one row of the serialized slices relates
// to the runtime map.
type RowState int32

const (
	// RowOK is a canonical row: its key is valid and this is the
	// first occurrence of it, so the runtime map points at it.
	RowOK RowState = iota

	// RowDuplicate is a retained later occurrence of a key that
	// already has a canonical row.
	RowDuplicate

	// RowInvalid is a retained row whose key was rejected by the
	// key validator.
	RowInvalid
)

func (rs RowState) String() string {
	switch rs {
	case RowOK:
		return "ok"
	case RowDuplicate:
		return "duplicate"
	case RowInvalid:
		return "invalid"
	}
	return fmt.Sprintf("RowState(%d)", int32(rs))
}

// Dict is a dictionary combining map lookup semantics with
// slice-based, order-preserving storage. The zero value is usable.
// If you fill Keys and Values directly (e.g., a deserializer writing
// into the exported fields), call [Dict.Reconcile] before using the
// map operations.
type Dict[K comparable, V any] struct {

	// Keys is the ordered slice of keys, parallel to [Dict.Values].
	// This is the serialized form: it retains duplicate and invalid
	// rows that the runtime map excludes.
	Keys []K `toml:"keys"`

	// Values is the ordered slice of values, parallel to [Dict.Keys].
	Values []V `toml:"values"`

	// Validator determines which keys may have a canonical row.
	// A nil Validator accepts everything except nil pointers,
	// interfaces, and channels; see [NilKeys].
	Validator KeyValidator[K] `toml:"-"`

	// indexes maps each canonically held key to its row index.
	indexes map[K]int

	// states is parallel to Keys and Values.
	states []RowState
}

// New returns a new [Dict]. The zero value is also usable without
// initialization; this is just a standard convenience method.
func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{}
}

func (d *Dict[K, V]) init() {
	if d.indexes == nil {
		d.indexes = make(map[K]int)
	}
}

func (d *Dict[K, V]) validKey(key K) bool {
	if d.Validator != nil {
		return d.Validator.ValidKey(key)
	}
	return !nilKey(key)
}

// Reset resets the dictionary, removing all rows.
func (d *Dict[K, V]) Reset() {
	d.Keys = nil
	d.Values = nil
	d.states = nil
	d.indexes = make(map[K]int)
}

// Set sets the given key to the given value, appending a new row if
// the key has no canonical row and otherwise replacing the canonical
// row's value, the same semantics as a Go map. Retained duplicate
// rows of the key are not touched. An error wrapping [ErrInvalidKey]
// is returned for keys rejected by the validator.
// See [Dict.Add] for a version that only adds and does not replace.
func (d *Dict[K, V]) Set(key K, val V) error {
	if !d.validKey(key) {
		return fmt.Errorf("serialdict.Set: %w: %v", ErrInvalidKey, key)
	}
	d.init()
	if i, ok := d.indexes[key]; ok {
		d.Values[i] = val
		return nil
	}
	d.appendRow(key, val)
	return nil
}

// Add adds the given key and value as a new row at the end. An error
// wrapping [ErrDuplicateKey] is returned if the key already has a
// canonical row, and one wrapping [ErrInvalidKey] if the validator
// rejects the key. See [Dict.Set] for a version that replaces.
func (d *Dict[K, V]) Add(key K, val V) error {
	if !d.validKey(key) {
		return fmt.Errorf("serialdict.Add: %w: %v", ErrInvalidKey, key)
	}
	d.init()
	if _, ok := d.indexes[key]; ok {
		return fmt.Errorf("serialdict.Add: %w: %v", ErrDuplicateKey, key)
	}
	d.appendRow(key, val)
	return nil
}

// appendRow appends a row and assigns its state incrementally.
// The caller must have called init.
func (d *Dict[K, V]) appendRow(key K, val V) {
	i := len(d.Keys)
	st := RowOK
	switch {
	case !d.validKey(key):
		st = RowInvalid
	default:
		if _, ok := d.indexes[key]; ok {
			st = RowDuplicate
		} else {
			d.indexes[key] = i
		}
	}
	d.Keys = append(d.Keys, key)
	d.Values = append(d.Values, val)
	d.states = append(d.states, st)
}

// AppendRow appends a row with the given key and value regardless of
// validity or duplication, returning its index. Non-canonical rows
// are retained in the slices and flagged; this is the operation an
// editor uses so that a half-finished entry is never silently
// dropped or merged.
func (d *Dict[K, V]) AppendRow(key K, val V) int {
	d.init()
	d.appendRow(key, val)
	return len(d.Keys) - 1
}

// At returns the value held for the given key, with a zero value
// returned for a missing key. See [Dict.AtTry] for one that returns
// a bool for missing keys.
func (d *Dict[K, V]) At(key K) V {
	if i, ok := d.indexes[key]; ok {
		return d.Values[i]
	}
	var zv V
	return zv
}

// AtTry returns the value held for the given key, with false
// returned for a missing key, in case the zero value is not
// diagnostic.
func (d *Dict[K, V]) AtTry(key K) (V, bool) {
	if i, ok := d.indexes[key]; ok {
		return d.Values[i], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the row index of the canonical row for the
// given key, with -1 for a key not held in the runtime map.
func (d *Dict[K, V]) IndexByKey(key K) int {
	i, ok := d.indexes[key]
	if !ok {
		return -1
	}
	return i
}

// IndexIsValid returns an error if the given row index is invalid.
func (d *Dict[K, V]) IndexIsValid(i int) error {
	if i >= len(d.Keys) || i < 0 {
		return fmt.Errorf("serialdict.Dict: IndexIsValid: index %d is out of range of a dictionary with %d rows", i, len(d.Keys))
	}
	return nil
}

// Len returns the number of canonical entries, i.e., the length of
// the runtime map. See [Dict.NumRows] for the number of rows
// including retained duplicate and invalid ones.
func (d *Dict[K, V]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.indexes)
}

// NumRows returns the total number of rows in the serialized
// slices, including retained duplicate and invalid rows.
func (d *Dict[K, V]) NumRows() int {
	if d == nil {
		return 0
	}
	return len(d.Keys)
}

// KeyAt returns the key of the row at the given index.
func (d *Dict[K, V]) KeyAt(i int) K {
	return d.Keys[i]
}

// ValueAt returns the value of the row at the given index.
func (d *Dict[K, V]) ValueAt(i int) V {
	return d.Values[i]
}

// SetValueAt sets the value of the row at the given index, which may
// be any row including duplicate and invalid ones.
func (d *Dict[K, V]) SetValueAt(i int, val V) error {
	if err := d.IndexIsValid(i); err != nil {
		return err
	}
	d.Values[i] = val
	return nil
}

// StateAt returns the [RowState] of the row at the given index.
func (d *Dict[K, V]) StateAt(i int) RowState {
	return d.states[i]
}

// Delete deletes the canonical row for the given key, returning
// false if the key is not held. If a retained duplicate row of the
// same key exists, it is promoted to canonical.
func (d *Dict[K, V]) Delete(key K) bool {
	i, ok := d.indexes[key]
	if !ok {
		return false
	}
	d.DeleteRow(i)
	return true
}

// DeleteRow deletes the row at the given index, which may be any
// row including duplicate and invalid ones. Deleting a canonical
// row promotes the first retained duplicate of its key, if any.
func (d *Dict[K, V]) DeleteRow(i int) error {
	if err := d.IndexIsValid(i); err != nil {
		return err
	}
	d.Keys = slices.Delete(d.Keys, i, i+1)
	d.Values = slices.Delete(d.Values, i, i+1)
	d.states = slices.Delete(d.states, i, i+1)
	return d.Reconcile()
}

// SetKeyAt sets the key of the row at the given index. This can flip
// the states of several rows at once: the row's old key may fall to
// a retained duplicate, and the new key may demote rows after it.
func (d *Dict[K, V]) SetKeyAt(i int, key K) error {
	if err := d.IndexIsValid(i); err != nil {
		return err
	}
	d.Keys[i] = key
	return d.Reconcile()
}

// Move moves the row at the given old index to the given new index.
// Moving a duplicate row ahead of its canonical row makes it the
// canonical one, since the first valid occurrence wins.
func (d *Dict[K, V]) Move(from, to int) error {
	if err := d.IndexIsValid(from); err != nil {
		return err
	}
	if err := d.IndexIsValid(to); err != nil {
		return err
	}
	d.Keys = slicesx.Move(d.Keys, from, to)
	d.Values = slicesx.Move(d.Values, from, to)
	return d.Reconcile()
}

// Range calls the given function for each canonical entry in row
// order, skipping duplicate and invalid rows, stopping early if it
// returns false.
func (d *Dict[K, V]) Range(fn func(key K, val V) bool) {
	for i, st := range d.states {
		if st != RowOK {
			continue
		}
		if !fn(d.Keys[i], d.Values[i]) {
			return
		}
	}
}

// CanonicalKeys returns the keys of the canonical entries in row
// order. Unlike the raw [Dict.Keys] slice, the result contains no
// duplicate or invalid keys.
func (d *Dict[K, V]) CanonicalKeys() []K {
	ks := make([]K, 0, len(d.indexes))
	for i, st := range d.states {
		if st == RowOK {
			ks = append(ks, d.Keys[i])
		}
	}
	return ks
}

// Clone returns a copy of the dictionary sharing no storage with
// the original. Values are copied shallowly.
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	nd := &Dict[K, V]{
		Keys:      slices.Clone(d.Keys),
		Values:    slices.Clone(d.Values),
		Validator: d.Validator,
	}
	nd.Reconcile()
	return nd
}

type dictSorter[K comparable, V any] struct {
	d    *Dict[K, V]
	less func(a, b K) bool
}

func (s dictSorter[K, V]) Len() int           { return len(s.d.Keys) }
func (s dictSorter[K, V]) Less(i, j int) bool { return s.less(s.d.Keys[i], s.d.Keys[j]) }
func (s dictSorter[K, V]) Swap(i, j int) {
	slicesx.Swap(s.d.Keys, i, j)
	slicesx.Swap(s.d.Values, i, j)
}

// SortKeys reorders the rows by key according to the given less
// function. Canonical assignment is order-dependent (first valid
// occurrence wins), so the rows are reconciled afterward.
func (d *Dict[K, V]) SortKeys(less func(a, b K) bool) {
	sort.Stable(dictSorter[K, V]{d: d, less: less})
	d.Reconcile()
}

// String returns a string representation of all rows in order.
func (d *Dict[K, V]) String() string {
	sv := "{"
	for i, k := range d.Keys {
		sv += fmt.Sprintf("%v", k) + ": " + fmt.Sprintf("%v", d.Values[i]) + ", "
	}
	sv += "}"
	return sv
}
