// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialdict

// Pair is one row of a dictionary in key/value tuple form, for wire
// formats and APIs that want rows rather than parallel slices.
type Pair[K comparable, V any] struct {
	Key   K `json:"key" toml:"key"`
	Value V `json:"value" toml:"value"`
}

// Pairs returns all rows in order as key/value tuples, including
// retained duplicate and invalid rows.
func (d *Dict[K, V]) Pairs() []Pair[K, V] {
	ps := make([]Pair[K, V], len(d.Keys))
	for i, k := range d.Keys {
		ps[i] = Pair[K, V]{Key: k, Value: d.Values[i]}
	}
	return ps
}

// SetPairs replaces the dictionary contents with the given rows and
// reconciles the runtime map from them.
func (d *Dict[K, V]) SetPairs(pairs []Pair[K, V]) error {
	d.Keys = make([]K, len(pairs))
	d.Values = make([]V, len(pairs))
	for i, p := range pairs {
		d.Keys[i] = p.Key
		d.Values[i] = p.Value
	}
	return d.Reconcile()
}
