// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialdict

import "encoding/json"

// dictJSON is the wire form: the parallel slices, not an object,
// because a JSON object cannot carry duplicate keys or non-string
// key types, and because the host serializer stores the same shape.
type dictJSON[K comparable, V any] struct {
	Keys   []K `json:"keys"`
	Values []V `json:"values"`
}

// MarshalJSON marshals the dictionary as {"keys": [...], "values":
// [...]}, including retained duplicate and invalid rows, so that a
// round trip through storage loses nothing. The value receiver keeps
// the wire form intact even for Dicts held by value in places the
// encoder cannot address.
func (d Dict[K, V]) MarshalJSON() ([]byte, error) {
	dj := dictJSON[K, V]{Keys: d.Keys, Values: d.Values}
	if dj.Keys == nil {
		dj.Keys = []K{}
	}
	if dj.Values == nil {
		dj.Values = []V{}
	}
	return json.Marshal(dj)
}

// UnmarshalJSON unmarshals the {"keys": ..., "values": ...} form and
// reconciles the runtime map from it, returning an error wrapping
// [ErrLengthMismatch] if the two arrays have different lengths.
func (d *Dict[K, V]) UnmarshalJSON(b []byte) error {
	var dj dictJSON[K, V]
	if err := json.Unmarshal(b, &dj); err != nil {
		return err
	}
	d.Keys = dj.Keys
	d.Values = dj.Values
	return d.Reconcile()
}
