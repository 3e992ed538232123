// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialdict

import "reflect"

// KeyValidator determines which keys may have a canonical row in a
// [Dict]. Keys it rejects are retained in the serialized slices as
// [RowInvalid] rows but never enter the runtime map.
type KeyValidator[K comparable] interface {

	// ValidKey reports whether the given key may enter the runtime map.
	ValidKey(key K) bool
}

// ValidatorFunc is a function adapter implementing [KeyValidator].
type ValidatorFunc[K comparable] func(key K) bool

func (f ValidatorFunc[K]) ValidKey(key K) bool { return f(key) }

// NilKeys returns the default validator, which rejects only keys
// that are nil pointers, interfaces, or channels. Empty strings and
// zero numbers are valid keys: a host engine cannot look anything up
// under a nil reference, but a zero value is a perfectly good key.
func NilKeys[K comparable]() KeyValidator[K] {
	return ValidatorFunc[K](func(key K) bool {
		return !nilKey(key)
	})
}

// RejectZero returns a stricter stock validator that rejects the
// zero value of the key type, for hosts where a default-constructed
// key always indicates an unfinished entry.
func RejectZero[K comparable]() KeyValidator[K] {
	return ValidatorFunc[K](func(key K) bool {
		var zk K
		return key != zk
	})
}

// nilKey reports whether the given key is a nil pointer, interface,
// or channel.
func nilKey(key any) bool {
	if key == nil {
		return true
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
