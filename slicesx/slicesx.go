// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx supplies the small slice manipulations that the
// parallel key and value sequences need and [slices] does not cover.
package slicesx

import "slices"

// Move takes the element at index from out of the slice and reinserts
// it at index to, shifting the elements in between. The to index is
// interpreted after the removal. It returns the updated slice.
func Move[E any](s []E, from, to int) []E {
	e := s[from]
	s = slices.Delete(s, from, from+1)
	return slices.Insert(s, to, e)
}

// Swap exchanges the elements at indices i and j in place.
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}
