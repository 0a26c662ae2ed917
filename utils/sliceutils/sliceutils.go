// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package sliceutils

import "slices"

func Map[IN, OUT any, S ~[]IN](slice S, f func(IN) OUT) []OUT {
	ret := make([]OUT, len(slice))
	for i, in := range slice {
		ret[i] = f(in)
	}
	return ret
}

// Filter returns a new slice containing only the elements for which keep returned true, the input
// is left untouched.
func Filter[E any, S ~[]E](slice S, keep func(E) bool) S {
	ret := make(S, 0, len(slice))
	for _, e := range slice {
		if keep(e) {
			ret = append(ret, e)
		}
	}
	return ret
}

// Remove returns a new slice with every element of toRemove filtered out in a single pass.
func Remove[E comparable, S ~[]E](slice S, toRemove ...E) S {
	return Filter(slice, func(e E) bool {
		return !slices.Contains(toRemove, e)
	})
}
