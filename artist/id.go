// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package artist

import "github.com/oklog/ulid/v2"

// IDGenerator produces the opaque token handed to each newly constructed artist, it must return a
// fresh effectively-unique value on every call.
type IDGenerator func() string

// generator is deliberately package level state, artists are constructed from many call sites and
// threading a generator through every constructor buys nothing in a single-threaded library.
var generator IDGenerator = ulidID

// SetIDGenerator swaps the generator used for all subsequent artist construction and returns the
// previous one, tests use this to supply deterministic ids:
//
//	defer artist.SetIDGenerator(artist.SetIDGenerator(sequential))
func SetIDGenerator(g IDGenerator) IDGenerator {
	previous := generator
	generator = g
	return previous
}

// NewID returns a token from the current generator.
func NewID() string {
	return generator()
}

// ulidID is the default, a fixed-length (26 char) random alphanumeric token.
func ulidID() string {
	return ulid.Make().String()
}
