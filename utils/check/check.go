// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package check

import "fmt"

// Check panics when the invariant doesn't hold, it should only guard programmer errors and never
// user input.
func Check(shouldBeTrue bool, assertMsg string) {
	if !shouldBeTrue {
		panic(assertMsg)
	}
}

func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic(fmt.Sprintf(format, a...))
	}
}

// NoErr is [Check] specialised for the common err == nil assertion.
func NoErr(err error, assertMsg string) {
	if err != nil {
		panic(assertMsg + ": " + err.Error())
	}
}
