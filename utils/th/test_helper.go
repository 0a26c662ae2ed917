// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

// AssertFloatEqual compares floats with an absolute epsilon, the default [assert.Equal] is useless
// for values which went through a transform matrix.
func AssertFloatEqual(t *testing.T, expected, actual, epsilon float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Check(t, math.Abs(expected-actual) <= epsilon, msgAndArgs...)
}

var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })
