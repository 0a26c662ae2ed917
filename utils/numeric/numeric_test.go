// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric_test

import (
	"testing"

	"github.com/Lexer747/frameplot/utils/numeric"
	"github.com/Lexer747/frameplot/utils/th"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestLerp(t *testing.T) {
	t.Parallel()
	th.AssertFloatEqual(t, 0, numeric.Lerp(0, 10, 0), 1e-9)
	th.AssertFloatEqual(t, 10, numeric.Lerp(0, 10, 1), 1e-9)
	th.AssertFloatEqual(t, 5, numeric.Lerp(0, 10, 0.5), 1e-9)
	th.AssertFloatEqual(t, -10, numeric.Lerp(0, 10, -1), 1e-9, "t isn't clamped")
}

func TestClamp(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal(5.0, numeric.Clamp(5, 0, 10)))
	assert.Check(t, is.Equal(0.0, numeric.Clamp(-3, 0, 10)))
	assert.Check(t, is.Equal(10.0, numeric.Clamp(11, 0, 10)))
}

func TestRemap(t *testing.T) {
	t.Parallel()
	// data space [0,10] onto a 40 pixel surface
	th.AssertFloatEqual(t, 20, numeric.Remap(5, 0, 10, 0, 40), 1e-9)
	th.AssertFloatEqual(t, 40, numeric.Remap(10, 0, 10, 0, 40), 1e-9)
	// inverted output ranges flip the axis
	th.AssertFloatEqual(t, 40, numeric.Remap(0, 0, 10, 40, 0), 1e-9)
}
