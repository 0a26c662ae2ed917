// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package errors_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/Lexer747/frameplot/utils/errors"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestWrap(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Nil(errors.Wrap(nil, "nothing happened")))

	wrapped := errors.Wrapf(os.ErrNotExist, "could not save frame %d", 7)
	assert.Check(t, is.Equal("could not save frame 7 caused by: file does not exist", wrapped.Error()))
	assert.Check(t, errors.Is(wrapped, os.ErrNotExist), "the cause stays reachable")
	assert.Check(t, is.Contains(fmt.Sprintf("%+v", wrapped), "could not save frame 7"))
}
