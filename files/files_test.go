// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Lexer747/frameplot/files"
	"github.com/Lexer747/frameplot/utils/sliceutils"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestFramePath(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal(filepath.Join("out", "demo_1.png"), files.Frame("out", "demo", 1)))
	assert.Check(t, is.Equal(filepath.Join("out", "demo_42.png"), files.Frame("out", "demo", 42)))
}

func TestFramesSortNumerically(t *testing.T) {
	t.Parallel()
	folder := t.TempDir()
	for _, name := range []string{"demo_10.png", "demo_2.png", "demo_1.png", "other_5.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(folder, name), nil, 0o644))
	}

	got, err := files.Frames(folder, "demo")
	require.NoError(t, err)
	names := sliceutils.Map(got, filepath.Base)
	assert.Check(t, is.DeepEqual([]string{"demo_1.png", "demo_2.png", "demo_10.png"}, names),
		"frame 2 sorts before frame 10, and foreign prefixes are excluded")
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()
	folder := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, files.EnsureDir(folder))
	fs, err := os.Stat(folder)
	require.NoError(t, err)
	assert.Check(t, fs.IsDir())
	// idempotent
	require.NoError(t, files.EnsureDir(folder))
}
