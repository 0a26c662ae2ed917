// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Lexer747/frameplot/utils/errors"
)

// Frame builds the on-disk path for one animation frame, '<folder>/<prefix>_<n>.png'. The folder
// is expected to already exist, a canvas never creates it.
func Frame(folder, prefix string, n int) string {
	return filepath.Join(folder, fmt.Sprintf("%s_%d.png", prefix, n))
}

// EnsureDir creates the output folder (and parents) when missing, this is the caller side helper
// for the contract above.
func EnsureDir(folder string) error {
	return errors.Wrapf(os.MkdirAll(folder, 0o755), "could not create output folder %q", folder)
}

// Frames returns every frame already emitted for this prefix, sorted by frame index rather than
// lexically so frame 2 comes before frame 10.
func Frames(folder, prefix string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(folder, prefix+"_*.png"))
	if err != nil {
		return nil, errors.Wrapf(err, "could not list frames in %q", folder)
	}
	slices.SortFunc(matches, func(a, b string) int {
		return frameIndex(a, prefix) - frameIndex(b, prefix)
	})
	return matches, nil
}

// frameIndex recovers n from a path produced by [Frame], unparsable paths sort first.
func frameIndex(path, prefix string) int {
	name := filepath.Base(path)
	trimmed := strings.TrimSuffix(strings.TrimPrefix(name, prefix+"_"), ".png")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1
	}
	return n
}
