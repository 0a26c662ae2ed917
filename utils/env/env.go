// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

//nolint:stylecheck
package env

import "os"

func KEEP_TEST_FRAMES() bool {
	str := os.Getenv("FRAMEPLOT_KEEP_TEST_FRAMES")
	return str == "1"
}
