// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

import "strconv"

type ED int // Erase in Display

const (
	// Control Sequence Introducer | Starts most of the useful sequences, terminated by a byte in the range
	// 0x40 through 0x7E.
	CSI = "\033["

	CursorToScreenEnd         ED = 0
	CursorToScreenBegin       ED = 1
	CursorScreen              ED = 2
	CursorScreenAndScrollBack ED = 3

	R = CSI + "0m"

	HideCursor = CSI + "?25l"
	ShowCursor = CSI + "?25h"
)

var s = strconv.Itoa

var Clear = EraseInDisplay(CursorScreen)
var Home = CursorPosition(1, 1)

func CursorUp(n int) string           { return CSI + s(n) + "A" }
func CursorDown(n int) string         { return CSI + s(n) + "B" }
func CursorPreviousLine(n int) string { return CSI + s(n) + "F" }

func CursorPosition(row, column int) string { return CSI + s(row) + ";" + s(column) + "H" }

func EraseInDisplay(n ED) string { return CSI + s(int(n)) + "J" }

// Foreground emits the 24-bit colour sequence for all following text.
func Foreground(r, g, b uint8) string {
	return CSI + "38;2;" + s(int(r)) + ";" + s(int(g)) + ";" + s(int(b)) + "m"
}

// Background is the 24-bit counterpart of [Foreground] for the cell background.
func Background(r, g, b uint8) string {
	return CSI + "48;2;" + s(int(r)) + ";" + s(int(g)) + ";" + s(int(b)) + "m"
}
