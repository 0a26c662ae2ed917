// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric

// Lerp linearly interpolates between begin and end, t is not clamped so values outside [0,1]
// extrapolate.
func Lerp(begin, end, t float64) float64 {
	return begin + (end-begin)*t
}

func Clamp(input, minimum, maximum float64) float64 {
	switch {
	case input < minimum:
		return minimum
	case input > maximum:
		return maximum
	default:
		return input
	}
}

// Remap takes input relative to the range [beginIn, endIn] and maps it to the equivalent point of
// [beginOut, endOut].
func Remap(input, beginIn, endIn, beginOut, endOut float64) float64 {
	t := (input - beginIn) / (endIn - beginIn)
	return Lerp(beginOut, endOut, t)
}
