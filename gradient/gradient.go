// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package gradient provides colour ramps and eased lookup tables for animated draw callbacks.
package gradient

import (
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// Table stores a look-up table of colour keypoints, Pos values must ascend and should span [0, 1].
type Table []Keypoint

type Keypoint struct {
	Pos float64
	Col colorful.Color
}

// At gets the colour at the specified point of the table, blending neighbouring keypoints in HCL
// space which keeps the perceived lightness even across the ramp.
func (t Table) At(pos float64) colorful.Color {
	for i := 0; i < len(t)-1; i++ {
		k1 := t[i]
		k2 := t[i+1]
		if k1.Pos <= pos && pos <= k2.Pos {
			// We are in between k1 and k2. Go blend them!
			f := (pos - k1.Pos) / (k2.Pos - k1.Pos)
			return k1.Col.BlendHcl(k2.Col, f).Clamped()
		}
	}

	// Nothing found? Means we're at (or past) the last keypoint.
	return t[len(t)-1].Col
}

// Lut generates a symmetric ease-in-out lookup table of the given length, rising over the first
// half and falling back over the second. Useful for pulsing sizes or opacities over a frame window.
func Lut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}
