// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package artist

import (
	"fmt"

	"github.com/fogleman/gg"
)

// A OneTime artist draws itself exactly once, on the frame When. The first [OneTime.Draw] sets
// drawn permanently, so IsDone holds from that point even when re-evaluated against the same
// frame, this is what retires the artist in the same canvas pass which drew it.
type OneTime struct {
	base
	When  int
	drawn bool
}

func NewOneTime(draw DrawFunc, when, layer int) *OneTime {
	return &OneTime{base: newBase(draw, layer), When: when}
}

// Once is the [Factory] form of [NewOneTime].
func Once(when, layer int) Factory {
	return func(draw DrawFunc) Artist { return NewOneTime(draw, when, layer) }
}

func (a *OneTime) Draw(dc *gg.Context) {
	a.base.Draw(dc)
	a.drawn = true
}

func (a *OneTime) Drawn() bool {
	return a.drawn
}

func (a *OneTime) IsActive(frame int) bool {
	return frame == a.When && !a.deactivated
}

func (a *OneTime) IsDone(frame int) bool {
	return a.drawn || a.deactivated
}

func (a *OneTime) String() string {
	return fmt.Sprintf("OneTimeArtist: %s, drawn: %t", a.id, a.drawn)
}
