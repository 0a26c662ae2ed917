// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package artist

import "fmt"

// A Timed artist draws itself on every frame of the window [Start, End], inclusive on both ends.
// An inverted window (End < Start) isn't validated, it's simply never active.
type Timed struct {
	base
	Start int
	End   int
}

func NewTimed(draw DrawFunc, start, end, layer int) *Timed {
	return &Timed{base: newBase(draw, layer), Start: start, End: end}
}

// Window is the [Factory] form of [NewTimed].
func Window(start, end, layer int) Factory {
	return func(draw DrawFunc) Artist { return NewTimed(draw, start, end, layer) }
}

func (a *Timed) IsActive(frame int) bool {
	return frame >= a.Start && frame <= a.End && !a.deactivated
}

func (a *Timed) IsDone(frame int) bool {
	return frame > a.End || a.deactivated
}

func (a *Timed) String() string {
	return fmt.Sprintf("TimedArtist: %s, start: %d, end: %d", a.id, a.Start, a.End)
}
