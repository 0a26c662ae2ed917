// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package artist

import "fmt"

// State is the switch position of a [Toggled] artist.
type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// A Toggled artist draws itself while it's switched on, [Toggled.Toggle] is an explicit external
// operation and isn't tied to the frame counter in any way.
type Toggled struct {
	base
	state State
}

func NewToggled(draw DrawFunc, initial State, layer int) *Toggled {
	return &Toggled{base: newBase(draw, layer), state: initial}
}

// Switch is the [Factory] form of [NewToggled].
func Switch(initial State, layer int) Factory {
	return func(draw DrawFunc) Artist { return NewToggled(draw, initial, layer) }
}

// Toggle flips the artist between [Active] and [Inactive].
func (a *Toggled) Toggle() {
	if a.state == Active {
		a.state = Inactive
	} else {
		a.state = Active
	}
}

func (a *Toggled) State() State {
	return a.state
}

func (a *Toggled) IsActive(frame int) bool {
	return a.state == Active && !a.deactivated
}

func (a *Toggled) IsDone(frame int) bool {
	return a.deactivated
}

func (a *Toggled) String() string {
	return fmt.Sprintf("ToggledArtist: %s, state: %s", a.id, a.state)
}
