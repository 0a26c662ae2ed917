// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package artist contains the drawable units which a [canvas.Canvas] sequences into an animation.
// An artist wraps a draw callback with an activation policy over the discrete frame counter, the
// closed set of policies is:
//
//   - [Plain] is drawn on every frame until it's deactivated.
//   - [Timed] is drawn on every frame inside an inclusive window.
//   - [Toggled] is drawn while it's explicitly switched on.
//   - [OneTime] is drawn exactly once, on a single (possibly future) frame.
package artist

import (
	"fmt"

	"github.com/fogleman/gg"
)

// DrawFunc draws something onto the shared surface, it has no return value and no side effect other
// than drawing. All rasterization is delegated to the gg context.
type DrawFunc func(dc *gg.Context)

// Artist is the capability shared by every variant, a canvas only speaks to this interface.
type Artist interface {
	fmt.Stringer

	// ID is the opaque unique token identifying this artist, two artists are equal iff their
	// ID's are equal, see [Equal].
	ID() string
	// Layer is the ordering key for draw order, lower layers are drawn first and therefore
	// appear underneath higher ones.
	Layer() int
	// IsActive reports whether the artist should be drawn on the given frame.
	IsActive(frame int) bool
	// IsDone reports whether the artist can be permanently removed from its canvas, once done
	// an artist never becomes active again.
	IsDone(frame int) bool
	// Draw invokes the stored callback against the surface.
	Draw(dc *gg.Context)
	// Deactivate irreversibly stops this artist being drawn on all subsequent frames.
	Deactivate()
}

// A Factory builds an artist of a specific variant from a raw draw callback, it's the currency of
// [canvas.Canvas.RegisterFunc].
type Factory func(draw DrawFunc) Artist

// Equal compares two artists solely by their unique id, distinct instances are never equal even
// with identical content.
func Equal(a, b Artist) bool {
	return a.ID() == b.ID()
}

// base carries the state every variant shares, variants embed it by pointer-receiver promotion.
type base struct {
	id          string
	draw        DrawFunc
	layer       int
	deactivated bool
}

func newBase(draw DrawFunc, layer int) base {
	return base{id: NewID(), draw: draw, layer: layer}
}

func (b *base) ID() string {
	return b.id
}

func (b *base) Layer() int {
	return b.layer
}

func (b *base) Deactivate() {
	b.deactivated = true
}

func (b *base) Draw(dc *gg.Context) {
	b.draw(dc)
}

// A Plain artist draws itself on every frame, it only stops once [Plain.Deactivate] is called.
type Plain struct {
	base
}

func NewPlain(draw DrawFunc, layer int) *Plain {
	return &Plain{base: newBase(draw, layer)}
}

// EveryFrame is the [Factory] form of [NewPlain].
func EveryFrame(layer int) Factory {
	return func(draw DrawFunc) Artist { return NewPlain(draw, layer) }
}

func (a *Plain) IsActive(frame int) bool {
	return !a.deactivated
}

func (a *Plain) IsDone(frame int) bool {
	return a.deactivated
}

func (a *Plain) String() string {
	return "Artist: " + a.id
}
