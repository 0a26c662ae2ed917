// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package artist_test

import (
	"fmt"
	"testing"

	"github.com/Lexer747/frameplot/artist"

	"github.com/fogleman/gg"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func noop(dc *gg.Context) {}

// sequential returns a deterministic [artist.IDGenerator], every test which cares about identity
// injects one of these, which is also why none of the tests in this file are parallel.
func sequential(prefix string) artist.IDGenerator {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("%s-%03d", prefix, i)
	}
}

type ActivationCase struct {
	Frame  int
	Active bool
	Done   bool
}

func (tc ActivationCase) Run(a artist.Artist) func(t *testing.T) {
	return func(t *testing.T) {
		assert.Check(t, is.Equal(tc.Active, a.IsActive(tc.Frame)), "IsActive(%d)", tc.Frame)
		assert.Check(t, is.Equal(tc.Done, a.IsDone(tc.Frame)), "IsDone(%d)", tc.Frame)
	}
}

func TestPlain(t *testing.T) {
	a := artist.NewPlain(noop, 0)
	for _, tc := range []ActivationCase{
		{Frame: 1, Active: true, Done: false},
		{Frame: 100, Active: true, Done: false},
		{Frame: 1_000_000, Active: true, Done: false},
	} {
		t.Run(fmt.Sprintf("frame %d", tc.Frame), tc.Run(a))
	}
	a.Deactivate()
	for _, tc := range []ActivationCase{
		{Frame: 1, Active: false, Done: true},
		{Frame: 100, Active: false, Done: true},
	} {
		t.Run(fmt.Sprintf("deactivated frame %d", tc.Frame), tc.Run(a))
	}
}

func TestTimed(t *testing.T) {
	a := artist.NewTimed(noop, 10, 20, 0)
	for _, tc := range []ActivationCase{
		{Frame: 1, Active: false, Done: false},
		{Frame: 9, Active: false, Done: false},
		// the window is inclusive on both ends
		{Frame: 10, Active: true, Done: false},
		{Frame: 15, Active: true, Done: false},
		{Frame: 20, Active: true, Done: false},
		{Frame: 21, Active: false, Done: true},
		{Frame: 100, Active: false, Done: true},
	} {
		t.Run(fmt.Sprintf("frame %d", tc.Frame), tc.Run(a))
	}
	a.Deactivate()
	t.Run("deactivated inside the window", ActivationCase{Frame: 15, Active: false, Done: true}.Run(a))
}

func TestTimed_InvertedWindow(t *testing.T) {
	// Not validated, simply never active.
	a := artist.NewTimed(noop, 20, 10, 0)
	for frame := 1; frame <= 30; frame++ {
		assert.Check(t, !a.IsActive(frame), "frame %d", frame)
	}
}

func TestToggled(t *testing.T) {
	a := artist.NewToggled(noop, artist.Inactive, 0)
	assert.Check(t, !a.IsActive(1))
	assert.Check(t, !a.IsDone(1), "an idle toggled artist isn't done, it may yet be switched on")

	// toggle alternates from the constructed initial state
	a.Toggle()
	assert.Check(t, is.Equal(artist.Active, a.State()))
	assert.Check(t, a.IsActive(1))
	a.Toggle()
	assert.Check(t, is.Equal(artist.Inactive, a.State()))
	assert.Check(t, !a.IsActive(1))

	b := artist.NewToggled(noop, artist.Active, 0)
	assert.Check(t, b.IsActive(1))

	b.Deactivate()
	assert.Check(t, !b.IsActive(1), "deactivation wins over the switch state")
	assert.Check(t, b.IsDone(1))
	b.Toggle()
	assert.Check(t, !b.IsActive(1), "toggling can't resurrect a deactivated artist")
}

func TestOneTime(t *testing.T) {
	a := artist.NewOneTime(noop, 5, 0)
	for _, tc := range []ActivationCase{
		{Frame: 4, Active: false, Done: false},
		{Frame: 5, Active: true, Done: false},
		{Frame: 6, Active: false, Done: false},
	} {
		t.Run(fmt.Sprintf("before drawing frame %d", tc.Frame), tc.Run(a))
	}

	a.Draw(nil)
	assert.Check(t, a.Drawn())
	// done immediately after the single draw, even re-evaluated against the same frame
	t.Run("after drawing", ActivationCase{Frame: 5, Active: true, Done: true}.Run(a))
	t.Run("after drawing, later frame", ActivationCase{Frame: 6, Active: false, Done: true}.Run(a))
}

func TestDeactivateIsPermanent(t *testing.T) {
	artists := []artist.Artist{
		artist.NewPlain(noop, 0),
		artist.NewTimed(noop, 1, 100, 0),
		artist.NewToggled(noop, artist.Active, 0),
		artist.NewOneTime(noop, 50, 0),
	}
	for _, a := range artists {
		a.Deactivate()
		for frame := 1; frame <= 200; frame += 7 {
			assert.Check(t, !a.IsActive(frame), "%s at frame %d", a, frame)
			assert.Check(t, a.IsDone(frame), "%s at frame %d", a, frame)
		}
	}
}

func TestEqualityIsByID(t *testing.T) {
	defer artist.SetIDGenerator(artist.SetIDGenerator(sequential("eq")))

	same := artist.DrawFunc(noop)
	a := artist.NewPlain(same, 3)
	b := artist.NewPlain(same, 3)
	assert.Check(t, artist.Equal(a, a))
	assert.Check(t, !artist.Equal(a, b), "identical content but distinct ids are never equal")
	assert.Check(t, !artist.Equal(a, artist.NewTimed(same, 1, 2, 3)))
}

func TestDefaultIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id := artist.NewID()
		assert.Check(t, is.Len(id, 26), "ids are fixed length tokens")
		assert.Check(t, !seen[id], "id %q repeated", id)
		seen[id] = true
	}
}

func TestStringForms(t *testing.T) {
	defer artist.SetIDGenerator(artist.SetIDGenerator(sequential("id")))

	assert.Check(t, is.Equal("Artist: id-001", artist.NewPlain(noop, 0).String()))
	assert.Check(t, is.Equal("TimedArtist: id-002, start: 10, end: 20", artist.NewTimed(noop, 10, 20, 0).String()))
	assert.Check(t, is.Equal("ToggledArtist: id-003, state: inactive", artist.NewToggled(noop, artist.Inactive, 0).String()))

	once := artist.NewOneTime(noop, 5, 0)
	assert.Check(t, is.Equal("OneTimeArtist: id-004, drawn: false", once.String()))
	once.Draw(nil)
	assert.Check(t, is.Equal("OneTimeArtist: id-004, drawn: true", once.String()))
}
