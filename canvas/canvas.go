// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package canvas owns the shared drawing surface and drives the animation one frame at a time.
// Artists are registered into a layer-ordered sequence, each pass draws the active ones, retires
// the done ones and [Canvas.Save] persists the result before moving the frame counter forwards.
//
// Everything here is single threaded on purpose, the gg surface is a single mutable resource and
// all callbacks run sequentially against it inside one pass.
package canvas

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/Lexer747/frameplot/artist"
	"github.com/Lexer747/frameplot/files"
	"github.com/Lexer747/frameplot/preview"
	"github.com/Lexer747/frameplot/utils/check"
	"github.com/Lexer747/frameplot/utils/errors"
	"github.com/Lexer747/frameplot/utils/numeric"
	"github.com/Lexer747/frameplot/utils/sliceutils"

	"github.com/fogleman/gg"
	"golang.org/x/exp/maps"
)

// Limits is one axis of the data coordinate space shown by a canvas.
type Limits struct {
	Min, Max float64
}

type Canvas struct {
	width, height int
	xlims, ylims  Limits

	dc       *gg.Context
	artists  []artist.Artist
	frame    int
	renderer *preview.Renderer
}

// New creates a surface of width x height pixels showing the data rectangle xlims by ylims, the
// frame counter starts at 1. Draw callbacks operate in data coordinates with y increasing upwards,
// the same convention a plot would use.
func New(width, height int, xlims, ylims Limits) *Canvas {
	check.Checkf(width > 0 && height > 0, "canvas surface must have a positive size, got %dx%d", width, height)
	check.Checkf(xlims.Min < xlims.Max && ylims.Min < ylims.Max,
		"canvas limits must be non-empty ranges, got x%v y%v", xlims, ylims)
	c := &Canvas{
		width:    width,
		height:   height,
		xlims:    xlims,
		ylims:    ylims,
		dc:       gg.NewContext(width, height),
		artists:  []artist.Artist{},
		frame:    1,
		renderer: preview.NewRenderer(),
	}
	c.Reset()
	return c
}

// Register appends artists to the managed sequence then re-sorts it by layer ascending, ties keep
// their prior relative order. This is the draw order within a frame, lower layers end up
// underneath higher ones.
func (c *Canvas) Register(artists ...artist.Artist) {
	c.artists = append(c.artists, artists...)
	slices.SortStableFunc(c.artists, func(a, b artist.Artist) int {
		return a.Layer() - b.Layer()
	})
	for _, a := range artists {
		slog.Debug("registered artist", "artist", a.String(), "layer", a.Layer())
	}
}

// RegisterFunc builds an artist from a raw draw callback via the given variant factory, registers
// it, and returns it so the caller can keep a handle for [artist.Toggled.Toggle] and friends.
func (c *Canvas) RegisterFunc(draw artist.DrawFunc, build artist.Factory) artist.Artist {
	a := build(draw)
	c.Register(a)
	return a
}

// Artists returns every managed artist regardless of activation state, in current sort order.
func (c *Canvas) Artists() []artist.Artist {
	return slices.Clone(c.artists)
}

// Active returns only the artists which should be drawn on the current frame.
func (c *Canvas) Active() []artist.Artist {
	return sliceutils.Filter(c.artists, func(a artist.Artist) bool {
		return a.IsActive(c.frame)
	})
}

// Summary is [Canvas.Artists] in string form.
func (c *Canvas) Summary() []string {
	return sliceutils.Map(c.artists, artist.Artist.String)
}

// ActiveSummary is [Canvas.Active] in string form.
func (c *Canvas) ActiveSummary() []string {
	return sliceutils.Map(c.Active(), artist.Artist.String)
}

// Draw runs one pass over the managed sequence: every active artist is drawn onto the surface in
// sort order, and independently every done artist is retired. Doneness is evaluated after the
// draw against the same frame, so a [artist.OneTime] scheduled for the current frame is drawn and
// removed in one pass.
func (c *Canvas) Draw() {
	var retired []artist.Artist
	for _, a := range c.artists {
		if a.IsActive(c.frame) {
			a.Draw(c.dc)
		}
		if a.IsDone(c.frame) {
			retired = append(retired, a)
		}
	}
	if len(retired) == 0 {
		return
	}
	// Never mutate the sequence while iterating it, filter in one step afterwards.
	c.artists = sliceutils.Remove(c.artists, retired...)
	for _, a := range retired {
		slog.Debug("retired artist", "artist", a.String(), "frame", c.frame)
	}
}

// Reset clears the surface back to the background colour and reapplies the configured limits.
func (c *Canvas) Reset() {
	c.dc.Identity()
	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()
	c.applyLimits()
}

// applyLimits installs the affine transform taking data coordinates onto the pixel surface: the
// point (xlims.Min, ylims.Min) lands on the bottom-left pixel and (xlims.Max, ylims.Max) on the
// top-right.
func (c *Canvas) applyLimits() {
	scaleX := float64(c.width) / (c.xlims.Max - c.xlims.Min)
	scaleY := float64(c.height) / (c.ylims.Max - c.ylims.Min)
	c.dc.Translate(0, float64(c.height))
	c.dc.Scale(scaleX, -scaleY)
	c.dc.Translate(-c.xlims.Min, -c.ylims.Min)
}

// Show runs a [Canvas.Draw] pass then presents the surface to w as a terminal preview sized for
// the controlling terminal. Showing is only a preview, it never advances the frame counter -
// [Canvas.Save] is the only operation which does.
func (c *Canvas) Show(w io.Writer) error {
	return c.ShowSized(w, preview.TerminalSize())
}

// ShowSized is [Canvas.Show] with an explicit terminal size.
func (c *Canvas) ShowSized(w io.Writer, size preview.Size) error {
	c.Draw()
	_, err := io.WriteString(w, c.renderer.Render(c.dc.Image(), size))
	return errors.Wrap(err, "could not present canvas")
}

// Save runs a [Canvas.Draw] pass, writes the surface to '<folder>/<prefix>_<frame>.png', resets
// the surface, then increments the frame counter. The folder must already exist, creating it is
// the caller's responsibility, and any disk failure propagates without retries.
func (c *Canvas) Save(folder, prefix string) error {
	c.Draw()
	path := files.Frame(folder, prefix, c.frame)
	if err := c.dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not save frame %d to %q", c.frame, path)
	}
	slog.Debug("saved frame", "path", path, "artists", len(c.artists))
	c.Reset()
	c.frame++
	return nil
}

// Frame is the current frame counter, it starts at 1 and only [Canvas.Save] advances it.
func (c *Canvas) Frame() int {
	return c.frame
}

// SetFrame jumps the counter to an arbitrary frame, for test harnesses and live playback which
// never persist frames.
func (c *Canvas) SetFrame(frame int) {
	c.frame = frame
}

// DataToPixel maps a point of the data coordinate space onto the pixel surface, the same mapping
// [Canvas.Reset] installs for draw callbacks. Pixel y grows downwards so ylims.Max lands on row 0.
func (c *Canvas) DataToPixel(x, y float64) (px, py float64) {
	px = numeric.Remap(x, c.xlims.Min, c.xlims.Max, 0, float64(c.width))
	py = numeric.Remap(y, c.ylims.Min, c.ylims.Max, float64(c.height), 0)
	return px, py
}

// Image exposes the current surface pixels, the returned image aliases the live surface.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) String() string {
	counts := map[string]int{}
	for _, a := range c.artists {
		name, _, found := strings.Cut(a.String(), ":")
		check.Check(found, "artist String must lead with its variant name")
		counts[name]++
	}
	kinds := maps.Keys(counts)
	slices.Sort(kinds)
	descriptions := sliceutils.Map(kinds, func(kind string) string {
		return fmt.Sprintf("%d %s", counts[kind], kind)
	})
	return fmt.Sprintf("The Canvas has %d (possibly idle) artists [%s]:\n\t- %s",
		len(c.artists), strings.Join(descriptions, ", "), strings.Join(c.Summary(), "\n\t- "))
}
