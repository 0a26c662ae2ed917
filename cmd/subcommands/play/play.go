// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// play runs an animation live in the terminal. Nothing is written to disk, showing a frame is a
// preview and never advances the canvas frame counter, so playback drives the counter itself.
package play

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Lexer747/frameplot/artist"
	"github.com/Lexer747/frameplot/canvas"
	"github.com/Lexer747/frameplot/gradient"
	"github.com/Lexer747/frameplot/preview"
	"github.com/Lexer747/frameplot/preview/ansi"
	"github.com/Lexer747/frameplot/utils/check"
	"github.com/Lexer747/frameplot/utils/errors"
	"github.com/Lexer747/frameplot/utils/exit"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

type Config struct {
	fps      *int
	frames   *int
	termSize *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		fps:    f.Int("fps", 30, "playback frame rate"),
		frames: f.Int("frames", 120, "how many frames to play before exiting"),
		termSize: f.String("term-size", "", "controls the terminal size and fixes it to the input,"+
			" input is in the form \"<H>x<W>\" e.g. 20x80. H and W must be integers - where H == height, and W == width of the terminal."),
		FlagSet: f,
	}
	f.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s: plays an orbit animation live in the terminal\n"+
			"\t play [options]\n\n", os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunPlay(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	size, err := getSize(*c.termSize)
	exit.OnErrorMsg(err, "Couldn't determine terminal size, failed with")

	cv := canvas.New(400, 400, canvas.Limits{Min: -1.2, Max: 1.2}, canvas.Limits{Min: -1.2, Max: 1.2})
	populate(cv, *c.frames)

	fmt.Print(ansi.HideCursor + ansi.Clear)
	defer fmt.Print(ansi.ShowCursor)
	frameRate := time.NewTicker(time.Second / time.Duration(*c.fps))
	defer frameRate.Stop()
	for i := 1; i <= *c.frames; i++ {
		cv.SetFrame(i)
		cv.Reset()
		fmt.Print(ansi.Home)
		exit.OnErrorMsg(cv.ShowSized(os.Stdout, size), "Couldn't present frame, failed with")
		<-frameRate.C
	}
}

// populate builds an orbiting dot sweeping a hue ramp, its size pulsing through an eased LUT,
// over a faint axes cross. Halfway through a one-time ring flashes for a single frame.
func populate(cv *canvas.Canvas, frames int) {
	ramp := gradient.Table{
		{Pos: 0.0, Col: colorful.Hcl(0, 0.6, 0.6)},
		{Pos: 0.25, Col: colorful.Hcl(90, 0.6, 0.6)},
		{Pos: 0.5, Col: colorful.Hcl(180, 0.6, 0.6)},
		{Pos: 0.75, Col: colorful.Hcl(270, 0.6, 0.6)},
		{Pos: 1.0, Col: colorful.Hcl(360, 0.6, 0.6)},
	}
	lut := gradient.Lut(frames)

	cv.RegisterFunc(func(dc *gg.Context) {
		dc.SetColor(colorful.Color{R: 0.85, G: 0.85, B: 0.85})
		dc.SetLineWidth(0.01)
		dc.DrawLine(-1.2, 0, 1.2, 0)
		dc.Stroke()
		dc.DrawLine(0, -1.2, 0, 1.2)
		dc.Stroke()
	}, artist.EveryFrame(0))

	cv.RegisterFunc(func(dc *gg.Context) {
		t := float64(cv.Frame()-1) / float64(frames)
		theta := 2 * math.Pi * t
		dc.SetColor(ramp.At(t))
		dc.DrawCircle(0.9*math.Cos(theta), 0.9*math.Sin(theta), 0.06+0.08*lut[(cv.Frame()-1)%len(lut)])
		dc.Fill()
	}, artist.EveryFrame(1))

	cv.RegisterFunc(func(dc *gg.Context) {
		dc.SetColor(colorful.Color{R: 0.9, G: 0.2, B: 0.2})
		dc.SetLineWidth(0.04)
		dc.DrawCircle(0, 0, 0.5)
		dc.Stroke()
	}, artist.Once(frames/2, 2))
}

// getSize parses the "<H>x<W>" form, an empty input falls back to querying the actual terminal.
func getSize(termSize string) (preview.Size, error) {
	if termSize == "" {
		return preview.TerminalSize(), nil
	}
	h, w, found := strings.Cut(termSize, "x")
	if !found {
		return preview.Size{}, errors.Errorf("Could not parse term-size %q, use the form \"<H>x<W>\"", termSize)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return preview.Size{}, errors.Wrapf(err, "Could not parse height from term-size %q", termSize)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return preview.Size{}, errors.Wrapf(err, "Could not parse width from term-size %q", termSize)
	}
	return preview.Size{Height: height, Width: width}, nil
}
