// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// demo renders the canonical frameplot example animation into a folder of PNG frames: two
// permanent diagonals, two timed lines, a toggled scatter flipped mid-animation and a one-time
// splash, with the first permanent artist deactivated near the end.
package demo

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Lexer747/frameplot/artist"
	"github.com/Lexer747/frameplot/canvas"
	"github.com/Lexer747/frameplot/files"
	"github.com/Lexer747/frameplot/gradient"
	"github.com/Lexer747/frameplot/utils/check"
	"github.com/Lexer747/frameplot/utils/exit"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

type Config struct {
	out     *string
	prefix  *string
	frames  *int
	logFile *string

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		out:     f.String("out", "out", "the `folder` to write frames into, created when missing"),
		prefix:  f.String("prefix", "demo", "the filename `prefix` of every emitted frame"),
		frames:  f.Int("frames", 50, "how many frames to render"),
		logFile: f.String("l", "", "write logs to `file`"),
		FlagSet: f,
	}
	f.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s: renders the example animation as '<out>/<prefix>_<N>.png' frames\n"+
			"\t demo [options]\n\n", os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunDemo(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := initLogging(*c.logFile)
	defer closeLogFile()

	// Folder creation is on us, a canvas will refuse nothing but also create nothing.
	exit.OnErrorMsgf(files.EnsureDir(*c.out), "Couldn't create output folder %q, failed with", *c.out)

	cv := canvas.New(500, 500, canvas.Limits{Min: 0, Max: 10}, canvas.Limits{Min: 0, Max: 10})
	permanent, toggled := populate(cv)

	fmt.Println(cv)
	fmt.Println()
	for n := 0; n < *c.frames; n++ {
		frame := cv.Frame()
		if frame == 25 || frame == 30 {
			toggled.Toggle()
		}
		if frame == 45 {
			permanent.Deactivate()
		}

		fmt.Printf("Frame %d:\n", frame)
		for _, line := range cv.ActiveSummary() {
			fmt.Printf("\t- %s\n", line)
		}
		exit.OnErrorMsg(cv.Save(*c.out, *c.prefix), "Couldn't persist frame, failed with")
	}

	emitted, err := files.Frames(*c.out, *c.prefix)
	exit.OnErrorMsg(err, "Couldn't list emitted frames, failed with")
	fmt.Printf("\nWrote %d frames to %q\n", len(emitted), *c.out)
}

// populate registers the example artists, returning the two handles the animation manipulates
// while running.
func populate(cv *canvas.Canvas) (permanent *artist.Plain, toggled *artist.Toggled) {
	permanent = artist.NewPlain(line(0, 0, 10, 10, colorful.Color{R: 0.12, G: 0.29, B: 0.69}), 0)
	toggled = artist.NewToggled(scatter(0.25, colorful.Color{R: 0.84, G: 0.37, B: 0.1}, point{2.5, 2.5}, point{7.5, 7.5}), artist.Inactive, 0)

	cv.Register(permanent, toggled)
	cv.RegisterFunc(line(0, 10, 10, 0, colorful.Color{R: 0.12, G: 0.29, B: 0.69}), artist.EveryFrame(0))
	cv.RegisterFunc(line(0, 5, 10, 5, colorful.Color{R: 0.17, G: 0.63, B: 0.17}), artist.Window(10, 20, 0))
	cv.RegisterFunc(line(5, 0, 5, 10, colorful.Color{R: 0.17, G: 0.63, B: 0.17}), artist.Window(30, 40, 0))
	cv.RegisterFunc(splash(5, 5), artist.Once(25, 1))
	return permanent, toggled
}

type point struct{ x, y float64 }

func line(x1, y1, x2, y2 float64, col colorful.Color) artist.DrawFunc {
	return func(dc *gg.Context) {
		dc.SetColor(col)
		dc.SetLineWidth(0.05)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
}

func scatter(radius float64, col colorful.Color, points ...point) artist.DrawFunc {
	return func(dc *gg.Context) {
		dc.SetColor(col)
		for _, p := range points {
			dc.DrawCircle(p.x, p.y, radius)
			dc.Fill()
		}
	}
}

// splash draws concentric eased rings through a warm colour ramp, the one-off celebration frame.
func splash(x, y float64) artist.DrawFunc {
	ramp := gradient.Table{
		{Pos: 0.0, Col: colorful.Color{R: 1.0, G: 0.9, B: 0.2}},
		{Pos: 0.5, Col: colorful.Color{R: 0.9, G: 0.4, B: 0.1}},
		{Pos: 1.0, Col: colorful.Color{R: 0.6, G: 0.1, B: 0.1}},
	}
	lut := gradient.Lut(16)
	return func(dc *gg.Context) {
		for i, eased := range lut {
			t := float64(i) / float64(len(lut)-1)
			dc.SetColor(ramp.At(t))
			dc.SetLineWidth(0.03)
			dc.DrawCircle(x, y, 0.2+2.0*eased)
			dc.Stroke()
		}
	}
}

func initLogging(file string) func() {
	if file != "" {
		f, err := os.Create(file)
		check.NoErr(err, "could not create log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(h))
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	// If no file is specified we want to stop all logging
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}
