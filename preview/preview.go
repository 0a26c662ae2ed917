// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package preview renders a canvas surface into a terminal. A terminal cell is taller than it is
// wide so each cell carries two vertically stacked pixels, the upper-half-block glyph with a
// 24-bit foreground and background.
package preview

import (
	"bytes"
	"image"
	"os"

	"github.com/Lexer747/frameplot/preview/ansi"
	"github.com/Lexer747/frameplot/utils/check"

	"golang.org/x/term"
)

type Size struct {
	Height int
	Width  int
}

const halfBlock = "▀"

// TerminalSize queries the controlling terminal, when stdout isn't a terminal (tests, pipes) a
// conventional 80x20 is returned instead.
func TerminalSize() Size {
	fallback := Size{Height: 20, Width: 80}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fallback
	}
	return Size{Height: h, Width: w}
}

// Renderer turns surface images into printable frames. It keeps a single byte buffer which is
// reused across calls so the memory needed for a whole animation is bounded by the largest frame,
// rather than growing with every frame we present.
type Renderer struct {
	buf *bytes.Buffer
}

func NewRenderer() *Renderer {
	return &Renderer{buf: &bytes.Buffer{}}
}

// Render box-downsamples img onto a (size.Width x size.Height*2) pixel grid and emits one line of
// half-block cells per terminal row, each line ends with a colour reset. The returned string is
// only valid until the next call to Render.
func (r *Renderer) Render(img image.Image, size Size) string {
	check.Checkf(size.Width > 0 && size.Height > 0, "invalid preview size %dx%d", size.Width, size.Height)
	r.buf.Reset()
	cols := size.Width
	rows := size.Height * 2
	for row := 0; row < size.Height; row++ {
		for col := 0; col < cols; col++ {
			upperR, upperG, upperB := boxAverage(img, col, row*2, cols, rows)
			lowerR, lowerG, lowerB := boxAverage(img, col, row*2+1, cols, rows)
			r.buf.WriteString(ansi.Foreground(upperR, upperG, upperB))
			r.buf.WriteString(ansi.Background(lowerR, lowerG, lowerB))
			r.buf.WriteString(halfBlock)
		}
		r.buf.WriteString(ansi.R)
		r.buf.WriteByte('\n')
	}
	return r.buf.String()
}

// boxAverage averages the source pixels covered by the target grid cell (cx, cy).
func boxAverage(img image.Image, cx, cy, cols, rows int) (uint8, uint8, uint8) {
	b := img.Bounds()
	x0 := b.Min.X + cx*b.Dx()/cols
	x1 := b.Min.X + (cx+1)*b.Dx()/cols
	y0 := b.Min.Y + cy*b.Dy()/rows
	y1 := b.Min.Y + (cy+1)*b.Dy()/rows
	// A grid finer than the source collapses some cells to zero width, sample a single pixel
	// instead.
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	x1 = min(x1, b.Max.X)
	y1 = min(y1, b.Max.Y)
	x0 = min(x0, x1-1)
	y0 = min(y0, y1-1)

	var sumR, sumG, sumB, n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pixelR, pixelG, pixelB, _ := img.At(x, y).RGBA()
			sumR += uint64(pixelR >> 8)
			sumG += uint64(pixelG >> 8)
			sumB += uint64(pixelB >> 8)
			n++
		}
	}
	return uint8(sumR / n), uint8(sumG / n), uint8(sumB / n)
}
