// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package termview previews dither grids on a true-colour terminal.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/nigeltao/dither16/lib/dither16"
)

// CellWidth is the number of terminal columns per grid cell. Terminal cells
// are roughly twice as tall as they are wide.
const CellWidth = 2

// Style returns a style whose background is code's palette colour.
func Style(code dither16.Code) tcell.Style {
	c := code.Color()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Draw paints g with its top-left corner at (x, y). It covers 16 columns and
// 8 rows.
func Draw(s tcell.Screen, x int, y int, g dither16.Grid) {
	for gy := 0; gy < 8; gy++ {
		for gx := 0; gx < 8; gx++ {
			st := Style(g.At(gx, gy))
			for i := 0; i < CellWidth; i++ {
				s.SetContent(x+(CellWidth*gx)+i, y+gy, ' ', nil, st)
			}
		}
	}
}

// DrawLegend writes one line per table entry, starting at (x, y): a colour
// chip, the palette code, its hex colour and its cell count.
func DrawLegend(s tcell.Screen, x int, y int, t dither16.Table) {
	for i, e := range t.Entries() {
		s.SetContent(x, y+i, ' ', nil, Style(e.Code))
		s.SetContent(x+1, y+i, ' ', nil, Style(e.Code))
		drawString(s, x+3, y+i, fmt.Sprintf("0x%X %s %2d/64", uint8(e.Code), e.Code, e.N), tcell.StyleDefault)
	}
}

func drawString(s tcell.Screen, x int, y int, str string, st tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

// Show draws a's input colour, grid and table on the already initialized s,
// then waits for a key press. The caller owns s and should Fini it.
func Show(s tcell.Screen, a dither16.Analysis) {
	draw := func() {
		s.Clear()
		drawString(s, 1, 0, fmt.Sprintf("%s  subspace %d", a.Color, a.Subspace), tcell.StyleDefault)
		for gy := 0; gy < 8; gy++ {
			for i := 0; i < 8*CellWidth; i++ {
				s.SetContent(1+i, 2+gy, ' ', nil, tcell.StyleDefault.Background(
					tcell.NewRGBColor(int32(a.Color.R), int32(a.Color.G), int32(a.Color.B))))
			}
		}
		Draw(s, 2+(8*CellWidth), 2, a.Grid)
		DrawLegend(s, 3+(16*CellWidth), 2, a.Table)
		drawString(s, 1, 11, "press any key", tcell.StyleDefault)
		s.Show()
	}

	draw()
	for {
		switch s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			draw()
		case *tcell.EventKey:
			return
		}
	}
}
