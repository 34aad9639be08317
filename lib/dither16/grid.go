// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dither16

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// Grid is an 8×8 tile of palette codes, in row-major order.
type Grid [gridCells]Code

// At returns the code at column x and row y, both in [0, 8).
func (g *Grid) At(x int, y int) Code {
	return g[(gridSize*y)+x]
}

// Colors returns the grid as an 8×8 matrix of palette colours, indexed by
// [y][x].
func (g *Grid) Colors() (ret [gridSize][gridSize]color.RGBA) {
	for i, code := range g {
		ret[i/gridSize][i%gridSize] = code.Color()
	}
	return ret
}

// Counts returns how many cells hold each palette code.
func (g *Grid) Counts() (ret [16]int) {
	for _, code := range g {
		ret[code&0x0F]++
	}
	return ret
}

// String returns eight lines of eight hex digits, one digit per cell.
func (g *Grid) String() string {
	const hex = "0123456789abcdef"
	sb := strings.Builder{}
	sb.Grow(gridCells * 2)
	for i, code := range g {
		sb.WriteByte(hex[code&0x0F])
		if (i % gridSize) == (gridSize - 1) {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Analysis holds the intermediate values of one dither computation.
type Analysis struct {
	Color      Color
	Normalized Color
	Swaps      SwapFlags
	Subspace   Subspace

	// Scaled holds the normalized components mapped to [0, 64].
	Scaled [3]int

	// Raw holds the transform output (c1, c2, c3) before any settling.
	Raw [3]int

	// Table is sorted from darkest to brightest. Its counts are positive and
	// sum to 64.
	Table Table

	Grid Grid
}

// Analyze runs the dither for c and returns every intermediate result.
func Analyze(c Color) (a Analysis, retErr error) {
	a.Color = c
	a.Normalized, a.Swaps = normalize(c)
	a.Subspace = classify(a.Normalized)
	a.Scaled = [3]int{
		scale(a.Normalized.R),
		scale(a.Normalized.G),
		scale(a.Normalized.B),
	}
	a.Raw = transform(a.Subspace, a.Scaled[0], a.Scaled[1], a.Scaled[2])

	a.Table = buildTable(a.Subspace, a.Raw)
	a.Table.restoreCodes(a.Swaps)
	a.Table.sortByIntensity()
	a.Table.settle()
	if total := a.Table.Total(); total != gridCells {
		return Analysis{}, errors.Wrapf(ErrInvalidInput, "colour %v: pixel counts sum to %d", c, total)
	}

	grid, err := mapPattern(&a.Table)
	if err != nil {
		return Analysis{}, errors.Wrapf(err, "colour %v", c)
	}
	a.Grid = grid
	return a, nil
}

// Compute returns the 8×8 dither tile for c.
//
// It is safe to call concurrently.
func Compute(c Color) (Grid, error) {
	a, err := Analyze(c)
	if err != nil {
		return Grid{}, err
	}
	return a.Grid, nil
}

// ComputeRGB is like Compute but takes three components in [0, 255].
func ComputeRGB(r int, g int, b int) (Grid, error) {
	c, err := NewColor(r, g, b)
	if err != nil {
		return Grid{}, err
	}
	return Compute(c)
}

// ComputeHex is like Compute but takes a "#rrggbb" string.
func ComputeHex(s string) (Grid, error) {
	c, err := ParseHex(s)
	if err != nil {
		return Grid{}, err
	}
	return Compute(c)
}

// mapPattern lays the table's colours over patternTemplate. Each entry, in
// order, claims every unclaimed cell whose threshold is below the running
// total of counts.
func mapPattern(t *Table) (g Grid, retErr error) {
	assigned := [gridCells]bool{}
	cumulative, numAssigned := 0, 0
	for _, e := range t.Entries() {
		if (e.N < 0) || !e.Code.Valid() || e.Code.Reserved() {
			return Grid{}, errors.Wrapf(ErrInvalidInput, "table entry %v×%d", e.Code, e.N)
		}
		cumulative += e.N
		for j, threshold := range patternTemplate {
			if !assigned[j] && (int(threshold) < cumulative) {
				g[j] = e.Code
				assigned[j] = true
				numAssigned++
			}
		}
	}
	if numAssigned != gridCells {
		return Grid{}, errors.Wrapf(ErrInvalidInput, "%d of %d cells assigned", numAssigned, gridCells)
	}
	return g, nil
}

// patternTemplate is the per-cell threshold, row-major. It is a permutation
// of [0, 64).
var patternTemplate = [gridCells]uint8{
	0x00, 0x20, 0x08, 0x28, 0x02, 0x22, 0x0A, 0x2A,
	0x30, 0x10, 0x38, 0x18, 0x32, 0x12, 0x3A, 0x1A,
	0x0C, 0x2C, 0x04, 0x24, 0x0E, 0x2E, 0x06, 0x26,
	0x3C, 0x1C, 0x34, 0x14, 0x3E, 0x1E, 0x36, 0x16,
	0x03, 0x23, 0x0B, 0x2B, 0x01, 0x21, 0x09, 0x29,
	0x33, 0x13, 0x3B, 0x1B, 0x31, 0x11, 0x39, 0x19,
	0x0F, 0x2F, 0x07, 0x27, 0x0D, 0x2D, 0x05, 0x25,
	0x3F, 0x1F, 0x37, 0x17, 0x3D, 0x1D, 0x35, 0x15,
}
