// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dither16

// SwapFlags records which pairwise component exchanges folded a colour into
// the r ≥ g ≥ b region.
type SwapFlags struct {
	RB bool
	GB bool
	RG bool
}

// normalize folds c so that r ≥ g ≥ b. The three compare-and-swaps happen in
// a fixed order (RB, GB, RG), each seeing the previous ones' results.
func normalize(c Color) (Color, SwapFlags) {
	f := SwapFlags{}
	if c.R < c.B {
		c.R, c.B = c.B, c.R
		f.RB = true
	}
	if c.G < c.B {
		c.G, c.B = c.B, c.G
		f.GB = true
	}
	if c.R < c.G {
		c.R, c.G = c.G, c.R
		f.RG = true
	}
	return c, f
}

// restore maps a palette code from the folded region back to the caller's
// region. The exchanges are applied in the same RG, GB, RB order that the
// driver used, not reversed.
func restore(code Code, f SwapFlags) Code {
	r, g, b := code.R(), code.G(), code.B()
	if f.RG {
		r, g = g, r
	}
	if f.GB {
		g, b = b, g
	}
	if f.RB {
		r, b = b, r
	}
	return makeCode(r, g, b, code.Intense())
}

// Subspace is one of the four tetrahedra that partition the r ≥ g ≥ b region
// of the RGB cube.
type Subspace uint8

const (
	Subspace0 = Subspace(0)
	Subspace1 = Subspace(1)
	Subspace2 = Subspace(2)
	Subspace3 = Subspace(3)

	numSubspaces = 4
)

// classify returns the subspace of a normalized colour. It works on the
// unscaled 8-bit components.
func classify(n Color) Subspace {
	r := int(n.R) - 0x80
	g := int(n.G) - 0x80
	b := int(n.B) - 0x80
	if r < 0 {
		return Subspace0
	} else if (r + g) < 0 {
		return Subspace1
	} else if (r + b) < 0 {
		return Subspace2
	}
	return Subspace3
}

// scale maps [0, 255] to [0, 64]. The odd remainder of the first halving is
// rounded up before the second halving.
func scale(a uint8) int {
	half := int(a/2) + int(a%2)
	return half / 2
}

// transform returns the pixel counts (c1, c2, c3) of the subspace's three
// non-origin vertices, given scaled components.
func transform(s Subspace, r int, g int, b int) (c [3]int) {
	if s == Subspace3 {
		r -= 64
	} else {
		r -= 32
		g -= 32
	}
	m := &matrices[s]
	for i := range c {
		c[i] = (m[i][0] * r) + (m[i][1] * g) + (m[i][2] * b)
	}
	return c
}

var matrices = [numSubspaces][3][3]int{
	Subspace0: {
		{-2, +0, +0},
		{+2, -2, +0},
		{+0, +0, +2},
	},
	Subspace1: {
		{-2, -2, +0},
		{+2, +0, +0},
		{+0, +0, +2},
	},
	Subspace2: {
		{+1, -1, +0},
		{+1, +1, +0},
		{+0, +0, +2},
	},
	Subspace3: {
		{-2, +0, +0},
		{+0, +1, -1},
		{+1, +0, +1},
	},
}

// vertices holds each subspace's (origin, vertex1, vertex2, vertex3) codes,
// in the folded region.
var vertices = [numSubspaces][4]Code{
	Subspace0: {DarkYellow, Black, DarkRed, Gray},
	Subspace1: {DarkYellow, DarkRed, Red, Gray},
	Subspace2: {DarkYellow, Red, Yellow, Gray},
	Subspace3: {Red, Gray, Yellow, White},
}
