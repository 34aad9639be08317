// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package fidelity measures how closely a dither grid approximates the colour
// it was computed from.
package fidelity

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nigeltao/dither16/lib/dither16"
)

// Report describes one grid's approximation of a requested colour.
type Report struct {
	Want dither16.Color

	// Mean is the area-weighted average of the grid's palette colours,
	// rounded to 8 bits per channel.
	Mean dither16.Color

	// DeltaE76 and DeltaE2000 are the CIE76 and CIEDE2000 distances between
	// Want and the unrounded mean, in CIE L*a*b* units divided by 100.
	DeltaE76   float64
	DeltaE2000 float64

	// Distinct is the number of palette colours that the grid uses.
	Distinct int
}

// Mean returns the area-weighted average of g's palette colours, averaged in
// gamma-encoded sRGB like the eye sees a fine dither pattern on a CRT.
func Mean(g dither16.Grid) colorful.Color {
	sumR, sumG, sumB := 0, 0, 0
	for _, code := range g {
		c := code.Color()
		sumR += int(c.R)
		sumG += int(c.G)
		sumB += int(c.B)
	}
	const denominator = float64(255 * len(g))
	return colorful.Color{
		R: float64(sumR) / denominator,
		G: float64(sumG) / denominator,
		B: float64(sumB) / denominator,
	}
}

// Measure compares g against the colour want.
func Measure(want dither16.Color, g dither16.Grid) Report {
	mean := Mean(g)
	w, _ := colorful.MakeColor(want)
	r, gg, b := mean.RGB255()

	distinct := 0
	for _, n := range g.Counts() {
		if n != 0 {
			distinct++
		}
	}

	return Report{
		Want:       want,
		Mean:       dither16.Color{R: r, G: gg, B: b},
		DeltaE76:   w.DistanceLab(mean),
		DeltaE2000: w.DistanceCIEDE2000(mean),
		Distinct:   distinct,
	}
}
