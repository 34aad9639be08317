// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package fidelity

import (
	"testing"

	"github.com/nigeltao/dither16/lib/dither16"
)

func TestMeasureExactPaletteColors(tt *testing.T) {
	testCases := []dither16.Color{
		{R: 0x00, G: 0x00, B: 0x00},
		{R: 0x80, G: 0x80, B: 0x80},
		{R: 0xFF, G: 0x00, B: 0x00},
		{R: 0xFF, G: 0xFF, B: 0xFF},
	}
	for _, tc := range testCases {
		g, err := dither16.Compute(tc)
		if err != nil {
			tt.Errorf("tc=%v: Compute: %v", tc, err)
			continue
		}
		r := Measure(tc, g)
		if r.Mean != tc {
			tt.Errorf("tc=%v: Mean: got %v", tc, r.Mean)
		}
		if r.DeltaE76 > 1e-9 {
			tt.Errorf("tc=%v: DeltaE76: got %g, want 0", tc, r.DeltaE76)
		}
		if r.Distinct != 1 {
			tt.Errorf("tc=%v: Distinct: got %d, want 1", tc, r.Distinct)
		}
	}
}

func TestMeasureMixedColor(tt *testing.T) {
	want := dither16.Color{R: 64, G: 64, B: 64}
	g, err := dither16.Compute(want)
	if err != nil {
		tt.Fatalf("Compute: %v", err)
	}
	r := Measure(want, g)
	if r.Mean != want {
		tt.Errorf("Mean: got %v, want %v", r.Mean, want)
	}
	if r.Distinct != 2 {
		tt.Errorf("Distinct: got %d, want 2", r.Distinct)
	}

	// The 8-bit to 6-bit scaling and the fixed palette limit the accuracy,
	// but an arbitrary colour still lands close.
	want = dither16.Color{R: 128, G: 31, B: 190}
	g, err = dither16.Compute(want)
	if err != nil {
		tt.Fatalf("Compute: %v", err)
	}
	r = Measure(want, g)
	if r.Distinct != 4 {
		tt.Errorf("Distinct: got %d, want 4", r.Distinct)
	}
	if r.DeltaE76 > 0.05 {
		tt.Errorf("DeltaE76: got %g, want <= 0.05 (mean %v)", r.DeltaE76, r.Mean)
	}
}
