// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package swatch

import (
	"image"
	"image/color"

	"github.com/nigeltao/dither16/lib/dither16"
	"github.com/pkg/errors"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	sheetMargin = 4
	labelWidth  = 7 * 7 // Seven glyphs of basicfont.Face7x13.
	labelHeight = 13
)

// Sheet returns a comparison image with one row per colour: the flat colour
// on the left, its dither swatch in the middle and its "#rrggbb" label on the
// right.
func Sheet(colors []dither16.Color, scale int) (*image.RGBA, error) {
	if len(colors) == 0 {
		return nil, errors.Wrap(ErrBadArgument, "no colours")
	}
	if (scale < 1) || (scale > MaxScale) {
		return nil, errors.Wrapf(ErrBadArgument, "scale %d", scale)
	}

	side := 8 * scale
	rowHeight := max(side, labelHeight) + sheetMargin
	width := sheetMargin + side + sheetMargin + side + sheetMargin + labelWidth + sheetMargin
	height := sheetMargin + (rowHeight * len(colors))

	m := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(m, m.Bounds(), image.White, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  m,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}

	for i, c := range colors {
		g, err := dither16.Compute(c)
		if err != nil {
			return nil, err
		}
		sw, err := Image(g, scale)
		if err != nil {
			return nil, err
		}

		x0 := sheetMargin
		y0 := sheetMargin + (rowHeight * i)
		flat := image.Rect(x0, y0, x0+side, y0+side)
		draw.Draw(m, flat, image.NewUniform(color.RGBA{c.R, c.G, c.B, 0xFF}), image.Point{}, draw.Src)

		x1 := flat.Max.X + sheetMargin
		draw.Draw(m, image.Rect(x1, y0, x1+side, y0+side), sw, image.Point{}, draw.Src)

		x2 := x1 + side + sheetMargin
		baseline := y0 + ((side - labelHeight) / 2) + basicfont.Face7x13.Ascent
		if side < labelHeight {
			baseline = y0 + basicfont.Face7x13.Ascent
		}
		d.Dot = fixed.P(x2, baseline)
		d.DrawString(c.String())
	}
	return m, nil
}

// AverageColor returns the mean colour of m's pixels. Alpha is ignored, so
// the result is only meaningful for opaque images. An empty image gives
// black.
func AverageColor(m image.Image) dither16.Color {
	bounds := m.Bounds()
	n := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if n == 0 {
		return dither16.Color{}
	}

	sumR, sumG, sumB := uint64(0), uint64(0), uint64(0)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := m.At(x, y).RGBA()
			sumR += uint64(r)
			sumG += uint64(g)
			sumB += uint64(b)
		}
	}
	// Round to nearest, halves up, converting from 16 to 8 bits per channel.
	d := 2 * n * 0x101
	return dither16.Color{
		R: uint8(((2 * sumR) + (n * 0x101)) / d),
		G: uint8(((2 * sumG) + (n * 0x101)) / d),
		B: uint8(((2 * sumB) + (n * 0x101)) / d),
	}
}
