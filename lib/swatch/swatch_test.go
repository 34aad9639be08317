// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package swatch

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"testing"

	"github.com/nigeltao/dither16/lib/dither16"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func mustCompute(tt *testing.T, r int, g int, b int) dither16.Grid {
	grid, err := dither16.ComputeRGB(r, g, b)
	if err != nil {
		tt.Fatalf("ComputeRGB(%d, %d, %d): %v", r, g, b, err)
	}
	return grid
}

func sameColor(c0 color.Color, c1 color.Color) bool {
	r0, g0, b0, a0 := c0.RGBA()
	r1, g1, b1, a1 := c1.RGBA()
	return (r0 == r1) && (g0 == g1) && (b0 == b1) && (a0 == a1)
}

// checkSwatch checks that m is grid g with each cell scaled to scale×scale.
func checkSwatch(tt *testing.T, name string, m image.Image, g dither16.Grid, scale int) {
	b := m.Bounds()
	if (b.Dx() != 8*scale) || (b.Dy() != 8*scale) {
		tt.Errorf("%s: bounds: got %v, want %d×%d", name, b, 8*scale, 8*scale)
		return
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			want := g.At(x/scale, y/scale).Color()
			if got := m.At(b.Min.X+x, b.Min.Y+y); !sameColor(got, want) {
				tt.Errorf("%s: pixel (%d, %d): got %v, want %v", name, x, y, got, want)
				return
			}
		}
	}
}

func TestImage(tt *testing.T) {
	g := mustCompute(tt, 128, 31, 190)
	for _, scale := range []int{1, 2, 3, 8} {
		m, err := Image(g, scale)
		if err != nil {
			tt.Errorf("scale=%d: Image: %v", scale, err)
			continue
		}
		checkSwatch(tt, "Image", m, g, scale)
	}

	for _, scale := range []int{0, -1, MaxScale + 1} {
		if _, err := Image(g, scale); !errors.Is(err, ErrBadArgument) {
			tt.Errorf("scale=%d: got %v, want ErrBadArgument", scale, err)
		}
	}
}

func TestEncode(tt *testing.T) {
	testCases := []struct {
		format Format
		decode func(io.Reader) (image.Image, error)
	}{
		{FormatPNG, png.Decode},
		{FormatGIF, gif.Decode},
		{FormatBMP, bmp.Decode},
		{FormatTIFF, tiff.Decode},
	}

	g := mustCompute(tt, 100, 150, 200)
	for _, tc := range testCases {
		buf := &bytes.Buffer{}
		if err := Encode(buf, g, &EncodeOptions{Format: tc.format, Scale: 4}); err != nil {
			tt.Errorf("format=%d: Encode: %v", tc.format, err)
			continue
		}
		m, err := tc.decode(buf)
		if err != nil {
			tt.Errorf("format=%d: decode: %v", tc.format, err)
			continue
		}
		checkSwatch(tt, tc.format.Extension(), m, g, 4)
	}
}

func TestEncodeDefaults(tt *testing.T) {
	g := mustCompute(tt, 64, 64, 64)
	buf := &bytes.Buffer{}
	if err := Encode(buf, g, nil); err != nil {
		tt.Fatalf("Encode: %v", err)
	}
	m, err := png.Decode(buf)
	if err != nil {
		tt.Fatalf("png.Decode: %v", err)
	}
	checkSwatch(tt, "default", m, g, 1)

	if err := Encode(io.Discard, g, &EncodeOptions{Format: Format(99)}); !errors.Is(err, ErrUnsupportedFormat) {
		tt.Errorf("Format(99): got %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseFormat(tt *testing.T) {
	testCases := []struct {
		s    string
		want Format
	}{
		{"png", FormatPNG},
		{"gif", FormatGIF},
		{"bmp", FormatBMP},
		{"tif", FormatTIFF},
		{"tiff", FormatTIFF},
	}
	for _, tc := range testCases {
		got, err := ParseFormat(tc.s)
		if err != nil {
			tt.Errorf("tc=%q: ParseFormat: %v", tc.s, err)
		} else if got != tc.want {
			tt.Errorf("tc=%q: got %d, want %d", tc.s, got, tc.want)
		}
	}
	if _, err := ParseFormat("jpeg"); !errors.Is(err, ErrUnsupportedFormat) {
		tt.Errorf("jpeg: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestSheet(tt *testing.T) {
	colors := []dither16.Color{
		{R: 128, G: 31, B: 190},
		{R: 0, G: 0, B: 0},
		{R: 200, G: 100, B: 50},
	}
	const scale = 4
	m, err := Sheet(colors, scale)
	if err != nil {
		tt.Fatalf("Sheet: %v", err)
	}

	side := 8 * scale
	rowHeight := side + sheetMargin
	if got, want := m.Bounds().Dy(), sheetMargin+(rowHeight*len(colors)); got != want {
		tt.Errorf("height: got %d, want %d", got, want)
	}

	for i, c := range colors {
		y0 := sheetMargin + (rowHeight * i)
		if got := m.RGBAAt(sheetMargin, y0); got != (color.RGBA{c.R, c.G, c.B, 0xFF}) {
			tt.Errorf("row %d: flat colour: got %v, want %v", i, got, c)
		}

		g, _ := dither16.Compute(c)
		x1 := sheetMargin + side + sheetMargin
		swatchRect := image.Rect(x1, y0, x1+side, y0+side)
		checkSwatch(tt, "Sheet", m.SubImage(swatchRect), g, scale)

		x2 := x1 + side + sheetMargin
		inked := false
		for y := y0; (y < y0+rowHeight) && !inked; y++ {
			for x := x2; x < x2+labelWidth; x++ {
				if m.RGBAAt(x, y) == (color.RGBA{0x00, 0x00, 0x00, 0xFF}) {
					inked = true
					break
				}
			}
		}
		if !inked {
			tt.Errorf("row %d: no label drawn", i)
		}
	}

	if _, err := Sheet(nil, scale); !errors.Is(err, ErrBadArgument) {
		tt.Errorf("Sheet(nil): got %v, want ErrBadArgument", err)
	}
}

func TestEncodeSheetGIF(tt *testing.T) {
	colors := []dither16.Color{
		{R: 128, G: 31, B: 190},
		{R: 255, G: 255, B: 255},
		{R: 37, G: 200, B: 90},
	}
	src, err := Sheet(colors, 4)
	if err != nil {
		tt.Fatalf("Sheet: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := EncodeImage(buf, src, FormatGIF); err != nil {
		tt.Fatalf("EncodeImage: %v", err)
	}
	dst, err := gif.Decode(buf)
	if err != nil {
		tt.Fatalf("gif.Decode: %v", err)
	}

	b := src.Bounds()
	if got := dst.Bounds(); got != b {
		tt.Fatalf("bounds: got %v, want %v", got, b)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got, want := dst.At(x, y), src.At(x, y); !sameColor(got, want) {
				tt.Fatalf("pixel (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncodeGIFTooManyColors(tt *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 16, 17))
	for i := 0; i < 16*17; i++ {
		m.SetRGBA(i%16, i/16, color.RGBA{uint8(i), uint8(i >> 8), 0x00, 0xFF})
	}
	if err := EncodeImage(io.Discard, m, FormatGIF); !errors.Is(err, ErrUnsupportedFormat) {
		tt.Errorf("272 colours: got %v, want ErrUnsupportedFormat", err)
	}

	// 256 colours still fit.
	m = image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < 256; i++ {
		m.SetRGBA(i%16, i/16, color.RGBA{uint8(i), 0x00, 0x00, 0xFF})
	}
	buf := &bytes.Buffer{}
	if err := EncodeImage(buf, m, FormatGIF); err != nil {
		tt.Fatalf("256 colours: %v", err)
	}
	dst, err := gif.Decode(buf)
	if err != nil {
		tt.Fatalf("gif.Decode: %v", err)
	}
	if got, want := dst.At(15, 15), m.At(15, 15); !sameColor(got, want) {
		tt.Errorf("pixel (15, 15): got %v, want %v", got, want)
	}
}

func TestAverageColor(tt *testing.T) {
	g := mustCompute(tt, 64, 64, 64)
	m, err := Image(g, 2)
	if err != nil {
		tt.Fatalf("Image: %v", err)
	}
	if got, want := AverageColor(m), (dither16.Color{R: 64, G: 64, B: 64}); got != want {
		tt.Errorf("got %v, want %v", got, want)
	}

	u := image.NewUniform(color.RGBA{0x12, 0x34, 0x56, 0xFF})
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 3; x++ {
			rgba.Set(x, y, u)
		}
	}
	if got, want := AverageColor(rgba), (dither16.Color{R: 0x12, G: 0x34, B: 0x56}); got != want {
		tt.Errorf("got %v, want %v", got, want)
	}

	if got := AverageColor(image.NewRGBA(image.Rectangle{})); got != (dither16.Color{}) {
		tt.Errorf("empty image: got %v, want black", got)
	}
}
