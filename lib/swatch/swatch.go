// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package swatch renders dither16 grids as images and encodes them in common
// image file formats.
package swatch

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"

	"github.com/nigeltao/dither16/lib/dither16"
	"github.com/pkg/errors"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

var (
	ErrBadArgument       = errors.New("swatch: bad argument")
	ErrUnsupportedFormat = errors.New("swatch: unsupported format")
)

// MaxScale is the largest pixel multiplier accepted by Image.
const MaxScale = 256

// Format is an image file format that Encode can write.
type Format uint8

const (
	FormatInvalid = Format(0)
	FormatPNG     = Format(1)
	FormatGIF     = Format(2)
	FormatBMP     = Format(3)
	FormatTIFF    = Format(4)
)

// ParseFormat returns the Format named by s, such as "png" or "tiff".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return FormatInvalid, errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

// Extension returns the conventional file name extension for f, including
// the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatGIF:
		return ".gif"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	}
	return ""
}

// Image returns g as an (8*scale)×(8*scale) paletted image, using the
// dither16 palette. Each grid cell becomes a scale×scale square.
func Image(g dither16.Grid, scale int) (*image.Paletted, error) {
	if (scale < 1) || (scale > MaxScale) {
		return nil, errors.Wrapf(ErrBadArgument, "scale %d", scale)
	}

	src := image.NewPaletted(image.Rect(0, 0, 8, 8), dither16.Palette)
	for i, code := range g {
		src.Pix[i] = uint8(code)
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewPaletted(image.Rect(0, 0, 8*scale, 8*scale), dither16.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodeOptions are optional arguments to Encode. The zero value is valid and
// means to use the default configuration.
type EncodeOptions struct {
	// If zero, the default is to use FormatPNG.
	Format Format

	// If zero, the default is to use 1.
	Scale int
}

// Encode writes g to w as an image file.
//
// options may be nil, which means to use the default configuration.
func Encode(w io.Writer, g dither16.Grid, options *EncodeOptions) error {
	if w == nil {
		return ErrBadArgument
	}
	f, scale := FormatPNG, 1
	if options != nil {
		if options.Format != 0 {
			f = options.Format
		}
		if options.Scale != 0 {
			scale = options.Scale
		}
	}

	m, err := Image(g, scale)
	if err != nil {
		return err
	}
	return EncodeImage(w, m, f)
}

// EncodeImage writes m to w in the format f.
func EncodeImage(w io.Writer, m image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, m)
	case FormatGIF:
		pm, err := exactPaletted(m)
		if err != nil {
			return err
		}
		return gif.Encode(w, pm, &gif.Options{NumColors: len(pm.Palette)})
	case FormatBMP:
		return bmp.Encode(w, m)
	case FormatTIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	}
	return errors.Wrapf(ErrUnsupportedFormat, "format %d", f)
}

// maxGIFColors is the size of the largest palette that a GIF frame can hold.
const maxGIFColors = 256

// exactPaletted returns m as a paletted image without any quantization. A
// paletted m is returned as is. Otherwise the palette is m's distinct colours,
// in order of first appearance, and there must be at most 256 of them.
func exactPaletted(m image.Image) (*image.Paletted, error) {
	if pm, ok := m.(*image.Paletted); ok && (len(pm.Palette) <= maxGIFColors) {
		return pm, nil
	}

	bounds := m.Bounds()
	seen := map[color.RGBA]struct{}{}
	p := color.Palette(nil)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == maxGIFColors {
				return nil, errors.Wrapf(ErrUnsupportedFormat, "GIF with more than %d colours", maxGIFColors)
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	if len(p) == 0 {
		p = append(p, color.RGBA{0x00, 0x00, 0x00, 0xFF})
	}

	pm := image.NewPaletted(bounds, p)
	draw.Draw(pm, bounds, m, bounds.Min, draw.Src)
	return pm, nil
}
