// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package nie implements the NIE (Naive) image file format.
//
// It is an incomplete implementation (and hence an internal package), only
// encoding the image types that the github.com/nigeltao/dither16 module
// produces: paletted swatches and RGBA comparison sheets.
//
// NIE is specified at
// https://github.com/google/wuffs/blob/main/doc/spec/nie-spec.md
package nie

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

var (
	ErrUnsupportedImageType = errors.New("nie: unsupported image type")
)

// Magic is the byte string prefix of every NIE image file.
const Magic = "\x6E\xC3\xAF\x45"

// EncodeBN8 encodes m as a NIE file in BGRA order, non-premultiplied alpha, 8
// bytes per pixel (16 bits per channel).
//
// m must be opaque.
func EncodeBN8(m image.Image) (ret []byte, retErr error) {
	b := m.Bounds()
	ret = make([]byte, 0, 16+(8*b.Dx()*b.Dy()))
	ret = append(ret, Magic...)
	ret = append(ret, 0xFF, 'b', 'n', '8')
	ret = appendU32LE(ret, uint32(b.Dx()))
	ret = appendU32LE(ret, uint32(b.Dy()))

	switch m := m.(type) {
	case *image.Paletted:
		// Convert the palette once, not once per pixel.
		lut := make([][8]byte, len(m.Palette))
		for i, c := range m.Palette {
			px, ok := bn8(c)
			if !ok {
				return nil, errors.Wrapf(ErrUnsupportedImageType, "palette entry %d is not opaque", i)
			}
			lut[i] = px
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := int(m.ColorIndexAt(x, y))
				if i >= len(lut) {
					return nil, errors.Wrapf(ErrUnsupportedImageType, "palette index %d out of range", i)
				}
				ret = append(ret, lut[i][:]...)
			}
		}
		return ret, nil

	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				px, ok := bn8(m.RGBAAt(x, y))
				if !ok {
					return nil, errors.Wrapf(ErrUnsupportedImageType, "pixel (%d, %d) is not opaque", x, y)
				}
				ret = append(ret, px[:]...)
			}
		}
		return ret, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedImageType, "%T", m)
}

// bn8 returns c as four little-endian uint16 values, in BGRA order. It
// reports false if c is not opaque.
func bn8(c color.Color) (px [8]byte, ok bool) {
	r, g, b, a := c.RGBA()
	if a != 0xFFFF {
		return px, false
	}
	return [8]byte{
		uint8(b >> 0), uint8(b >> 8),
		uint8(g >> 0), uint8(g >> 8),
		uint8(r >> 0), uint8(r >> 8),
		0xFF, 0xFF,
	}, true
}

func appendU32LE(b []byte, u uint32) []byte {
	return append(b,
		uint8(u>>0),
		uint8(u>>8),
		uint8(u>>16),
		uint8(u>>24),
	)
}
