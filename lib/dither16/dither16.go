// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package dither16 implements the ordered dither used by 16-colour display
// drivers of early graphical desktops to approximate an arbitrary 24-bit RGB
// colour by an 8×8 tile of palette colours.
//
// The colour is first folded into the r ≥ g ≥ b region of the RGB cube. That
// region is split into four tetrahedra (subspaces), each spanned by four
// palette colours. A fixed-point linear transform gives the number of pixels
// (out of 64) that each of those four colours gets, the folding is undone on
// the palette codes, and the colours are laid out from darkest to brightest
// over a fixed 8×8 threshold pattern.
//
// The output is bit-exact: for any input, the same 64 codes are produced as
// by the original driver.
package dither16

import (
	"image/color"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInput = errors.New("dither16: invalid input")
)

// Code is a 4-bit palette code. Bit 0 is red, bit 1 is green, bit 2 is blue
// and bit 3 selects the intense (full brightness) variant.
//
// The code 0x08 (intense with no colour bits) is never produced.
type Code uint8

const (
	Black       = Code(0x00)
	DarkRed     = Code(0x01)
	DarkGreen   = Code(0x02)
	DarkYellow  = Code(0x03)
	DarkBlue    = Code(0x04)
	DarkMagenta = Code(0x05)
	DarkCyan    = Code(0x06)
	Gray        = Code(0x07)
	LightGray   = Code(0x08)
	Red         = Code(0x09)
	Green       = Code(0x0A)
	Yellow      = Code(0x0B)
	Blue        = Code(0x0C)
	Magenta     = Code(0x0D)
	Cyan        = Code(0x0E)
	White       = Code(0x0F)
)

const (
	codeBitR       = Code(0x01)
	codeBitG       = Code(0x02)
	codeBitB       = Code(0x04)
	codeBitIntense = Code(0x08)
)

func makeCode(r bool, g bool, b bool, intense bool) (c Code) {
	if r {
		c |= codeBitR
	}
	if g {
		c |= codeBitG
	}
	if b {
		c |= codeBitB
	}
	if intense {
		c |= codeBitIntense
	}
	return c
}

func (c Code) R() bool       { return (c & codeBitR) != 0 }
func (c Code) G() bool       { return (c & codeBitG) != 0 }
func (c Code) B() bool       { return (c & codeBitB) != 0 }
func (c Code) Intense() bool { return (c & codeBitIntense) != 0 }

// Valid returns whether c indexes the 16-entry palette.
func (c Code) Valid() bool { return c <= White }

// Reserved returns whether c is the palette slot that the dither never
// produces.
func (c Code) Reserved() bool { return c == LightGray }

// Color returns the palette colour for c. Invalid codes map to opaque black.
func (c Code) Color() color.RGBA {
	if c.Valid() {
		return palette[c]
	}
	return color.RGBA{0x00, 0x00, 0x00, 0xFF}
}

// String returns the palette colour for c as "#rrggbb".
func (c Code) String() string {
	rgba := c.Color()
	return Color{rgba.R, rgba.G, rgba.B}.String()
}

// PaletteColor returns the colour that code is displayed as.
func PaletteColor(code Code) (color.RGBA, error) {
	if !code.Valid() {
		return color.RGBA{}, errors.Wrapf(ErrInvalidInput, "palette code 0x%02X", uint8(code))
	}
	return palette[code], nil
}

// Palette is the 16-colour palette, indexed by Code. It can be used directly
// as an image.Paletted palette.
//
// Entry 0x08 is a placeholder that no Grid refers to.
var Palette = color.Palette{
	palette[0x00], palette[0x01], palette[0x02], palette[0x03],
	palette[0x04], palette[0x05], palette[0x06], palette[0x07],
	palette[0x08], palette[0x09], palette[0x0A], palette[0x0B],
	palette[0x0C], palette[0x0D], palette[0x0E], palette[0x0F],
}

var palette = [16]color.RGBA{
	0x00: {0x00, 0x00, 0x00, 0xFF},
	0x01: {0x80, 0x00, 0x00, 0xFF},
	0x02: {0x00, 0x80, 0x00, 0xFF},
	0x03: {0x80, 0x80, 0x00, 0xFF},
	0x04: {0x00, 0x00, 0x80, 0xFF},
	0x05: {0x80, 0x00, 0x80, 0xFF},
	0x06: {0x00, 0x80, 0x80, 0xFF},
	0x07: {0x80, 0x80, 0x80, 0xFF},
	0x08: {0xC0, 0xC0, 0xC0, 0xFF},
	0x09: {0xFF, 0x00, 0x00, 0xFF},
	0x0A: {0x00, 0xFF, 0x00, 0xFF},
	0x0B: {0xFF, 0xFF, 0x00, 0xFF},
	0x0C: {0x00, 0x00, 0xFF, 0xFF},
	0x0D: {0xFF, 0x00, 0xFF, 0xFF},
	0x0E: {0x00, 0xFF, 0xFF, 0xFF},
	0x0F: {0xFF, 0xFF, 0xFF, 0xFF},
}
