// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dither16

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is an opaque 24-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// NewColor returns the Color with the given components, each of which must
// be in the range [0, 255].
func NewColor(r int, g int, b int) (Color, error) {
	if (r < 0) || (r > 0xFF) {
		return Color{}, errors.Wrapf(ErrInvalidInput, "red component %d", r)
	} else if (g < 0) || (g > 0xFF) {
		return Color{}, errors.Wrapf(ErrInvalidInput, "green component %d", g)
	} else if (b < 0) || (b > 0xFF) {
		return Color{}, errors.Wrapf(ErrInvalidInput, "blue component %d", b)
	}
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// ParseHex parses a "#rrggbb" string. The hex digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	if (len(s) != 7) || (s[0] != '#') {
		return Color{}, errors.Wrapf(ErrInvalidInput, "hex colour %q", s)
	}
	var c [3]uint8
	for i := range c {
		hi, ok0 := unhex(s[1+(2*i)])
		lo, ok1 := unhex(s[2+(2*i)])
		if !ok0 || !ok1 {
			return Color{}, errors.Wrapf(ErrInvalidInput, "hex colour %q", s)
		}
		c[i] = (hi << 4) | lo
	}
	return Color{c[0], c[1], c[2]}, nil
}

// ParseColor parses either a "#rrggbb" string or three comma-separated
// decimal components, such as "128,31,190".
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, errors.Wrapf(ErrInvalidInput, "colour %q", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Color{}, errors.Wrapf(ErrInvalidInput, "colour %q", s)
		}
		v[i] = n
	}
	return NewColor(v[0], v[1], v[2])
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r uint32, g uint32, b uint32, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// String returns c as "#rrggbb", with lower case hex digits.
func (c Color) String() string {
	const hex = "0123456789abcdef"
	return string([]byte{
		'#',
		hex[c.R>>4], hex[c.R&15],
		hex[c.G>>4], hex[c.G&15],
		hex[c.B>>4], hex[c.B&15],
	})
}

func unhex(x byte) (uint8, bool) {
	switch {
	case ('0' <= x) && (x <= '9'):
		return x - '0', true
	case ('a' <= x) && (x <= 'f'):
		return x - 'a' + 10, true
	case ('A' <= x) && (x <= 'F'):
		return x - 'A' + 10, true
	}
	return 0, false
}
