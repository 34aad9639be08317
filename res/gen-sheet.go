// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

//go:build ignore

// gen-sheet writes sheet.png and sheet.nie, a comparison sheet of sample
// colours beside their dither tiles.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/nigeltao/dither16/internal/nie"
	"github.com/nigeltao/dither16/lib/dither16"
	"github.com/nigeltao/dither16/lib/swatch"
)

var samples = []string{
	"#000000", "#404040", "#808080", "#c0c0c0", "#ffffff",
	"#801fbe", "#6496c8", "#c86432", "#25c85a", "#827e03",
	"#ff8000", "#0080ff", "#8b4513", "#ffc0cb", "#2f4f4f",
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	colors := make([]dither16.Color, 0, len(samples))
	for _, s := range samples {
		c, err := dither16.ParseHex(s)
		if err != nil {
			return fmt.Errorf("dither16.ParseHex: %v", err)
		}
		colors = append(colors, c)
	}

	m, err := swatch.Sheet(colors, 4)
	if err != nil {
		return fmt.Errorf("swatch.Sheet: %v", err)
	}

	f, err := os.Create("sheet.png")
	if err != nil {
		return fmt.Errorf("os.Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, m); err != nil {
		return fmt.Errorf("png.Encode: %v", err)
	}

	enc, err := nie.EncodeBN8(m)
	if err != nil {
		return fmt.Errorf("nie.EncodeBN8: %v", err)
	}
	if err := os.WriteFile("sheet.nie", enc, 0666); err != nil {
		return fmt.Errorf("os.WriteFile: %v", err)
	}
	return nil
}
