// Copyright 2026 The Dither16 Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// dither16 renders colours as the 8×8 ordered-dither tiles that 16-colour
// display drivers drew for them.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/nigeltao/dither16/internal/fidelity"
	"github.com/nigeltao/dither16/internal/nie"
	"github.com/nigeltao/dither16/internal/termview"
	"github.com/nigeltao/dither16/lib/dither16"
	"github.com/nigeltao/dither16/lib/swatch"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	explainFlag = flag.Bool("explain", false, "whether to print the intermediate values")
	outputFlag  = flag.String("output", "", "output format")
	sampleFlag  = flag.String("sample", "", "image file whose average colour to dither")
	scaleFlag   = flag.Int("scale", 8, "pixels per dither cell")
	sheetFlag   = flag.Bool("sheet", false, "whether to output a comparison sheet")
	statsFlag   = flag.Bool("stats", false, "whether to print approximation statistics")
)

const usageStr = `dither16 renders colours as 16-colour ordered-dither tiles.

Usage: dither16 [flags] colour...

Each colour is either "#rrggbb" or "r,g,b" with decimal components.

Flags (before the colours):

    -output=png (this is the default for images)
    -output=gif
    -output=bmp
    -output=tiff
    -output=nie-bn8
    -output=text (this is the default with -explain or -stats)
    -output=term
    -scale=N     pixels per dither cell, for image outputs (default 8)
    -sheet       draw every colour beside its tile, with a label, for image
                 outputs
    -explain     print the intermediate values, for text output
    -stats       print approximation statistics, for text output
    -sample=path dither the average colour of the image at path

Image output (BMP, GIF, NIE, PNG or TIFF) is written to stdout. A single
colour is required unless -sheet is given. Sampled images can be BMP, GIF,
JPEG, PNG, TIFF or WEBP.
`

var (
	ErrBadOutputFlag    = errors.New("main: bad -output flag")
	ErrNoColors         = errors.New("main: no colours given")
	ErrTooManyColors    = errors.New("main: more than one colour needs -sheet, -output=text or -output=term")
	ErrTextOnlyOptions  = errors.New("main: -explain and -stats need -output=text")
	ErrImageOnlyOptions = errors.New("main: -scale and -sheet need an image -output")
)

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	colors, err := parseColors(flag.Args(), *sampleFlag)
	if err != nil {
		return err
	}

	output := *outputFlag
	if output == "" {
		if *explainFlag || *statsFlag {
			output = "text"
		} else {
			output = "png"
		}
	}

	scaleSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "scale" {
			scaleSet = true
		}
	})
	if err := checkOptions(output, *explainFlag || *statsFlag, *sheetFlag || scaleSet); err != nil {
		return err
	}

	switch output {
	case "text":
		w := bufio.NewWriter(os.Stdout)
		if err := writeText(w, colors, *explainFlag, *statsFlag); err != nil {
			return err
		}
		return w.Flush()
	case "term":
		return preview(colors)
	}

	m, err := render(colors, *scaleFlag, *sheetFlag)
	if err != nil {
		return err
	}
	return writeImage(os.Stdout, m, output)
}

// checkOptions rejects flags that the output format would otherwise ignore.
// textOpts is whether -explain or -stats was given and imageOpts is whether
// -scale or -sheet was.
func checkOptions(output string, textOpts bool, imageOpts bool) error {
	switch output {
	case "text":
		if imageOpts {
			return ErrImageOnlyOptions
		}
	case "term":
		if textOpts {
			return ErrTextOnlyOptions
		} else if imageOpts {
			return ErrImageOnlyOptions
		}
	case "png", "gif", "bmp", "tif", "tiff", "nie-bn8":
		if textOpts {
			return ErrTextOnlyOptions
		}
	default:
		return ErrBadOutputFlag
	}
	return nil
}

func parseColors(args []string, samplePath string) (ret []dither16.Color, retErr error) {
	if samplePath != "" {
		c, err := sample(samplePath)
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	for _, arg := range args {
		c, err := dither16.ParseColor(arg)
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	if len(ret) == 0 {
		return nil, ErrNoColors
	}
	return ret, nil
}

func sample(path string) (dither16.Color, error) {
	f, err := os.Open(path)
	if err != nil {
		return dither16.Color{}, err
	}
	defer f.Close()
	m, _, err := image.Decode(f)
	if err != nil {
		return dither16.Color{}, fmt.Errorf("image.Decode: %v", err)
	}
	return swatch.AverageColor(m), nil
}

func render(colors []dither16.Color, scale int, sheet bool) (image.Image, error) {
	if sheet {
		return swatch.Sheet(colors, scale)
	} else if len(colors) != 1 {
		return nil, ErrTooManyColors
	}
	g, err := dither16.Compute(colors[0])
	if err != nil {
		return nil, err
	}
	return swatch.Image(g, scale)
}

func writeImage(w io.Writer, m image.Image, output string) error {
	if output == "nie-bn8" {
		dst, err := nie.EncodeBN8(m)
		if err != nil {
			return err
		}
		_, err = w.Write(dst)
		return err
	}
	f, err := swatch.ParseFormat(output)
	if err != nil {
		return err
	}
	return swatch.EncodeImage(w, m, f)
}

func writeText(w io.Writer, colors []dither16.Color, explain bool, stats bool) error {
	for i, c := range colors {
		a, err := dither16.Analyze(c)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, c)

		if explain {
			fmt.Fprintf(w, "normalized %v swaps rb=%t gb=%t rg=%t\n",
				a.Normalized, a.Swaps.RB, a.Swaps.GB, a.Swaps.RG)
			fmt.Fprintf(w, "subspace %d scaled %v counts %v\n", a.Subspace, a.Scaled, a.Raw)
			for _, e := range a.Table.Entries() {
				fmt.Fprintf(w, "  0x%X %v %2d/64\n", uint8(e.Code), e.Code, e.N)
			}
		}

		if _, err := io.WriteString(w, a.Grid.String()); err != nil {
			return err
		}

		if stats {
			r := fidelity.Measure(c, a.Grid)
			fmt.Fprintf(w, "mean %v colours %d ΔE76 %.2f ΔE2000 %.2f\n",
				r.Mean, r.Distinct, 100*r.DeltaE76, 100*r.DeltaE2000)
		}
	}
	return nil
}

func preview(colors []dither16.Color) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	for _, c := range colors {
		a, err := dither16.Analyze(c)
		if err != nil {
			return err
		}
		termview.Show(s, a)
	}
	return nil
}
