// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nhd0216k3z

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

const (
	glyphWidth  = 5
	glyphHeight = 8
	glyphRowMax = 1<<glyphWidth - 1
)

// Glyph is a 5x8 programmable character, one row per byte from the top. Bit
// 4 is the leftmost pixel.
type Glyph [glyphHeight]byte

// Validate returns an error if a row uses more than 5 bits.
func (g Glyph) Validate() error {
	for i, row := range g {
		if err := checkRange(fmt.Sprintf("glyph row %d", i), int(row), 0, glyphRowMax); err != nil {
			return err
		}
	}
	return nil
}

// String draws the glyph with '#' for lit pixels, one line per row.
func (g Glyph) String() string {
	var b strings.Builder
	for i, row := range g {
		if i != 0 {
			b.WriteByte('\n')
		}
		for x := glyphWidth - 1; x >= 0; x-- {
			if row&(1<<x) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// GlyphFromImage converts a 5x8 image to a Glyph. Dark opaque pixels are lit,
// light or transparent ones are not.
func GlyphFromImage(img image.Image) (Glyph, error) {
	var g Glyph
	r := img.Bounds()
	if r.Dx() != glyphWidth || r.Dy() != glyphHeight {
		return g, fmt.Errorf("%w: glyph image is %dx%d, want %dx%d", ErrInvalidParameter, r.Dx(), r.Dy(), glyphWidth, glyphHeight)
	}
	for y := 0; y < glyphHeight; y++ {
		var row byte
		for x := 0; x < glyphWidth; x++ {
			row <<= 1
			c := img.At(r.Min.X+x, r.Min.Y+y)
			if _, _, _, a := c.RGBA(); a < 0x8000 {
				continue
			}
			if color.GrayModel.Convert(c).(color.Gray).Y < 0x80 {
				row |= 1
			}
		}
		g[y] = row
	}
	return g, nil
}
