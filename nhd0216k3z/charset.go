// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nhd0216k3z

const (
	// GlyphSlots is the number of programmable characters. Slot n is shown by
	// writing the rune '\x00'+n.
	GlyphSlots = 8

	firstPrintable = 0x20
	lastPrintable  = 0x7d
	// The ROM shows '¥' at the backslash code.
	backslash = '\\'
)

// Symbols of the character ROM outside of printable ASCII. The ROM has more,
// they can be written with WriteCode.
var specialChars = map[rune]byte{
	'¥': 0x5c,
	'→': 0x7e,
	'←': 0x7f,
	'°': 0xdf,
	'α': 0xe0,
	'ä': 0xe1,
	'β': 0xe2,
	'Ɛ': 0xe3,
	'μ': 0xe4,
	'σ': 0xe5,
	'ρ': 0xe6,
	'√': 0xe8,
	'¢': 0xec,
	'ñ': 0xee,
	'ö': 0xef,
	'θ': 0xf2,
	'∞': 0xf3,
	'Ω': 0xf4,
	'Σ': 0xf6,
	'π': 0xf7,
	'÷': 0xfd,
	'■': 0xff,
}

// Encode returns the character ROM code of r.
//
// The runes '\x00' to '\x07' select a programmable glyph slot and are checked
// first, then the symbol table, then printable ASCII.
func Encode(r rune) (byte, error) {
	if r >= 0 && r < GlyphSlots {
		return byte(r), nil
	}
	if code, ok := specialChars[r]; ok {
		return code, nil
	}
	if r >= firstPrintable && r <= lastPrintable && r != backslash {
		return byte(r), nil
	}
	return 0, &UnsupportedCharacterError{Char: r}
}

// EncodeString encodes every rune of s. It fails on the first rune that
// can't be encoded, so callers can validate a whole text before sending it.
func EncodeString(s string) ([]byte, error) {
	codes := make([]byte, 0, len(s))
	for _, r := range s {
		code, err := Encode(r)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// EncodeRaw accepts any character ROM code, 0x00 to 0xFF.
func EncodeRaw(code int) (byte, error) {
	if err := checkRange("character code", code, 0, 0xff); err != nil {
		return 0, err
	}
	return byte(code), nil
}
