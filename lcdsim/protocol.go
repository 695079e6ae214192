// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdsim

const (
	opDisplayOn      byte = 0x41
	opDisplayOff     byte = 0x42
	opSetCursor      byte = 0x45
	opHome           byte = 0x46
	opUnderlineOn    byte = 0x47
	opUnderlineOff   byte = 0x48
	opCursorLeft     byte = 0x49
	opCursorRight    byte = 0x4a
	opBlinkOn        byte = 0x4b
	opBlinkOff       byte = 0x4c
	opBackspace      byte = 0x4e
	opClearScreen    byte = 0x51
	opSetContrast    byte = 0x52
	opSetBacklight   byte = 0x53
	opLoadCustomChar byte = 0x54
	opDisplayLeft    byte = 0x55
	opDisplayRight   byte = 0x56
	opChangeBaudRate byte = 0x61
	opChangeAddress  byte = 0x62
	opShowFirmware   byte = 0x70
	opShowBaudRate   byte = 0x71
	opShowAddress    byte = 0x72
)

var baudRates = [...]int{300, 1200, 2400, 9600, 14400, 19200, 57600, 115200}

// paramCount returns the number of bytes following op.
func paramCount(op byte) int {
	switch op {
	case opSetCursor, opSetContrast, opSetBacklight, opChangeBaudRate, opChangeAddress:
		return 1
	case opLoadCustomChar:
		return 9
	}
	return 0
}

type parseState int

const (
	stateText parseState = iota
	stateOpcode
	stateParams
)

type token int

const (
	// tokText means the byte is a character code.
	tokText token = iota
	// tokPending means the byte is part of an unfinished command.
	tokPending
	// tokCommand means the byte completed a command in op and params.
	tokCommand
)

// parser splits the byte stream into text and commands.
type parser struct {
	state  parseState
	op     byte
	params []byte
}

func (p *parser) push(b byte) token {
	switch p.state {
	case stateOpcode:
		p.op = b
		p.params = p.params[:0]
		if paramCount(b) == 0 {
			p.state = stateText
			return tokCommand
		}
		p.state = stateParams
		return tokPending
	case stateParams:
		p.params = append(p.params, b)
		if len(p.params) == paramCount(p.op) {
			p.state = stateText
			return tokCommand
		}
		return tokPending
	}
	if b == cmdByte {
		p.state = stateOpcode
		return tokPending
	}
	return tokText
}

// The character ROM codes that have a Unicode equivalent outside of ASCII.
var romChars = map[byte]rune{
	0x5c: '¥',
	0x7e: '→',
	0x7f: '←',
	0xdf: '°',
	0xe0: 'α',
	0xe1: 'ä',
	0xe2: 'β',
	0xe3: 'Ɛ',
	0xe4: 'μ',
	0xe5: 'σ',
	0xe6: 'ρ',
	0xe8: '√',
	0xec: '¢',
	0xee: 'ñ',
	0xef: 'ö',
	0xf2: 'θ',
	0xf3: '∞',
	0xf4: 'Ω',
	0xf6: 'Σ',
	0xf7: 'π',
	0xfd: '÷',
	0xff: '■',
}

// Decode returns the rune shown for a character ROM code. Glyph slots decode
// to '\x00' to '\x07' and unknown codes to U+FFFD.
func Decode(code byte) rune {
	if code < 8 {
		return rune(code)
	}
	if r, ok := romChars[code]; ok {
		return r
	}
	if code >= 0x20 && code <= 0x7d {
		return rune(code)
	}
	return '\uFFFD'
}

// render returns the rune drawn on the terminal for code.
func render(code byte) rune {
	if code < 8 {
		return '▒'
	}
	return Decode(code)
}
