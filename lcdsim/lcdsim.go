// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdsim emulates a NHD-0216K3Z character LCD on the terminal using
// ANSI color codes.
//
// Dev is an i2c.Bus and an io.Writer: pass it to the nhd0216k3z constructors
// in place of the real bus or serial port. It decodes the command stream into
// the controller's display memory and can draw the visible 2x16 window.
//
// Useful to lay out screens before the hardware is wired, and in tests.
package lcdsim

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the factory I²C address in 7 bit form.
	DefaultAddress uint16 = 0x28

	rows = 2
	cols = 16
	// Each line has 40 cells of display memory, line 2 starts at 0x40.
	lineCells   = 40
	line2Offset = 0x40

	cmdByte byte = 0xfe
)

// Opts represents the options available for the emulator.
type Opts struct {
	// Addr is the I²C address the emulator answers to.
	Addr uint16
	// W receives the drawn screen. Defaults to the colorable stdout.
	W io.Writer
	// Palette is used for the backlight. Defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Refresh draws the screen after every command or text write.
	Refresh bool
	// Firmware is printed by the firmware version command.
	Firmware string

	_ struct{}
}

// Dev is the emulated display.
type Dev struct {
	mu      sync.Mutex
	w       io.Writer
	palette ansi256.Palette
	refresh bool
	fw      string

	addr      uint16
	ddram     [rows][lineCells]byte
	cgram     [8][8]byte
	cursor    byte
	shift     int
	on        bool
	underline bool
	blink     bool
	contrast  byte
	backlight byte
	baud      byte

	p   parser
	buf bytes.Buffer
}

// New returns an emulated display in its power on state: blank, display on,
// cursors off, contrast 40, full backlight and 9600 bps.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddress
	}
	fw := opts.Firmware
	if fw == "" {
		fw = "Rev 1.0"
	}
	d := &Dev{
		w:         w,
		palette:   *p,
		refresh:   opts.Refresh,
		fw:        fw,
		addr:      addr,
		on:        true,
		contrast:  40,
		backlight: 8,
		baud:      4,
	}
	d.clear()
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("lcdsim(%#x)", d.Addr())
}

// Tx implements i2c.Bus. Writes to another address fail the way an
// unacknowledged transfer does. The display can't be read.
func (d *Dev) Tx(addr uint16, w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(r) != 0 {
		return errors.New("lcdsim: the display is write only")
	}
	if addr != d.addr {
		return fmt.Errorf("lcdsim: no device at address %#x", addr)
	}
	return d.feed(w)
}

// SetSpeed implements i2c.Bus. The emulator accepts up to 100kHz like the
// real controller.
func (d *Dev) SetSpeed(f physic.Frequency) error {
	if f > 100*physic.KiloHertz {
		return fmt.Errorf("lcdsim: speed %s above 100kHz", f)
	}
	return nil
}

// Write implements io.Writer, for use as the RS-232 input.
func (d *Dev) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.feed(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close implements io.Closer.
func (d *Dev) Close() error {
	return nil
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

func (d *Dev) feed(p []byte) error {
	for _, b := range p {
		switch d.p.push(b) {
		case tokText:
			d.put(b)
		case tokCommand:
			d.exec(d.p.op, d.p.params)
		default:
			continue
		}
		if d.refresh {
			if err := d.draw(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dev) exec(op byte, params []byte) {
	switch op {
	case opDisplayOn:
		d.on = true
	case opDisplayOff:
		d.on = false
	case opSetCursor:
		if a := params[0]; a < lineCells || (a >= line2Offset && a < line2Offset+lineCells) {
			d.cursor = a
		}
	case opHome:
		d.cursor = 0
		d.shift = 0
	case opUnderlineOn:
		d.underline = true
	case opUnderlineOff:
		d.underline = false
	case opCursorLeft:
		d.cursor = retreat(d.cursor)
	case opCursorRight:
		d.cursor = advance(d.cursor)
	case opBlinkOn:
		d.blink = true
	case opBlinkOff:
		d.blink = false
	case opBackspace:
		d.cursor = retreat(d.cursor)
		*d.cell(d.cursor) = ' '
	case opClearScreen:
		d.clear()
	case opSetContrast:
		if c := params[0]; c >= 1 && c <= 50 {
			d.contrast = c
		}
	case opSetBacklight:
		if l := params[0]; l >= 1 && l <= 8 {
			d.backlight = l
		}
	case opLoadCustomChar:
		if slot := params[0]; slot < 8 {
			for i, row := range params[1:] {
				d.cgram[slot][i] = row & 0x1f
			}
		}
	case opDisplayLeft:
		d.shift = (d.shift + 1) % lineCells
	case opDisplayRight:
		d.shift = (d.shift + lineCells - 1) % lineCells
	case opChangeBaudRate:
		if b := params[0]; b >= 1 && b <= 8 {
			d.baud = b
		}
	case opChangeAddress:
		d.addr = uint16(params[0])
	case opShowFirmware:
		d.print(d.fw)
	case opShowBaudRate:
		d.print(fmt.Sprintf("%d", baudRates[d.baud-1]))
	case opShowAddress:
		d.print(fmt.Sprintf("0x%02X", d.addr))
	}
}

func (d *Dev) clear() {
	for l := range d.ddram {
		for c := range d.ddram[l] {
			d.ddram[l][c] = ' '
		}
	}
	d.cursor = 0
	d.shift = 0
}

// put stores a character code at the cursor and advances it.
func (d *Dev) put(code byte) {
	*d.cell(d.cursor) = code
	d.cursor = advance(d.cursor)
}

func (d *Dev) print(s string) {
	for i := 0; i < len(s); i++ {
		d.put(s[i])
	}
}

func (d *Dev) cell(addr byte) *byte {
	if addr >= line2Offset {
		return &d.ddram[1][addr-line2Offset]
	}
	return &d.ddram[0][addr]
}

// advance returns the next address, line 1 continues on line 2 and line 2
// wraps to line 1.
func advance(a byte) byte {
	switch a {
	case lineCells - 1:
		return line2Offset
	case line2Offset + lineCells - 1:
		return 0
	}
	return a + 1
}

func retreat(a byte) byte {
	switch a {
	case 0:
		return line2Offset + lineCells - 1
	case line2Offset:
		return lineCells - 1
	}
	return a - 1
}

// Line returns the character codes visible on line (1 or 2).
func (d *Dev) Line(line int) ([]byte, error) {
	if line < 1 || line > rows {
		return nil, fmt.Errorf("lcdsim: line %d out of range", line)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible(line - 1), nil
}

func (d *Dev) visible(l int) []byte {
	out := make([]byte, cols)
	for c := range out {
		out[c] = d.ddram[l][(c+d.shift)%lineCells]
	}
	return out
}

// Text returns the characters visible on line (1 or 2). Glyph slots are
// returned as the runes '\x00' to '\x07'.
func (d *Dev) Text(line int) (string, error) {
	codes, err := d.Line(line)
	if err != nil {
		return "", err
	}
	runes := make([]rune, len(codes))
	for i, c := range codes {
		runes[i] = Decode(c)
	}
	return string(runes), nil
}

// Addr returns the current I²C address.
func (d *Dev) Addr() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addr
}

// Cursor returns the display memory address of the cursor.
func (d *Dev) Cursor() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor
}

// Shift returns how many places the display is scrolled left.
func (d *Dev) Shift() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shift
}

// Glyph returns the bitmap stored in slot.
func (d *Dev) Glyph(slot int) [8]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cgram[slot&7]
}

// State is a snapshot of the display settings.
type State struct {
	On        bool
	Underline bool
	Blink     bool
	Contrast  int
	Backlight int
	// Baud is the RS-232 speed in bits per second.
	Baud int
}

// State returns the current settings.
func (d *Dev) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return State{
		On:        d.on,
		Underline: d.underline,
		Blink:     d.blink,
		Contrast:  int(d.contrast),
		Backlight: int(d.backlight),
		Baud:      baudRates[d.baud-1],
	}
}

// Refresh draws the screen to the output.
func (d *Dev) Refresh() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draw()
}

func (d *Dev) draw() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	bl := d.palette.Block(backlightColor(d.backlight))
	for l := 0; l < rows; l++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		_, _ = d.buf.WriteString(bl)
		_ = d.buf.WriteByte('|')
		for _, c := range d.visible(l) {
			if !d.on {
				c = ' '
			}
			_, _ = d.buf.WriteRune(render(c))
		}
		_ = d.buf.WriteByte('|')
		_, _ = d.buf.WriteString(bl)
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// backlightColor is the yellow-green of the panel scaled by level 1 to 8.
func backlightColor(level byte) color.NRGBA {
	v := uint8(uint16(level) * 0xff / 8)
	return color.NRGBA{R: v / 2, G: v, B: 0, A: 255}
}

var _ i2c.BusCloser = &Dev{}
var _ io.Writer = &Dev{}
var _ fmt.Stringer = &Dev{}
