// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nhd0216k3z

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

const (
	packageName = "nhd0216k3z"

	// DefaultI2CAddress is the 7 bit form of the factory address 0x50.
	DefaultI2CAddress uint16 = 0x28

	cmdByte byte = 0xfe
)

// Command opcodes. Each is sent after cmdByte.
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

const (
	minContrast  = 1
	maxContrast  = 50
	minBacklight = 1
	maxBacklight = 8
)

// BaudRate is the RS-232 speed code accepted by ChangeBaudRate.
type BaudRate byte

const (
	Baud300 BaudRate = iota + 1
	Baud1200
	Baud2400
	Baud9600
	Baud14400
	Baud19200
	Baud57600
	Baud115200
)

var baudRates = [...]int{300, 1200, 2400, 9600, 14400, 19200, 57600, 115200}

// Rate returns the speed in bits per second, or 0 for an unknown code.
func (b BaudRate) Rate() int {
	if b < Baud300 || b > Baud115200 {
		return 0
	}
	return baudRates[b-1]
}

func (b BaudRate) String() string {
	if r := b.Rate(); r != 0 {
		return fmt.Sprintf("%d bps", r)
	}
	return fmt.Sprintf("BaudRate(%d)", byte(b))
}

// Opts holds the settings applied when a Dev is created.
type Opts struct {
	// Addr is the I²C address. Only used by NewI2C. 0 means
	// DefaultI2CAddress.
	Addr uint16
	// Contrast is 1 to 50. 0 leaves the stored setting.
	Contrast int
	// Backlight is 1 to 8. 0 leaves the stored setting.
	Backlight int
}

// DefaultOpts is used when nil is passed to a constructor.
var DefaultOpts = Opts{Addr: DefaultI2CAddress}

// Dev is a NHD-0216K3Z display.
type Dev struct {
	ch channel
}

// NewI2C returns a display on an I²C bus at opts.Addr.
func NewI2C(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultI2CAddress
	}
	d := &i2c.Dev{Bus: bus, Addr: addr}
	dev := &Dev{ch: channel{i2c: d, c: d}}
	return dev, dev.init(opts)
}

// NewConn returns a display on an arbitrary connection, for example a
// spi.Conn. The connection must be configured for the display's SPI mode 3
// at 100kHz or less.
func NewConn(c conn.Conn, opts *Opts) (*Dev, error) {
	dev := &Dev{ch: channel{c: c}}
	return dev, dev.init(opts)
}

// NewWriter returns a display whose bytes are written to w. Use it for the
// RS-232 interface with any serial port implementing io.Writer.
func NewWriter(w io.Writer, opts *Opts) (*Dev, error) {
	dev := &Dev{ch: channel{w: w}}
	return dev, dev.init(opts)
}

func (dev *Dev) init(opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Contrast != 0 {
		if err := checkRange("contrast", opts.Contrast, minContrast, maxContrast); err != nil {
			return err
		}
	}
	if opts.Backlight != 0 {
		if err := checkRange("backlight", opts.Backlight, minBacklight, maxBacklight); err != nil {
			return err
		}
	}
	if opts.Contrast != 0 {
		if err := dev.SetContrast(opts.Contrast); err != nil {
			return err
		}
	}
	if opts.Backlight != 0 {
		return dev.SetBacklight(opts.Backlight)
	}
	return nil
}

// command sends the escape byte, op and params.
func (dev *Dev) command(op byte, params ...byte) error {
	if err := dev.ch.writeByte(cmdByte); err != nil {
		return err
	}
	if err := dev.ch.writeByte(op); err != nil {
		return err
	}
	for _, p := range params {
		if err := dev.ch.writeByte(p); err != nil {
			return err
		}
	}
	return nil
}

// repeat sends op n times. The device has no multi-step variant.
func (dev *Dev) repeat(op byte, n int) error {
	for range n {
		if err := dev.command(op); err != nil {
			return err
		}
	}
	return nil
}

// Display turns the display on or off. The contents are kept.
func (dev *Dev) Display(on bool) error {
	if on {
		return dev.command(opDisplayOn)
	}
	return dev.command(opDisplayOff)
}

// SetCursor moves the cursor to line (1 or 2) and column (1 to 16).
func (dev *Dev) SetCursor(line, column int) error {
	addr, err := Address(line, column)
	if err != nil {
		return err
	}
	return dev.command(opSetCursor, addr)
}

// Home moves the cursor to line 1, column 1.
func (dev *Dev) Home() error {
	return dev.command(opHome)
}

// UnderlineCursor shows or hides the underline cursor.
func (dev *Dev) UnderlineCursor(enabled bool) error {
	if enabled {
		return dev.command(opUnderlineOn)
	}
	return dev.command(opUnderlineOff)
}

// BlinkCursor shows or hides the blinking block cursor.
func (dev *Dev) BlinkCursor(enabled bool) error {
	if enabled {
		return dev.command(opBlinkOn)
	}
	return dev.command(opBlinkOff)
}

// ShiftCursorLeft moves the cursor left n places. n <= 0 does nothing.
func (dev *Dev) ShiftCursorLeft(n int) error {
	return dev.repeat(opCursorLeft, n)
}

// ShiftCursorRight moves the cursor right n places. n <= 0 does nothing.
func (dev *Dev) ShiftCursorRight(n int) error {
	return dev.repeat(opCursorRight, n)
}

// Backspace moves the cursor back one place and erases that character.
func (dev *Dev) Backspace() error {
	return dev.command(opBackspace)
}

// Clear erases the screen.
func (dev *Dev) Clear() error {
	return dev.command(opClearScreen)
}

// SetContrast sets the contrast, 1 to 50. The value is stored in EEPROM.
func (dev *Dev) SetContrast(contrast int) error {
	if err := checkRange("contrast", contrast, minContrast, maxContrast); err != nil {
		return err
	}
	return dev.command(opSetContrast, byte(contrast))
}

// SetBacklight sets the backlight brightness, 1 to 8. The value is stored in
// EEPROM.
func (dev *Dev) SetBacklight(brightness int) error {
	if err := checkRange("backlight", brightness, minBacklight, maxBacklight); err != nil {
		return err
	}
	return dev.command(opSetBacklight, byte(brightness))
}

// LoadCustomCharacter stores a 5x8 bitmap in slot 0 to 7. rows must hold 8
// values of 5 bits, top row first, most significant bit on the left.
//
// Write '\x00'+slot to show it.
func (dev *Dev) LoadCustomCharacter(slot int, rows []byte) error {
	if err := checkRange("glyph slot", slot, 0, GlyphSlots-1); err != nil {
		return err
	}
	if len(rows) != glyphHeight {
		return &ValidationError{Param: "glyph rows", Value: len(rows), Min: glyphHeight, Max: glyphHeight}
	}
	var g Glyph
	copy(g[:], rows)
	if err := g.Validate(); err != nil {
		return err
	}
	return dev.command(opLoadCustomChar, append([]byte{byte(slot)}, g[:]...)...)
}

// LoadGlyph stores g in slot 0 to 7.
func (dev *Dev) LoadGlyph(slot int, g Glyph) error {
	return dev.LoadCustomCharacter(slot, g[:])
}

// ShiftDisplayLeft scrolls the whole display left n places.
func (dev *Dev) ShiftDisplayLeft(n int) error {
	return dev.repeat(opDisplayLeft, n)
}

// ShiftDisplayRight scrolls the whole display right n places.
func (dev *Dev) ShiftDisplayRight(n int) error {
	return dev.repeat(opDisplayRight, n)
}

// ChangeBaudRate sets the RS-232 speed. It takes effect immediately.
func (dev *Dev) ChangeBaudRate(rate BaudRate) error {
	if err := checkRange("baud rate", int(rate), int(Baud300), int(Baud115200)); err != nil {
		return err
	}
	return dev.command(opChangeBaudRate, byte(rate))
}

// ChangeAddress sets the device I²C address and, once the command has been
// written, sends every following command to addr.
//
// The byte is sent to the device unchanged and the same value is used as the
// 7 bit bus address of later commands. No 7 to 8 bit conversion is done in
// either direction.
func (dev *Dev) ChangeAddress(addr uint16) error {
	if err := checkRange("address", int(addr), 0, 0xff); err != nil {
		return err
	}
	if err := dev.command(opChangeAddress, byte(addr)); err != nil {
		return err
	}
	dev.ch.setAddress(addr)
	return nil
}

// Address returns the I²C address commands are sent to, or 0 when the display
// isn't connected over I²C.
func (dev *Dev) Address() uint16 {
	return dev.ch.address()
}

// ShowFirmwareVersion prints the firmware version at the cursor.
func (dev *Dev) ShowFirmwareVersion() error {
	return dev.command(opShowFirmware)
}

// ShowBaudRate prints the RS-232 speed at the cursor.
func (dev *Dev) ShowBaudRate() error {
	return dev.command(opShowBaudRate)
}

// ShowAddress prints the I²C address at the cursor.
func (dev *Dev) ShowAddress() error {
	return dev.command(opShowAddress)
}

// AutoScroll is not supported by the device.
func (dev *Dev) AutoScroll(enabled bool) error {
	return fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)
}

// Rows returns the number of lines.
func (dev *Dev) Rows() int {
	return Rows
}

// Cols returns the number of columns.
func (dev *Dev) Cols() int {
	return Cols
}

// MinRow returns 1, lines are numbered from 1.
func (dev *Dev) MinRow() int {
	return 1
}

// MinCol returns 1, columns are numbered from 1.
func (dev *Dev) MinCol() int {
	return 1
}

// MoveTo moves the cursor. Implements display.TextDisplay.
func (dev *Dev) MoveTo(row, col int) error {
	return dev.SetCursor(row, col)
}

// Move shifts the cursor one place forward or backward. Up and Down are not
// supported.
func (dev *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		return dev.ShiftCursorRight(1)
	case display.Backward:
		return dev.ShiftCursorLeft(1)
	}
	return fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)
}

// Cursor sets the cursor mode. CursorOff turns both cursors off,
// CursorBlock and CursorBlink both select the blinking block.
func (dev *Dev) Cursor(modes ...display.CursorMode) error {
	for _, mode := range modes {
		switch mode {
		case display.CursorOff, display.CursorUnderline, display.CursorBlock, display.CursorBlink:
		default:
			return fmt.Errorf("%s: cursor mode %d: %w", packageName, mode, display.ErrInvalidCommand)
		}
	}
	for _, mode := range modes {
		var err error
		switch mode {
		case display.CursorOff:
			err = dev.UnderlineCursor(false)
			if err == nil {
				err = dev.BlinkCursor(false)
			}
		case display.CursorUnderline:
			err = dev.UnderlineCursor(true)
		case display.CursorBlock, display.CursorBlink:
			err = dev.BlinkCursor(true)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Contrast sets the contrast, 1 to 50. Implements display.DisplayContrast.
func (dev *Dev) Contrast(contrast display.Contrast) error {
	return dev.SetContrast(int(contrast))
}

// Backlight sets the backlight brightness, 1 to 8. Implements
// display.DisplayBacklight.
func (dev *Dev) Backlight(intensity display.Intensity) error {
	return dev.SetBacklight(int(intensity))
}

// Halt clears the screen, turns the display off and closes the io.Writer
// passed to NewWriter if it is an io.Closer.
func (dev *Dev) Halt() error {
	if err := dev.Clear(); err != nil {
		return err
	}
	if err := dev.Display(false); err != nil {
		return err
	}
	return dev.ch.close()
}

func (dev *Dev) String() string {
	return fmt.Sprintf("NHD-0216K3Z %dx%d LCD: %s", Cols, Rows, &dev.ch)
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayContrast = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ conn.Resource = &Dev{}
