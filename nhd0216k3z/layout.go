// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nhd0216k3z

import "strings"

// Write sends p as raw character ROM codes at the cursor. Every byte is a
// valid code. Note that 0xFE starts a command.
func (dev *Dev) Write(p []byte) (n int, err error) {
	for _, b := range p {
		if err = dev.ch.writeByte(b); err != nil {
			return
		}
		n++
	}
	return
}

// WriteString writes text at the cursor. Nothing is sent if a character
// can't be encoded. n is the number of characters written.
func (dev *Dev) WriteString(text string) (n int, err error) {
	codes, err := EncodeString(text)
	if err != nil {
		return 0, err
	}
	return dev.Write(codes)
}

// WriteCode writes a single character ROM code, 0x00 to 0xFF.
func (dev *Dev) WriteCode(code int) error {
	b, err := EncodeRaw(code)
	if err != nil {
		return err
	}
	return dev.ch.writeByte(b)
}

// ClearLine blanks line (1 or 2) and leaves the cursor at its first column.
func (dev *Dev) ClearLine(line int) error {
	if err := dev.SetCursor(line, 1); err != nil {
		return err
	}
	if _, err := dev.Write([]byte(strings.Repeat(" ", Cols))); err != nil {
		return err
	}
	return dev.SetCursor(line, 1)
}

// WriteLine clears line and writes text on it, left aligned or centered. It
// reports whether text fits in 16 columns. Longer text is not truncated and
// runs into the off-screen display memory.
//
// Centered text of 17 or more characters would start left of column 1 and
// is rejected before anything is sent.
func (dev *Dev) WriteLine(text string, line int, centered bool) (bool, error) {
	codes, err := EncodeString(text)
	if err != nil {
		return false, err
	}
	col := 1
	if centered {
		col = centerColumn(len(codes))
	}
	if _, err := Address(line, col); err != nil {
		return false, err
	}
	if err := dev.ClearLine(line); err != nil {
		return false, err
	}
	if err := dev.SetCursor(line, col); err != nil {
		return false, err
	}
	if _, err := dev.Write(codes); err != nil {
		return false, err
	}
	return len(codes) <= Cols, nil
}

// DisplayMessage clears the screen and writes text from the top left,
// continuing on line 2 after 16 characters. With preserveWords, text is
// split on white space and a word that doesn't fit on line 1 starts line 2.
//
// It reports whether text fits on the screen. In preserveWords mode this is
// an estimate that counts one separator per word, including the last one.
func (dev *Dev) DisplayMessage(text string, preserveWords bool) (bool, error) {
	if preserveWords {
		return dev.displayWords(strings.Fields(text))
	}
	codes, err := EncodeString(text)
	if err != nil {
		return false, err
	}
	if err := dev.reset(); err != nil {
		return false, err
	}
	for i, c := range codes {
		if i == Cols {
			if err := dev.SetCursor(2, 1); err != nil {
				return false, err
			}
		}
		if err := dev.ch.writeByte(c); err != nil {
			return false, err
		}
	}
	return len(codes) <= Rows*Cols, nil
}

func (dev *Dev) displayWords(words []string) (bool, error) {
	encoded := make([][]byte, len(words))
	for i, w := range words {
		codes, err := EncodeString(w)
		if err != nil {
			return false, err
		}
		encoded[i] = codes
	}
	if err := dev.reset(); err != nil {
		return false, err
	}
	// i counts the characters of line 1 and a separator after each word. Once
	// it is past 16, every following word starts over at line 2, column 1.
	i := 0
	for _, word := range encoded {
		if i != Cols && i != 0 {
			if err := dev.ch.writeByte(' '); err != nil {
				return false, err
			}
		}
		if i+len(word) > Cols {
			if err := dev.SetCursor(2, 1); err != nil {
				return false, err
			}
		}
		if _, err := dev.Write(word); err != nil {
			return false, err
		}
		i += len(word) + 1
	}
	return i <= Rows*Cols+1, nil
}

// reset clears the screen and homes the cursor.
func (dev *Dev) reset() error {
	if err := dev.Clear(); err != nil {
		return err
	}
	return dev.Home()
}

// ShowCustomChars shows the eight programmable glyphs on line 1 above their
// slot numbers.
func (dev *Dev) ShowCustomChars() error {
	if _, err := dev.WriteLine("\x00\x01\x02\x03\x04\x05\x06\x07", 1, false); err != nil {
		return err
	}
	_, err := dev.WriteLine("01234567", 2, false)
	return err
}
