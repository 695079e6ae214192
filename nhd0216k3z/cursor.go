// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nhd0216k3z

const (
	// Rows is the number of display lines.
	Rows = 2
	// Cols is the number of characters per line.
	Cols = 16

	// Line 2 starts at this DDRAM address.
	line2Offset = 0x40
)

// Address returns the DDRAM address of the cell at line and column, both
// numbered from 1.
func Address(line, column int) (byte, error) {
	if err := checkRange("line", line, 1, Rows); err != nil {
		return 0, err
	}
	if err := checkRange("column", column, 1, Cols); err != nil {
		return 0, err
	}
	return byte((line-1)*line2Offset + column - 1), nil
}

// centerColumn returns the start column that centers length characters. The
// division floors, so text wider than the line gets a column left of 1.
func centerColumn(length int) int {
	d := Cols - length
	q := d / 2
	if d < 0 && d%2 != 0 {
		q--
	}
	return 1 + q
}
