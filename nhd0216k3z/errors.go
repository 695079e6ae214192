// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nhd0216k3z

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter matches every *ValidationError with errors.Is.
	ErrInvalidParameter = errors.New(packageName + ": invalid parameter")
	// ErrUnsupportedCharacter matches every *UnsupportedCharacterError.
	ErrUnsupportedCharacter = errors.New(packageName + ": unsupported character")
)

// ValidationError is returned when a parameter is outside the range the
// device accepts. Nothing was sent to the display.
type ValidationError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("%s: %s is %d, want %d", packageName, e.Param, e.Value, e.Min)
	}
	return fmt.Sprintf("%s: %s %d out of range [%d, %d]", packageName, e.Param, e.Value, e.Min, e.Max)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// UnsupportedCharacterError is returned when a character has no code in the
// device character ROM table. Nothing was sent to the display.
type UnsupportedCharacterError struct {
	Char rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("%s: unsupported character %q (U+%04X)", packageName, e.Char, e.Char)
}

func (e *UnsupportedCharacterError) Is(target error) bool {
	return target == ErrUnsupportedCharacter
}

// TransportError wraps a failed byte write. The command in flight was
// aborted and the display may have received part of it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return packageName + ": transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func checkRange(param string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &ValidationError{Param: param, Value: value, Min: lo, Max: hi}
	}
	return nil
}
