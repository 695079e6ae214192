// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package nhd0216k3z controls the Newhaven NHD-0216K3Z serial character LCD.
// The module is a 2 line by 16 column display with an on-board controller
// that accepts text and 0xFE prefixed commands over I²C, SPI or RS-232.
//
// Characters are translated to the controller's character ROM. Printable
// ASCII maps directly, with the exception of '\\' whose code (0x5C) shows a
// '¥'. A small set of symbols (arrows, greek letters, '°', '√', ...) map to
// their ROM codes, and '\x00' through '\x07' select the eight programmable
// glyphs loaded with LoadCustomCharacter. Any other ROM code can be reached
// with WriteCode.
//
// The driver keeps no copy of the display contents. Lines and columns are
// numbered from 1. Dev is not safe for concurrent use: a command is several
// independent writes, so callers sharing a display must serialize access.
//
// Implements periph.io/x/conn/v3/display.TextDisplay, DisplayContrast and
// DisplayBacklight.
//
// # Datasheet
//
// https://newhavendisplay.com/content/specs/NHD-0216K3Z-FL-GBW-V3.pdf
package nhd0216k3z
