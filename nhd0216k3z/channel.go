// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package nhd0216k3z

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// channel writes single bytes to the display over exactly one of an I²C
// device, a conn.Conn or an io.Writer.
type channel struct {
	// i2c is set when the display is on an I²C bus. It is also c.
	i2c *i2c.Dev
	c   conn.Conn
	w   io.Writer
}

func (ch *channel) writeByte(b byte) error {
	var err error
	if ch.w != nil {
		var n int
		if n, err = ch.w.Write([]byte{b}); err == nil && n != 1 {
			err = io.ErrShortWrite
		}
	} else {
		err = ch.c.Tx([]byte{b}, nil)
	}
	if err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// address returns the I²C address, or 0 if the display isn't on I²C.
func (ch *channel) address() uint16 {
	if ch.i2c == nil {
		return 0
	}
	return ch.i2c.Addr
}

func (ch *channel) setAddress(addr uint16) {
	if ch.i2c != nil {
		ch.i2c.Addr = addr
	}
}

func (ch *channel) close() error {
	if ch.w != nil {
		if cl, ok := ch.w.(io.Closer); ok {
			return cl.Close()
		}
	}
	return nil
}

func (ch *channel) String() string {
	switch {
	case ch.i2c != nil:
		return fmt.Sprintf("%s@%#x", ch.i2c.Bus, ch.i2c.Addr)
	case ch.c != nil:
		return ch.c.String()
	case ch.w != nil:
		return fmt.Sprintf("%T", ch.w)
	}
	return "None"
}
