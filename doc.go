// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package nhdlcd is a container for the Newhaven NHD-0216K3Z character LCD
// driver (package nhd0216k3z) and its terminal emulator (package lcdsim).
package nhdlcd
