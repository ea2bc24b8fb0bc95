// go-inch35
// Copyright (c) 2026 The go-inch35 Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-inch35.
//
// go-inch35 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-inch35 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-inch35; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

/*
Package inch35 drives the common 3.5" USB-attached IPS LCD modules
(320x480, USB id "USB35INCHIPSV2") over their serial protocol.

The panel's controller speaks a small write-only command set: fixed 6-byte
region frames for clear, blank, brightness and bitmap addressing, one
11-byte frame for orientation, and a raw little-endian RGB565 pixel stream
for image data. There is no acknowledgement channel; every operation is
fire-and-forget.

Features:
  - Full command set: clear, to-black, screen on/off, brightness,
    orientation, reset, bitmap draw
  - Streams images of any supported size in bounded chunks
  - Panel discovery by USB serial number across platforms
  - Mock transport for hardware-free testing

Basic Usage:

	import (
	    "github.com/inch35/go-inch35"
	    "github.com/inch35/go-inch35/transport/serialport"
	)

	// Open the serial transport
	transport, err := serialport.New("/dev/ttyACM0")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	// Create the screen
	screen, err := inch35.New(transport)
	if err != nil {
	    log.Fatal(err)
	}

	if err := screen.SetOrientation(inch35.Portrait); err != nil {
	    log.Fatal(err)
	}
	if err := screen.Clear(); err != nil {
	    log.Fatal(err)
	}
	if err := screen.Draw(img); err != nil {
	    log.Fatal(err)
	}

Screen is not safe for concurrent use; serialize access externally if
multiple goroutines share one panel.
*/
package inch35
