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

package frame

// EncodeRegion packs a rectangle and a command code into the controller's
// 6-byte frame. The rectangle is inclusive: (x, y) is the top-left pixel and
// (ex, ey) the bottom-right pixel of the addressed region.
//
// The coordinate bits straddle byte boundaries:
//
//	byte 0: x[9:2]
//	byte 1: x[1:0] | y[9:4]
//	byte 2: y[3:0] | ex[9:6]
//	byte 3: ex[5:0] | ey[9:8]
//	byte 4: ey[7:0]
//	byte 5: command
//
// No range checking is performed; coordinates wider than the allocated bits
// wrap silently under the masks, exactly as the controller would see them.
func EncodeRegion(x, y, ex, ey uint16, cmd byte) [RegionLen]byte {
	return [RegionLen]byte{
		byte(x >> 2),
		byte((x&0x03)<<6 | y>>4),
		byte((y&0x0f)<<4 | ex>>6),
		byte((ex&0x3f)<<2 | ey>>8),
		byte(ey),
		cmd,
	}
}

// DecodeRegion is the inverse of EncodeRegion for in-range coordinates. It
// exists for tests and diagnostics; the panel protocol itself is write-only.
func DecodeRegion(buf [RegionLen]byte) (x, y, ex, ey uint16, cmd byte) {
	x = uint16(buf[0])<<2 | uint16(buf[1])>>6
	y = uint16(buf[1]&0x3f)<<4 | uint16(buf[2])>>4
	ex = uint16(buf[2]&0x0f)<<6 | uint16(buf[3])>>2
	ey = uint16(buf[3]&0x03)<<8 | uint16(buf[4])
	cmd = buf[5]
	return x, y, ex, ey, cmd
}

// EncodeOrientation builds the 11-byte SetOrientation frame for the given
// orientation code (0-3). Unlike every other command this does not use the
// region format; the template below is the one the vendor firmware expects.
func EncodeOrientation(code byte) [OrientationLen]byte {
	return [OrientationLen]byte{
		0, 0, 0, 0, 0,
		CmdSetOrientation,
		orientationOffset + code,
		orientationTrailer1,
		orientationTrailer2,
		orientationTrailer3,
		0,
	}
}
