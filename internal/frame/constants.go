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

// Package frame builds the fixed-size command frames understood by the
// panel's onboard controller.
package frame

// Panel command codes. These are the controller firmware's values and must
// match exactly for wire compatibility.
const (
	CmdReset          = 101
	CmdClear          = 102
	CmdToBlack        = 103
	CmdScreenOff      = 108
	CmdScreenOn       = 109
	CmdSetBrightness  = 110
	CmdSetOrientation = 121
	CmdDisplayBitmap  = 197
)

// Frame lengths. Every command is a region frame except SetOrientation,
// which uses its own fixed template.
const (
	RegionLen      = 6  // packed rectangle + command byte
	OrientationLen = 11 // special-cased orientation template
)

// Orientation frame filler bytes. The controller requires the orientation
// code offset by 100 and the trailing constants verbatim; their meaning is
// not documented anywhere and they are not derivable from the region format.
const (
	orientationOffset   = 100
	orientationTrailer1 = 3
	orientationTrailer2 = 200
	orientationTrailer3 = 4
)
