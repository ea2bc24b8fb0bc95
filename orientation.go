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

package inch35

// Native panel resolution in portrait orientation. In landscape the two
// values swap.
const (
	Width  = 320
	Height = 480
)

// Orientation selects how the panel maps incoming pixel data to the glass.
// The panel itself remembers the current orientation; the driver keeps no
// state beyond forwarding the code.
type Orientation byte

const (
	// Portrait is the native orientation, 320x480.
	Portrait Orientation = 0
	// ReversePortrait is portrait rotated 180 degrees.
	ReversePortrait Orientation = 1
	// Landscape is the panel rotated to 480x320.
	Landscape Orientation = 2
	// ReverseLandscape is landscape rotated 180 degrees.
	ReverseLandscape Orientation = 3
)

// Code returns the wire value for the orientation.
func (o Orientation) Code() byte {
	return byte(o)
}

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case ReversePortrait:
		return "reverse-portrait"
	case Landscape:
		return "landscape"
	case ReverseLandscape:
		return "reverse-landscape"
	default:
		return "unknown"
	}
}

// Size returns the panel dimensions for the orientation.
func (o Orientation) Size() (width, height int) {
	if o == Landscape || o == ReverseLandscape {
		return Height, Width
	}
	return Width, Height
}
