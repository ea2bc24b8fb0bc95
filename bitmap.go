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

import (
	"image"

	"github.com/inch35/go-inch35/internal/frame"
)

// chunkRows is the number of scan rows converted and written per transport
// write during a draw. The batch size bounds the payload of any single write
// without buffering the whole frame; it also fixes the write-call pattern
// mocks observe, so it must not change.
const chunkRows = 8

// rgb565 quantizes an 8-bit RGB triple to the panel's 16-bit 5-6-5 format.
// The conversion is lossy; the dropped low bits are gone for good.
func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// validSize mirrors the vendor driver's dimension check. It is a disjunction
// over the four comparisons, not a paired check, so it admits sizes like
// 320x100 where only one side matches the panel; the controller renders what
// it gets and wraps. Kept as-is for behavioral compatibility.
func validSize(width, height int) bool {
	return (width == Width || height == Height) || (width == Height || height == Width)
}

// Draw transmits an image to the panel as little-endian RGB565 pixels in
// row-major order. The image must be 320x480 or 480x320 and should match the
// panel's current orientation; the panel does not check, it just interprets
// the stream in whatever orientation it is in, cropping and wrapping as
// needed.
//
// The pixel stream follows one DisplayBitmap region command covering the
// whole image and is written in chunks of 8 rows, with one final shorter
// write when the height is not a multiple of 8. The first write failure
// aborts the draw; the panel is left showing a partially updated frame.
func (s *Screen) Draw(img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if !validSize(width, height) {
		return ErrWrongImageSize
	}

	if err := s.sendCommand(0, 0, uint16(width-1), uint16(height-1), frame.CmdDisplayBitmap); err != nil {
		return err
	}

	debugf("draw %dx%d in %d-row chunks", width, height, chunkRows)

	buf := make([]byte, 0, width*chunkRows*2)
	for row := 0; row < height; row++ {
		buf = appendRow565(buf, img, bounds.Min.Y+row)
		if (row+1)%chunkRows == 0 {
			if err := s.writeAll("bitmap", buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}

	// Remaining rows when the height is not a multiple of the chunk size.
	if len(buf) > 0 {
		if err := s.writeAll("bitmap", buf); err != nil {
			return err
		}
	}

	return nil
}

// appendRow565 converts one scan row to little-endian RGB565 and appends it
// to buf. The common image types are unpacked directly; anything else goes
// through the color interface.
func appendRow565(buf []byte, img image.Image, y int) []byte {
	bounds := img.Bounds()

	switch src := img.(type) {
	case *image.RGBA:
		i := src.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			pix := rgb565(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
			buf = append(buf, byte(pix), byte(pix>>8))
			i += 4
		}
	case *image.NRGBA:
		i := src.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			pix := rgb565(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
			buf = append(buf, byte(pix), byte(pix>>8))
			i += 4
		}
	default:
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix := rgb565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			buf = append(buf, byte(pix), byte(pix>>8))
		}
	}

	return buf
}
