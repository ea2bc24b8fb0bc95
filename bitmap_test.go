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
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRGB565 pins the forward mapping of the color conversion. There is no
// inverse: the quantization throws channel bits away.
func TestRGB565(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		r, g, b  uint8
		expected uint16
	}{
		{name: "black", expected: 0x0000},
		{name: "white", r: 255, g: 255, b: 255, expected: 0xFFFF},
		{name: "red", r: 255, expected: 0xF800},
		{name: "green", g: 255, expected: 0x07E0},
		{name: "blue", b: 255, expected: 0x001F},
		{name: "mixed", r: 0x12, g: 0x34, b: 0x56, expected: 0x11AA},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rgb565(tt.r, tt.g, tt.b)
			assert.Equal(t, tt.expected, got)

			// Field-wise check against the shift definition.
			assert.Equal(t, uint16(tt.r>>3), got>>11)
			assert.Equal(t, uint16(tt.g>>2), got>>5&0x3f)
			assert.Equal(t, uint16(tt.b>>3), got&0x1f)
		})
	}
}

// TestRGB565_Collisions verifies the conversion is not injective: colors
// differing only in the dropped low bits map to the same value.
func TestRGB565_Collisions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rgb565(0, 0, 0), rgb565(4, 0, 0))
	assert.Equal(t, rgb565(0, 0, 0), rgb565(7, 3, 7))
	assert.Equal(t, rgb565(248, 252, 248), rgb565(255, 255, 255))
	assert.NotEqual(t, rgb565(0, 0, 0), rgb565(8, 0, 0))
}

func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// TestDraw_WriteAccounting verifies the chunked streaming: one region
// command followed by ceil(height/8) payload writes of the documented sizes.
func TestDraw_WriteAccounting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		commandFrame  []byte
		chunkWrites   int
		chunkSize     int
		lastSize      int
	}{
		{
			name:  "portrait panel",
			width: 320, height: 480,
			commandFrame: []byte{0, 0, 4, 253, 223, 197},
			chunkWrites:  60,
			chunkSize:    320 * 8 * 2,
			lastSize:     320 * 8 * 2,
		},
		{
			name:  "landscape panel",
			width: 480, height: 320,
			commandFrame: []byte{0, 0, 7, 125, 63, 197},
			chunkWrites:  40,
			chunkSize:    480 * 8 * 2,
			lastSize:     480 * 8 * 2,
		},
		{
			// Only one side matches the panel; the permissive size check
			// lets it through and the height has a 4-row remainder.
			name:  "height with remainder",
			width: 320, height: 100,
			commandFrame: []byte{0, 0, 4, 252, 99, 197},
			chunkWrites:  13,
			chunkSize:    320 * 8 * 2,
			lastSize:     320 * 4 * 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			screen, mock := newTestScreen(t)
			img := solidImage(tt.width, tt.height, color.NRGBA{R: 255, A: 255})
			require.NoError(t, screen.Draw(img))

			writes := mock.Writes()
			require.Len(t, writes, 1+tt.chunkWrites)
			assert.Equal(t, tt.commandFrame, writes[0])

			for i := 1; i < len(writes)-1; i++ {
				assert.Len(t, writes[i], tt.chunkSize, "chunk %d", i)
			}
			assert.Len(t, writes[len(writes)-1], tt.lastSize)
		})
	}
}

// TestDraw_PixelBytes verifies the payload is little-endian RGB565 in
// row-major order.
func TestDraw_PixelBytes(t *testing.T) {
	t.Parallel()

	screen, mock := newTestScreen(t)
	img := solidImage(320, 480, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255})
	require.NoError(t, screen.Draw(img))

	writes := mock.Writes()
	require.Len(t, writes, 61)

	// rgb565(0x12, 0x34, 0x56) == 0x11AA, low byte first.
	payload := writes[1]
	for i := 0; i < len(payload); i += 2 {
		require.Equal(t, byte(0xAA), payload[i])
		require.Equal(t, byte(0x11), payload[i+1])
	}
}

// TestDraw_GenericImage runs the non-fast-path conversion through the color
// interface and checks it agrees with the NRGBA fast path.
func TestDraw_GenericImage(t *testing.T) {
	t.Parallel()

	gray := image.NewGray(image.Rect(0, 0, 320, 480))
	for i := range gray.Pix {
		gray.Pix[i] = 0x80
	}

	screen, mock := newTestScreen(t)
	require.NoError(t, screen.Draw(gray))

	writes := mock.Writes()
	require.Len(t, writes, 61)

	expected := rgb565(0x80, 0x80, 0x80)
	payload := writes[1]
	require.Equal(t, byte(expected), payload[0])
	require.Equal(t, byte(expected>>8), payload[1])
}

func TestDraw_WrongImageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
	}{
		{name: "square", width: 100, height: 100},
		{name: "too big", width: 1920, height: 1080},
		{name: "one pixel", width: 1, height: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			screen, mock := newTestScreen(t)
			img := image.NewNRGBA(image.Rect(0, 0, tt.width, tt.height))

			err := screen.Draw(img)
			require.ErrorIs(t, err, ErrWrongImageSize)
			assert.Zero(t, mock.CallCount(), "no bytes may reach the panel")
		})
	}
}

// TestValidSize documents the permissive disjunctive check inherited from
// the vendor driver: any size where one side matches the panel passes, even
// combinations no physical panel has.
func TestValidSize(t *testing.T) {
	t.Parallel()

	assert.True(t, validSize(320, 480))
	assert.True(t, validSize(480, 320))
	assert.True(t, validSize(320, 320))
	assert.True(t, validSize(320, 100))
	assert.True(t, validSize(99, 480))
	assert.False(t, validSize(100, 100))
	assert.False(t, validSize(0, 0))
}

// TestDraw_WriteFailureAborts verifies a failing transport stops the draw at
// the failed write, with nothing sent afterwards.
func TestDraw_WriteFailureAborts(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("serial gone")

	tests := []struct {
		name       string
		failAt     int
		priorCalls int
	}{
		{name: "command write fails", failAt: 1},
		{name: "first chunk fails", failAt: 2},
		{name: "mid-stream failure", failAt: 30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			screen, mock := newTestScreen(t)
			mock.FailAt(tt.failAt, writeErr)

			img := solidImage(320, 480, color.NRGBA{A: 255})
			err := screen.Draw(img)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTransportWrite)
			assert.ErrorIs(t, err, writeErr)

			// No write is attempted past the failing one.
			assert.Equal(t, tt.failAt, mock.CallCount())
			assert.Equal(t, tt.failAt-1, mock.WriteCount())
		})
	}
}
