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

package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial/enumerator"
)

func panelPort(name string) *enumerator.PortDetails {
	return &enumerator.PortDetails{
		Name:         name,
		IsUSB:        true,
		VID:          "1D6B",
		PID:          "0106",
		SerialNumber: PanelSerialNumber,
	}
}

func TestMatchPorts(t *testing.T) {
	t.Parallel()

	ports := []*enumerator.PortDetails{
		{Name: "/dev/ttyS0", IsUSB: false},
		{Name: "/dev/ttyUSB0", IsUSB: true, VID: "0403", PID: "6001", SerialNumber: "A6008isP"},
		panelPort("/dev/ttyACM0"),
		panelPort("/dev/ttyACM1"),
	}

	opts := DefaultOptions()
	devices := matchPorts(ports, &opts)

	require.Len(t, devices, 2)
	assert.Equal(t, "/dev/ttyACM0", devices[0].Path)
	assert.Equal(t, "/dev/ttyACM1", devices[1].Path)
	assert.Equal(t, PanelSerialNumber, devices[0].SerialNumber)
}

func TestMatchPorts_NoMatch(t *testing.T) {
	t.Parallel()

	ports := []*enumerator.PortDetails{
		{Name: "/dev/ttyS0", IsUSB: false, SerialNumber: PanelSerialNumber},
		{Name: "/dev/ttyUSB0", IsUSB: true, SerialNumber: "SOMETHINGELSE"},
	}

	opts := DefaultOptions()
	assert.Empty(t, matchPorts(ports, &opts))
}

func TestMatchPorts_Blocklist(t *testing.T) {
	t.Parallel()

	ports := []*enumerator.PortDetails{panelPort("/dev/ttyACM0")}

	opts := DefaultOptions()
	opts.Blocklist = []string{"1d6b:0106"}
	assert.Empty(t, matchPorts(ports, &opts))
}

func TestMatchPorts_IgnorePaths(t *testing.T) {
	t.Parallel()

	ports := []*enumerator.PortDetails{
		panelPort("/dev/ttyACM0"),
		panelPort("/dev/ttyACM1"),
	}

	opts := DefaultOptions()
	opts.IgnorePaths = []string{"/dev/ttyACM0"}

	devices := matchPorts(ports, &opts)
	require.Len(t, devices, 1)
	assert.Equal(t, "/dev/ttyACM1", devices[0].Path)
}

func TestMatchPorts_AnySerial(t *testing.T) {
	t.Parallel()

	ports := []*enumerator.PortDetails{
		{Name: "COM3", IsUSB: true, VID: "0403", PID: "6001", SerialNumber: "A6008isP"},
	}

	opts := Options{}
	devices := matchPorts(ports, &opts)
	require.Len(t, devices, 1)
	assert.Equal(t, "COM3", devices[0].Path)
}

func TestIsBlocked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		vidpid    string
		blocklist []string
		want      bool
	}{
		{name: "empty blocklist", vidpid: "1234:5678", want: false},
		{name: "exact match", vidpid: "1234:5678", blocklist: []string{"1234:5678"}, want: true},
		{name: "case insensitive", vidpid: "abcd:ef01", blocklist: []string{"ABCD:EF01"}, want: true},
		{name: "whitespace trimmed", vidpid: " 1234:5678 ", blocklist: []string{"1234:5678"}, want: true},
		{name: "no match", vidpid: "1234:5678", blocklist: []string{"8765:4321"}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsBlocked(tt.vidpid, tt.blocklist))
		})
	}
}

func TestIsPathIgnored(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		ignorePaths []string
		want        bool
	}{
		{name: "empty path", path: "", ignorePaths: []string{"/dev/ttyACM0"}, want: false},
		{name: "no ignore list", path: "/dev/ttyACM0", want: false},
		{name: "exact match", path: "/dev/ttyACM0", ignorePaths: []string{"/dev/ttyACM0"}, want: true},
		{name: "case-folded match", path: "COM3", ignorePaths: []string{"com3"}, want: true},
		{name: "different port", path: "/dev/ttyACM1", ignorePaths: []string{"/dev/ttyACM0"}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsPathIgnored(tt.path, tt.ignorePaths))
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	assert.Equal(t, PanelSerialNumber, opts.SerialNumber)
}
