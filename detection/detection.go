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

// Package detection finds attached panels by enumerating serial ports and
// matching on the USB serial number the panel firmware reports.
package detection

import (
	"fmt"

	"go.bug.st/serial/enumerator"
)

// PanelSerialNumber is the USB serial number string the 3.5" panel
// enumerates with. It is the only reliable identifier; the panels ship with
// generic CDC VID:PID pairs.
const PanelSerialNumber = "USB35INCHIPSV2"

// DeviceInfo describes a detected panel.
type DeviceInfo struct {
	// Path is the serial port path, e.g. /dev/ttyACM0 or COM5.
	Path string
	// Product is the USB product string, when the platform exposes one.
	Product string
	// VID is the USB vendor ID in hexadecimal.
	VID string
	// PID is the USB product ID in hexadecimal.
	PID string
	// SerialNumber is the USB serial number.
	SerialNumber string
}

// Options configures detection behavior.
type Options struct {
	// SerialNumber is the USB serial number to match. Empty matches any
	// USB serial port, which is only useful for diagnostics.
	SerialNumber string
	// Blocklist lists VID:PID pairs that are never considered panels.
	Blocklist []string
	// IgnorePaths lists port paths to skip.
	IgnorePaths []string
}

// DefaultOptions returns detection options matching the stock panel.
func DefaultOptions() Options {
	return Options{
		SerialNumber: PanelSerialNumber,
		Blocklist:    DefaultBlocklist(),
	}
}

// DetectAll returns every attached panel matching the options, in the order
// the operating system enumerates them.
func DetectAll(opts *Options) ([]DeviceInfo, error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}

	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	return matchPorts(ports, opts), nil
}

// matchPorts filters the enumerated ports down to panels. Split out from
// DetectAll so the matching rules are testable without hardware.
func matchPorts(ports []*enumerator.PortDetails, opts *Options) []DeviceInfo {
	var devices []DeviceInfo

	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		if IsPathIgnored(port.Name, opts.IgnorePaths) {
			continue
		}
		if IsBlocked(port.VID+":"+port.PID, opts.Blocklist) {
			continue
		}
		if opts.SerialNumber != "" && port.SerialNumber != opts.SerialNumber {
			continue
		}

		devices = append(devices, DeviceInfo{
			Path:         port.Name,
			Product:      port.Product,
			VID:          port.VID,
			PID:          port.PID,
			SerialNumber: port.SerialNumber,
		})
	}

	return devices
}
