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
	"path/filepath"
	"strings"
)

// DefaultBlocklist returns a list of USB devices that must never be treated
// as a panel, even if their serial number collides with the panel's.
// Format: VID:PID in hexadecimal (case-insensitive).
func DefaultBlocklist() []string {
	return []string{
		// Add known-conflicting devices here as discovered, e.g.
		// "1234:5678", // Vendor X gadget reusing the panel's serial string
	}
}

// IsBlocked checks if a USB device is in the blocklist.
func IsBlocked(vidpid string, blocklist []string) bool {
	vidpid = strings.ToUpper(strings.TrimSpace(vidpid))

	for _, blocked := range blocklist {
		blocked = strings.ToUpper(strings.TrimSpace(blocked))
		if vidpid == blocked {
			return true
		}
	}
	return false
}

// IsPathIgnored checks if a port path should be skipped during detection.
// Supports exact path matching and normalized path comparison.
func IsPathIgnored(portPath string, ignorePaths []string) bool {
	if portPath == "" || len(ignorePaths) == 0 {
		return false
	}

	normalizedPort := normalizedPath(portPath)

	for _, ignorePath := range ignorePaths {
		if ignorePath == "" {
			continue
		}

		if normalizedPort == normalizedPath(ignorePath) {
			return true
		}
		if portPath == ignorePath {
			return true
		}
	}
	return false
}

// normalizedPath normalizes a port path for comparison
func normalizedPath(path string) string {
	// Clean the path to resolve any relative components, and lowercase for
	// case-insensitive comparison on Windows.
	return strings.ToLower(filepath.Clean(path))
}
