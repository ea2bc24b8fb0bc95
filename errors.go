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
	"fmt"
)

// Sentinel errors returned by the driver.
var (
	// ErrWrongImageSize indicates a bitmap whose dimensions do not match
	// the panel in either orientation. Nothing is written to the panel.
	ErrWrongImageSize = errors.New("wrong image size: must be 320x480 or 480x320")

	// ErrTransportWrite indicates a failed write to the underlying
	// transport. The in-progress operation is aborted; a draw may leave
	// the panel showing a partially updated frame.
	ErrTransportWrite = errors.New("transport write failed")

	// ErrTransportClosed indicates an operation on a closed transport.
	ErrTransportClosed = errors.New("transport closed")

	// ErrDeviceNotFound indicates detection found no matching panel.
	ErrDeviceNotFound = errors.New("no panel found")

	// ErrInvalidParameter indicates an invalid argument to an operation.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// TransportError wraps a transport failure with the operation that caused
// it. All TransportErrors match ErrTransportWrite under errors.Is; the
// protocol is write-only, so every transport failure is a write failure.
type TransportError struct {
	Err  error
	Op   string
	Port string
}

// NewTransportError creates a new TransportError.
func NewTransportError(op, port string, err error) *TransportError {
	return &TransportError{Op: op, Port: port, Err: err}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches this error. Every TransportError
// matches the ErrTransportWrite sentinel.
func (*TransportError) Is(target error) bool {
	return target == ErrTransportWrite
}
