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

// Package serialport provides the serial transport for the panel
package serialport

import (
	"fmt"
	"time"

	inch35 "github.com/inch35/go-inch35"
	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the panel's fixed baud rate.
	DefaultBaudRate = 115200
	// DefaultTimeout is the default write timeout.
	DefaultTimeout = 1 * time.Second
)

// Transport implements the inch35.Transport interface over a serial port
type Transport struct {
	port     serial.Port
	portName string
}

// Option is a functional option for configuring the transport
type Option func(*config)

type config struct {
	baudRate int
	timeout  time.Duration
}

// WithBaudRate overrides the baud rate. The stock panel only speaks 115200;
// this exists for firmware variants.
func WithBaudRate(baudRate int) Option {
	return func(c *config) {
		c.baudRate = baudRate
	}
}

// WithTimeout sets the initial write timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// New opens the serial port and creates a new transport
func New(portName string, opts ...Option) (*Transport, error) {
	cfg := &config{
		baudRate: DefaultBaudRate,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	mode := &serial.Mode{
		BaudRate: cfg.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}

	transport := &Transport{
		port:     port,
		portName: portName,
	}

	if err := transport.SetTimeout(cfg.timeout); err != nil {
		_ = port.Close()
		return nil, err
	}

	return transport, nil
}

// Write sends raw protocol bytes to the panel
func (t *Transport) Write(p []byte) (int, error) {
	if t.port == nil {
		return 0, inch35.ErrTransportClosed
	}

	n, err := t.port.Write(p)
	if err != nil {
		return n, fmt.Errorf("serial write to %s failed: %w", t.portName, err)
	}
	return n, nil
}

// SetTimeout sets the write timeout for the transport
func (t *Transport) SetTimeout(timeout time.Duration) error {
	if t.port == nil {
		return inch35.ErrTransportClosed
	}

	// go.bug.st/serial only exposes a read timeout knob; serial writes
	// block in the kernel until buffered. Setting it anyway keeps the port
	// from hanging forever if a future firmware ever does talk back.
	if err := t.port.SetReadTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout on %s: %w", t.portName, err)
	}
	return nil
}

// Close closes the serial port
func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}

	err := t.port.Close()
	t.port = nil
	if err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", t.portName, err)
	}
	return nil
}

// IsConnected returns true if the port is open
func (t *Transport) IsConnected() bool {
	return t.port != nil
}

// Type returns the transport type
func (*Transport) Type() inch35.TransportType {
	return inch35.TransportSerial
}

// PortName returns the path of the underlying serial port
func (t *Transport) PortName() string {
	return t.portName
}
