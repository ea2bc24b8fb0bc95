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
	"io"
	"time"

	"github.com/inch35/go-inch35/detection"
	"github.com/inch35/go-inch35/internal/frame"
)

// ScreenConfig contains configuration options for the Screen
type ScreenConfig struct {
	// Timeout is the write timeout applied to the transport
	Timeout time.Duration
}

// DefaultScreenConfig returns default screen configuration
func DefaultScreenConfig() *ScreenConfig {
	return &ScreenConfig{
		Timeout: 1 * time.Second,
	}
}

// Screen represents a 3.5" USB LCD panel.
//
// Thread Safety: Screen is NOT thread-safe. All methods must be called from
// a single goroutine or protected with external synchronization; the panel
// protocol has no framing that would let interleaved writes recover. Screen
// assumes exclusive ownership of its transport.
type Screen struct {
	transport Transport
	config    *ScreenConfig
}

// New creates a new Screen with the given transport
func New(transport Transport, opts ...Option) (*Screen, error) {
	screen := &Screen{
		transport: transport,
		config:    DefaultScreenConfig(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(screen); err != nil {
			return nil, err
		}
	}

	return screen, nil
}

// Transport returns the underlying transport
func (s *Screen) Transport() Transport {
	return s.transport
}

// SetTimeout sets the write timeout on the transport
func (s *Screen) SetTimeout(timeout time.Duration) error {
	s.config.Timeout = timeout
	if err := s.transport.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout on transport: %w", err)
	}
	return nil
}

// Close closes the screen connection
func (s *Screen) Close() error {
	if s.transport != nil {
		if err := s.transport.Close(); err != nil {
			return fmt.Errorf("failed to close transport: %w", err)
		}
		debugln("transport closed")
	}
	return nil
}

// writeAll writes the full buffer to the transport, treating a short write
// as a failure. There is no retry; the first failure aborts the operation.
func (s *Screen) writeAll(op string, p []byte) error {
	n, err := s.transport.Write(p)
	if err != nil {
		return NewTransportError(op, string(s.transport.Type()), err)
	}
	if n != len(p) {
		return NewTransportError(op, string(s.transport.Type()), io.ErrShortWrite)
	}
	return nil
}

// sendCommand packs a region command frame and writes it to the panel.
func (s *Screen) sendCommand(x, y, ex, ey uint16, cmd byte) error {
	buf := frame.EncodeRegion(x, y, ex, ey, cmd)
	return s.writeAll("command", buf[:])
}

// Clear clears the screen to white.
// The panel executes this incorrectly in landscape mode; switch to Portrait
// before calling.
func (s *Screen) Clear() error {
	return s.sendCommand(0, 0, 0, 0, frame.CmdClear)
}

// ToBlack clears the screen to black.
// The panel executes this incorrectly in landscape mode; switch to Portrait
// before calling.
func (s *Screen) ToBlack() error {
	return s.sendCommand(0, 0, 0, 0, frame.CmdToBlack)
}

// ScreenOff blanks the panel. The panel stays powered and retains the
// current image; ScreenOn restores it.
func (s *Screen) ScreenOff() error {
	return s.sendCommand(0, 0, 0, 0, frame.CmdScreenOff)
}

// ScreenOn unblanks the panel, restoring the last image drawn.
func (s *Screen) ScreenOn() error {
	return s.sendCommand(0, 0, 0, 0, frame.CmdScreenOn)
}

// Reset asks the controller to reset itself. The panel drops off the bus for
// a few seconds afterwards; reopening the transport is the caller's problem.
func (s *Screen) Reset() error {
	return s.sendCommand(0, 0, 0, 0, frame.CmdReset)
}

// SetBrightness sets the backlight level, 0 (darkest) to 255 (brightest).
// The controller's scale is inverted, so the level is flipped before it is
// packed into the frame's x field.
func (s *Screen) SetBrightness(level uint8) error {
	return s.sendCommand(uint16(255-level), 0, 0, 0, frame.CmdSetBrightness)
}

// SetOrientation sets the panel orientation. The panel remembers the setting
// until reset; images drawn afterwards must match the new dimensions.
func (s *Screen) SetOrientation(o Orientation) error {
	debugf("set orientation %s", o)
	buf := frame.EncodeOrientation(o.Code())
	return s.writeAll("orientation", buf[:])
}

// TransportFactory is a function type for creating transports
type TransportFactory func(path string) (Transport, error)

// ConnectOption represents a functional option for Connect
type ConnectOption func(*connectConfig) error

// connectConfig holds configuration options for panel connection
type connectConfig struct {
	transportFactory TransportFactory
	detectOptions    *detection.Options
	screenOptions    []Option
	timeout          time.Duration
	autoDetect       bool
}

// WithAutoDetection enables automatic panel detection instead of using a
// specific port path
func WithAutoDetection() ConnectOption {
	return func(c *connectConfig) error {
		c.autoDetect = true
		return nil
	}
}

// WithDetectOptions sets the detection options used during auto-detection
func WithDetectOptions(opts *detection.Options) ConnectOption {
	return func(c *connectConfig) error {
		c.detectOptions = opts
		return nil
	}
}

// WithScreenOptions adds screen-level options
func WithScreenOptions(opts ...Option) ConnectOption {
	return func(c *connectConfig) error {
		c.screenOptions = append(c.screenOptions, opts...)
		return nil
	}
}

// WithConnectTimeout sets the transport write timeout applied on connect
func WithConnectTimeout(timeout time.Duration) ConnectOption {
	return func(c *connectConfig) error {
		c.timeout = timeout
		return nil
	}
}

// WithTransportFactory sets the transport factory function
func WithTransportFactory(factory TransportFactory) ConnectOption {
	return func(c *connectConfig) error {
		c.transportFactory = factory
		return nil
	}
}

func applyConnectOptions(opts []ConnectOption) (*connectConfig, error) {
	config := &connectConfig{
		timeout: 1 * time.Second,
	}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, fmt.Errorf("failed to apply connect option: %w", err)
		}
	}

	return config, nil
}

func createTransport(path string, config *connectConfig) (Transport, error) {
	if config.transportFactory == nil {
		return nil, errors.New("transport factory not provided")
	}

	if config.autoDetect || path == "" {
		detected, err := autoDetectPath(config.detectOptions)
		if err != nil {
			return nil, err
		}
		path = detected
	}

	transport, err := config.transportFactory(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport for path %s: %w", path, err)
	}
	return transport, nil
}

// autoDetectPath returns the port path of the first detected panel.
func autoDetectPath(opts *detection.Options) (string, error) {
	if opts == nil {
		defaults := detection.DefaultOptions()
		opts = &defaults
	}

	devices, err := detection.DetectAll(opts)
	if err != nil {
		return "", fmt.Errorf("failed to detect panels: %w", err)
	}
	if len(devices) == 0 {
		return "", ErrDeviceNotFound
	}

	debugf("detected panel %s (serial %s)", devices[0].Path, devices[0].SerialNumber)
	return devices[0].Path, nil
}

// Connect creates a Screen from a port path or auto-detection. This is a
// high-level convenience function that handles transport creation and
// timeout setup.
//
// Example usage:
//
//	// Connect to a specific port
//	screen, err := inch35.Connect("/dev/ttyACM0",
//	    inch35.WithTransportFactory(factory))
//
//	// Auto-detect the panel
//	screen, err := inch35.Connect("",
//	    inch35.WithAutoDetection(),
//	    inch35.WithTransportFactory(factory))
func Connect(path string, opts ...ConnectOption) (*Screen, error) {
	config, err := applyConnectOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to apply connect options: %w", err)
	}

	transport, err := createTransport(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	screen, err := New(transport, config.screenOptions...)
	if err != nil {
		_ = transport.Close()
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if config.timeout > 0 {
		if err := screen.SetTimeout(config.timeout); err != nil {
			_ = transport.Close()
			return nil, err
		}
	}

	return screen, nil
}
