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

// lcdtool exercises a 3.5" USB LCD panel: detect it, set it up and draw an
// image on it.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	inch35 "github.com/inch35/go-inch35"
	"github.com/inch35/go-inch35/detection"
	"github.com/inch35/go-inch35/transport/serialport"
	xdraw "golang.org/x/image/draw"
)

type config struct {
	devicePath  *string
	imagePath   *string
	orientation *string
	timeout     *time.Duration
	brightness  *int
	clear       *bool
	black       *bool
	off         *bool
	on          *bool
	list        *bool
	debug       *bool
}

func parseFlags() *config {
	cfg := &config{
		devicePath: flag.String("device", "",
			"Serial port path (e.g. /dev/ttyACM0 or COM5). Leave empty for auto-detection."),
		imagePath:   flag.String("image", "", "Image file (png/jpeg/gif) to draw, scaled to the panel"),
		orientation: flag.String("orientation", "", "Set orientation: portrait, reverse-portrait, landscape, reverse-landscape"),
		timeout:     flag.Duration("timeout", time.Second, "Serial write timeout"),
		brightness:  flag.Int("brightness", -1, "Set backlight level 0-255 (255 = brightest)"),
		clear:       flag.Bool("clear", false, "Clear the panel to white"),
		black:       flag.Bool("black", false, "Clear the panel to black"),
		off:         flag.Bool("off", false, "Blank the panel"),
		on:          flag.Bool("on", false, "Unblank the panel"),
		list:        flag.Bool("list", false, "List detected panels and exit"),
		debug:       flag.Bool("debug", false, "Enable debug output"),
	}
	flag.Parse()

	if *cfg.debug {
		inch35.SetDebugEnabled(true)
	}

	return cfg
}

func listPanels() error {
	opts := detection.DefaultOptions()
	devices, err := detection.DetectAll(&opts)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("No panels found")
		return nil
	}
	for _, dev := range devices {
		fmt.Printf("%s\t%s:%s\t%s\n", dev.Path, dev.VID, dev.PID, dev.SerialNumber)
	}
	return nil
}

func parseOrientation(name string) (inch35.Orientation, error) {
	for _, o := range []inch35.Orientation{
		inch35.Portrait, inch35.ReversePortrait, inch35.Landscape, inch35.ReverseLandscape,
	} {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q", name)
}

// loadImage decodes the file and scales it to the panel dimensions for the
// given orientation.
func loadImage(path string, o inch35.Orientation) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width, height := o.Size()
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func run(cfg *config) error {
	if *cfg.list {
		return listPanels()
	}

	// An empty -device falls back to auto-detection.
	screen, err := inch35.Connect(*cfg.devicePath,
		inch35.WithConnectTimeout(*cfg.timeout),
		inch35.WithTransportFactory(func(path string) (inch35.Transport, error) {
			return serialport.New(path)
		}),
	)
	if err != nil {
		return err
	}
	defer func() { _ = screen.Close() }()

	orientation := inch35.Portrait
	if *cfg.orientation != "" {
		orientation, err = parseOrientation(*cfg.orientation)
		if err != nil {
			return err
		}
		if err := screen.SetOrientation(orientation); err != nil {
			return fmt.Errorf("failed to set orientation: %w", err)
		}
	}

	if *cfg.clear {
		if err := screen.Clear(); err != nil {
			return fmt.Errorf("failed to clear: %w", err)
		}
	}
	if *cfg.black {
		if err := screen.ToBlack(); err != nil {
			return fmt.Errorf("failed to clear to black: %w", err)
		}
	}

	if *cfg.brightness >= 0 {
		if *cfg.brightness > 255 {
			return fmt.Errorf("brightness %d out of range 0-255", *cfg.brightness)
		}
		if err := screen.SetBrightness(uint8(*cfg.brightness)); err != nil {
			return fmt.Errorf("failed to set brightness: %w", err)
		}
	}

	if *cfg.imagePath != "" {
		img, err := loadImage(*cfg.imagePath, orientation)
		if err != nil {
			return err
		}
		if err := screen.Draw(img); err != nil {
			return fmt.Errorf("failed to draw: %w", err)
		}
	}

	if *cfg.off {
		if err := screen.ScreenOff(); err != nil {
			return fmt.Errorf("failed to blank: %w", err)
		}
	}
	if *cfg.on {
		if err := screen.ScreenOn(); err != nil {
			return fmt.Errorf("failed to unblank: %w", err)
		}
	}

	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
