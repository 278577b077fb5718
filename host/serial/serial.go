// Package serial opens the USB CDC console the firmware writes telemetry to.
package serial

import (
	"errors"
	"io"
)

// Port is the host end of the firmware console. Tests substitute an
// in-memory pipe.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data received but not yet read.
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate. USB CDC ignores it but the OS driver still wants one.
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

var ErrNoDevice = errors.New("serial: no device given")

// DefaultConfig returns the settings for the firmware's USB console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500, // longer than the firmware's 1 s cycle is not needed
	}
}

// Validate checks that the configuration can be opened.
func (c *Config) Validate() error {
	if c == nil || c.Device == "" {
		return ErrNoDevice
	}
	if c.Baud <= 0 {
		return errors.New("serial: baud must be positive")
	}
	if c.ReadTimeout < 0 {
		return errors.New("serial: read timeout must not be negative")
	}
	return nil
}
