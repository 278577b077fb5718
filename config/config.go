// Package config holds the board wiring and display settings of the
// temperature monitor.
package config

import (
	"encoding/json"
	"errors"
)

// BoardConfig describes how the display is attached and how often the
// reading is refreshed.
type BoardConfig struct {
	// I2C bus number (0 or 1) and its pins.
	I2CBus      uint8  `json:"i2c_bus"`
	SDAPin      uint8  `json:"sda_pin"`
	SCLPin      uint8  `json:"scl_pin"`
	I2CFreqHz   uint32 `json:"i2c_freq_hz"`
	DisplayAddr uint16 `json:"display_addr"`

	// Panel geometry in pixels. Height must be a multiple of 8.
	DisplayWidth  int16 `json:"display_width"`
	DisplayHeight int16 `json:"display_height"`

	// Text anchor of the temperature line.
	TextX int16 `json:"text_x"`
	TextY int16 `json:"text_y"`

	// Telemetry enables the per-cycle frame on the USB console.
	Telemetry bool `json:"telemetry"`
}

// MaxPin is the highest user GPIO on RP2040.
const MaxPin = 29

var (
	ErrBadBus      = errors.New("config: i2c_bus must be 0 or 1")
	ErrBadGeometry = errors.New("config: display height must be a positive multiple of 8 and width at most 128, height at most 64")
	ErrSamePins    = errors.New("config: sda_pin and scl_pin must differ")
	ErrBadPin      = errors.New("config: pins must be GPIO0..GPIO29")
)

// LoadConfig parses a JSON configuration and fills unset fields with defaults.
func LoadConfig(jsonData []byte) (*BoardConfig, error) {
	var cfg BoardConfig
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in missing configuration values with the reference
// board's values. The bus number and pins have no zero default because
// I2C0 on GPIO0/1 is a valid wiring; only a fully unset wiring is replaced.
func applyDefaults(cfg *BoardConfig) {
	def := Default()
	if cfg.I2CBus == 0 && cfg.SDAPin == 0 && cfg.SCLPin == 0 {
		cfg.I2CBus = def.I2CBus
		cfg.SDAPin = def.SDAPin
		cfg.SCLPin = def.SCLPin
	}
	if cfg.I2CFreqHz == 0 {
		cfg.I2CFreqHz = def.I2CFreqHz
	}
	if cfg.DisplayAddr == 0 {
		cfg.DisplayAddr = def.DisplayAddr
	}
	if cfg.DisplayWidth == 0 {
		cfg.DisplayWidth = def.DisplayWidth
	}
	if cfg.DisplayHeight == 0 {
		cfg.DisplayHeight = def.DisplayHeight
	}
}

// Default returns the configuration of the reference board: a 128x64
// SSD1306 on I2C1 (SDA GPIO14, SCL GPIO15) at 400 kHz.
func Default() *BoardConfig {
	return &BoardConfig{
		I2CBus:        1,
		SDAPin:        14,
		SCLPin:        15,
		I2CFreqHz:     400_000,
		DisplayAddr:   0x3C,
		DisplayWidth:  128,
		DisplayHeight: 64,
		TextX:         5,
		TextY:         5,
		Telemetry:     true,
	}
}

// Validate reports wiring or geometry the firmware cannot drive.
func (c *BoardConfig) Validate() error {
	if c.I2CBus > 1 {
		return ErrBadBus
	}
	if c.SDAPin > MaxPin || c.SCLPin > MaxPin {
		return ErrBadPin
	}
	if c.SDAPin == c.SCLPin {
		return ErrSamePins
	}
	if c.DisplayWidth <= 0 || c.DisplayWidth > 128 ||
		c.DisplayHeight <= 0 || c.DisplayHeight > 64 || c.DisplayHeight%8 != 0 {
		return ErrBadGeometry
	}
	return nil
}
