//go:build rp2040

package main

import (
	"machine"
	"strconv"

	"picotemp/config"
	"picotemp/core"
)

// configureI2C brings up the display bus from the board wiring. Pins are
// switched to the I2C function, which on RP2040 also enables the pad
// pull-ups.
func configureI2C(cfg *config.BoardConfig) (*machine.I2C, error) {
	var bus *machine.I2C
	switch cfg.I2CBus {
	case 0:
		bus = machine.I2C0
	case 1:
		bus = machine.I2C1
	default:
		return nil, config.ErrBadBus
	}

	err := bus.Configure(machine.I2CConfig{
		Frequency: cfg.I2CFreqHz,
		SDA:       machine.Pin(cfg.SDAPin),
		SCL:       machine.Pin(cfg.SCLPin),
	})
	if err != nil {
		return nil, err
	}

	core.DebugPrintln("i2c" + strconv.Itoa(int(cfg.I2CBus)) + ": " +
		strconv.FormatUint(uint64(cfg.I2CFreqHz), 10) + " Hz on GP" +
		strconv.Itoa(int(cfg.SDAPin)) + "/GP" + strconv.Itoa(int(cfg.SCLPin)))
	return bus, nil
}
