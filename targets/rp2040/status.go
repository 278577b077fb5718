//go:build rp2040

package main

import (
	"machine"
	"time"

	"picotemp/core"
)

const blinkPeriod = 100 * time.Millisecond

// halt logs a fatal bring-up or display error and flashes the on-board LED
// rapidly forever.
func halt(stage string, err error) {
	core.DebugPrintln("fatal: " + stage + ": " + err.Error())

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(blinkPeriod)
		led.Low()
		time.Sleep(blinkPeriod)
	}
}
