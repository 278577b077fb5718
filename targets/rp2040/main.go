//go:build rp2040

// Command rp2040 is the temperature monitor firmware: it samples the on-die
// sensor through ADC and DMA and shows the averaged reading on an SSD1306.
package main

import (
	"machine"
	"strconv"

	"picotemp/config"
	"picotemp/core"
	"picotemp/display"
)

func main() {
	core.SetDebugWriter(func(s string) { println(s) })
	core.SetDebugEnabled(true)

	cfg := config.Default()

	bus, err := configureI2C(cfg)
	if err != nil {
		halt("i2c", err)
	}

	panel := display.New(bus, display.Config{
		Address: cfg.DisplayAddr,
		Width:   cfg.DisplayWidth,
		Height:  cfg.DisplayHeight,
	})
	if err := panel.Init(); err != nil {
		halt("display", err)
	}
	if err := panel.Blank(); err != nil {
		halt("display", err)
	}

	sampler := NewDMASampler()
	if err := sampler.Init(); err != nil {
		halt("adc", err)
	}

	composer := core.NewComposer(core.NewFramebuffer(cfg.DisplayWidth, cfg.DisplayHeight))
	loop := core.NewLoop(sampler, composer, panel, panel.Area())
	loop.TextX, loop.TextY = cfg.TextX, cfg.TextY
	if cfg.Telemetry {
		loop.Telemetry = machine.Serial
	}

	core.DebugPrintln("ready after " + strconv.FormatUint(uptimeMicros(), 10) + " us")

	if err := loop.Run(); err != nil {
		halt("display", err)
	}
}
