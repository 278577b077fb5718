package monitor

import (
	"fmt"

	"periph.io/x/conn/v3/physic"

	"picotemp/core"
	"picotemp/telemetry"
)

// Reading is one decoded telemetry frame in physical units.
type Reading struct {
	Temperature physic.Temperature
	Voltage     physic.ElectricPotential
	Raw         uint16
}

// FromFrame converts a frame. The voltage is recomputed from the raw code
// with the firmware's conversion.
func FromFrame(f telemetry.Frame) Reading {
	return Reading{
		Temperature: celsius(float64(f.Celsius)),
		Voltage:     physic.ElectricPotential(float64(core.ToVolts(f.Raw)) * float64(physic.Volt)),
		Raw:         f.Raw,
	}
}

// Celsius returns the temperature in degrees Celsius.
func (r Reading) Celsius() float64 {
	return float64(r.Temperature-physic.ZeroCelsius) / float64(physic.Celsius)
}

func (r Reading) String() string {
	return fmt.Sprintf("%.2f °C  raw %4d  %s", r.Celsius(), r.Raw, r.Voltage)
}

func celsius(c float64) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(c*float64(physic.Celsius))
}
