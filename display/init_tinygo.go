//go:build tinygo

package display

import (
	"tinygo.org/x/drivers/ssd1306"

	"picotemp/core"
)

// Init checks that the controller acknowledges on the bus, then runs the
// controller power-up sequence.
func (p *Panel) Init() error {
	if err := p.Probe(); err != nil {
		return err
	}
	dev := ssd1306.NewI2C(p.bus)
	dev.Configure(ssd1306.Config{
		Address:  p.addr,
		Width:    p.width,
		Height:   p.height,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	core.DebugPrintln("display: ssd1306 configured")
	return nil
}
