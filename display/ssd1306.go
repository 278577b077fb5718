// Package display drives an SSD1306 OLED panel over I2C. Controller bring-up
// (Init, TinyGo only) is delegated to tinygo.org/x/drivers/ssd1306; frame
// transfers address an explicit render area so the panel memory window always
// matches the buffer being sent.
package display

import (
	"picotemp/core"

	"tinygo.org/x/drivers"
)

// I2C control bytes preceding a command or a run of display data.
const (
	controlCommand = 0x00
	controlData    = 0x40
)

// SSD1306 commands used outside the bring-up sequence.
const (
	cmdColumnAddr = 0x21
	cmdPageAddr   = 0x22
	cmdDisplayOff = 0xAE
)

// DefaultAddress is the 7-bit I2C address of most 0.96" SSD1306 modules.
const DefaultAddress = 0x3C

var (
	ErrAreaBounds   = core.ErrAreaBounds
	ErrBufferLength = core.ErrBufferLength
)

// Config describes the attached panel.
type Config struct {
	Address uint16
	Width   int16
	Height  int16
}

// Panel is an SSD1306 on an I2C bus. It implements core.Panel.
type Panel struct {
	bus    drivers.I2C
	addr   uint16
	width  int16
	height int16

	cmd  [2]byte
	data []byte
}

var _ core.Panel = (*Panel)(nil)

// New prepares a panel on an already configured bus. Zero config fields
// select a 128x64 panel at DefaultAddress.
func New(bus drivers.I2C, cfg Config) *Panel {
	if cfg.Address == 0 {
		cfg.Address = DefaultAddress
	}
	if cfg.Width == 0 {
		cfg.Width = 128
	}
	if cfg.Height == 0 {
		cfg.Height = 64
	}
	return &Panel{
		bus:    bus,
		addr:   cfg.Address,
		width:  cfg.Width,
		height: cfg.Height,
		data:   make([]byte, 1+int(cfg.Width)*int(cfg.Height)/core.PageHeight),
	}
}

// Probe switches the display off, which fails when no controller
// acknowledges at the configured address.
func (p *Panel) Probe() error {
	return p.command(cmdDisplayOff)
}

// Size returns the panel geometry in pixels.
func (p *Panel) Size() (width, height int16) {
	return p.width, p.height
}

// Area returns the render area covering the whole panel.
func (p *Panel) Area() core.RenderArea {
	return core.FullArea(p.width, p.height)
}

// BufferLength returns the number of bytes Transfer expects for area.
func (p *Panel) BufferLength(area core.RenderArea) int {
	return area.BufferLength()
}

// Transfer writes buf into the panel memory window described by area. It
// returns once the I2C transaction has completed.
func (p *Panel) Transfer(buf []byte, area core.RenderArea) error {
	if err := area.Check(buf, p.width, p.height); err != nil {
		return err
	}

	for _, c := range [...]uint8{
		cmdColumnAddr, area.StartColumn, area.EndColumn,
		cmdPageAddr, area.StartPage, area.EndPage,
	} {
		if err := p.command(c); err != nil {
			return err
		}
	}

	p.data[0] = controlData
	n := copy(p.data[1:], buf)
	return p.bus.Tx(p.addr, p.data[:1+n], nil)
}

// Blank clears the whole panel.
func (p *Panel) Blank() error {
	area := p.Area()
	return p.Transfer(make([]byte, area.BufferLength()), area)
}

func (p *Panel) command(c uint8) error {
	p.cmd[0] = controlCommand
	p.cmd[1] = c
	return p.bus.Tx(p.addr, p.cmd[:], nil)
}
