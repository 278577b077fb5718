package core

import (
	"io"
	"time"
	"unsafe"

	"picotemp/telemetry"
)

// CycleInterval is the fixed pause between acquisition cycles.
const CycleInterval = 1000 * time.Millisecond

// Text anchor of the temperature line, in pixels from the top-left corner.
const (
	DefaultTextX = 5
	DefaultTextY = 5
)

// Reading is the result of one acquisition cycle.
type Reading struct {
	Raw     ADCValue
	Celsius float32
}

// Loop runs the capture, convert, render, transfer cycle.
type Loop struct {
	sampler  Sampler
	renderer Renderer
	panel    Panel
	area     RenderArea

	// TextX and TextY anchor the temperature line.
	TextX, TextY int16

	// Telemetry, when set, receives one telemetry frame per cycle.
	Telemetry io.Writer

	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)

	text  [TempTextMax]byte
	frame [telemetry.MaxFrame]byte
}

// NewLoop wires the pipeline stages together. area is fixed for the
// lifetime of the loop.
func NewLoop(s Sampler, r Renderer, p Panel, area RenderArea) *Loop {
	return &Loop{
		sampler:  s,
		renderer: r,
		panel:    p,
		area:     area,
		TextX:    DefaultTextX,
		TextY:    DefaultTextY,
		Sleep:    time.Sleep,
	}
}

// Cycle runs one acquisition cycle without the trailing sleep. Rendering
// starts only after Capture has returned, and the frame is transferred only
// after it has been fully drawn.
func (l *Loop) Cycle() (Reading, error) {
	batch := l.sampler.Capture()
	r := Reading{Raw: batch.Mean()}
	r.Celsius = ToCelsius(r.Raw)

	text := AppendTemperature(l.text[:0], r.Celsius)
	l.renderer.Clear()
	// text aliases l.text, which is not rewritten before the next cycle.
	l.renderer.DrawText(l.TextX, l.TextY, unsafe.String(&text[0], len(text)))

	if err := l.panel.Transfer(l.renderer.Bytes(), l.area); err != nil {
		return r, err
	}

	if l.Telemetry != nil {
		if _, err := l.Telemetry.Write(telemetry.AppendFrame(l.frame[:0], r.Celsius, r.Raw)); err != nil {
			DebugPrintln("telemetry: " + err.Error())
		}
	}
	return r, nil
}

// Run cycles forever. It only returns when the display transfer fails.
func (l *Loop) Run() error {
	for {
		if _, err := l.Cycle(); err != nil {
			DebugPrintln("display: transfer failed: " + err.Error())
			return err
		}
		l.Sleep(CycleInterval)
	}
}
