package sim

import (
	"fmt"
	"io"

	"picotemp/config"
	"picotemp/core"
)

// Result is what a simulated run produced.
type Result struct {
	Readings []core.Reading
	Panel    *MemoryPanel
}

// Run drives the real acquisition loop for the given number of cycles
// against sampler and an in-memory panel sized from cfg. The panel is
// blanked first, as on the board. Telemetry frames go to telemetry when it
// is non-nil and cfg enables them.
func Run(cfg *config.BoardConfig, sampler core.Sampler, cycles int, telemetry io.Writer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	panel := NewMemoryPanel(cfg.DisplayWidth, cfg.DisplayHeight)
	area := panel.Area()
	if err := panel.Transfer(make([]byte, area.BufferLength()), area); err != nil {
		return nil, fmt.Errorf("blank panel: %w", err)
	}

	composer := core.NewComposer(core.NewFramebuffer(cfg.DisplayWidth, cfg.DisplayHeight))
	loop := core.NewLoop(sampler, composer, panel, area)
	loop.TextX, loop.TextY = cfg.TextX, cfg.TextY
	if cfg.Telemetry {
		loop.Telemetry = telemetry
	}

	res := &Result{Panel: panel}
	for i := 0; i < cycles; i++ {
		r, err := loop.Cycle()
		if err != nil {
			return res, fmt.Errorf("cycle %d: %w", i+1, err)
		}
		res.Readings = append(res.Readings, r)
	}
	return res, nil
}
