// Package sim runs the acquisition loop on the host with a simulated sensor
// and an in-memory display.
package sim

import (
	"time"

	"picotemp/core"
)

// Sampler hands out batches of fixed raw codes. Each Capture fills the
// whole batch with the next code from the list, wrapping around.
type Sampler struct {
	codes []core.ADCValue
	next  int
	batch core.RawBatch

	// Delay is slept inside Capture, standing in for the conversion time.
	Delay time.Duration

	// Captures counts completed batches.
	Captures int
}

var _ core.Sampler = (*Sampler)(nil)

// NewSampler returns a sampler cycling through codes. With no codes it
// reports a raw reading of 0.
func NewSampler(codes ...core.ADCValue) *Sampler {
	if len(codes) == 0 {
		codes = []core.ADCValue{0}
	}
	for i, c := range codes {
		if c > core.ADCMax {
			codes[i] = core.ADCMax
		}
	}
	return &Sampler{codes: codes}
}

// Capture implements core.Sampler.
func (s *Sampler) Capture() *core.RawBatch {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	code := s.codes[s.next]
	s.next = (s.next + 1) % len(s.codes)
	for i := range s.batch {
		s.batch[i] = code
	}
	s.Captures++
	return &s.batch
}
