// Package monitor decodes the firmware's telemetry frames from its USB
// console.
package monitor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"picotemp/host/serial"
	"picotemp/telemetry"
)

const (
	lineCapacity = 256
	idleBackoff  = 10 * time.Millisecond
)

// Stats counts what the monitor has seen on the console.
type Stats struct {
	Frames    int // valid telemetry frames
	BadFrames int // frame-looking lines that failed to decode
	Console   int // other firmware output
	Overflows int // lines dropped for exceeding the line buffer
}

// Monitor reads a console byte stream and yields telemetry readings.
type Monitor struct {
	src   io.Reader
	port  serial.Port
	lines *telemetry.LineBuffer
	chunk [64]byte
	stats Stats

	pending []Reading
	err     error

	// Follow treats io.EOF as "no data yet", which is how a serial read
	// timeout surfaces. Set for live ports.
	Follow bool

	// OnConsole receives firmware lines that are not telemetry frames.
	OnConsole func(line string)
}

// New returns a monitor that decodes frames from r.
func New(r io.Reader) *Monitor {
	return &Monitor{
		src:   r,
		lines: telemetry.NewLineBuffer(lineCapacity),
	}
}

// Connect opens the firmware console on device with default settings.
func Connect(device string) (*Monitor, error) {
	return ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig opens the firmware console with a custom serial config.
func ConnectWithConfig(cfg *serial.Config) (*Monitor, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, fmt.Errorf("flush %s: %w", cfg.Device, err)
	}

	m := New(port)
	m.port = port
	m.Follow = true
	return m, nil
}

// Close closes the port opened by Connect. It is a no-op for monitors
// built with New.
func (m *Monitor) Close() error {
	if m.port == nil {
		return nil
	}
	err := m.port.Close()
	m.port = nil
	return err
}

// Stats returns the counters accumulated so far.
func (m *Monitor) Stats() Stats {
	return m.stats
}

// Next blocks until the next valid frame arrives. It returns io.EOF when
// the stream ends (unless Follow is set) and ctx.Err() once ctx is done.
func (m *Monitor) Next(ctx context.Context) (Reading, error) {
	for {
		if len(m.pending) > 0 {
			r := m.pending[0]
			m.pending = m.pending[1:]
			return r, nil
		}
		if m.err != nil {
			return Reading{}, m.err
		}
		if err := ctx.Err(); err != nil {
			return Reading{}, err
		}

		n, err := m.src.Read(m.chunk[:])
		m.push(m.chunk[:n])
		switch {
		case err == nil:
		case errors.Is(err, io.EOF) && m.Follow:
			if n == 0 {
				// Idle console. Avoid spinning on a port whose reads
				// return EOF immediately.
				time.Sleep(idleBackoff)
			}
		default:
			m.err = err
		}
	}
}

// push feeds bytes into the line buffer, dropping any line longer than the
// buffer.
func (m *Monitor) push(data []byte) {
	for len(data) > 0 {
		n := m.lines.Write(data)
		data = data[n:]
		m.scan()
		if len(data) > 0 && m.lines.Full() {
			m.lines.Reset()
			m.stats.Overflows++
		}
	}
}

func (m *Monitor) scan() {
	for {
		line, ok := m.lines.Line()
		if !ok {
			return
		}
		line = bytes.TrimRight(line, "\r\n")
		if len(line) == 0 {
			continue
		}
		if !telemetry.IsFrame(line) {
			m.stats.Console++
			if m.OnConsole != nil {
				m.OnConsole(string(line))
			}
			continue
		}
		f, err := telemetry.ParseFrame(line)
		if err != nil {
			m.stats.BadFrames++
			continue
		}
		m.stats.Frames++
		m.pending = append(m.pending, FromFrame(f))
	}
}
