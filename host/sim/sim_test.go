package sim

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picotemp/config"
	"picotemp/core"
	"picotemp/telemetry"
)

func TestSamplerCyclesCodes(t *testing.T) {
	s := NewSampler(100, 200)

	assert.Equal(t, core.ADCValue(100), s.Capture().Mean())
	assert.Equal(t, core.ADCValue(200), s.Capture().Mean())
	assert.Equal(t, core.ADCValue(100), s.Capture().Mean())
	assert.Equal(t, 3, s.Captures)
}

func TestSamplerClampsToADCRange(t *testing.T) {
	s := NewSampler(5000)
	assert.Equal(t, core.ADCValue(core.ADCMax), s.Capture()[0])

	assert.Equal(t, core.ADCValue(0), NewSampler().Capture().Mean())
}

func TestSamplerDelay(t *testing.T) {
	s := NewSampler(1)
	s.Delay = 20 * time.Millisecond

	start := time.Now()
	s.Capture()
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestMemoryPanelCopiesFrames(t *testing.T) {
	p := NewMemoryPanel(128, 32)
	buf := make([]byte, 512)
	buf[0] = 0xFF

	require.NoError(t, p.Transfer(buf, p.Area()))
	buf[0] = 0
	require.NoError(t, p.Transfer(buf, p.Area()))

	require.Len(t, p.Frames(), 2)
	assert.Equal(t, byte(0xFF), p.Frames()[0][0])
	assert.Equal(t, byte(0), p.Last()[0])
}

func TestMemoryPanelRejects(t *testing.T) {
	p := NewMemoryPanel(128, 32)
	assert.Nil(t, p.Last())

	assert.ErrorIs(t, p.Transfer(make([]byte, 10), p.Area()), core.ErrBufferLength)
	assert.ErrorIs(t, p.Transfer(make([]byte, 1024), core.FullArea(128, 64)), core.ErrAreaBounds)

	p.Err = errors.New("nack")
	assert.EqualError(t, p.Transfer(make([]byte, 512), p.Area()), "nack")
	assert.Empty(t, p.Frames())
}

func TestWriteASCII(t *testing.T) {
	frame := make([]byte, 4) // 4x8
	frame[1] = 1 << 2        // x=1, y=2

	var out bytes.Buffer
	require.NoError(t, WriteASCII(&out, frame, 4, 8))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "+----+", lines[0])
	assert.Equal(t, "|    |", lines[1])
	assert.Equal(t, "| #  |", lines[3])
	assert.Equal(t, "+----+", lines[9])
}

func TestRunEndToEnd(t *testing.T) {
	var tele bytes.Buffer
	res, err := Run(config.Default(), NewSampler(100, 812), 2, &tele)
	require.NoError(t, err)

	require.Len(t, res.Readings, 2)
	assert.Equal(t, "Temp: 390.41 C", string(core.AppendTemperature(nil, res.Readings[0].Celsius)))
	assert.Equal(t, core.ADCValue(812), res.Readings[1].Raw)

	frames := res.Panel.Frames()
	require.Len(t, frames, 3, "blank frame plus one per cycle")
	assert.Equal(t, make([]byte, 1024), frames[0])
	assert.NotEqual(t, frames[1], frames[2])

	// The reference composer draws the same first frame.
	want := core.NewComposer(core.NewFramebuffer(128, 64))
	want.DrawText(core.DefaultTextX, core.DefaultTextY, "Temp: 390.41 C")
	assert.Equal(t, want.Bytes(), frames[1])

	lines := strings.SplitAfter(tele.String(), "\n")
	require.Len(t, lines, 3) // trailing empty element
	f, err := telemetry.ParseFrame([]byte(lines[1]))
	require.NoError(t, err)
	assert.Equal(t, uint16(812), f.Raw)
}

func TestRunTelemetryDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Telemetry = false

	var tele bytes.Buffer
	_, err := Run(cfg, NewSampler(100), 1, &tele)
	require.NoError(t, err)
	assert.Zero(t, tele.Len())
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.DisplayHeight = 30

	_, err := Run(cfg, NewSampler(100), 1, nil)
	assert.ErrorIs(t, err, config.ErrBadGeometry)
}
