package monitor

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picotemp/telemetry"
)

func frame(celsius float32, raw uint16) string {
	return string(telemetry.AppendFrame(nil, celsius, raw))
}

func TestNextDecodesFrames(t *testing.T) {
	stream := "adc: dma channel 0 claimed\n" +
		frame(57.10, 812) +
		"ready after 123 us\r\n" +
		frame(390.41, 100)

	var console []string
	m := New(strings.NewReader(stream))
	m.OnConsole = func(line string) { console = append(console, line) }

	r, err := m.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint16(812), r.Raw)
	assert.InDelta(t, 57.10, r.Celsius(), 1e-4)

	r, err = m.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint16(100), r.Raw)
	assert.InDelta(t, 390.41, r.Celsius(), 1e-3)

	_, err = m.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, []string{"adc: dma channel 0 claimed", "ready after 123 us"}, console)
	assert.Equal(t, Stats{Frames: 2, Console: 2}, m.Stats())
}

func TestNextCountsBadFrames(t *testing.T) {
	good := frame(20, 900)
	corrupt := strings.Replace(good, "900", "901", 1)
	m := New(strings.NewReader(corrupt + "Temperature: garbage\n" + good))

	r, err := m.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint16(900), r.Raw)
	assert.Equal(t, 2, m.Stats().BadFrames)
	assert.Equal(t, 1, m.Stats().Frames)
}

func TestNextDropsOverlongLine(t *testing.T) {
	stream := strings.Repeat("x", 300) + "\n" + frame(25, 870)
	m := New(strings.NewReader(stream))

	r, err := m.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint16(870), r.Raw)
	assert.Equal(t, 1, m.Stats().Overflows)
}

func TestNextIgnoresIncompleteTrailingLine(t *testing.T) {
	// A frame without a trailing newline is incomplete and never surfaces.
	m := New(strings.NewReader(frame(30, 850) + "Temperature: 31"))

	_, err := m.Next(context.Background())
	require.NoError(t, err)
	_, err = m.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, m.Stats().Frames)
}

// timeoutReader mimics a serial port with a read timeout: empty reads
// surface as io.EOF until data is queued.
type timeoutReader struct {
	chunks []string
	idle   int
}

func (r *timeoutReader) Read(p []byte) (int, error) {
	if r.idle > 0 {
		r.idle--
		return 0, io.EOF
	}
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if r.chunks[0] == "" {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func TestFollowSurvivesReadTimeouts(t *testing.T) {
	f := frame(42.5, 760)
	src := &timeoutReader{chunks: []string{f[:10], f[10:]}, idle: 3}
	m := New(src)
	m.Follow = true

	r, err := m.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint16(760), r.Raw)
}

func TestFollowStopsOnContext(t *testing.T) {
	m := New(&timeoutReader{})
	m.Follow = true

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := m.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCloseWithoutPort(t *testing.T) {
	m := New(strings.NewReader(""))
	assert.NoError(t, m.Close())
}

func TestConnectRejectsEmptyDevice(t *testing.T) {
	_, err := Connect("")
	assert.Error(t, err)
}
