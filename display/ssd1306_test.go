package display

import (
	"bytes"
	"errors"
	"testing"

	"picotemp/core"
)

// recordingBus captures every I2C write.
type recordingBus struct {
	addrs  []uint16
	writes [][]byte
	err    error
}

func (b *recordingBus) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.addrs = append(b.addrs, addr)
	b.writes = append(b.writes, append([]byte(nil), w...))
	return nil
}

func TestNewDefaults(t *testing.T) {
	p := New(&recordingBus{}, Config{})
	w, h := p.Size()
	if w != 128 || h != 64 {
		t.Errorf("Size() = %dx%d, want 128x64", w, h)
	}
	if got := p.BufferLength(p.Area()); got != 1024 {
		t.Errorf("BufferLength = %d, want 1024", got)
	}
}

func TestProbeSendsDisplayOff(t *testing.T) {
	bus := &recordingBus{}
	p := New(bus, Config{Address: 0x3D})

	if err := p.Probe(); err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if len(bus.writes) != 1 || bus.addrs[0] != 0x3D {
		t.Fatalf("Probe wrote %d times to %v", len(bus.writes), bus.addrs)
	}
	if !bytes.Equal(bus.writes[0], []byte{controlCommand, 0xAE}) {
		t.Errorf("probe write = % x, want display-off command", bus.writes[0])
	}
}

func TestProbeReportsMissingPanel(t *testing.T) {
	errNack := errors.New("i2c nack")
	p := New(&recordingBus{err: errNack}, Config{})
	if err := p.Probe(); !errors.Is(err, errNack) {
		t.Errorf("Probe() = %v, want %v", err, errNack)
	}
}

func TestTransferErrorsMatchCore(t *testing.T) {
	if ErrAreaBounds != core.ErrAreaBounds || ErrBufferLength != core.ErrBufferLength {
		t.Error("display errors differ from the core sentinels")
	}
}

func TestTransferAddressesArea(t *testing.T) {
	bus := &recordingBus{}
	p := New(bus, Config{})
	area := p.Area()

	frame := make([]byte, area.BufferLength())
	frame[0], frame[len(frame)-1] = 0x81, 0x18

	if err := p.Transfer(frame, area); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	want := [][]byte{
		{controlCommand, 0x21}, {controlCommand, 0}, {controlCommand, 127},
		{controlCommand, 0x22}, {controlCommand, 0}, {controlCommand, 7},
	}
	if len(bus.writes) != len(want)+1 {
		t.Fatalf("got %d writes, want %d", len(bus.writes), len(want)+1)
	}
	for i, w := range want {
		if !bytes.Equal(bus.writes[i], w) {
			t.Errorf("write %d = % x, want % x", i, bus.writes[i], w)
		}
	}
	data := bus.writes[len(want)]
	if data[0] != controlData {
		t.Errorf("data control byte = %#x, want %#x", data[0], controlData)
	}
	if !bytes.Equal(data[1:], frame) {
		t.Error("data payload differs from frame")
	}
}

func TestTransferPartialArea(t *testing.T) {
	bus := &recordingBus{}
	p := New(bus, Config{})
	area := core.RenderArea{StartColumn: 10, EndColumn: 19, StartPage: 2, EndPage: 3}

	if err := p.Transfer(make([]byte, 20), area); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if got := len(bus.writes[len(bus.writes)-1]); got != 21 {
		t.Errorf("data write is %d bytes, want 21", got)
	}
}

func TestTransferRejectsMismatch(t *testing.T) {
	p := New(&recordingBus{}, Config{})

	if err := p.Transfer(make([]byte, 10), p.Area()); !errors.Is(err, ErrBufferLength) {
		t.Errorf("short buffer: err = %v, want ErrBufferLength", err)
	}
	outside := core.RenderArea{StartColumn: 0, EndColumn: 200, StartPage: 0, EndPage: 7}
	if err := p.Transfer(make([]byte, outside.BufferLength()), outside); !errors.Is(err, ErrAreaBounds) {
		t.Errorf("oversized area: err = %v, want ErrAreaBounds", err)
	}
}

func TestBlankSendsZeros(t *testing.T) {
	bus := &recordingBus{}
	p := New(bus, Config{Width: 128, Height: 32})

	if err := p.Blank(); err != nil {
		t.Fatalf("Blank failed: %v", err)
	}
	data := bus.writes[len(bus.writes)-1]
	if len(data) != 1+512 {
		t.Fatalf("blank payload is %d bytes, want 513", len(data))
	}
	for i, b := range data[1:] {
		if b != 0 {
			t.Fatalf("blank byte %d = %#x", i, b)
		}
	}
}
