//go:build rp2040

package main

import (
	"device/rp"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"

	"picotemp/core"
)

// RP2040 DMA block memory map (datasheet section 2.5.7)
const (
	dmaBase          = 0x50000000
	dmaChannelStride = 0x40
	dmaChannels      = 12

	dmaINTE0 = dmaBase + 0x404 // Interrupt enables for IRQ 0
	dmaINTS0 = dmaBase + 0x40C // Interrupt status for IRQ 0, write 1 to clear
)

// CTRL register fields
const (
	dmaCtrlEN           = 1 << 0
	dmaCtrlDataSizeHalf = 1 << 2 // DATA_SIZE = 16-bit
	dmaCtrlIncrRead     = 1 << 4
	dmaCtrlIncrWrite    = 1 << 5
	dmaCtrlChainToPos   = 11
	dmaCtrlTreqSelPos   = 15
	dmaCtrlBusy         = 1 << 24

	dreqADC = 36
)

// dmaChannel overlays one channel's register block, including the three
// alias layouts. Writing the last register of an alias starts the channel.
type dmaChannel struct {
	readAddr          volatile.Register32 // 0x00
	writeAddr         volatile.Register32 // 0x04
	transCount        volatile.Register32 // 0x08
	ctrlTrig          volatile.Register32 // 0x0C
	al1Ctrl           volatile.Register32 // 0x10
	al1ReadAddr       volatile.Register32 // 0x14
	al1WriteAddr      volatile.Register32 // 0x18
	al1TransCountTrig volatile.Register32 // 0x1C
	al2Ctrl           volatile.Register32 // 0x20
	al2TransCount     volatile.Register32 // 0x24
	al2ReadAddr       volatile.Register32 // 0x28
	al2WriteAddrTrig  volatile.Register32 // 0x2C
}

var (
	dmaInte0 = (*volatile.Register32)(unsafe.Pointer(uintptr(dmaINTE0)))
	dmaInts0 = (*volatile.Register32)(unsafe.Pointer(uintptr(dmaINTS0)))

	// dmaClaimed has one bit per channel handed out by claimDMAChannel.
	dmaClaimed uint16

	// dmaDone collects completion bits latched by the IRQ handler.
	dmaDone volatile.Register32

	dmaIRQEnabled bool
)

func dmaChannelRegs(ch uint8) *dmaChannel {
	return (*dmaChannel)(unsafe.Pointer(uintptr(dmaBase + uint32(ch)*dmaChannelStride)))
}

// claimDMAChannel reserves the lowest free channel.
func claimDMAChannel() (uint8, error) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)

	for ch := uint8(0); ch < dmaChannels; ch++ {
		if dmaClaimed&(1<<ch) == 0 {
			dmaClaimed |= 1 << ch
			return ch, nil
		}
	}
	return 0, core.ErrNoDMAChannel
}

// enableDMAIRQ routes completion of channel ch to DMA_IRQ_0.
func enableDMAIRQ(ch uint8) {
	if !dmaIRQEnabled {
		irq := interrupt.New(rp.IRQ_DMA_IRQ_0, dmaIRQHandler)
		irq.Enable()
		dmaIRQEnabled = true
	}
	dmaInts0.Set(1 << ch)
	dmaInte0.SetBits(1 << ch)
}

func dmaIRQHandler(interrupt.Interrupt) {
	ints := dmaInts0.Get()
	dmaInts0.Set(ints)
	dmaDone.SetBits(ints)
}
