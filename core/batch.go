package core

import "golang.org/x/exp/constraints"

// BatchSize is the number of ADC samples moved by one DMA transfer.
const BatchSize = 10

// ADCValue is a raw 12-bit conversion result as the ADC FIFO delivers it
// (right-aligned in a 16-bit word).
type ADCValue = uint16

// RawBatch is the DMA destination buffer. The sampler that owns it rewrites
// it in place on every capture.
type RawBatch [BatchSize]ADCValue

// Mean returns the truncated arithmetic mean of the batch.
func (b *RawBatch) Mean() ADCValue {
	return Mean(b[:])
}

// Mean returns the arithmetic mean of samples using integer division.
// Accumulation happens in 64 bits so a full batch of the largest sample
// type cannot overflow. An empty slice yields zero.
func Mean[T constraints.Unsigned](samples []T) T {
	if len(samples) == 0 {
		return 0
	}
	var sum uint64
	for _, s := range samples {
		sum += uint64(s)
	}
	return T(sum / uint64(len(samples)))
}
