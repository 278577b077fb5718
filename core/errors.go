package core

import "errors"

var (
	// ErrNoDMAChannel is returned by sampler initialization when every DMA
	// channel is already claimed.
	ErrNoDMAChannel = errors.New("no free DMA channel")

	// Panel transfer errors.
	ErrAreaBounds   = errors.New("display: render area outside panel")
	ErrBufferLength = errors.New("display: buffer length does not match render area")
)
