package core

// Sampler produces one batch of raw sensor samples per call.
//
// Capture blocks until the whole batch has landed in memory and has no
// timeout: if the converter never produces data the caller stays blocked.
// The returned batch belongs to the sampler and is only valid until the next
// Capture.
type Sampler interface {
	Capture() *RawBatch
}

// Renderer composes one frame of text. DrawText must not keep text after it
// returns: the loop passes a view of its own reusable buffer.
type Renderer interface {
	Clear()
	DrawText(x, y int16, text string)
	Bytes() []byte
}

// Panel pushes a composed frame to the display. Transfer returns once the bus
// transaction has finished.
type Panel interface {
	Transfer(buf []byte, area RenderArea) error
}
