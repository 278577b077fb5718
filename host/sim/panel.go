package sim

import "picotemp/core"

// MemoryPanel records every transferred frame.
type MemoryPanel struct {
	width, height int16
	frames        [][]byte

	// Err, when set, is returned by Transfer instead of storing the frame.
	Err error
}

var _ core.Panel = (*MemoryPanel)(nil)

// NewMemoryPanel returns a panel of the given geometry.
func NewMemoryPanel(width, height int16) *MemoryPanel {
	return &MemoryPanel{width: width, height: height}
}

// Area covers the whole panel.
func (p *MemoryPanel) Area() core.RenderArea {
	return core.FullArea(p.width, p.height)
}

// Transfer implements core.Panel with the same checks as the SSD1306 panel.
func (p *MemoryPanel) Transfer(buf []byte, area core.RenderArea) error {
	if p.Err != nil {
		return p.Err
	}
	if err := area.Check(buf, p.width, p.height); err != nil {
		return err
	}
	p.frames = append(p.frames, append([]byte(nil), buf...))
	return nil
}

// Frames returns the transferred frames, oldest first.
func (p *MemoryPanel) Frames() [][]byte {
	return p.frames
}

// Last returns the most recent frame, or nil.
func (p *MemoryPanel) Last() []byte {
	if len(p.frames) == 0 {
		return nil
	}
	return p.frames[len(p.frames)-1]
}
