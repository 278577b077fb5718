package core

// PageHeight is the number of pixel rows packed into one framebuffer byte.
const PageHeight = 8

// RenderArea describes the window of display memory covered by a transfer,
// in columns and 8-row pages, both ends inclusive.
type RenderArea struct {
	StartColumn uint8
	EndColumn   uint8
	StartPage   uint8
	EndPage     uint8
}

// FullArea returns the area covering a whole width x height panel.
func FullArea(width, height int16) RenderArea {
	return RenderArea{
		StartColumn: 0,
		EndColumn:   uint8(width - 1),
		StartPage:   0,
		EndPage:     uint8(height/PageHeight - 1),
	}
}

// Columns returns the number of columns in the area.
func (a RenderArea) Columns() int {
	return int(a.EndColumn) - int(a.StartColumn) + 1
}

// Pages returns the number of pages in the area.
func (a RenderArea) Pages() int {
	return int(a.EndPage) - int(a.StartPage) + 1
}

// BufferLength is the number of bytes a transfer of this area carries.
func (a RenderArea) BufferLength() int {
	if a.EndColumn < a.StartColumn || a.EndPage < a.StartPage {
		return 0
	}
	return a.Columns() * a.Pages()
}

// Check reports whether a transfer of buf into this area is valid on a
// width x height panel.
func (a RenderArea) Check(buf []byte, width, height int16) error {
	if int(a.EndColumn) >= int(width) || int(a.EndPage) >= int(height)/PageHeight ||
		a.BufferLength() == 0 {
		return ErrAreaBounds
	}
	if len(buf) != a.BufferLength() {
		return ErrBufferLength
	}
	return nil
}
