package sim

import (
	"bufio"
	"io"

	"picotemp/core"
)

// WriteASCII draws a page-major monochrome frame as text, one line per
// pixel row, '#' for lit pixels. The frame is framed by a border.
func WriteASCII(w io.Writer, frame []byte, width, height int16) error {
	bw := bufio.NewWriter(w)
	border := func() {
		bw.WriteByte('+')
		for x := int16(0); x < width; x++ {
			bw.WriteByte('-')
		}
		bw.WriteString("+\n")
	}

	border()
	for y := int16(0); y < height; y++ {
		bw.WriteByte('|')
		for x := int16(0); x < width; x++ {
			i := int(x) + int(y/core.PageHeight)*int(width)
			if i < len(frame) && frame[i]&(1<<uint(y%core.PageHeight)) != 0 {
				bw.WriteByte('#')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteString("|\n")
	}
	border()
	return bw.Flush()
}
