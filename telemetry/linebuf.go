package telemetry

// LineBuffer is a circular byte buffer that hands out complete
// '\n'-terminated lines from a serial byte stream.
type LineBuffer struct {
	buf   []byte
	read  int
	write int
	size  int
	line  []byte
}

// NewLineBuffer creates a LineBuffer holding up to capacity-1 bytes.
func NewLineBuffer(capacity int) *LineBuffer {
	return &LineBuffer{
		buf:  make([]byte, capacity),
		size: capacity,
		line: make([]byte, 0, capacity),
	}
}

// Write appends data and returns how many bytes fit.
func (f *LineBuffer) Write(data []byte) int {
	written := 0
	for _, b := range data {
		nextWrite := (f.write + 1) % f.size
		if nextWrite == f.read {
			break
		}
		f.buf[f.write] = b
		f.write = nextWrite
		written++
	}
	return written
}

// Available returns the number of buffered bytes.
func (f *LineBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// Free returns the number of bytes Write can still accept.
func (f *LineBuffer) Free() int {
	return f.size - f.Available() - 1
}

// Line pops the next complete line, newline included. The returned slice is
// reused by the following call.
func (f *LineBuffer) Line() ([]byte, bool) {
	n := 0
	for i := f.read; i != f.write; i = (i + 1) % f.size {
		n++
		if f.buf[i] == '\n' {
			f.line = f.line[:0]
			for j := 0; j < n; j++ {
				f.line = append(f.line, f.buf[f.read])
				f.read = (f.read + 1) % f.size
			}
			return f.line, true
		}
	}
	return nil, false
}

// Full reports whether Write can accept no more bytes. A buffer that is
// still full after every complete line has been drained holds an overlong
// line; the caller should Reset it.
func (f *LineBuffer) Full() bool {
	return f.Free() == 0
}

// Reset drops all buffered bytes.
func (f *LineBuffer) Reset() {
	f.read = 0
	f.write = 0
}
