// Package telemetry encodes and decodes the per-cycle reading that the
// firmware prints on its USB console:
//
//	Temperature: 57.10 C (Raw ADC: 812) *XXXX
//
// The four upper-case hex digits after " *" are the CRC16 of everything before them.
package telemetry

import (
	"errors"
	"strconv"
	"strings"
)

const (
	prefix    = "Temperature: "
	rawPrefix = " C (Raw ADC: "
	rawSuffix = ")"
	crcMark   = " *"

	// MaxFrame is the longest frame AppendFrame can produce, newline included.
	MaxFrame = len(prefix) + len("-1479.80") + len(rawPrefix) + len("65535") +
		len(rawSuffix) + len(crcMark) + 4 + 1
)

var (
	ErrMalformed = errors.New("telemetry: malformed frame")
	ErrChecksum  = errors.New("telemetry: checksum mismatch")
)

// Frame is one decoded reading.
type Frame struct {
	Celsius float32
	Raw     uint16
}

const hexDigits = "0123456789ABCDEF"

// IsFrame reports whether line starts like a telemetry frame. Other console
// output, such as firmware log lines, does not.
func IsFrame(line []byte) bool {
	return strings.HasPrefix(string(line), prefix)
}

// AppendFrame appends the encoded frame, terminated by '\n', to dst.
// With a dst of capacity MaxFrame it does not allocate.
func AppendFrame(dst []byte, celsius float32, raw uint16) []byte {
	start := len(dst)
	dst = append(dst, prefix...)
	dst = strconv.AppendFloat(dst, float64(celsius), 'f', 2, 64)
	dst = append(dst, rawPrefix...)
	dst = strconv.AppendUint(dst, uint64(raw), 10)
	dst = append(dst, rawSuffix...)
	crc := CRC16(dst[start:])
	dst = append(dst, crcMark...)
	dst = append(dst,
		hexDigits[crc>>12&0xF],
		hexDigits[crc>>8&0xF],
		hexDigits[crc>>4&0xF],
		hexDigits[crc&0xF],
	)
	return append(dst, '\n')
}

// ParseFrame decodes one line. A trailing "\n" or "\r\n" is accepted.
func ParseFrame(line []byte) (Frame, error) {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	if len(line) < len(crcMark)+4 {
		return Frame{}, ErrMalformed
	}
	body := line[:len(line)-len(crcMark)-4]
	if string(line[len(body):len(body)+len(crcMark)]) != crcMark {
		return Frame{}, ErrMalformed
	}
	want, err := strconv.ParseUint(string(line[len(line)-4:]), 16, 16)
	if err != nil {
		return Frame{}, ErrMalformed
	}
	if CRC16(body) != uint16(want) {
		return Frame{}, ErrChecksum
	}

	s := string(body)
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return Frame{}, ErrMalformed
	}
	s = s[len(prefix):]
	i := strings.Index(s, rawPrefix)
	if i < 0 {
		return Frame{}, ErrMalformed
	}
	celsius, err := strconv.ParseFloat(s[:i], 32)
	if err != nil {
		return Frame{}, ErrMalformed
	}
	s = s[i+len(rawPrefix):]
	if len(s) < len(rawSuffix)+1 || s[len(s)-len(rawSuffix):] != rawSuffix {
		return Frame{}, ErrMalformed
	}
	raw, err := strconv.ParseUint(s[:len(s)-len(rawSuffix)], 10, 16)
	if err != nil {
		return Frame{}, ErrMalformed
	}
	return Frame{Celsius: float32(celsius), Raw: uint16(raw)}, nil
}
