// This file is part of mkc64tap.
//
// mkc64tap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mkc64tap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mkc64tap.  If not, see <https://www.gnu.org/licenses/>.

package tape

import (
	"io"

	"github.com/reidrac/mkc64tap/curated"
)

// InvalidPulse is returned when a pulse length cannot be represented in the
// container. To be used with curated.Is().
const InvalidPulse = "tape: invalid pulse length (%d cycles)"

// magic signature at the start of every container file.
const magic = "C64-TAPE-RAW"

// a pulse data byte counts cycles in units of eight.
const cyclesPerUnit = 8

// longest pulse representable with the long-pulse escape (24 bits of cycles).
const maxPulseCycles = 0xffffff

// Writer accumulates pulse data for a single tape image. The zero value is
// not usable; use NewWriter().
//
// A Writer is exclusively owned by one encoding run. It is not safe for
// concurrent use.
type Writer struct {
	pulses []byte

	// whether the long-pulse escape has been used. decides the version byte
	// written by Finalize()
	escaped bool
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter() *Writer {
	return &Writer{
		pulses: make([]byte, 0, 1024),
	}
}

// WritePulse adds a single pulse of the given length, measured in system
// clock cycles, to the pulse data.
//
// Lengths are quantized to units of eight cycles, truncating. A pulse that
// does not fit in a single data byte after quantization is written in the
// long-pulse escape form. Pulses shorter than eight cycles would quantize to
// a zero byte, which is the escape marker, so they take the escape form too.
func (w *Writer) WritePulse(cycles int) error {
	if cycles < 1 || cycles > maxPulseCycles {
		return curated.Errorf(InvalidPulse, cycles)
	}

	u := cycles / cyclesPerUnit
	if u >= 1 && u <= 255 {
		w.pulses = append(w.pulses, byte(u))
		return nil
	}

	w.pulses = append(w.pulses, 0x00,
		byte(cycles), byte(cycles>>8), byte(cycles>>16))
	w.escaped = true

	return nil
}

// Size returns the number of pulse data bytes written so far. Note that this
// is not the same as the number of pulses because of the long-pulse escape.
func (w *Writer) Size() int {
	return len(w.pulses)
}

// Finalize writes the container header and the accumulated pulse data to
// output.
func (w *Writer) Finalize(output io.Writer) error {
	hdr := make([]byte, 0, 20)
	hdr = append(hdr, []byte(magic)...)
	if w.escaped {
		hdr = append(hdr, 0x01)
	} else {
		hdr = append(hdr, 0x00)
	}
	hdr = append(hdr, 0x00, 0x00, 0x00)

	l := len(w.pulses)
	hdr = append(hdr, byte(l), byte(l>>8), byte(l>>16), byte(l>>24))

	if _, err := output.Write(hdr); err != nil {
		return curated.Errorf("tape: %v", err)
	}
	if _, err := output.Write(w.pulses); err != nil {
		return curated.Errorf("tape: %v", err)
	}

	return nil
}
