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

package tape_test

import (
	"bytes"
	"testing"

	"github.com/reidrac/mkc64tap/curated"
	"github.com/reidrac/mkc64tap/tape"
	"github.com/reidrac/mkc64tap/test"
)

func TestWritePulse(t *testing.T) {
	w := tape.NewWriter()

	// a pulse of 0x30 units
	test.ExpectedSuccess(t, w.WritePulse(0x30*8))
	test.Equate(t, w.Size(), 1)

	// truncating quantization. 0x183 cycles is 48.375 units
	test.ExpectedSuccess(t, w.WritePulse(0x183))
	test.Equate(t, w.Size(), 2)

	// the longest pulse that fits in a single data byte
	test.ExpectedSuccess(t, w.WritePulse(255*8+7))
	test.Equate(t, w.Size(), 3)

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, w.Finalize(buf))
	test.Equate(t, buf.Bytes()[20:], []byte{0x30, 0x30, 0xff})
}

func TestLongPulseEscape(t *testing.T) {
	w := tape.NewWriter()

	// one unit longer than a single data byte can express
	test.ExpectedSuccess(t, w.WritePulse(256*8))

	// shorter than a single unit. would quantize to the escape marker so
	// must take the escape form
	test.ExpectedSuccess(t, w.WritePulse(7))

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, w.Finalize(buf))
	test.Equate(t, buf.Bytes()[20:], []byte{
		0x00, 0x00, 0x08, 0x00,
		0x00, 0x07, 0x00, 0x00,
	})
}

func TestInvalidPulse(t *testing.T) {
	w := tape.NewWriter()

	err := w.WritePulse(0)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, tape.InvalidPulse), true)

	err = w.WritePulse(-100)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, tape.InvalidPulse), true)

	// too long for the 24 bit escape field
	err = w.WritePulse(0x1000000)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, tape.InvalidPulse), true)

	// nothing should have been written
	test.Equate(t, w.Size(), 0)
}

func TestFinalize(t *testing.T) {
	w := tape.NewWriter()
	test.ExpectedSuccess(t, w.WritePulse(0x30*8))
	test.ExpectedSuccess(t, w.WritePulse(0x42*8))

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, w.Finalize(buf))

	b := buf.Bytes()
	test.Equate(t, len(b), 22)
	test.Equate(t, b[:12], []byte("C64-TAPE-RAW"))

	// no escape used so the container is version 0
	test.Equate(t, b[12], 0x00)

	// reserved bytes
	test.Equate(t, b[13:16], []byte{0x00, 0x00, 0x00})

	// little-endian pulse data length
	test.Equate(t, b[16:20], []byte{0x02, 0x00, 0x00, 0x00})

	test.Equate(t, b[20:], []byte{0x30, 0x42})
}

func TestFinalizeVersion1(t *testing.T) {
	w := tape.NewWriter()
	test.ExpectedSuccess(t, w.WritePulse(0x050014))

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, w.Finalize(buf))

	b := buf.Bytes()
	test.Equate(t, b[12], 0x01)
	test.Equate(t, b[16:20], []byte{0x04, 0x00, 0x00, 0x00})
	test.Equate(t, b[20:], []byte{0x00, 0x14, 0x00, 0x05})
}

func TestDeclaredLengthMatchesEmitted(t *testing.T) {
	w := tape.NewWriter()
	for i := 0; i < 1000; i++ {
		test.ExpectedSuccess(t, w.WritePulse(0x30*8))
	}
	test.ExpectedSuccess(t, w.WritePulse(0x050014))

	buf := &bytes.Buffer{}
	test.ExpectedSuccess(t, w.Finalize(buf))

	b := buf.Bytes()
	declared := int(b[16]) | int(b[17])<<8 | int(b[18])<<16 | int(b[19])<<24
	test.Equate(t, declared, len(b)-20)
	test.Equate(t, declared, w.Size())
}
