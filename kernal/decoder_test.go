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

package kernal_test

import (
	"fmt"

	"github.com/reidrac/mkc64tap/kernal"
)

// recorder implements the kernal.PulseWriter interface, capturing raw pulse
// lengths for inspection.
type recorder struct {
	pulses []int
}

func (r *recorder) WritePulse(cycles int) error {
	if cycles < 1 {
		return fmt.Errorf("recorder: invalid pulse length (%d cycles)", cycles)
	}
	r.pulses = append(r.pulses, cycles)
	return nil
}

// decodedBlock is one block copy recovered from the pulse stream.
type decodedBlock struct {
	payload  []byte
	checksum byte

	// whether the block copy was announced by the repeat-copy sync countdown
	repeat bool
}

// tapeReader is a reference decoder for the pulse stream, following the same
// bit/byte/sync rules as the ROM loader. It works on exact pulse lengths;
// this is fine for conformance testing because both the recorder and the
// container preserve the encoder's pulse lengths exactly.
type tapeReader struct {
	pulses []int
	pos    int
}

func xorReduce(p []byte) byte {
	c := byte(0)
	for _, b := range p {
		c ^= b
	}
	return c
}

// skipToMarker advances past pilot/gap/pause pulses. Returns false when the
// pulse stream is exhausted.
func (tr *tapeReader) skipToMarker() bool {
	for tr.pos < len(tr.pulses) {
		p := tr.pulses[tr.pos]
		if p == kernal.PulseLong {
			return true
		}
		if p == kernal.PulseShort || p > kernal.PulseLong {
			// pilot pulse or pause
			tr.pos++
			continue
		}
		return false
	}
	return false
}

// readMarker reads a pulse pair that must be either the byte marker or the
// end-of-data marker. Returns true when data follows.
func (tr *tapeReader) readMarker() (bool, error) {
	if tr.pos+2 > len(tr.pulses) {
		return false, fmt.Errorf("decode: unexpected end of pulses at marker (position %d)", tr.pos)
	}

	a := tr.pulses[tr.pos]
	b := tr.pulses[tr.pos+1]
	tr.pos += 2

	if a != kernal.PulseLong {
		return false, fmt.Errorf("decode: bad marker pulse %d (position %d)", a, tr.pos-2)
	}

	switch b {
	case kernal.PulseMedium:
		return true, nil
	case kernal.PulseShort:
		return false, nil
	}

	return false, fmt.Errorf("decode: bad marker pulse %d (position %d)", b, tr.pos-1)
}

func (tr *tapeReader) readBit() (byte, error) {
	if tr.pos+2 > len(tr.pulses) {
		return 0, fmt.Errorf("decode: unexpected end of pulses at bit (position %d)", tr.pos)
	}

	a := tr.pulses[tr.pos]
	b := tr.pulses[tr.pos+1]
	tr.pos += 2

	if a == kernal.PulseShort && b == kernal.PulseMedium {
		return 0, nil
	}
	if a == kernal.PulseMedium && b == kernal.PulseShort {
		return 1, nil
	}

	return 0, fmt.Errorf("decode: bad bit pulses (%d, %d) (position %d)", a, b, tr.pos-2)
}

// readByte reads the eight data bits and the parity bit. The byte marker
// must already have been consumed.
func (tr *tapeReader) readByte() (byte, error) {
	var v byte
	check := byte(1)

	for i := 0; i < 8; i++ {
		bit, err := tr.readBit()
		if err != nil {
			return 0, err
		}
		v |= bit << i
		check ^= bit
	}

	parity, err := tr.readBit()
	if err != nil {
		return 0, err
	}
	if parity != check {
		return 0, fmt.Errorf("decode: parity error for byte %#02x (position %d)", v, tr.pos)
	}

	return v, nil
}

// readBlock reads one block copy: sync countdown, payload, checksum,
// end-of-data. A nil return without an error means the pulse stream is
// exhausted.
func (tr *tapeReader) readBlock() (*decodedBlock, error) {
	if !tr.skipToMarker() {
		return nil, nil
	}

	// every byte up to the end-of-data marker
	var raw []byte
	for {
		data, err := tr.readMarker()
		if err != nil {
			return nil, err
		}
		if !data {
			break
		}

		v, err := tr.readByte()
		if err != nil {
			return nil, err
		}
		raw = append(raw, v)
	}

	// the first nine bytes are the sync countdown
	if len(raw) < 10 {
		return nil, fmt.Errorf("decode: block too short (%d bytes)", len(raw))
	}

	var repeat bool
	switch raw[0] {
	case 0x89:
		repeat = false
	case 0x09:
		repeat = true
	default:
		return nil, fmt.Errorf("decode: bad sync countdown start %#02x", raw[0])
	}
	for i := 1; i < 9; i++ {
		if raw[i] != raw[0]-byte(i) {
			return nil, fmt.Errorf("decode: bad sync countdown byte %#02x (wanted %#02x)", raw[i], raw[0]-byte(i))
		}
	}

	return &decodedBlock{
		payload:  raw[9 : len(raw)-1],
		checksum: raw[len(raw)-1],
		repeat:   repeat,
	}, nil
}

// decodeTape decodes every block copy in the pulse stream.
func decodeTape(pulses []int) ([]decodedBlock, error) {
	tr := &tapeReader{pulses: pulses}

	var blocks []decodedBlock
	for {
		b, err := tr.readBlock()
		if err != nil {
			return nil, err
		}
		if b == nil {
			return blocks, nil
		}
		blocks = append(blocks, *b)
	}
}
