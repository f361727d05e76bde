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

package kernal

import (
	"github.com/reidrac/mkc64tap/curated"
	"github.com/reidrac/mkc64tap/logger"
	"github.com/reidrac/mkc64tap/prg"
)

// AddressOverflow is returned when a program image does not fit in memory.
// To be used with curated.Is().
const AddressOverflow = "kernal: %s: %d bytes at load address %#04x runs past the end of memory"

// PulseWriter is the destination for encoded pulses. Pulse lengths are in
// system clock cycles.
//
// Implemented by tape.Writer and wavexport.Writer.
type PulseWriter interface {
	WritePulse(cycles int) error
}

// Encoder translates program images into the ROM loader pulse sequence,
// writing pulses to a PulseWriter as it goes. An Encoder holds no state
// between calls other than the destination and the timing values; encoding
// never reads back anything it has written.
type Encoder struct {
	pw     PulseWriter
	timing Timing
}

// NewEncoder is the preferred method of initialisation for the Encoder type.
func NewEncoder(pw PulseWriter, timing Timing) *Encoder {
	return &Encoder{
		pw:     pw,
		timing: timing,
	}
}

// EncodeProgram writes the full tape sequence for one program: a header
// block describing the program, followed by a data block carrying the
// program bytes. Each block is transmitted as a copy pair.
//
// A program whose data would run past the end of the 16 bit address space is
// rejected. An empty program is fine; the ROM loader accepts a data block of
// zero bytes and a header with equal start and end addresses.
func (enc *Encoder) EncodeProgram(p *prg.Program) error {
	if int(p.LoadAddress)+len(p.Data) > maxLoadAddress {
		return curated.Errorf(AddressOverflow, p.Name, len(p.Data), p.LoadAddress)
	}

	hdr := headerBlock{
		blockType: blockNonRelocatable,
		start:     p.LoadAddress,
		end:       p.LoadAddress + uint16(len(p.Data)),
		name:      p.Name,
	}

	logger.Logf("kernal", "%s: header: start %#04x, end %#04x", p.Name, hdr.start, hdr.end)

	// silence then the long leader tone, giving the loader's clock recovery
	// time to lock on
	if err := enc.writePause(); err != nil {
		return err
	}
	if err := enc.writePilot(enc.timing.LeaderPulses); err != nil {
		return err
	}

	if err := enc.writeCopyPair(hdr.encode()); err != nil {
		return err
	}

	// the data block gets its own silence and (shorter) pilot tone
	if err := enc.writePilot(enc.timing.PostHeaderGapPulses); err != nil {
		return err
	}
	if err := enc.writePause(); err != nil {
		return err
	}
	if err := enc.writePilot(enc.timing.DataPilotPulses); err != nil {
		return err
	}

	if err := enc.writeCopyPair(p.Data); err != nil {
		return err
	}

	return enc.writePilot(enc.timing.TrailerPulses)
}

// EncodeEndOfTape writes the block that tells the loader to stop searching:
// a header block with the end-of-tape type tag, zeroed addresses and an
// empty name.
//
// There is no pilot tone; the trailer of the preceding block serves. Calling
// this on an empty tape is harmless but pointless.
func (enc *Encoder) EncodeEndOfTape() error {
	hdr := headerBlock{
		blockType: blockEndOfTape,
	}

	if err := enc.writeCopyPair(hdr.encode()); err != nil {
		return err
	}

	return enc.writePilot(enc.timing.TrailerPulses)
}

// writeCopyPair transmits a block twice: sync countdown, block bytes,
// checksum and end-of-data marker for each copy, with a gap between the
// copies. Both copies carry identical bytes and an identical checksum; the
// loader cross-validates them.
func (enc *Encoder) writeCopyPair(data []byte) error {
	if err := enc.writeSync(syncFirstCopy); err != nil {
		return err
	}
	if err := enc.writeBlock(data); err != nil {
		return err
	}

	if err := enc.writePilot(enc.timing.GapPulses); err != nil {
		return err
	}

	if err := enc.writeSync(syncRepeatCopy); err != nil {
		return err
	}
	return enc.writeBlock(data)
}

// writeBlock transmits the block bytes, the checksum and the end-of-data
// marker. The checksum is the running XOR of every block byte, computed in
// transmission order.
func (enc *Encoder) writeBlock(data []byte) error {
	check := byte(0)
	for _, b := range data {
		check ^= b
		if err := enc.writeByte(b); err != nil {
			return err
		}
	}

	if err := enc.writeByte(check); err != nil {
		return err
	}

	// end-of-data marker
	if err := enc.pw.WritePulse(PulseLong); err != nil {
		return err
	}
	return enc.pw.WritePulse(PulseShort)
}

// writeSync transmits the nine byte countdown announcing a block copy.
func (enc *Encoder) writeSync(start byte) error {
	for i := 0; i < syncLen; i++ {
		if err := enc.writeByte(start - byte(i)); err != nil {
			return err
		}
	}
	return nil
}

// writeByte transmits the byte marker, the eight data bits starting with the
// least significant, and the parity bit. The parity bit makes the total
// number of one bits odd.
func (enc *Encoder) writeByte(v byte) error {
	if err := enc.pw.WritePulse(PulseLong); err != nil {
		return err
	}
	if err := enc.pw.WritePulse(PulseMedium); err != nil {
		return err
	}

	check := byte(1)
	for i := 0; i < 8; i++ {
		bit := (v >> i) & 0x01
		check ^= bit
		if err := enc.writeBit(bit); err != nil {
			return err
		}
	}

	return enc.writeBit(check)
}

// writeBit transmits a single bit as a pulse pair.
func (enc *Encoder) writeBit(bit byte) error {
	a, b := PulseShort, PulseMedium
	if bit != 0 {
		a, b = PulseMedium, PulseShort
	}

	if err := enc.pw.WritePulse(a); err != nil {
		return err
	}
	return enc.pw.WritePulse(b)
}

// writePilot transmits a run of short pulses. Pilot tones, inter-copy gaps
// and trailers are all the same thing at the pulse level, differing only in
// length.
func (enc *Encoder) writePilot(n int) error {
	for i := 0; i < n; i++ {
		if err := enc.pw.WritePulse(PulseShort); err != nil {
			return err
		}
	}
	return nil
}

// writePause transmits the inter-section silence. The length is far beyond
// what a single pulse data byte can hold so it always takes the long-pulse
// escape form in the container.
func (enc *Encoder) writePause() error {
	return enc.pw.WritePulse(enc.timing.PauseCycles)
}
