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

// Package kernal encodes program images into the pulse sequence expected by
// the tape loader in the C64 KERNAL ROM.
//
// The ROM loader is fixed-function hardware-era code. It cannot negotiate
// anything: the pulse widths, the byte markers, the sync countdowns, the
// redundant block copies and the checksums in this package are a contract
// with that loader and there is no tolerance for drift. The pulse widths and
// sync sequences are therefore plain constants. The pilot, gap and trailer
// lengths on the other hand only need to fall inside the loader's tolerance
// window; they are gathered in the Timing type and can be recalibrated
// against a reference capture (see LoadTiming).
//
// Every bit is transmitted as a pair of pulses and every byte is preceded by
// a byte marker and followed by an odd parity bit. Every block is transmitted
// twice, the second copy announced by a different sync countdown, so the
// loader can repair read errors in the first copy with bytes from the second.
//
// The encoder writes to anything implementing the PulseWriter interface. The
// usual destination is a tape.Writer but the wavexport package implements the
// interface too.
package kernal
