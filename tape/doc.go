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

// Package tape implements the C64-TAPE-RAW (.tap) container format.
//
// The container is a 20 byte header followed by the pulse data:
//
//	offset  size  field
//	0       12    "C64-TAPE-RAW"
//	12      1     version (0 or 1)
//	13      3     reserved (zero)
//	16      4     pulse data length (little-endian)
//	20      -     pulse data
//
// Each byte of pulse data represents the length of one pulse, measured in
// units of eight system clock cycles. A zero byte is an escape for pulses too
// long to be represented in a single byte: the following three bytes are the
// pulse length in clock cycles, little-endian. The escape is a version 1
// feature; the Writer selects the version byte accordingly.
//
// The Writer accumulates pulse data in memory. The container header can only
// be written once the total length of the pulse data is known, so nothing is
// committed to the output until Finalize().
package tape
