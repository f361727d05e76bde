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

// Pulse widths used by the ROM loader, in system clock cycles. The values are
// multiples of eight so they survive the container's eight-cycle quantization
// exactly.
const (
	PulseShort  = 0x30 * 8
	PulseMedium = 0x42 * 8
	PulseLong   = 0x56 * 8
)

// Header block type tags.
const (
	blockRelocatable    = 0x01
	blockNonRelocatable = 0x03
	blockEndOfTape      = 0x05
)

// Header block field widths. A header block is always headerLen bytes before
// the checksum: the type tag, two address words, the name field and the
// space-filled body.
const (
	nameFieldLen  = 16
	headerBodyLen = 171
	headerLen     = 1 + 2 + 2 + nameFieldLen + headerBodyLen
)

// Sync countdown start values. A sync sequence counts down over nine bytes:
// 0x89..0x81 announces the first copy of a block, 0x09..0x01 the repeat copy.
const (
	syncFirstCopy  = 0x89
	syncRepeatCopy = 0x09
	syncLen        = 9
)

// the highest memory address a program byte can be loaded to.
const maxLoadAddress = 0xffff
