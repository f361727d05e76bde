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

// headerBlock describes one tape directory entry: where a program loads, how
// long it is and what it is called. The end-of-tape marker is a headerBlock
// too, with zeroed addresses and an empty name.
type headerBlock struct {
	blockType byte
	start     uint16
	end       uint16
	name      string
}

// encode returns the header block bytes as transmitted, without the checksum.
// The checksum is added during block transmission like for any other block.
//
// The name field is space-padded, never null-padded. The ROM loader compares
// names against space-padded search strings so a null-padded name would never
// match.
func (h headerBlock) encode() []byte {
	b := make([]byte, 0, headerLen)
	b = append(b, h.blockType)
	b = append(b, byte(h.start), byte(h.start>>8))
	b = append(b, byte(h.end), byte(h.end>>8))

	name := petscii(h.name)
	if len(name) > nameFieldLen {
		name = name[:nameFieldLen]
	}
	b = append(b, name...)
	for i := len(name); i < nameFieldLen; i++ {
		b = append(b, ' ')
	}

	for i := 0; i < headerBodyLen; i++ {
		b = append(b, ' ')
	}

	return b
}

// petscii converts an ASCII string to unshifted PETSCII. Letters are
// uppercased (uppercase ASCII letters coincide with unshifted PETSCII) and
// anything outside the printable range becomes a space. That's crude but
// filenames are the only text this program puts on tape.
func petscii(s string) []byte {
	b := make([]byte, 0, len(s))
	for _, c := range []byte(s) {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 0x20 || c > 0x5f {
			c = ' '
		}
		b = append(b, c)
	}
	return b
}
