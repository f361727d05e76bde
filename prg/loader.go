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

package prg

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reidrac/mkc64tap/curated"
	"github.com/reidrac/mkc64tap/logger"
)

// EmptyInput is returned when a PRG file is too short to carry the load
// address prefix. To be used with curated.Is().
const EmptyInput = "prg: %s: file too short for a load address"

// Program is a program image as read from a PRG file.
type Program struct {
	// filename of the file the image was read from
	Filename string

	// the name the program will have on tape. derived from the filename
	// unless overridden. truncation and conversion to PETSCII happen at
	// encoding time, not here
	Name string

	// SHA1 hash of the file contents (including the load address prefix)
	Hash string

	// the memory location the loader must place the first byte of Data at
	LoadAddress uint16

	// the program data, with the load address prefix stripped. treated as
	// read-only once loaded
	Data []byte
}

// Load reads a PRG file. The name argument overrides the on-tape name of the
// program; the empty string means the name is derived from the filename, with
// any extension removed.
func Load(filename string, name string) (*Program, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("prg: %v", err)
	}

	if len(d) < 2 {
		return nil, curated.Errorf(EmptyInput, filename)
	}

	if name == "" {
		name = nameFromFilename(filename)
	}

	p := &Program{
		Filename:    filename,
		Name:        name,
		Hash:        fmt.Sprintf("%x", sha1.Sum(d)),
		LoadAddress: uint16(d[0]) | (uint16(d[1]) << 8),
		Data:        d[2:],
	}

	logger.Logf("prg", "%s: %d bytes", p.Filename, len(p.Data))
	logger.Logf("prg", "%s: load address: %#04x", p.Filename, p.LoadAddress)
	logger.Logf("prg", "%s: hash: %s", p.Filename, p.Hash)

	return p, nil
}

// nameFromFilename returns the base of the filename with the extension
// removed. Unlike filepath.Ext() a leading dot is not treated as the start of
// an extension.
func nameFromFilename(filename string) string {
	n := filepath.Base(filename)
	if i := strings.LastIndex(n, "."); i > 0 {
		n = n[:i]
	}
	return n
}
