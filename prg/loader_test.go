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

package prg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reidrac/mkc64tap/curated"
	"github.com/reidrac/mkc64tap/prg"
	"github.com/reidrac/mkc64tap/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.prg")
	err := os.WriteFile(fn, []byte{0x01, 0x08, 0xaa, 0xbb, 0xcc}, 0644)
	test.ExpectedSuccess(t, err)

	p, err := prg.Load(fn, "")
	test.ExpectedSuccess(t, err)

	test.Equate(t, p.LoadAddress, 0x0801)
	test.Equate(t, p.Data, []byte{0xaa, 0xbb, 0xcc})

	// name derived from the filename, extension removed
	test.Equate(t, p.Name, "game")

	if p.Hash == "" {
		t.Error("expected hash of file contents")
	}
}

func TestLoadNameOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.prg")
	err := os.WriteFile(fn, []byte{0x00, 0xc0}, 0644)
	test.ExpectedSuccess(t, err)

	p, err := prg.Load(fn, "OTHER NAME")
	test.ExpectedSuccess(t, err)

	test.Equate(t, p.Name, "OTHER NAME")
	test.Equate(t, p.LoadAddress, 0xc000)

	// a PRG that is nothing but the load address is an empty program, not
	// an error
	test.Equate(t, len(p.Data), 0)
}

func TestLoadTooShort(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "short.prg")
	err := os.WriteFile(fn, []byte{0x01}, 0644)
	test.ExpectedSuccess(t, err)

	_, err = prg.Load(fn, "")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, prg.EmptyInput), true)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := prg.Load(filepath.Join(t.TempDir(), "no-such-file.prg"), "")
	test.ExpectedFailure(t, err)
}
