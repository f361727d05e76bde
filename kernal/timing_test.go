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
	"os"
	"path/filepath"
	"testing"

	"github.com/reidrac/mkc64tap/curated"
	"github.com/reidrac/mkc64tap/kernal"
	"github.com/reidrac/mkc64tap/test"
)

func TestDefaultTiming(t *testing.T) {
	tm := kernal.DefaultTiming()
	test.Equate(t, tm.LeaderPulses, 0x6a00)
	test.Equate(t, tm.DataPilotPulses, 0x1500)
	test.Equate(t, tm.GapPulses, 0x4f)
	test.Equate(t, tm.PostHeaderGapPulses, 0x4e)
	test.Equate(t, tm.TrailerPulses, 0x388)
	test.Equate(t, tm.PauseCycles, 0x050014)
}

func TestLoadTiming(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "timing.toml")
	err := os.WriteFile(fn, []byte("leader_pulses = 1000\ngap_pulses = 64\n"), 0644)
	test.ExpectedSuccess(t, err)

	tm, err := kernal.LoadTiming(fn)
	test.ExpectedSuccess(t, err)

	// overridden values
	test.Equate(t, tm.LeaderPulses, 1000)
	test.Equate(t, tm.GapPulses, 64)

	// everything else keeps the defaults
	test.Equate(t, tm.DataPilotPulses, 0x1500)
	test.Equate(t, tm.TrailerPulses, 0x388)
}

func TestLoadTimingInvalid(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "timing.toml")
	err := os.WriteFile(fn, []byte("leader_pulses = -1\n"), 0644)
	test.ExpectedSuccess(t, err)

	_, err = kernal.LoadTiming(fn)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, kernal.InvalidTiming), true)

	// a file that isn't TOML at all
	err = os.WriteFile(fn, []byte("{not toml"), 0644)
	test.ExpectedSuccess(t, err)

	_, err = kernal.LoadTiming(fn)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, kernal.InvalidTiming), true)
}
