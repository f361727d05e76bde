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
	"github.com/BurntSushi/toml"
	"github.com/reidrac/mkc64tap/curated"
	"github.com/reidrac/mkc64tap/logger"
)

// InvalidTiming is returned when a timing profile cannot be used. To be used
// with curated.Is().
const InvalidTiming = "kernal: timing profile: %v"

// Timing gathers the pulse counts that only need to fall inside the ROM
// loader's tolerance window. Unlike the pulse widths these are not exact
// protocol values; the defaults were taken from a known-good reference tape
// and a profile file can override them for recalibration.
//
// All counts are numbers of short pulses, except PauseCycles which is a
// length in clock cycles (written with the container's long-pulse escape).
type Timing struct {
	// pilot tone before the header block
	LeaderPulses int `toml:"leader_pulses"`

	// pilot tone before the data block
	DataPilotPulses int `toml:"data_pilot_pulses"`

	// gap between the two copies of a block
	GapPulses int `toml:"gap_pulses"`

	// gap between the header copy pair and the pause that follows it
	PostHeaderGapPulses int `toml:"post_header_gap_pulses"`

	// trailer after the data block and after the end-of-tape block
	TrailerPulses int `toml:"trailer_pulses"`

	// silence before the leader and before the data pilot
	PauseCycles int `toml:"pause_cycles"`
}

// DefaultTiming returns the timing values from the reference tape.
func DefaultTiming() Timing {
	return Timing{
		LeaderPulses:        0x6a00,
		DataPilotPulses:     0x1500,
		GapPulses:           0x4f,
		PostHeaderGapPulses: 0x4e,
		TrailerPulses:       0x388,
		PauseCycles:         0x050014,
	}
}

// LoadTiming reads a TOML timing profile. Values not present in the profile
// keep their defaults.
func LoadTiming(filename string) (Timing, error) {
	tm := DefaultTiming()

	md, err := toml.DecodeFile(filename, &tm)
	if err != nil {
		return Timing{}, curated.Errorf(InvalidTiming, err)
	}

	for _, k := range md.Undecoded() {
		logger.Logf("kernal", "timing profile: unrecognised key: %s", k.String())
	}

	if err := tm.validate(); err != nil {
		return Timing{}, err
	}

	logger.Logf("kernal", "timing profile: %s", filename)

	return tm, nil
}

func (tm Timing) validate() error {
	ok := tm.LeaderPulses > 0 && tm.DataPilotPulses > 0 &&
		tm.GapPulses > 0 && tm.PostHeaderGapPulses > 0 &&
		tm.TrailerPulses > 0 && tm.PauseCycles > 0
	if !ok {
		return curated.Errorf(InvalidTiming, "all pulse counts must be positive")
	}
	return nil
}
