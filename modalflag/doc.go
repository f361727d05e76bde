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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). Modes can be thought of as different ways of running the same
// program; this tool for instance can produce a TAP container or a WAV
// rendering and each output has its own set of flags.
//
// The basic pattern is:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TAP", "WAV")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "TAP":
//		...
//	case "WAV":
//		...
//	}
//
// Once a mode has been selected, NewMode() resets the flag set so the mode
// can declare its own flags (with the Add*() functions) and call Parse()
// again on the remaining arguments. Arguments left over after the final
// Parse() are available with RemainingArgs().
//
// Help messages (in response to -help and friends) are written to the Output
// field, decorated with the mode path and the list of available sub-modes.
package modalflag
