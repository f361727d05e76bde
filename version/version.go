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

// Package version records the version of the program and the vcs state it
// was built from.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "mkc64tap"

// the version number of the most recent release. set at build time through
// the linker
var number string

// Version returns the version string and the vcs revision. The version
// string is "unreleased" when the program was built outside of a release
// build; the revision is empty when no vcs information is available (when
// running with "go run ." for example).
func Version() (string, string) {
	version := number
	if version == "" {
		version = "unreleased"
	}

	var revision string
	if info, ok := debug.ReadBuildInfo(); ok {
		var modified bool
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
		if modified {
			revision += "+dirty"
		}
	}

	return version, revision
}
