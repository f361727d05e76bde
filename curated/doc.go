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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages in this project export the patterns of the
// errors they return, meaning the caller can differentiate error conditions
// without string matching. For example:
//
//	err := enc.EncodeProgram(p)
//	if curated.Is(err, kernal.AddressOverflow) {
//		// the program image doesn't fit in memory
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain rather than only at the outermost error.
package curated
