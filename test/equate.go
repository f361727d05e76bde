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

package test

import (
	"bytes"
	"testing"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but if a is of type uint16, b can be
// uint16 or int. The reason for this is that a literal number value is of
// type int. It is very convenient to write something like this, without
// having to cast the expected number value:
//
//	var addr uint16
//	addr = someFunction()
//	test.Equate(t, addr, 0x0804)
//
// This is by no means a comprehensive comparison function. As it is however,
// it's good enough.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T))", v)

	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (%v  - wanted nil)", v, v)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case uint8:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint8(ev) {
				t.Errorf("equation of type %T failed (%#02x  - wanted %#02x)", v, v, ev)
			}
		case uint8:
			if v != ev {
				t.Errorf("equation of type %T failed (%#02x  - wanted %#02x)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case uint16:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint16(ev) {
				t.Errorf("equation of type %T failed (%#04x  - wanted %#04x)", v, v, ev)
			}
		case uint16:
			if v != ev {
				t.Errorf("equation of type %T failed (%#04x  - wanted %#04x)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case []byte:
		switch ev := expectedValue.(type) {
		case []byte:
			if !bytes.Equal(v, ev) {
				t.Errorf("equation of type %T failed (% 02x  - wanted % 02x)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s  - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v  - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
	}
}
