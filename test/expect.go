// This file is part of Chroma2600.
//
// Chroma2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chroma2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chroma2600.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"testing"
)

// ExpectedSuccess tests the value of v for a success condition. What that
// condition is depends on the type of v:
//
//	bool   -> true
//	error  -> nil
//	nil    -> success by definition
//
// Any other type causes the test to fail.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}
	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for ExpectedSuccess()", v)
		return false
	}

	return true
}

// ExpectedFailure tests the value of v for a failure condition. The
// conditions are the inverse of those described for ExpectedSuccess().
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}
	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}
	case nil:
		t.Errorf("expected failure (nil)")
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectedFailure()", v)
		return false
	}

	return true
}

// Equate compares value v with the expected value. Both values must be of the
// same type.
func Equate(t *testing.T, v, expected interface{}) bool {
	t.Helper()

	if v != expected {
		t.Errorf("equation of %T type failed: %v does not equal %v", v, v, expected)
		return false
	}

	return true
}

// ExpectApproximate compares value v against the expected value, with a
// tolerance expressed as a fraction of the expected value.
func ExpectApproximate(t *testing.T, v, expected float64, tolerance float64) bool {
	t.Helper()

	bot := expected - (expected * tolerance)
	top := expected + (expected * tolerance)
	if v < bot || v > top {
		t.Errorf("approximation failed: %v is outside [%v, %v]", v, bot, top)
		return false
	}

	return true
}
