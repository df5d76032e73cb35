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

package test_test

import (
	"testing"

	"github.com/factor64/chroma2600/test"
)

func TestExpectedSuccess(t *testing.T) {
	test.ExpectedSuccess(t, true)
	var err error
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, nil)
}

func TestExpectedFailure(t *testing.T) {
	test.ExpectedFailure(t, false)
}

func TestEquate(t *testing.T) {
	test.Equate(t, 10, 5+5)
	test.Equate(t, true, true)
	test.Equate(t, "ab", "a"+"b")
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 11, 10, 0.1)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.Equate(t, tw.Compare(""), true)

	n, err := tw.Write([]byte("hello"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 5)
	test.Equate(t, tw.Compare("hello"), true)

	tw.Clear()
	test.Equate(t, tw.Compare(""), true)
}
