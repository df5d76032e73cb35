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

package state_test

import (
	"testing"

	"github.com/factor64/chroma2600/state"
	"github.com/factor64/chroma2600/test"
)

type widget struct {
	a uint8
	b int
	c bool
	d []uint8
}

func (w *widget) Serialize(s *state.Serializer) {
	s.U8(&w.a)
	s.Int(&w.b)
	s.Bool(&w.c)
	s.U8s(w.d)
}

func TestRoundTrip(t *testing.T) {
	w := widget{a: 0x40, b: -228, c: true, d: []uint8{1, 2, 3}}

	sv := state.NewSaver()
	w.Serialize(sv)
	test.ExpectedSuccess(t, sv.Err())

	x := widget{d: make([]uint8, 3)}
	ld := state.NewLoader(sv.Data())
	x.Serialize(ld)
	test.ExpectedSuccess(t, ld.Err())

	test.Equate(t, x.a, w.a)
	test.Equate(t, x.b, w.b)
	test.Equate(t, x.c, w.c)
	test.Equate(t, x.d[0], w.d[0])
	test.Equate(t, x.d[2], w.d[2])
}

func TestTruncation(t *testing.T) {
	w := widget{d: []uint8{}}

	sv := state.NewSaver()
	w.Serialize(sv)

	// remove a byte from the recorded data and expect the load to fail
	x := widget{d: []uint8{}}
	ld := state.NewLoader(sv.Data()[:len(sv.Data())-1])
	x.Serialize(ld)
	test.ExpectedFailure(t, ld.Err())
}
