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

package video

import (
	"github.com/factor64/chroma2600/hardware/memory/addresses"
	"github.com/factor64/chroma2600/state"
)

// Playfield is the 20-bit half-line pattern. One playfield pixel is four
// colour clocks wide; the right half of the line either repeats or mirrors
// the left half.
type Playfield struct {
	// bits 0 to 19 correspond to the left-to-right pixel order of the
	// half-line
	Data uint32

	Mirror bool

	// when Priority is set the playfield and ball are drawn above the
	// players and missiles
	Priority bool

	// the playfield bit is computed once per four clock cell and latched
	// between recomputes
	pixel bool
}

var _ renderer = (*Playfield)(nil)

// SetSegment services a write to one of the three playfield registers. The
// register bits map onto the 20-bit pattern in the order the TIA shifts them
// out: PF0 high nibble reversed, PF1 as written, PF2 reversed.
func (pf *Playfield) SetSegment(address uint16, value uint8) {
	switch address {
	case addresses.PF0:
		for i := 0; i < 4; i++ {
			pf.setBit(i, value&(0x10<<i) != 0)
		}
	case addresses.PF1:
		for i := 0; i < 8; i++ {
			pf.setBit(4+i, value&(0x80>>i) != 0)
		}
	case addresses.PF2:
		for i := 0; i < 8; i++ {
			pf.setBit(12+i, value&(0x01<<i) != 0)
		}
	}
}

func (pf *Playfield) setBit(n int, on bool) {
	if on {
		pf.Data |= 1 << n
	} else {
		pf.Data &^= 1 << n
	}
}

func (pf *Playfield) bit(n int) bool {
	return pf.Data&(1<<n) != 0
}

// render returns the playfield signal at visible column x.
func (pf *Playfield) render(x int) bool {
	if x%4 == 0 {
		pos := x >> 2
		if pos < 20 || !pf.Mirror {
			pf.pixel = pf.bit(pos % 20)
		} else {
			pf.pixel = pf.bit(19 - (pos % 20))
		}
	}

	return pf.pixel
}

// Serialize visits the playfield fields for the state package.
func (pf *Playfield) Serialize(s *state.Serializer) {
	s.U32(&pf.Data)
	s.Bool(&pf.Mirror)
	s.Bool(&pf.Priority)
	s.Bool(&pf.pixel)
}
