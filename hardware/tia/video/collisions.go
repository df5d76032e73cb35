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

// Collisions is the 15-bit register file covering every unordered pair of
// graphics objects. A bit latches when both objects are active on the same
// colour clock and stays latched until a CXCLR write.
type Collisions struct {
	M0P1 bool
	M0P0 bool
	M1P0 bool
	M1P1 bool
	P0PF bool
	P0BL bool
	P1PF bool
	P1BL bool
	M0PF bool
	M0BL bool
	M1PF bool
	M1BL bool
	BLPF bool
	P0P1 bool
	M0M1 bool
}

// Update latches a collision bit for every pair of objects active at the
// current colour clock.
func (col *Collisions) Update(p0, p1, m0, m1, bl, pf bool) {
	if m0 && p1 {
		col.M0P1 = true
	}
	if m0 && p0 {
		col.M0P0 = true
	}
	if m1 && p0 {
		col.M1P0 = true
	}
	if m1 && p1 {
		col.M1P1 = true
	}
	if p0 && pf {
		col.P0PF = true
	}
	if p0 && bl {
		col.P0BL = true
	}
	if p1 && pf {
		col.P1PF = true
	}
	if p1 && bl {
		col.P1BL = true
	}
	if m0 && pf {
		col.M0PF = true
	}
	if m0 && bl {
		col.M0BL = true
	}
	if m1 && pf {
		col.M1PF = true
	}
	if m1 && bl {
		col.M1BL = true
	}
	if bl && pf {
		col.BLPF = true
	}
	if p0 && p1 {
		col.P0P1 = true
	}
	if m0 && m1 {
		col.M0M1 = true
	}
}

// Clear resets every collision latch. The only way a latch clears.
func (col *Collisions) Clear() {
	*col = Collisions{}
}

// Register packs the collision latches into the read register at the
// specified address. The two latches of each register occupy bits 7 and 6,
// per the hardware register map. Addresses outside the collision file return
// zero.
func (col *Collisions) Register(address uint16) uint8 {
	var v uint8

	pack := func(hi, lo bool) uint8 {
		var v uint8
		if hi {
			v |= 0x80
		}
		if lo {
			v |= 0x40
		}
		return v
	}

	switch address {
	case addresses.CXM0P:
		v = pack(col.M0P1, col.M0P0)
	case addresses.CXM1P:
		v = pack(col.M1P0, col.M1P1)
	case addresses.CXP0FB:
		v = pack(col.P0PF, col.P0BL)
	case addresses.CXP1FB:
		v = pack(col.P1PF, col.P1BL)
	case addresses.CXM0FB:
		v = pack(col.M0PF, col.M0BL)
	case addresses.CXM1FB:
		v = pack(col.M1PF, col.M1BL)
	case addresses.CXBLPF:
		v = pack(col.BLPF, false)
	case addresses.CXPPMM:
		v = pack(col.P0P1, col.M0M1)
	}

	return v
}

// Serialize visits the collision latches for the state package.
func (col *Collisions) Serialize(s *state.Serializer) {
	s.Bool(&col.M0P1)
	s.Bool(&col.M0P0)
	s.Bool(&col.M1P0)
	s.Bool(&col.M1P1)
	s.Bool(&col.P0PF)
	s.Bool(&col.P0BL)
	s.Bool(&col.P1PF)
	s.Bool(&col.P1BL)
	s.Bool(&col.M0PF)
	s.Bool(&col.M0BL)
	s.Bool(&col.M1PF)
	s.Bool(&col.M1BL)
	s.Bool(&col.BLPF)
	s.Bool(&col.P0P1)
	s.Bool(&col.M0M1)
}
