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
	"github.com/factor64/chroma2600/state"
)

// Ball is the single-line object that shares the playfield colour.
type Ball struct {
	// two shadow registers: current and delayed. the Delay flag (VDELBL)
	// selects which one is rendered
	Enable [2]bool
	Delay  bool

	// the ball bits of CTRLPF
	Size uint8

	// always in [0, 160)
	Position uint8

	// signed motion nibble from HMBL
	Motion int
}

var _ renderer = (*Ball)(nil)

// render returns the ball signal at visible column x.
func (bl *Ball) render(x int) bool {
	enabled := bl.Enable[0]
	if bl.Delay {
		enabled = bl.Enable[1]
	}
	if !enabled {
		return false
	}

	return x >= int(bl.Position) && x < int(bl.Position)+missileSizes[bl.Size]
}

// Serialize visits the ball fields for the state package.
func (bl *Ball) Serialize(s *state.Serializer) {
	s.Bools(bl.Enable[:])
	s.Bool(&bl.Delay)
	s.U8(&bl.Size)
	s.U8(&bl.Position)
	s.Int(&bl.Motion)
}
