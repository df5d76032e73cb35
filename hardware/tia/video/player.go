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

// Player is one of the two 8-bit sprite objects. The NUSIZ size value
// selects between a single stretched copy and up to three repeated copies.
type Player struct {
	// two shadow registers: current and delayed. the Delay flag (VDELPx)
	// selects which one is rendered
	Graphics [2]uint8
	Delay    bool

	// position of the first copy. always in [0, 160)
	Position uint8

	// the player bits of NUSIZx
	Size uint8

	// bit order of the 8 sprite bits on screen
	Reflect bool

	// signed motion nibble from HMPx
	Motion int
}

var _ renderer = (*Player)(nil)

// dimensions decodes the NUSIZ size value into pixel width, copy count and
// the gap between copies.
//
//	size  width  repeat  spacing
//	 0      8      1       -
//	 1      8      2       8
//	 2      8      2      24
//	 3      8      3       8
//	 4      8      2      56
//	 5     16      1       -
//	 6      8      3      24
//	 7     32      1       -
func (pl *Player) dimensions() (width, repeat, spacing int) {
	width = 8
	repeat = 1
	spacing = 8

	switch pl.Size {
	case 1:
		repeat = 2
	case 2:
		repeat = 2
		spacing = 24
	case 3:
		repeat = 3
	case 4:
		repeat = 2
		spacing = 56
	case 5:
		width = 16
	case 6:
		repeat = 3
		spacing = 24
	case 7:
		width = 32
	}

	return width, repeat, spacing
}

// render returns the player signal at visible column x.
func (pl *Player) render(x int) bool {
	width, repeat, spacing := pl.dimensions()

	gfx := pl.Graphics[0]
	if pl.Delay {
		gfx = pl.Graphics[1]
	}

	position := int(pl.Position)
	for i := 0; i < repeat; i++ {
		if x >= position && x < position+width {
			// a stretched player spends width/8 clocks on each sprite bit
			bit := (x - position) / (width / 8)
			if !pl.Reflect {
				bit = 7 - bit
			}
			return gfx&(1<<bit) != 0
		}

		position = (position + spacing + width) % 160
	}

	return false
}

// Serialize visits the player fields for the state package.
func (pl *Player) Serialize(s *state.Serializer) {
	s.U8s(pl.Graphics[:])
	s.Bool(&pl.Delay)
	s.U8(&pl.Position)
	s.U8(&pl.Size)
	s.Bool(&pl.Reflect)
	s.Int(&pl.Motion)
}
