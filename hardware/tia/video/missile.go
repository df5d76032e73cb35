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

// missile and ball widths selected by the two size bits.
var missileSizes = [4]int{1, 2, 4, 8}

// Missile is one of the two single-line objects tied to a player. The
// missile repeats with the player's NUSIZ pattern but has its own width.
type Missile struct {
	Enable bool

	// the missile bits of NUSIZx
	Size uint8

	// always in [0, 160)
	Position uint8

	// while Reset is latched (RESMPx) the missile is pinned to its player
	// and hidden
	Reset bool

	// signed motion nibble from HMMx
	Motion int

	// the player the missile takes its repeat pattern from
	player *Player
}

var _ renderer = (*Missile)(nil)

// render returns the missile signal at visible column x.
func (ms *Missile) render(x int) bool {
	if ms.Reset {
		// the centring offset grows with the player stretch
		offset := 3
		switch ms.player.Size {
		case 5:
			offset = 6
		case 7:
			offset = 10
		}
		ms.Position = uint8((int(ms.player.Position) + offset) % 160)
		return false
	}

	if !ms.Enable {
		return false
	}

	width := missileSizes[ms.Size]

	// a stretched player stretches the spacing between missile copies too
	repeatWidth := width
	switch ms.player.Size {
	case 5:
		repeatWidth *= 2
	case 7:
		repeatWidth *= 4
	}

	_, repeat, spacing := ms.player.dimensions()

	position := int(ms.Position)
	for i := 0; i < repeat; i++ {
		if x >= position && x < position+width {
			return true
		}

		position = (position + spacing + repeatWidth) % 160
	}

	return false
}

// Serialize visits the missile fields for the state package.
func (ms *Missile) Serialize(s *state.Serializer) {
	s.Bool(&ms.Enable)
	s.U8(&ms.Size)
	s.U8(&ms.Position)
	s.Bool(&ms.Reset)
	s.Int(&ms.Motion)
}
