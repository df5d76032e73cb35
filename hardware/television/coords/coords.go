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

// Package coords represents a moment on the television screen as a frame,
// scanline and clock triplet.
package coords

import "fmt"

// TelevisionCoords represents the state of the TIA at a moment in time.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

// FrameIsUndefined is used to indicate that the Frame field of a
// TelevisionCoords value should not take part in comparisons.
const FrameIsUndefined = -1

func (c TelevisionCoords) String() string {
	if c.Frame == FrameIsUndefined {
		return fmt.Sprintf("Scanline: %d, Clock: %d", c.Scanline, c.Clock)
	}
	return fmt.Sprintf("Frame: %d, Scanline: %d, Clock: %d", c.Frame, c.Scanline, c.Clock)
}

// Equal compares two instances of TelevisionCoords. If the Frame field of
// either instance is undefined then the Frame fields are not compared.
func Equal(A, B TelevisionCoords) bool {
	if A.Frame == FrameIsUndefined || B.Frame == FrameIsUndefined {
		return A.Scanline == B.Scanline && A.Clock == B.Clock
	}
	return A.Frame == B.Frame && A.Scanline == B.Scanline && A.Clock == B.Clock
}

// GreaterThan compares two instances of TelevisionCoords and returns true if
// A is later than B.
func GreaterThan(A, B TelevisionCoords) bool {
	if A.Frame != B.Frame {
		return A.Frame > B.Frame
	}
	if A.Scanline != B.Scanline {
		return A.Scanline > B.Scanline
	}
	return A.Clock > B.Clock
}
