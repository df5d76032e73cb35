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

package specification

import (
	"image/color"
	"math"
)

// Color resolves a palette index to an RGB value for the specification.
// The index is the value of a COLUxx register: seven significant bits, with
// the high four selecting the hue and bits 3-1 the luminance (bit 0 is
// ignored by the hardware). The palette is generated from the hue angle and
// luminance level rather than taken from a measured table; the difference
// between NTSC and PAL is the hue distribution.
func (spec Spec) Color(index uint8) color.RGBA {
	hue := int(index>>4) & 0x0f
	lum := int(index>>1) & 0x07

	// luminance rises in eight steps
	y := 0.15 + 0.75*float64(lum)/7.0

	if hue == 0 {
		// hue zero is the grey scale
		v := clampComponent(y)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}

	// the remaining hues are spread around the colour wheel. PAL starts at a
	// different angle and winds the opposite way, a fair approximation of
	// how the two standards decode chroma
	var angle float64
	if spec.ID == "PAL" {
		angle = (4.7 - float64(hue-1)*2.0*math.Pi/15.0)
	} else {
		angle = (0.1 + float64(hue-1)*2.0*math.Pi/15.0)
	}

	const saturation = 0.23
	i := saturation * math.Cos(angle)
	q := saturation * math.Sin(angle)

	// YIQ to RGB
	r := y + 0.956*i + 0.619*q
	g := y - 0.272*i - 0.647*q
	b := y - 1.106*i + 1.703*q

	return color.RGBA{
		R: clampComponent(r),
		G: clampComponent(g),
		B: clampComponent(b),
		A: 255,
	}
}

func clampComponent(v float64) uint8 {
	if v < 0.0 {
		return 0
	}
	if v > 1.0 {
		return 255
	}
	return uint8(v * 255.0)
}
