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

// Package specification defines the television geometries the TIA can drive.
// There are two specifications, NTSC and PAL, differing in the number of
// scanlines, the vertical position of the visible window and the colour
// clock frequency.
package specification

import (
	"github.com/factor64/chroma2600/hardware/clocks"
)

// Horizontal timing is common to both specifications.
const (
	// ClksScanline is the number of colour clocks in a single scanline,
	// including the horizontal blanking period.
	ClksScanline = 228

	// ClksHBlank is the number of colour clocks of horizontal blank at the
	// start of every scanline.
	ClksHBlank = 68

	// ClksVisible is the number of visible colour clocks in a scanline.
	ClksVisible = ClksScanline - ClksHBlank

	// WidthPlane is the width of the output pixel plane. The visible pixels
	// sit inside a ten pixel margin on either side, left at zero for
	// overscan safety.
	WidthPlane = 180

	// PlaneMargin is the offset of the first visible pixel in a row of the
	// output plane.
	PlaneMargin = 10
)

// SamplesPerScanline is the number of audio samples generated for every
// scanline. Two samples per scanline at the NTSC scan rate gives the
// reference sample frequency of 31403Hz.
const SamplesPerScanline = 2

// AudioSampleFreq is the nominal frequency of the mono audio stream.
const AudioSampleFreq = 31403

// Spec is the collection of values that define a television specification.
type Spec struct {
	ID string

	// the total number of scanlines in a frame, including vertical blanking
	VLines int

	// the first scanline of the visible window
	VOffset int

	// the height of the visible window in scanlines. the output pixel plane
	// is WidthPlane x DisplayHeight
	DisplayHeight int

	// frames per second
	RefreshRate float32

	// colour clock frequency in MHz
	ClockFrequency float64
}

// SpecNTSC is the NTSC television specification.
var SpecNTSC = Spec{
	ID:             "NTSC",
	VLines:         262,
	VOffset:        19,
	DisplayHeight:  228,
	RefreshRate:    60.0,
	ClockFrequency: clocks.NTSC_TIA,
}

// SpecPAL is the PAL television specification.
var SpecPAL = Spec{
	ID:             "PAL",
	VLines:         312,
	VOffset:        24,
	DisplayHeight:  274,
	RefreshRate:    50.0,
	ClockFrequency: clocks.PAL_TIA,
}

// GetSpec returns the Spec for the normalised specification ID. The boolean
// return value is false if the ID is not recognised.
func GetSpec(id string) (Spec, bool) {
	switch id {
	case "NTSC":
		return SpecNTSC, true
	case "PAL":
		return SpecPAL, true
	}
	return Spec{}, false
}
