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

// Package clocks defines the clock frequencies of the console. The TIA runs
// at the colour clock frequency; the CPU clock is the colour clock divided by
// three.
//
// Values taken from:
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds
package clocks

// CPU clock frequencies in MHz.
const (
	NTSC = 1.193182
	PAL  = 1.182298
)

// TIA colour clock frequencies in MHz.
const (
	NTSC_TIA = NTSC * 3
	PAL_TIA  = PAL * 3
)

// ClocksPerCPUCycle is the number of colour clocks for every CPU cycle.
const ClocksPerCPUCycle = 3
