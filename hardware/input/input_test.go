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

package input_test

import (
	"testing"

	"github.com/factor64/chroma2600/hardware/input"
	"github.com/factor64/chroma2600/test"
)

func TestTriggers(t *testing.T) {
	inp := input.NewInput()

	// unpressed triggers read high
	test.Equate(t, inp.Trigger(input.Trigger0), uint8(0x80))
	test.Equate(t, inp.Trigger(input.Trigger1), uint8(0x80))

	inp.SetTrigger(input.Trigger0, true)
	test.Equate(t, inp.Trigger(input.Trigger0), uint8(0x00))
	test.Equate(t, inp.Trigger(input.Trigger1), uint8(0x80))

	inp.SetTrigger(input.Trigger0, false)
	test.Equate(t, inp.Trigger(input.Trigger0), uint8(0x80))
}

func TestTriggerLatching(t *testing.T) {
	inp := input.NewInput()

	// turn latching on (VBLANK bit 6)
	inp.VBlankBits(0x40)

	inp.SetTrigger(input.Trigger0, true)
	inp.SetTrigger(input.Trigger0, false)

	// latched trigger stays pressed after release
	test.Equate(t, inp.Trigger(input.Trigger0), uint8(0x00))

	// latch is cleared when latching is turned off
	inp.VBlankBits(0x00)
	test.Equate(t, inp.Trigger(input.Trigger0), uint8(0x80))
}

func TestPaddles(t *testing.T) {
	inp := input.NewInput()

	inp.SetPaddle(input.Paddle0, true)
	test.Equate(t, inp.Paddle(input.Paddle0), uint8(0x80))
	test.Equate(t, inp.Paddle(input.Paddle1), uint8(0x00))

	// grounding the capacitors (VBLANK bit 7) forces all paddle ports low
	inp.VBlankBits(0x80)
	test.Equate(t, inp.Paddle(input.Paddle0), uint8(0x00))
}
