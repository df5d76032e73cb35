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

package audio

import (
	"fmt"

	"github.com/factor64/chroma2600/state"
)

// Registers is the programmer visible state of a single audio channel.
type Registers struct {
	// noise/tone mode (AUDCx)
	Control uint8

	// frequency divider (AUDFx)
	Freq uint8

	// volume (AUDVx)
	Volume uint8
}

func (reg Registers) String() string {
	return fmt.Sprintf("%04b @ %05b ^ %04b", reg.Control, reg.Freq, reg.Volume)
}

// channel is one of the two polynomial tone generators. The generator is
// clocked at the sample rate; the frequency register divides that clock
// further.
type channel struct {
	registers Registers

	// the frequency divider counts down from Freq before the polynomial
	// network advances
	divCounter uint8

	// the polynomial shift registers. poly4 and poly5 are the 4-bit and
	// 5-bit networks; poly9 is the 9-bit network used by control mode 8.
	// they are never allowed to settle in the all-zeros lockup state
	poly4 uint16
	poly5 uint16
	poly9 uint16

	// the div31 pattern and the pure tones are square waves derived from a
	// simple counter
	div uint8

	// output bit of the generator
	output bool
}

func (ch *channel) String() string {
	return ch.registers.String()
}

func (ch *channel) reset() {
	*ch = channel{}
	ch.poly4 = 0x0f
	ch.poly5 = 0x1f
	ch.poly9 = 0x1ff
}

// the polynomial taps. x^4+x^3+1, x^5+x^3+1 and x^9+x^5+1 are all maximal
// length, giving periods of 15, 31 and 511.
func (ch *channel) tickPoly4() {
	fb := ((ch.poly4 >> 3) ^ (ch.poly4 >> 2)) & 0x01
	ch.poly4 = ((ch.poly4 << 1) | fb) & 0x0f
	if ch.poly4 == 0 {
		ch.poly4 = 0x0f
	}
}

func (ch *channel) tickPoly5() {
	fb := ((ch.poly5 >> 4) ^ (ch.poly5 >> 2)) & 0x01
	ch.poly5 = ((ch.poly5 << 1) | fb) & 0x1f
	if ch.poly5 == 0 {
		ch.poly5 = 0x1f
	}
}

func (ch *channel) tickPoly9() {
	fb := ((ch.poly9 >> 8) ^ (ch.poly9 >> 4)) & 0x01
	ch.poly9 = ((ch.poly9 << 1) | fb) & 0x1ff
	if ch.poly9 == 0 {
		ch.poly9 = 0x1ff
	}
}

// tick advances the generator by one sample clock. The output bit is the MSB
// of whichever shift register the control mode selects.
func (ch *channel) tick() {
	// the frequency register divides the sample clock by Freq+1
	if ch.divCounter > 0 {
		ch.divCounter--
		return
	}
	ch.divCounter = ch.registers.Freq

	switch ch.registers.Control {
	case 0x00, 0x0b:
		// set to 1: the volume register is the sample
		ch.output = true

	case 0x01:
		// 4-bit poly
		ch.tickPoly4()
		ch.output = ch.poly4&0x08 != 0

	case 0x02:
		// div15 -> 4-bit poly
		ch.div++
		if ch.div >= 15 {
			ch.div = 0
			ch.tickPoly4()
		}
		ch.output = ch.poly4&0x08 != 0

	case 0x03:
		// 5-bit poly clocks the 4-bit poly
		ch.tickPoly5()
		if ch.poly5&0x10 != 0 {
			ch.tickPoly4()
		}
		ch.output = ch.poly4&0x08 != 0

	case 0x04, 0x05:
		// pure tone: divide by two
		ch.output = !ch.output

	case 0x06, 0x0a:
		// div31 pure tone
		ch.div++
		if ch.div >= 31 {
			ch.div = 0
		}
		ch.output = ch.div < 18

	case 0x07, 0x09:
		// 5-bit poly direct
		ch.tickPoly5()
		ch.output = ch.poly5&0x10 != 0

	case 0x08:
		// 9-bit poly
		ch.tickPoly9()
		ch.output = ch.poly9&0x100 != 0

	case 0x0c, 0x0d:
		// divide by six pure tone
		ch.div++
		if ch.div >= 6 {
			ch.div = 0
		}
		ch.output = ch.div < 3

	case 0x0e:
		// div93 pure tone
		ch.div++
		if ch.div >= 93 {
			ch.div = 0
		}
		ch.output = ch.div < 54

	case 0x0f:
		// 5-bit poly divided by six
		ch.div++
		if ch.div >= 6 {
			ch.div = 0
			ch.tickPoly5()
		}
		ch.output = ch.poly5&0x10 != 0
	}
}

// Serialize visits the channel fields for the state package.
func (ch *channel) Serialize(s *state.Serializer) {
	s.U8(&ch.registers.Control)
	s.U8(&ch.registers.Freq)
	s.U8(&ch.registers.Volume)
	s.U8(&ch.divCounter)
	s.U16(&ch.poly4)
	s.U16(&ch.poly5)
	s.U16(&ch.poly9)
	s.U8(&ch.div)
	s.Bool(&ch.output)
}
