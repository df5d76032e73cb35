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

// Package audio is the audio sub-system of the TIA: two identical and
// completely independent polynomial tone generators. The generators are
// sampled at twice the scanline rate, which gives the reference sample
// frequency of 31403Hz.
//
// The channel output is the MSB of the selected shift register, scaled by a
// logarithmic volume table. The two channels are mixed into a single mono
// sample for the host audio sink.
package audio

import (
	"math"
	"strings"

	"github.com/factor64/chroma2600/hardware/memory/addresses"
	"github.com/factor64/chroma2600/state"
)

// SampleFreq is the nominal number of samples generated per second, the
// 30Khz reference frequency described in the Stella Programmer's Guide.
const SampleFreq = 31403

// scale of a single full-volume channel in the mono mix. two channels at
// full volume sum to a little under the int16 maximum.
const sampleScale = 16000

// Audio is the implementation of the TIA audio sub-system.
type Audio struct {
	channel0 channel
	channel1 channel

	// attenuation lookup for the volume register. the table is indexed by
	// attenuation level: entry zero is full amplitude, entry fifteen is
	// silence. rebuilt on power
	volume [16]float64
}

// NewAudio is the preferred method of initialisation for the Audio
// sub-system.
func NewAudio() *Audio {
	au := &Audio{}
	au.Reset()
	return au
}

// Reset puts the audio sub-system in the power-on state. The volume table is
// recomputed.
func (au *Audio) Reset() {
	au.channel0.reset()
	au.channel1.reset()

	// each attenuation level drops the amplitude by two decibels
	for level := 0; level < 15; level++ {
		au.volume[level] = math.Pow(2, float64(level)*-2.0/6.0)
	}
	au.volume[15] = 0
}

func (au *Audio) String() string {
	s := strings.Builder{}
	s.WriteString("ch0: ")
	s.WriteString(au.channel0.String())
	s.WriteString("  ch1: ")
	s.WriteString(au.channel1.String())
	return s.String()
}

// Update services a committed register write that belongs to the audio
// sub-system. Returns false if the register is not an audio register.
func (au *Audio) Update(address uint16, value uint8) bool {
	switch address {
	case addresses.AUDC0:
		au.channel0.registers.Control = value & 0x0f
	case addresses.AUDC1:
		au.channel1.registers.Control = value & 0x0f
	case addresses.AUDF0:
		au.channel0.registers.Freq = value & 0x1f
	case addresses.AUDF1:
		au.channel1.registers.Freq = value & 0x1f
	case addresses.AUDV0:
		au.channel0.registers.Volume = value & 0x0f
	case addresses.AUDV1:
		au.channel1.registers.Volume = value & 0x0f
	default:
		return false
	}

	return true
}

// Channel0Registers returns a copy of the channel 0 registers. For debugging
// displays.
func (au *Audio) Channel0Registers() Registers {
	return au.channel0.registers
}

// Channel1Registers returns a copy of the channel 1 registers.
func (au *Audio) Channel1Registers() Registers {
	return au.channel1.registers
}

// Mix advances both generators by one sample clock and returns the mixed
// mono sample.
func (au *Audio) Mix() int16 {
	au.channel0.tick()
	au.channel1.tick()

	return int16(au.level(&au.channel0)*sampleScale) + int16(au.level(&au.channel1)*sampleScale)
}

// level is the amplitude of a channel: the output bit scaled by the volume
// table. The volume register is a loudness so it indexes the attenuation
// table from the far end.
func (au *Audio) level(ch *channel) float64 {
	if !ch.output {
		return 0
	}
	return au.volume[15-ch.registers.Volume]
}

// Serialize visits the audio sub-system for the state package. The volume
// table is derived state and is not persisted.
func (au *Audio) Serialize(s *state.Serializer) {
	au.channel0.Serialize(s)
	au.channel1.Serialize(s)
}
