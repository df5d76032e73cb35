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

// Package video is the video sub-system of the TIA: the six graphics objects
// (playfield, two players, two missiles, ball), the priority mux that
// combines them into a single palette index, and the collision register
// file.
//
// Every object implements the renderer capability: a function of object state
// answering "is this object active at visible column x". Time does not
// advance inside a render; the TIA's scanline loop is the only clock. Two
// renders change object state: the playfield latches its bit for the rest of
// a four clock cell, and a missile locked to its player (RESMPx) takes the
// player's position.
package video

import (
	"github.com/factor64/chroma2600/hardware/memory/addresses"
	"github.com/factor64/chroma2600/state"
)

// renderer is the uniform capability implemented by every graphics object.
type renderer interface {
	render(x int) bool
}

// Video is the collection of graphics objects and the colour registers that
// feed the priority mux.
type Video struct {
	Playfield *Playfield
	Player0   *Player
	Player1   *Player
	Missile0  *Missile
	Missile1  *Missile
	Ball      *Ball

	Collisions *Collisions

	// 7-bit palette indices. the playfield and ball share FgColor
	P0Color uint8
	P1Color uint8
	FgColor uint8
	BgColor uint8
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	vd := &Video{
		Playfield:  &Playfield{},
		Player0:    &Player{},
		Player1:    &Player{},
		Ball:       &Ball{},
		Collisions: &Collisions{},
	}

	// missiles take their repeat pattern, and the reset-to-player position,
	// from the associated player
	vd.Missile0 = &Missile{player: vd.Player0}
	vd.Missile1 = &Missile{player: vd.Player1}

	return vd
}

// Reset puts every object back in the power-on state.
func (vd *Video) Reset() {
	*vd.Playfield = Playfield{}
	*vd.Player0 = Player{}
	*vd.Player1 = Player{}
	*vd.Missile0 = Missile{player: vd.Player0}
	*vd.Missile1 = Missile{player: vd.Player1}
	*vd.Ball = Ball{}
	vd.Collisions.Clear()
	vd.P0Color = 0
	vd.P1Color = 0
	vd.FgColor = 0
	vd.BgColor = 0
}

// Pixel runs every object at visible column x and combines the six signals
// into a single palette index. Collision latching happens here too, whether
// or not the pixel will reach the screen; blanking does not mask collisions.
func (vd *Video) Pixel(x int) uint8 {
	pf := vd.Playfield.render(x)
	bl := vd.Ball.render(x)
	p0 := vd.Player0.render(x)
	p1 := vd.Player1.render(x)
	m0 := vd.Missile0.render(x)
	m1 := vd.Missile1.render(x)

	vd.Collisions.Update(p0, p1, m0, m1, bl, pf)

	// priority ordering. note that player 0 always beats player 1 and that
	// the playfield/ball pair moves from back to front with the playfield
	// priority flag
	col := vd.BgColor
	if !vd.Playfield.Priority && (pf || bl) {
		col = vd.FgColor
	}
	if p1 || m1 {
		col = vd.P1Color
	}
	if p0 || m0 {
		col = vd.P0Color
	}
	if vd.Playfield.Priority && (pf || bl) {
		col = vd.FgColor
	}

	return col
}

// Update services a committed register write that belongs to the video
// sub-system. Returns false if the register is not a video register.
func (vd *Video) Update(address uint16, value uint8) bool {
	switch address {
	case addresses.NUSIZ0:
		vd.Player0.Size = value & 0x07
		vd.Missile0.Size = (value >> 4) & 0x03

	case addresses.NUSIZ1:
		vd.Player1.Size = value & 0x07
		vd.Missile1.Size = (value >> 4) & 0x03

	case addresses.COLUP0:
		vd.P0Color = value & 0xfe

	case addresses.COLUP1:
		vd.P1Color = value & 0xfe

	case addresses.COLUPF:
		vd.FgColor = value & 0xfe

	case addresses.COLUBK:
		vd.BgColor = value & 0xfe

	case addresses.CTRLPF:
		vd.Playfield.Mirror = value&0x01 == 0x01
		vd.Playfield.Priority = value&0x04 == 0x04
		vd.Ball.Size = (value >> 4) & 0x03

	case addresses.REFP0:
		vd.Player0.Reflect = value&0x08 == 0x08

	case addresses.REFP1:
		vd.Player1.Reflect = value&0x08 == 0x08

	case addresses.PF0, addresses.PF1, addresses.PF2:
		vd.Playfield.SetSegment(address, value)

	case addresses.RESP0:
		vd.Player0.Position = value

	case addresses.RESP1:
		vd.Player1.Position = value

	case addresses.RESM0:
		vd.Missile0.Position = value

	case addresses.RESM1:
		vd.Missile1.Position = value

	case addresses.RESBL:
		vd.Ball.Position = value

	case addresses.GRP0:
		vd.Player0.Graphics[0] = value

		// writing GRP0 moves the other player's pixels into its delayed
		// shadow register
		vd.Player1.Graphics[1] = vd.Player1.Graphics[0]

	case addresses.GRP1:
		vd.Player1.Graphics[0] = value
		vd.Player0.Graphics[1] = vd.Player0.Graphics[0]

		// the ball's delayed enable shadows on GRP1 too
		vd.Ball.Enable[1] = vd.Ball.Enable[0]

	case addresses.ENAM0:
		vd.Missile0.Enable = value&0x02 == 0x02

	case addresses.ENAM1:
		vd.Missile1.Enable = value&0x02 == 0x02

	case addresses.ENABL:
		vd.Ball.Enable[0] = value&0x02 == 0x02

	case addresses.HMP0:
		vd.Player0.Motion = motionNibble(value)

	case addresses.HMP1:
		vd.Player1.Motion = motionNibble(value)

	case addresses.HMM0:
		vd.Missile0.Motion = motionNibble(value)

	case addresses.HMM1:
		vd.Missile1.Motion = motionNibble(value)

	case addresses.HMBL:
		vd.Ball.Motion = motionNibble(value)

	case addresses.VDELP0:
		vd.Player0.Delay = value&0x01 == 0x01

	case addresses.VDELP1:
		vd.Player1.Delay = value&0x01 == 0x01

	case addresses.VDELBL:
		vd.Ball.Delay = value&0x01 == 0x01

	case addresses.RESMP0:
		vd.Missile0.Reset = value&0x02 == 0x02

	case addresses.RESMP1:
		vd.Missile1.Reset = value&0x02 == 0x02

	case addresses.HMCLR:
		vd.Player0.Motion = 0
		vd.Player1.Motion = 0
		vd.Missile0.Motion = 0
		vd.Missile1.Motion = 0
		vd.Ball.Motion = 0

	case addresses.CXCLR:
		vd.Collisions.Clear()

	default:
		return false
	}

	return true
}

// ApplyMotion adjusts every object position by its motion nibble. Called at
// the start of the scanline following an HMOVE strobe.
func (vd *Video) ApplyMotion() {
	vd.Player0.Position = movePosition(vd.Player0.Position, vd.Player0.Motion)
	vd.Player1.Position = movePosition(vd.Player1.Position, vd.Player1.Motion)
	vd.Missile0.Position = movePosition(vd.Missile0.Position, vd.Missile0.Motion)
	vd.Missile1.Position = movePosition(vd.Missile1.Position, vd.Missile1.Motion)
	vd.Ball.Position = movePosition(vd.Ball.Position, vd.Ball.Motion)
}

// motionNibble sign-extends the high nibble of an HMxx register write. The
// range is -8 to +7; a positive value moves the object to the left.
func motionNibble(value uint8) int {
	return int(int8(value)) >> 4
}

func movePosition(position uint8, motion int) uint8 {
	p := int(position) - motion
	p %= 160
	if p < 0 {
		p += 160
	}
	return uint8(p)
}

// Serialize visits the video sub-system for the state package. Field order
// matches declaration order of the Video type.
func (vd *Video) Serialize(s *state.Serializer) {
	vd.Playfield.Serialize(s)
	vd.Player0.Serialize(s)
	vd.Player1.Serialize(s)
	vd.Missile0.Serialize(s)
	vd.Missile1.Serialize(s)
	vd.Ball.Serialize(s)
	vd.Collisions.Serialize(s)
	s.U8(&vd.P0Color)
	s.U8(&vd.P1Color)
	s.U8(&vd.FgColor)
	s.U8(&vd.BgColor)
}
