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

package tia_test

import (
	"testing"

	"github.com/factor64/chroma2600/hardware"
	"github.com/factor64/chroma2600/hardware/memory/addresses"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/hardware/television/specification"
	"github.com/factor64/chroma2600/state"
	"github.com/factor64/chroma2600/test"
)

// the scanline that renders into row 1 of the NTSC pixel plane.
var row1Scanline = specification.SpecNTSC.VOffset + 1

func newConsole(t *testing.T) *hardware.Console {
	t.Helper()

	tv, err := television.NewTelevision("NTSC")
	test.ExpectedSuccess(t, err)

	con := hardware.NewConsole(tv, nil)
	con.Power()
	return con
}

// runLines runs the TIA up to and including the scanline that renders into
// the numbered row of the pixel plane.
func runLines(t *testing.T, con *hardware.Console, row int) {
	t.Helper()
	for i := 0; i <= specification.SpecNTSC.VOffset+row; i++ {
		test.ExpectedSuccess(t, con.TIA.Main())
	}
}

func TestSolidBackground(t *testing.T) {
	con := newConsole(t)
	con.TIA.Write(addresses.COLUBK, 0x40)

	runLines(t, con, 1)

	// every visible pixel on row 1 shows the background colour
	for x := 0; x < specification.ClksVisible; x++ {
		test.Equate(t, con.TV.Pixel(x, 1), uint8(0x40))
	}
}

func TestPlayfieldStripe(t *testing.T) {
	con := newConsole(t)
	con.TIA.Write(addresses.PF0, 0x10)
	con.TIA.Write(addresses.PF1, 0x00)
	con.TIA.Write(addresses.PF2, 0x00)
	con.TIA.Write(addresses.COLUPF, 0x0e)
	con.TIA.Write(addresses.CTRLPF, 0x00)

	runLines(t, con, 1)

	// the leftmost four pixels carry the playfield
	for x := 0; x < 4; x++ {
		test.Equate(t, con.TV.Pixel(x, 1), uint8(0x0e))
	}
	for x := 4; x < 80; x++ {
		test.Equate(t, con.TV.Pixel(x, 1), uint8(0x00))
	}

	// CTRLPF bit 0 clear: the right half repeats the left
	for x := 80; x < 84; x++ {
		test.Equate(t, con.TV.Pixel(x, 1), uint8(0x0e))
	}
}

// scriptCPU fires a callback the first time the beam reaches a trigger
// coordinate. It stands in for the CPU issuing a register write at an exact
// point in the scanline.
type scriptCPU struct {
	tv      *television.Television
	line    int
	clock   int
	action  func()
	fired   bool
	FiredAt int
}

func (c *scriptCPU) Advance(_ int) {
	if c.fired || c.action == nil {
		return
	}
	pos := c.tv.GetCoords()
	if pos.Scanline == c.line && pos.Clock >= c.clock {
		c.fired = true
		c.FiredAt = pos.Clock
		c.action()
	}
}

func (c *scriptCPU) SetRDY(_ bool) {
}

func TestPositionStrobe(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectedSuccess(t, err)

	cpu := &scriptCPU{tv: tv, line: row1Scanline - 1, clock: 108}
	con := hardware.NewConsole(tv, cpu)
	con.Power()

	cpu.action = func() {
		con.TIA.Write(addresses.RESP0, 0x00)
	}

	con.TIA.Write(addresses.GRP0, 0x80)
	con.TIA.Write(addresses.COLUP0, 0x3c)

	runLines(t, con, 1)
	test.ExpectedSuccess(t, cpu.fired)

	// the strobe captured the beam position at the moment of the bus write,
	// not at the moment the delayed commit landed
	pos := cpu.FiredAt - specification.ClksHBlank
	test.Equate(t, con.TIA.Video.Player0.Position, uint8(pos))

	// with reflect off only the high bit of the sprite is set: one lit
	// pixel at the captured position
	test.Equate(t, con.TV.Pixel(pos, 1), uint8(0x3c))
	for x := pos + 1; x < pos+8; x++ {
		test.Equate(t, con.TV.Pixel(x, 1), uint8(0x00))
	}
}

func TestHmoveComb(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectedSuccess(t, err)

	cpu := &scriptCPU{tv: tv, line: row1Scanline, clock: 4}
	con := hardware.NewConsole(tv, cpu)
	con.Power()

	cpu.action = func() {
		con.TIA.Write(addresses.HMOVE, 0x00)
	}

	con.TIA.Write(addresses.COLUBK, 0x40)
	con.TIA.Write(addresses.GRP0, 0x80)
	con.TIA.Write(addresses.COLUP0, 0x3c)
	con.TIA.Write(addresses.RESP0, 0x00) // beam at hblank: position 0
	con.TIA.Write(addresses.HMP0, 0x70)  // +7: move left

	runLines(t, con, 2)
	test.ExpectedSuccess(t, cpu.fired)

	// the line the strobe landed on wears the eight pixel comb, background
	// colour or not
	for x := 0; x < 8; x++ {
		test.Equate(t, con.TV.Pixel(x, 1), uint8(0x00))
	}
	for x := 8; x < 40; x++ {
		test.Equate(t, con.TV.Pixel(x, 1), uint8(0x40))
	}

	// the motion offset landed at the start of the following line: the
	// player moved from 0 to 153 (left by 7, wrapped)
	test.Equate(t, con.TIA.Video.Player0.Position, uint8(153))
	test.Equate(t, con.TV.Pixel(153, 2), uint8(0x3c))

	// the comb is gone on the following line
	test.Equate(t, con.TV.Pixel(0, 2), uint8(0x40))
}

func TestCollisionLatch(t *testing.T) {
	con := newConsole(t)

	// place both players at the same column
	con.TIA.Write(addresses.GRP0, 0x80)
	con.TIA.Write(addresses.GRP1, 0x80)
	con.TIA.Write(addresses.RESP0, 0x00)
	con.TIA.Write(addresses.RESP1, 0x00)

	test.Equate(t, con.TIA.Read(addresses.CXPPMM), uint8(0x00))

	// one scanline renders the overlap
	test.ExpectedSuccess(t, con.TIA.Main())
	test.Equate(t, con.TIA.Read(addresses.CXPPMM)&0x80, uint8(0x80))

	// latches are sticky across further lines
	test.ExpectedSuccess(t, con.TIA.Main())
	test.Equate(t, con.TIA.Read(addresses.CXPPMM)&0x80, uint8(0x80))

	// CXCLR clears every latch
	con.TIA.Write(addresses.CXCLR, 0x00)
	test.Equate(t, con.TIA.Read(addresses.CXPPMM), uint8(0x00))
}

type frameCatcher struct {
	frames int
	info   television.FrameInfo
}

func (f *frameCatcher) NewFrame(_ []uint8, info television.FrameInfo) error {
	f.frames++
	f.info = info
	return nil
}

func (f *frameCatcher) EndRendering() error {
	return nil
}

func TestRunawayVblank(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectedSuccess(t, err)

	fc := &frameCatcher{}
	tv.AddPixelRenderer(fc)

	con := hardware.NewConsole(tv, nil)
	con.Power()

	// no VSYNC ever arrives: the safety valve must force a frame exit
	test.ExpectedSuccess(t, con.RunFrame())
	test.Equate(t, fc.frames, 1)
	test.Equate(t, fc.info.Unsynced, true)

	// the vertical counter was reset: the next scanline is scanline zero
	test.ExpectedSuccess(t, con.TIA.Main())
	test.Equate(t, con.TV.GetCoords().Scanline, 0)
}

func TestVsyncFrame(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.ExpectedSuccess(t, err)

	fc := &frameCatcher{}
	tv.AddPixelRenderer(fc)

	cpu := &scriptCPU{tv: tv, line: 40, clock: 0}
	con := hardware.NewConsole(tv, cpu)
	con.Power()

	cpu.action = func() {
		con.TIA.Write(addresses.VSYNC, 0x02)
	}

	// the rising edge of VSYNC concludes the frame long before the safety
	// valve would
	test.ExpectedSuccess(t, con.RunFrame())
	test.Equate(t, fc.frames, 1)
	test.Equate(t, fc.info.Unsynced, false)
}

func TestWsyncRdy(t *testing.T) {
	con := newConsole(t)
	cpu := con.CPU.(*hardware.NullCPU)

	// WSYNC stalls the CPU
	con.TIA.Write(addresses.WSYNC, 0x00)
	test.Equate(t, cpu.Rdy, false)

	// the RDY line is released when the beam returns to the start of a
	// scanline
	test.ExpectedSuccess(t, con.TIA.Main())
	test.Equate(t, cpu.Rdy, true)
}

func TestTimingInvariants(t *testing.T) {
	con := newConsole(t)

	// across a whole frame the reported beam position stays in range
	for i := 0; i <= specification.SpecNTSC.VLines; i++ {
		test.ExpectedSuccess(t, con.TIA.Main())
		pos := con.TV.GetCoords()
		test.ExpectedSuccess(t, pos.Clock < specification.ClksScanline)
		test.ExpectedSuccess(t, pos.Scanline <= specification.SpecNTSC.VLines+1)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	conA := newConsole(t)

	// give the machine some state worth preserving
	conA.TIA.Write(addresses.COLUBK, 0x40)
	conA.TIA.Write(addresses.PF0, 0xa0)
	conA.TIA.Write(addresses.PF1, 0x5b)
	conA.TIA.Write(addresses.COLUPF, 0x0e)
	conA.TIA.Write(addresses.GRP0, 0xb2)
	conA.TIA.Write(addresses.COLUP0, 0x3c)
	conA.TIA.Write(addresses.RESP0, 0x00)
	conA.TIA.Write(addresses.AUDC0, 0x08)
	conA.TIA.Write(addresses.AUDF0, 0x03)
	conA.TIA.Write(addresses.AUDV0, 0x0a)

	runLines(t, conA, 1)

	// leave a write pending in the queue so the queue contents round-trip
	// too
	conA.TIA.Write(addresses.GRP0, 0xff)

	sv := state.NewSaver()
	conA.TIA.Serialize(sv)
	test.ExpectedSuccess(t, sv.Err())

	conB := newConsole(t)
	ld := state.NewLoader(sv.Data())
	conB.TIA.Serialize(ld)
	test.ExpectedSuccess(t, ld.Err())

	// deserializing must yield a bit-identical TIA
	sv2 := state.NewSaver()
	conB.TIA.Serialize(sv2)
	test.Equate(t, string(sv.Data()), string(sv2.Data()))

	// running one scanline on both TIAs produces the identical pixel row
	row := 2
	test.ExpectedSuccess(t, conA.TIA.Main())
	test.ExpectedSuccess(t, conB.TIA.Main())

	for x := 0; x < specification.ClksVisible; x++ {
		test.Equate(t, conB.TV.Pixel(x, row), conA.TV.Pixel(x, row))
	}

	// and the two machines remain in lockstep afterwards
	svA := state.NewSaver()
	svB := state.NewSaver()
	conA.TIA.Serialize(svA)
	conB.TIA.Serialize(svB)
	test.Equate(t, string(svA.Data()), string(svB.Data()))
}
