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

// Package tia is the Television Interface Adaptor: the combined video, audio
// and input chip of the console. The TIA is the driving thread of the
// emulation; it walks the beam across 228 colour clocks per scanline,
// composing the six graphics objects into a pixel at every visible clock and
// yielding to the CPU thread through the shared scheduler after every colour
// clock.
//
// Register writes arrive on the bus surface and are deferred through the
// write queue; the ripple counters inside the chip mean many writes take
// effect several colour clocks after the bus write.
package tia

import (
	"fmt"

	"github.com/factor64/chroma2600/hardware/input"
	"github.com/factor64/chroma2600/hardware/memory/addresses"
	"github.com/factor64/chroma2600/hardware/memory/bus"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/hardware/television/specification"
	"github.com/factor64/chroma2600/hardware/tia/audio"
	"github.com/factor64/chroma2600/hardware/tia/queue"
	"github.com/factor64/chroma2600/hardware/tia/video"
	"github.com/factor64/chroma2600/logger"
	"github.com/factor64/chroma2600/scheduler"
	"github.com/factor64/chroma2600/state"
)

// CPU is the connection from the TIA to the processor: the RDY line. The TIA
// stalls the CPU on a WSYNC write and releases it when the beam returns to
// the start of a scanline.
type CPU interface {
	SetRDY(active bool)
}

// TIA is the combined video/audio/input chip.
type TIA struct {
	tv  *television.Television
	sch *scheduler.Scheduler
	cpu CPU
	inp *input.Input

	spec specification.Spec

	// handle of the TIA thread in the scheduler arena
	thread scheduler.Handle

	// beam position. hcounter is always in [0, 228) outside of the scanline
	// loop; vcounter counts scanlines from the top of the frame
	hcounter int
	vcounter int

	// latched for the current scanline by an HMOVE strobe; forces the
	// left-edge comb. cleared at the end of every line
	hmoveTriggered bool

	// motion offsets land at the start of the scanline after the strobe
	pendingMotion bool

	// software-controlled vertical signals
	vsync  bool
	vblank bool

	// set by frame(); consumed by the end-of-line bookkeeping in Main()
	framePending bool

	// for clarity we think of tia video and audio as sub-systems
	Video *video.Video
	Audio *audio.Audio

	// the deferred-write queue all bus writes route through
	queue *queue.Queue
}

// the TIA's register surface is what the CPU sees on the bus; the state
// surface is what the external serializer consumes.
var _ bus.CPUBus = (*TIA)(nil)
var _ state.Snapshotter = (*TIA)(nil)

// Label returns an identifying label for the TIA.
func (tia *TIA) Label() string {
	return "TIA"
}

func (tia *TIA) String() string {
	return fmt.Sprintf("SL=%03d CL=%03d %04.01f", tia.vcounter, tia.hcounter, float64(tia.hcounter)/3.0)
}

// NewTIA creates a TIA, to be used in a console emulation. The television,
// scheduler, CPU and input instances are the chip's external collaborators.
func NewTIA(tv *television.Television, sch *scheduler.Scheduler, cpu CPU, inp *input.Input) *TIA {
	tia := &TIA{
		tv:     tv,
		sch:    sch,
		cpu:    cpu,
		inp:    inp,
		spec:   tv.GetSpec(),
		thread: scheduler.NoThread,
	}

	tia.Video = video.NewVideo()
	tia.Audio = audio.NewAudio()
	tia.queue = queue.NewQueue(tia.commit)

	return tia
}

// Power puts the TIA in the power-on state: all object state, counters,
// collisions, audio generators and the write queue are zeroed and the TIA
// thread is reattached to the scheduler at the colour clock frequency.
func (tia *TIA) Power() {
	tia.thread = tia.sch.Create("TIA", tia.spec.ClockFrequency*1e6, tia)
	tia.tv.Power()

	tia.hcounter = 0
	tia.vcounter = 0
	tia.hmoveTriggered = false
	tia.pendingMotion = false
	tia.vsync = false
	tia.vblank = false
	tia.framePending = false

	tia.Video.Reset()
	tia.Audio.Reset()
	tia.queue.Reset()
}

// Advance implements the scheduler.CoThread interface. The TIA is the
// driving thread of the emulation so it is never advanced by a co-thread.
func (tia *TIA) Advance(_ int) {
}

// Write places a value in a TIA write register. Implements the bus.CPUBus
// interface. Addresses outside the write register file are silently
// rejected; they never corrupt internal state.
func (tia *TIA) Write(address uint16, value uint8) {
	if address > addresses.LastWriteAddress {
		return
	}

	// the position strobes latch the current beam position, not the data
	// bus value. the capture happens now; the commit is delayed by the
	// ripple counter latency
	switch address {
	case addresses.RESP0, addresses.RESP1, addresses.RESM0, addresses.RESM1, addresses.RESBL:
		value = tia.beamPosition()
	}

	tia.queue.Push(writeDelay(address), address, value)
}

// Read returns the value of a TIA read register. Implements the bus.CPUBus
// interface. Only the collision file and the input ports are readable;
// anything else returns zero.
func (tia *TIA) Read(address uint16) uint8 {
	switch address {
	case addresses.CXM0P, addresses.CXM1P, addresses.CXP0FB, addresses.CXP1FB,
		addresses.CXM0FB, addresses.CXM1FB, addresses.CXBLPF, addresses.CXPPMM:
		return tia.Video.Collisions.Register(address)

	case addresses.INPT0, addresses.INPT1, addresses.INPT2, addresses.INPT3:
		return tia.inp.Paddle(int(address - addresses.INPT0))

	case addresses.INPT4, addresses.INPT5:
		return tia.inp.Trigger(int(address - addresses.INPT4))
	}

	return 0
}

// beamPosition is the visible column the beam is over, clamped to the start
// of the line during horizontal blank.
func (tia *TIA) beamPosition() uint8 {
	x := tia.hcounter - specification.ClksHBlank
	if x < 0 {
		x = 0
	}
	return uint8(x % specification.ClksVisible)
}

// writeDelay is the ripple counter latency of each register, in colour
// clocks. A delay of zero commits on the clock of the bus write.
func writeDelay(address uint16) int {
	switch address {
	case addresses.RESP0, addresses.RESP1, addresses.RESM0, addresses.RESM1, addresses.RESBL:
		return 4
	case addresses.PF0, addresses.PF1, addresses.PF2:
		return 2
	case addresses.GRP0, addresses.GRP1:
		return 1
	}
	return 0
}

// commit applies a register write whose queue delay has elapsed.
func (tia *TIA) commit(address uint16, value uint8) {
	switch address {
	case addresses.VSYNC:
		v := value&0x02 == 0x02

		// the rising edge of VSYNC restarts the frame
		if v && !tia.vsync {
			tia.frame(false)
		}
		tia.vsync = v

	case addresses.VBLANK:
		tia.vblank = value&0x02 == 0x02

		// the VBLANK register also affects the input sub-system
		tia.inp.VBlankBits(value)

	case addresses.WSYNC:
		// the CPU waits for the beginning of the next scanline
		tia.cpu.SetRDY(false)

	case addresses.RSYNC:
		// the horizontal counter restarts; the current line ends after
		// this colour clock
		tia.hcounter = specification.ClksScanline - 1

	case addresses.HMOVE:
		tia.hmoveTriggered = true
		tia.pendingMotion = true

	default:
		if tia.Video.Update(address, value) {
			return
		}
		tia.Audio.Update(address, value)
	}
}

// Main runs the TIA thread for one scanline. The end-of-line bookkeeping
// happens here: the vertical counter advances, the HMOVE latch clears and
// any pending motion offsets are applied ready for the start of the next
// line.
func (tia *TIA) Main() error {
	if err := tia.scanline(); err != nil {
		return err
	}

	if tia.framePending {
		// a VSYNC arrived during the line: the next scanline is the top of
		// a new frame
		tia.framePending = false
		tia.vcounter = 0
	} else {
		tia.vcounter++

		// prevent an emulator hang when software misses vblank
		if tia.vcounter > tia.spec.VLines {
			logger.Logf("tia", "no VSYNC by scanline %d: forcing frame exit", tia.vcounter)
			tia.frame(true)
			tia.framePending = false
			tia.vcounter = 0
		}
	}

	tia.hmoveTriggered = false

	if tia.pendingMotion {
		tia.Video.ApplyMotion()
		tia.pendingMotion = false
	}

	return nil
}

// scanline walks the beam across one line: 68 clocks of horizontal blank
// followed by 160 visible clocks.
func (tia *TIA) scanline() error {
	for tia.hcounter = 0; tia.hcounter < specification.ClksScanline; tia.hcounter++ {
		tia.queue.Step()

		x := tia.hcounter - specification.ClksHBlank
		y := tia.vcounter - tia.spec.VOffset

		if x >= 0 {
			// the mux always runs; collision latching is not masked by
			// any of the blanking signals
			pixel := tia.Video.Pixel(x)

			if y > 0 && y < tia.spec.DisplayHeight {
				if tia.vblank || (tia.hmoveTriggered && x < 8) {
					pixel = 0
				}
				tia.tv.Plot(x, y, pixel)
			}
		}

		tia.runAudio()

		if err := tia.step(1); err != nil {
			return err
		}

		if tia.hcounter == 0 {
			tia.cpu.SetRDY(true)
		}
	}

	return nil
}

// runAudio samples the tone generators twice per scanline, giving the
// reference stream frequency of 31403Hz.
func (tia *TIA) runAudio() {
	switch tia.hcounter {
	case 0, specification.ClksScanline / 2:
		tia.tv.AudioSample(tia.Audio.Mix())
	}
}

// step charges the scheduler with colour clocks and yields to any co-thread
// that is now behind. The TIA's only suspension point.
func (tia *TIA) step(clocks int) error {
	tia.tv.SetCoords(tia.vcounter, tia.hcounter)

	if err := tia.sch.Step(tia.thread, clocks); err != nil {
		return err
	}
	return tia.sch.Synchronize(tia.thread)
}

// frame pushes the accumulated pixel plane to the video sink and signals the
// scheduler that a frame is complete.
func (tia *TIA) frame(unsynced bool) {
	if err := tia.tv.Frame(unsynced); err != nil {
		logger.Log("tia", err.Error())
	}
	tia.sch.Exit(scheduler.EventFrame)
	tia.framePending = true
}

// Serialize visits the persisted state surface of the TIA: the timing state,
// the video and audio sub-systems and the write queue contents, in
// declaration order.
func (tia *TIA) Serialize(s *state.Serializer) {
	s.Int(&tia.hcounter)
	s.Int(&tia.vcounter)
	s.Bool(&tia.hmoveTriggered)
	s.Bool(&tia.pendingMotion)
	s.Bool(&tia.vsync)
	s.Bool(&tia.vblank)
	tia.Video.Serialize(s)
	tia.Audio.Serialize(s)
	tia.queue.Serialize(s)
}
