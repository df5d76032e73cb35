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

package hardware

import (
	"github.com/factor64/chroma2600/hardware/clocks"
	"github.com/factor64/chroma2600/hardware/input"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/hardware/tia"
	"github.com/factor64/chroma2600/scheduler"
)

// CPU is what the console requires of a processor implementation: it must be
// advanceable by the scheduler and it must accept the TIA's RDY line. The
// processor itself is an external collaborator.
type CPU interface {
	scheduler.CoThread
	tia.CPU
}

// NullCPU is a CPU implementation that executes nothing. Useful for TIA-only
// operation, where register writes are driven from outside the console.
type NullCPU struct {
	// the most recent state of the RDY line
	Rdy bool
}

// Advance implements the scheduler.CoThread interface.
func (c *NullCPU) Advance(_ int) {
}

// SetRDY implements the tia.CPU interface.
func (c *NullCPU) SetRDY(active bool) {
	c.Rdy = active
}

// Console is the arena that owns the chips of the emulated machine.
type Console struct {
	Scheduler *scheduler.Scheduler
	TV        *television.Television
	TIA       *tia.TIA
	Input     *input.Input
	CPU       CPU
}

// NewConsole is the preferred method of initialisation for the Console type.
// A nil cpu argument attaches a NullCPU.
func NewConsole(tv *television.Television, cpu CPU) *Console {
	if cpu == nil {
		cpu = &NullCPU{}
	}

	con := &Console{
		Scheduler: scheduler.NewScheduler(),
		TV:        tv,
		Input:     input.NewInput(),
		CPU:       cpu,
	}
	con.TIA = tia.NewTIA(tv, con.Scheduler, cpu, con.Input)

	return con
}

// Power puts the console in the power-on state. Every chip is reattached to
// the scheduler; the CPU thread runs at one third of the colour clock.
func (con *Console) Power() {
	con.Scheduler.Reset()
	con.TIA.Power()
	con.Input.Reset()
	con.Scheduler.Create("CPU", con.TV.GetSpec().ClockFrequency*1e6/clocks.ClocksPerCPUCycle, con.CPU)
}

// RunFrame runs the console until the TIA posts a frame event.
func (con *Console) RunFrame() error {
	for {
		if err := con.TIA.Main(); err != nil {
			return err
		}
		if con.Scheduler.LastEvent() == scheduler.EventFrame {
			return nil
		}
	}
}

// Run the console until the continueCheck callback returns false. The
// callback is consulted between frames, which is when the front end gets
// the chance to poll input and service its event loop.
func (con *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := con.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
