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

package scheduler_test

import (
	"testing"

	"github.com/factor64/chroma2600/scheduler"
	"github.com/factor64/chroma2600/test"
)

type counter struct {
	clocks int
}

func (c *counter) Advance(clocks int) {
	c.clocks += clocks
}

func TestClockRatio(t *testing.T) {
	sch := scheduler.NewScheduler()

	driver := &counter{}
	co := &counter{}

	// co-thread runs at one third the rate of the driver, the relationship
	// between the TIA and the CPU
	hd := sch.Create("driver", 3.0, driver)
	sch.Create("co", 1.0, co)

	for i := 0; i < 228; i++ {
		test.ExpectedSuccess(t, sch.Step(hd, 1))
		test.ExpectedSuccess(t, sch.Synchronize(hd))
	}

	test.Equate(t, co.clocks, 76)
}

func TestDeterminism(t *testing.T) {
	run := func() int {
		sch := scheduler.NewScheduler()
		driver := &counter{}
		co := &counter{}
		hd := sch.Create("driver", 3.579545e6, driver)
		sch.Create("co", 3.579545e6/3, co)
		for i := 0; i < 10000; i++ {
			sch.Step(hd, 1)
			sch.Synchronize(hd)
		}
		return co.clocks
	}

	test.Equate(t, run(), run())
}

func TestReattach(t *testing.T) {
	sch := scheduler.NewScheduler()

	a := &counter{}
	b := &counter{}

	ha := sch.Create("chip", 1.0, a)
	hb := sch.Create("chip", 1.0, b)

	// reattaching a thread of the same name keeps the handle
	test.Equate(t, int(ha), int(hb))
}

func TestEvents(t *testing.T) {
	sch := scheduler.NewScheduler()

	test.Equate(t, sch.LastEvent(), scheduler.EventNone)

	sch.Exit(scheduler.EventFrame)
	test.Equate(t, sch.LastEvent(), scheduler.EventFrame)

	// events are cleared on collection
	test.Equate(t, sch.LastEvent(), scheduler.EventNone)
}

func TestBadHandle(t *testing.T) {
	sch := scheduler.NewScheduler()
	test.ExpectedFailure(t, sch.Step(scheduler.NoThread, 1))
	test.ExpectedFailure(t, sch.Synchronize(scheduler.Handle(99)))
}
