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

// Package scheduler coordinates the chips of the console. Each chip is
// attached as a CoThread advanced by integer clock quanta. There is no
// parallelism; the scheduler is equivalent to interleaving clock events in
// timestamp order with deterministic tie-breaks (attachment order).
//
// One thread acts as the driver (for this emulation, the TIA). After the
// driver has been charged with Step(), a call to Synchronize() advances every
// co-thread that is behind the driver on the shared timeline.
//
// Events are how a thread returns control to the host loop. The TIA posts
// EventFrame when a frame is complete; the host loop collects it with
// LastEvent().
package scheduler

import (
	"github.com/factor64/chroma2600/curated"
)

// Event is posted by a thread with Exit() to hand control back to the host.
type Event int

// List of valid Event values.
const (
	EventNone Event = iota
	EventFrame
)

func (ev Event) String() string {
	switch ev {
	case EventNone:
		return "none"
	case EventFrame:
		return "frame"
	}
	return "unknown"
}

// Handle identifies an attached thread. Chips refer to one another through
// handles rather than pointers so that the scheduler remains the single owner
// of the thread arena.
type Handle int

// NoThread is the zero value for a handle that has not been attached.
const NoThread Handle = -1

// CoThread is the state machine the scheduler advances. Advance() is called
// with the number of whole clocks the thread must consume.
type CoThread interface {
	Advance(clocks int)
}

// timeScale is the resolution of the shared timeline. one second of emulated
// time is timeScale ticks regardless of thread frequency.
const timeScale = 1 << 40

type thread struct {
	name  string
	scale uint64
	clock uint64
	co    CoThread
}

// Scheduler owns the thread arena.
type Scheduler struct {
	threads []*thread

	// the event posted by the most recent call to Exit()
	event Event
}

// sentinel error patterns for the scheduler package.
const (
	UnknownThread = "scheduler: unknown thread handle (%d)"
)

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Create attaches a CoThread running at the specified frequency (Hz) and
// returns a handle for it. If a thread of the same name is already attached
// it is replaced and keeps its handle; this is what "reattaching" a chip on
// power-cycle means in practice.
func (sch *Scheduler) Create(name string, frequency float64, co CoThread) Handle {
	t := &thread{
		name:  name,
		scale: uint64(timeScale / frequency),
		co:    co,
	}

	for i := range sch.threads {
		if sch.threads[i].name == name {
			sch.threads[i] = t
			return Handle(i)
		}
	}

	sch.threads = append(sch.threads, t)
	return Handle(len(sch.threads) - 1)
}

// Step charges the thread with the number of clocks at the thread's own
// frequency.
func (sch *Scheduler) Step(h Handle, clocks int) error {
	if h < 0 || int(h) >= len(sch.threads) {
		return curated.Errorf(UnknownThread, h)
	}
	t := sch.threads[h]
	t.clock += uint64(clocks) * t.scale
	return nil
}

// Synchronize advances every co-thread that is behind the thread on the
// shared timeline. Co-threads advance by whole clocks only, stopping as soon
// as they are no longer behind the synchronising thread.
func (sch *Scheduler) Synchronize(h Handle) error {
	if h < 0 || int(h) >= len(sch.threads) {
		return curated.Errorf(UnknownThread, h)
	}
	t := sch.threads[h]

	for i := range sch.threads {
		if Handle(i) == h {
			continue
		}

		co := sch.threads[i]
		for co.clock < t.clock {
			co.clock += co.scale
			co.co.Advance(1)
		}
	}

	return nil
}

// Exit posts an event to the scheduler. The host loop collects it with
// LastEvent().
func (sch *Scheduler) Exit(ev Event) {
	sch.event = ev
}

// LastEvent returns the most recently posted event and resets the pending
// event to EventNone.
func (sch *Scheduler) LastEvent() Event {
	ev := sch.event
	sch.event = EventNone
	return ev
}

// Reset the shared timeline. Thread attachments are retained.
func (sch *Scheduler) Reset() {
	for _, t := range sch.threads {
		t.clock = 0
	}
	sch.event = EventNone
}
