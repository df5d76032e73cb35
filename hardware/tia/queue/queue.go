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

// Package queue implements the deferred-write mechanism of the TIA. Many
// register writes do not take effect on the colour clock of the bus write;
// the ripple counters inside the chip delay them by a handful of clocks.
//
// A write is submitted with Push() and a delay in colour clocks. Step() is
// called once per colour clock; a write whose delay has elapsed is committed
// through the commit function given at creation. Writes with equal delays
// commit in submission order.
//
// The queue is bounded. Overflow is an implementation invariant violation,
// not a modelled hardware condition, so Push() panics rather than returning
// an error.
package queue

import (
	"fmt"
	"strings"

	"github.com/factor64/chroma2600/state"
)

// Capacity of the queue. Comfortably more than the number of writes the CPU
// can issue inside the longest register delay.
const Capacity = 32

type entry struct {
	active  bool
	delay   int
	address uint16
	value   uint8
}

// Queue is the bounded ring of pending register writes.
type Queue struct {
	commit func(address uint16, value uint8)

	entries [Capacity]entry

	// insertion order is preserved by treating the array as a ring
	head  int
	count int
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// commit function receives every write whose delay has elapsed.
func NewQueue(commit func(address uint16, value uint8)) *Queue {
	return &Queue{commit: commit}
}

// Push submits a write for deferred commit. A delay of n means the write is
// committed on the nth following call to Step(). A delay of zero (or less)
// commits immediately, without waiting for a Step().
func (q *Queue) Push(delay int, address uint16, value uint8) {
	if delay <= 0 {
		q.commit(address, value)
		return
	}

	if q.count >= Capacity {
		panic("queue: write queue overflow")
	}

	i := (q.head + q.count) % Capacity
	q.entries[i] = entry{active: true, delay: delay, address: address, value: value}
	q.count++
}

// Step advances the queue by one colour clock. Every pending delay is
// decremented; writes that reach zero are committed in submission order.
func (q *Queue) Step() {
	for n := 0; n < q.count; n++ {
		i := (q.head + n) % Capacity
		q.entries[i].delay--
		if q.entries[i].delay <= 0 {
			q.commit(q.entries[i].address, q.entries[i].value)
			q.entries[i].active = false
		}
	}

	// compact the ring, preserving submission order of the survivors
	head := q.head
	count := q.count
	q.head = 0
	q.count = 0
	for n := 0; n < count; n++ {
		i := (head + n) % Capacity
		if q.entries[i].active {
			e := q.entries[i]
			q.entries[i].active = false
			j := (q.head + q.count) % Capacity
			q.entries[j] = e
			q.count++
		}
	}
}

// Pending returns the number of writes waiting in the queue.
func (q *Queue) Pending() int {
	return q.count
}

// Reset empties the queue.
func (q *Queue) Reset() {
	q.head = 0
	q.count = 0
	for i := range q.entries {
		q.entries[i] = entry{}
	}
}

func (q *Queue) String() string {
	s := strings.Builder{}
	for n := 0; n < q.count; n++ {
		i := (q.head + n) % Capacity
		s.WriteString(fmt.Sprintf("%#02x=%#02x -> %d\n", q.entries[i].address, q.entries[i].value, q.entries[i].delay))
	}
	return s.String()
}

// Serialize visits the queue contents for the state package.
func (q *Queue) Serialize(s *state.Serializer) {
	s.Int(&q.head)
	s.Int(&q.count)
	for i := range q.entries {
		s.Bool(&q.entries[i].active)
		s.Int(&q.entries[i].delay)
		s.U16(&q.entries[i].address)
		s.U8(&q.entries[i].value)
	}
}
