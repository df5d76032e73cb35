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

// Package bus defines the register bus concept. The CPU sees the TIA through
// the CPUBus interface; the address is the low six bits of the address bus
// and the value is the eight bits of the data bus.
package bus

// CPUBus defines the operations of a chip's register surface as accessed
// from the CPU.
type CPUBus interface {
	// Read returns the value of a read register. Addresses outside the read
	// register file return zero and no error; hardware does not complain.
	Read(address uint16) uint8

	// Write places a value in a write register. Writes to addresses outside
	// the write register file are silently rejected; they must never corrupt
	// internal state.
	Write(address uint16, value uint8)
}
