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

// Package addresses enumerates the registers of the TIA as they appear on
// the 6-bit register bus. Write registers and read registers occupy separate
// address spaces; the chip selects between them with the R/W line.
package addresses

// TIA write registers. These are the values the CPU places on the low six
// bits of the address bus when writing to the TIA.
const (
	VSYNC uint16 = iota
	VBLANK
	WSYNC
	RSYNC
	NUSIZ0
	NUSIZ1
	COLUP0
	COLUP1
	COLUPF
	COLUBK
	CTRLPF
	REFP0
	REFP1
	PF0
	PF1
	PF2
	RESP0
	RESP1
	RESM0
	RESM1
	RESBL
	AUDC0
	AUDC1
	AUDF0
	AUDF1
	AUDV0
	AUDV1
	GRP0
	GRP1
	ENAM0
	ENAM1
	ENABL
	HMP0
	HMP1
	HMM0
	HMM1
	HMBL
	VDELP0
	VDELP1
	VDELBL
	RESMP0
	RESMP1
	HMOVE
	HMCLR
	CXCLR
)

// LastWriteAddress is the highest valid write register address. Writes above
// this address are silently rejected by the bus surface.
const LastWriteAddress = CXCLR

// TIA read registers. The collision register file and the input ports.
const (
	CXM0P uint16 = iota
	CXM1P
	CXP0FB
	CXP1FB
	CXM0FB
	CXM1FB
	CXBLPF
	CXPPMM
	INPT0
	INPT1
	INPT2
	INPT3
	INPT4
	INPT5
)

// LastReadAddress is the highest valid read register address.
const LastReadAddress = INPT5

// WriteRegisterNames is the canonical name of each write register, indexed
// by address. Used for logging and by the debugging aids.
var WriteRegisterNames = []string{
	"VSYNC", "VBLANK", "WSYNC", "RSYNC",
	"NUSIZ0", "NUSIZ1", "COLUP0", "COLUP1",
	"COLUPF", "COLUBK", "CTRLPF", "REFP0", "REFP1",
	"PF0", "PF1", "PF2",
	"RESP0", "RESP1", "RESM0", "RESM1", "RESBL",
	"AUDC0", "AUDC1", "AUDF0", "AUDF1", "AUDV0", "AUDV1",
	"GRP0", "GRP1", "ENAM0", "ENAM1", "ENABL",
	"HMP0", "HMP1", "HMM0", "HMM1", "HMBL",
	"VDELP0", "VDELP1", "VDELBL",
	"RESMP0", "RESMP1",
	"HMOVE", "HMCLR", "CXCLR",
}

// ReadRegisterNames is the canonical name of each read register, indexed by
// address.
var ReadRegisterNames = []string{
	"CXM0P", "CXM1P", "CXP0FB", "CXP1FB",
	"CXM0FB", "CXM1FB", "CXBLPF", "CXPPMM",
	"INPT0", "INPT1", "INPT2", "INPT3", "INPT4", "INPT5",
}
