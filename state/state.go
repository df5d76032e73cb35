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

// Package state implements the flat field-list serializer used for save
// states. A type that wants to be persisted implements the Snapshotter
// interface and visits every field, in declaration order, with the
// appropriate Serializer method. The same visiting function serves both
// directions; the Serializer decides whether a visited field is read or
// written.
//
// No file format is defined here. The caller takes the byte slice from a
// saving Serializer and is responsible for where it goes.
package state

import (
	"encoding/binary"

	"github.com/factor64/chroma2600/curated"
)

// sentinel error patterns for the state package.
const (
	TruncatedState = "state: truncated state data"
)

// Snapshotter is implemented by types that can be serialized with this
// package. The implementation must visit every persistent field in
// declaration order.
type Snapshotter interface {
	Serialize(s *Serializer)
}

// Serializer visits the fields of a Snapshotter. Use NewSaver() or
// NewLoader() as appropriate.
type Serializer struct {
	saving bool
	data   []byte
	err    error
}

// NewSaver creates a Serializer that records visited fields.
func NewSaver() *Serializer {
	return &Serializer{saving: true}
}

// NewLoader creates a Serializer that restores visited fields from
// previously recorded data.
func NewLoader(data []byte) *Serializer {
	return &Serializer{data: data}
}

// Data returns the accumulated bytes of a saving Serializer.
func (s *Serializer) Data() []byte {
	return s.data
}

// Err returns the first error encountered while visiting fields. For a
// saving Serializer the value is always nil.
func (s *Serializer) Err() error {
	return s.err
}

func (s *Serializer) take(n int) []byte {
	if s.err != nil {
		return nil
	}
	if len(s.data) < n {
		s.err = curated.Errorf(TruncatedState)
		return nil
	}
	b := s.data[:n]
	s.data = s.data[n:]
	return b
}

// Bool visits a bool field.
func (s *Serializer) Bool(v *bool) {
	if s.saving {
		var b byte
		if *v {
			b = 1
		}
		s.data = append(s.data, b)
		return
	}
	if b := s.take(1); b != nil {
		*v = b[0] != 0
	}
}

// U8 visits a uint8 field.
func (s *Serializer) U8(v *uint8) {
	if s.saving {
		s.data = append(s.data, *v)
		return
	}
	if b := s.take(1); b != nil {
		*v = b[0]
	}
}

// U16 visits a uint16 field.
func (s *Serializer) U16(v *uint16) {
	if s.saving {
		s.data = binary.LittleEndian.AppendUint16(s.data, *v)
		return
	}
	if b := s.take(2); b != nil {
		*v = binary.LittleEndian.Uint16(b)
	}
}

// U32 visits a uint32 field.
func (s *Serializer) U32(v *uint32) {
	if s.saving {
		s.data = binary.LittleEndian.AppendUint32(s.data, *v)
		return
	}
	if b := s.take(4); b != nil {
		*v = binary.LittleEndian.Uint32(b)
	}
}

// Int visits an int field. The field is stored as 64 bits regardless of the
// width of the host int type.
func (s *Serializer) Int(v *int) {
	if s.saving {
		s.data = binary.LittleEndian.AppendUint64(s.data, uint64(int64(*v)))
		return
	}
	if b := s.take(8); b != nil {
		*v = int(int64(binary.LittleEndian.Uint64(b)))
	}
}

// U8s visits a uint8 slice field. The length of the slice is fixed by the
// visiting type; only the contents are serialized.
func (s *Serializer) U8s(v []uint8) {
	for i := range v {
		s.U8(&v[i])
	}
}

// Ints visits an int slice field.
func (s *Serializer) Ints(v []int) {
	for i := range v {
		s.Int(&v[i])
	}
}

// Bools visits a bool slice field.
func (s *Serializer) Bools(v []bool) {
	for i := range v {
		s.Bool(&v[i])
	}
}
