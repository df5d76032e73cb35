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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/factor64/chroma2600/hardware/television"
)

// Audio is an implementation of the television.AudioMixer interface that
// generates a SHA-1 value of the sample stream. It makes no sound.
type Audio struct {
	digest [sha1.Size]byte
}

var _ television.AudioMixer = (*Audio)(nil)
var _ Digest = (*Audio)(nil)

// NewAudio is the preferred method of initialisation for the Audio type. The
// digest registers itself with the television.
func NewAudio(tv *television.Television) *Audio {
	dig := &Audio{}
	tv.AddAudioMixer(dig)
	return dig
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(samples []int16) error {
	h := sha1.New()
	h.Write(dig.digest[:])
	for _, s := range samples {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(s))
		h.Write(b[:])
	}
	copy(dig.digest[:], h.Sum(nil))
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
