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
	"fmt"

	"github.com/factor64/chroma2600/hardware/television"
)

// Video is an implementation of the television.PixelRenderer interface that
// generates a SHA-1 value of the pixel plane every frame. It does not
// display the image anywhere.
type Video struct {
	digest   [sha1.Size]byte
	frameNum int
}

var _ television.PixelRenderer = (*Video)(nil)
var _ Digest = (*Video)(nil)

// NewVideo is the preferred method of initialisation for the Video type. The
// digest registers itself with the television.
func NewVideo(tv *television.Television) *Video {
	dig := &Video{}
	tv.AddPixelRenderer(dig)
	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// NewFrame implements the television.PixelRenderer interface. Fingerprints
// are chained: the previous digest seeds the hash of the new frame.
func (dig *Video) NewFrame(pixels []uint8, info television.FrameInfo) error {
	h := sha1.New()
	h.Write(dig.digest[:])
	h.Write(pixels)
	copy(dig.digest[:], h.Sum(nil))
	dig.frameNum = info.FrameNum
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
