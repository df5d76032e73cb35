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

// Package television is the sink for the TIA's video and audio output. The
// TIA plots 7-bit palette indices into a pixel plane of WidthPlane columns
// and DisplayHeight rows, and mixes mono audio samples into a per-frame
// buffer. When the TIA announces the end of a frame, the plane and the
// samples are forwarded to every attached PixelRenderer and AudioMixer.
//
// The palette is resolved outside of the emulation core; renderers call
// Spec.Color() (or supply their own palette) to turn indices into RGB.
package television

import (
	"fmt"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/hardware/television/coords"
	"github.com/factor64/chroma2600/hardware/television/specification"
)

// sentinel error patterns for the television package.
const (
	UnsupportedSpec = "television: unsupported spec (%s)"
)

// FrameInfo summarises the frame being forwarded to a PixelRenderer.
type FrameInfo struct {
	Spec     specification.Spec
	FrameNum int

	// true when the frame ended through the runaway-VBLANK safety valve
	// rather than a VSYNC
	Unsynced bool
}

// PixelRenderer implementations consume frames of palette indices. The
// pixels slice is WidthPlane * DisplayHeight long and is owned by the
// television; implementations must not retain it across calls.
type PixelRenderer interface {
	NewFrame(pixels []uint8, info FrameInfo) error
	EndRendering() error
}

// AudioMixer implementations consume the mono sample stream. Samples arrive
// once per frame.
type AudioMixer interface {
	SetAudio(samples []int16) error
	EndMixing() error
}

// Television is the destination for everything the TIA produces.
type Television struct {
	spec specification.Spec

	// the pixel plane. indices are 7-bit palette values, laid out
	// row-major with the PlaneMargin offset applied by Plot()
	pixels []uint8

	// mono audio accumulated over the current frame
	samples []int16

	renderers []PixelRenderer
	mixers    []AudioMixer

	frameNum int

	// how the most recent frame ended. set with the unsynced argument of
	// Frame()
	unsynced bool

	// the coordinates most recently reported by the TIA with SetCoords()
	current coords.TelevisionCoords
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision(spec string) (*Television, error) {
	s, ok := specification.GetSpec(spec)
	if !ok {
		return nil, curated.Errorf(UnsupportedSpec, spec)
	}

	tv := &Television{
		spec:    s,
		pixels:  make([]uint8, specification.WidthPlane*s.DisplayHeight),
		samples: make([]int16, 0, s.VLines*specification.SamplesPerScanline),
	}

	return tv, nil
}

func (tv *Television) String() string {
	return fmt.Sprintf("FR=%04d SL=%03d CL=%03d", tv.current.Frame, tv.current.Scanline, tv.current.Clock)
}

// GetSpec returns the specification the television was created with.
func (tv *Television) GetSpec() specification.Spec {
	return tv.spec
}

// AddPixelRenderer attaches an implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	for i := range tv.renderers {
		if tv.renderers[i] == r {
			return
		}
	}
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer attaches an implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	for i := range tv.mixers {
		if tv.mixers[i] == m {
			return
		}
	}
	tv.mixers = append(tv.mixers, m)
}

// Plot writes a palette index into the pixel plane. The x coordinate is in
// the range [0, ClksVisible) and y in the range (0, DisplayHeight).
// Coordinates outside those ranges are ignored; the margins of the plane are
// left at zero for overscan safety.
func (tv *Television) Plot(x, y int, index uint8) {
	if x < 0 || x >= specification.ClksVisible {
		return
	}
	if y <= 0 || y >= tv.spec.DisplayHeight {
		return
	}
	tv.pixels[y*specification.WidthPlane+specification.PlaneMargin+x] = index
}

// Pixel returns the palette index at the plotted coordinate. Used by tests
// and debugging aids; renderers receive the whole plane.
func (tv *Television) Pixel(x, y int) uint8 {
	if x < 0 || x >= specification.ClksVisible {
		return 0
	}
	if y <= 0 || y >= tv.spec.DisplayHeight {
		return 0
	}
	return tv.pixels[y*specification.WidthPlane+specification.PlaneMargin+x]
}

// AudioSample adds a sample to the frame's audio buffer.
func (tv *Television) AudioSample(v int16) {
	tv.samples = append(tv.samples, v)
}

// SetCoords is called by the TIA to keep the television's idea of the beam
// position up to date.
func (tv *Television) SetCoords(scanline, clock int) {
	tv.current.Frame = tv.frameNum
	tv.current.Scanline = scanline
	tv.current.Clock = clock
}

// GetCoords returns the current television coordinates.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	return tv.current
}

// Frame concludes the current frame: the pixel plane and the audio buffer
// are forwarded to the attached renderers and mixers. The unsynced argument
// is true when the frame ended through the safety valve rather than VSYNC.
func (tv *Television) Frame(unsynced bool) error {
	tv.unsynced = unsynced

	info := FrameInfo{
		Spec:     tv.spec,
		FrameNum: tv.frameNum,
		Unsynced: unsynced,
	}

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.pixels, info); err != nil {
			return curated.Errorf("television: %v", err)
		}
	}

	for _, m := range tv.mixers {
		if err := m.SetAudio(tv.samples); err != nil {
			return curated.Errorf("television: %v", err)
		}
	}

	tv.samples = tv.samples[:0]
	tv.frameNum++

	return nil
}

// IsFrameNum returns true if the current frame number equals the argument.
func (tv *Television) IsFrameNum(frame int) bool {
	return tv.frameNum == frame
}

// Power clears the framebuffer and resets the frame count.
func (tv *Television) Power() {
	for i := range tv.pixels {
		tv.pixels[i] = 0
	}
	tv.samples = tv.samples[:0]
	tv.frameNum = 0
	tv.current = coords.TelevisionCoords{}
}

// End gently concludes the television, closing down every attached renderer
// and mixer.
func (tv *Television) End() error {
	var err error

	for _, r := range tv.renderers {
		err = r.EndRendering()
	}
	for _, m := range tv.mixers {
		err = m.EndMixing()
	}

	return err
}
