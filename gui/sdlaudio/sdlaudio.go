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

// Package sdlaudio queues the TIA's mono sample stream to an SDL audio
// device. The front end (SDL itself) applies no filtering; the stream is
// queued as it arrives, a frame's worth at a time.
package sdlaudio

import (
	"encoding/binary"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/hardware/television/specification"
	"github.com/factor64/chroma2600/logger"
)

// sentinel error patterns for the sdlaudio package.
const (
	SetupError = "sdlaudio: %v"
)

// flush the device queue when it runs this far ahead of realtime, in bytes.
const tooMuchQueued = 16384

// Audio is the SDL implementation of the television.AudioMixer interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// staging buffer, reused between frames
	bytes []byte
}

var _ television.AudioMixer = (*Audio)(nil)

// NewAudio is the preferred method of initialisation for the Audio type. The
// mixer registers itself with the television.
func NewAudio(tv *television.Television) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	aud := &Audio{}

	request := &sdl.AudioSpec{
		Freq:     specification.AudioSampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  512,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, request, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	tv.AddAudioMixer(aud)
	logger.Logf("sdlaudio", "device %d: %d samples/sec", aud.id, aud.spec.Freq)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	if aud.id == 0 {
		return nil
	}

	// emulation running faster than realtime can push the queue out of
	// hand; dropping the backlog is less intrusive than drifting latency
	if sdl.GetQueuedAudioSize(aud.id) > tooMuchQueued {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.bytes = aud.bytes[:0]
	for _, s := range samples {
		aud.bytes = binary.LittleEndian.AppendUint16(aud.bytes, uint16(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.bytes); err != nil {
		return curated.Errorf(SetupError, err)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	if aud.id == 0 {
		return nil
	}
	sdl.CloseAudioDevice(aud.id)
	aud.id = 0
	return nil
}
