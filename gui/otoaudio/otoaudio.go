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

// Package otoaudio plays the TIA's mono sample stream through the oto
// library. Unlike the SDL mixer this backend is pure Go, which makes it the
// audio path for headless play where no SDL context exists.
package otoaudio

import (
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/hardware/television/specification"
	"github.com/factor64/chroma2600/logger"
)

// sentinel error patterns for the otoaudio package.
const (
	SetupError = "otoaudio: %v"
)

// Audio is the oto implementation of the television.AudioMixer interface.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player

	// sample bytes waiting for the player. the player's read goroutine
	// drains the buffer; the emulation thread appends to it
	crit    sync.Mutex
	pending []byte
}

var _ television.AudioMixer = (*Audio)(nil)
var _ io.Reader = (*Audio)(nil)

// NewAudio is the preferred method of initialisation for the Audio type. The
// mixer registers itself with the television.
func NewAudio(tv *television.Television) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   specification.AudioSampleFreq,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}
	<-ready

	aud := &Audio{ctx: ctx}
	aud.player = ctx.NewPlayer(aud)
	aud.player.Play()

	tv.AddAudioMixer(aud)
	logger.Logf("otoaudio", "playing at %d samples/sec", specification.AudioSampleFreq)

	return aud, nil
}

// Read implements the io.Reader interface consumed by the oto player.
// Underruns are padded with silence rather than blocking the audio thread.
func (aud *Audio) Read(p []byte) (int, error) {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	n := copy(p, aud.pending)
	aud.pending = aud.pending[n:]

	for n < len(p) {
		p[n] = 0
		n++
	}

	return n, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	// drop the backlog if the emulation runs far ahead of the player
	if len(aud.pending) > specification.AudioSampleFreq {
		aud.pending = aud.pending[:0]
	}

	for _, s := range samples {
		aud.pending = append(aud.pending, byte(s), byte(s>>8))
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	if aud.player != nil {
		aud.player.Close()
		aud.player = nil
	}
	return nil
}
