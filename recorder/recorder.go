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

// Package recorder captures the TIA's mono audio stream to a WAV file. The
// Recorder attaches to a television as an AudioMixer; every frame's worth of
// samples is appended to the file and the WAV header is finalised when the
// television concludes.
package recorder

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/hardware/television/specification"
	"github.com/factor64/chroma2600/logger"
)

// sentinel error patterns for the recorder package.
const (
	RecordingError = "recorder: %v"
)

// Recorder writes the mono sample stream to a WAV file.
type Recorder struct {
	f   *os.File
	enc *wav.Encoder

	// reused between frames to avoid reallocation
	buf *audio.IntBuffer
}

var _ television.AudioMixer = (*Recorder)(nil)

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The recorder registers itself with the television.
func NewRecorder(filename string, tv *television.Television) (*Recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec := &Recorder{
		f:   f,
		enc: wav.NewEncoder(f, specification.AudioSampleFreq, 16, 1, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  specification.AudioSampleFreq,
			},
			SourceBitDepth: 16,
		},
	}

	tv.AddAudioMixer(rec)
	logger.Logf("recorder", "recording audio to %s", filename)

	return rec, nil
}

// SetAudio implements the television.AudioMixer interface.
func (rec *Recorder) SetAudio(samples []int16) error {
	if rec.enc == nil {
		return nil
	}

	rec.buf.Data = rec.buf.Data[:0]
	for _, s := range samples {
		rec.buf.Data = append(rec.buf.Data, int(s))
	}

	if err := rec.enc.Write(rec.buf); err != nil {
		return curated.Errorf(RecordingError, err)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface. The WAV header
// is finalised and the file closed.
func (rec *Recorder) EndMixing() error {
	if rec.enc == nil {
		return nil
	}

	err := rec.enc.Close()
	rec.enc = nil

	if cerr := rec.f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	return nil
}
