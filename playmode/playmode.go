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

// Package playmode runs the console for normal play. Two entry points: the
// SDL window, and a headless mode that plays audio through the pure-Go
// backend and takes keyboard input from the raw terminal.
package playmode

import (
	"time"

	"github.com/pkg/term"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/gui/otoaudio"
	"github.com/factor64/chroma2600/gui/sdlaudio"
	"github.com/factor64/chroma2600/gui/sdlplay"
	"github.com/factor64/chroma2600/hardware"
	"github.com/factor64/chroma2600/hardware/input"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/recorder"
)

// sentinel error patterns for the playmode package.
const (
	PlayError = "playmode: %v"
)

// Play runs the console in an SDL window until the user quits. A non-empty
// wavFile captures the audio stream alongside playback.
func Play(spec string, wavFile string) error {
	tv, err := television.NewTelevision(spec)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	con := hardware.NewConsole(tv, nil)

	scr, err := sdlplay.NewSdlPlay(tv, con.Input)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.Destroy()

	if _, err := sdlaudio.NewAudio(tv); err != nil {
		return curated.Errorf(PlayError, err)
	}

	if wavFile != "" {
		if _, err := recorder.NewRecorder(wavFile, tv); err != nil {
			return curated.Errorf(PlayError, err)
		}
	}

	con.Power()

	err = con.Run(func() (bool, error) {
		return scr.Service(), nil
	})
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	return tv.End()
}

// Headless runs the console without video. Audio plays through the pure-Go
// backend; the raw terminal supplies keyboard input ('q' quits, space is the
// player 0 fire button). A frame limit of zero means run until quit.
func Headless(spec string, frames int, silent bool) error {
	tv, err := television.NewTelevision(spec)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	con := hardware.NewConsole(tv, nil)

	if !silent {
		if _, err := otoaudio.NewAudio(tv); err != nil {
			return curated.Errorf(PlayError, err)
		}
	}

	// raw mode keyboard. not all environments have a terminal to open so a
	// failure here degrades to input-less running
	kbd, kbdErr := term.Open("/dev/tty", term.RawMode)
	if kbdErr == nil {
		kbd.SetReadTimeout(time.Millisecond)
		defer func() {
			kbd.Restore()
			kbd.Close()
		}()
	}

	con.Power()

	count := 0
	err = con.Run(func() (bool, error) {
		count++
		if frames > 0 && count >= frames {
			return false, nil
		}

		if kbdErr != nil {
			return true, nil
		}

		b := make([]byte, 1)
		n, _ := kbd.Read(b)
		if n == 0 {
			return true, nil
		}

		switch b[0] {
		case 'q', 0x03:
			return false, nil
		case ' ':
			// raw terminals report presses but not releases so space
			// presses the fire button and any other key releases it
			con.Input.SetTrigger(input.Trigger0, true)
		default:
			con.Input.SetTrigger(input.Trigger0, false)
		}

		return true, nil
	})
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	return tv.End()
}
