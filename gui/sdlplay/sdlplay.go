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

// Package sdlplay is the SDL video front end. It attaches to a television
// as a PixelRenderer, resolves palette indices to RGB through the
// specification and presents the frame in an SDL window.
//
// SDL requires servicing from the main thread. The Service() function polls
// the event queue and must be called between frames; it also forwards
// keyboard state to the input sub-system.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/hardware/input"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/hardware/television/specification"
	"github.com/factor64/chroma2600/logger"
)

// sentinel error patterns for the sdlplay package.
const (
	SetupError = "sdlplay: %v"
)

// pixel scaling of the window relative to the TIA pixel plane. TIA pixels
// are roughly twice as wide as they are tall.
const (
	scaleX = 6
	scaleY = 3
)

// SdlPlay is the SDL implementation of the television.PixelRenderer
// interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	spec specification.Spec

	// RGBA staging buffer for texture updates
	rgba []byte

	// the input ports keyboard state is forwarded to
	inp *input.Input

	// set when the user has asked to quit
	quit bool
}

var _ television.PixelRenderer = (*SdlPlay)(nil)

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The renderer registers itself with the television.
func NewSdlPlay(tv *television.Television, inp *input.Input) (*SdlPlay, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	scr := &SdlPlay{
		spec: tv.GetSpec(),
		inp:  inp,
	}

	var err error

	scr.window, err = sdl.CreateWindow("Chroma2600",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(specification.WidthPlane*scaleX), int32(scr.spec.DisplayHeight*scaleY),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(specification.WidthPlane), int32(scr.spec.DisplayHeight))
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	scr.rgba = make([]byte, specification.WidthPlane*scr.spec.DisplayHeight*4)

	tv.AddPixelRenderer(scr)
	logger.Logf("sdlplay", "window %dx%d", specification.WidthPlane*scaleX, scr.spec.DisplayHeight*scaleY)

	return scr, nil
}

// NewFrame implements the television.PixelRenderer interface. The palette
// indices are resolved to RGB and the texture presented.
func (scr *SdlPlay) NewFrame(pixels []uint8, _ television.FrameInfo) error {
	for i, idx := range pixels {
		col := scr.spec.Color(idx)
		scr.rgba[i*4] = col.R
		scr.rgba[i*4+1] = col.G
		scr.rgba[i*4+2] = col.B
		scr.rgba[i*4+3] = col.A
	}

	if err := scr.texture.Update(nil, scr.rgba, specification.WidthPlane*4); err != nil {
		return curated.Errorf(SetupError, err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SetupError, err)
	}
	scr.renderer.Present()

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	scr.Destroy()
	return nil
}

// Service polls the SDL event queue. Must be called from the main thread
// between frames. Returns false when the user has asked to quit.
func (scr *SdlPlay) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			pressed := ev.Type == sdl.KEYDOWN
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				if pressed {
					scr.quit = true
				}
			case sdl.K_SPACE:
				scr.inp.SetTrigger(input.Trigger0, pressed)
			case sdl.K_RSHIFT:
				scr.inp.SetTrigger(input.Trigger1, pressed)
			}
		}
	}

	return !scr.quit
}

// Destroy releases the SDL resources used by the window.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		scr.window.Destroy()
		scr.window = nil
	}
}
