// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is the SDL playback window for the emulated machine. It
// owns no machine state: the display grid is read and the keypad written
// through the machine's Borrow() function, so the window only ever sees a
// self-consistent snapshot.
//
// SDL wants its windowing calls on the main OS thread. The Service()
// function MUST be called from the main goroutine, in a loop, for the
// lifetime of the window.
package sdlplay

import (
	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/hardware"
	"github.com/hazeltine/gopher8/hardware/video"
	"github.com/hazeltine/gopher8/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// frames per second for the window refresh. nothing to do with the machine's
// instruction rate or timer rate
const refreshRate = 60

// SdlPlay is a simple SDL window rendering the machine's display.
type SdlPlay struct {
	ch8 *hardware.Chip8

	// limit screen updates to a fixed fps
	lmtr *limiter.RateLimiter

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. it is equal to video.Cols * video.Rows * pixelDepth;
	// scaling to the window size is left to the renderer
	pixels []byte

	quit bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// scale argument is the size of a machine pixel in host pixels.
func NewSdlPlay(ch8 *hardware.Chip8, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{ch8: ch8}

	var err error

	// set up sdl
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Cols*scale), int32(video.Rows*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the display grid. the renderer scales it
	// to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(video.Cols), int32(video.Rows))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.Cols*video.Rows*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.lmtr = limiter.NewRateLimiter(refreshRate)

	return scr, nil
}

// Destroy tears the window down.
func (scr *SdlPlay) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}

// render the current display grid. the grid is copied under the machine lock
// and the SDL work happens after the lock is released.
func (scr *SdlPlay) render() error {
	var grid [video.Rows][video.Cols]bool
	scr.ch8.Borrow(func() {
		grid = scr.ch8.Video.Snapshot()
	})

	i := 0
	for y := 0; y < video.Rows; y++ {
		for x := 0; x < video.Cols; x++ {
			var lum byte
			if grid[y][x] {
				lum = 255
			}
			scr.pixels[i] = lum
			scr.pixels[i+1] = lum
			scr.pixels[i+2] = lum
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Cols*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return nil
}
