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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

// keymap lays the 4x4 keypad over the left hand side of a conventional host
// keyboard:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var keymap = map[sdl.Keycode]int{
	sdl.K_1: 0x01, sdl.K_2: 0x02, sdl.K_3: 0x03, sdl.K_4: 0x0c,
	sdl.K_q: 0x04, sdl.K_w: 0x05, sdl.K_e: 0x06, sdl.K_r: 0x0d,
	sdl.K_a: 0x07, sdl.K_s: 0x08, sdl.K_d: 0x09, sdl.K_f: 0x0e,
	sdl.K_z: 0x0a, sdl.K_x: 0x00, sdl.K_c: 0x0b, sdl.K_v: 0x0f,
}

// Service one frame of the window: poll queued SDL events, then render the
// display at the refresh rate. Returns false once the window has been asked
// to close.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Service() (bool, error) {
	// loop until there are no more events to retrieve, so that queued events
	// never lag the frame rate
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			scr.serviceKeyboard(ev)
		}
	}

	if scr.quit {
		return false, nil
	}

	scr.lmtr.Wait()

	err := scr.render()
	if err != nil {
		return false, err
	}

	return true, nil
}

func (scr *SdlPlay) serviceKeyboard(ev *sdl.KeyboardEvent) {
	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE:
		if ev.Type == sdl.KEYDOWN {
			scr.quit = true
		}
		return

	case sdl.K_F12:
		if ev.Type == sdl.KEYDOWN {
			scr.ch8.Reset()
		}
		return
	}

	key, ok := keymap[ev.Keysym.Sym]
	if !ok {
		return
	}

	scr.ch8.Borrow(func() {
		if ev.Type == sdl.KEYDOWN {
			scr.ch8.Keypad.Press(key)
		} else {
			scr.ch8.Keypad.Release(key)
		}
	})
}
