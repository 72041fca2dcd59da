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

// Package terminal is a thin wrapper for "github.com/pkg/term/termios". It
// wraps termios attributes in functions with friendlier names and provides
// the single-keypress input the debugger monitor is built on.
package terminal

import (
	"fmt"
	"os"

	"github.com/hazeltine/gopher8/curated"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is a posix terminal switchable between canonical and cbreak
// modes.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal starts in canonical mode.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	pt := &Terminal{
		input:  input,
		output: output,
	}

	// prepare the attributes for the two terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

// CBreakMode puts the terminal into cbreak mode: input is available one
// keypress at a time, without echo.
func (pt *Terminal) CBreakMode() error {
	err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// CanonicalMode puts the terminal back into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// ReadKey blocks until a single keypress is available. Only useful in cbreak
// mode; in canonical mode nothing arrives until a whole line has been typed.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	_, err := pt.input.Read(b)
	if err != nil {
		return 0, curated.Errorf("terminal: %v", err)
	}
	return b[0], nil
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}
