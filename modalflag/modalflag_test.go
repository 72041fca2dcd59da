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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/hazeltine/gopher8/modalflag"
	"github.com/hazeltine/gopher8/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"rom.ch8"})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "rom.ch8")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"analyze", "rom.ch8"})
	md.AddSubModes("RUN", "PLAY", "ANALYZE")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "ANALYZE")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.GetArg(0), "rom.ch8")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"rom.ch8"})
	md.AddSubModes("RUN", "PLAY")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "RUN")

	// the argument was not consumed by sub-mode selection
	md.NewMode()
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.GetArg(0), "rom.ch8")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"play", "-scale", "16", "rom.ch8"})
	md.AddSubModes("RUN", "PLAY")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "PLAY")

	md.NewMode()
	scale := md.AddInt("scale", 12, "window pixel scale")

	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, *scale, 16)
	test.Equate(t, md.GetArg(0), "rom.ch8")
}

// flags before a sub-mode select the default sub-mode and leave the
// arguments for the next layer
func TestFlagsWithoutSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-scale", "16", "rom.ch8"})
	md.AddSubModes("PLAY", "ANALYZE")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "PLAY")

	md.NewMode()
	scale := md.AddInt("scale", 12, "window pixel scale")

	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, *scale, 16)
}

func TestHelp(t *testing.T) {
	md := modalflag.Modes{}
	s := &strings.Builder{}
	md.Output = s

	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "PLAY")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseHelp, true)
	test.Equate(t, strings.Contains(s.String(), "RUN, PLAY"), true)
}

func TestPath(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"play"})
	md.AddSubModes("RUN", "PLAY")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Path(), "PLAY")
	test.Equate(t, md.String(), "PLAY")
}
