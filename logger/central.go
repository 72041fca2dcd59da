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

// Package logger is the central log for the project. There is only one log
// and it can be accessed through the package level functions.
//
// The collaborator packages (gui, debugger, cartridgeloader, etc.) log
// through this package. The engine core does not log, it returns errors.
package logger

import (
	"fmt"
	"io"
	"sync"
)

const maxCentral = 256

var central *logger
var crit sync.Mutex

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	crit.Lock()
	defer crit.Unlock()
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	crit.Lock()
	defer crit.Unlock()
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central logger.
func Clear() {
	crit.Lock()
	defer crit.Unlock()
	central.clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.write(output)
}

// Tail writes the last number of entries in the central logger to the
// io.Writer.
func Tail(output io.Writer, number int) {
	crit.Lock()
	defer crit.Unlock()
	central.tail(output, number)
}

// SetEcho prints entries to the io.Writer as they are logged. A nil value
// turns the echo off.
func SetEcho(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.echo = output
}

// BorrowLog gives the caller the opportunity to inspect the log entries
// without allocation.
func BorrowLog(f func([]Entry)) {
	crit.Lock()
	defer crit.Unlock()
	f(central.entries)
}
