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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hazeltine/gopher8/curated"
	"github.com/hazeltine/gopher8/hardware/memory"
)

// Loader is used to specify the ROM to attach to the emulated machine.
type Loader struct {
	// filename of ROM to load
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the ROM filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = shortCartName[:len(shortCartName)-len(filepath.Ext(cl.Filename))]
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM into memory. A ROM larger than the machine's program space is
// rejected here rather than left for memory.Attach() to find. An odd-length
// ROM is tolerated; the trailing byte is loaded but is never part of a whole
// instruction.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	var err error

	cl.Data, err = os.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if len(cl.Data) > memory.MemorySize-memory.Origin {
		return curated.Errorf("cartridgeloader: %v",
			fmt.Sprintf("%s is too large for program space (%d bytes)", cl.ShortName(), len(cl.Data)))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}
