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

// Package curated is the error type used throughout Gopher8. Errors are
// created with the Errorf() function, which looks like fmt.Errorf() but with
// one difference: the formatting string (called the pattern) is retained and
// acts as a sentinel for the error.
//
// Packages declare their error patterns as string constants. For example, the
// instructions package declares:
//
//	const UnknownOpcode = "instructions: unknown opcode (%#04x)"
//
// and a caller that wants to react to that specific condition asks:
//
//	if curated.Is(err, instructions.UnknownOpcode) {
//		...
//	}
//
// The Has() function is like Is() but looks for the pattern anywhere in the
// chain of wrapped curated errors. A curated error wraps another simply by
// including it as one of the pattern arguments:
//
//	curated.Errorf("disassembly: %v", err)
package curated
