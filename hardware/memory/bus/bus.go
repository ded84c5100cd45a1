// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU (or from a driver standing in for the CPU). All access is mediated by
// the address decoding of the memory package; the caller need not care which
// part of the address space it is reading or writing.
//
// Every operation is total over its typed domain. The address type is
// exactly 16 bits so there is no such thing as an out of range access and no
// error return.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// word access is little endian and unaligned. each byte of a word access
	// goes through the full byte dispatch which means a single word access
	// can touch two different areas of the address space
	ReadWord(address uint16) uint16
	WriteWord(address uint16, data uint16)
}

// DebuggerBus defines the meta-operations for the memory system. Think of
// these functions as "debugging" functions, that is operations outside of
// the normal operation of the machine. In particular, Peek and Poke are not
// gated by an in-progress DMA transfer the way Read and Write are.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}
