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

// Package memorymap defines the areas of the DMG address space and the
// constants used when decoding an address. The decoding table:
//
//	0x0000 to 0x3fff	ROM (never banked; cartridge control on write)
//	0x4000 to 0x7fff	banked ROM window (cartridge control on write)
//	0x8000 to 0xfeff	RAM, video RAM, sprite attribute table
//	0xff00 to 0xfffe	hardware registers (256 byte window)
//	0xffff			interrupt enable register
//
// The memory package is the only user of these constants during emulation
// but they are exported for use by the debugger and by tests.
package memorymap
