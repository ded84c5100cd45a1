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

// Package memory implements the address space of the DMG as seen from the
// CPU. The Memory type is the monolithic bus: every read and write from the
// driving component goes through its Read() and Write() functions, which
// decode the address and forward the access to the right part of the
// machine.
//
// The address space divides into five areas, defined by the memorymap
// package. The lower 32KB is cartridge space. Reads of the upper half of
// cartridge space are adjusted by the bank selected by the cartridge's bank
// controller; writes anywhere in cartridge space are handed to the bank
// controller, which interprets them as control register updates. The
// cartridge package implements the bank controllers.
//
// Above cartridge space is general purpose RAM (taking in what the real
// machine divides into video RAM, work RAM and the sprite attribute table),
// then the hardware register window at 0xff00, then the interrupt enable
// register at the very top.
//
// The DMA() function implements the block transfer that games use to
// populate the sprite attribute table. The bus is held for the duration of
// the transfer: reads return 0xff and writes are dropped, including the
// reads and writes of the transfer itself.
//
// Peek() and Poke() are inspection functions for use by the debugger. They
// follow the same address decoding as Read() and Write() but are never
// gated and never touch the bank controller.
package memory
