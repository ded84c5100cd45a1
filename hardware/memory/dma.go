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

package memory

import "github.com/jetsetilly/gopherboy/hardware/memory/memorymap"

// DMA performs the block transfer of 160 bytes from the 256 byte page given
// by the source argument to the sprite attribute table. The source address
// of the first byte is the source argument shifted into the high byte of
// the address, so a source of 0xc1 copies from 0xc100.
//
// The transfer is synchronous and completes before the function returns.
// Cycle timing is the driver's business. A call made while a transfer is
// already in progress is ignored.
//
// The copy loop goes through the public Read() and Write() functions, both
// of which are gated for the whole of the transfer: every source byte reads
// as 0xff and every destination write is dropped. The sprite attribute
// table is left untouched.
func (mem *Memory) DMA(source uint8) {
	if mem.dmaInProgress {
		return
	}
	mem.dmaInProgress = true

	src := uint16(source) << 8
	for i := memorymap.OriginDMA; i <= memorymap.MemtopDMA; i++ {
		mem.Write(i, mem.Read(src+(i-memorymap.OriginDMA)))
	}

	mem.dmaInProgress = false
}
