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

package memorymap

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case BankedROM:
		return "BankedROM"
	case RAM:
		return "RAM"
	case IO:
		return "IO"
	case InterruptEnable:
		return "InterruptEnable"
	}

	return "undefined"
}

// The different areas of the DMG address space.
const (
	Undefined Area = iota
	ROM
	BankedROM
	RAM
	IO
	InterruptEnable
)

// The origin and memory top for each area of the address space. The address
// type is exactly 16 bits wide so every address falls into one of the areas;
// there are no unmapped or mirrored addresses at this level.
//
// The ROM area is never banked. The BankedROM area is adjusted by the
// cartridge's bank controller on every read. The RAM area covers video RAM,
// working RAM, the echo region and the sprite attribute table, none of which
// are banked. The IO area is a 256 byte window of hardware registers and the
// single address at the very top of the address space is the interrupt
// enable register.
const (
	OriginROM       = uint16(0x0000)
	MemtopROM       = uint16(0x3fff)
	OriginBankedROM = uint16(0x4000)
	MemtopBankedROM = uint16(0x7fff)
	OriginRAM       = uint16(0x8000)
	MemtopRAM       = uint16(0xfeff)
	OriginIO        = uint16(0xff00)
	MemtopIO        = uint16(0xfffe)
	AddressIntr     = uint16(0xffff)
)

// The cartridge control range. Writes to any address at or below
// MemtopControl are interpreted by the cartridge's bank controller.
const (
	OriginControl = OriginROM
	MemtopControl = MemtopBankedROM
)

// BankSize is the number of bytes in a single cartridge bank. The effective
// address of a banked read is the requested address plus the resolved bank
// number multiplied by BankSize.
const BankSize = uint16(0x4000)

// The fixed source and destination addresses used by the OAM DMA transfer.
// The source address is the page given in the write to the DMA register,
// shifted into the high byte.
const (
	OriginDMA = uint16(0xfe00)
	MemtopDMA = uint16(0xfe9f)
)

// MapAddress returns the area the address falls within.
//
// Unlike address mapping in machines with mirrored address spaces there is
// no address translation; the returned area is purely informational. The
// memory package implements the same dispatch with direct comparisons.
func MapAddress(address uint16) Area {
	// note that the order of these filters is important

	if address <= MemtopROM {
		return ROM
	}

	if address <= MemtopBankedROM {
		return BankedROM
	}

	if address <= MemtopRAM {
		return RAM
	}

	if address <= MemtopIO {
		return IO
	}

	return InterruptEnable
}
