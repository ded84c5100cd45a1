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

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

var _ bus.CPUBus = (*Memory)(nil)
var _ bus.DebuggerBus = (*Memory)(nil)

// Memory presents a monolithic representation of the DMG address space. The
// driving component only ever accesses the machine through an instance of
// this structure; the address decoding in Read() and Write() hides which
// part of the machine an address belongs to.
//
// Memory must be owned by exactly one driver. There is no internal locking;
// concurrent access from more than one goroutine requires external
// synchronisation.
type Memory struct {
	// the flat array covering the whole of the address space. cartridge
	// banks are pre-loaded at offsets of memorymap.BankSize and reads of the
	// banked ROM window are adjusted to the correct offset on the fly
	storage [0x10000]uint8

	// the hardware registers, mirroring the 0xff00 window
	registers [0x100]uint8

	// the interrupt enable register at the very top of the address space
	interruptEnable uint8

	// the bank selected externally with SetBank(). only honoured by the
	// NONE bank controller
	activeBank uint8

	// true for the duration of a DMA() call. while true the bus is held by
	// the transfer: every read returns 0xff and every write is dropped
	dmaInProgress bool

	// the cartridge's bank controller
	cart *cartridge.Cartridge
}

// NewMemory is the preferred method of initialisation for the Memory type.
// A nil cartridge argument attaches the NONE bank controller.
func NewMemory(cart *cartridge.Cartridge) *Memory {
	if cart == nil {
		// the NONE controller cannot fail construction
		cart, _ = cartridge.NewCartridge("NONE")
	}

	return &Memory{cart: cart}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%v\nvisible bank: %d", mem.cart, mem.cart.ResolveBank(mem.activeBank))
}

// Cart returns the cartridge owned by this Memory instance.
func (mem *Memory) Cart() *cartridge.Cartridge {
	return mem.cart
}

// bankOffset is the adjustment applied to reads of the banked ROM window.
// uint16 arithmetic throughout: offsets beyond the top of the flat array
// wrap around, which is the flat-array model inherited from the hardware
// sketch rather than anything a real cartridge does.
func (mem *Memory) bankOffset() uint16 {
	return mem.cart.ResolveBank(mem.activeBank) * memorymap.BankSize
}

// read implements the address decoding table. shared by Read() and Peek().
func (mem *Memory) read(address uint16) uint8 {
	if address <= memorymap.MemtopROM {
		// never banked
		return mem.storage[address]
	}

	if address <= memorymap.MemtopBankedROM {
		return mem.storage[address+mem.bankOffset()]
	}

	if address <= memorymap.MemtopRAM {
		return mem.storage[address]
	}

	if address <= memorymap.MemtopIO {
		return mem.registers[address-memorymap.OriginIO]
	}

	return mem.interruptEnable
}

// Read a byte from the address. Implements the bus.CPUBus interface.
//
// While a DMA transfer is in progress the bus is held and every read
// returns the saturated value 0xff.
func (mem *Memory) Read(address uint16) uint8 {
	if mem.dmaInProgress {
		return 0xff
	}

	return mem.read(address)
}

// Write a byte to the address. Implements the bus.CPUBus interface.
//
// While a DMA transfer is in progress the bus is held and the write is
// silently dropped.
//
// Writes into cartridge space are interpreted by the bank controller. For
// real controllers that means the write can only ever reach the control
// registers; the ROM areas are read-only from the bus side.
func (mem *Memory) Write(address uint16, data uint8) {
	if mem.dmaInProgress {
		return
	}

	if address <= memorymap.MemtopControl {
		mem.cart.ControlWrite(address, data, mem.storage[:])
		return
	}

	if address <= memorymap.MemtopRAM {
		mem.storage[address] = data
		return
	}

	if address <= memorymap.MemtopIO {
		mem.registers[address-memorymap.OriginIO] = data
		return
	}

	mem.interruptEnable = data
}

// ReadWord reads the little endian word at the address. Implements the
// bus.CPUBus interface.
//
// The two bytes are decoded independently so the word may straddle two
// areas of the address space. Reading at 0xffff takes the high byte from
// 0x0000; the wraparound is not guarded.
func (mem *Memory) ReadWord(address uint16) uint16 {
	lo := uint16(mem.Read(address))
	hi := uint16(mem.Read(address + 1))
	return hi<<8 | lo
}

// WriteWord writes the little endian word to the address. Implements the
// bus.CPUBus interface. Each byte goes through the full Write() dispatch.
func (mem *Memory) WriteWord(address uint16, data uint16) {
	mem.Write(address, uint8(data&0x00ff))
	mem.Write(address+1, uint8(data>>8))
}

// SetBank selects the bank visible in the banked ROM window for cartridges
// without a bank controller. Real controllers select their own bank through
// control-range writes and ignore this value.
func (mem *Memory) SetBank(bank uint8) {
	mem.activeBank = bank
}

// Peek is the debugging version of Read(). Implements the bus.DebuggerBus
// interface. Unlike Read() it is not gated by an in-progress DMA transfer.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.read(address)
}

// Poke is the debugging version of Write(). Implements the bus.DebuggerBus
// interface. The value is stored directly, bypassing both the DMA gate and
// the bank controller: poking cartridge space alters the bank data that is
// currently visible at the address.
func (mem *Memory) Poke(address uint16, data uint8) {
	if address <= memorymap.MemtopROM {
		mem.storage[address] = data
		return
	}

	if address <= memorymap.MemtopBankedROM {
		mem.storage[address+mem.bankOffset()] = data
		return
	}

	if address <= memorymap.MemtopRAM {
		mem.storage[address] = data
		return
	}

	if address <= memorymap.MemtopIO {
		mem.registers[address-memorymap.OriginIO] = data
		return
	}

	mem.interruptEnable = data
}

// LoadImage copies a cartridge image into the flat storage array, beginning
// at offset zero. Bank data must already be laid out at offsets of the bank
// size, which is how cartridge images are arranged in the first place. Data
// beyond the top of the address space is discarded; the number of bytes
// actually copied is returned.
func (mem *Memory) LoadImage(data []uint8) int {
	return copy(mem.storage[:], data)
}

// Reset the contents of the address space. The bank controller's registers
// are cartridge state, not machine state, and persist across a reset.
func (mem *Memory) Reset() {
	for i := range mem.storage {
		mem.storage[i] = 0
	}
	for i := range mem.registers {
		mem.registers[i] = 0
	}
	mem.interruptEnable = 0
	mem.activeBank = 0
	mem.dmaInProgress = false
}
