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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

func TestRAMReadWrite(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.Equate(t, mem.Read(0xc000), 0x00)
	mem.Write(0xc000, 0x42)
	test.Equate(t, mem.Read(0xc000), 0x42)

	// boundary addresses of the RAM area
	mem.Write(0x8000, 0x01)
	mem.Write(0xfeff, 0x02)
	test.Equate(t, mem.Read(0x8000), 0x01)
	test.Equate(t, mem.Read(0xfeff), 0x02)
}

func TestNoneWriteThrough(t *testing.T) {
	mem := memory.NewMemory(nil)

	// without a bank controller, writes to cartridge space store directly
	mem.Write(0x0100, 0x42)
	test.Equate(t, mem.Read(0x0100), 0x42)
	mem.Write(0x7fff, 0x24)
	test.Equate(t, mem.Read(0x7fff), 0x24)
}

func TestNoneBankSwitch(t *testing.T) {
	mem := memory.NewMemory(nil)

	// with bank 1 selected the banked ROM window overlays the flat array at
	// 0x8000, which is also reachable directly as the bottom of the RAM
	// area
	mem.Write(0x9000, 0xaa)
	mem.Write(0x5000, 0x55)

	test.Equate(t, mem.Read(0x5000), 0x55)
	mem.SetBank(1)
	test.Equate(t, mem.Read(0x5000), 0xaa)
	mem.SetBank(0)
	test.Equate(t, mem.Read(0x5000), 0x55)

	// the non-banked area is unaffected by the selected bank
	mem.Write(0x1000, 0x99)
	mem.SetBank(3)
	test.Equate(t, mem.Read(0x1000), 0x99)
}

func TestControllerBankSwitch(t *testing.T) {
	cart, err := cartridge.NewCartridge("MBC1")
	test.ExpectedSuccess(t, err)
	mem := memory.NewMemory(cart)

	// plant a recognisable byte where bank 2 overlays the flat array
	mem.Write(0xc123, 0xbe)

	// select bank 2 through the controller's bank register
	mem.Write(0x2000, 0x02)
	test.Equate(t, mem.Read(0x4123), 0xbe)

	// SetBank() is ignored when a real controller is attached
	mem.SetBank(1)
	test.Equate(t, mem.Read(0x4123), 0xbe)

	// back to bank 1
	mem.Write(0x2000, 0x01)
	test.Equate(t, mem.Read(0x4123), 0x00)
}

func TestControllerROMReadOnly(t *testing.T) {
	cart, err := cartridge.NewCartridge("MBC5")
	test.ExpectedSuccess(t, err)
	mem := memory.NewMemory(cart)

	// writes to cartridge space reach the control registers, never the ROM
	mem.Write(0x0100, 0xff)
	test.Equate(t, mem.Read(0x0100), 0x00)
	mem.Write(0x7000, 0xff)
	test.Equate(t, mem.Read(0x7000), 0x00)
}

func TestRegisters(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write(addresses.LCDC, 0x91)
	test.Equate(t, mem.Read(addresses.LCDC), 0x91)

	// the register window is distinct from RAM
	test.Equate(t, mem.Read(0xfe40), 0x00)

	// interrupt enable register at the top of the address space
	mem.Write(addresses.IE, 0x1f)
	test.Equate(t, mem.Read(addresses.IE), 0x1f)
	test.Equate(t, mem.Read(0xfffe), 0x00)
}

func TestWords(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.WriteWord(0xc000, 0xbeef)
	test.Equate(t, mem.Read(0xc000), 0xef)
	test.Equate(t, mem.Read(0xc001), 0xbe)
	test.Equate(t, mem.ReadWord(0xc000), 0xbeef)

	// a word can straddle the register window and the interrupt enable
	// register
	mem.WriteWord(0xfffe, 0x8001)
	test.Equate(t, mem.Read(0xfffe), 0x01)
	test.Equate(t, mem.Read(addresses.IE), 0x80)
	test.Equate(t, mem.ReadWord(0xfffe), 0x8001)
}

func TestWordWraparound(t *testing.T) {
	mem := memory.NewMemory(nil)

	// the high byte of a word at the very top of the address space wraps
	// around to the very bottom
	mem.Write(0x0000, 0x12)
	mem.Write(addresses.IE, 0x34)
	test.Equate(t, mem.ReadWord(0xffff), 0x1234)
}

func TestInterrupts(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.ExpectedFailure(t, mem.CheckInterrupt(memory.VBlankInterrupt))
	test.ExpectedFailure(t, mem.CheckInterrupt(memory.TimerInterrupt))

	mem.Write(addresses.IE, memory.TimerInterrupt.Mask())
	test.ExpectedSuccess(t, mem.CheckInterrupt(memory.TimerInterrupt))
	test.ExpectedFailure(t, mem.CheckInterrupt(memory.VBlankInterrupt))

	// a disabled interrupt is discarded
	mem.TriggerInterrupt(memory.VBlankInterrupt)
	test.Equate(t, mem.Read(addresses.IF), 0x00)

	// an enabled interrupt sets bit zero of the flag register
	mem.TriggerInterrupt(memory.TimerInterrupt)
	test.Equate(t, mem.Read(addresses.IF), 0x01)

	// whichever kind fires it is always bit zero
	mem.Write(addresses.IF, 0x00)
	mem.Write(addresses.IE, memory.JoypadInterrupt.Mask())
	mem.TriggerInterrupt(memory.JoypadInterrupt)
	test.Equate(t, mem.Read(addresses.IF), 0x01)
}

func TestDMA(t *testing.T) {
	mem := memory.NewMemory(nil)

	for i := 0; i < 160; i++ {
		mem.Write(0xc100+uint16(i), uint8(i))
	}

	// the transfer holds the bus against its own copy loop so the sprite
	// attribute table is left untouched
	mem.DMA(0xc1)
	for i := 0; i < 160; i++ {
		test.Equate(t, mem.Read(0xfe00+uint16(i)), 0x00)
	}

	// the bus is released once the transfer completes
	mem.Write(0xc000, 0x42)
	test.Equate(t, mem.Read(0xc000), 0x42)
}

func TestPeekPoke(t *testing.T) {
	mem := memory.NewMemory(nil)

	// Poke() bypasses the bank controller but follows the same decoding
	mem.Poke(0x0100, 0x11)
	test.Equate(t, mem.Read(0x0100), 0x11)
	test.Equate(t, mem.Peek(0x0100), 0x11)

	mem.Poke(addresses.LCDC, 0x91)
	test.Equate(t, mem.Read(addresses.LCDC), 0x91)

	mem.Poke(addresses.IE, 0x01)
	test.Equate(t, mem.Read(addresses.IE), 0x01)
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write(0xc000, 0x42)
	mem.Write(addresses.LCDC, 0x91)
	mem.Write(addresses.IE, 0x1f)
	mem.SetBank(2)

	mem.Reset()
	test.Equate(t, mem.Read(0xc000), 0x00)
	test.Equate(t, mem.Read(addresses.LCDC), 0x00)
	test.Equate(t, mem.Read(addresses.IE), 0x00)
	test.Equate(t, mem.Read(0x5000), 0x00)
}
