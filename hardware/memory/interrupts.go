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

import "github.com/jetsetilly/gopherboy/hardware/memory/addresses"

// Interrupt is one of the five interrupt kinds recognised by the machine.
type Interrupt int

// List of valid Interrupt values. The declaration order matches the bit
// position of each kind in the interrupt enable register.
const (
	VBlankInterrupt Interrupt = iota
	LCDStatInterrupt
	TimerInterrupt
	SerialInterrupt
	JoypadInterrupt
)

func (intr Interrupt) String() string {
	switch intr {
	case VBlankInterrupt:
		return "VBLANK"
	case LCDStatInterrupt:
		return "LCDSTAT"
	case TimerInterrupt:
		return "TIMER"
	case SerialInterrupt:
		return "SERIAL"
	case JoypadInterrupt:
		return "JOYPAD"
	}
	return "unknown"
}

// Mask returns the bit for the interrupt in the interrupt enable register.
func (intr Interrupt) Mask() uint8 {
	return 0x01 << intr
}

// CheckInterrupt returns true if the interrupt kind is enabled in the
// interrupt enable register.
func (mem *Memory) CheckInterrupt(intr Interrupt) bool {
	return mem.interruptEnable&intr.Mask() != 0x00
}

// TriggerInterrupt raises the interrupt if its kind is enabled. A disabled
// interrupt is discarded without any effect on the flag register.
//
// Whichever kind fired, it is bit zero of the interrupt flag register that
// is set. The per-kind flag bits of the real machine are not modelled.
//
// The flag update goes through the public Read() and Write() functions and
// is therefore lost if a DMA transfer is holding the bus.
func (mem *Memory) TriggerInterrupt(intr Interrupt) {
	if !mem.CheckInterrupt(intr) {
		return
	}

	flags := mem.Read(addresses.IF)
	mem.Write(addresses.IF, flags|0x01)
}
