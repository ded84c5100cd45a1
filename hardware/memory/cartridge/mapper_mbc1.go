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

package cartridge

import "fmt"

// from the MBC1 section of the Pan Docs:
//
// MBC1 is the first and most common bank controller. The ROM bank register
// is 5 bits wide. A second 2 bit register either extends the ROM bank number
// (for ROMs larger than 512KB) or selects a RAM bank, depending on the
// current banking mode. The mode register at 0x6000 selects between the two
// interpretations.
//
// Writing the nibble 0xA to the 0x0000 range enables external RAM; any other
// nibble disables it.
type mbc1 struct {
	// 7 bits of bank number. the low 5 bits are set through the 0x2000
	// register, bits 5 and 6 through the 0x4000 register while in ROM mode
	romBank uint8

	// 2 bits, set through the 0x4000 register while in RAM mode
	ramBank uint8

	ramEnable bool

	// romMode is true when the 0x4000 register feeds the upper ROM bank
	// bits and false when it selects a RAM bank. the hardware powers up with
	// the mode register at zero, which is ROM mode
	romMode bool
}

func newMbc1() *mbc1 {
	return &mbc1{
		romMode: true,
	}
}

func (m mbc1) String() string {
	mode := "RAM"
	if m.romMode {
		mode = "ROM"
	}
	return fmt.Sprintf("%s Bank: %d RAMBank: %d Mode: %s", m.id(), m.resolveBank(0), m.ramBank, mode)
}

// id implements the mbc interface.
func (m mbc1) id() string {
	return "MBC1"
}

// resolveBank implements the mbc interface. the requested argument is
// ignored; the internal bank register is authoritative.
func (m mbc1) resolveBank(_ uint8) uint16 {
	if m.romMode {
		return uint16(m.romBank & 0x1f)
	}

	// in RAM mode the RAM bank register supplies the upper bank bits,
	// the secondary bank selector used by ROMs larger than 512KB
	return uint16(m.romBank&0x03) | uint16(m.ramBank)<<5
}

// controlWrite implements the mbc interface.
func (m *mbc1) controlWrite(addr uint16, data uint8, _ []uint8) {
	if addr < 0x2000 {
		m.ramEnable = data&0x0f == 0x0a
	} else if addr < 0x4000 {
		m.romBank = (m.romBank & 0x60) | (data & 0x1f)
	} else if addr < 0x6000 {
		if m.romMode {
			m.romBank = (m.romBank & 0x1f) | ((data & 0x03) << 5)
		} else {
			m.ramBank = data & 0x03
		}
	} else if addr < 0x8000 {
		m.romMode = data&0x01 == 0x00
	}
}

// ramEnabled implements the mbc interface.
func (m mbc1) ramEnabled() bool {
	return m.ramEnable
}
