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

// mbc5 has a 9 bit ROM bank register, written in two halves: the low eight
// bits through the 0x2000 range and the ninth bit through the 0x3000 range.
// The RAM bank register is 4 bits.
type mbc5 struct {
	// 9 bits
	romBank uint16

	// 4 bits
	ramBank uint8

	ramEnable bool
}

func newMbc5() *mbc5 {
	return &mbc5{}
}

func (m mbc5) String() string {
	return fmt.Sprintf("%s Bank: %d RAMBank: %d", m.id(), m.resolveBank(0), m.ramBank)
}

// id implements the mbc interface.
func (m mbc5) id() string {
	return "MBC5"
}

// resolveBank implements the mbc interface. the requested argument is
// ignored; the internal bank register is authoritative.
func (m mbc5) resolveBank(_ uint8) uint16 {
	return m.romBank
}

// controlWrite implements the mbc interface.
func (m *mbc5) controlWrite(addr uint16, data uint8, _ []uint8) {
	if addr < 0x2000 {
		m.ramEnable = data&0x0f == 0x0a
	} else if addr < 0x3000 {
		m.romBank = (m.romBank & 0x100) | uint16(data)
	} else if addr < 0x4000 {
		m.romBank = (m.romBank & 0x0ff) | uint16(data&0x01)<<8
	} else if addr < 0x6000 {
		m.ramBank = data & 0x0f
	}

	// writes to the 0x6000 range have no effect
}

// ramEnabled implements the mbc interface.
func (m mbc5) ramEnabled() bool {
	return m.ramEnable
}
