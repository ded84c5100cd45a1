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

// mbc2 has a single 4 bit ROM bank register and a built-in 512x4 bits of
// RAM (the RAM is not modelled here, only the enable gate for it). There is
// no RAM bank register.
type mbc2 struct {
	// 4 bits
	romBank uint8

	ramEnable bool
}

func newMbc2() *mbc2 {
	return &mbc2{}
}

func (m mbc2) String() string {
	return fmt.Sprintf("%s Bank: %d", m.id(), m.resolveBank(0))
}

// id implements the mbc interface.
func (m mbc2) id() string {
	return "MBC2"
}

// resolveBank implements the mbc interface. the requested argument is
// ignored; the internal bank register is authoritative.
func (m mbc2) resolveBank(_ uint8) uint16 {
	return uint16(m.romBank & 0x0f)
}

// controlWrite implements the mbc interface.
func (m *mbc2) controlWrite(addr uint16, data uint8, _ []uint8) {
	if addr < 0x2000 {
		m.ramEnable = data&0x0f == 0x0a
	} else if addr < 0x4000 {
		m.romBank = data & 0x0f
	}

	// writes to the rest of the control range have no effect
}

// ramEnabled implements the mbc interface.
func (m mbc2) ramEnabled() bool {
	return m.ramEnable
}
