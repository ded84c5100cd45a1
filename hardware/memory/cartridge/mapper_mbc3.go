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

// mbc3 has a 7 bit ROM bank register and a 2 bit RAM bank register. The
// real controller also carries a real-time clock selected through the upper
// values of the RAM bank register; the clock is not modelled.
type mbc3 struct {
	// 7 bits
	romBank uint8

	// 2 bits
	ramBank uint8

	ramEnable bool
}

func newMbc3() *mbc3 {
	return &mbc3{}
}

func (m mbc3) String() string {
	return fmt.Sprintf("%s Bank: %d RAMBank: %d", m.id(), m.resolveBank(0), m.ramBank)
}

// id implements the mbc interface.
func (m mbc3) id() string {
	return "MBC3"
}

// resolveBank implements the mbc interface. the requested argument is
// ignored; the internal bank register is authoritative. there is no
// windowed masking at this layer, the register was masked on write.
func (m mbc3) resolveBank(_ uint8) uint16 {
	return uint16(m.romBank)
}

// controlWrite implements the mbc interface.
func (m *mbc3) controlWrite(addr uint16, data uint8, _ []uint8) {
	if addr < 0x2000 {
		m.ramEnable = data&0x0f == 0x0a
	} else if addr < 0x4000 {
		m.romBank = data & 0x7f
	} else if addr < 0x6000 {
		m.ramBank = data & 0x03
	}

	// writes to the 0x6000 range latch the real-time clock on real
	// hardware. no clock, no effect
}

// ramEnabled implements the mbc interface.
func (m mbc3) ramEnabled() bool {
	return m.ramEnable
}
