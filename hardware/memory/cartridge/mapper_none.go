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

// none is the bank controller for cartridges with no bank controller at
// all: 32KB ROMs and the test harness case. The bank visible in the banked
// ROM window is whatever the machine last selected with SetBank().
//
// Unlike the real controllers, writes into the control range fall through to
// the backing storage. Without this there would be no way to prepare the
// ROM area of an unbanked cartridge from the bus side.
type none struct {
}

func newNone() *none {
	return &none{}
}

func (m none) String() string {
	return m.id()
}

// id implements the mbc interface.
func (m none) id() string {
	return "NONE"
}

// resolveBank implements the mbc interface.
func (m none) resolveBank(requested uint8) uint16 {
	return uint16(requested)
}

// controlWrite implements the mbc interface.
func (m *none) controlWrite(addr uint16, data uint8, storage []uint8) {
	storage[addr] = data
}

// ramEnabled implements the mbc interface. there is no RAM gate without a
// controller.
func (m none) ramEnabled() bool {
	return false
}
