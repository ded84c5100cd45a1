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

// mbc implementations keep track of which cartridge bank is visible in the
// banked ROM window and interpret writes into the cartridge control range.
// the bank registers are the only state a bank controller carries; the bank
// data itself lives in the flat storage array owned by the memory package.
type mbc interface {
	id() string

	// resolveBank returns the bank that is currently visible in the banked
	// ROM window. the requested argument is the externally selected bank; it
	// is honoured only by the NONE controller. controllers with a bank
	// register of their own are the sole authority on the visible bank and
	// ignore the argument.
	resolveBank(requested uint8) uint16

	// controlWrite interprets a write into the cartridge control range,
	// 0x0000 to 0x7fff. real controllers mutate their internal registers and
	// never touch storage; the NONE controller has no registers and writes
	// through to storage unconditionally.
	controlWrite(addr uint16, data uint8, storage []uint8)

	// whether external cartridge RAM is currently enabled. enforcement of
	// the gate on the RAM access paths is the concern of whatever drives the
	// bus, not of the address decoding in the memory package.
	ramEnabled() bool
}
