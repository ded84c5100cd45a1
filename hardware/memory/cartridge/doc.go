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

// Package cartridge implements the bank controllers found in DMG
// cartridges. A bank controller watches writes into the ROM address range
// and interprets them as control commands: enabling external RAM, selecting
// which ROM bank is visible in the banked window, and so on. From the CPU's
// point of view the ROM range is read-only; the control registers are the
// only thing a write can reach.
//
// Five controllers are implemented: NONE, MBC1, MBC2, MBC3 and MBC5, one
// file per controller. Each is a different arrangement of the same few
// registers (ROM bank, RAM bank, RAM enable and, for MBC1, the banking
// mode). The controller is selected once, at construction, by whoever loads
// the cartridge image; there is no fingerprinting.
//
// The bank data itself is not stored here. The memory package keeps every
// bank in its flat storage array at offsets of the bank size, and uses
// ResolveBank() to adjust addresses in the banked window.
package cartridge
