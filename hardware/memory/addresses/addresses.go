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

package addresses

// The hardware registers in the 0xff00 window that this emulation assigns
// meaning to. The display, audio and timer registers are listed for the
// benefit of the debugger but storage aside, no behaviour is attached to
// them at this layer.
const (
	JOYP = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)

	// the interrupt flag register. TriggerInterrupt() sets bit zero of this
	// register
	IF = uint16(0xff0f)

	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)

	// a write to the DMA register on real hardware starts the OAM transfer.
	// in this emulation the transfer is started with the DMA() function and
	// the register is plain storage
	DMA = uint16(0xff46)

	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)

	// the interrupt enable register sits alone at the top of the address
	// space, outside of the register window
	IE = uint16(0xffff)
)

// CanonicalSymbols lists the canonical names for the addresses defined in
// this package. We don't use this structure in the emulation because the map
// introduces an overhead that we'd like to avoid. The debugger uses it to
// decorate its output.
var CanonicalSymbols = map[uint16]string{
	JOYP: "JOYP",
	SB:   "SB",
	SC:   "SC",
	DIV:  "DIV",
	TIMA: "TIMA",
	TMA:  "TMA",
	TAC:  "TAC",
	IF:   "IF",
	LCDC: "LCDC",
	STAT: "STAT",
	SCY:  "SCY",
	SCX:  "SCX",
	LY:   "LY",
	LYC:  "LYC",
	DMA:  "DMA",
	BGP:  "BGP",
	OBP0: "OBP0",
	OBP1: "OBP1",
	WY:   "WY",
	WX:   "WX",
	IE:   "IE",
}
