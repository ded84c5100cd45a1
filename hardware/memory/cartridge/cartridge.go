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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// UnrecognisedMapping is the error pattern returned by NewCartridge() when
// the mapping argument does not name a known bank controller.
const UnrecognisedMapping = "cartridge: unrecognised bank controller: %s"

// Cartridge defines the bank controller of the attached cartridge. The
// memory package owns exactly one instance and consults it on every access
// to the cartridge address space.
type Cartridge struct {
	// the specific bank controller. selected once at construction and fixed
	// for the lifetime of the cartridge
	mapper mbc
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The mapping argument selects the bank controller: one of NONE,
// MBC1, MBC2, MBC3 or MBC5. The empty string means NONE.
//
// Selecting the bank controller is the responsibility of whoever loads the
// cartridge; there is no fingerprinting of the image data here.
func NewCartridge(mapping string) (*Cartridge, error) {
	cart := &Cartridge{}

	switch strings.TrimSpace(strings.ToUpper(mapping)) {
	case "", "NONE":
		cart.mapper = newNone()
	case "MBC1":
		cart.mapper = newMbc1()
	case "MBC2":
		cart.mapper = newMbc2()
	case "MBC3":
		cart.mapper = newMbc3()
	case "MBC5":
		cart.mapper = newMbc5()
	default:
		return nil, curated.Errorf(UnrecognisedMapping, mapping)
	}

	return cart, nil
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%v", cart.mapper)
}

// ID returns the bank controller ID.
func (cart Cartridge) ID() string {
	return cart.mapper.id()
}

// ResolveBank returns the bank currently visible in the banked ROM window.
// The requested argument is honoured only by the NONE controller; real
// controllers are the sole authority on the visible bank.
func (cart *Cartridge) ResolveBank(requested uint8) uint16 {
	return cart.mapper.resolveBank(requested)
}

// ControlWrite passes a write in the cartridge control range to the bank
// controller. The controller decides whether the write mutates its bank
// registers or, in the case of the NONE controller, falls through to the
// backing storage.
func (cart *Cartridge) ControlWrite(addr uint16, data uint8, storage []uint8) {
	cart.mapper.controlWrite(addr, data, storage)
}

// RAMEnabled returns true if external cartridge RAM is currently enabled.
func (cart Cartridge) RAMEnabled() bool {
	return cart.mapper.ramEnabled()
}
