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

// Package hardware ties the sub-systems of the emulated machine together.
// The DMG type is the machine as a whole; other packages should prefer it
// to assembling a Memory instance by hand.
package hardware

import (
	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/logger"
)

// DMG is an instance of the emulated machine. For the time being the
// machine is its memory subsystem and the cartridge plugged into it.
type DMG struct {
	Mem  *memory.Memory
	Cart *cartridge.Cartridge
}

// NewDMG creates a new instance of the machine with the specified bank
// controller attached.
func NewDMG(mapping string) (*DMG, error) {
	cart, err := cartridge.NewCartridge(mapping)
	if err != nil {
		return nil, curated.Errorf("dmg: %v", err)
	}

	dmg := &DMG{
		Mem:  memory.NewMemory(cart),
		Cart: cart,
	}

	return dmg, nil
}

// AttachCartridge loads the cartridge image into the machine's address
// space. Bank data is expected at offsets of the bank size, which is how
// cartridge images are arranged on disk. Images larger than the address
// space are truncated with a log entry.
func (dmg *DMG) AttachCartridge(cartload cartridgeloader.Loader) error {
	data, err := cartload.Load()
	if err != nil {
		return curated.Errorf("dmg: %v", err)
	}

	n := dmg.Mem.LoadImage(data)
	if n < len(data) {
		logger.Logf("dmg", "%s: %d bytes discarded from cartridge image", cartload.ShortName(), len(data)-n)
	}
	logger.Logf("dmg", "%s attached (%s)", cartload.ShortName(), dmg.Cart.ID())

	return nil
}

// Reset the machine. Cartridge state is not machine state; the bank
// controller's registers survive a reset.
func (dmg *DMG) Reset() {
	dmg.Mem.Reset()
}
