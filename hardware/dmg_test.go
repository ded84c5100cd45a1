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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/test"
)

func TestNewDMG(t *testing.T) {
	dmg, err := hardware.NewDMG("MBC1")
	test.ExpectedSuccess(t, err)
	test.Equate(t, dmg.Cart.ID(), "MBC1")

	_, err = hardware.NewDMG("MBC4")
	test.ExpectedFailure(t, err)
}

func TestAttachCartridge(t *testing.T) {
	dmg, err := hardware.NewDMG("NONE")
	test.ExpectedSuccess(t, err)

	// two banks worth of image data. the loader can be fed data directly,
	// without touching the filesystem
	data := make([]byte, 0x8000)
	data[0x0150] = 0x3c
	data[0x4150] = 0xc3

	cartload := cartridgeloader.NewLoader("test.gb", "NONE")
	cartload.Data = data

	err = dmg.AttachCartridge(cartload)
	test.ExpectedSuccess(t, err)

	test.Equate(t, dmg.Mem.Read(0x0150), 0x3c)

	// with bank 0 selected the window shows the second 16KB of the image
	test.Equate(t, dmg.Mem.Read(0x4150), 0xc3)

	// the non-banked area is unaffected by the selected bank
	dmg.Mem.SetBank(1)
	test.Equate(t, dmg.Mem.Read(0x0150), 0x3c)
}

func TestReset(t *testing.T) {
	dmg, err := hardware.NewDMG("NONE")
	test.ExpectedSuccess(t, err)

	dmg.Mem.Write(0xc000, 0x42)
	dmg.Reset()
	test.Equate(t, dmg.Mem.Read(0xc000), 0x00)
}
