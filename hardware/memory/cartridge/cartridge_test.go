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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

func TestNewCartridge(t *testing.T) {
	for _, mapping := range []string{"", "NONE", "MBC1", "MBC2", "MBC3", "MBC5", "mbc1", " mbc5 "} {
		_, err := cartridge.NewCartridge(mapping)
		test.ExpectedSuccess(t, err)
	}

	_, err := cartridge.NewCartridge("MBC9")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.UnrecognisedMapping))
}

func TestNoneWriteThrough(t *testing.T) {
	cart, err := cartridge.NewCartridge("NONE")
	test.ExpectedSuccess(t, err)

	// the NONE controller has no registers. control writes fall through to
	// the backing storage
	storage := make([]uint8, 0x8000)
	cart.ControlWrite(0x0123, 0xaa, storage)
	cart.ControlWrite(0x7fff, 0x55, storage)
	test.Equate(t, storage[0x0123], 0xaa)
	test.Equate(t, storage[0x7fff], 0x55)

	// and the externally requested bank is honoured
	test.Equate(t, cart.ResolveBank(0), 0)
	test.Equate(t, cart.ResolveBank(3), 3)

	// RAM is never enabled without a controller
	cart.ControlWrite(0x1000, 0x0a, storage)
	test.ExpectedFailure(t, cart.RAMEnabled())
}

func TestEnableNibble(t *testing.T) {
	storage := make([]uint8, 0x8000)

	for _, mapping := range []string{"MBC1", "MBC2", "MBC3", "MBC5"} {
		cart, err := cartridge.NewCartridge(mapping)
		test.ExpectedSuccess(t, err)

		test.ExpectedFailure(t, cart.RAMEnabled())

		// exactly the nibble 0xa enables
		cart.ControlWrite(0x1000, 0x0a, storage)
		test.ExpectedSuccess(t, cart.RAMEnabled())

		// any other nibble disables
		cart.ControlWrite(0x1000, 0x05, storage)
		test.ExpectedFailure(t, cart.RAMEnabled())

		// only the low nibble is considered
		cart.ControlWrite(0x0000, 0xfa, storage)
		test.ExpectedSuccess(t, cart.RAMEnabled())

		cart.ControlWrite(0x1fff, 0x00, storage)
		test.ExpectedFailure(t, cart.RAMEnabled())

		// real controllers never write through to storage
		for i := range storage {
			if storage[i] != 0 {
				t.Fatalf("%s controller wrote to backing storage at %#04x", mapping, i)
			}
		}
	}
}

func TestMBC1(t *testing.T) {
	cart, err := cartridge.NewCartridge("MBC1")
	test.ExpectedSuccess(t, err)

	// power-on state: ROM mode, bank zero
	test.Equate(t, cart.ResolveBank(0), 0)

	// the externally requested bank is ignored by a real controller
	test.Equate(t, cart.ResolveBank(7), 0)

	// low five bits of the bank register
	cart.ControlWrite(0x2000, 0x1f, nil)
	test.Equate(t, cart.ResolveBank(0), 0x1f)

	// values wider than five bits are masked
	cart.ControlWrite(0x2000, 0xff, nil)
	test.Equate(t, cart.ResolveBank(0), 0x1f)

	// in ROM mode the 0x4000 register feeds bits 5 and 6 of the bank
	// register. they are masked away again on resolve
	cart.ControlWrite(0x4000, 0x03, nil)
	test.Equate(t, cart.ResolveBank(0), 0x1f)

	// switching to RAM mode: low two bits of the bank register combine with
	// the RAM bank register shifted into the upper bits
	cart.ControlWrite(0x6000, 0x01, nil)
	test.Equate(t, cart.ResolveBank(0), 0x03)

	cart.ControlWrite(0x4000, 0x02, nil)
	test.Equate(t, cart.ResolveBank(0), 0x03|0x02<<5)

	// and back to ROM mode
	cart.ControlWrite(0x6000, 0x00, nil)
	test.Equate(t, cart.ResolveBank(0), 0x1f)
}

func TestMBC2(t *testing.T) {
	cart, err := cartridge.NewCartridge("MBC2")
	test.ExpectedSuccess(t, err)

	// four bit bank register
	cart.ControlWrite(0x2000, 0xff, nil)
	test.Equate(t, cart.ResolveBank(0), 0x0f)

	cart.ControlWrite(0x3000, 0x05, nil)
	test.Equate(t, cart.ResolveBank(0), 0x05)

	// the upper control ranges have no effect
	cart.ControlWrite(0x4000, 0x0a, nil)
	cart.ControlWrite(0x6000, 0x0a, nil)
	test.Equate(t, cart.ResolveBank(0), 0x05)
	test.ExpectedFailure(t, cart.RAMEnabled())
}

func TestMBC3(t *testing.T) {
	cart, err := cartridge.NewCartridge("MBC3")
	test.ExpectedSuccess(t, err)

	// seven bit bank register, no masking on resolve
	cart.ControlWrite(0x2000, 0xff, nil)
	test.Equate(t, cart.ResolveBank(0), 0x7f)

	// two bit RAM bank register
	cart.ControlWrite(0x4000, 0x07, nil)
	test.Equate(t, cart.String(), "MBC3 Bank: 127 RAMBank: 3")
}

func TestMBC5(t *testing.T) {
	cart, err := cartridge.NewCartridge("MBC5")
	test.ExpectedSuccess(t, err)

	// nine bit bank register written in two halves
	cart.ControlWrite(0x2000, 0x34, nil)
	test.Equate(t, cart.ResolveBank(0), 0x034)

	cart.ControlWrite(0x3000, 0x01, nil)
	test.Equate(t, cart.ResolveBank(0), 0x134)

	// only bit zero of the high write is used
	cart.ControlWrite(0x3000, 0xfe, nil)
	test.Equate(t, cart.ResolveBank(0), 0x034)

	// low half can be rewritten without disturbing the ninth bit
	cart.ControlWrite(0x3000, 0x01, nil)
	cart.ControlWrite(0x2000, 0x00, nil)
	test.Equate(t, cart.ResolveBank(0), 0x100)

	// four bit RAM bank register
	cart.ControlWrite(0x4000, 0xff, nil)
	test.Equate(t, cart.String(), "MBC5 Bank: 256 RAMBank: 15")
}
