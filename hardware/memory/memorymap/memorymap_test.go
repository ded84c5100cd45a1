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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/test"
)

func TestMapAddress(t *testing.T) {
	// the boundaries of every area, bit exact
	test.Equate(t, memorymap.MapAddress(0x0000).String(), "ROM")
	test.Equate(t, memorymap.MapAddress(0x3fff).String(), "ROM")
	test.Equate(t, memorymap.MapAddress(0x4000).String(), "BankedROM")
	test.Equate(t, memorymap.MapAddress(0x7fff).String(), "BankedROM")
	test.Equate(t, memorymap.MapAddress(0x8000).String(), "RAM")
	test.Equate(t, memorymap.MapAddress(0xfeff).String(), "RAM")
	test.Equate(t, memorymap.MapAddress(0xff00).String(), "IO")
	test.Equate(t, memorymap.MapAddress(0xfffe).String(), "IO")
	test.Equate(t, memorymap.MapAddress(0xffff).String(), "InterruptEnable")
}

func TestSparseMapAddress(t *testing.T) {
	// addresses away from the boundaries
	test.Equate(t, memorymap.MapAddress(0x2000).String(), "ROM")
	test.Equate(t, memorymap.MapAddress(0x5555).String(), "BankedROM")
	test.Equate(t, memorymap.MapAddress(0xc000).String(), "RAM")
	test.Equate(t, memorymap.MapAddress(0xfe00).String(), "RAM")
	test.Equate(t, memorymap.MapAddress(0xff0f).String(), "IO")
}

func TestAreaCoverage(t *testing.T) {
	// every address in the 16 bit space falls into a defined area
	for a := 0; a <= 0xffff; a++ {
		if memorymap.MapAddress(uint16(a)) == memorymap.Undefined {
			t.Fatalf("address %#04x is not mapped to an area", a)
		}
	}
}
