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

package memory

import (
	"testing"

	"github.com/jetsetilly/gopherboy/test"
)

func TestDMAGate(t *testing.T) {
	mem := NewMemory(nil)
	mem.Write(0xc000, 0x42)

	mem.dmaInProgress = true

	// reads saturate and writes are dropped while the bus is held
	test.Equate(t, mem.Read(0xc000), 0xff)
	mem.Write(0xc001, 0x42)
	test.Equate(t, mem.storage[0xc001], 0x00)

	// the debugging functions are not gated
	test.Equate(t, mem.Peek(0xc000), 0x42)
	mem.Poke(0xc001, 0x24)
	test.Equate(t, mem.storage[0xc001], 0x24)

	mem.dmaInProgress = false
	test.Equate(t, mem.Read(0xc000), 0x42)
}

func TestDMAReentrancy(t *testing.T) {
	mem := NewMemory(nil)
	mem.storage[0xc100] = 0x42

	// a nested call returns without touching anything, including the flag
	mem.dmaInProgress = true
	mem.DMA(0xc1)
	test.ExpectedSuccess(t, mem.dmaInProgress)
	test.Equate(t, mem.storage[0xfe00], 0x00)
	mem.dmaInProgress = false

	// a normal call releases the bus on completion
	mem.DMA(0xc1)
	test.ExpectedFailure(t, mem.dmaInProgress)
}
