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

// Package debugger implements a command line interface to the memory
// subsystem. The emphasis is on inspection: every part of the address space
// can be read and written both through the bus (as the CPU would see it)
// and directly (bypassing the DMA gate and the bank controller).
//
// The debugger instantiates its own DMG and communicates with the user
// through an implementation of the console.UserInterface.
package debugger
