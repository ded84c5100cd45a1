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

// Package performance measures the throughput of the memory subsystem. In
// the absence of a CPU the machine is driven with synthetic frame-shaped
// bus traffic and the result compared with the refresh rate of the real
// display.
//
// The ProfileCPU() and ProfileMem() functions are general purpose wrappers
// around the runtime's profiling support and can be used independently of
// the Check() function.
package performance
