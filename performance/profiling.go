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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/gopherboy/curated"
)

// ProfileCPU runs the supplied function, writing a CPU profile to the
// specified file. If the profile argument is false the function is run
// without any profiling.
func ProfileCPU(outFile string, profile bool, run func() error) error {
	if !profile {
		return run()
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem takes a snapshot of the memory profile and writes it to the
// specified file. A no-op if the profile argument is false.
func ProfileMem(outFile string, profile bool) error {
	if !profile {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer f.Close()

	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}

	return nil
}
