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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/bus"
)

// the shape of the synthetic frame below. 154 scanlines to a frame, with a
// sweep of work RAM traffic and a banked ROM fetch per scanline.
const (
	scanlinesPerFrame = 154
	accessesPerLine   = 64
)

// frame drives the bus with the traffic of a typical frame. All accesses go
// through the public bus interface so the address decoding is measured, not
// just the array accesses behind it.
func frame(mem bus.CPUBus) {
	for sl := 0; sl < scanlinesPerFrame; sl++ {
		for i := 0; i < accessesPerLine; i++ {
			a := 0xc000 + uint16(sl)*accessesPerLine + uint16(i)
			mem.Write(a, uint8(i))
			_ = mem.Read(a)
			_ = mem.Read(0x4000 + uint16(i))
		}
		_ = mem.ReadWord(0xfffe)
	}
}

// Check the performance of the memory subsystem. The machine is driven with
// synthetic frame-shaped bus traffic, one OAM DMA transfer and one bank
// switch per frame, for the given duration. Profiling data is written to
// the working directory when the profile argument is true.
func Check(output io.Writer, profile bool, mapping string, cartFile string, duration string) error {
	dmg, err := hardware.NewDMG(mapping)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if cartFile != "" {
		cartload := cartridgeloader.NewLoader(cartFile, mapping)
		err = dmg.AttachCartridge(cartload)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// enable the timer interrupt so that each frame's trigger does real work
	dmg.Mem.Write(0xffff, memory.TimerInterrupt.Mask())

	numFrames := 0

	runner := func() error {
		done := time.After(dur)
		for {
			select {
			case <-done:
				return nil
			default:
			}

			frame(dmg.Mem)
			dmg.Mem.DMA(uint8(0xc0 + numFrames%0x20))
			dmg.Mem.TriggerInterrupt(memory.TimerInterrupt)

			// exercise whichever bank selection mechanism the controller
			// honours
			dmg.Mem.SetBank(uint8(numFrames % 4))
			dmg.Mem.Write(0x2000, uint8(numFrames%4))

			numFrames++
		}
	}

	err = ProfileCPU("performance_cpu.profile", profile, runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	err = ProfileMem("performance_mem.profile", profile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
