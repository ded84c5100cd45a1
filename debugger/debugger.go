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

package debugger

import (
	"strings"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/console"
	"github.com/jetsetilly/gopherboy/hardware"
)

const prompt = "[gopherboy] "

// Debugger is the basic debugging frontend for the memory subsystem.
type Debugger struct {
	dmg  *hardware.DMG
	term console.UserInterface

	// set to false to gracefully end the input loop
	running bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(mapping string, term console.UserInterface) (*Debugger, error) {
	dmg, err := hardware.NewDMG(mapping)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		dmg:  dmg,
		term: term,
	}

	return dbg, nil
}

// Start the main debugger loop, attaching the cartridge image first if one
// has been specified.
func (dbg *Debugger) Start(cartload *cartridgeloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	if cartload != nil {
		err = dbg.dmg.AttachCartridge(*cartload)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.printLine(console.StyleFeedback, "%s attached", cartload.ShortName())
	}

	dbg.running = true
	input := make([]byte, 255)

	for dbg.running {
		n, err := dbg.term.UserRead(input, prompt)
		if err != nil {
			if _, ok := err.(*console.UserInterrupt); ok {
				dbg.printLine(console.StyleFeedback, "%v", err)
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseInput(strings.TrimSpace(string(input[:n-1])))
		if err != nil {
			dbg.printLine(console.StyleError, "%v", err)
		}
	}

	return nil
}

// printLine is the preferred method of outputting to the attached terminal.
func (dbg *Debugger) printLine(sty console.Style, s string, a ...interface{}) {
	dbg.term.UserPrint(sty, s, a...)
}

// styleWriter implements the io.Writer interface. useful for directing the
// output of another package to the terminal in a single style.
type styleWriter struct {
	dbg   *Debugger
	style console.Style
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
